package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"burpwatch/internal/config"
	"burpwatch/internal/interfaces"
	"burpwatch/internal/models"
	"burpwatch/internal/refresher"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// RunningClientsView is the cached list of clients running a backup.
type RunningClientsView interface {
	Snapshot() refresher.ClientsSnapshot
	Refresh(ctx context.Context) error
}

// NotificationFeed lists recent notifications.
type NotificationFeed interface {
	List(now time.Time, includeExpired bool) []models.Notification
}

// StatusHistory reads persisted running-state transitions.
type StatusHistory interface {
	GetStatusEvents(filter models.StatusEventFilter) ([]*models.StatusEvent, error)
}

// Dependencies are the collaborators the handlers serve. Nil members disable
// the routes that need them.
type Dependencies struct {
	Poller     interfaces.StatusPoller
	Restores   interfaces.RestoreService
	Gatekeeper interfaces.Gatekeeper
	History    StatusHistory
	Clients    RunningClientsView
	Feed       NotificationFeed
	Metrics    http.Handler
	Version    string
}

type Handlers struct {
	config     *config.Config
	poller     interfaces.StatusPoller
	restores   interfaces.RestoreService
	gatekeeper interfaces.Gatekeeper
	history    StatusHistory
	clients    RunningClientsView
	feed       NotificationFeed
	metrics    http.Handler
	version    string
	now        func() time.Time
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func NewHandlers(cfg *config.Config, deps Dependencies) *Handlers {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	return &Handlers{
		config:     cfg,
		poller:     deps.Poller,
		restores:   deps.Restores,
		gatekeeper: deps.Gatekeeper,
		history:    deps.History,
		clients:    deps.Clients,
		feed:       deps.Feed,
		metrics:    deps.Metrics,
		version:    version,
		now:        time.Now,
	}
}

func (h *Handlers) RegisterRoutes(r *mux.Router) {
	if h.metrics != nil {
		metricsCfg := h.config.GetMetrics()
		if metricsCfg.Enabled {
			r.Handle(metricsCfg.Path, h.metrics).Methods("GET")
		}
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Live status endpoints
	api.HandleFunc("/status", h.GetStatus).Methods("GET")
	api.HandleFunc("/status/refresh", h.RefreshStatus).Methods("POST")
	api.HandleFunc("/status/history", h.GetStatusHistory).Methods("GET")
	api.HandleFunc("/clients/running", h.GetRunningClients).Methods("GET")

	// Restore endpoints
	api.HandleFunc("/restores", h.CreateRestore).Methods("POST")
	api.HandleFunc("/restores", h.GetRestores).Methods("GET")
	api.HandleFunc("/restores/summary", h.GetRestoreSummary).Methods("GET")
	api.HandleFunc("/restores/{id}", h.GetRestore).Methods("GET")
	api.HandleFunc("/restores/{id}", h.CancelRestore).Methods("DELETE")

	// System endpoints
	api.HandleFunc("/notifications", h.GetNotifications).Methods("GET")
	api.HandleFunc("/health", h.HealthCheck).Methods("GET")

	limits := h.config.GetServer().RateLimit
	api.Use(rateLimitMiddleware(rate.NewLimiter(rate.Limit(limits.RequestsPerSecond), limits.Burst)))
	api.Use(corsMiddleware)
	api.Use(loggingMiddleware)
	api.Use(jsonContentTypeMiddleware)
}

func (h *Handlers) writeSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, statusCode int, message string, err error) {
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: false,
		Error:   message,
	}

	if err != nil {
		slog.Error("API error", "message", message, "error", err)
	} else {
		slog.Warn("API error", "message", message)
	}

	if jsonErr := json.NewEncoder(w).Encode(response); jsonErr != nil {
		slog.Error("failed to encode error response", "error", jsonErr)
	}
}
