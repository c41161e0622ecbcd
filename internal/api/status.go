package api

import (
	"net/http"
	"strconv"
	"time"

	"burpwatch/internal/models"
)

func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	if h.poller == nil {
		h.writeError(w, http.StatusServiceUnavailable, "Status poller is not running", nil)
		return
	}

	h.writeSuccess(w, http.StatusOK, h.poller.Snapshot(), "")
}

// RefreshStatus asks burp-ui right away. Within the throttle window the
// cached state is returned unless force=true.
func (h *Handlers) RefreshStatus(w http.ResponseWriter, r *http.Request) {
	if h.poller == nil {
		h.writeError(w, http.StatusServiceUnavailable, "Status poller is not running", nil)
		return
	}

	force := false
	if forceStr := r.URL.Query().Get("force"); forceStr != "" {
		parsed, err := strconv.ParseBool(forceStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid force parameter", err)
			return
		}
		force = parsed
	}

	if _, err := h.poller.ForcePoll(r.Context(), force); err != nil {
		h.writeError(w, http.StatusBadGateway, "Failed to check running state", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, h.poller.Snapshot(), "")
}

func (h *Handlers) GetStatusHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		h.writeError(w, http.StatusServiceUnavailable, "Status history is not recorded", nil)
		return
	}

	query := r.URL.Query()
	filter := models.StatusEventFilter{
		Scope: query.Get("scope"),
		Limit: 50,
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 1000 {
			filter.Limit = limit
		}
	}

	if sinceStr := query.Get("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid since parameter, expected RFC3339", err)
			return
		}
		filter.Since = &since
	}

	events, err := h.history.GetStatusEvents(filter)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to get status history", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, events, "")
}

// GetRunningClients serves the cached list, fetching it when it has never
// been loaded or when refresh=true.
func (h *Handlers) GetRunningClients(w http.ResponseWriter, r *http.Request) {
	if h.clients == nil {
		h.writeError(w, http.StatusServiceUnavailable, "Running clients view is not enabled", nil)
		return
	}

	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))
	if refresh || h.clients.Snapshot().UpdatedAt == nil {
		if err := h.clients.Refresh(r.Context()); err != nil {
			h.writeError(w, http.StatusBadGateway, "Failed to fetch running clients", err)
			return
		}
	}

	h.writeSuccess(w, http.StatusOK, h.clients.Snapshot(), "")
}
