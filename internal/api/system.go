package api

import (
	"net/http"
	"strconv"
	"time"
)

var startTime = time.Now()

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).String(),
		"version":   h.version,
	}

	if h.poller != nil {
		snapshot := h.poller.Snapshot()
		health["cadence"] = snapshot.Cadence
		health["backup_running"] = snapshot.State.Running
		if snapshot.LastPoll != nil {
			health["last_poll"] = snapshot.LastPoll
		}
	}

	// Check resource status
	if h.gatekeeper != nil {
		health["resources"] = h.gatekeeper.GetResourceStatus()
	}

	h.writeSuccess(w, http.StatusOK, health, "Service is healthy")
}

// GetNotifications lists recent notifications, newest first. Expired ones
// are included with all=true.
func (h *Handlers) GetNotifications(w http.ResponseWriter, r *http.Request) {
	if h.feed == nil {
		h.writeSuccess(w, http.StatusOK, []interface{}{}, "")
		return
	}

	all, _ := strconv.ParseBool(r.URL.Query().Get("all"))
	h.writeSuccess(w, http.StatusOK, h.feed.List(h.now(), all), "")
}
