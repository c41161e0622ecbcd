package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"burpwatch/internal/models"
	"burpwatch/internal/services"

	"github.com/gorilla/mux"
)

// CreateRestoreRequest carries the archive password, which RestoreRequest
// never serializes.
type CreateRestoreRequest struct {
	models.RestoreRequest
	Password string `json:"password,omitempty"`
}

func (h *Handlers) CreateRestore(w http.ResponseWriter, r *http.Request) {
	var req CreateRestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	restoreReq := req.RestoreRequest
	restoreReq.Password = req.Password

	restore, err := h.restores.StartRestore(r.Context(), restoreReq)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRequest):
			h.writeError(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, services.ErrRestoreBlocked):
			h.writeError(w, http.StatusConflict, err.Error(), nil)
		default:
			h.writeError(w, http.StatusInternalServerError, "Failed to start restore", err)
		}
		return
	}

	h.writeSuccess(w, http.StatusCreated, restore, "Restore started successfully")
}

func (h *Handlers) GetRestores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.RestoreFilter{
		Client: query.Get("client"),
	}

	// Parse status filter
	if statusStr := query.Get("status"); statusStr != "" {
		filter.Status = []models.RestoreStatus{models.RestoreStatus(statusStr)}
	}

	// Parse pagination
	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 1000 {
			filter.Limit = limit
		} else {
			filter.Limit = 50 // Default limit
		}
	} else {
		filter.Limit = 50
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	restores, err := h.restores.GetRestores(filter)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to get restores", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, restores, "")
}

func (h *Handlers) GetRestore(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	restore, err := h.restores.GetRestore(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Restore not found", nil)
		} else {
			h.writeError(w, http.StatusInternalServerError, "Failed to get restore", err)
		}
		return
	}

	h.writeSuccess(w, http.StatusOK, restore, "")
}

func (h *Handlers) CancelRestore(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.restores.CancelRestore(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			h.writeError(w, http.StatusNotFound, "Restore not found", nil)
		case errors.Is(err, services.ErrNotActive):
			h.writeError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			h.writeError(w, http.StatusInternalServerError, "Failed to cancel restore", err)
		}
		return
	}

	h.writeSuccess(w, http.StatusOK, nil, "Restore cancelled successfully")
}

func (h *Handlers) GetRestoreSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.restores.GetRestoreSummary()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to get restore summary", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, summary, "")
}
