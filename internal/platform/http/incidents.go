package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/openintel/mdip/internal/platform/domain"
	"github.com/openintel/mdip/internal/platform/service"
	"github.com/openintel/mdip/pkg/httpx"
	"github.com/openintel/mdip/pkg/slogx"
)

type IncidentsHandler struct {
	Incidents *service.IncidentService
}

type incidentPayload struct {
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Description string `json:"description"`
	ReportedBy  string `json:"reported_by,omitempty"`
}

func (h *IncidentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.Incidents.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("listing incidents", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"incidents": incidents})
}

func (h *IncidentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req incidentPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Incidents.Add(r.Context(), domain.Incident{
		Timestamp:   time.Now(),
		Severity:    req.Severity,
		Category:    req.Category,
		Status:      req.Status,
		Description: req.Description,
		ReportedBy:  req.ReportedBy,
	})
	if err != nil {
		slogx.FromContext(r.Context()).Error("adding incident", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *IncidentsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "incident not found")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	affected, err := h.Incidents.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		slogx.FromContext(r.Context()).Error("updating incident status", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if affected == 0 {
		httpx.WriteError(w, http.StatusNotFound, "incident not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int64{"updated": affected})
}

func (h *IncidentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "incident not found")
		return
	}

	affected, err := h.Incidents.Delete(r.Context(), id)
	if err != nil {
		slogx.FromContext(r.Context()).Error("deleting incident", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if affected == 0 {
		httpx.WriteError(w, http.StatusNotFound, "incident not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int64{"deleted": affected})
}

// idFromPath reads the {id} path segment. Malformed ids are indistinguishable
// from missing records, so callers answer both with not-found.
func idFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
