package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/openintel/mdip/internal/platform/domain"
	"github.com/openintel/mdip/internal/platform/service"
	"github.com/openintel/mdip/pkg/httpx"
	"github.com/openintel/mdip/pkg/slogx"
)

type TicketsHandler struct {
	Tickets *service.TicketService
}

type ticketPayload struct {
	Priority            string  `json:"priority"`
	Description         string  `json:"description"`
	Status              string  `json:"status"`
	AssignedTo          string  `json:"assigned_to"`
	ResolutionTimeHours float64 `json:"resolution_time_hours,omitempty"`
	ReportedBy          string  `json:"reported_by,omitempty"`
}

func (h *TicketsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Tickets.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("listing tickets", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"tickets": tickets})
}

func (h *TicketsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req ticketPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Tickets.Add(r.Context(), domain.Ticket{
		Priority:            req.Priority,
		Description:         req.Description,
		Status:              req.Status,
		AssignedTo:          req.AssignedTo,
		CreatedAt:           time.Now(),
		ResolutionTimeHours: req.ResolutionTimeHours,
		ReportedBy:          req.ReportedBy,
	})
	if err != nil {
		slogx.FromContext(r.Context()).Error("adding ticket", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *TicketsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "ticket not found")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	affected, err := h.Tickets.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		slogx.FromContext(r.Context()).Error("updating ticket status", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if affected == 0 {
		httpx.WriteError(w, http.StatusNotFound, "ticket not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int64{"updated": affected})
}

func (h *TicketsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "ticket not found")
		return
	}

	affected, err := h.Tickets.Delete(r.Context(), id)
	if err != nil {
		slogx.FromContext(r.Context()).Error("deleting ticket", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if affected == 0 {
		httpx.WriteError(w, http.StatusNotFound, "ticket not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int64{"deleted": affected})
}
