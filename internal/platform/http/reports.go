package http

import (
	"net/http"
	"strconv"

	"github.com/openintel/mdip/internal/platform/service"
	"github.com/openintel/mdip/pkg/httpx"
	"github.com/openintel/mdip/pkg/slogx"
)

type ReportsHandler struct {
	Reports *service.ReportService
}

// HandleMonthly serves the month-bucketed pivot for one domain's records.
// GET /v1/reports/{domain}/monthly where domain is incidents|datasets|tickets.
func (h *ReportsHandler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	var (
		p   service.Pivot
		err error
	)
	switch r.PathValue("domain") {
	case "incidents":
		p, err = h.Reports.IncidentsByMonth(r.Context())
	case "datasets":
		p, err = h.Reports.DatasetsByMonth(r.Context())
	case "tickets":
		p, err = h.Reports.TicketsByMonth(r.Context())
	default:
		httpx.WriteError(w, http.StatusNotFound, "unknown report domain")
		return
	}
	if err != nil {
		slogx.FromContext(r.Context()).Error("building monthly report", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleIncidentSummary serves the flat incident rollups used by the
// dashboard tiles.
func (h *ReportsHandler) HandleIncidentSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	byCategory, err := h.Reports.IncidentCountsByCategory(ctx)
	if err != nil {
		log.Error("counting incidents by category", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	highByStatus, err := h.Reports.HighSeverityByStatus(ctx)
	if err != nil {
		log.Error("counting high severity incidents", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	minCount := int64(5)
	if raw := r.URL.Query().Get("min_count"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			minCount = v
		}
	}
	manyCases, err := h.Reports.CategoriesWithManyCases(ctx, minCount)
	if err != nil {
		log.Error("counting busy categories", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"by_category":            byCategory,
		"high_severity_status":   highByStatus,
		"categories_many_cases":  manyCases,
		"many_cases_threshold":   minCount,
	})
}
