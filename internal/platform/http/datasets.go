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

type DatasetsHandler struct {
	Datasets *service.DatasetService
}

type datasetPayload struct {
	Name       string `json:"name"`
	Rows       int64  `json:"rows"`
	Columns    int64  `json:"columns"`
	UploadedBy string `json:"uploaded_by"`
	ReportedBy string `json:"reported_by,omitempty"`
}

func (h *DatasetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	datasets, err := h.Datasets.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("listing datasets", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"datasets": datasets})
}

func (h *DatasetsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req datasetPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Datasets.Add(r.Context(), domain.Dataset{
		Name:       req.Name,
		Rows:       req.Rows,
		Columns:    req.Columns,
		UploadedBy: req.UploadedBy,
		UploadDate: time.Now(),
		ReportedBy: req.ReportedBy,
	})
	if err != nil {
		slogx.FromContext(r.Context()).Error("adding dataset", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *DatasetsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "dataset not found")
		return
	}

	affected, err := h.Datasets.Delete(r.Context(), id)
	if err != nil {
		slogx.FromContext(r.Context()).Error("deleting dataset", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if affected == 0 {
		httpx.WriteError(w, http.StatusNotFound, "dataset not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int64{"deleted": affected})
}
