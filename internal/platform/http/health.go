package http

import (
	"net/http"

	"github.com/openintel/mdip/internal/platform/store"
	"github.com/openintel/mdip/pkg/httpx"
)

type HealthHandler struct {
	Store store.Store
}

func (h *HealthHandler) HandleLivez(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleReadyz reports ready only when the record store answers a ping.
func (h *HealthHandler) HandleReadyz(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		httpx.WriteError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
