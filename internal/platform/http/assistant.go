package http

import (
	"encoding/json"
	"net/http"

	"github.com/openintel/mdip/internal/platform/service"
	"github.com/openintel/mdip/pkg/httpx"
	"github.com/openintel/mdip/pkg/slogx"
)

type AssistantHandler struct {
	Assistant *service.AssistantService
}

type assistantRequest struct {
	Message string `json:"message"`
	Domain  string `json:"domain"`
}

// HandleAsk forwards a question about one domain's records to the
// conversational endpoint and returns its reply.
func (h *AssistantHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		httpx.WriteError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.Assistant.Ask(r.Context(), req.Message, req.Domain)
	if err != nil {
		log.Error("assistant request failed", "domain", req.Domain, "err", err)
		httpx.WriteError(w, http.StatusBadGateway, "assistant unavailable")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// HandleClearHistory drops the assistant's remembered turns.
func (h *AssistantHandler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	h.Assistant.Client.ClearHistory()
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
