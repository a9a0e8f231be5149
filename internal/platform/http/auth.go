package http

import (
	"encoding/json"
	"net/http"

	"github.com/openintel/mdip/internal/platform/service"
	"github.com/openintel/mdip/pkg/httpx"
	"github.com/openintel/mdip/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Sessions    *Sessions
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type authResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// HandleRegister creates a new account. Validation and duplicate failures
// come back 200 with ok=false so the shell can show the message verbatim.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, msg, err := h.AuthService.Register(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		log.Error("register failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authResponse{OK: ok, Message: msg})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin checks credentials and, on success, issues a session token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, msg, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		log.Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, authResponse{OK: false, Message: msg})
		return
	}

	user, err := h.AuthService.User(r.Context(), req.Username)
	if err != nil {
		log.Error("loading user after login", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.Sessions.Issue(user.Username, user.Role)
	if err != nil {
		log.Error("issuing session token", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authResponse{OK: true, Message: msg, Token: token})
}
