package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/openintel/mdip/internal/platform/service"
	"github.com/openintel/mdip/internal/platform/store"
	"github.com/openintel/mdip/internal/platform/store/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*Router, store.Store) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db := sqlite.NewStore("file:" + dbPath + "?_busy_timeout=5000")
	require.NoError(t, db.ApplyMigrations())
	t.Cleanup(func() { _ = db.Close() })

	sessions := &Sessions{Secret: []byte("test-secret"), TTL: time.Hour}
	r := NewRouter(sessions, db, slog.New(slog.DiscardHandler))
	r.AuthService = &service.AuthService{Store: db}
	r.IncidentService = &service.IncidentService{Store: db}
	r.DatasetService = &service.DatasetService{Store: db}
	r.TicketService = &service.TicketService{Store: db}
	r.ReportService = &service.ReportService{Store: db}
	r.AssistantService = &service.AssistantService{
		Store:  db,
		Client: service.NewAssistantClient("http://127.0.0.1:0", "", "test"),
	}
	r.ApplyRoutes()
	return r, db
}

func postJSON(t *testing.T, router http.Handler, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := postJSON(t, router, "/v1/auth/register", "", map[string]string{
		"username": "operator",
		"password": "Str0ng!pw",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, router, "/v1/auth/login", "", map[string]string{
		"username": "operator",
		"password": "Str0ng!pw",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	require.Equal(t, "Welcome, operator!", resp.Message)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouter_AuthFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("register then login issues a token", func(t *testing.T) {
		loginToken(t, router)
	})

	t.Run("failed login answers 401 with the exact message", func(t *testing.T) {
		rec := postJSON(t, router, "/v1/auth/login", "", map[string]string{
			"username": "operator",
			"password": "Wrong1!pw",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp struct {
			OK      bool   `json:"ok"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.False(t, resp.OK)
		require.Equal(t, "Invalid password.", resp.Message)
	})

	t.Run("unknown username answers 401", func(t *testing.T) {
		rec := postJSON(t, router, "/v1/auth/login", "", map[string]string{
			"username": "nobody",
			"password": "Str0ng!pw",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Username not found.")
	})
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginToken(t, router)

	t.Run("record routes reject missing tokens", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/incidents", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("incident lifecycle through the shell", func(t *testing.T) {
		rec := postJSON(t, router, "/v1/incidents", token, map[string]any{
			"severity":    "High",
			"category":    "Phishing",
			"status":      "Open",
			"description": "credential harvesting email",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		require.Positive(t, created.ID)

		req := httptest.NewRequest(http.MethodGet, "/v1/incidents", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		listRec := httptest.NewRecorder()
		router.ServeHTTP(listRec, req)
		require.Equal(t, http.StatusOK, listRec.Code)
		require.Contains(t, listRec.Body.String(), "credential harvesting email")

		req = httptest.NewRequest(http.MethodDelete, "/v1/incidents/999", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		missRec := httptest.NewRecorder()
		router.ServeHTTP(missRec, req)
		require.Equal(t, http.StatusNotFound, missRec.Code)
	})

	t.Run("malformed record id is treated as not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/incidents/abc", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("monthly report serves an empty pivot for a fresh store", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports/datasets/monthly", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var pivot service.Pivot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pivot))
		require.Empty(t, pivot.Months)
	})

	t.Run("unknown report domain is not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports/widgets/monthly", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
