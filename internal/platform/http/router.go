package http

import (
	"log/slog"
	"net/http"

	"github.com/openintel/mdip/internal/platform/service"
	"github.com/openintel/mdip/internal/platform/store"
	"github.com/openintel/mdip/pkg/httpx"
	"github.com/openintel/mdip/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	sessions *Sessions
	logger   *slog.Logger
	store    store.Store

	AuthService      *service.AuthService
	IncidentService  *service.IncidentService
	DatasetService   *service.DatasetService
	TicketService    *service.TicketService
	ReportService    *service.ReportService
	AssistantService *service.AssistantService
}

func NewRouter(sessions *Sessions, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:      http.NewServeMux(),
		sessions: sessions,
		store:    st,
		logger:   logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerIncidents()
	r.registerDatasets()
	r.registerTickets()
	r.registerReports()
	r.registerAssistant()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		Sessions:    r.sessions,
	}

	// Public endpoints: every attempt is answered with the exact policy
	// message, so no throttling here.
	r.Mux.Handle("POST /v1/auth/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /v1/auth/login", http.HandlerFunc(h.HandleLogin))
}

func (r *Router) registerIncidents() {
	h := &IncidentsHandler{Incidents: r.IncidentService}

	r.Mux.Handle("GET /v1/incidents", r.secured(h.HandleList))
	r.Mux.Handle("POST /v1/incidents", r.secured(h.HandleCreate))
	r.Mux.Handle("PATCH /v1/incidents/{id}/status", r.secured(h.HandleUpdateStatus))
	r.Mux.Handle("DELETE /v1/incidents/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerDatasets() {
	h := &DatasetsHandler{Datasets: r.DatasetService}

	r.Mux.Handle("GET /v1/datasets", r.secured(h.HandleList))
	r.Mux.Handle("POST /v1/datasets", r.secured(h.HandleCreate))
	r.Mux.Handle("DELETE /v1/datasets/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerTickets() {
	h := &TicketsHandler{Tickets: r.TicketService}

	r.Mux.Handle("GET /v1/tickets", r.secured(h.HandleList))
	r.Mux.Handle("POST /v1/tickets", r.secured(h.HandleCreate))
	r.Mux.Handle("PATCH /v1/tickets/{id}/status", r.secured(h.HandleUpdateStatus))
	r.Mux.Handle("DELETE /v1/tickets/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{Reports: r.ReportService}

	r.Mux.Handle("GET /v1/reports/{domain}/monthly", r.secured(h.HandleMonthly))
	r.Mux.Handle("GET /v1/reports/incidents/summary", r.secured(h.HandleIncidentSummary))
}

func (r *Router) registerAssistant() {
	h := &AssistantHandler{Assistant: r.AssistantService}

	// Each ask is a metered upstream call, so the strictest limit applies.
	askSecured := httpx.Chain(http.HandlerFunc(h.HandleAsk),
		r.sessions.Middleware(),
		httpx.RateLimitByUser(httpx.StrictLimit),
	)

	r.Mux.Handle("POST /v1/assistant/ask", askSecured)
	r.Mux.Handle("POST /v1/assistant/clear", r.secured(h.HandleClearHistory))
}

func (r *Router) registerSystem() {
	h := &HealthHandler{Store: r.store}

	// Monitoring systems may poll frequently, keep the limit lenient.
	r.Mux.Handle("GET /livez",
		httpx.Chain(http.HandlerFunc(h.HandleLivez),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(http.HandlerFunc(h.HandleReadyz),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// secured wraps a handler with the session middleware.
func (r *Router) secured(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, r.sessions.Middleware())
}
