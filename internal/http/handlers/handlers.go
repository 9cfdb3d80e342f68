package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"yard-console/internal/http/flash"
	"yard-console/internal/http/view"
	"yard-console/internal/logx"
)

// Handlers holds dependencies shared by every console page.
type Handlers struct {
	Logger   logx.Logger
	views    Renderer
	flashes  flash.Store
	failures *prometheus.CounterVec
}

// New creates a Handlers instance. failures may be nil.
func New(logger logx.Logger, views Renderer, flashes flash.Store, failures *prometheus.CounterVec) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger, views: views, flashes: flashes, failures: failures}
}

// Home handles GET / and renders the landing view.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.Home, h.page(w, r, "Home"))
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound renders the 404 page for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, view.NotFound, view.Page{Title: "Not found"})
}

// TooManyRequests renders the rate-limit page with status 429.
func (h *Handlers) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusTooManyRequests, view.TooManyRequests, view.Page{Title: "Too many requests"})
}
