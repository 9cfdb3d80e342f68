package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"yard-console/internal/http/handlers"
	obs "yard-console/internal/http/middleware"
	"yard-console/internal/http/middleware/ratelimit"
	"yard-console/internal/logx"
)

const requestTimeout = 5 * time.Second

// New constructs the console router: base middleware, the branch and yard
// pages, and the probe/metrics endpoints. rl may be nil.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	branches *handlers.BranchHandler,
	yards *handlers.YardHandler,
	rl *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if rl != nil {
			r.Use(rl.Handler())
		}

		r.Get("/", base.Home)

		r.Route("/branches", func(r chi.Router) {
			r.Get("/", branches.List)
			r.Get("/new", branches.CreateForm)
			r.Post("/new", branches.Create)
			r.Get("/edit/{id}", branches.EditForm)
			r.Post("/edit/{id}", branches.Update)
			r.Get("/delete/{id}", branches.Delete)
			r.Post("/delete/{id}", branches.Delete)
		})

		r.Route("/yards", func(r chi.Router) {
			r.Get("/", yards.List)
			r.Get("/new", yards.CreateForm)
			r.Post("/new", yards.Create)
			r.Get("/edit/{id}", yards.EditForm)
			r.Post("/edit/{id}", yards.Update)
			r.Get("/delete/{id}", yards.Delete)
			r.Post("/delete/{id}", yards.Delete)
		})
	})

	r.NotFound(base.NotFound)

	return r
}
