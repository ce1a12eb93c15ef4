package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router builds the chi.Mux binding every engine route to its handler, with
// the middleware chain (outermost first): panic recoverer, request-ID
// injection, structured-logging, and the per-request deadline.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(deadline(s.cfg.RequestTimeout))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1/kinematics", func(r chi.Router) {
		r.Post("/solve-ik", s.handleSolveIK)
		r.Post("/solve-fk", s.handleSolveFK)
		r.Post("/compress-intent", s.handleCompressIntent)
		r.Post("/optimize-trajectory", s.handleOptimizeTrajectory)
		r.Get("/chains", s.handleListChains)
		r.Get("/stats", s.handleStats)
	})

	return r
}
