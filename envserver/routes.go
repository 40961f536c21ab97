package envserver

import (
	"github.com/go-chi/chi/v5"
)

// Mount registers the server's handlers on r.
func (s *Server) Mount(r chi.Router) {
	r.NotFound(s.NotFound)
	r.Get("/environment.json", s.EnvironmentJSON)
	r.Get("/environment.yaml", s.EnvironmentYAML)
	r.Get("/env.js", s.EnvironmentJS)
	r.Get("/healthz", s.Health)
}
