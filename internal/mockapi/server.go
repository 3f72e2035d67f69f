// Package mockapi is a fixture-backed stand-in for the places backend,
// used for local development and integration tests of the client side.
package mockapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Server struct{ mux *chi.Mux }

// New builds the router. throttleRPS > 0 enables the 429 throttle. All
// middleware must be attached before the first route, hence the single
// construction point.
func New(l zerolog.Logger, throttleRPS int) *Server {
	m := chi.NewRouter()

	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	if throttleRPS > 0 {
		m.Use(Throttle(throttleRPS))
	}
	m.Use(Metrics)
	m.Use(Logger(l))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
