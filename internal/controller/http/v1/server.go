package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/egrid_loader/internal/config"
)

type Handlers struct {
	Health  *HealthHandler
	Records *RecordsHandler
	Files   *FilesHandler
	Reports *ReportsHandler
}

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, handlers Handlers) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(handlers),
		},
	}
}

func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health.GetHealth)
		r.Get("/records", h.Records.GetRecords)
		r.Get("/records/count", h.Records.GetRecordCount)
		r.Get("/files", h.Files.GetFiles)
		r.Get("/reports/last", h.Reports.GetLastReport)
		r.Post("/runs", h.Reports.PostRun)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
