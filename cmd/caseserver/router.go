package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lawdept/justice-api/internal/api"
	"github.com/lawdept/justice-api/internal/api/middleware"
	"github.com/lawdept/justice-api/internal/config"
	"github.com/lawdept/justice-api/internal/platform/postgres"
)

// newRouter wires the case handlers onto the route table. The case API is an
// internal tool; cross-origin access is unrestricted.
func newRouter(db *sql.DB, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	caseHandler := api.NewCaseHandler(postgres.NewPostgresCaseStore(db, logger))

	r.Route("/api/cases", func(r chi.Router) {
		r.Post("/", caseHandler.Create)
		r.Get("/", caseHandler.List)
		r.Get("/search", caseHandler.Search)
		r.Get("/number/{caseNo}", caseHandler.GetByCaseNo)
		r.Get("/{id}", caseHandler.GetByID)
		r.Put("/{id}", caseHandler.Update)
		r.Delete("/{id}", caseHandler.Delete)
	})

	r.Get("/health", api.Health)

	// The front-end entry document is served at the root.
	front := filepath.Join(cfg.Server.StaticDir, "front.html")
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, front)
	})

	return r
}
