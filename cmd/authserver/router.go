package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lawdept/justice-api/internal/api"
	"github.com/lawdept/justice-api/internal/api/middleware"
	"github.com/lawdept/justice-api/internal/config"
	"github.com/lawdept/justice-api/internal/platform/mongodb"
	"github.com/lawdept/justice-api/internal/service/auth"
)

// defaultDatabase is used when the connection URI names no database.
const defaultDatabase = "justiceDB"

// newRouter wires the auth handlers onto the route table. Cross-origin
// access is restricted to the single configured front-end origin.
func newRouter(ctx context.Context, client *mongo.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.Mongo.AllowedOrigin},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	db := client.Database(mongodb.DatabaseFromURI(cfg.Mongo.URI, defaultDatabase))
	userStore := mongodb.NewMongoUserStore(ctx, db, logger)

	authHandler := api.NewAuthHandler(userStore, auth.NewBcryptHasher(), auth.NewBcryptVerifier())

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	return r
}
