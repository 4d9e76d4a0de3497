package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/graphql-go/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/kelechio/movieql/internal/auth"
	"github.com/kelechio/movieql/internal/config"
	"github.com/kelechio/movieql/internal/graph"
	"github.com/kelechio/movieql/internal/middleware"
	"github.com/kelechio/movieql/internal/repo"
)

// newRouter wires repos, resolvers, and the middleware chain into the HTTP
// surface: /graphql, /health, /metrics.
func newRouter(gdb *gorm.DB, cfg config.Config) (http.Handler, error) {
	tokens := auth.NewTokenIssuer(
		[]byte(cfg.JWTSecret),
		time.Duration(cfg.JWTExpireHours)*time.Hour,
	)

	resolver := &graph.Resolver{
		Users:      repo.NewUserRepo(gdb),
		Movies:     repo.NewMovieRepo(gdb),
		Tokens:     tokens,
		BcryptCost: cfg.BcryptCost,
	}

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, err
	}

	gql := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: cfg.GraphiQL,
	})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(false))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.Prometheus)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	limiter := middleware.GraphQLRateLimiter()
	r.Route("/graphql", func(r chi.Router) {
		r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))
		r.Use(limiter.Middleware)
		r.Use(middleware.Identity(tokens))
		r.Handle("/", gql)
	})

	return r, nil
}
