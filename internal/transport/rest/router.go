package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	"github.com/rspur/sampleportal/internal/auth"
	"github.com/rspur/sampleportal/internal/transport/middleware"
	"github.com/rspur/sampleportal/internal/transport/swagger"
	"github.com/rspur/sampleportal/internal/user"
)

// RouterConfig carries everything RegisterAllRoutes wires together.
type RouterConfig struct {
	AuthHandler    *auth.Handler
	AuthService    auth.ServiceAPI
	UserHandler    *user.Handler
	PagesHandler   *PagesHandler
	HealthHandler  *HealthHandler
	Logger         *slog.Logger
	LoginRateBurst int
	Production     bool
}

func RegisterAllRoutes(router *chi.Mux, cfg RouterConfig) {
	// Apply global middleware
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(cfg.Logger))
	router.Use(middleware.RecoveryMiddleware(cfg.Logger))
	router.Use(middleware.SecureHeaders(cfg.Logger, cfg.Production))

	// Serve the OpenAPI document at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// JSON API
	router.Route("/api", func(r chi.Router) {
		r.Get("/health", cfg.HealthHandler.healthCheckHandler)
		r.Get("/ping", cfg.HealthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Group(func(lr chi.Router) {
				lr.Use(httprate.Limit(cfg.LoginRateBurst, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
				lr.Post("/login", cfg.AuthHandler.Login)
			})
			sr.Post("/logout", cfg.AuthHandler.Logout)
		})

		// Admin routes require a live session; the handlers gate on the
		// caller's admin-module level beyond that.
		r.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.SessionMiddleware(cfg.AuthService, cfg.Logger))
			ar.Get("/users", cfg.UserHandler.ListUsers)
			ar.Post("/users", cfg.UserHandler.CreateUser)
			ar.Patch("/access", cfg.UserHandler.GrantAccess)
		})
	})

	// Portal pages: guard runs inside the handler because the module key is
	// a path parameter.
	router.Get("/", cfg.PagesHandler.Root)
	router.Get("/login", cfg.PagesHandler.LoginPage)
	router.Get("/{module}", cfg.PagesHandler.ModulePage)
}
