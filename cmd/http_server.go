package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/rspur/sampleportal/internal"
	"github.com/rspur/sampleportal/internal/auth"
	"github.com/rspur/sampleportal/internal/core/events"
	"github.com/rspur/sampleportal/internal/transport/middleware"
	"github.com/rspur/sampleportal/internal/transport/rest"
	"github.com/rspur/sampleportal/internal/user"
	"github.com/rspur/sampleportal/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server that serves the portal pages and the JSON API`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config    *internal.Config
	Router    *chi.Mux
	Directory *user.InMemoryDirectory
	Logger    *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"), config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	bus := events.NewEventBus(lg)
	events.RegisterAuditLogger(bus, lg)

	directory, err := user.SeedSampleUsers(config.Security.BCryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to seed user directory: %w", err)
	}

	codec := auth.NewCodec(config.Security.SessionSecret, config.Security.SessionTTL)
	authService := auth.NewService(codec, directory, bus, lg, config.Security.SecureCookies)
	userService := user.NewService(directory, bus, lg, config.Security.BCryptCost)
	guard := middleware.NewGuard(authService, bus, lg)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, rest.RouterConfig{
		AuthHandler:    auth.NewHandler(authService),
		AuthService:    authService,
		UserHandler:    user.NewHandler(userService),
		PagesHandler:   rest.NewPagesHandler(guard),
		HealthHandler:  rest.NewHealthHandler(directory),
		Logger:         lg,
		LoginRateBurst: config.Security.LoginRateBurst,
		Production:     os.Getenv("APP_ENV") == "production",
	})

	return &Dependencies{
		Config:    config,
		Router:    router,
		Directory: directory,
		Logger:    lg,
	}, nil
}
