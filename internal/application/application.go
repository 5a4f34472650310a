package application

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/bump-my-version-sandbox/internal/api"
	"github.com/eugenenazirov/bump-my-version-sandbox/internal/config"
	"github.com/eugenenazirov/bump-my-version-sandbox/internal/version"
)

// App holds the resolved version and the HTTP server that exposes it.
type App struct {
	info   version.Info
	router http.Handler
	logger *zap.Logger
	server *http.Server
}

// New wires the API router and HTTP server around an already resolved version.
func New(cfg config.Config, info version.Info, logger *zap.Logger) *App {
	handler := api.NewHandler(info)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		info:   info,
		router: router,
		logger: logger,
		server: NewServer(cfg, router),
	}
}

// NewServer creates an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              listenAddr(cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start serves HTTP in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening",
			zap.String("addr", a.server.Addr),
			zap.String("version", a.info.Version),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Info returns the version the application was started with.
func (a *App) Info() version.Info {
	return a.info
}

func listenAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
