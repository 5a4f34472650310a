package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/bump-my-version-sandbox/internal/application"
	"github.com/eugenenazirov/bump-my-version-sandbox/internal/config"
	"github.com/eugenenazirov/bump-my-version-sandbox/internal/logging"
	"github.com/eugenenazirov/bump-my-version-sandbox/internal/version"
)

var signalNotify = signal.Notify

func main() {
	cli := kingpin.New("sandbox", "bump-my-version sandbox - reports the project version from build info or pyproject.toml")
	configFile := cli.Flag("config", "Path to YAML configuration file").String()
	manifestPath := cli.Flag("manifest", "Manifest read when build info carries no version").String()
	modulePath := cli.Flag("module", "Module path looked up in build info").String()
	logLevel := cli.Flag("log-level", "Log level (debug, info, warn, error)").String()

	versionCmd := cli.Command("version", "Print the resolved version").Default()
	format := versionCmd.Flag("format", "Output format").Default("text").Enum("text", "json")

	serveCmd := cli.Command("serve", "Expose the resolved version over HTTP")
	port := serveCmd.Flag("port", "HTTP port exposed by the service").String()
	rateLimitRPS := serveCmd.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurst := serveCmd.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	command := kingpin.MustParse(cli.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile:   *configFile,
		ManifestPath: manifestPath,
		ModulePath:   modulePath,
		LogLevel:     logLevel,
		Port:         port,
	}
	if *rateLimitRPS >= 0 {
		overrides.RateLimitRPS = rateLimitRPS
	}
	if *rateLimitBurst >= 0 {
		overrides.RateLimitBurst = rateLimitBurst
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	info := version.NewResolver(cfg.ModulePath,
		version.WithManifestPath(cfg.ManifestPath),
		version.WithLogger(logger),
	).MustResolve()

	switch command {
	case versionCmd.FullCommand():
		if err := printVersion(os.Stdout, info, *format); err != nil {
			logger.Fatal("failed to print version", zap.Error(err))
		}
	case serveCmd.FullCommand():
		app := application.New(cfg, info, logger)
		if err := app.Start(); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
		shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
	}
}

func printVersion(w io.Writer, info version.Info, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}
	_, err := fmt.Fprintln(w, info.Version)
	return err
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	logger.Info("shutting down server", zap.Stringer("signal", sig))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
