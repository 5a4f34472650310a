package application

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/bump-my-version-sandbox/internal/config"
	"github.com/eugenenazirov/bump-my-version-sandbox/internal/version"
)

func TestNewInitializesDependencies(t *testing.T) {
	info := version.Info{Version: "0.2.0", Source: version.SourceManifest, ModulePath: "m"}
	app := New(baseTestConfig(":8085"), info, zaptest.NewLogger(t))

	if app.server == nil || app.router == nil {
		t.Fatalf("expected server and router to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
	if app.Info() != info {
		t.Fatalf("expected info %+v, got %+v", info, app.Info())
	}
	if app.server.Addr != ":8085" {
		t.Fatalf("unexpected address %s", app.server.Addr)
	}

	rec := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 from version endpoint, got %d", rec.Code)
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func TestListenAddr(t *testing.T) {
	cases := map[string]string{
		"8080":           ":8080",
		":8080":          ":8080",
		"127.0.0.1:9000": "127.0.0.1:9000",
	}
	for in, want := range cases {
		if got := listenAddr(in); got != want {
			t.Fatalf("listenAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		ModulePath:           config.DefaultModulePath,
		ManifestPath:         version.DefaultManifestPath,
		LogLevel:             "info",
		Port:                 port,
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
