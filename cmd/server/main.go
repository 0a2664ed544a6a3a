package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tippool/internal/config"
	"github.com/mmynk/tippool/internal/middleware"
	"github.com/mmynk/tippool/internal/service"
	"github.com/mmynk/tippool/internal/storage"
	"github.com/mmynk/tippool/internal/storage/postgres"
	"github.com/mmynk/tippool/internal/storage/sqlite"
	"github.com/mmynk/tippool/pkg/api/apiconnect"
	"github.com/mmynk/tippool/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)

	staticDir, err := filepath.Abs(cfg.Static.Path)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.Storage.Driver)

	interceptors := []connect.Interceptor{middleware.LoggingInterceptor()}
	if cfg.Metrics.Enabled {
		interceptors = append(interceptors, middleware.MetricsInterceptor())
	}
	if cfg.RateLimit.RPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		interceptors = append(interceptors, limiter.Interceptor())
	}
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()

	// Register Connect services
	employeePath, employeeHandler := apiconnect.NewEmployeeServiceHandler(service.NewEmployeeService(store), opts)
	mux.Handle(employeePath, employeeHandler)

	tipPath, tipHandler := apiconnect.NewTipServiceHandler(service.NewTipService(store), opts)
	mux.Handle(tipPath, tipHandler)

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if cfg.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	slog.Info("Serving static files", "path", staticDir)
	mux.HandleFunc("/", staticHandler(staticDir))

	handler := middleware.CORS(cfg.CORS.AllowedOrigins, mux)

	// h2c serves HTTP/2 without TLS for Connect clients
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Connect server starting", "address", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.Storage.Driver == config.DriverPostgres {
		store, err := postgres.New(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	store, err := sqlite.New(cfg.Storage.SQLitePath)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// staticHandler serves the frontend, falling back to index.html for unknown paths.
func staticHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Unknown Connect procedures should not get the frontend
		if strings.HasPrefix(r.URL.Path, "/tippool.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}
}
