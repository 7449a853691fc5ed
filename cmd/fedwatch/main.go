package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"fedwatch/internal/fedsource"
	"fedwatch/internal/history"
	"fedwatch/internal/logger"
	"fedwatch/internal/monitor"
	"fedwatch/internal/store"
	"fedwatch/internal/trace"
	"fedwatch/internal/types"
)

func main() {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := loadConfig(ctx)
	svc := buildService(cfg)

	srv := &server{svc: svc}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", srv.handleHealth)
	r.Get("/v1/monitor", srv.handleMonitor)
	r.Post("/v1/monitor", srv.handleMonitor)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// A cycle fetches several pages sequentially; give it room.
		WriteTimeout: 5 * time.Minute,
	}

	go func() {
		logger.Info(ctx, "Server starting", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithErr(ctx, "Server stopped", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info(context.Background(), "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithErr(shutdownCtx, "Server shutdown failed", err)
	}
	_ = trace.Shutdown(shutdownCtx)
}

// loadConfig reads config.yaml (or FEDWATCH_CONFIG); a missing file falls
// back to built-in defaults so the service runs with zero setup.
func loadConfig(ctx context.Context) *store.Config {
	path := os.Getenv("FEDWATCH_CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := store.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info(ctx, "No config file found, using defaults", "path", path)
			return store.DefaultConfig()
		}
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		os.Exit(1)
	}
	return cfg
}

func buildService(cfg *store.Config) *monitor.Service {
	return monitor.New(
		fedsource.NewFetcher(cfg.FetchTimeout()),
		fedsource.NewDiscovery(cfg.Sources.BaseURL, cfg.Sources.CalendarURL, cfg.Sources.PressReleasesURL, cfg.FetchTimeout()),
		history.NewFileStore(cfg.HistoryPath),
	)
}

type server struct {
	svc *monitor.Service
}

type monitorResponse struct {
	Timestamp string                 `json:"timestamp"`
	Results   types.MonitoringResult `json:"results"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMonitor triggers one monitoring cycle. Query options: force=true
// reprocesses and overwrites already-recorded dates; debug=true includes
// cycle diagnostics in the response.
func (s *server) handleMonitor(w http.ResponseWriter, r *http.Request) {
	force := parseBool(r.URL.Query().Get("force"))
	debug := parseBool(r.URL.Query().Get("debug"))

	logger.Info(r.Context(), "Monitoring cycle requested", "force", force, "debug", debug)

	result := s.svc.RunCycle(r.Context(), force)
	if !debug {
		result.DebugInfo = nil
	}

	status := http.StatusOK
	if result.Status == types.StatusError {
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, monitorResponse{
		Timestamp: time.Now().Format(time.RFC3339),
		Results:   result,
	})
}

func parseBool(raw string) bool {
	switch raw {
	case "true", "1", "yes":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
