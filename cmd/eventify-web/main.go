package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eventifyseu/eventify-web/internal/config"
	"github.com/eventifyseu/eventify-web/internal/logging"
	"github.com/eventifyseu/eventify-web/internal/metrics"
	"github.com/eventifyseu/eventify-web/internal/store"
	"github.com/eventifyseu/eventify-web/internal/web"
	"github.com/eventifyseu/eventify-web/pkg/eventify"
)

const sessionCleanupInterval = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Eventify API URL")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Session database path")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	flag.Parse()

	if *debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", dir, err)
			os.Exit(1)
		}
	}

	st, err := store.NewSQLiteStore(cfg.DBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session database ready", "path", cfg.DBPath)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	newClient := func(token string) web.API {
		clientCfg := eventify.DefaultConfig()
		clientCfg.BaseURL = cfg.APIURL
		clientCfg.Timeout = cfg.APITimeout
		clientCfg.Token = token
		return eventify.New(clientCfg, logger)
	}

	app := web.New(st, newClient, collector, logger, web.Config{
		Secure:     cfg.SecureCookies,
		SessionTTL: cfg.SessionTTL,
	})

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", metrics.Handler(registry))
	app.RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := app.Sessions().CleanupExpiredSessions(ctx)
				if err != nil {
					logger.Error("session cleanup failed", "error", err)
					continue
				}
				collector.RecordSessionCleanup(n)
				if n > 0 {
					logger.Info("expired sessions removed", "count", n)
				}
			}
		}
	}()

	go func() {
		logger.Info("web front-end starting", "addr", cfg.Addr, "api", cfg.APIURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
