package main

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"boxpro/config"
	"boxpro/internal/backend"
	"boxpro/internal/content"
	"boxpro/internal/handlers"
	"boxpro/internal/logger"
	"boxpro/internal/metrics"
	"boxpro/internal/session"
	"boxpro/internal/upload"
	"boxpro/internal/version"
	"boxpro/middleware"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	log.Info().
		Str("version", version.Version).
		Msg("BOXPRO starting")

	log.Info().
		Str("env", string(cfg.Env)).
		Str("log_level", cfg.LogLevel).
		Str("log_format", cfg.LogFormat).
		Msg("Configuration loaded")

	for _, warning := range cfg.Warnings {
		log.Warn().Msg(warning)
	}

	publicClient, adminClient := buildClients(cfg)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(metrics.NewContentCollector(publicClient))

	webFS, fsError := fs.Sub(embeddedWeb, "web")
	if fsError != nil {
		log.Fatal().Err(fsError).
			Msg("Failed to initialize embedded web filesystem")
	}

	router, routerError := buildRouter(cfg, publicClient, adminClient, registry, webFS)
	if routerError != nil {
		log.Fatal().Err(routerError).
			Msg("Failed to build router")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	publicClient.Shutdown()
	adminClient.Shutdown()

	log.Info().Msg("Server stopped")
}

// buildClients wires the backend clients: a cached anonymous-key client for
// the public pages and an uncached service-key client for the admin area.
// Without backend credentials the site runs on placeholder content.
func buildClients(cfg config.Config) (backend.Client, backend.Client) {
	log := logger.Get()

	if !cfg.Backend.Configured() {
		log.Warn().Msg("Backend not configured, serving placeholder content")
		disabled := backend.NewDisabledClient()
		return disabled, disabled
	}

	publicClient, err := backend.NewPublicClient(cfg.Backend)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize public backend client")
		disabled := backend.NewDisabledClient()
		return disabled, disabled
	}

	adminClient, err := backend.NewAdminClient(cfg.Backend)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize admin backend client")
		return publicClient, backend.NewDisabledClient()
	}

	log.Info().
		Str("backend_url", cfg.Backend.URL).
		Str("storage_bucket", cfg.Backend.StorageBucket).
		Msg("Backend clients initialized")
	return publicClient, adminClient
}

func buildRouter(cfg config.Config, publicClient, adminClient backend.Client, registry *prometheus.Registry, webFS fs.FS) (chi.Router, error) {
	publicStore := content.NewStore(publicClient)
	adminStore := content.NewStore(adminClient)
	gate := session.NewGate(adminClient, cfg.IsProd())
	uploader := upload.NewUploader(adminClient, cfg.Backend.StorageBucket)

	assetsFS, err := fs.Sub(webFS, "assets")
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Middleware must be registered before any routes
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CSRFProtection)

	staticHandler := http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS)))
	r.Handle("/assets/*", staticHandler)

	// The JSON API is the only surface external tooling calls, so CORS
	// applies there and not to the rendered pages.
	r.Group(func(api chi.Router) {
		api.Use(middleware.CORS(middleware.DefaultCORSConfig()))
		api.Get("/api/health", handlers.HealthCheck)
		api.Get("/api/ready", handlers.ReadinessCheck)
		api.Get("/api/version", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(version.Info())
		})
		handlers.RegisterI18nRoutes(api)
	})
	r.Get("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)

	handlers.RegisterSitemapRoutes(r, cfg.SiteBaseURL)
	handlers.RegisterAdminRoutes(r, gate, adminStore, uploader, webFS)
	handlers.RegisterUIRoutes(r, publicStore, webFS)

	return r, nil
}
