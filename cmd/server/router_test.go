package main

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"boxpro/config"
	"boxpro/internal/backend"
	"boxpro/internal/metrics"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{Env: config.EnvDev, SiteBaseURL: "https://boxpro.example"}
	client := backend.NewDisabledClient()
	registry := prometheus.NewRegistry()
	registry.MustRegister(metrics.NewContentCollector(client))
	webFS, err := fs.Sub(embeddedWeb, "web")
	assert.NoError(t, err)
	router, err := buildRouter(cfg, client, client, registry, webFS)
	assert.NoError(t, err)
	return router
}

func TestBuildRouter_BasicEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("root negotiates locale", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en-GB,en;q=0.9")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/en", rec.Header().Get("Location"))
	})

	t.Run("root defaults to romanian", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/ro", rec.Header().Get("Location"))
	})

	t.Run("home renders", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ro", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "BOXPRO")
		assert.Contains(t, rec.Body.String(), "Ce construim")
	})

	t.Run("gallery serves placeholders without backend", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ro/gallery", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Proiect Demo 1")
	})

	t.Run("serves stylesheet", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/assets/style.css", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ready", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ready", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("version", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	})

	t.Run("i18n", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/i18n?lang=en", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Locale string `json:"locale"`
		}
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "en", resp.Locale)
	})

	t.Run("api allows cross-origin reads", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/i18n?lang=ro", nil)
		req.Header.Set("Origin", "https://studio.boxpro.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://studio.boxpro.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("pages carry no cors headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ro", nil)
		req.Header.Set("Origin", "https://studio.boxpro.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("sitemap lists both locales", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://boxpro.example/ro/gallery")
		assert.Contains(t, rec.Body.String(), "https://boxpro.example/en/gallery")
	})

	t.Run("metrics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "boxpro_backend_connected")
	})
}

func TestBuildRouter_AdminRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	paths := []string{
		"/ro/admin/dashboard",
		"/ro/admin/projects",
		"/ro/admin/projects/new",
		"/ro/admin/photos",
		"/en/admin/dashboard",
		"/en/admin/photos",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			locale := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
			assert.Equal(t, "/"+locale+"/admin", rec.Header().Get("Location"))
		})
	}
}

func TestBuildRouter_UnknownLocale_Returns404(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/fr", "/fr/gallery", "/de/admin"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestBuildRouter_MissingAsset_Returns404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/assets/missing.js", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
