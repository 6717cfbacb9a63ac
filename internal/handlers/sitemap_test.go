package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestSitemap_ListsEveryRouteInBothLocales(t *testing.T) {
	router := chi.NewRouter()
	RegisterSitemapRoutes(router, "https://boxpro.ro")

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")

	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://boxpro.ro/ro</loc>")
	assert.Contains(t, body, "<loc>https://boxpro.ro/en</loc>")
	assert.Contains(t, body, "<loc>https://boxpro.ro/ro/gallery</loc>")
	assert.Contains(t, body, "<loc>https://boxpro.ro/en/gallery</loc>")
	assert.Contains(t, body, `hreflang="en"`)
	assert.Contains(t, body, `href="https://boxpro.ro/en/gallery"`)
}
