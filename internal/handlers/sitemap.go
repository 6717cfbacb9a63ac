package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"boxpro/internal/i18n"
	"boxpro/internal/routing"
)

var sitemapRoutes = []string{"/", "/gallery"}

// RegisterSitemapRoutes serves the sitemap with locale alternates for
// every public page.
func RegisterSitemapRoutes(router chi.Router, siteBaseURL string) {
	base := strings.TrimRight(siteBaseURL, "/")

	router.Get("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		var b strings.Builder
		b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
		b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9" xmlns:xhtml="http://www.w3.org/1999/xhtml">` + "\n")
		for _, route := range sitemapRoutes {
			for _, locale := range i18n.Locales {
				b.WriteString("  <url>\n")
				fmt.Fprintf(&b, "    <loc>%s%s</loc>\n", base, sitemapPath(locale, route))
				for _, alternate := range i18n.Locales {
					fmt.Fprintf(&b, `    <xhtml:link rel="alternate" hreflang="%s" href="%s%s"/>`+"\n",
						alternate, base, sitemapPath(alternate, route))
				}
				b.WriteString("  </url>\n")
			}
		}
		b.WriteString("</urlset>\n")

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		fmt.Fprint(w, b.String())
	})
}

func sitemapPath(locale i18n.Locale, route string) string {
	if route == "/" {
		return "/" + string(locale)
	}
	return routing.Path(locale, route)
}
