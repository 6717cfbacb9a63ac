package handlers

import (
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"boxpro/internal/content"
	"boxpro/internal/i18n"
	"boxpro/internal/logger"
	"boxpro/internal/routing"
	"boxpro/internal/version"
	"boxpro/middleware"
)

type pageTemplateData struct {
	Locale     i18n.Locale
	AltLocale  i18n.Locale
	Messages   i18n.Messages
	Path       string
	AppVersion string
}

type homeTemplateData struct {
	pageTemplateData
	Featured []content.Project
}

type galleryTemplateData struct {
	pageTemplateData
	Grid galleryGridTemplateData
}

type galleryGridTemplateData struct {
	Locale     i18n.Locale
	Messages   i18n.Messages
	Filter     string
	Categories []content.Category
	Projects   []content.Project
}

// parseTemplates loads every page and partial template from the embedded
// web filesystem.
func parseTemplates(webFS fs.FS) *template.Template {
	templates, err := template.New("").Funcs(templateFuncMap()).ParseFS(webFS, "templates/*.html")
	if err != nil {
		logger.Get().Error().Err(err).Msg("Failed to parse templates")
		return template.New("")
	}
	return templates
}

func renderPage(w http.ResponseWriter, r *http.Request, templates *template.Template, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		requestID := middleware.GetRequestID(r.Context())
		logger.HTTPError(r.Method, r.URL.Path, http.StatusInternalServerError, err).
			Str("request_id", requestID).
			Str("template", name).
			Msg("Failed to render template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// requestLocale resolves the locale path segment of the current request.
func requestLocale(r *http.Request) i18n.Locale {
	locale, ok := i18n.FromPathSegment(chi.URLParam(r, "locale"))
	if !ok {
		return i18n.DefaultLocale
	}
	return locale
}

func pageData(r *http.Request, locale i18n.Locale) pageTemplateData {
	alt := i18n.LocaleEnglish
	if locale == i18n.LocaleEnglish {
		alt = i18n.LocaleRomanian
	}
	_, rest, _ := routing.Split(r.URL.Path)
	return pageTemplateData{
		Locale:     locale,
		AltLocale:  alt,
		Messages:   i18n.MessagesForLocale(locale),
		Path:       rest,
		AppVersion: version.Version,
	}
}

// localeOnly rejects unknown locale segments before any page handler runs.
func localeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := i18n.FromPathSegment(chi.URLParam(r, "locale")); !ok {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RegisterUIRoutes mounts the public site: the landing page, the project
// gallery and its filter fragment, for each locale.
func RegisterUIRoutes(router chi.Router, store *content.Store, webFS fs.FS) {
	templates := parseTemplates(webFS)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routing.NegotiateRoot(r), http.StatusSeeOther)
	})

	router.Route("/{locale}", func(router chi.Router) {
		router.Use(localeOnly)

		router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			locale := requestLocale(r)
			data := homeTemplateData{
				pageTemplateData: pageData(r, locale),
				Featured:         store.FeaturedProjects(r.Context()),
			}
			renderPage(w, r, templates, "home.html", data)
		})

		router.Get("/gallery", func(w http.ResponseWriter, r *http.Request) {
			locale := requestLocale(r)
			data := galleryTemplateData{
				pageTemplateData: pageData(r, locale),
				Grid:             galleryGrid(r, locale, store),
			}
			renderPage(w, r, templates, "gallery.html", data)
		})

		// Filter changes re-render only the grid. The project list comes
		// from the client's read cache, not a fresh backend query.
		router.Get("/ui/gallery", func(w http.ResponseWriter, r *http.Request) {
			locale := requestLocale(r)
			renderPage(w, r, templates, "gallery-grid", galleryGrid(r, locale, store))
		})
	})
}

func galleryGrid(r *http.Request, locale i18n.Locale, store *content.Store) galleryGridTemplateData {
	filter := strings.TrimSpace(r.URL.Query().Get("filter"))
	if filter == "" {
		filter = content.FilterAll
	}
	projects := content.FilterProjects(store.GalleryProjects(r.Context()), filter)
	return galleryGridTemplateData{
		Locale:     locale,
		Messages:   i18n.MessagesForLocale(locale),
		Filter:     filter,
		Categories: content.Categories,
		Projects:   projects,
	}
}
