package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"boxpro/internal/i18n"
	"boxpro/internal/logger"
	"boxpro/internal/routing"
	"boxpro/middleware"
)

// RegisterI18nRoutes exposes a small JSON API for UI translations.
func RegisterI18nRoutes(router chi.Router) {
	router.Get("/api/i18n", func(writer http.ResponseWriter, request *http.Request) {
		locale := resolveLocale(request)
		payload := i18n.Response{
			Locale:   locale,
			Messages: i18n.MessagesForLocale(locale),
		}
		writer.Header().Set("Content-Type", "application/json")
		encodeError := json.NewEncoder(writer).Encode(payload)
		if encodeError != nil {
			requestID := middleware.GetRequestID(request.Context())
			logger.HTTPError(request.Method, request.URL.Path, http.StatusInternalServerError, encodeError).
				Str("request_id", requestID).
				Msg("failed to encode i18n response")
			writer.WriteHeader(http.StatusInternalServerError)
		}
	})
}

func resolveLocale(request *http.Request) i18n.Locale {
	queryLocale := request.URL.Query().Get("lang")
	if queryLocale != "" {
		locale, ok := i18n.FromPathSegment(queryLocale)
		if ok {
			return locale
		}
	}
	currentURL := request.Header.Get("HX-Current-URL")
	if currentURL != "" {
		parsed, err := url.Parse(currentURL)
		if err == nil {
			if locale, _, ok := routing.Split(parsed.Path); ok {
				return locale
			}
		}
	}
	return i18n.FromAcceptLanguage(request.Header.Get("Accept-Language"))
}
