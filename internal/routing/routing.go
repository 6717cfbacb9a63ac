// Package routing maps the locale URL prefix to site routes and builds
// localized paths for redirects and navigation.
package routing

import (
	"net/http"
	"strings"

	"boxpro/internal/i18n"
)

// Path builds a localized path for an internal route. The route is given
// without a locale prefix, e.g. "/gallery" or "/admin/projects".
func Path(locale i18n.Locale, route string) string {
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if route == "/" {
		return "/" + string(locale)
	}
	return "/" + string(locale) + route
}

// LoginPath is the admin login page for a locale.
func LoginPath(locale i18n.Locale) string {
	return Path(locale, "/admin")
}

// DashboardPath is the admin dashboard for a locale.
func DashboardPath(locale i18n.Locale) string {
	return Path(locale, "/admin/dashboard")
}

// Split separates a request path into its locale prefix and the remaining
// route. ok is false when the first segment is not a supported locale.
func Split(path string) (i18n.Locale, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	locale, ok := i18n.FromPathSegment(segment)
	if !ok {
		return "", "", false
	}
	if rest == "" {
		return locale, "/", true
	}
	return locale, "/" + rest, true
}

// RedirectToLogin sends the browser to the locale's admin login page.
func RedirectToLogin(w http.ResponseWriter, r *http.Request, locale i18n.Locale) {
	http.Redirect(w, r, LoginPath(locale), http.StatusSeeOther)
}

// RedirectToDashboard sends the browser to the locale's admin dashboard.
func RedirectToDashboard(w http.ResponseWriter, r *http.Request, locale i18n.Locale) {
	http.Redirect(w, r, DashboardPath(locale), http.StatusSeeOther)
}

// NegotiateRoot picks the locale for a bare "/" visit from the
// Accept-Language header and returns the localized home path.
func NegotiateRoot(r *http.Request) string {
	return Path(i18n.FromAcceptLanguage(r.Header.Get("Accept-Language")), "/")
}
