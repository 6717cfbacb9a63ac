// Package session gates the admin area behind a backend-issued session
// stored in a cookie.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"boxpro/internal/backend"
	apperrors "boxpro/internal/errors"
)

// CookieName is the session cookie.
const CookieName = "bp_session"

// Gate resolves and manages admin sessions. Every failure path resolves
// to "not signed in"; the admin area never renders on a doubtful session.
type Gate struct {
	client backend.Client
	secure bool
}

// NewGate returns a Gate over the given client. secure marks the cookie
// Secure, for production deployments behind TLS.
func NewGate(client backend.Client, secure bool) *Gate {
	return &Gate{client: client, secure: secure}
}

// SignIn exchanges credentials for a session and sets the session cookie.
func (g *Gate) SignIn(ctx context.Context, w http.ResponseWriter, email, password string) error {
	session, err := g.client.Auth().SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = 3600
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    session.AccessToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// SignOut revokes the session behind the request cookie and clears it.
func (g *Gate) SignOut(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		// Revocation is best effort. The cookie is gone either way.
		_ = g.client.Auth().SignOut(ctx, cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Principal resolves the signed-in user behind the request, or an error
// when the request carries no usable session.
func (g *Gate) Principal(r *http.Request) (backend.Principal, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return backend.Principal{}, apperrors.ErrUnauthorized
	}
	if expired(cookie.Value) {
		return backend.Principal{}, apperrors.ErrSessionExpired
	}

	principal, err := g.client.Auth().Principal(r.Context(), cookie.Value)
	if err != nil {
		return backend.Principal{}, apperrors.ErrSessionExpired
	}
	return principal, nil
}

// SignedIn reports whether the request carries a valid session.
func (g *Gate) SignedIn(r *http.Request) bool {
	_, err := g.Principal(r)
	return err == nil
}

// expired checks the token's exp claim locally before asking the backend.
// The signature is verified by the backend, not here; a token that fails
// to parse is treated as expired.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return false
	}
	return time.Now().After(expiresAt.Time)
}
