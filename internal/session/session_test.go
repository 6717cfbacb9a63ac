package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"boxpro/internal/backend"
	apperrors "boxpro/internal/errors"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})
	value, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return value
}

func requestWithCookie(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/ro/admin/dashboard", nil)
	if value != "" {
		r.AddCookie(&http.Cookie{Name: CookieName, Value: value})
	}
	return r
}

func TestPrincipalWithoutCookie(t *testing.T) {
	gate := NewGate(backend.NewDisabledClient(), false)
	_, err := gate.Principal(requestWithCookie(""))
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPrincipalExpiredToken(t *testing.T) {
	client := &backend.MockClient{}
	gate := NewGate(client, false)

	token := signedToken(t, time.Now().Add(-time.Hour))
	_, err := gate.Principal(requestWithCookie(token))
	if !errors.Is(err, apperrors.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
	// Expired tokens never reach the backend.
	client.MockAuth.AssertNotCalled(t, "Principal", mock.Anything, mock.Anything)
}

func TestPrincipalGarbageToken(t *testing.T) {
	gate := NewGate(backend.NewDisabledClient(), false)
	_, err := gate.Principal(requestWithCookie("not-a-jwt"))
	if !errors.Is(err, apperrors.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
}

func TestPrincipalValid(t *testing.T) {
	client := &backend.MockClient{}
	token := signedToken(t, time.Now().Add(time.Hour))
	client.MockAuth.On("Principal", mock.Anything, token).Return(backend.Principal{ID: "user-1", Email: "admin@boxpro.ro"}, nil)

	gate := NewGate(client, false)
	principal, err := gate.Principal(requestWithCookie(token))
	if err != nil {
		t.Fatalf("Principal() error: %v", err)
	}
	if principal.Email != "admin@boxpro.ro" {
		t.Errorf("unexpected principal %+v", principal)
	}
	if !gate.SignedIn(requestWithCookie(token)) {
		t.Errorf("expected SignedIn to be true")
	}
}

func TestPrincipalBackendRejects(t *testing.T) {
	client := &backend.MockClient{}
	token := signedToken(t, time.Now().Add(time.Hour))
	client.MockAuth.On("Principal", mock.Anything, token).Return(backend.Principal{}, apperrors.ErrSessionExpired)

	gate := NewGate(client, false)
	if gate.SignedIn(requestWithCookie(token)) {
		t.Errorf("expected rejected session to read as signed out")
	}
}

func TestSignInSetsCookie(t *testing.T) {
	client := &backend.MockClient{}
	client.MockAuth.On("SignIn", mock.Anything, "admin@boxpro.ro", "secret").Return(backend.Session{
		AccessToken: "token-123",
		ExpiresAt:   time.Now().Add(time.Hour),
	}, nil)

	gate := NewGate(client, true)
	w := httptest.NewRecorder()
	if err := gate.SignIn(context.Background(), w, "admin@boxpro.ro", "secret"); err != nil {
		t.Fatalf("SignIn() error: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != CookieName || cookie.Value != "token-123" {
		t.Errorf("unexpected cookie %s=%s", cookie.Name, cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure {
		t.Errorf("expected HttpOnly Secure cookie")
	}
}

func TestSignOutClearsCookie(t *testing.T) {
	client := &backend.MockClient{}
	client.MockAuth.On("SignOut", mock.Anything, "token-123").Return(nil)

	gate := NewGate(client, false)
	w := httptest.NewRecorder()
	gate.SignOut(context.Background(), w, requestWithCookie("token-123"))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
	client.MockAuth.AssertExpectations(t)
}
