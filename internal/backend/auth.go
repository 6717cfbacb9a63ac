package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "boxpro/internal/errors"
)

type restAuth struct {
	client *restClient
}

func (a *restAuth) SignIn(ctx context.Context, email, password string) (Session, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return Session{}, fmt.Errorf("failed to encode credentials: %w", err)
	}

	endpoint := a.client.baseURL + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Session{}, fmt.Errorf("failed to create request: %w", err)
	}
	a.client.authorize(req, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.httpClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("sign-in request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, fmt.Errorf("failed to read sign-in response: %w", err)
	}
	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return Session{}, apperrors.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return Session{}, apiError("auth", resp.StatusCode, body)
	}

	var token struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		ExpiresAt   int64  `json:"expires_at"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return Session{}, fmt.Errorf("failed to decode sign-in response: %w", err)
	}
	if token.AccessToken == "" {
		return Session{}, apperrors.ErrInvalidCredentials
	}

	expiresAt := time.Unix(token.ExpiresAt, 0)
	if token.ExpiresAt == 0 {
		expiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}
	return Session{AccessToken: token.AccessToken, ExpiresAt: expiresAt}, nil
}

func (a *restAuth) SignOut(ctx context.Context, accessToken string) error {
	endpoint := a.client.baseURL + "/auth/v1/logout"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	a.client.authorize(req, accessToken)

	resp, err := a.client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sign-out request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (a *restAuth) Principal(ctx context.Context, accessToken string) (Principal, error) {
	endpoint := a.client.baseURL + "/auth/v1/user"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Principal{}, fmt.Errorf("failed to create request: %w", err)
	}
	a.client.authorize(req, accessToken)

	resp, err := a.client.httpClient.Do(req)
	if err != nil {
		return Principal{}, fmt.Errorf("user lookup failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Principal{}, fmt.Errorf("failed to read user response: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return Principal{}, apperrors.ErrSessionExpired
	}
	if resp.StatusCode != http.StatusOK {
		return Principal{}, apiError("auth", resp.StatusCode, body)
	}

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return Principal{}, fmt.Errorf("failed to decode user response: %w", err)
	}
	if user.ID == "" {
		return Principal{}, apperrors.ErrSessionExpired
	}
	return Principal{ID: user.ID, Email: user.Email}, nil
}
