package backend

import "context"

// NewDisabledClient returns a client for running without backend
// credentials. Reads return nothing so callers fall back to placeholder
// content, and mutations fail with ErrNotConfigured.
func NewDisabledClient() Client {
	return &disabledClient{}
}

type disabledClient struct{}

func (c *disabledClient) Select(_ context.Context, _ string, _ SelectOptions, _ any) error {
	return nil
}

func (c *disabledClient) Count(_ context.Context, _ string, _ map[string]string) (int, error) {
	return 0, nil
}

func (c *disabledClient) Insert(_ context.Context, _ string, _ any, _ any) error {
	return ErrNotConfigured
}

func (c *disabledClient) Update(_ context.Context, _, _ string, _ any) error {
	return ErrNotConfigured
}

func (c *disabledClient) Delete(_ context.Context, _, _ string) error {
	return ErrNotConfigured
}

func (c *disabledClient) Auth() AuthClient {
	return &disabledAuth{}
}

func (c *disabledClient) Storage() StorageClient {
	return &disabledStorage{}
}

func (c *disabledClient) CheckConnection(_ context.Context) error {
	return ErrNotConfigured
}

func (c *disabledClient) InvalidateCache() {
}

func (c *disabledClient) Shutdown() {
}

type disabledAuth struct{}

func (a *disabledAuth) SignIn(_ context.Context, _, _ string) (Session, error) {
	return Session{}, ErrNotConfigured
}

func (a *disabledAuth) SignOut(_ context.Context, _ string) error {
	return nil
}

func (a *disabledAuth) Principal(_ context.Context, _ string) (Principal, error) {
	return Principal{}, ErrNotConfigured
}

type disabledStorage struct{}

func (s *disabledStorage) Upload(_ context.Context, _, _ string, _ []byte, _ string) (string, error) {
	return "", ErrNotConfigured
}

func (s *disabledStorage) PublicURL(_, _ string) string {
	return ""
}

func (s *disabledStorage) Remove(_ context.Context, _ string, _ []string) error {
	return ErrNotConfigured
}
