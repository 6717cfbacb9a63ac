package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type restStorage struct {
	client *restClient
}

func (s *restStorage) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	endpoint := s.client.baseURL + "/storage/v1/object/" + bucket + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	s.client.authorize(req, "")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload to %s failed: %w", bucket, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", apiError("storage", resp.StatusCode, body)
	}
	return s.PublicURL(bucket, path), nil
}

func (s *restStorage) PublicURL(bucket, path string) string {
	return s.client.baseURL + "/storage/v1/object/public/" + bucket + "/" + path
}

func (s *restStorage) Remove(ctx context.Context, bucket string, paths []string) error {
	payload, err := json.Marshal(map[string][]string{"prefixes": paths})
	if err != nil {
		return fmt.Errorf("failed to encode remove request: %w", err)
	}

	endpoint := s.client.baseURL + "/storage/v1/object/" + bucket
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	s.client.authorize(req, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remove from %s failed: %w", bucket, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read remove response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return apiError("storage", resp.StatusCode, body)
	}
	return nil
}
