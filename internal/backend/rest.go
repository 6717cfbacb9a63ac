package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"boxpro/config"
	"boxpro/internal/cache"
)

type restClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      *cache.Cache
	stopChan   chan struct{}
}

// NewPublicClient returns a client authenticated with the anonymous key.
// Reads go through a short TTL cache so repeated page loads and gallery
// filter changes do not hit the backend again.
func NewPublicClient(cfg config.BackendConfig) (Client, error) {
	return newRESTClient(cfg, cfg.AnonKey, true)
}

// NewAdminClient returns a client authenticated with the service key, or
// the anonymous key when no service key is set. Admin reads are never
// cached so listings reflect mutations immediately.
func NewAdminClient(cfg config.BackendConfig) (Client, error) {
	key := cfg.ServiceKey
	if key == "" {
		key = cfg.AnonKey
	}
	return newRESTClient(cfg, key, false)
}

func newRESTClient(cfg config.BackendConfig, apiKey string, cached bool) (Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("backend URL is empty")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("backend API key is empty")
	}

	c := &restClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     apiKey,
	}

	if cached {
		c.cache = cache.New(5 * time.Minute)
		c.stopChan = make(chan struct{})
		go func() {
			ticker := time.NewTicker(1 * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					c.cache.Cleanup()
				case <-c.stopChan:
					return
				}
			}
		}()
	}

	return c, nil
}

// Shutdown stops background goroutines.
func (c *restClient) Shutdown() {
	if c.stopChan != nil {
		close(c.stopChan)
	}
}

// InvalidateCache drops all cached read results.
func (c *restClient) InvalidateCache() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// CacheLen reports the number of cached read results.
func (c *restClient) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// CheckConnection verifies that the data API answers.
func (c *restClient) CheckConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req, "")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend health check returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *restClient) Select(ctx context.Context, collection string, opts SelectOptions, dest any) error {
	query := selectQuery(opts)
	endpoint := c.baseURL + "/rest/v1/" + collection + "?" + query

	if c.cache != nil {
		if cached, found := c.cache.Get(endpoint); found {
			if raw, ok := cached.([]byte); ok {
				return json.Unmarshal(raw, dest)
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", collection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", collection, err)
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(collection, resp.StatusCode, body)
	}

	if c.cache != nil {
		c.cache.Set(endpoint, body)
	}
	return json.Unmarshal(body, dest)
}

func (c *restClient) Count(ctx context.Context, collection string, filter map[string]string) (int, error) {
	values := url.Values{}
	values.Set("select", "id")
	addFilters(values, filter)
	endpoint := c.baseURL + "/rest/v1/" + collection + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req, "")
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return 0, fmt.Errorf("count of %s returned status %d", collection, resp.StatusCode)
	}
	return parseContentRange(resp.Header.Get("Content-Range"))
}

func (c *restClient) Insert(ctx context.Context, collection string, record any, dest any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", collection, err)
	}

	endpoint := c.baseURL + "/rest/v1/" + collection
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req, "")
	req.Header.Set("Content-Type", "application/json")
	if dest != nil {
		req.Header.Set("Prefer", "return=representation")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", collection, err)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return apiError(collection, resp.StatusCode, body)
	}

	c.InvalidateCache()
	if dest != nil {
		return json.Unmarshal(body, dest)
	}
	return nil
}

func (c *restClient) Update(ctx context.Context, collection, id string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", collection, err)
	}

	endpoint := c.baseURL + "/rest/v1/" + collection + "?id=eq." + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req, "")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", collection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", collection, err)
	}
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return apiError(collection, resp.StatusCode, body)
	}

	c.InvalidateCache()
	return nil
}

func (c *restClient) Delete(ctx context.Context, collection, id string) error {
	endpoint := c.baseURL + "/rest/v1/" + collection + "?id=eq." + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", collection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", collection, err)
	}
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return apiError(collection, resp.StatusCode, body)
	}

	c.InvalidateCache()
	return nil
}

func (c *restClient) Auth() AuthClient {
	return &restAuth{client: c}
}

func (c *restClient) Storage() StorageClient {
	return &restStorage{client: c}
}

// authorize sets the API key headers. A non-empty accessToken replaces the
// API key as bearer so requests run as the signed-in user.
func (c *restClient) authorize(req *http.Request, accessToken string) {
	req.Header.Set("apikey", c.apiKey)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// selectQuery builds the data API query string for a read. Filter keys are
// sorted so identical reads hit the same cache entry.
func selectQuery(opts SelectOptions) string {
	values := url.Values{}

	selectExpr := "*"
	if len(opts.Embed) > 0 {
		selectExpr = "*," + strings.Join(opts.Embed, ",")
	}
	values.Set("select", selectExpr)

	addFilters(values, opts.Filter)

	var order []string
	if opts.OrderBy != "" {
		order = append(order, opts.OrderBy+direction(opts.Descending))
	}
	if opts.SecondaryOrderBy != "" {
		order = append(order, opts.SecondaryOrderBy+direction(opts.SecondaryDescending))
	}
	if len(order) > 0 {
		values.Set("order", strings.Join(order, ","))
	}

	if opts.Limit > 0 {
		values.Set("limit", strconv.Itoa(opts.Limit))
	}

	return values.Encode()
}

func addFilters(values url.Values, filter map[string]string) {
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		values.Set(k, "eq."+filter[k])
	}
}

func direction(descending bool) string {
	if descending {
		return ".desc"
	}
	return ".asc"
}

// parseContentRange extracts the exact count from a "0-24/3573" style
// Content-Range header.
func parseContentRange(header string) (int, error) {
	parts := strings.Split(header, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("unexpected Content-Range header %q", header)
	}
	count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("unexpected Content-Range count %q", parts[1])
	}
	return count, nil
}

func apiError(collection string, status int, body []byte) error {
	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("%s request failed with status %d: %s", collection, status, apiErr.Message)
	}
	return fmt.Errorf("%s request failed with status %d", collection, status)
}
