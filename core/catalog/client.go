package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API is the interface the rest of the application uses to talk to the
// catalog service. It is satisfied by *Client and mocked in tests.
type API interface {
	// Search queries the catalog for tickets in the given category matching
	// the fulltext query.
	Search(ctx context.Context, category, text string) (*SearchResponse, error)
	// PartsList fetches a single page of the parts list for a kit.
	PartsList(ctx context.Context, kitID int, page int) (*PartsListResponse, error)
}

// Client is an HTTP client for the catalog service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client based on the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Strict transport timeouts so a stuck catalog can't hang a fetch forever
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

// Search queries the catalog for tickets in the given category matching the
// fulltext query.
func (c *Client) Search(ctx context.Context, category, text string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("category", category)
	params.Set("text", text)

	var resp SearchResponse
	if err := c.getJSON(ctx, "/catalog/search?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}
	return &resp, nil
}

// PartsList fetches a single page of the parts list for a kit.
func (c *Client) PartsList(ctx context.Context, kitID int, page int) (*PartsListResponse, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))

	var resp PartsListResponse
	path := fmt.Sprintf("/catalog/partslist/%d?%s", kitID, params.Encode())
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("catalog partslist page %d failed: %w", page, err)
	}
	return &resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
