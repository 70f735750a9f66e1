package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gifdex/gifdex/internal/domain"
)

const (
	// DefaultBaseURL is the public Giphy API endpoint
	DefaultBaseURL = "https://api.giphy.com"

	searchPath     = "/v1/gifs/search"
	defaultTimeout = 30 * time.Second
	userAgent      = "Gifdex/1.0"
)

// Client implements domain.SearchRepository against the Giphy search API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Giphy API client. An empty baseURL falls back to
// the public endpoint.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Search returns up to limit results for the given tag.
func (c *Client) Search(ctx context.Context, tag string, limit int) ([]domain.Gif, error) {
	if limit <= 0 {
		limit = 10
	}

	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("q", tag)

	body, err := c.doRequest(ctx, searchPath, query)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return mapGifs(resp.Data), nil
}

// doRequest performs an authenticated HTTP GET
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("giphy request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("giphy request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, domain.ErrAuthFailed
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("giphy request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}
