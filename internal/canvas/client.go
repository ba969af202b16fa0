package canvas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Client is a Canvas LMS API client.
//
// It holds the connection context (base URL, bearer token, HTTP client)
// created once at process start. The zero http.Client pools connections,
// so a single Client is safe for concurrent tool invocations.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Used by tests and by
// callers that need custom transport settings.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Canvas API client.
//
// baseURL is the API root (e.g. https://canvas.instructure.com/api/v1);
// trailing slashes are normalized away. token is a static bearer token
// injected on every request.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("canvas API URL is required")
	}
	if token == "" {
		return nil, fmt.Errorf("canvas API token is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request performs one HTTP call against {baseURL}/{endpoint}.
//
// Supported methods are GET, POST, PUT and DELETE. GET and DELETE pass
// parameters as the query string; POST and PUT send form-encoded bodies
// with Canvas's bracketed field names. On success the decoded JSON body
// is returned, or an empty map when the response has no (JSON) content.
// Every failure, transport-level or non-2xx, is returned as *APIError.
func (c *Client) Request(ctx context.Context, method, endpoint string, query, form url.Values) (any, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %q", method)
	}

	reqURL := c.baseURL + "/" + strings.Trim(endpoint, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if (method == http.MethodPost || method == http.MethodPut) && len(form) > 0 {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	c.logger.Debug("canvas API request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response at all: pure network failure.
		return nil, &APIError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(raw, resp.Status),
		}
		c.logger.Debug("canvas API error response",
			"status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Non-JSON success bodies are treated as an empty result.
		c.logger.Debug("canvas API returned non-JSON body", "status", resp.StatusCode)
		return map[string]any{}, nil
	}
	return decoded, nil
}

// get issues a read request with optional query parameters.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (any, error) {
	return c.Request(ctx, http.MethodGet, endpoint, query, nil)
}

// post issues a create request with a form-encoded payload.
func (c *Client) post(ctx context.Context, endpoint string, form url.Values) (any, error) {
	return c.Request(ctx, http.MethodPost, endpoint, nil, form)
}

// put issues an update request with a form-encoded payload.
func (c *Client) put(ctx context.Context, endpoint string, form url.Values) (any, error) {
	return c.Request(ctx, http.MethodPut, endpoint, nil, form)
}

// delete issues a delete request.
func (c *Client) delete(ctx context.Context, endpoint string) (any, error) {
	return c.Request(ctx, http.MethodDelete, endpoint, nil, nil)
}
