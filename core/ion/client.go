package ion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Authorizer supplies the Authorization header value for upstream calls.
type Authorizer interface {
	AuthorizationValue(ctx context.Context) (string, error)
}

// Client performs authorized JSON calls against the ION API for one tenant.
type Client struct {
	baseURL string
	http    *http.Client
	auth    Authorizer
	logger  *zap.Logger
}

// NewHTTPClient builds the shared HTTP client with strict transport timeouts.
func NewHTTPClient(cfg Config) *http.Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

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

	return &http.Client{Transport: transport, Timeout: timeoutDuration}
}

// NewClient creates an ION client rooted at <APIURL>/<TenantID>.
func NewClient(cfg Config, httpClient *http.Client, auth Authorizer, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(cfg)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	base := strings.TrimSuffix(cfg.APIURL, "/")
	if cfg.TenantID != "" {
		base += "/" + cfg.TenantID
	}
	return &Client{
		baseURL: base,
		http:    httpClient,
		auth:    auth,
		logger:  logger,
	}
}

// BaseURL returns the tenant-scoped base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Patch sends body as JSON with PATCH and decodes the response into out when non-nil.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

// Post sends body as JSON with POST and decodes the response into out when non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Do performs an authorized request. Failures are returned as *UpstreamError,
// except credential failures which are returned unchanged.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	authValue, err := c.auth.AuthorizationValue(ctx)
	if err != nil {
		return err
	}

	target := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s payload: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &UpstreamError{Kind: kindFor(method), Method: method, Path: path, Err: err}
	}
	req.Header.Set("Authorization", authValue)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Upstream request", zap.String("method", method), zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Kind: kindFor(method), Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Kind: kindFor(method), Method: method, Path: path, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &UpstreamError{
			Kind:       kindFor(method),
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       snippet(data),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &UpstreamError{Kind: kindFor(method), Method: method, Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
