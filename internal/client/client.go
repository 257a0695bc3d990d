// Package client is the HTTP transport used by the auction repository. It sends JSON
// requests against a fixed base URL and reports any non-2xx answer as a *StatusError.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"auction-client/internal/biddingerrors"
	"auction-client/utils"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "auction-client/1.0"

	// error bodies are only kept for diagnostics
	maxErrorBody = 4 << 10
)

// Config configures a Client
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client issues JSON requests against the auction API. It is safe for concurrent use
// and is not modified after New returns.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// StatusError reports a response outside the 2xx range
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return biddingerrors.ErrUnexpectedStatus
}

// New validates cfg and builds a client with a fixed timeout ceiling on every request
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", cfg.BaseURL, err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be an absolute http(s) url", cfg.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: timeout}).DialContext
	transport.ResponseHeaderTimeout = timeout

	return &Client{
		baseURL:   base,
		http:      &http.Client{Transport: transport, Timeout: timeout},
		userAgent: userAgent,
	}, nil
}

// BaseURL returns the root every request path is resolved against
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get decodes the JSON body of GET path?query into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends body as JSON and decodes the answer into out, which may be nil
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Patch sends body as JSON and decodes the answer into out, which may be nil
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues DELETE path and discards the answer
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.resolve(path, query)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s %s: create request: %w", method, path, err)
	}

	requestID := utils.RequestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w: %w", method, path, biddingerrors.ErrTransport, ctxErr)
		}
		return fmt.Errorf("%s %s: %w: %v", method, path, biddingerrors.ErrTransport, err)
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			utils.Debug("failed to close response body", map[string]any{"error": closeErr.Error()})
		}
	}()

	utils.Debug("http call", map[string]any{
		"method":     method,
		"path":       path,
		"status":     res.StatusCode,
		"latency":    time.Since(start).String(),
		"request_id": requestID,
	})

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s %s: %w: empty body", method, path, biddingerrors.ErrDecode)
		}
		return fmt.Errorf("%s %s: %w: %v", method, path, biddingerrors.ErrDecode, err)
	}
	return nil
}

// resolve joins path onto the base url, keeping any path prefix of the base
func (c *Client) resolve(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + strings.TrimPrefix(path, "/")
	u.RawPath = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}
