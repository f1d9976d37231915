package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"medadvisor/internal/logging"
)

// LoginView names the view the client redirects to when the server reports
// an expired session.
const LoginView = "login"

const requestIDHeader = "X-Request-Id"

// Redirector reacts to authentication expiry by sending the user to the
// login view. CurrentView reports where the user currently is so the client
// never redirects while the login view is already showing.
type Redirector interface {
	CurrentView() string
	RedirectToLogin(from string)
}

// HTTPClient is the single point of outbound communication with the
// advisory backend. A cookie jar carries the server session cookie on every
// call, and every response is passed through a global 401 interceptor that
// invalidates the cached session and redirects to the login view.
type HTTPClient struct {
	baseURL    *url.URL
	hc         *http.Client
	log        logging.Logger
	clearCache func()
	redirector Redirector
}

type Option func(*HTTPClient)

// WithTimeout bounds every request issued by the client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.hc.Timeout = d }
}

// WithLogger attaches a structured logger for request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithSessionInvalidator registers the callback run on every 401 response.
// It is expected to clear the durable identity cache.
func WithSessionInvalidator(fn func()) Option {
	return func(c *HTTPClient) { c.clearCache = fn }
}

// WithRedirector registers the navigation hook consulted after a 401.
func WithRedirector(r Redirector) Option {
	return func(c *HTTPClient) { c.redirector = r }
}

// NewHTTPClient builds a client for the given base URL. The URL is required
// and must parse; a missing value is a configuration error the caller should
// treat as fatal.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base URL %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	c := &HTTPClient{
		baseURL: u,
		hc:      &http.Client{Jar: jar, Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases idle connections held by the underlying transport.
func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// do performs one HTTP exchange and applies the global response rules:
// network failures map to ErrUnavailable, 401 triggers the session
// invalidation side effects, and other non-2xx statuses become ServerError
// with any server-provided message attached.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	u := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logWarn(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, ErrUnavailable)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateSession(ctx)
		return nil, &ServerError{Status: resp.StatusCode, Message: extractMessage(data)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{Status: resp.StatusCode, Message: extractMessage(data)}
	}

	return data, nil
}

// invalidateSession implements the global 401 rule: drop the durable
// identity cache, then redirect to the login view unless it is already the
// current view. It fires for every call, regardless of which operation
// triggered it.
func (c *HTTPClient) invalidateSession(ctx context.Context) {
	c.logWarn(ctx, "session rejected by server, clearing cached identity")
	if c.clearCache != nil {
		c.clearCache()
	}
	if c.redirector != nil && c.redirector.CurrentView() != LoginView {
		c.redirector.RedirectToLogin(c.redirector.CurrentView())
	}
}

func (c *HTTPClient) logWarn(ctx context.Context, msg string, args ...any) {
	if c.log != nil {
		c.log.Warn(ctx, msg, args...)
	}
}

// requestJSON marshals v and issues a request with a JSON content type.
func (c *HTTPClient) requestJSON(ctx context.Context, method, path string, v any) ([]byte, error) {
	var body io.Reader
	if v != nil {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, body, "application/json")
}

// extractMessage pulls the "message" field out of an error body, if any.
func extractMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}
