package greeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/huma-greeter/internal/platform/logging"
)

const (
	// DefaultBaseURL is the backend address used when none is configured.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 10 * time.Second

	helloPath    = "/hello"
	userAgent    = "huma-greeter"
	maxBodyBytes = 1 << 20
)

// Client implements Service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the backend address. A missing scheme defaults to http.
func WithBaseURL(addr string) Option {
	return func(c *Client) {
		c.baseURL = addr
	}
}

// WithTimeout bounds each fetch. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a greeting client. It fails only on an unusable base URL.
func NewClient(httpClient *http.Client, opts ...Option) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	base, err := normalizeBaseURL(c.baseURL)
	if err != nil {
		return nil, err
	}
	c.baseURL = base
	if c.timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %s", c.timeout)
	}
	return c, nil
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty base URL")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported base URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base URL %q has no host", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

type helloResponse struct {
	Message *string `json:"message"`
}

// Hello performs GET /hello and decodes the message.
func (c *Client) Hello(ctx context.Context) (*Greeting, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+helloPath, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		applog.LogWarn(ctx, "greeting fetch failed", zap.Error(err))
		return nil, &UpstreamError{Kind: UpstreamErrorKindUnavailable, cause: ErrUnavailable, err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &UpstreamError{
			Kind:   UpstreamErrorKindUnavailable,
			Status: resp.StatusCode,
			cause:  ErrUnavailable,
			err:    err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		applog.LogWarn(ctx, "greeting fetch unexpected status", zap.Int("status", resp.StatusCode))
		return nil, &UpstreamError{
			Kind:   UpstreamErrorKindStatus,
			Status: resp.StatusCode,
			Detail: problemDetail(body),
			cause:  ErrUnexpectedStatus,
		}
	}

	var out helloResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &UpstreamError{
			Kind:   UpstreamErrorKindMalformed,
			Status: resp.StatusCode,
			cause:  ErrMalformedResponse,
			err:    err,
		}
	}
	if out.Message == nil {
		return nil, &UpstreamError{
			Kind:   UpstreamErrorKindMalformed,
			Status: resp.StatusCode,
			Detail: "missing message",
			cause:  ErrMalformedResponse,
		}
	}

	applog.LogInfo(ctx, "greeting fetched", zap.Int("length", len(*out.Message)))
	return &Greeting{Message: *out.Message}, nil
}

// problemDetail extracts the detail of an RFC 9457 body, if any.
func problemDetail(body []byte) string {
	var p huma.ErrorModel
	if err := json.Unmarshal(body, &p); err != nil {
		return ""
	}
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

// Compile-time interface check
var _ Service = (*Client)(nil)
