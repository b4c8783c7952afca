package transport

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/jmgilman/iostep/errors"
	"github.com/jmgilman/iostep/logging"
)

// Client sends Requests over net/http.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *logging.Logger
}

// Option configures a Client.
type Option func(*config)

type config struct {
	httpClient      *http.Client
	userAgent       string
	timeout         time.Duration
	followRedirects bool
	logger          *logging.Logger
}

// WithHTTPClient uses c instead of a fresh *http.Client. Timeout and redirect
// options are applied to a copy, never to c itself.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) { cfg.httpClient = c }
}

// WithUserAgent sets the User-Agent sent when a Request has none.
func WithUserAgent(ua string) Option {
	return func(cfg *config) { cfg.userAgent = ua }
}

// WithTimeout bounds the whole exchange. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) { cfg.timeout = d }
}

// WithFollowRedirects controls whether 3xx responses are followed. When
// disabled the 3xx response itself is returned.
func WithFollowRedirects(follow bool) Option {
	return func(cfg *config) { cfg.followRedirects = follow }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *logging.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// New creates a Client.
func New(opts ...Option) *Client {
	cfg := &config{followRedirects: true}
	for _, opt := range opts {
		opt(cfg)
	}

	var hc http.Client
	if cfg.httpClient != nil {
		hc = *cfg.httpClient
	}
	if cfg.timeout > 0 {
		hc.Timeout = cfg.timeout
	}
	if !cfg.followRedirects {
		hc.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		httpClient: &hc,
		userAgent:  cfg.userAgent,
		logger:     logging.OrNop(cfg.logger).WithComponent("transport"),
	}
}

// Get performs one GET and returns the fully read response. The response body
// is closed before Get returns on every path.
func (c *Client) Get(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.New(errors.CodeInvalidInput, "request cannot be nil")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.url, nil)
	if err != nil {
		return nil, c.transportError(ctx, err, "failed to build request", req)
	}
	httpReq.Header = req.Header()
	if httpReq.Header.Get("User-Agent") == "" && c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	c.logger.Debug(ctx, "sending request", "url", req.url)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError(ctx, err, "failed to send request", req)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(ctx, err, "failed to read response body", req)
	}

	c.logger.Debug(ctx, "received response",
		"url", req.url,
		"status_code", resp.StatusCode,
		"size", len(body),
		"duration_ms", time.Since(start).Milliseconds())

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

func (c *Client) transportError(ctx context.Context, err error, message string, req *Request) error {
	c.logger.Debug(ctx, message, "url", req.url, "error", err.Error())
	return errors.WrapWithContext(err, errors.CodeTransport, message, map[string]any{"url": req.url})
}
