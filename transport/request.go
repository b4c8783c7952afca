package transport

import (
	"net/http"
	"net/url"

	"github.com/jmgilman/iostep/errors"
)

// Request is an immutable GET request description.
type Request struct {
	url     string
	headers http.Header
}

// RequestOption configures a Request under construction.
type RequestOption func(*Request)

// WithHeader sets a request header. Later values for the same name replace
// earlier ones.
func WithHeader(name, value string) RequestOption {
	return func(r *Request) {
		r.headers.Set(name, value)
	}
}

// WithRequestUserAgent sets the User-Agent header on this request only.
func WithRequestUserAgent(ua string) RequestOption {
	return WithHeader("User-Agent", ua)
}

// NewRequest validates rawURL and returns a Request. Only absolute http and
// https URLs are accepted.
func NewRequest(rawURL string, opts ...RequestOption) (*Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "invalid request URL",
			map[string]any{"url": rawURL})
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err := errors.New(errors.CodeInvalidInput, "request URL must be absolute http or https")
		return nil, errors.WithContext(err, "url", rawURL)
	}

	r := &Request{url: rawURL, headers: make(http.Header)}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// URL returns the request URL.
func (r *Request) URL() string {
	return r.url
}

// Header returns a copy of the request headers.
func (r *Request) Header() http.Header {
	return r.headers.Clone()
}
