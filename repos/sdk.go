package repos

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v67/github"

	"github.com/jmgilman/iostep/decode"
	"github.com/jmgilman/iostep/errors"
	"github.com/jmgilman/iostep/logging"
	"github.com/jmgilman/iostep/status"
)

// SDKSource lists repositories through go-github.
type SDKSource struct {
	client  *github.Client
	perPage int
	logger  *logging.Logger
}

var _ Source = (*SDKSource)(nil)

type sdkConfig struct {
	client     *github.Client
	httpClient *http.Client
	token      string
	baseURL    string
	userAgent  string
	perPage    int
	logger     *logging.Logger
}

// SDKOption configures an SDKSource.
type SDKOption func(*sdkConfig) error

// WithToken authenticates requests. Listing public repositories works
// without one, at a lower rate limit.
func WithToken(token string) SDKOption {
	return func(cfg *sdkConfig) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.token = token
		return nil
	}
}

// WithClient uses a preconfigured go-github client. Token, base URL, user
// agent and HTTP client options are then ignored.
func WithClient(client *github.Client) SDKOption {
	return func(cfg *sdkConfig) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// WithSDKHTTPClient sets the *http.Client go-github sends requests with.
func WithSDKHTTPClient(c *http.Client) SDKOption {
	return func(cfg *sdkConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithBaseURL points the client at another API root, such as a GitHub
// Enterprise server or a test server.
func WithBaseURL(baseURL string) SDKOption {
	return func(cfg *sdkConfig) error {
		if baseURL == "" {
			err := errors.New(errors.CodeInvalidInput, "base URL cannot be empty")
			return errors.WithContext(err, "field", "base_url")
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// WithSDKUserAgent overrides go-github's default User-Agent.
func WithSDKUserAgent(ua string) SDKOption {
	return func(cfg *sdkConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithPerPage sets the page size, 1 to 100. Zero keeps GitHub's default
// of 30.
func WithPerPage(n int) SDKOption {
	return func(cfg *sdkConfig) error {
		if n < 0 || n > 100 {
			err := errors.Newf(errors.CodeInvalidInput, "per page must be between 1 and 100, got %d", n)
			return errors.WithContext(err, "field", "per_page")
		}
		cfg.perPage = n
		return nil
	}
}

// WithSDKLogger sets the logger used for request tracing.
func WithSDKLogger(l *logging.Logger) SDKOption {
	return func(cfg *sdkConfig) error {
		cfg.logger = l
		return nil
	}
}

// NewSDKSource creates an SDKSource.
func NewSDKSource(opts ...SDKOption) (*SDKSource, error) {
	cfg := &sdkConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	client := cfg.client
	if client == nil {
		client = github.NewClient(cfg.httpClient)
		if cfg.token != "" {
			client = client.WithAuthToken(cfg.token)
		}
		if cfg.userAgent != "" {
			client.UserAgent = cfg.userAgent
		}
		if cfg.baseURL != "" {
			base := cfg.baseURL
			if !strings.HasSuffix(base, "/") {
				base += "/"
			}
			u, err := client.BaseURL.Parse(base)
			if err != nil {
				return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "invalid base URL",
					map[string]any{"base_url": cfg.baseURL})
			}
			client.BaseURL = u
		}
	}

	return &SDKSource{
		client:  client,
		perPage: cfg.perPage,
		logger:  logging.OrNop(cfg.logger).WithComponent("repos"),
	}, nil
}

// List returns the owner's first page of repositories.
func (s *SDKSource) List(ctx context.Context, owner string) ([]decode.Record, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}

	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: s.perPage},
	}
	s.logger.Debug(ctx, "listing repositories", "owner", owner, "per_page", s.perPage)

	repos, resp, err := s.client.Repositories.ListByUser(ctx, owner, opts)
	if err != nil {
		return nil, errors.WithContext(wrapSDKError(err, resp, "failed to list repositories"), "owner", owner)
	}

	if issues := checkRequired(repos); len(issues) > 0 {
		err := errors.New(errors.CodeSchemaFailed, "document does not match schema: "+strings.Join(issues, "; "))
		return nil, errors.WithContextMap(err, map[string]any{
			"schema": "records",
			"issues": issues,
			"owner":  owner,
		})
	}

	records := make([]decode.Record, 0, len(repos))
	for _, repo := range repos {
		records = append(records, convertRepository(repo))
	}
	return records, nil
}

// checkRequired applies the record schema's required fields to decoded
// repositories. go-github leaves absent fields nil, and a null name or fork
// is just as unusable. Issues use the same "index.field" paths as
// decode.RecordSchema.
func checkRequired(repos []*github.Repository) []string {
	var issues []string
	for i, repo := range repos {
		if repo == nil {
			issues = append(issues, fmt.Sprintf("%d: element is null", i))
			continue
		}
		if repo.Name == nil {
			issues = append(issues, fmt.Sprintf("%d.name: missing required field", i))
		}
		if repo.Fork == nil {
			issues = append(issues, fmt.Sprintf("%d.fork: missing required field", i))
		}
	}
	return issues
}

func convertRepository(repo *github.Repository) decode.Record {
	return decode.Record{
		Name:        repo.GetName(),
		Description: repo.Description,
		Fork:        repo.GetFork(),
	}
}

// wrapSDKError maps go-github failures onto the step error codes. 4xx and
// 5xx responses become client and server errors. A 2xx response that still
// failed could not be decoded. Anything else is a transport failure.
func wrapSDKError(err error, resp *github.Response, message string) error {
	statusCode := 0
	if resp != nil && resp.Response != nil {
		statusCode = resp.StatusCode
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		statusCode = ghErr.Response.StatusCode
	}

	var code errors.ErrorCode
	switch status.Classify(statusCode) {
	case status.ClientError:
		code = errors.CodeClientError
	case status.ServerError:
		code = errors.CodeServerError
	case status.Success:
		code = errors.CodeSchemaFailed
	default:
		return errors.Wrap(err, errors.CodeTransport, message)
	}
	return errors.WrapWithContext(err, code, message, map[string]any{"status_code": statusCode})
}
