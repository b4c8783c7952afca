package repos

import (
	"context"
	"net/url"
	"strings"

	"github.com/jmgilman/iostep/decode"
	"github.com/jmgilman/iostep/errors"
	"github.com/jmgilman/iostep/logging"
	"github.com/jmgilman/iostep/pipeline"
	"github.com/jmgilman/iostep/transport"
)

// DefaultURLTemplate is the public GitHub listing endpoint. "{owner}" is
// replaced with the path-escaped owner.
const DefaultURLTemplate = "https://api.github.com/users/{owner}/repos"

const ownerPlaceholder = "{owner}"

// acceptHeader asks GitHub for its stable JSON media type.
const acceptHeader = "application/vnd.github+json"

// HTTPSource lists repositories with a single validated GET.
type HTTPSource struct {
	client   *transport.Client
	runner   *pipeline.Runner
	template string
}

var _ Source = (*HTTPSource)(nil)

// NewHTTPSource creates a source that sends requests through client. An
// empty template means DefaultURLTemplate.
func NewHTTPSource(client *transport.Client, template string, logger *logging.Logger) *HTTPSource {
	if client == nil {
		client = transport.New()
	}
	if template == "" {
		template = DefaultURLTemplate
	}
	return &HTTPSource{
		client:   client,
		runner:   pipeline.NewRunner(logger),
		template: template,
	}
}

// URL returns the listing URL for owner.
func (s *HTTPSource) URL(owner string) string {
	return strings.ReplaceAll(s.template, ownerPlaceholder, url.PathEscape(owner))
}

// List fetches, validates and decodes the owner's first page of
// repositories.
func (s *HTTPSource) List(ctx context.Context, owner string) ([]decode.Record, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}

	req, err := transport.NewRequest(s.URL(owner), transport.WithHeader("Accept", acceptHeader))
	if err != nil {
		return nil, err
	}

	records, err := s.runner.FetchRecords(ctx, s.client, req)
	if err != nil {
		return nil, errors.WithContext(err, "owner", owner)
	}
	return records, nil
}
