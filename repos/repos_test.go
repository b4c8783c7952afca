package repos_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/iostep/decode"
	"github.com/jmgilman/iostep/errors"
	"github.com/jmgilman/iostep/repos"
	"github.com/jmgilman/iostep/status"
	"github.com/jmgilman/iostep/transport"
)

const listing = `[
	{"id": 1, "name": "a", "full_name": "octo/a", "description": "x", "fork": false, "owner": {"login": "octo"}},
	{"id": 2, "name": "b", "full_name": "octo/b", "description": null, "fork": true, "owner": {"login": "octo"}}
]`

func wantListing() []decode.Record {
	desc := "x"
	return []decode.Record{
		{Name: "a", Description: &desc},
		{Name: "b", Fork: true},
	}
}

// newServer serves the user listing for "octo" and the given status for
// everyone else.
func newServer(t *testing.T, otherStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listing))
	})
	mux.HandleFunc("/users/broken/repos", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": 5}`))
	})
	mux.HandleFunc("/users/nameless/repos", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"description": "no name, no fork"}]`))
	})
	mux.HandleFunc("/users/forkless/repos", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "a", "fork": false}, {"name": "b"}]`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(otherStatus)
		_, _ = w.Write([]byte(`{"message": "nope"}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestHTTPSource_List(t *testing.T) {
	t.Parallel()

	server := newServer(t, http.StatusNotFound)
	src := repos.NewHTTPSource(transport.New(), server.URL+"/users/{owner}/repos", nil)

	got, err := src.List(context.Background(), "octo")
	require.NoError(t, err)
	if diff := cmp.Diff(wantListing(), got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTPSource_URL(t *testing.T) {
	t.Parallel()

	src := repos.NewHTTPSource(nil, "", nil)
	assert.Equal(t, "https://api.github.com/users/donaldpipowitch/repos", src.URL("donaldpipowitch"))
	assert.Equal(t, "https://api.github.com/users/a%2Fb/repos", src.URL("a/b"))
}

func TestHTTPSource_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		owner  string
		want   errors.ErrorCode
	}{
		{name: "unknown user", status: http.StatusNotFound, owner: "ghost", want: errors.CodeClientError},
		{name: "server error", status: http.StatusServiceUnavailable, owner: "ghost", want: errors.CodeServerError},
		{name: "bad body", status: http.StatusNotFound, owner: "broken", want: errors.CodeSchemaFailed},
		{name: "missing required fields", status: http.StatusNotFound, owner: "nameless", want: errors.CodeSchemaFailed},
		{name: "empty owner", status: http.StatusNotFound, owner: "", want: errors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newServer(t, tt.status)
			src := repos.NewHTTPSource(transport.New(), server.URL+"/users/{owner}/repos", nil)

			got, err := src.List(context.Background(), tt.owner)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tt.want, errors.GetCode(err))
		})
	}
}

func TestNewSDKSource_Options(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []repos.SDKOption
	}{
		{name: "empty token", opts: []repos.SDKOption{repos.WithToken("")}},
		{name: "nil client", opts: []repos.SDKOption{repos.WithClient(nil)}},
		{name: "empty base url", opts: []repos.SDKOption{repos.WithBaseURL("")}},
		{name: "per page too large", opts: []repos.SDKOption{repos.WithPerPage(101)}},
		{name: "negative per page", opts: []repos.SDKOption{repos.WithPerPage(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := repos.NewSDKSource(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, src)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}

	t.Run("no options", func(t *testing.T) {
		t.Parallel()

		src, err := repos.NewSDKSource()
		require.NoError(t, err)
		assert.NotNil(t, src)
	})
}

func TestSDKSource_List(t *testing.T) {
	t.Parallel()

	server := newServer(t, http.StatusNotFound)
	src, err := repos.NewSDKSource(repos.WithBaseURL(server.URL), repos.WithToken("test-token"), repos.WithPerPage(50))
	require.NoError(t, err)

	got, err := src.List(context.Background(), "octo")
	require.NoError(t, err)
	if diff := cmp.Diff(wantListing(), got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestSDKSource_SendsPerPage(t *testing.T) {
	t.Parallel()

	perPage := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		perPage <- r.URL.Query().Get("per_page")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	src, err := repos.NewSDKSource(repos.WithBaseURL(server.URL), repos.WithPerPage(7))
	require.NoError(t, err)

	got, err := src.List(context.Background(), "octo")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "7", <-perPage)
}

func TestSDKSource_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		owner      string
		want       errors.ErrorCode
		wantStatus int
	}{
		{name: "unknown user", status: http.StatusNotFound, owner: "ghost", want: errors.CodeClientError, wantStatus: 404},
		{name: "forbidden", status: http.StatusForbidden, owner: "ghost", want: errors.CodeClientError, wantStatus: 403},
		{name: "server error", status: http.StatusBadGateway, owner: "ghost", want: errors.CodeServerError, wantStatus: 502},
		{name: "bad body", status: http.StatusNotFound, owner: "broken", want: errors.CodeSchemaFailed},
		{name: "missing name and fork", status: http.StatusNotFound, owner: "nameless", want: errors.CodeSchemaFailed},
		{name: "one element missing fork", status: http.StatusNotFound, owner: "forkless", want: errors.CodeSchemaFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newServer(t, tt.status)
			src, err := repos.NewSDKSource(repos.WithBaseURL(server.URL))
			require.NoError(t, err)

			got, err := src.List(context.Background(), tt.owner)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tt.want, errors.GetCode(err))

			if tt.wantStatus != 0 {
				code, ok := status.StatusCode(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantStatus, code)
			}
		})
	}
}

func TestSDKSource_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	src, err := repos.NewSDKSource(repos.WithBaseURL(url))
	require.NoError(t, err)

	_, err = src.List(context.Background(), "octo")
	require.Error(t, err)
	assert.Equal(t, errors.CodeTransport, errors.GetCode(err))
}

func TestSources_AreInterchangeable(t *testing.T) {
	t.Parallel()

	server := newServer(t, http.StatusNotFound)
	sdk, err := repos.NewSDKSource(repos.WithBaseURL(server.URL))
	require.NoError(t, err)

	sources := map[string]repos.Source{
		"http": repos.NewHTTPSource(transport.New(), server.URL+"/users/{owner}/repos", nil),
		"sdk":  sdk,
	}

	for name, src := range sources {
		got, err := src.List(context.Background(), "octo")
		require.NoError(t, err, name)
		assert.Equal(t, wantListing(), got, name)
	}
}

func TestSDKSource_MissingFieldsReportIssues(t *testing.T) {
	t.Parallel()

	server := newServer(t, http.StatusNotFound)
	src, err := repos.NewSDKSource(repos.WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = src.List(context.Background(), "nameless")
	require.Error(t, err)

	raw, ok := errors.GetContext(err, "issues")
	require.True(t, ok)
	assert.Equal(t, []string{
		"0.name: missing required field",
		"0.fork: missing required field",
	}, raw)
}

func TestSources_AgreeOnSchemaFailures(t *testing.T) {
	t.Parallel()

	server := newServer(t, http.StatusNotFound)
	sdk, err := repos.NewSDKSource(repos.WithBaseURL(server.URL))
	require.NoError(t, err)

	sources := map[string]repos.Source{
		"http": repos.NewHTTPSource(transport.New(), server.URL+"/users/{owner}/repos", nil),
		"sdk":  sdk,
	}

	for name, src := range sources {
		for _, owner := range []string{"nameless", "forkless"} {
			got, err := src.List(context.Background(), owner)
			require.Error(t, err, "%s/%s", name, owner)
			assert.Nil(t, got, "%s/%s", name, owner)
			assert.Equal(t, errors.CodeSchemaFailed, errors.GetCode(err), "%s/%s", name, owner)
		}
	}
}

func TestSDKSource_HTTPClientTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	src, err := repos.NewSDKSource(
		repos.WithBaseURL(server.URL),
		repos.WithSDKHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}),
	)
	require.NoError(t, err)

	_, err = src.List(context.Background(), "octo")
	require.Error(t, err)
	assert.Equal(t, errors.CodeTransport, errors.GetCode(err))
}
