package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/iostep/errors"
)

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https", url: "https://api.github.com/users/octocat"},
		{name: "http", url: "http://localhost:8080/x"},
		{name: "relative", url: "/users/octocat", wantErr: true},
		{name: "ftp scheme", url: "ftp://example.com/file", wantErr: true},
		{name: "unparseable", url: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.url, req.URL())
		})
	}
}

func TestRequest_HeaderIsCopy(t *testing.T) {
	req, err := NewRequest("https://example.com", WithHeader("Accept", "application/json"))
	require.NoError(t, err)

	h := req.Header()
	h.Set("Accept", "text/plain")

	assert.Equal(t, "application/json", req.Header().Get("Accept"))
}

func TestClient_Get(t *testing.T) {
	t.Parallel()

	seen := make(chan *http.Request, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"login":"octocat"}`))
	}))
	t.Cleanup(server.Close)

	client := New(WithUserAgent("iostep-test"))
	req, err := NewRequest(server.URL + "/users/octocat")
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), req)
	require.NoError(t, err)

	got := <-seen
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "iostep-test", got.Header.Get("User-Agent"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, `{"login":"octocat"}`, string(resp.Body))
}

func TestClient_Get_RequestUserAgentWins(t *testing.T) {
	t.Parallel()

	uas := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		uas <- r.Header.Get("User-Agent")
	}))
	t.Cleanup(server.Close)

	req, err := NewRequest(server.URL, WithRequestUserAgent("Mercateo/rust-for-node-developers"))
	require.NoError(t, err)

	_, err = New(WithUserAgent("default")).Get(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Mercateo/rust-for-node-developers", <-uas)
}

func TestClient_Get_ErrorStatusIsNotTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	req, err := NewRequest(server.URL)
	require.NoError(t, err)

	resp, err := New().Get(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClient_Get_ConnectionRefused(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	req, err := NewRequest(url)
	require.NoError(t, err)

	resp, err := New().Get(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, errors.CodeTransport, errors.GetCode(err))
	assert.True(t, errors.IsRetryable(err))

	v, ok := errors.GetContext(err, "url")
	require.True(t, ok)
	assert.Equal(t, url, v)
}

func TestClient_Get_TruncatedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("short"))
	}))
	t.Cleanup(server.Close)

	req, err := NewRequest(server.URL)
	require.NoError(t, err)

	_, err = New().Get(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, errors.CodeTransport, errors.GetCode(err))
}

func TestClient_Get_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	req, err := NewRequest(server.URL)
	require.NoError(t, err)

	_, err = New(WithTimeout(50 * time.Millisecond)).Get(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, errors.CodeTransport, errors.GetCode(err))
}

func TestClient_Get_CancelledContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	t.Cleanup(server.Close)

	req, err := NewRequest(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = New().Get(ctx, req)
	require.Error(t, err)
	assert.Equal(t, errors.CodeTransport, errors.GetCode(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Get_Redirects(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("moved"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	req, err := NewRequest(server.URL + "/old")
	require.NoError(t, err)

	t.Run("followed by default", func(t *testing.T) {
		resp, err := New().Get(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "moved", string(resp.Body))
	})

	t.Run("disabled", func(t *testing.T) {
		resp, err := New(WithFollowRedirects(false)).Get(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	})
}

func TestClient_Get_NilRequest(t *testing.T) {
	_, err := New().Get(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestWithHTTPClient_DoesNotMutateCaller(t *testing.T) {
	hc := &http.Client{}
	_ = New(WithHTTPClient(hc), WithTimeout(time.Second), WithFollowRedirects(false))

	assert.Zero(t, hc.Timeout)
	assert.Nil(t, hc.CheckRedirect)
}
