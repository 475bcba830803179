package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvs-io/travis-client/internal/auth"
	internalhttp "github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

func TestClient_Headers(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "3", request.Header.Get("Travis-API-Version"))
		assert.Equal(t, "application/json", request.Header.Get("Accept"))
		assert.Equal(t, "token secret-token", request.Header.Get("Authorization"))
		assert.Equal(t, "travis-client-go", request.Header.Get("User-Agent"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"@type":"user","@href":"/user","id":1,"login":"alice"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewStaticTokenProvider("secret-token"))

	resp, err := client.Get(context.Background(), "/user", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), `"alice"`)
}

func TestClient_CustomUserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "my-tool/2.0", request.Header.Get("User-Agent"))
		assert.Empty(t, request.Header.Get("Authorization"))
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil, internalhttp.WithUserAgent("my-tool/2.0"))

	_, err := client.Get(context.Background(), "/", nil)
	require.NoError(t, err)
}

func TestClient_QueryParameters(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/repos", request.URL.Path)
		assert.Equal(t, "5", request.URL.Query().Get("limit"))
		assert.Equal(t, "true", request.URL.Query().Get("repository.active"))
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	query := url.Values{}
	query.Set("limit", "5")
	query.Set("repository.active", "true")

	_, err := client.Get(context.Background(), "/repos", query)
	require.NoError(t, err)
}

// A followed pagination href for a slug-addressed repository must reach the
// wire with its %2F intact.
func TestClient_FollowedHrefKeepsEncodedSlug(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/repo/acme%2Fwidget/builds", request.URL.EscapedPath())
		assert.Equal(t, "25", request.URL.Query().Get("offset"))
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	req, err := travis.FollowHref("/repo/acme%2Fwidget/builds?limit=25&offset=25")
	require.NoError(t, err)

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_PostJSONBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		var body map[string]any

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "main", body["branch"])

		writer.WriteHeader(http.StatusAccepted)
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Post(context.Background(), "/requests", map[string]string{"branch": "main"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestClient_PostRawBody(t *testing.T) {
	t.Parallel()

	raw := []byte("language: go\ngo:\n  - \"1.22\"\n")

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "text/plain", request.Header.Get("Content-Type"))

		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)
		assert.Equal(t, raw, body)

		_, _ = writer.Write([]byte(`{"warnings":[]}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Post(context.Background(), "/lint", raw)
	require.NoError(t, err)
}

func TestClient_StructuredError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"@type":"error","error_type":"not_found","error_message":"repository not found"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/repo/999", nil)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, travis.IsNotFound(err))

	apiErr := &travis.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "repository not found", apiErr.ErrorMessage)
}

func TestClient_UndecodableError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		_, _ = writer.Write([]byte(`<html>Bad Gateway</html>`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil, internalhttp.WithRetryConfig(0, time.Millisecond, time.Millisecond))

	_, err := client.Get(context.Background(), "/user", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, travis.ErrUndecodableResponse)
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if attempts.Add(1) < 3 {
			writer.WriteHeader(http.StatusInternalServerError)

			return
		}

		_, _ = writer.Write([]byte(`{"@type":"user","@href":"/user","id":1}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/user", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_CachesGETResponses(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
		_, _ = writer.Write([]byte(`{"@type":"repository","@href":"/repo/1","id":1}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithCache(travis.NewMemoryCache(10), time.Minute))

	first, err := client.Get(context.Background(), "/repo/1", nil)
	require.NoError(t, err)

	second, err := client.Get(context.Background(), "/repo/1", nil)
	require.NoError(t, err)

	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, int32(1), hits.Load())

	// A different query is a different cache identity.
	query := url.Values{}
	query.Set("include", "repository.env_vars")

	_, err = client.Get(context.Background(), "/repo/1", query)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_DoesNotCacheNonGET(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithCache(travis.NewMemoryCache(10), time.Minute))

	_, err := client.Post(context.Background(), "/user/sync", nil)
	require.NoError(t, err)

	_, err = client.Post(context.Background(), "/user/sync", nil)
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/rewritten", request.URL.Path)
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	chain := travis.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *travis.Request) error {
		req.Path = "/rewritten"

		return nil
	})

	sawResponse := false

	chain.AddResponseInterceptor(func(ctx context.Context, req *travis.Request, resp *travis.Response) error {
		sawResponse = true

		return nil
	})

	client := internalhttp.NewClient(server.URL, nil, internalhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/original", nil)
	require.NoError(t, err)
	assert.True(t, sawResponse)
}

func TestClient_DoAsync(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"@type":"user","@href":"/user","id":1}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	var calls atomic.Int32

	done := make(chan struct{})

	client.DoAsync(context.Background(), &travis.Request{Method: http.MethodGet, Path: "/user"},
		travis.GoExecutor{}, func(resp *travis.Response, err error) {
			calls.Add(1)

			assert.NoError(t, err)
			assert.NotNil(t, resp)
			close(done)
		})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not delivered")
	}

	// Give a misbehaving double delivery time to show up.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_DoAsync_DeliversError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusForbidden)
		_, _ = writer.Write([]byte(`{"@type":"error","error_type":"login_required","error_message":"login required"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	executor := travis.NewSerialExecutor()
	defer executor.Close()

	done := make(chan error, 1)

	client.DoAsync(context.Background(), &travis.Request{Method: http.MethodGet, Path: "/user"},
		executor, func(resp *travis.Response, err error) {
			done <- err
		})

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, travis.IsLoginRequired(err))
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not delivered")
	}
}
