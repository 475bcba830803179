package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trvs-io/travis-client/internal/client"
	"github.com/trvs-io/travis-client/pkg/travis"
)

func TestRequestsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/repo/acme%2Fwidget/requests", request.URL.EscapedPath())
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		// The trigger payload nests everything under "request".
		var body struct {
			Request struct {
				Branch  string         `json:"branch"`
				Message string         `json:"message"`
				Config  map[string]any `json:"config"`
			} `json:"request"`
		}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "main", body.Request.Branch)
		assert.Equal(t, "release build", body.Request.Message)
		assert.Equal(t, "go", body.Request.Config["language"])

		writer.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"@type":              "pending",
			"@href":              "/repo/891/requests",
			"remaining_requests": 9,
			"repository": map[string]interface{}{
				"@type": "repository", "@href": "/repo/891", "id": 891, "slug": "acme/widget",
			},
			"request": map[string]interface{}{
				"@type": "request", "@href": "/repo/891/request/12345", "id": 12345,
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.Requests().Create(context.Background(), "acme/widget", &travis.BuildRequestCreate{
		Branch:  "main",
		Message: "release build",
		Config:  map[string]any{"language": "go"},
	})
	require.NoError(t, err)
	assert.Equal(t, 9, result.RemainingRequests)
	require.NotNil(t, result.Request)
	assert.Equal(t, int64(12345), result.Request.ID)
}

func TestRequestsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation{
		{
			Name:         "successful get",
			ExpectedPath: "/repo/891/request/12345",
			StatusCode:   http.StatusOK,
			Response: map[string]interface{}{
				"@type":      "request",
				"@href":      "/repo/891/request/12345",
				"id":         12345,
				"state":      "finished",
				"result":     "approved",
				"event_type": "api",
			},
		},
		{
			Name:         "request not found",
			ExpectedPath: "/repo/891/request/12345",
			StatusCode:   http.StatusNotFound,
			Response:     NotFoundBody(),
			WantErr:      true,
			ErrMessage:   "not_found",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context) (interface{}, error) {
		return func(ctx context.Context) (interface{}, error) {
			return c.Requests().Get(ctx, "891", 12345)
		}
	})
}

func TestRequestsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/repo/891/requests", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(ListEnvelope("requests", "/repo/891/requests", []map[string]interface{}{
			{"@type": "request", "@href": "/repo/891/request/1", "id": 1, "result": "approved"},
			{"@type": "request", "@href": "/repo/891/request/2", "id": 2, "result": "rejected"},
		}))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.Requests().List(context.Background(), "891", nil)
	require.NoError(t, err)
	require.Len(t, travis.Items(result), 2)
	assert.Equal(t, "rejected", result.Object[1].Result)
}
