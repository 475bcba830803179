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

func TestBuildsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation{
		{
			Name:         "successful get",
			ExpectedPath: "/build/86601346",
			StatusCode:   http.StatusOK,
			Response: map[string]interface{}{
				"@type":           "build",
				"@href":           "/build/86601346",
				"@representation": "standard",
				"id":              86601346,
				"number":          "1340",
				"state":           "passed",
				"duration":        1011,
				"event_type":      "push",
				"repository": map[string]interface{}{
					"@type":           "repository",
					"@href":           "/repo/891",
					"@representation": "minimal",
					"id":              891,
					"slug":            "acme/widget",
				},
			},
			WantErr: false,
		},
		{
			Name:         "build not found",
			ExpectedPath: "/build/86601346",
			StatusCode:   http.StatusNotFound,
			Response:     NotFoundBody(),
			WantErr:      true,
			ErrMessage:   "not_found",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context) (interface{}, error) {
		return func(ctx context.Context) (interface{}, error) {
			return c.Builds().Get(ctx, 86601346)
		}
	})
}

func TestBuildsClient_Get_EmbeddedMinimal(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"@type":           "build",
			"@href":           "/build/1",
			"@representation": "standard",
			"id":              1,
			"number":          "7",
			"state":           "started",
			"repository": map[string]interface{}{
				"@type":           "repository",
				"@href":           "/repo/891",
				"@representation": "minimal",
				"id":              891,
				"slug":            "acme/widget",
			},
			"commit": map[string]interface{}{
				"@type":           "commit",
				"@representation": "minimal",
				"sha":             "deadbeef",
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	build, err := client.Builds().Get(context.Background(), 1)
	require.NoError(t, err)

	// The embedded repository stub is followable, the synthetic commit is not.
	require.NotNil(t, build.Repository)
	assert.True(t, build.Repository.IsMinimal())

	req, ok := travis.FollowMinimal(build.Repository)
	require.True(t, ok)
	assert.Equal(t, "/repo/891", req.Path)

	require.NotNil(t, build.Commit)
	_, ok = travis.FollowMinimal(build.Commit)
	assert.False(t, ok)
}

func TestBuildsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/builds", request.URL.Path)

		if state := request.URL.Query().Get("build.state"); state != "" {
			assert.Equal(t, "failed", state)
		}

		_ = json.NewEncoder(writer).Encode(ListEnvelope("builds", "/builds", []map[string]interface{}{
			{"@type": "build", "@href": "/build/1", "id": 1, "number": "1", "state": "passed"},
			{"@type": "build", "@href": "/build/2", "id": 2, "number": "2", "state": "failed"},
		}))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.Builds().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, travis.Items(result), 2)
	assert.Equal(t, "passed", result.Object[0].State)

	result, err = client.Builds().List(context.Background(), &travis.BuildListOptions{State: "failed"})
	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestBuildsClient_ListByRepo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/repo/acme%2Fwidget/builds", request.URL.EscapedPath())

		_ = json.NewEncoder(writer).Encode(ListEnvelope("builds", "/repo/891/builds", []map[string]interface{}{
			{"@type": "build", "@href": "/build/1", "id": 1, "number": "1", "state": "passed"},
		}))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.Builds().ListByRepo(context.Background(), "acme/widget", nil)
	require.NoError(t, err)
	assert.Len(t, travis.Items(result), 1)
}

func TestBuildsClient_RestartCancel(t *testing.T) {
	t.Parallel()

	pending := map[string]interface{}{
		"@type":        "pending",
		"@href":        "/build/1",
		"state_change": "restart",
		"build": map[string]interface{}{
			"@type":           "build",
			"@href":           "/build/1",
			"@representation": "minimal",
			"id":              1,
			"number":          "7",
			"state":           "created",
		},
	}

	RunActionTests(t, []TestActionOperation{
		{
			Name:         "restart accepted",
			ExpectedPath: "/build/1/restart",
			StatusCode:   http.StatusAccepted,
			Response:     pending,
		},
	}, func(c *Client) func(context.Context) (interface{}, error) {
		return func(ctx context.Context) (interface{}, error) {
			change, err := c.Builds().Restart(ctx, 1)
			if err != nil {
				return nil, err
			}

			assert.Equal(t, "restart", change.StateChange)
			require.NotNil(t, change.Build)
			assert.Equal(t, int64(1), change.Build.ID)

			return change, nil
		}
	})

	pending["state_change"] = "cancel"

	RunActionTests(t, []TestActionOperation{
		{
			Name:         "cancel accepted",
			ExpectedPath: "/build/1/cancel",
			StatusCode:   http.StatusAccepted,
			Response:     pending,
		},
	}, func(c *Client) func(context.Context) (interface{}, error) {
		return func(ctx context.Context) (interface{}, error) {
			return c.Builds().Cancel(ctx, 1)
		}
	})
}

// Paging through builds with the iterator follows the server's next links.
func TestBuildsClient_Pagination(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/builds", request.URL.Path)

		if request.URL.Query().Get("offset") == "2" {
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"@type": "builds",
				"@href": "/builds?limit=2&offset=2",
				"@pagination": map[string]interface{}{
					"limit": 2, "offset": 2, "count": 3, "is_first": false, "is_last": true,
				},
				"builds": []map[string]interface{}{
					{"@type": "build", "@href": "/build/3", "id": 3, "number": "3", "state": "passed"},
				},
			})

			return
		}

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"@type": "builds",
			"@href": "/builds?limit=2",
			"@pagination": map[string]interface{}{
				"limit": 2, "offset": 0, "count": 3, "is_first": true, "is_last": false,
				"next": map[string]interface{}{"@href": "/builds?limit=2&offset=2", "offset": 2, "limit": 2},
			},
			"builds": []map[string]interface{}{
				{"@type": "build", "@href": "/build/1", "id": 1, "number": "1", "state": "passed"},
				{"@type": "build", "@href": "/build/2", "id": 2, "number": "2", "state": "passed"},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	req := &travis.Request{Method: http.MethodGet, Path: "/builds"}

	all, err := travis.FetchAllPages[travis.Build](context.Background(), client.Builds(), req, &travis.PaginationOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[2].ID)
}
