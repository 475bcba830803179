package client

import (
	"context"
	"fmt"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// BuildsClient implements travis.BuildsClient.
type BuildsClient struct {
	httpClient *http.Client
}

// NewBuildsClient creates a new builds client.
func NewBuildsClient(httpClient *http.Client) *BuildsClient {
	return &BuildsClient{httpClient: httpClient}
}

// List implements travis.BuildsClient.List.
func (c *BuildsClient) List(ctx context.Context, opts *travis.BuildListOptions) (*travis.BuildList, error) {
	return getList[travis.Build](ctx, c.httpClient, "/builds", opts, "builds")
}

// ListByRepo implements travis.BuildsClient.ListByRepo.
func (c *BuildsClient) ListByRepo(ctx context.Context, slugOrID string, opts *travis.BuildListOptions) (*travis.BuildList, error) {
	return getList[travis.Build](ctx, c.httpClient, repoPath(slugOrID)+"/builds", opts, "builds")
}

// ListWithRequest implements travis.BuildsClient.ListWithRequest.
func (c *BuildsClient) ListWithRequest(ctx context.Context, req *travis.Request) (*travis.BuildList, error) {
	return doList[travis.Build](ctx, c.httpClient, req, "builds")
}

// Get implements travis.BuildsClient.Get.
func (c *BuildsClient) Get(ctx context.Context, buildID int64) (*travis.Build, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/build/%d", buildID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting build: %w", err)
	}

	return decodeResource[travis.Build](resp, "build")
}

// Restart implements travis.BuildsClient.Restart.
func (c *BuildsClient) Restart(ctx context.Context, buildID int64) (*travis.BuildStateChange, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/build/%d/restart", buildID), nil)
	if err != nil {
		return nil, fmt.Errorf("restarting build: %w", err)
	}

	return decodeResource[travis.BuildStateChange](resp, "build state change")
}

// Cancel implements travis.BuildsClient.Cancel.
func (c *BuildsClient) Cancel(ctx context.Context, buildID int64) (*travis.BuildStateChange, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/build/%d/cancel", buildID), nil)
	if err != nil {
		return nil, fmt.Errorf("canceling build: %w", err)
	}

	return decodeResource[travis.BuildStateChange](resp, "build state change")
}
