package client

import (
	"context"
	"fmt"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// RepositoriesClient implements travis.RepositoriesClient.
type RepositoriesClient struct {
	httpClient *http.Client
}

// NewRepositoriesClient creates a new repositories client.
func NewRepositoriesClient(httpClient *http.Client) *RepositoriesClient {
	return &RepositoriesClient{httpClient: httpClient}
}

// List implements travis.RepositoriesClient.List.
func (c *RepositoriesClient) List(ctx context.Context, opts *travis.RepositoryListOptions) (*travis.RepositoryList, error) {
	return getList[travis.Repository](ctx, c.httpClient, "/repos", opts, "repositories")
}

// ListWithRequest implements travis.RepositoriesClient.ListWithRequest.
func (c *RepositoriesClient) ListWithRequest(ctx context.Context, req *travis.Request) (*travis.RepositoryList, error) {
	return doList[travis.Repository](ctx, c.httpClient, req, "repositories")
}

// Get implements travis.RepositoriesClient.Get.
func (c *RepositoriesClient) Get(ctx context.Context, slugOrID string) (*travis.Repository, error) {
	resp, err := c.httpClient.Get(ctx, repoPath(slugOrID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting repository: %w", err)
	}

	return decodeResource[travis.Repository](resp, "repository")
}

// Activate implements travis.RepositoriesClient.Activate.
func (c *RepositoriesClient) Activate(ctx context.Context, slugOrID string) (*travis.Repository, error) {
	return c.action(ctx, slugOrID, "activate")
}

// Deactivate implements travis.RepositoriesClient.Deactivate.
func (c *RepositoriesClient) Deactivate(ctx context.Context, slugOrID string) (*travis.Repository, error) {
	return c.action(ctx, slugOrID, "deactivate")
}

// Star implements travis.RepositoriesClient.Star.
func (c *RepositoriesClient) Star(ctx context.Context, slugOrID string) (*travis.Repository, error) {
	return c.action(ctx, slugOrID, "star")
}

// Unstar implements travis.RepositoriesClient.Unstar.
func (c *RepositoriesClient) Unstar(ctx context.Context, slugOrID string) (*travis.Repository, error) {
	return c.action(ctx, slugOrID, "unstar")
}

// action posts one of the repository state toggles; they all answer with
// the updated repository.
func (c *RepositoriesClient) action(ctx context.Context, slugOrID string, action string) (*travis.Repository, error) {
	resp, err := c.httpClient.Post(ctx, repoPath(slugOrID)+"/"+action, nil)
	if err != nil {
		return nil, fmt.Errorf("%s repository: %w", action, err)
	}

	return decodeResource[travis.Repository](resp, "repository")
}
