package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// BranchesClient implements travis.BranchesClient.
type BranchesClient struct {
	httpClient *http.Client
}

// NewBranchesClient creates a new branches client.
func NewBranchesClient(httpClient *http.Client) *BranchesClient {
	return &BranchesClient{httpClient: httpClient}
}

// List implements travis.BranchesClient.List.
func (c *BranchesClient) List(ctx context.Context, slugOrID string, opts *travis.BranchListOptions) (*travis.BranchList, error) {
	return getList[travis.Branch](ctx, c.httpClient, repoPath(slugOrID)+"/branches", opts, "branches")
}

// Get implements travis.BranchesClient.Get.
func (c *BranchesClient) Get(ctx context.Context, slugOrID string, branch string) (*travis.Branch, error) {
	path := repoPath(slugOrID) + "/branch/" + url.PathEscape(branch)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting branch: %w", err)
	}

	return decodeResource[travis.Branch](resp, "branch")
}
