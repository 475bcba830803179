package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// CronsClient implements travis.CronsClient.
type CronsClient struct {
	httpClient *http.Client
}

// NewCronsClient creates a new crons client.
func NewCronsClient(httpClient *http.Client) *CronsClient {
	return &CronsClient{httpClient: httpClient}
}

// ListByRepo implements travis.CronsClient.ListByRepo.
func (c *CronsClient) ListByRepo(ctx context.Context, slugOrID string, opts *travis.ListOptions) (*travis.CronList, error) {
	return getList[travis.Cron](ctx, c.httpClient, repoPath(slugOrID)+"/crons", opts, "crons")
}

// Get implements travis.CronsClient.Get.
func (c *CronsClient) Get(ctx context.Context, cronID int64) (*travis.Cron, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/cron/%d", cronID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting cron: %w", err)
	}

	return decodeResource[travis.Cron](resp, "cron")
}

// GetByBranch implements travis.CronsClient.GetByBranch.
func (c *CronsClient) GetByBranch(ctx context.Context, slugOrID string, branch string) (*travis.Cron, error) {
	resp, err := c.httpClient.Get(ctx, c.branchCronPath(slugOrID, branch), nil)
	if err != nil {
		return nil, fmt.Errorf("getting cron: %w", err)
	}

	return decodeResource[travis.Cron](resp, "cron")
}

// Create implements travis.CronsClient.Create.
func (c *CronsClient) Create(ctx context.Context, slugOrID string, branch string, request *travis.CronRequest) (*travis.Cron, error) {
	resp, err := c.httpClient.Post(ctx, c.branchCronPath(slugOrID, branch), request)
	if err != nil {
		return nil, fmt.Errorf("creating cron: %w", err)
	}

	return decodeResource[travis.Cron](resp, "cron")
}

// Delete implements travis.CronsClient.Delete.
func (c *CronsClient) Delete(ctx context.Context, cronID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/cron/%d", cronID), nil)
	if err != nil {
		return fmt.Errorf("deleting cron: %w", err)
	}

	return nil
}

func (c *CronsClient) branchCronPath(slugOrID string, branch string) string {
	return repoPath(slugOrID) + "/branch/" + url.PathEscape(branch) + "/cron"
}
