package client

import (
	"context"
	"fmt"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// OrganizationsClient implements travis.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *http.Client) *OrganizationsClient {
	return &OrganizationsClient{httpClient: httpClient}
}

// List implements travis.OrganizationsClient.List.
func (c *OrganizationsClient) List(ctx context.Context, opts *travis.ListOptions) (*travis.OrganizationList, error) {
	return getList[travis.Organization](ctx, c.httpClient, "/orgs", opts, "organizations")
}

// ListWithRequest implements travis.OrganizationsClient.ListWithRequest.
func (c *OrganizationsClient) ListWithRequest(ctx context.Context, req *travis.Request) (*travis.OrganizationList, error) {
	return doList[travis.Organization](ctx, c.httpClient, req, "organizations")
}

// Get implements travis.OrganizationsClient.Get.
func (c *OrganizationsClient) Get(ctx context.Context, orgID int64) (*travis.Organization, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/org/%d", orgID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	return decodeResource[travis.Organization](resp, "organization")
}
