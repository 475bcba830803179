package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// OwnersClient implements travis.OwnersClient.
type OwnersClient struct {
	httpClient *http.Client
}

// NewOwnersClient creates a new owners client.
func NewOwnersClient(httpClient *http.Client) *OwnersClient {
	return &OwnersClient{httpClient: httpClient}
}

// Get implements travis.OwnersClient.Get.
func (c *OwnersClient) Get(ctx context.Context, login string) (*travis.Owner, error) {
	resp, err := c.httpClient.Get(ctx, "/owner/"+url.PathEscape(login), nil)
	if err != nil {
		return nil, fmt.Errorf("getting owner: %w", err)
	}

	return decodeResource[travis.Owner](resp, "owner")
}

// Active implements travis.OwnersClient.Active. The response is tagged
// "active" with the builds under a "builds" key, so it decodes through the
// single-resource path of the envelope.
func (c *OwnersClient) Active(ctx context.Context, login string) (*travis.ActiveBuilds, error) {
	resp, err := c.httpClient.Get(ctx, "/owner/"+url.PathEscape(login)+"/active", nil)
	if err != nil {
		return nil, fmt.Errorf("getting active builds: %w", err)
	}

	return decodeResource[travis.ActiveBuilds](resp, "active builds")
}
