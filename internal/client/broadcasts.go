package client

import (
	"context"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// BroadcastsClient implements travis.BroadcastsClient.
type BroadcastsClient struct {
	httpClient *http.Client
}

// NewBroadcastsClient creates a new broadcasts client.
func NewBroadcastsClient(httpClient *http.Client) *BroadcastsClient {
	return &BroadcastsClient{httpClient: httpClient}
}

// List implements travis.BroadcastsClient.List.
func (c *BroadcastsClient) List(ctx context.Context) (*travis.BroadcastList, error) {
	return getList[travis.Broadcast](ctx, c.httpClient, "/broadcasts", nil, "broadcasts")
}
