package client

import (
	"context"
	"fmt"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// CachesClient implements travis.CachesClient.
type CachesClient struct {
	httpClient *http.Client
}

// NewCachesClient creates a new build caches client.
func NewCachesClient(httpClient *http.Client) *CachesClient {
	return &CachesClient{httpClient: httpClient}
}

// List implements travis.CachesClient.List.
func (c *CachesClient) List(ctx context.Context, slugOrID string, opts *travis.CacheListOptions) (*travis.BuildCacheList, error) {
	return getList[travis.BuildCache](ctx, c.httpClient, repoPath(slugOrID)+"/caches", opts, "caches")
}

// Delete implements travis.CachesClient.Delete.
func (c *CachesClient) Delete(ctx context.Context, slugOrID string, opts *travis.CacheListOptions) (*travis.BuildCacheList, error) {
	query, err := travis.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("deleting caches: %w", err)
	}

	resp, err := c.httpClient.Delete(ctx, repoPath(slugOrID)+"/caches", query)
	if err != nil {
		return nil, fmt.Errorf("deleting caches: %w", err)
	}

	return decodeList[travis.BuildCache](resp, "caches")
}
