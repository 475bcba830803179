package client

import (
	"context"
	"fmt"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// RequestsClient implements travis.RequestsClient.
type RequestsClient struct {
	httpClient *http.Client
}

// NewRequestsClient creates a new build requests client.
func NewRequestsClient(httpClient *http.Client) *RequestsClient {
	return &RequestsClient{httpClient: httpClient}
}

// List implements travis.RequestsClient.List.
func (c *RequestsClient) List(ctx context.Context, slugOrID string, opts *travis.ListOptions) (*travis.BuildRequestList, error) {
	return getList[travis.BuildRequest](ctx, c.httpClient, repoPath(slugOrID)+"/requests", opts, "requests")
}

// ListWithRequest implements travis.RequestsClient.ListWithRequest.
func (c *RequestsClient) ListWithRequest(ctx context.Context, req *travis.Request) (*travis.BuildRequestList, error) {
	return doList[travis.BuildRequest](ctx, c.httpClient, req, "requests")
}

// Get implements travis.RequestsClient.Get.
func (c *RequestsClient) Get(ctx context.Context, slugOrID string, requestID int64) (*travis.BuildRequest, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("%s/request/%d", repoPath(slugOrID), requestID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting request: %w", err)
	}

	return decodeResource[travis.BuildRequest](resp, "request")
}

// Create implements travis.RequestsClient.Create.
func (c *RequestsClient) Create(ctx context.Context, slugOrID string, request *travis.BuildRequestCreate) (*travis.BuildRequestResult, error) {
	body := struct {
		Request *travis.BuildRequestCreate `json:"request"`
	}{Request: request}

	resp, err := c.httpClient.Post(ctx, repoPath(slugOrID)+"/requests", body)
	if err != nil {
		return nil, fmt.Errorf("triggering build: %w", err)
	}

	return decodeResource[travis.BuildRequestResult](resp, "request result")
}
