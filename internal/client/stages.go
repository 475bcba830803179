package client

import (
	"context"
	"fmt"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// StagesClient implements travis.StagesClient.
type StagesClient struct {
	httpClient *http.Client
}

// NewStagesClient creates a new stages client.
func NewStagesClient(httpClient *http.Client) *StagesClient {
	return &StagesClient{httpClient: httpClient}
}

// ListByBuild implements travis.StagesClient.ListByBuild.
func (c *StagesClient) ListByBuild(ctx context.Context, buildID int64) (*travis.StageList, error) {
	return getList[travis.Stage](ctx, c.httpClient, fmt.Sprintf("/build/%d/stages", buildID), nil, "stages")
}
