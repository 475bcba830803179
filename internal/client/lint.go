package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// LintClient implements travis.LintClient.
type LintClient struct {
	httpClient *http.Client
}

// NewLintClient creates a new lint client.
func NewLintClient(httpClient *http.Client) *LintClient {
	return &LintClient{httpClient: httpClient}
}

// Lint implements travis.LintClient.Lint. The configuration is sent as the
// raw request body; the response carries no canonical href, so it is
// decoded directly rather than through the envelope.
func (c *LintClient) Lint(ctx context.Context, content []byte) (*travis.LintResult, error) {
	resp, err := c.httpClient.Post(ctx, "/lint", content)
	if err != nil {
		return nil, fmt.Errorf("linting config: %w", err)
	}

	var result travis.LintResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing lint response: %w", err)
	}

	return &result, nil
}
