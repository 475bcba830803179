package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// EnvVarsClient implements travis.EnvVarsClient.
type EnvVarsClient struct {
	httpClient *http.Client
}

// NewEnvVarsClient creates a new environment variables client.
func NewEnvVarsClient(httpClient *http.Client) *EnvVarsClient {
	return &EnvVarsClient{httpClient: httpClient}
}

// List implements travis.EnvVarsClient.List.
func (c *EnvVarsClient) List(ctx context.Context, slugOrID string) (*travis.EnvVarList, error) {
	return getList[travis.EnvVar](ctx, c.httpClient, repoPath(slugOrID)+"/env_vars", nil, "env vars")
}

// Get implements travis.EnvVarsClient.Get.
func (c *EnvVarsClient) Get(ctx context.Context, slugOrID string, envVarID string) (*travis.EnvVar, error) {
	resp, err := c.httpClient.Get(ctx, c.envVarPath(slugOrID, envVarID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting env var: %w", err)
	}

	return decodeResource[travis.EnvVar](resp, "env var")
}

// Create implements travis.EnvVarsClient.Create.
func (c *EnvVarsClient) Create(ctx context.Context, slugOrID string, request *travis.EnvVarRequest) (*travis.EnvVar, error) {
	resp, err := c.httpClient.Post(ctx, repoPath(slugOrID)+"/env_vars", request)
	if err != nil {
		return nil, fmt.Errorf("creating env var: %w", err)
	}

	return decodeResource[travis.EnvVar](resp, "env var")
}

// Update implements travis.EnvVarsClient.Update.
func (c *EnvVarsClient) Update(ctx context.Context, slugOrID string, envVarID string, request *travis.EnvVarRequest) (*travis.EnvVar, error) {
	resp, err := c.httpClient.Patch(ctx, c.envVarPath(slugOrID, envVarID), request)
	if err != nil {
		return nil, fmt.Errorf("updating env var: %w", err)
	}

	return decodeResource[travis.EnvVar](resp, "env var")
}

// Delete implements travis.EnvVarsClient.Delete.
func (c *EnvVarsClient) Delete(ctx context.Context, slugOrID string, envVarID string) error {
	_, err := c.httpClient.Delete(ctx, c.envVarPath(slugOrID, envVarID), nil)
	if err != nil {
		return fmt.Errorf("deleting env var: %w", err)
	}

	return nil
}

func (c *EnvVarsClient) envVarPath(slugOrID string, envVarID string) string {
	return repoPath(slugOrID) + "/env_var/" + url.PathEscape(envVarID)
}
