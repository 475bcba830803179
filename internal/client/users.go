package client

import (
	"context"
	"fmt"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// UsersClient implements travis.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// Current implements travis.UsersClient.Current.
func (c *UsersClient) Current(ctx context.Context) (*travis.User, error) {
	resp, err := c.httpClient.Get(ctx, "/user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return decodeResource[travis.User](resp, "user")
}

// Get implements travis.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int64) (*travis.User, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/user/%d", userID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return decodeResource[travis.User](resp, "user")
}

// Sync implements travis.UsersClient.Sync.
func (c *UsersClient) Sync(ctx context.Context, userID int64) (*travis.User, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/user/%d/sync", userID), nil)
	if err != nil {
		return nil, fmt.Errorf("syncing user: %w", err)
	}

	return decodeResource[travis.User](resp, "user")
}
