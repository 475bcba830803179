package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// SettingsClient implements travis.SettingsClient.
type SettingsClient struct {
	httpClient *http.Client
}

// NewSettingsClient creates a new settings client.
func NewSettingsClient(httpClient *http.Client) *SettingsClient {
	return &SettingsClient{httpClient: httpClient}
}

// List implements travis.SettingsClient.List.
func (c *SettingsClient) List(ctx context.Context, slugOrID string) (*travis.SettingList, error) {
	return getList[travis.Setting](ctx, c.httpClient, repoPath(slugOrID)+"/settings", nil, "settings")
}

// Get implements travis.SettingsClient.Get.
func (c *SettingsClient) Get(ctx context.Context, slugOrID string, name string) (*travis.Setting, error) {
	resp, err := c.httpClient.Get(ctx, c.settingPath(slugOrID, name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting setting: %w", err)
	}

	return decodeResource[travis.Setting](resp, "setting")
}

// Update implements travis.SettingsClient.Update.
func (c *SettingsClient) Update(ctx context.Context, slugOrID string, name string, value any) (*travis.Setting, error) {
	body := struct {
		Value any `json:"setting.value"`
	}{Value: value}

	resp, err := c.httpClient.Patch(ctx, c.settingPath(slugOrID, name), body)
	if err != nil {
		return nil, fmt.Errorf("updating setting: %w", err)
	}

	return decodeResource[travis.Setting](resp, "setting")
}

func (c *SettingsClient) settingPath(slugOrID string, name string) string {
	return repoPath(slugOrID) + "/setting/" + url.PathEscape(name)
}
