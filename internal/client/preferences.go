package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// PreferencesClient implements travis.PreferencesClient.
type PreferencesClient struct {
	httpClient *http.Client
}

// NewPreferencesClient creates a new preferences client.
func NewPreferencesClient(httpClient *http.Client) *PreferencesClient {
	return &PreferencesClient{httpClient: httpClient}
}

// List implements travis.PreferencesClient.List.
func (c *PreferencesClient) List(ctx context.Context) (*travis.PreferenceList, error) {
	return getList[travis.Preference](ctx, c.httpClient, "/preferences", nil, "preferences")
}

// Get implements travis.PreferencesClient.Get.
func (c *PreferencesClient) Get(ctx context.Context, name string) (*travis.Preference, error) {
	resp, err := c.httpClient.Get(ctx, "/preference/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting preference: %w", err)
	}

	return decodeResource[travis.Preference](resp, "preference")
}

// Update implements travis.PreferencesClient.Update.
func (c *PreferencesClient) Update(ctx context.Context, name string, value any) (*travis.Preference, error) {
	body := struct {
		Value any `json:"preference.value"`
	}{Value: value}

	resp, err := c.httpClient.Patch(ctx, "/preference/"+url.PathEscape(name), body)
	if err != nil {
		return nil, fmt.Errorf("updating preference: %w", err)
	}

	return decodeResource[travis.Preference](resp, "preference")
}
