package travisclient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/trvs-io/travis-client/internal/client"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// DefaultEndpoint is the hosted API endpoint used when none is configured.
const DefaultEndpoint = "https://api.travis-ci.com"

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
)

// New creates a Travis CI API client. An empty BaseURL selects the hosted
// endpoint; schemeless endpoints get "https://" prepended.
func New(config *travis.Config) (travis.Client, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	endpoint := strings.TrimSuffix(config.BaseURL, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.BaseURL = endpoint

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}
