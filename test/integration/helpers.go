//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"

	"github.com/trvs-io/travis-client/pkg/travis"
	"github.com/trvs-io/travis-client/pkg/travisclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Endpoint string
	Token    string
	RepoSlug string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint: os.Getenv("TRAVIS_ENDPOINT"),
		Token:    os.Getenv("TRAVIS_TOKEN"),
		RepoSlug: os.Getenv("TRAVIS_TEST_REPO"),
		Verbose:  os.Getenv("TRAVIS_TEST_VERBOSE") != "",
	}
}

// SkipIfMissingConfig skips the test when no token is configured
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.Token == "" {
		t.Skip("TRAVIS_TOKEN not set, skipping integration test")
	}
}

// SkipIfMissingRepo skips the test when no test repository is configured
func (c *TestConfig) SkipIfMissingRepo(t *testing.T) {
	t.Helper()

	if c.RepoSlug == "" {
		t.Skip("TRAVIS_TEST_REPO not set, skipping integration test")
	}
}

// NewClient creates an API client from the test configuration
func (c *TestConfig) NewClient(t *testing.T) travis.Client {
	t.Helper()

	client, err := travisclient.New(&travis.Config{
		BaseURL: c.Endpoint,
		Token:   c.Token,
		Debug:   c.Verbose,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}
