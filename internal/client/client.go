// Package client implements travis.Client. Each resource client owns the
// endpoints of one resource kind; all of them share one transport client.
package client

import (
	"errors"

	"github.com/trvs-io/travis-client/internal/auth"
	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
)

// Client implements the travis.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     travis.Logger

	// Resource clients
	repositories  travis.RepositoriesClient
	builds        travis.BuildsClient
	jobs          travis.JobsClient
	branches      travis.BranchesClient
	requests      travis.RequestsClient
	owners        travis.OwnersClient
	users         travis.UsersClient
	organizations travis.OrganizationsClient
	envVars       travis.EnvVarsClient
	settings      travis.SettingsClient
	crons         travis.CronsClient
	caches        travis.CachesClient
	stages        travis.StagesClient
	broadcasts    travis.BroadcastsClient
	preferences   travis.PreferencesClient
	lint          travis.LintClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *travis.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Cache != nil {
		cache, err := travis.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, err
		}

		httpOpts = append(httpOpts, http.WithCache(cache, config.CacheTTL))
	}

	return httpOpts, nil
}

// New creates a new API client from config.
func New(config *travis.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	var tokens auth.TokenProvider
	if config.Token != "" {
		tokens = auth.NewStaticTokenProvider(config.Token)
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.BaseURL, tokens, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Repositories implements travis.Client.Repositories.
func (c *Client) Repositories() travis.RepositoriesClient {
	return c.repositories
}

// Builds implements travis.Client.Builds.
func (c *Client) Builds() travis.BuildsClient {
	return c.builds
}

// Jobs implements travis.Client.Jobs.
func (c *Client) Jobs() travis.JobsClient {
	return c.jobs
}

// Branches implements travis.Client.Branches.
func (c *Client) Branches() travis.BranchesClient {
	return c.branches
}

// Requests implements travis.Client.Requests.
func (c *Client) Requests() travis.RequestsClient {
	return c.requests
}

// Owners implements travis.Client.Owners.
func (c *Client) Owners() travis.OwnersClient {
	return c.owners
}

// Users implements travis.Client.Users.
func (c *Client) Users() travis.UsersClient {
	return c.users
}

// Organizations implements travis.Client.Organizations.
func (c *Client) Organizations() travis.OrganizationsClient {
	return c.organizations
}

// EnvVars implements travis.Client.EnvVars.
func (c *Client) EnvVars() travis.EnvVarsClient {
	return c.envVars
}

// Settings implements travis.Client.Settings.
func (c *Client) Settings() travis.SettingsClient {
	return c.settings
}

// Crons implements travis.Client.Crons.
func (c *Client) Crons() travis.CronsClient {
	return c.crons
}

// Caches implements travis.Client.Caches.
func (c *Client) Caches() travis.CachesClient {
	return c.caches
}

// Stages implements travis.Client.Stages.
func (c *Client) Stages() travis.StagesClient {
	return c.stages
}

// Broadcasts implements travis.Client.Broadcasts.
func (c *Client) Broadcasts() travis.BroadcastsClient {
	return c.broadcasts
}

// Preferences implements travis.Client.Preferences.
func (c *Client) Preferences() travis.PreferencesClient {
	return c.preferences
}

// Lint implements travis.Client.Lint.
func (c *Client) Lint() travis.LintClient {
	return c.lint
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.repositories = NewRepositoriesClient(c.httpClient)
	c.builds = NewBuildsClient(c.httpClient)
	c.jobs = NewJobsClient(c.httpClient)
	c.branches = NewBranchesClient(c.httpClient)
	c.requests = NewRequestsClient(c.httpClient)
	c.owners = NewOwnersClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.organizations = NewOrganizationsClient(c.httpClient)
	c.envVars = NewEnvVarsClient(c.httpClient)
	c.settings = NewSettingsClient(c.httpClient)
	c.crons = NewCronsClient(c.httpClient)
	c.caches = NewCachesClient(c.httpClient)
	c.stages = NewStagesClient(c.httpClient)
	c.broadcasts = NewBroadcastsClient(c.httpClient)
	c.preferences = NewPreferencesClient(c.httpClient)
	c.lint = NewLintClient(c.httpClient)
}
