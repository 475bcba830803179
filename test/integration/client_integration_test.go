//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvs-io/travis-client/pkg/travis"
)

// TestAccountWorkflow exercises the authenticated-account surface against a
// live endpoint: identity, owned repositories, and pagination links.
func TestAccountWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	// 1. The token must resolve to a user
	user, err := client.Users().Current(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, user.Login)
	assert.NotZero(t, user.ID)

	// 2. That user's repositories are listable
	opts := &travis.RepositoryListOptions{}
	opts.Limit = 5

	repos, err := client.Repositories().List(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, "repositories", repos.Type)
	require.NotNil(t, repos.Pagination)

	// 3. Following the collection's own href reproduces the first window
	if len(repos.Object) > 0 {
		req, err := travis.FollowHref(repos.Href)
		require.NoError(t, err)

		again, err := client.Repositories().ListWithRequest(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, repos.Object[0].Slug, again.Object[0].Slug)
	}

	// 4. The owner endpoint agrees with the user endpoint
	owner, err := client.Owners().Get(ctx, user.Login)
	require.NoError(t, err)
	assert.Equal(t, user.ID, owner.ID)
}

// TestRepositoryWorkflow walks one configured repository: builds, branches,
// settings, and embedded minimal representations.
func TestRepositoryWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfMissingRepo(t)

	client := config.NewClient(t)
	ctx := context.Background()

	repo, err := client.Repositories().Get(ctx, config.RepoSlug)
	require.NoError(t, err)
	assert.Equal(t, config.RepoSlug, repo.Slug)

	// Builds of the repository, newest first
	opts := &travis.BuildListOptions{}
	opts.Limit = 5
	opts.SortBy = "started_at:desc"

	builds, err := client.Builds().ListByRepo(ctx, config.RepoSlug, opts)
	require.NoError(t, err)

	if len(builds.Object) > 0 {
		build := builds.Object[0]

		// Embedded repository arrives at minimal representation with a
		// followable href
		require.NotNil(t, build.Repository)
		assert.True(t, build.Repository.IsMinimal())

		_, ok := travis.FollowMinimal(&build.Repository.Metadata)
		assert.True(t, ok)

		// Fetching the build directly yields the standard representation
		full, err := client.Builds().Get(ctx, build.ID)
		require.NoError(t, err)
		assert.Equal(t, build.ID, full.ID)
	}

	// Settings are always present for an accessible repository
	settings, err := client.Settings().List(ctx, config.RepoSlug)
	require.NoError(t, err)
	assert.NotEmpty(t, settings.Object)
}

// TestLint validates a known-good and a known-odd configuration.
func TestLint(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	clean, err := client.Lint().Lint(ctx, []byte("language: go\n"))
	require.NoError(t, err)
	assert.Empty(t, clean.Warnings)

	odd, err := client.Lint().Lint(ctx, []byte("language: go\nblarg: true\n"))
	require.NoError(t, err)
	assert.NotEmpty(t, odd.Warnings)
}

// TestErrorSurface checks that live error documents decode into typed errors.
func TestErrorSurface(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)

	_, err := client.Builds().Get(context.Background(), 1)
	if err != nil {
		assert.True(t, travis.IsNotFound(err) || travis.IsInsufficientAccess(err))
	}
}
