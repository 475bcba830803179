package travis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvs-io/travis-client/pkg/travis"
)

func TestValues_ListOptions(t *testing.T) {
	t.Parallel()

	opts := &travis.ListOptions{
		Limit:   10,
		Offset:  20,
		SortBy:  "started_at:desc",
		Include: []string{"build.commit", "build.jobs"},
	}

	values, err := travis.Values(opts)
	require.NoError(t, err)

	assert.Equal(t, "10", values.Get("limit"))
	assert.Equal(t, "20", values.Get("offset"))
	assert.Equal(t, "started_at:desc", values.Get("sort_by"))
	assert.Equal(t, "build.commit,build.jobs", values.Get("include"))
}

func TestValues_OmitsZeroValues(t *testing.T) {
	t.Parallel()

	values, err := travis.Values(&travis.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, values.Encode())
}

func TestValues_Nil(t *testing.T) {
	t.Parallel()

	values, err := travis.Values(nil)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestValues_RepositoryFilters(t *testing.T) {
	t.Parallel()

	active := true
	starred := false
	opts := &travis.RepositoryListOptions{
		ListOptions: travis.ListOptions{Limit: 5},
		Active:      &active,
		Starred:     &starred,
	}

	values, err := travis.Values(opts)
	require.NoError(t, err)

	assert.Equal(t, "5", values.Get("limit"))
	assert.Equal(t, "true", values.Get("repository.active"))
	// A set pointer encodes even when false; an unset one is omitted.
	assert.Equal(t, "false", values.Get("repository.starred"))
	assert.Empty(t, values.Get("repository.private"))
}

func TestValues_BuildFilters(t *testing.T) {
	t.Parallel()

	opts := &travis.BuildListOptions{
		State:      "passed",
		EventType:  "push",
		BranchName: "main",
	}

	values, err := travis.Values(opts)
	require.NoError(t, err)

	assert.Equal(t, "passed", values.Get("build.state"))
	assert.Equal(t, "push", values.Get("build.event_type"))
	assert.Equal(t, "main", values.Get("build.branch.name"))
}
