package travis_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvs-io/travis-client/pkg/travis"
)

func TestFollowHref(t *testing.T) {
	t.Parallel()

	req, err := travis.FollowHref("/repo/acme%2Fwidget/builds?limit=5&offset=10")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/repo/acme%2Fwidget/builds", req.Path)
	assert.Equal(t, "5", req.Query.Get("limit"))
	assert.Equal(t, "10", req.Query.Get("offset"))
}

// Slug-addressed hrefs keep their encoded separator through a follow; a
// decoded slug would address a different, deeper path.
func TestFollowHref_KeepsEncodedSlug(t *testing.T) {
	t.Parallel()

	req, err := travis.FollowHref("/repo/acme%2Fwidget")
	require.NoError(t, err)
	assert.Equal(t, "/repo/acme%2Fwidget", req.Path)

	link := &travis.PaginationLink{Href: "/repo/acme%2Fwidget/builds?limit=25&offset=25"}

	req, err = travis.FollowPage(link)
	require.NoError(t, err)
	assert.Equal(t, "/repo/acme%2Fwidget/builds", req.Path)
	assert.Equal(t, "25", req.Query.Get("offset"))
}

func TestFollowHref_Unparseable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		href string
	}{
		{name: "empty", href: ""},
		{name: "no scheme", href: "://missing-scheme"},
		{name: "control character", href: "/repo/1\x00builds"},
		{name: "query only", href: "?limit=5"},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			req, err := travis.FollowHref(testCase.href)
			require.Error(t, err)
			assert.ErrorIs(t, err, travis.ErrUnparseableLink)
			assert.Nil(t, req)
		})
	}
}

func TestFollowMinimal(t *testing.T) {
	t.Parallel()

	repo := &travis.Repository{}
	repo.Href = "/repo/42"
	repo.Representation = travis.RepresentationMinimal

	req, ok := travis.FollowMinimal(repo)
	require.True(t, ok)
	assert.Equal(t, "/repo/42", req.Path)
	assert.True(t, repo.IsMinimal())
}

// Synthetic embedded resources carry no href and must be skipped silently.
func TestFollowMinimal_NoHref(t *testing.T) {
	t.Parallel()

	commit := &travis.Commit{SHA: "deadbeef"}

	req, ok := travis.FollowMinimal(commit)
	assert.False(t, ok)
	assert.Nil(t, req)

	req, ok = travis.FollowMinimal(nil)
	assert.False(t, ok)
	assert.Nil(t, req)
}

func TestFollowPage(t *testing.T) {
	t.Parallel()

	link := &travis.PaginationLink{Href: "/builds?limit=25&offset=25", Offset: 25, Limit: 25}

	req, err := travis.FollowPage(link)
	require.NoError(t, err)
	assert.Equal(t, "/builds", req.Path)
	assert.Equal(t, "25", req.Query.Get("offset"))
}

func TestFollowPage_Invalid(t *testing.T) {
	t.Parallel()

	_, err := travis.FollowPage(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, travis.ErrUnparseableLink)

	_, err = travis.FollowPage(&travis.PaginationLink{Href: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, travis.ErrUnparseableLink)
}
