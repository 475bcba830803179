package travis

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// ListOptions are the windowing and ordering parameters shared by all
// collection endpoints.
type ListOptions struct {
	// Limit caps how many entries the returned window holds.
	Limit int `url:"limit,omitempty"`
	// Offset is the position of the window in the full collection.
	Offset int `url:"offset,omitempty"`
	// SortBy orders the collection, e.g. "started_at:desc".
	SortBy string `url:"sort_by,omitempty"`
	// Include eagerly loads related resources at standard representation,
	// e.g. "build.commit".
	Include []string `url:"include,comma,omitempty"`
}

// RepositoryListOptions filter repository collections.
type RepositoryListOptions struct {
	ListOptions

	Active  *bool `url:"repository.active,omitempty"`
	Private *bool `url:"repository.private,omitempty"`
	Starred *bool `url:"repository.starred,omitempty"`
}

// BuildListOptions filter build collections.
type BuildListOptions struct {
	ListOptions

	State      string `url:"build.state,omitempty"`
	EventType  string `url:"build.event_type,omitempty"`
	BranchName string `url:"build.branch.name,omitempty"`
	CreatedBy  string `url:"build.created_by,omitempty"`
}

// BranchListOptions filter branch collections.
type BranchListOptions struct {
	ListOptions

	ExistsOnGithub *bool `url:"branch.exists_on_github,omitempty"`
}

// CacheListOptions narrow cache listings and deletions.
type CacheListOptions struct {
	// Branch restricts matches to caches for one branch.
	Branch string `url:"branch,omitempty"`
	// Match restricts matches to cache names containing the string.
	Match string `url:"match,omitempty"`
}

// Values encodes an options struct into url.Values using its url tags. A nil
// options value encodes to an empty set.
func Values(opts any) (url.Values, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding query options: %w", err)
	}

	return values, nil
}
