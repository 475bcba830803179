package travis

import (
	"fmt"
	"net/http"
	"net/url"
)

// Minimal is satisfied by any embedded resource stub (every model embeds
// Metadata). A stub is resolvable when it carries an href; synthetic
// entities, such as commits fabricated for API-triggered builds, have none.
type Minimal interface {
	ResourceHref() string
}

// FollowHref parses an href obtained from a previous response into a request
// targeting the same host with the same auth headers. The href must be a
// structurally valid scheme-relative URL; anything else fails with
// ErrUnparseableLink. No I/O is performed.
func FollowHref(href string) (*Request, error) {
	if href == "" {
		return nil, fmt.Errorf("%w: empty href", ErrUnparseableLink)
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnparseableLink, href, err)
	}

	// The escaped form keeps %2F inside slug segments intact; the decoded
	// Path would smuggle an extra path separator onto the wire.
	path := parsed.EscapedPath()
	if path == "" {
		return nil, fmt.Errorf("%w: %q has no path", ErrUnparseableLink, href)
	}

	return &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  parsed.Query(),
	}, nil
}

// FollowMinimal builds the request that fetches the full representation of
// an embedded stub. When the stub carries no usable href the second return
// value is false and no request is produced; the silent skip is intentional
// because not all embedded stubs are resolvable.
func FollowMinimal(ref Minimal) (*Request, bool) {
	if ref == nil || ref.ResourceHref() == "" {
		return nil, false
	}

	req, err := FollowHref(ref.ResourceHref())
	if err != nil {
		return nil, false
	}

	return req, true
}

// FollowPage builds the request that fetches the collection window a
// pagination link points at.
func FollowPage(link *PaginationLink) (*Request, error) {
	if link == nil {
		return nil, fmt.Errorf("%w: nil pagination link", ErrUnparseableLink)
	}

	return FollowHref(link.Href)
}
