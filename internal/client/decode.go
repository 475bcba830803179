package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// repoPath builds the path segment for a repository addressed by numeric id
// or "owner/name" slug. Slashes in slugs must be escaped on the wire.
func repoPath(slugOrID string) string {
	return "/repo/" + url.PathEscape(slugOrID)
}

// decodeResource unwraps a single-resource envelope and returns the payload.
func decodeResource[T any](resp *travis.Response, what string) (*T, error) {
	env, err := travis.DecodeEnvelope[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", what, err)
	}

	return &env.Object, nil
}

// decodeList unwraps a collection envelope, keeping pagination metadata.
func decodeList[T any](resp *travis.Response, what string) (*travis.Envelope[[]T], error) {
	env, err := travis.DecodeEnvelope[[]T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", what, err)
	}

	return env, nil
}

// getList issues a GET for a collection endpoint and decodes the envelope.
func getList[T any](ctx context.Context, httpClient *http.Client, path string, opts any, what string) (*travis.Envelope[[]T], error) {
	query, err := travis.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	return decodeList[T](resp, what)
}

// doList executes a followed collection request and decodes the envelope.
// It backs the ListWithRequest methods that make resource clients usable
// with the pagination helpers.
func doList[T any](ctx context.Context, httpClient *http.Client, req *travis.Request, what string) (*travis.Envelope[[]T], error) {
	resp, err := httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s page: %w", what, err)
	}

	return decodeList[T](resp, what)
}
