package travis

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// PaginationClient fetches one collection window per call. Every resource
// client with a paginated List endpoint also satisfies this interface
// through its ListWithRequest method.
type PaginationClient[T any] interface {
	ListWithRequest(ctx context.Context, req *Request) (*Envelope[[]T], error)
}

// PaginationOptions tune the page-following helpers.
type PaginationOptions struct {
	// Limit overrides the window size requested from the server.
	Limit int
	// MaxPages caps how many windows are fetched. Zero means no cap.
	MaxPages int
}

// PageResult carries one fetched window or the error that ended streaming.
type PageResult[T any] struct {
	Items      []T
	Pagination *Pagination
	Err        error
}

// PaginationIterator walks a paged collection item by item, following the
// server's next links lazily.
type PaginationIterator[T any] struct {
	ctx    context.Context
	client PaginationClient[T]

	next  *Request
	items []T
	idx   int
}

// NewPaginationIterator creates an iterator over the collection reached by
// req. Nothing is fetched until the first call to Next.
func NewPaginationIterator[T any](ctx context.Context, client PaginationClient[T], req *Request) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:    ctx,
		client: client,
		next:   req,
	}
}

// HasNext reports whether another item may be available. It is optimistic
// before the first fetch: an empty collection is only discovered by Next.
func (it *PaginationIterator[T]) HasNext() bool {
	return it.idx < len(it.items) || it.next != nil
}

// Next returns the next item, fetching the next window when the buffered
// one is exhausted. It returns ErrNoMoreItems past the end.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	for it.idx >= len(it.items) {
		if it.next == nil {
			return zero, ErrNoMoreItems
		}

		env, err := it.client.ListWithRequest(it.ctx, it.next)
		if err != nil {
			return zero, err
		}

		it.items = env.Object
		it.idx = 0
		it.next = nil

		if env.Pagination != nil && env.Pagination.Next != nil {
			next, err := FollowPage(env.Pagination.Next)
			if err != nil {
				return zero, fmt.Errorf("following next page: %w", err)
			}

			it.next = next
		}
	}

	item := it.items[it.idx]
	it.idx++

	return item, nil
}

// All drains the iterator and returns the remaining items.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to every remaining item, stopping at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}

// FetchAllPages fetches every window of a collection and returns the items
// flattened, honoring opts.MaxPages and opts.Limit.
func FetchAllPages[T any](ctx context.Context, client PaginationClient[T], req *Request, opts *PaginationOptions) ([]T, error) {
	next := withPageLimit(req, opts)
	pages := 0

	var all []T

	for next != nil {
		if opts != nil && opts.MaxPages > 0 && pages >= opts.MaxPages {
			break
		}

		env, err := client.ListWithRequest(ctx, next)
		if err != nil {
			return nil, err
		}

		all = append(all, env.Object...)
		pages++
		next = nil

		if env.Pagination != nil && env.Pagination.Next != nil {
			next, err = FollowPage(env.Pagination.Next)
			if err != nil {
				return nil, fmt.Errorf("following next page: %w", err)
			}
		}
	}

	return all, nil
}

// StreamPages fetches windows sequentially and delivers each on the
// returned channel. The channel closes after the last window, the first
// error (delivered as PageResult.Err), or context cancellation.
func StreamPages[T any](ctx context.Context, client PaginationClient[T], req *Request, opts *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		next := withPageLimit(req, opts)
		pages := 0

		for next != nil {
			if opts != nil && opts.MaxPages > 0 && pages >= opts.MaxPages {
				return
			}

			env, err := client.ListWithRequest(ctx, next)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			result := PageResult[T]{Items: env.Object, Pagination: env.Pagination}
			select {
			case results <- result:
			case <-ctx.Done():
				return
			}

			pages++
			next = nil

			if env.Pagination != nil && env.Pagination.Next != nil {
				next, err = FollowPage(env.Pagination.Next)
				if err != nil {
					select {
					case results <- PageResult[T]{Err: fmt.Errorf("following next page: %w", err)}:
					case <-ctx.Done():
					}

					return
				}
			}
		}
	}()

	return results
}

// withPageLimit applies opts.Limit to the first request without mutating
// the caller's value.
func withPageLimit(req *Request, opts *PaginationOptions) *Request {
	if req == nil || opts == nil || opts.Limit <= 0 {
		return req
	}

	query := url.Values{}
	for key, vals := range req.Query {
		query[key] = vals
	}

	query.Set("limit", strconv.Itoa(opts.Limit))

	clone := *req
	clone.Query = query

	return &clone
}
