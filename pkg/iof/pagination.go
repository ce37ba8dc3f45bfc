package iof

import (
	"context"
	"fmt"

	"github.com/iofinance-io/iof-client/internal/constants"
)

// ListFunc fetches one page of a listing. Every rail List method satisfies
// this shape, so the helpers below compose with any of them.
type ListFunc[T any] func(ctx context.Context, opts *ListOptions) (*ListResponse[T], error)

// PaginationOptions bound multi-page fetches.
type PaginationOptions struct {
	// PageSize overrides the server default page size.
	PageSize int

	// MaxPages caps how many pages are fetched. Zero means the package
	// default.
	MaxPages int
}

// PageIterator walks a paginated listing one page at a time.
type PageIterator[T any] struct {
	ctx     context.Context
	fetch   ListFunc[T]
	opts    *ListOptions
	next    int
	pages   int
	started bool
}

// NewPageIterator returns an iterator positioned before the first page. The
// page number in opts, when set, selects the starting page.
func NewPageIterator[T any](ctx context.Context, fetch ListFunc[T], opts *ListOptions) *PageIterator[T] {
	start := 1
	if opts != nil && opts.Page > 0 {
		start = opts.Page
	}

	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
		opts:  opts,
		next:  start,
	}
}

// HasNext reports whether another page is available.
func (it *PageIterator[T]) HasNext() bool {
	if !it.started {
		return true
	}

	return it.next <= it.pages
}

// Next fetches the next page. It returns ErrNoMoreItems once the listing is
// exhausted.
func (it *PageIterator[T]) Next() ([]T, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreItems
	}

	resp, err := it.fetch(it.ctx, it.opts.WithPage(it.next))
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", it.next, err)
	}

	it.started = true
	it.pages = resp.Pagination.Pages
	it.next++

	return resp.Data, nil
}

// All drains the remaining pages into a single slice.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		page, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, page...)
	}

	return items, nil
}

// ForEach calls fn for every remaining item. A non-nil error from fn stops
// the walk.
func (it *PageIterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		page, err := it.Next()
		if err != nil {
			return err
		}

		for _, item := range page {
			if err := fn(item); err != nil {
				return err
			}
		}
	}

	return nil
}

// FetchAllPages collects every item of a listing, page by page.
func FetchAllPages[T any](ctx context.Context, fetch ListFunc[T], options *PaginationOptions) ([]T, error) {
	opts := &ListOptions{}
	maxPages := constants.MaxPages

	if options != nil {
		if options.PageSize > 0 {
			opts.Limit = options.PageSize
		}

		if options.MaxPages > 0 {
			maxPages = options.MaxPages
		}
	}

	var items []T

	it := NewPageIterator(ctx, fetch, opts)
	for fetched := 0; it.HasNext() && fetched < maxPages; fetched++ {
		page, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, page...)
	}

	return items, nil
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages in the background and delivers them on the
// returned channel. The channel is closed after the last page or the first
// error.
func StreamPages[T any](ctx context.Context, fetch ListFunc[T], options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	opts := &ListOptions{}
	maxPages := constants.MaxPages

	if options != nil {
		if options.PageSize > 0 {
			opts.Limit = options.PageSize
		}

		if options.MaxPages > 0 {
			maxPages = options.MaxPages
		}
	}

	go func() {
		defer close(results)

		it := NewPageIterator(ctx, fetch, opts)
		for fetched := 0; it.HasNext() && fetched < maxPages; fetched++ {
			page, err := it.Next()
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}
