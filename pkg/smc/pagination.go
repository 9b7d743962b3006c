package smc

import (
	"context"
	"fmt"
)

// RowsetPager fetches single rowset pages and refreshes the session token.
// CustomObjectsClient and DataExtensionsClient both satisfy it.
type RowsetPager interface {
	GetPage(ctx context.Context, objectKey string, page int) (*RowsetResponse, error)
	GetPageByLink(ctx context.Context, link string) (*RowsetResponse, error)
	RefreshToken(ctx context.Context) error
}

// PaginationOptions controls rowset iteration.
type PaginationOptions struct {
	// StartingPage: first page to fetch. Defaults to 1.
	StartingPage int
	// MaxPages: maximum number of pages to fetch. 0 means unbounded.
	MaxPages int
}

// DefaultPaginationOptions returns sensible default pagination options.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		StartingPage: 1,
	}
}

// RowIterator lazily walks the rows of a rowset endpoint. The sequence is
// finite (bounded by upstream pagination) and non-restartable. The token is
// refreshed before every page fetch, continuation follows the
// server-supplied next link, and iteration terminates as soon as a page
// carries no next link. Abandoning the iterator triggers no further network
// calls.
type RowIterator struct {
	ctx          context.Context
	pager        RowsetPager
	objectKey    string
	opts         PaginationOptions
	current      *RowsetResponse
	index        int
	pagesFetched int
	started      bool
	done         bool
	err          error
}

// NewRowIterator creates an iterator over the named object's rows. A nil
// opts uses DefaultPaginationOptions.
func NewRowIterator(ctx context.Context, pager RowsetPager, objectKey string, opts *PaginationOptions) *RowIterator {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	if opts.StartingPage < 1 {
		opts.StartingPage = 1
	}

	return &RowIterator{
		ctx:       ctx,
		pager:     pager,
		objectKey: objectKey,
		opts:      *opts,
	}
}

// HasNext reports whether another row (or a pending error) is available.
// It fetches pages on demand, so it may perform network calls.
func (it *RowIterator) HasNext() bool {
	if it.done {
		return false
	}

	if !it.started {
		it.started = true
		it.current, it.err = fetchRowsetPage(it.ctx, it.pager, func(ctx context.Context) (*RowsetResponse, error) {
			return it.pager.GetPage(ctx, it.objectKey, it.opts.StartingPage)
		})
		it.pagesFetched++
	}

	if it.err != nil {
		return true
	}

	for it.index >= len(it.current.Items) {
		link := it.current.NextLink()
		if link == "" || (it.opts.MaxPages > 0 && it.pagesFetched >= it.opts.MaxPages) {
			it.done = true

			return false
		}

		it.current, it.err = fetchRowsetPage(it.ctx, it.pager, func(ctx context.Context) (*RowsetResponse, error) {
			return it.pager.GetPageByLink(ctx, link)
		})
		it.pagesFetched++
		it.index = 0

		if it.err != nil {
			return true
		}
	}

	return true
}

// Next returns the next row. It returns ErrNoMoreItems once the sequence is
// exhausted. Any fetch error aborts the sequence; rows already returned
// remain valid.
func (it *RowIterator) Next() (Row, error) {
	if !it.HasNext() {
		return Row{}, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.done = true

		return Row{}, err
	}

	row := it.current.Items[it.index]
	it.index++

	return row, nil
}

// All drains the remaining rows into a slice.
func (it *RowIterator) All() ([]Row, error) {
	var rows []Row

	for it.HasNext() {
		row, err := it.Next()
		if err != nil {
			return rows, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// ForEach applies fn to each remaining row. A non-nil error from fn stops
// iteration without further fetches.
func (it *RowIterator) ForEach(fn func(Row) error) error {
	for it.HasNext() {
		row, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(row)
		if err != nil {
			return err
		}
	}

	return nil
}

// FetchAllRows fetches every row of the named object into memory.
func FetchAllRows(ctx context.Context, pager RowsetPager, objectKey string, opts *PaginationOptions) ([]Row, error) {
	return NewRowIterator(ctx, pager, objectKey, opts).All()
}

// PageResult carries one fetched page (or the error that ended the stream).
type PageResult struct {
	Page  int
	Items []Row
	Err   error
}

// StreamRowsetPages walks the rowset in a goroutine, sending one PageResult
// per page. The channel closes after the last page or the first error.
// Cancel ctx to stop a stream that is no longer being drained.
func StreamRowsetPages(ctx context.Context, pager RowsetPager, objectKey string, opts *PaginationOptions) <-chan PageResult {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	startingPage := opts.StartingPage
	if startingPage < 1 {
		startingPage = 1
	}

	maxPages := opts.MaxPages
	results := make(chan PageResult)

	go func() {
		defer close(results)

		pagesFetched := 0
		fetch := func(ctx context.Context) (*RowsetResponse, error) {
			return pager.GetPage(ctx, objectKey, startingPage)
		}

		for {
			response, err := fetchRowsetPage(ctx, pager, fetch)
			pagesFetched++

			result := PageResult{Err: err}
			if err == nil {
				result.Page = response.Page
				result.Items = response.Items
			}

			select {
			case results <- result:
			case <-ctx.Done():
				return
			}

			if err != nil {
				return
			}

			link := response.NextLink()
			if link == "" || (maxPages > 0 && pagesFetched >= maxPages) {
				return
			}

			fetch = func(ctx context.Context) (*RowsetResponse, error) {
				return pager.GetPageByLink(ctx, link)
			}
		}
	}()

	return results
}

// fetchRowsetPage refreshes the token, then fetches a page. Every page fetch
// pays the extra refresh round trip on purpose: the upstream token contract
// is opaque, so the session is re-established rather than reasoned about.
func fetchRowsetPage(ctx context.Context, pager RowsetPager, fetch func(context.Context) (*RowsetResponse, error)) (*RowsetResponse, error) {
	err := pager.RefreshToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}

	response, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	return response, nil
}
