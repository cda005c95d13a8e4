package paykit

import (
	"context"
	"iter"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultPageSize is used when a list call does not specify one.
const DefaultPageSize = 50

// Pagination mirrors the pagination object the API returns with every
// list response.
type Pagination struct {
	Page    int `json:"page"`
	Total   int `json:"total"`
	MaxPage int `json:"max_page"`
}

// Page is one page of a list endpoint's results.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// PageFunc fetches one page of results.
type PageFunc[T any] func(ctx context.Context, page, pageSize int) (*Page[T], error)

// Iterate walks a paged endpoint from page 1 upward and exposes the items
// as one continuous lazy sequence. Pages are fetched on demand: page N+1 is
// requested only after every item of page N has been yielded. The sequence
// ends when the server reports the last page, when the consumer breaks out
// of the loop, or when ctx is cancelled; a fetch error is yielded once and
// terminates the sequence.
//
// Each range over the returned sequence starts a fresh traversal.
func Iterate[T any](ctx context.Context, pageSize int, fetch PageFunc[T]) iter.Seq2[T, error] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return func(yield func(T, error) bool) {
		for page := 1; ; page++ {
			if err := ctx.Err(); err != nil {
				var zero T
				yield(zero, err)
				return
			}

			result, err := fetch(ctx, page, pageSize)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}

			for _, item := range result.Items {
				if !yield(item, nil) {
					return
				}
			}

			if result.Pagination.Page >= result.Pagination.MaxPage {
				return
			}
		}
	}
}

// listPages adapts a list endpoint into a PageFunc for Iterate.
func listPages[T any](c *Client, path string) PageFunc[T] {
	return func(ctx context.Context, page, pageSize int) (*Page[T], error) {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("page_size", strconv.Itoa(pageSize))

		var out Page[T]
		if err := c.do(ctx, apiRequest{method: http.MethodGet, path: path, query: query}, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
}
