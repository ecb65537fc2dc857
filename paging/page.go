// Package paging turns a paged remote collection into one logical list.
//
// AccumulatingPager owns the list state and the request generation counter.
// FilterableList drives it in replace mode (page-number navigation) and
// IncrementalList in append mode ("load more").
package paging

import (
	"context"
	"errors"
)

var (
	// ErrStaleResponse is returned when a response arrived after a newer request
	// was issued on the same pager. The response is dropped without touching state.
	ErrStaleResponse = errors.New("paging: stale response discarded")

	ErrInvalidPageSize = errors.New("paging: page size must be positive")
)

// FetchError wraps a failed fetch with the generation of the request that
// failed, so callers can tell repeated failures of one request from new ones.
type FetchError struct {
	List       string
	Generation uint64
	Err        error
}

func (e *FetchError) Error() string { return e.Err.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// GenerationOf returns the generation carried by a *FetchError in err's chain.
func GenerationOf(err error) (uint64, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Generation, true
	}
	return 0, false
}

// Page is one server-returned slice of a larger ordered collection.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	PageNumber    int `json:"number"`
}

// Fetcher loads one page. Implementations must not cache: repeated calls with the
// same arguments return the current server state.
type Fetcher[T any, K comparable] interface {
	Fetch(ctx context.Context, pageIndex, pageSize int, key K) (Page[T], error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc[T any, K comparable] func(ctx context.Context, pageIndex, pageSize int, key K) (Page[T], error)

func (f FetchFunc[T, K]) Fetch(ctx context.Context, pageIndex, pageSize int, key K) (Page[T], error) {
	return f(ctx, pageIndex, pageSize, key)
}

// ListState is a snapshot of a pager. Items is a copy and may be retained by the caller.
type ListState[T any] struct {
	Items      []T   `json:"items"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	PageIndex  int   `json:"page_index"`
	PageSize   int   `json:"page_size"`
	IsLoading  bool  `json:"is_loading"`
	LastError  error `json:"-"`
	// Generation identifies the request that produced (or is producing) this state.
	Generation uint64 `json:"generation"`
}

// HasMore reports whether an append-mode LoadNext would issue a request.
// The page count bound keeps de-duplicated lists from walking past the end.
func (s ListState[T]) HasMore() bool {
	if len(s.Items) >= s.Total {
		return false
	}
	return s.TotalPages <= 0 || s.PageIndex+1 < s.TotalPages
}

// LastPageIndex is the highest valid page index, never negative.
func (s ListState[T]) LastPageIndex() int {
	return lastPageIndex(s.TotalPages)
}

func lastPageIndex(totalPages int) int {
	if totalPages <= 1 {
		return 0
	}
	return totalPages - 1
}

// ClampPage clamps n into [0, max(totalPages-1, 0)].
func ClampPage(n, totalPages int) int {
	if n < 0 {
		return 0
	}
	if last := lastPageIndex(totalPages); n > last {
		return last
	}
	return n
}

// TotalPagesFor derives a page count when the server omits it.
func TotalPagesFor(totalElements, pageSize int) int {
	if totalElements <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalElements + pageSize - 1) / pageSize
}
