package paging

import (
	"context"
	"errors"
)

// FilterableList is a page-number navigated list: every navigation, filter or
// page size change replaces the items with exactly one page.
type FilterableList[T any, K comparable] struct {
	pager *AccumulatingPager[T, K]
}

func NewFilterableList[T any, K comparable](fetcher Fetcher[T, K], pageSize int, opts ...Option[T]) *FilterableList[T, K] {
	return &FilterableList[T, K]{pager: NewAccumulatingPager(fetcher, pageSize, opts...)}
}

// Load fetches the first page for key. Used when the owning view mounts.
func (l *FilterableList[T, K]) Load(ctx context.Context, key K) error {
	return l.pager.Reset(ctx, key)
}

// SetFilter replaces the list with page 0 of the new filter.
func (l *FilterableList[T, K]) SetFilter(ctx context.Context, key K) error {
	return l.pager.Reset(ctx, key)
}

// SetPageSize changes the page size and goes back to page 0.
func (l *FilterableList[T, K]) SetPageSize(ctx context.Context, n int) error {
	if err := l.pager.SetPageSize(n); err != nil {
		return err
	}
	return l.pager.Reset(ctx, l.pager.Key())
}

// GoToPage fetches page n, clamped to [0, max(totalPages-1, 0)].
func (l *FilterableList[T, K]) GoToPage(ctx context.Context, n int) error {
	s := l.pager.State()
	return l.pager.ResetAt(ctx, l.pager.Key(), ClampPage(n, s.TotalPages))
}

func (l *FilterableList[T, K]) FirstPage(ctx context.Context) error {
	return l.GoToPage(ctx, 0)
}

func (l *FilterableList[T, K]) PrevPage(ctx context.Context) error {
	return l.GoToPage(ctx, l.pager.State().PageIndex-1)
}

func (l *FilterableList[T, K]) NextPage(ctx context.Context) error {
	return l.GoToPage(ctx, l.pager.State().PageIndex+1)
}

func (l *FilterableList[T, K]) LastPage(ctx context.Context) error {
	return l.GoToPage(ctx, l.pager.State().LastPageIndex())
}

// Refresh re-fetches the current page. If the collection shrank so that the
// current page is past the end, the new last page is fetched instead.
func (l *FilterableList[T, K]) Refresh(ctx context.Context) error {
	key := l.pager.Key()
	if err := l.pager.ResetAt(ctx, key, l.pager.State().PageIndex); err != nil {
		return err
	}
	s := l.pager.State()
	if s.PageIndex > s.LastPageIndex() {
		err := l.pager.ResetAt(ctx, key, s.LastPageIndex())
		if errors.Is(err, ErrStaleResponse) {
			return nil
		}
		return err
	}
	return nil
}

func (l *FilterableList[T, K]) State() ListState[T] { return l.pager.State() }

func (l *FilterableList[T, K]) Key() K { return l.pager.Key() }

func (l *FilterableList[T, K]) Name() string { return l.pager.Name() }
