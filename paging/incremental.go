package paging

import (
	"context"
	"sync"
)

// IncrementalList is an append-only "load more" list keyed by an identity such
// as the selected post ID. It never exposes page jumps.
type IncrementalList[T any, K comparable] struct {
	pager *AccumulatingPager[T, K]

	mu        sync.Mutex
	activated bool
	activeKey K
}

func NewIncrementalList[T any, K comparable](fetcher Fetcher[T, K], pageSize int, opts ...Option[T]) *IncrementalList[T, K] {
	return &IncrementalList[T, K]{pager: NewAccumulatingPager(fetcher, pageSize, opts...)}
}

// Activate resets the list the first time key is seen. Activating the key that
// is already active is a no-op, even if its first load failed; use Reset to retry.
func (l *IncrementalList[T, K]) Activate(ctx context.Context, key K) (bool, error) {
	l.mu.Lock()
	if l.activated && l.activeKey == key {
		l.mu.Unlock()
		return false, nil
	}
	l.activated = true
	l.activeKey = key
	l.mu.Unlock()

	return true, l.pager.Reset(ctx, key)
}

// Reset unconditionally reloads page 0 for key and marks it active.
func (l *IncrementalList[T, K]) Reset(ctx context.Context, key K) error {
	l.mu.Lock()
	l.activated = true
	l.activeKey = key
	l.mu.Unlock()

	return l.pager.Reset(ctx, key)
}

// LoadMore appends the next page; no-op when nothing is left or a load is running.
func (l *IncrementalList[T, K]) LoadMore(ctx context.Context) error {
	return l.pager.LoadNext(ctx)
}

// Active reports the active key, if any.
func (l *IncrementalList[T, K]) Active() (K, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.activeKey, l.activated
}

func (l *IncrementalList[T, K]) State() ListState[T] { return l.pager.State() }

func (l *IncrementalList[T, K]) Name() string { return l.pager.Name() }
