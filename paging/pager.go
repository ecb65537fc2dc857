package paging

import (
	"context"
	"sync"
	"time"
)

// Outcome labels a completed fetch for observers.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
	OutcomeStale   Outcome = "stale"
)

// Observer is notified after every fetch issued by a pager.
type Observer interface {
	FetchCompleted(list string, outcome Outcome, elapsed time.Duration)
}

type Option[T any] func(*options[T])

type options[T any] struct {
	name     string
	observer Observer
	identity func(T) string
}

// WithName labels the pager in observer callbacks and notification identities.
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) { o.name = name }
}

func WithObserver[T any](obs Observer) Option[T] {
	return func(o *options[T]) { o.observer = obs }
}

// WithIdentity makes LoadNext drop appended items whose identity was already
// accumulated. Only needed when the server cannot guarantee disjoint pages.
func WithIdentity[T any](identity func(T) string) Option[T] {
	return func(o *options[T]) { o.identity = identity }
}

// AccumulatingPager drives repeated fetches, replacing items on reset and
// appending them on LoadNext. It is safe for concurrent use; the lock is not
// held while a fetch is in flight.
type AccumulatingPager[T any, K comparable] struct {
	fetcher Fetcher[T, K]
	opts    options[T]

	mu         sync.Mutex
	key        K
	state      ListState[T]
	generation uint64
	seen       map[string]struct{}
}

func NewAccumulatingPager[T any, K comparable](fetcher Fetcher[T, K], pageSize int, opts ...Option[T]) *AccumulatingPager[T, K] {
	if pageSize <= 0 {
		pageSize = 20
	}
	p := &AccumulatingPager[T, K]{fetcher: fetcher}
	for _, opt := range opts {
		opt(&p.opts)
	}
	p.state.PageSize = pageSize
	return p
}

func (p *AccumulatingPager[T, K]) Name() string { return p.opts.name }

// Reset replaces the list with page 0 for key.
func (p *AccumulatingPager[T, K]) Reset(ctx context.Context, key K) error {
	return p.ResetAt(ctx, key, 0)
}

// ResetAt replaces the list with the given page for key. Any request still in
// flight on this pager becomes stale.
func (p *AccumulatingPager[T, K]) ResetAt(ctx context.Context, key K, pageIndex int) error {
	if pageIndex < 0 {
		pageIndex = 0
	}

	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.key = key
	p.state.Items = nil
	p.state.PageIndex = pageIndex
	p.state.IsLoading = true
	p.state.LastError = nil
	p.state.Generation = gen
	p.seen = nil
	pageSize := p.state.PageSize
	p.mu.Unlock()

	start := time.Now()
	page, err := p.fetcher.Fetch(ctx, pageIndex, pageSize, key)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		p.observe(OutcomeStale, start)
		return ErrStaleResponse
	}
	p.state.IsLoading = false
	if err != nil {
		p.state.Items = nil
		p.state.Total = 0
		p.state.TotalPages = 0
		p.state.LastError = err
		p.observe(OutcomeError, start)
		return &FetchError{List: p.opts.name, Generation: gen, Err: err}
	}

	p.state.Items = append([]T(nil), page.Content...)
	p.applyTotals(page, pageSize)
	p.remember(p.state.Items)
	p.observe(OutcomeSuccess, start)
	return nil
}

// LoadNext appends the next page. It is a no-op while a request is in flight or
// once every element has been accumulated. On failure the page index rolls back
// so a retry re-requests the same page and accumulated items are kept.
func (p *AccumulatingPager[T, K]) LoadNext(ctx context.Context) error {
	p.mu.Lock()
	if p.state.IsLoading || !p.state.HasMore() {
		p.mu.Unlock()
		return nil
	}
	p.generation++
	gen := p.generation
	prevIndex := p.state.PageIndex
	p.state.PageIndex = prevIndex + 1
	p.state.IsLoading = true
	p.state.Generation = gen
	pageIndex, pageSize, key := p.state.PageIndex, p.state.PageSize, p.key
	p.mu.Unlock()

	start := time.Now()
	page, err := p.fetcher.Fetch(ctx, pageIndex, pageSize, key)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		p.observe(OutcomeStale, start)
		return ErrStaleResponse
	}
	p.state.IsLoading = false
	if err != nil {
		p.state.PageIndex = prevIndex
		p.state.LastError = err
		p.observe(OutcomeError, start)
		return &FetchError{List: p.opts.name, Generation: gen, Err: err}
	}

	p.state.Items = append(p.state.Items, p.fresh(page.Content)...)
	p.applyTotals(page, pageSize)
	p.state.LastError = nil
	p.observe(OutcomeSuccess, start)
	return nil
}

// SetPageSize changes the page size used by subsequent requests.
func (p *AccumulatingPager[T, K]) SetPageSize(n int) error {
	if n <= 0 {
		return ErrInvalidPageSize
	}
	p.mu.Lock()
	p.state.PageSize = n
	p.mu.Unlock()
	return nil
}

// State returns a snapshot of the list.
func (p *AccumulatingPager[T, K]) State() ListState[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Items = append([]T(nil), p.state.Items...)
	return s
}

// Key returns the key of the most recent reset.
func (p *AccumulatingPager[T, K]) Key() K {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.key
}

func (p *AccumulatingPager[T, K]) applyTotals(page Page[T], pageSize int) {
	if page.TotalElements < 0 {
		page.TotalElements = 0
	}
	p.state.Total = page.TotalElements
	p.state.TotalPages = page.TotalPages
	if p.state.TotalPages <= 0 {
		p.state.TotalPages = TotalPagesFor(page.TotalElements, pageSize)
	}
}

func (p *AccumulatingPager[T, K]) remember(items []T) {
	if p.opts.identity == nil {
		return
	}
	p.seen = make(map[string]struct{}, len(items))
	for _, it := range items {
		p.seen[p.opts.identity(it)] = struct{}{}
	}
}

func (p *AccumulatingPager[T, K]) fresh(items []T) []T {
	if p.opts.identity == nil {
		return items
	}
	if p.seen == nil {
		p.seen = make(map[string]struct{}, len(items))
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		id := p.opts.identity(it)
		if _, dup := p.seen[id]; dup {
			continue
		}
		p.seen[id] = struct{}{}
		out = append(out, it)
	}
	return out
}

func (p *AccumulatingPager[T, K]) observe(outcome Outcome, start time.Time) {
	if p.opts.observer != nil {
		p.opts.observer.FetchCompleted(p.opts.name, outcome, time.Since(start))
	}
}
