package paging

import (
	"context"
	"sync"
	"time"
)

type fetchCall[K comparable] struct {
	page int
	size int
	key  K
}

// fakeFetcher serves slices of an in-memory dataset. Individual calls (by
// 0-based index) can be made to fail or to block until their gate is closed.
type fakeFetcher[K comparable] struct {
	mu      sync.Mutex
	data    map[K][]int
	calls   []fetchCall[K]
	fail    map[int]error
	gates   map[int]chan struct{}
	entered chan int
}

func newFakeFetcher[K comparable]() *fakeFetcher[K] {
	return &fakeFetcher[K]{
		data:    map[K][]int{},
		fail:    map[int]error{},
		gates:   map[int]chan struct{}{},
		entered: make(chan int, 256),
	}
}

func seq(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}
	return out
}

func (f *fakeFetcher[K]) gate(call int) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[call] = ch
	return ch
}

func (f *fakeFetcher[K]) failCall(call int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[call] = err
}

func (f *fakeFetcher[K]) setData(key K, items []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = items
}

func (f *fakeFetcher[K]) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeFetcher[K]) lastCall() fetchCall[K] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func (f *fakeFetcher[K]) Fetch(ctx context.Context, pageIndex, pageSize int, key K) (Page[int], error) {
	f.mu.Lock()
	idx := len(f.calls)
	f.calls = append(f.calls, fetchCall[K]{page: pageIndex, size: pageSize, key: key})
	gate := f.gates[idx]
	failErr := f.fail[idx]
	f.mu.Unlock()

	f.entered <- idx
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return Page[int]{}, ctx.Err()
		}
	}
	if failErr != nil {
		return Page[int]{}, failErr
	}

	f.mu.Lock()
	items := f.data[key]
	f.mu.Unlock()

	start := pageIndex * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return Page[int]{
		Content:       append([]int(nil), items[start:end]...),
		TotalElements: len(items),
		TotalPages:    TotalPagesFor(len(items), pageSize),
		PageNumber:    pageIndex,
	}, nil
}

// waitEntered blocks until the fetch with the given call index has started.
func (f *fakeFetcher[K]) waitEntered(call int) bool {
	timeout := time.After(2 * time.Second)
	for {
		select {
		case got := <-f.entered:
			if got == call {
				return true
			}
		case <-timeout:
			return false
		}
	}
}

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []Outcome
	lists    []string
}

func (o *recordingObserver) FetchCompleted(list string, outcome Outcome, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
	o.lists = append(o.lists, list)
}
