package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"feed-admin/cmd/api/clients/feedclient"
	"feed-admin/cmd/api/httpclient"
	"feed-admin/paging"
)

// fakeAPI is an in-memory feed service. It implements FeedAPI and moderation.Executor.
type fakeAPI struct {
	mu       sync.Mutex
	posts    []feedclient.Post
	likes    map[string][]feedclient.EngagedUser
	comments map[string][]feedclient.CommentWithReplies
	stats    feedclient.Stats

	statsErr   error
	postsErr   error
	actionErr  error
	fetchCalls map[string]int
}

func newFakeAPI(n int) *fakeAPI {
	f := &fakeAPI{
		likes:      map[string][]feedclient.EngagedUser{},
		comments:   map[string][]feedclient.CommentWithReplies{},
		fetchCalls: map[string]int{},
		stats:      feedclient.Stats{TotalPosts: int64(n), ActivePosts: int64(n)},
	}
	for i := 0; i < n; i++ {
		f.posts = append(f.posts, feedclient.Post{
			ID:      fmt.Sprintf("p%d", i),
			Content: fmt.Sprintf("<p>post %d</p>", i),
			Status:  feedclient.StatusActive,
		})
	}
	return f
}

func (f *fakeAPI) calls(list string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls[list]
}

func (f *fakeAPI) setPostsErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.postsErr = err
}

func (f *fakeAPI) find(id string) (int, bool) {
	for i, p := range f.posts {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

func slicePage[T any](items []T, pageIndex, pageSize int) paging.Page[T] {
	start := pageIndex * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return paging.Page[T]{
		Content:       append([]T{}, items[start:end]...),
		TotalElements: len(items),
		TotalPages:    paging.TotalPagesFor(len(items), pageSize),
		PageNumber:    pageIndex,
	}
}

func (f *fakeAPI) GetPost(_ context.Context, id string) (feedclient.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.find(id)
	if !ok {
		return feedclient.Post{}, &httpclient.ServerError{Op: "GetPost", StatusCode: 404}
	}
	return f.posts[i], nil
}

func (f *fakeAPI) GetStats(context.Context) (feedclient.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats, f.statsErr
}

func (f *fakeAPI) RecalculateScores(context.Context) (feedclient.RecalculateResponse, error) {
	return feedclient.RecalculateResponse{Message: "score recalculation started"}, nil
}

func (f *fakeAPI) Health(context.Context) error { return nil }

func (f *fakeAPI) PostsFetcher() paging.Fetcher[feedclient.Post, feedclient.PostFilter] {
	return paging.FetchFunc[feedclient.Post, feedclient.PostFilter](func(_ context.Context, pageIndex, pageSize int, filter feedclient.PostFilter) (paging.Page[feedclient.Post], error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.fetchCalls["posts"]++
		if f.postsErr != nil {
			return paging.Page[feedclient.Post]{}, f.postsErr
		}
		var matched []feedclient.Post
		for _, p := range f.posts {
			if filter.Status != "" && p.Status != filter.Status {
				continue
			}
			if filter.Query != "" && !strings.Contains(p.Content, filter.Query) {
				continue
			}
			matched = append(matched, p)
		}
		return slicePage(matched, pageIndex, pageSize), nil
	})
}

func (f *fakeAPI) LikesFetcher() paging.Fetcher[feedclient.EngagedUser, string] {
	return paging.FetchFunc[feedclient.EngagedUser, string](func(_ context.Context, pageIndex, pageSize int, postID string) (paging.Page[feedclient.EngagedUser], error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.fetchCalls["likes"]++
		return slicePage(f.likes[postID], pageIndex, pageSize), nil
	})
}

func (f *fakeAPI) CommentsFetcher() paging.Fetcher[feedclient.CommentWithReplies, string] {
	return paging.FetchFunc[feedclient.CommentWithReplies, string](func(_ context.Context, pageIndex, pageSize int, postID string) (paging.Page[feedclient.CommentWithReplies], error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.fetchCalls["comments"]++
		return slicePage(f.comments[postID], pageIndex, pageSize), nil
	})
}

func (f *fakeAPI) SharesFetcher() paging.Fetcher[feedclient.EngagedUser, string] {
	return paging.FetchFunc[feedclient.EngagedUser, string](func(_ context.Context, pageIndex, pageSize int, postID string) (paging.Page[feedclient.EngagedUser], error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.fetchCalls["shares"]++
		return paging.Page[feedclient.EngagedUser]{Content: []feedclient.EngagedUser{}}, nil
	})
}

func (f *fakeAPI) mutate(id string, fn func(p *feedclient.Post)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.actionErr != nil {
		return f.actionErr
	}
	i, ok := f.find(id)
	if !ok {
		return errors.New("not found")
	}
	fn(&f.posts[i])
	return nil
}

func (f *fakeAPI) Hide(_ context.Context, id, reason string) error {
	return f.mutate(id, func(p *feedclient.Post) {
		p.Status = feedclient.StatusHidden
		p.HiddenReason = reason
	})
}

func (f *fakeAPI) Restore(_ context.Context, id string) error {
	return f.mutate(id, func(p *feedclient.Post) { p.Status = feedclient.StatusActive })
}

func (f *fakeAPI) Delete(_ context.Context, id, reason string) error {
	return f.mutate(id, func(p *feedclient.Post) {
		p.Status = feedclient.StatusDeleted
		p.DeletedReason = reason
	})
}

func (f *fakeAPI) Feature(_ context.Context, id string, _ *int) error {
	return f.mutate(id, func(p *feedclient.Post) { p.IsFeatured = true })
}

func (f *fakeAPI) Unfeature(_ context.Context, id string) error {
	return f.mutate(id, func(p *feedclient.Post) { p.IsFeatured = false })
}
