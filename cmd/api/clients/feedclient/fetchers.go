package feedclient

import (
	"context"

	"feed-admin/paging"
)

// PostFilter is the key of the posts list. The zero value lists every post.
type PostFilter struct {
	Status PostStatus `json:"status,omitempty"`
	Query  string     `json:"query,omitempty"`
}

// PostsFetcher pages through ListPosts.
func (c *Client) PostsFetcher() paging.Fetcher[Post, PostFilter] {
	return paging.FetchFunc[Post, PostFilter](func(ctx context.Context, pageIndex, pageSize int, f PostFilter) (paging.Page[Post], error) {
		resp, err := c.ListPosts(ctx, ListPostsParams{Page: pageIndex, Size: pageSize, Status: f.Status, Search: f.Query})
		if err != nil {
			return paging.Page[Post]{}, err
		}
		return toPage(resp, pageSize), nil
	})
}

// LikesFetcher pages through the users who liked the keyed post.
func (c *Client) LikesFetcher() paging.Fetcher[EngagedUser, string] {
	return engagementFetcher(c.ListLikes)
}

func (c *Client) SharesFetcher() paging.Fetcher[EngagedUser, string] {
	return engagementFetcher(c.ListShares)
}

func (c *Client) CommentsFetcher() paging.Fetcher[CommentWithReplies, string] {
	return engagementFetcher(c.ListComments)
}

func engagementFetcher[T any](list func(ctx context.Context, postID string, page, size int) (PageResponse[T], error)) paging.Fetcher[T, string] {
	return paging.FetchFunc[T, string](func(ctx context.Context, pageIndex, pageSize int, postID string) (paging.Page[T], error) {
		resp, err := list(ctx, postID, pageIndex, pageSize)
		if err != nil {
			return paging.Page[T]{}, err
		}
		return toPage(resp, pageSize), nil
	})
}

func toPage[T any](resp PageResponse[T], pageSize int) paging.Page[T] {
	totalPages := resp.TotalPages
	if totalPages == 0 {
		totalPages = paging.TotalPagesFor(resp.TotalElements, pageSize)
	}
	content := resp.Content
	if content == nil {
		content = []T{}
	}
	return paging.Page[T]{
		Content:       content,
		TotalElements: resp.TotalElements,
		TotalPages:    totalPages,
		PageNumber:    resp.Number,
	}
}
