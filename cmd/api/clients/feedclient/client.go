package feedclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"feed-admin/cmd/api/httpclient"
	"feed-admin/config"
)

// Client는 원격 피드 관리 API(feed-service)를 호출하는 얇은 클라이언트다.
//
//   - 랭킹 점수 계산, 참여 집계, soft-delete, 기능 만료 등 비즈니스 로직은 전혀 알지 않는다.
//   - 모든 호출은 실패할 수 있으며, 실패는 httpclient.NetworkError / httpclient.ServerError 로 분류된다.
//
// baseURL 예: http://feed_service:8080
type Client struct {
	base *httpclient.BaseClient
}

const adminPrefix = "/api/admin/feed"

// ErrInvalidPostID 는 하나의 경로 세그먼트로 쓸 수 없는 포스트 ID 에 대해 반환된다.
var ErrInvalidPostID = errors.New("feedclient: invalid post id")

func New(cfg config.FeedAPIConfig) *Client {
	return &Client{
		base: httpclient.NewBaseClient(cfg.BaseURL, httpclient.Config{
			Timeout: cfg.Timeout,
			Token:   cfg.Token,
		}),
	}
}

// NewWithBase 는 이미 구성된 BaseClient 를 사용한다. (테스트용 httptest 서버 등)
func NewWithBase(base *httpclient.BaseClient) *Client {
	return &Client{base: base}
}

// -------------------- Posts --------------------

// ListPosts는 GET /api/admin/feed/posts 를 호출한다. Status 가 비어 있으면 전체 상태를 조회한다.
func (c *Client) ListPosts(ctx context.Context, params ListPostsParams) (PageResponse[Post], error) {
	q := pageQuery(params.Page, params.Size)
	if params.Status != "" {
		q.Set("status", string(params.Status))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}

	var out PageResponse[Post]
	if err := c.get(ctx, "feed-service ListPosts", path.Join(adminPrefix, "posts"), q, &out); err != nil {
		return PageResponse[Post]{}, err
	}
	return out, nil
}

// GetPost는 단일 포스트를 조회한다. 존재하지 않으면 httpclient.IsNotFound 가 true 인 에러를 반환한다.
func (c *Client) GetPost(ctx context.Context, id string) (Post, error) {
	p, err := postsPath(id)
	if err != nil {
		return Post{}, err
	}
	var out Post
	if err := c.get(ctx, "feed-service GetPost", p, nil, &out); err != nil {
		return Post{}, err
	}
	return out, nil
}

// -------------------- Engagement --------------------

func (c *Client) ListLikes(ctx context.Context, postID string, page, size int) (PageResponse[EngagedUser], error) {
	p, err := postsPath(postID, "likes")
	if err != nil {
		return PageResponse[EngagedUser]{}, err
	}
	var out PageResponse[EngagedUser]
	if err := c.get(ctx, "feed-service ListLikes", p, pageQuery(page, size), &out); err != nil {
		return PageResponse[EngagedUser]{}, err
	}
	return out, nil
}

// ListComments는 top-level 댓글만 페이지 단위로 조회한다. 답글은 각 댓글에 포함되어 온다.
func (c *Client) ListComments(ctx context.Context, postID string, page, size int) (PageResponse[CommentWithReplies], error) {
	p, err := postsPath(postID, "comments")
	if err != nil {
		return PageResponse[CommentWithReplies]{}, err
	}
	var out PageResponse[CommentWithReplies]
	if err := c.get(ctx, "feed-service ListComments", p, pageQuery(page, size), &out); err != nil {
		return PageResponse[CommentWithReplies]{}, err
	}
	return out, nil
}

func (c *Client) ListShares(ctx context.Context, postID string, page, size int) (PageResponse[EngagedUser], error) {
	p, err := postsPath(postID, "shares")
	if err != nil {
		return PageResponse[EngagedUser]{}, err
	}
	var out PageResponse[EngagedUser]
	if err := c.get(ctx, "feed-service ListShares", p, pageQuery(page, size), &out); err != nil {
		return PageResponse[EngagedUser]{}, err
	}
	return out, nil
}

// -------------------- Moderation --------------------

type reasonRequest struct {
	Reason string `json:"reason,omitempty"`
}

type featureRequest struct {
	DurationHours *int `json:"durationHours,omitempty"`
}

func (c *Client) Hide(ctx context.Context, postID, reason string) error {
	return c.sendPost(ctx, "feed-service Hide", http.MethodPost, postID, "hide", nil, reasonRequest{Reason: reason})
}

func (c *Client) Restore(ctx context.Context, postID string) error {
	return c.sendPost(ctx, "feed-service Restore", http.MethodPost, postID, "restore", nil, nil)
}

// Delete는 soft-delete 를 요청한다. 사유는 DELETE 바디 대신 쿼리로 전달한다.
func (c *Client) Delete(ctx context.Context, postID, reason string) error {
	var q url.Values
	if reason != "" {
		q = url.Values{"reason": {reason}}
	}
	return c.sendPost(ctx, "feed-service Delete", http.MethodDelete, postID, "", q, nil)
}

// Feature는 포스트를 추천 상태로 만든다. durationHours 가 nil 이면 서버 기본 기간을 사용한다.
func (c *Client) Feature(ctx context.Context, postID string, durationHours *int) error {
	return c.sendPost(ctx, "feed-service Feature", http.MethodPost, postID, "feature", nil, featureRequest{DurationHours: durationHours})
}

func (c *Client) Unfeature(ctx context.Context, postID string) error {
	return c.sendPost(ctx, "feed-service Unfeature", http.MethodPost, postID, "unfeature", nil, nil)
}

// -------------------- Stats / Scores --------------------

func (c *Client) GetStats(ctx context.Context) (Stats, error) {
	var out Stats
	if err := c.get(ctx, "feed-service GetStats", path.Join(adminPrefix, "stats"), nil, &out); err != nil {
		return Stats{}, err
	}
	return out, nil
}

// RecalculateScores는 서버 측 비동기 재계산을 요청한다. 완료 신호는 돌아오지 않는다.
func (c *Client) RecalculateScores(ctx context.Context) (RecalculateResponse, error) {
	req, err := c.base.NewJSONRequest(ctx, http.MethodPost, path.Join(adminPrefix, "scores", "recalculate"), nil, nil)
	if err != nil {
		return RecalculateResponse{}, err
	}
	var out RecalculateResponse
	if err := c.base.Send("feed-service RecalculateScores", req, &out); err != nil {
		return RecalculateResponse{}, err
	}
	if out.Message == "" {
		out.Message = "score recalculation started"
	}
	return out, nil
}

// Health 는 feed-service 의 /health 엔드포인트를 호출해 상태를 확인한다.
func (c *Client) Health(ctx context.Context) error {
	return c.send(ctx, "feed-service Health", http.MethodGet, "/health", nil, nil)
}

// -------------------- helpers --------------------

func (c *Client) get(ctx context.Context, op, relPath string, q url.Values, out any) error {
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, q, nil)
	if err != nil {
		return err
	}
	return c.base.Send(op, req, out)
}

func (c *Client) send(ctx context.Context, op, method, relPath string, q url.Values, payload any) error {
	req, err := c.base.NewJSONRequest(ctx, method, relPath, q, payload)
	if err != nil {
		return err
	}
	return c.base.Send(op, req, nil)
}

// sendPost 는 postID 를 검증한 뒤 /posts/{id}/... 로 요청한다.
func (c *Client) sendPost(ctx context.Context, op, method, postID, action string, q url.Values, payload any) error {
	p, err := postsPath(postID, action)
	if err != nil {
		return err
	}
	return c.send(ctx, op, method, p, q, payload)
}

// postsPath 는 /api/admin/feed/posts/{postID}/{action...} 를 만든다.
// postID 는 불투명한 식별자이므로 경로를 벗어나는 값(/, .., 빈 값 등)은 거부한다.
func postsPath(postID string, action ...string) (string, error) {
	if err := validatePostID(postID); err != nil {
		return "", err
	}
	elems := append([]string{adminPrefix, "posts", postID}, action...)
	return path.Join(elems...), nil
}

func validatePostID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, "/\\?#%") {
		return fmt.Errorf("%w: %q", ErrInvalidPostID, id)
	}
	for _, r := range id {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: %q", ErrInvalidPostID, id)
		}
	}
	return nil
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	if page < 0 {
		page = 0
	}
	q.Set("page", strconv.Itoa(page))
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	return q
}
