package feedclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feed-admin/cmd/api/httpclient"
	"feed-admin/config"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   string
	Auth   string
}

type fakeFeedService struct {
	mu       sync.Mutex
	requests []recordedRequest
	handler  http.HandlerFunc
}

func newFakeFeedService(t *testing.T, handler http.HandlerFunc) (*fakeFeedService, *Client) {
	t.Helper()
	f := &fakeFeedService{handler: handler}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   string(body),
			Auth:   r.Header.Get("Authorization"),
		})
		f.mu.Unlock()
		if f.handler != nil {
			f.handler(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return f, New(config.FeedAPIConfig{BaseURL: srv.URL, Token: "service-token", Timeout: time.Second})
}

func (f *fakeFeedService) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestListPostsSendsFilterAndPaging(t *testing.T) {
	f, c := newFakeFeedService(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, PageResponse[Post]{
			Content:       []Post{{ID: "p1", Status: StatusHidden}},
			TotalElements: 41,
			TotalPages:    3,
			Number:        2,
			Size:          20,
		})
	})

	resp, err := c.ListPosts(context.Background(), ListPostsParams{Page: 2, Size: 20, Status: StatusHidden, Search: "spam"})
	require.NoError(t, err)
	assert.Equal(t, 41, resp.TotalElements)
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "p1", resp.Content[0].ID)

	req := f.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/admin/feed/posts", req.Path)
	assert.Equal(t, []string{"2"}, req.Query["page"])
	assert.Equal(t, []string{"20"}, req.Query["size"])
	assert.Equal(t, []string{"HIDDEN"}, req.Query["status"])
	assert.Equal(t, []string{"spam"}, req.Query["search"])
	assert.Equal(t, "Bearer service-token", req.Auth)
}

func TestListPostsOmitsEmptyFilter(t *testing.T) {
	f, c := newFakeFeedService(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, PageResponse[Post]{})
	})

	_, err := c.ListPosts(context.Background(), ListPostsParams{Page: 0, Size: 10})
	require.NoError(t, err)

	req := f.last()
	assert.NotContains(t, req.Query, "status")
	assert.NotContains(t, req.Query, "search")
}

func TestOperatorTokenOverridesServiceToken(t *testing.T) {
	f, c := newFakeFeedService(t, nil)

	ctx := httpclient.WithBearerToken(context.Background(), "operator-token")
	require.NoError(t, c.Restore(ctx, "p1"))
	assert.Equal(t, "Bearer operator-token", f.last().Auth)
}

func TestModerationEndpoints(t *testing.T) {
	hours := 48
	testCases := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
		wantBody   string
		wantQuery  map[string][]string
	}{
		{
			name:       "hide",
			call:       func(c *Client) error { return c.Hide(context.Background(), "p1", "spam") },
			wantMethod: http.MethodPost,
			wantPath:   "/api/admin/feed/posts/p1/hide",
			wantBody:   `{"reason":"spam"}`,
		},
		{
			name:       "restore",
			call:       func(c *Client) error { return c.Restore(context.Background(), "p1") },
			wantMethod: http.MethodPost,
			wantPath:   "/api/admin/feed/posts/p1/restore",
		},
		{
			name:       "delete carries reason in query",
			call:       func(c *Client) error { return c.Delete(context.Background(), "p1", "abuse") },
			wantMethod: http.MethodDelete,
			wantPath:   "/api/admin/feed/posts/p1",
			wantQuery:  map[string][]string{"reason": {"abuse"}},
		},
		{
			name:       "feature with duration",
			call:       func(c *Client) error { return c.Feature(context.Background(), "p1", &hours) },
			wantMethod: http.MethodPost,
			wantPath:   "/api/admin/feed/posts/p1/feature",
			wantBody:   `{"durationHours":48}`,
		},
		{
			name:       "feature with server default",
			call:       func(c *Client) error { return c.Feature(context.Background(), "p1", nil) },
			wantMethod: http.MethodPost,
			wantPath:   "/api/admin/feed/posts/p1/feature",
			wantBody:   `{}`,
		},
		{
			name:       "unfeature",
			call:       func(c *Client) error { return c.Unfeature(context.Background(), "p1") },
			wantMethod: http.MethodPost,
			wantPath:   "/api/admin/feed/posts/p1/unfeature",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, c := newFakeFeedService(t, nil)
			require.NoError(t, tc.call(c))

			req := f.last()
			assert.Equal(t, tc.wantMethod, req.Method)
			assert.Equal(t, tc.wantPath, req.Path)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, req.Body)
			} else {
				assert.Empty(t, req.Body)
			}
			for k, v := range tc.wantQuery {
				assert.Equal(t, v, req.Query[k])
			}
		})
	}
}

func TestGetPostNotFound(t *testing.T) {
	_, c := newFakeFeedService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetPost(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, httpclient.IsNotFound(err))
}

func TestPostIDMustStayInsidePostsPath(t *testing.T) {
	f, c := newFakeFeedService(t, nil)
	ctx := context.Background()

	ids := []string{"", ".", "..", "../scores/recalculate", "../../../health", "a/b", `a\b`, "p1?x=1", "p1#frag", "p%2F1", "p\n1"}
	calls := map[string]func(id string) error{
		"GetPost":      func(id string) error { _, err := c.GetPost(ctx, id); return err },
		"ListLikes":    func(id string) error { _, err := c.ListLikes(ctx, id, 0, 10); return err },
		"ListComments": func(id string) error { _, err := c.ListComments(ctx, id, 0, 10); return err },
		"ListShares":   func(id string) error { _, err := c.ListShares(ctx, id, 0, 10); return err },
		"Hide":         func(id string) error { return c.Hide(ctx, id, "") },
		"Restore":      func(id string) error { return c.Restore(ctx, id) },
		"Delete":       func(id string) error { return c.Delete(ctx, id, "") },
		"Feature":      func(id string) error { return c.Feature(ctx, id, nil) },
		"Unfeature":    func(id string) error { return c.Unfeature(ctx, id) },
	}

	for name, call := range calls {
		for _, id := range ids {
			err := call(id)
			assert.ErrorIs(t, err, ErrInvalidPostID, "%s(%q)", name, id)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Empty(t, f.requests, "rejected ids never reach the feed service")
}

func TestOpaquePostIDsAreAccepted(t *testing.T) {
	f, c := newFakeFeedService(t, nil)

	for _, id := range []string{"6650f1c2e4b0a1b2c3d4e5f6", "post-42", "a.b", "..x"} {
		require.NoError(t, c.Restore(context.Background(), id))
		assert.Equal(t, "/api/admin/feed/posts/"+id+"/restore", f.last().Path)
	}
}

func TestRecalculateScoresAcceptsEmptyBody(t *testing.T) {
	f, c := newFakeFeedService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	resp, err := c.RecalculateScores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "score recalculation started", resp.Message)
	assert.Equal(t, "/api/admin/feed/scores/recalculate", f.last().Path)
}

func TestFetchersAdaptPageResponse(t *testing.T) {
	f, c := newFakeFeedService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/feed/posts/p1/likes":
			writeJSON(w, PageResponse[EngagedUser]{
				Content:       []EngagedUser{{UserID: "u1"}, {UserID: "u2"}},
				TotalElements: 25,
				Number:        1,
			})
		case "/api/admin/feed/posts/p1/comments":
			writeJSON(w, PageResponse[CommentWithReplies]{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	page, err := c.LikesFetcher().Fetch(context.Background(), 1, 10, "p1")
	require.NoError(t, err)
	assert.Equal(t, 25, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages, "derived when the server omits it")
	assert.Equal(t, 1, page.PageNumber)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, []string{"1"}, f.last().Query["page"])
	assert.Equal(t, []string{"10"}, f.last().Query["size"])

	comments, err := c.CommentsFetcher().Fetch(context.Background(), 0, 10, "p1")
	require.NoError(t, err)
	assert.NotNil(t, comments.Content)
	assert.Empty(t, comments.Content)

	_, err = c.SharesFetcher().Fetch(context.Background(), 0, 10, "p1")
	assert.True(t, httpclient.IsNotFound(err))
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		in     string
		want   PostStatus
		wantOK bool
	}{
		{in: "", want: "", wantOK: true},
		{in: "all", want: "", wantOK: true},
		{in: "hidden", want: StatusHidden, wantOK: true},
		{in: " ACTIVE ", want: StatusActive, wantOK: true},
		{in: "Deleted", want: StatusDeleted, wantOK: true},
		{in: "archived", want: "", wantOK: false},
	}
	for _, tc := range testCases {
		got, ok := ParseStatus(tc.in)
		assert.Equal(t, tc.wantOK, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "hello world", Preview("<p>hello   <b>world</b></p><script>alert(1)</script>", 0))
	assert.Equal(t, "plain text", Preview("plain\n text", 0))
	assert.Equal(t, "abcde…", Preview("abcdefghij", 5))
	assert.Equal(t, "한국어…", Preview("한국어 본문입니다", 3))
}
