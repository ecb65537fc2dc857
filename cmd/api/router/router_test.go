package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feed-admin/cmd/api/clients/feedclient"
	"feed-admin/cmd/api/dto"
	"feed-admin/cmd/api/httpclient"
	"feed-admin/cmd/api/metrics"
	"feed-admin/cmd/api/services"
	"feed-admin/cmd/internal/moderation"
)

// feedServer is a minimal feed service: two posts, hide flips the status.
type feedServer struct {
	mu     sync.Mutex
	status map[string]string
	tokens []string
}

func (f *feedServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, r.Header.Get("Authorization"))

	post := func(id string) map[string]any {
		return map[string]any{"id": id, "content": "<p>hello " + id + "</p>", "status": f.status[id]}
	}
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/admin/feed/posts":
		var content []map[string]any
		for _, id := range []string{"p1", "p2"} {
			if s := r.URL.Query().Get("status"); s != "" && s != f.status[id] {
				continue
			}
			content = append(content, post(id))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"content": content, "totalElements": len(content), "totalPages": 1, "number": 0})
	case r.Method == http.MethodGet && r.URL.Path == "/api/admin/feed/posts/p1":
		_ = json.NewEncoder(w).Encode(post("p1"))
	case r.Method == http.MethodPost && r.URL.Path == "/api/admin/feed/posts/p1/hide":
		f.status["p1"] = "HIDDEN"
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet && r.URL.Path == "/api/admin/feed/stats":
		_ = json.NewEncoder(w).Encode(map[string]any{"totalPosts": 2, "activePosts": 2})
	case r.URL.Path == "/health":
		w.WriteHeader(http.StatusOK)
	default:
		http.NotFound(w, r)
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *feedServer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs := &feedServer{status: map[string]string{"p1": "ACTIVE", "p2": "ACTIVE"}}
	srv := httptest.NewServer(fs)
	t.Cleanup(srv.Close)

	client := feedclient.NewWithBase(httpclient.NewBaseClient(srv.URL, httpclient.Config{Token: "service-token"}))
	dispatcher := moderation.NewDispatcher(client)
	views := services.NewViewService(client, dispatcher, services.ViewConfig{PostsPageSize: 20, EngagementPageSize: 20}, metrics.PagingObserver{})
	t.Cleanup(views.Close)

	return New(Deps{Views: views, Admin: services.NewAdminService(client, 20)}), fs
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer operator-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestViewLifecycle(t *testing.T) {
	r, fs := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/views", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	view := decode[dto.ViewDTO](t, w)
	require.NotEmpty(t, view.ID)
	assert.Len(t, view.Posts.Page.Items, 2)
	assert.Equal(t, "hello p1", view.Posts.Page.Items[0].Preview)

	base := "/api/v1/views/" + view.ID

	w = do(t, r, http.MethodPost, base+"/actions", `{"post_id":"p1","kind":"hide","reason":"spam"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, decode[dto.ActionResultDTO](t, w).Succeeded)

	w = do(t, r, http.MethodPost, base+"/posts/filter", `{"status":"HIDDEN"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	posts := decode[dto.PostsViewDTO](t, w)
	require.Len(t, posts.Page.Items, 1)
	assert.Equal(t, "p1", posts.Page.Items[0].ID)

	w = do(t, r, http.MethodGet, base+"/notifications", "")
	require.Equal(t, http.StatusOK, w.Code)
	notes := decode[dto.NotificationsDTO](t, w)
	require.NotEmpty(t, notes.Items)
	assert.Equal(t, "Post hidden", notes.Items[0].Message)

	w = do(t, r, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, tok := range fs.tokens {
		assert.Equal(t, "Bearer operator-token", tok)
	}
}

func TestErrorStatuses(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/views", "")
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/v1/views/" + decode[dto.ViewDTO](t, w).ID

	testCases := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"unknown view", http.MethodGet, "/api/v1/views/nope/posts", "", http.StatusNotFound},
		{"bad filter status", http.MethodPost, base + "/posts/filter", `{"status":"ARCHIVED"}`, http.StatusBadRequest},
		{"bad page size", http.MethodPost, base + "/posts/page-size", `{"size":-1}`, http.StatusBadRequest},
		{"bad direction", http.MethodPost, base + "/posts/navigate", `{"direction":"sideways"}`, http.StatusBadRequest},
		{"tab without selection", http.MethodPost, base + "/detail/tabs/likes/activate", "", http.StatusConflict},
		{"unknown action", http.MethodPost, base + "/actions", `{"post_id":"p1","kind":"pin"}`, http.StatusBadRequest},
		{"missing post", http.MethodPost, base + "/detail", `{"post_id":"p404"}`, http.StatusNotFound},
		{"post id outside posts path", http.MethodPost, base + "/actions", `{"post_id":"../scores/recalculate","kind":"delete"}`, http.StatusBadRequest},
		{"malformed json", http.MethodPost, base + "/actions", `{`, http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, r, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[dto.ErrorResponseDTO](t, w).Error)
		})
	}
}

func TestAdminRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode[dto.StatsDTO](t, w).TotalPosts)

	w = do(t, r, http.MethodGet, "/api/v1/overview", "")
	require.Equal(t, http.StatusOK, w.Code)
	overview := decode[dto.OverviewDTO](t, w)
	assert.Empty(t, overview.StatsError)
	require.NotNil(t, overview.Posts)
	assert.Len(t, overview.Posts.Items, 2)

	w = do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "feed_admin_http_requests_total")
}

func TestWithCORS(t *testing.T) {
	r, _ := newTestRouter(t)
	h := WithCORS(r, []string{"https://admin.example.com"})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/stats", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Same(t, http.Handler(r), WithCORS(r, nil))
}
