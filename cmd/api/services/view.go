package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"feed-admin/cmd/api/clients/feedclient"
	"feed-admin/cmd/api/httpclient"
	"feed-admin/cmd/api/metrics"
	"feed-admin/cmd/internal/logger"
	"feed-admin/notify"
	"feed-admin/paging"
)

type Tab string

const (
	TabLikes    Tab = "likes"
	TabComments Tab = "comments"
	TabShares   Tab = "shares"
)

func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case TabLikes, TabComments, TabShares:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// View is the state one operator's dashboard owns: the post table, the
// selected post with its engagement tabs, and pending notifications.
// Nothing in a View outlives it.
type View struct {
	ID        string
	CreatedAt time.Time

	token    string
	lastSeen atomic.Int64

	posts         *paging.FilterableList[feedclient.Post, feedclient.PostFilter]
	notifications *notify.Queue

	mu         sync.Mutex
	detail     *detail
	detailSeq  int
	newDetail  func(seq int, post feedclient.Post) *detail
	refreshing sync.Mutex
}

// detail is created when a post is selected and dropped when the selection
// changes, so each tab fetches at most once per selection unless refreshed.
type detail struct {
	seq    int
	postID string

	mu        sync.Mutex
	post      feedclient.Post
	activeTab Tab

	likes    *paging.IncrementalList[feedclient.EngagedUser, string]
	comments *paging.IncrementalList[feedclient.CommentWithReplies, string]
	shares   *paging.IncrementalList[feedclient.EngagedUser, string]
}

func (d *detail) snapshot() (feedclient.Post, Tab) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.post, d.activeTab
}

func (v *View) touch(now time.Time) {
	v.lastSeen.Store(now.UnixNano())
}

func (v *View) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, v.lastSeen.Load()))
}

// operatorContext uses the view owner's token for work triggered by another
// operator, such as refreshes after their moderation actions.
func (v *View) operatorContext(ctx context.Context) context.Context {
	if v.token == "" {
		return ctx
	}
	return httpclient.WithBearerToken(ctx, v.token)
}

func (v *View) currentDetail() *detail {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.detail
}

// -------------------- notifications --------------------

func (v *View) notify(n notify.Notification) {
	pushed := v.notifications.Push(n)
	metrics.RecordNotification(string(n.Level), !pushed)
}

// absorb turns a list fetch failure into a notification. Fetch failures stay
// on the list's state; only invalid requests are returned to the caller.
// The notification identity uses the generation of the failed request itself.
func (v *View) absorb(scope, list string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, paging.ErrStaleResponse):
		return nil
	case errors.Is(err, paging.ErrInvalidPageSize):
		return err
	}
	gen, _ := paging.GenerationOf(err)
	logger.WarnWithFields("list fetch failed", logger.Fields{
		"view_id":    v.ID,
		"list":       list,
		"generation": gen,
		"error":      err.Error(),
	})
	v.notify(notify.Failure(fmt.Sprintf("%s/%s#%d", scope, list, gen), list, err))
	return nil
}

func (v *View) absorbPosts(err error) error {
	return v.absorb("posts", v.posts.Name(), err)
}

// -------------------- posts --------------------

func (v *View) loadPosts(ctx context.Context, f feedclient.PostFilter) error {
	return v.absorbPosts(v.posts.Load(ctx, f))
}

func (v *View) setFilter(ctx context.Context, f feedclient.PostFilter) error {
	return v.absorbPosts(v.posts.SetFilter(ctx, f))
}

func (v *View) goToPage(ctx context.Context, n int) error {
	return v.absorbPosts(v.posts.GoToPage(ctx, n))
}

func (v *View) setPageSize(ctx context.Context, n int) error {
	return v.absorbPosts(v.posts.SetPageSize(ctx, n))
}

func (v *View) navigate(ctx context.Context, direction string) error {
	var err error
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "first":
		err = v.posts.FirstPage(ctx)
	case "prev", "previous":
		err = v.posts.PrevPage(ctx)
	case "next":
		err = v.posts.NextPage(ctx)
	case "last":
		err = v.posts.LastPage(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNavigation, direction)
	}
	return v.absorbPosts(err)
}

func (v *View) refreshPosts(ctx context.Context) error {
	return v.absorbPosts(v.posts.Refresh(ctx))
}

// -------------------- detail --------------------

func (v *View) selectPost(ctx context.Context, api FeedAPI, postID string) (*detail, error) {
	post, err := api.GetPost(ctx, postID)
	if err != nil {
		if !httpclient.IsNotFound(err) && !errors.Is(err, feedclient.ErrInvalidPostID) {
			v.notify(notify.Failure("", "post", err))
		}
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.detailSeq++
	v.detail = v.newDetail(v.detailSeq, post)
	return v.detail, nil
}

func (v *View) clearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.detail = nil
}

func (v *View) activateTab(ctx context.Context, tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	d := v.currentDetail()
	if d == nil {
		return ErrNoPostSelected
	}
	d.mu.Lock()
	d.activeTab = tab
	d.mu.Unlock()

	var err error
	switch tab {
	case TabLikes:
		_, err = d.likes.Activate(ctx, d.postID)
	case TabComments:
		_, err = d.comments.Activate(ctx, d.postID)
	case TabShares:
		_, err = d.shares.Activate(ctx, d.postID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	return v.absorb(detailScope(d), string(tab), err)
}

func (v *View) loadMore(ctx context.Context, tab Tab) error {
	d := v.currentDetail()
	if d == nil {
		return ErrNoPostSelected
	}

	var err error
	switch tab {
	case TabLikes:
		err = d.likes.LoadMore(ctx)
	case TabComments:
		err = d.comments.LoadMore(ctx)
	case TabShares:
		err = d.shares.LoadMore(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	return v.absorb(detailScope(d), string(tab), err)
}

func detailScope(d *detail) string {
	return fmt.Sprintf("detail-%d", d.seq)
}

// onPostUpdated reloads everything in the view that may show postID: the
// current post page, and the selected post with its activated tabs.
func (v *View) onPostUpdated(ctx context.Context, api FeedAPI, postID string) {
	v.refreshing.Lock()
	defer v.refreshing.Unlock()

	ctx = v.operatorContext(ctx)
	_ = v.refreshPosts(ctx)

	d := v.currentDetail()
	if d == nil || d.postID != postID {
		return
	}

	post, err := api.GetPost(ctx, postID)
	if err != nil {
		v.notify(notify.Failure("", "post", err))
	} else {
		d.mu.Lock()
		d.post = post
		d.mu.Unlock()
	}

	scope := detailScope(d)
	if key, ok := d.likes.Active(); ok && key == postID {
		err := d.likes.Reset(ctx, postID)
		_ = v.absorb(scope, string(TabLikes), err)
	}
	if key, ok := d.comments.Active(); ok && key == postID {
		err := d.comments.Reset(ctx, postID)
		_ = v.absorb(scope, string(TabComments), err)
	}
	if key, ok := d.shares.Active(); ok && key == postID {
		err := d.shares.Reset(ctx, postID)
		_ = v.absorb(scope, string(TabShares), err)
	}
}
