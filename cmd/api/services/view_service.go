package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"feed-admin/cmd/api/clients/feedclient"
	"feed-admin/cmd/api/dto"
	"feed-admin/cmd/api/metrics"
	"feed-admin/cmd/internal/logger"
	"feed-admin/cmd/internal/moderation"
	"feed-admin/notify"
	"feed-admin/paging"
)

// FeedAPI is the part of the feed service client the dashboard reads through.
type FeedAPI interface {
	GetPost(ctx context.Context, id string) (feedclient.Post, error)
	GetStats(ctx context.Context) (feedclient.Stats, error)
	RecalculateScores(ctx context.Context) (feedclient.RecalculateResponse, error)
	Health(ctx context.Context) error
	PostsFetcher() paging.Fetcher[feedclient.Post, feedclient.PostFilter]
	LikesFetcher() paging.Fetcher[feedclient.EngagedUser, string]
	CommentsFetcher() paging.Fetcher[feedclient.CommentWithReplies, string]
	SharesFetcher() paging.Fetcher[feedclient.EngagedUser, string]
}

type ViewConfig struct {
	PostsPageSize      int
	EngagementPageSize int
	DedupeEngagement   bool
	IdleTimeout        time.Duration
	SweepInterval      time.Duration
	DedupeCapacity     int
	MaxPending         int
	// RefreshConcurrency bounds how many views are refreshed at once after an action.
	RefreshConcurrency int
}

// ViewService owns every mounted view and routes moderation outcomes to them.
type ViewService struct {
	api        FeedAPI
	dispatcher *moderation.Dispatcher
	cfg        ViewConfig
	observer   paging.Observer

	mu    sync.RWMutex
	views map[string]*View

	now         func() time.Time
	unsubscribe func()
}

func NewViewService(api FeedAPI, dispatcher *moderation.Dispatcher, cfg ViewConfig, observer paging.Observer) *ViewService {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 30 * time.Minute
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.RefreshConcurrency <= 0 {
		cfg.RefreshConcurrency = 8
	}
	s := &ViewService{
		api:        api,
		dispatcher: dispatcher,
		cfg:        cfg,
		observer:   observer,
		views:      make(map[string]*View),
		now:        time.Now,
	}
	s.unsubscribe = dispatcher.Subscribe(s.onActionCompleted)
	return s
}

// Close detaches the service from the dispatcher and drops every view.
func (s *ViewService) Close() {
	s.unsubscribe()
	s.mu.Lock()
	s.views = make(map[string]*View)
	s.mu.Unlock()
	metrics.SetActiveViews(0)
}

func (s *ViewService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views)
}

// -------------------- lifecycle --------------------

// CreateView mounts a view for the operator identified by token and loads the
// first post page. A failed load still mounts the view; the error is on the
// list state and in the notifications.
func (s *ViewService) CreateView(ctx context.Context, token string) (dto.ViewDTO, error) {
	v := &View{
		ID:            uuid.NewString(),
		CreatedAt:     s.now(),
		token:         token,
		notifications: notify.NewQueue(s.cfg.DedupeCapacity, s.cfg.MaxPending),
		posts: paging.NewFilterableList(s.api.PostsFetcher(), s.cfg.PostsPageSize,
			paging.WithName[feedclient.Post]("posts"),
			paging.WithObserver[feedclient.Post](s.observer),
		),
	}
	v.newDetail = s.detailFactory()
	v.touch(s.now())

	s.mu.Lock()
	s.views[v.ID] = v
	n := len(s.views)
	s.mu.Unlock()
	metrics.SetActiveViews(n)

	logger.InfoWithFields("view mounted", logger.Fields{"view_id": v.ID})

	if err := v.loadPosts(ctx, feedclient.PostFilter{}); err != nil {
		return dto.ViewDTO{}, err
	}
	return s.viewDTO(v), nil
}

func (s *ViewService) detailFactory() func(seq int, post feedclient.Post) *detail {
	userOpts := func(name string) []paging.Option[feedclient.EngagedUser] {
		opts := []paging.Option[feedclient.EngagedUser]{
			paging.WithName[feedclient.EngagedUser](name),
			paging.WithObserver[feedclient.EngagedUser](s.observer),
		}
		if s.cfg.DedupeEngagement {
			opts = append(opts, paging.WithIdentity(func(u feedclient.EngagedUser) string { return u.UserID }))
		}
		return opts
	}
	commentOpts := []paging.Option[feedclient.CommentWithReplies]{
		paging.WithName[feedclient.CommentWithReplies](string(TabComments)),
		paging.WithObserver[feedclient.CommentWithReplies](s.observer),
	}
	if s.cfg.DedupeEngagement {
		commentOpts = append(commentOpts, paging.WithIdentity(func(c feedclient.CommentWithReplies) string { return c.ID }))
	}

	return func(seq int, post feedclient.Post) *detail {
		return &detail{
			seq:      seq,
			postID:   post.ID,
			post:     post,
			likes:    paging.NewIncrementalList(s.api.LikesFetcher(), s.cfg.EngagementPageSize, userOpts(string(TabLikes))...),
			comments: paging.NewIncrementalList(s.api.CommentsFetcher(), s.cfg.EngagementPageSize, commentOpts...),
			shares:   paging.NewIncrementalList(s.api.SharesFetcher(), s.cfg.EngagementPageSize, userOpts(string(TabShares))...),
		}
	}
}

func (s *ViewService) CloseView(viewID string) error {
	s.mu.Lock()
	_, ok := s.views[viewID]
	delete(s.views, viewID)
	n := len(s.views)
	s.mu.Unlock()
	if !ok {
		return ErrViewNotFound
	}
	metrics.SetActiveViews(n)
	logger.InfoWithFields("view closed", logger.Fields{"view_id": viewID})
	return nil
}

func (s *ViewService) view(viewID string) (*View, error) {
	s.mu.RLock()
	v, ok := s.views[viewID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrViewNotFound
	}
	v.touch(s.now())
	return v, nil
}

func (s *ViewService) snapshot() []*View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*View, 0, len(s.views))
	for _, v := range s.views {
		out = append(out, v)
	}
	return out
}

// Sweep closes views idle for longer than the idle timeout and returns how many were closed.
func (s *ViewService) Sweep(now time.Time) int {
	s.mu.Lock()
	closed := 0
	for id, v := range s.views {
		if v.idleSince(now) > s.cfg.IdleTimeout {
			delete(s.views, id)
			closed++
			logger.InfoWithFields("idle view swept", logger.Fields{"view_id": id})
		}
	}
	n := len(s.views)
	s.mu.Unlock()

	if closed > 0 {
		metrics.SetActiveViews(n)
	}
	return closed
}

// Run sweeps idle views until ctx is done.
func (s *ViewService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}

// -------------------- posts --------------------

func (s *ViewService) View(viewID string) (dto.ViewDTO, error) {
	v, err := s.view(viewID)
	if err != nil {
		return dto.ViewDTO{}, err
	}
	return s.viewDTO(v), nil
}

func (s *ViewService) Posts(viewID string) (dto.PostsViewDTO, error) {
	v, err := s.view(viewID)
	if err != nil {
		return dto.PostsViewDTO{}, err
	}
	return s.postsDTO(v), nil
}

func (s *ViewService) SetFilter(ctx context.Context, viewID string, in dto.FilterRequestDTO) (dto.PostsViewDTO, error) {
	status, ok := feedclient.ParseStatus(in.Status)
	if !ok {
		return dto.PostsViewDTO{}, ErrInvalidFilter
	}
	return s.onPosts(viewID, func(v *View) error {
		return v.setFilter(ctx, feedclient.PostFilter{Status: status, Query: in.Query})
	})
}

func (s *ViewService) GoToPage(ctx context.Context, viewID string, page int) (dto.PostsViewDTO, error) {
	return s.onPosts(viewID, func(v *View) error { return v.goToPage(ctx, page) })
}

func (s *ViewService) SetPageSize(ctx context.Context, viewID string, size int) (dto.PostsViewDTO, error) {
	return s.onPosts(viewID, func(v *View) error { return v.setPageSize(ctx, size) })
}

// Navigate moves the post table to the first, prev, next or last page.
func (s *ViewService) Navigate(ctx context.Context, viewID, direction string) (dto.PostsViewDTO, error) {
	return s.onPosts(viewID, func(v *View) error { return v.navigate(ctx, direction) })
}

func (s *ViewService) RefreshPosts(ctx context.Context, viewID string) (dto.PostsViewDTO, error) {
	return s.onPosts(viewID, func(v *View) error { return v.refreshPosts(ctx) })
}

func (s *ViewService) onPosts(viewID string, fn func(v *View) error) (dto.PostsViewDTO, error) {
	v, err := s.view(viewID)
	if err != nil {
		return dto.PostsViewDTO{}, err
	}
	if err := fn(v); err != nil {
		return dto.PostsViewDTO{}, err
	}
	return s.postsDTO(v), nil
}

// -------------------- detail --------------------

func (s *ViewService) SelectPost(ctx context.Context, viewID, postID string) (dto.DetailDTO, error) {
	v, err := s.view(viewID)
	if err != nil {
		return dto.DetailDTO{}, err
	}
	if _, err := v.selectPost(ctx, s.api, postID); err != nil {
		return dto.DetailDTO{}, err
	}
	return s.detailDTO(v), nil
}

func (s *ViewService) ClearSelection(viewID string) error {
	v, err := s.view(viewID)
	if err != nil {
		return err
	}
	v.clearSelection()
	return nil
}

func (s *ViewService) Detail(viewID string) (dto.DetailDTO, error) {
	v, err := s.view(viewID)
	if err != nil {
		return dto.DetailDTO{}, err
	}
	return s.detailDTO(v), nil
}

// ActivateTab lazily loads a tab of the selected post. Activating a tab that
// was already loaded for this selection issues no request.
func (s *ViewService) ActivateTab(ctx context.Context, viewID, tab string) (dto.DetailDTO, error) {
	t, err := ParseTab(tab)
	if err != nil {
		return dto.DetailDTO{}, err
	}
	v, err := s.view(viewID)
	if err != nil {
		return dto.DetailDTO{}, err
	}
	if err := v.activateTab(ctx, t); err != nil {
		return dto.DetailDTO{}, err
	}
	return s.detailDTO(v), nil
}

func (s *ViewService) LoadMore(ctx context.Context, viewID, tab string) (dto.DetailDTO, error) {
	t, err := ParseTab(tab)
	if err != nil {
		return dto.DetailDTO{}, err
	}
	v, err := s.view(viewID)
	if err != nil {
		return dto.DetailDTO{}, err
	}
	if err := v.loadMore(ctx, t); err != nil {
		return dto.DetailDTO{}, err
	}
	return s.detailDTO(v), nil
}

// -------------------- actions --------------------

var actionMessages = map[moderation.Kind]string{
	moderation.KindHide:      "Post hidden",
	moderation.KindRestore:   "Post restored",
	moderation.KindDelete:    "Post deleted",
	moderation.KindFeature:   "Post featured",
	moderation.KindUnfeature: "Post unfeatured",
}

// Dispatch runs one moderation action on behalf of the view. Every mounted
// view has been refreshed by the time a successful call returns; a failed call
// leaves all lists untouched.
func (s *ViewService) Dispatch(ctx context.Context, viewID string, in dto.ActionRequestDTO) (dto.ActionResultDTO, error) {
	v, err := s.view(viewID)
	if err != nil {
		return dto.ActionResultDTO{}, err
	}
	kind, ok := moderation.ParseKind(in.Kind)
	if !ok {
		return dto.ActionResultDTO{}, moderation.Action{Kind: moderation.Kind(in.Kind)}.Validate()
	}
	action := moderation.Action{Kind: kind, Reason: in.Reason, DurationHours: in.DurationHours}

	ev, err := s.dispatcher.Dispatch(ctx, in.PostID, action)
	switch {
	case err == nil:
		v.notify(notify.Success("action#"+ev.ID, "action", actionMessages[kind]))
		return toActionResult(ev), nil
	case moderation.IsActionError(err):
		v.notify(notify.Failure("action#"+ev.ID, "action", err))
		return toActionResult(ev), err
	default:
		return dto.ActionResultDTO{}, err
	}
}

func (s *ViewService) ActionStatus(viewID, postID string) (dto.ActionStatusDTO, error) {
	if _, err := s.view(viewID); err != nil {
		return dto.ActionStatusDTO{}, err
	}
	return toActionStatus(s.dispatcher.StateOf(postID)), nil
}

// onActionCompleted forwards a successful action to every mounted view.
func (s *ViewService) onActionCompleted(ctx context.Context, ev moderation.Event) {
	if !ev.Succeeded() {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.RefreshConcurrency)
	for _, v := range s.snapshot() {
		g.Go(func() error {
			v.onPostUpdated(gctx, s.api, ev.PostID)
			return nil
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorWithFields("view refresh failed", logger.Fields{"post_id": ev.PostID, "error": err.Error()})
	}
}

// -------------------- notifications --------------------

func (s *ViewService) Notifications(viewID string) (dto.NotificationsDTO, error) {
	v, err := s.view(viewID)
	if err != nil {
		return dto.NotificationsDTO{}, err
	}
	return dto.NotificationsDTO{Items: v.notifications.Drain()}, nil
}

// -------------------- dto --------------------

func (s *ViewService) viewDTO(v *View) dto.ViewDTO {
	return dto.ViewDTO{
		ID:        v.ID,
		CreatedAt: v.CreatedAt,
		Posts:     s.postsDTO(v),
	}
}

func (s *ViewService) postsDTO(v *View) dto.PostsViewDTO {
	f := v.posts.Key()
	return dto.PostsViewDTO{
		Filter: dto.PostFilterDTO{Status: string(f.Status), Query: f.Query},
		Page:   toPostListState(v.posts.State(), s.dispatcher.IsExecuting),
	}
}

func (s *ViewService) detailDTO(v *View) dto.DetailDTO {
	d := v.currentDetail()
	if d == nil {
		return dto.DetailDTO{
			Likes:    dto.EngagedUserListStateDTO{Items: []dto.EngagedUserDTO{}},
			Comments: dto.CommentListStateDTO{Items: []dto.CommentDTO{}},
			Shares:   dto.EngagedUserListStateDTO{Items: []dto.EngagedUserDTO{}},
		}
	}

	post, tab := d.snapshot()
	executing := s.dispatcher.IsExecuting(d.postID)
	return dto.DetailDTO{
		Post:      toPostDetail(post, executing),
		ActiveTab: string(tab),
		Likes:     dto.ListStateFrom(d.likes.State(), toEngagedUser),
		Comments:  dto.ListStateFrom(d.comments.State(), toCommentWithReplies),
		Shares:    dto.ListStateFrom(d.shares.State(), toEngagedUser),
		Action:    toActionStatus(s.dispatcher.StateOf(d.postID)),
	}
}
