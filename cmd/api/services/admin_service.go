package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"feed-admin/cmd/api/clients/feedclient"
	"feed-admin/cmd/api/dto"
	"feed-admin/cmd/internal/logger"
	"feed-admin/paging"
)

// AdminService covers the dashboard calls that are not tied to a view.
type AdminService struct {
	api           FeedAPI
	postsPageSize int
}

func NewAdminService(api FeedAPI, postsPageSize int) *AdminService {
	if postsPageSize <= 0 {
		postsPageSize = 20
	}
	return &AdminService{api: api, postsPageSize: postsPageSize}
}

// -------------------- Stats --------------------

func (s *AdminService) Stats(ctx context.Context) (dto.StatsDTO, error) {
	st, err := s.api.GetStats(ctx)
	if err != nil {
		return dto.StatsDTO{}, err
	}
	return *toStats(st), nil
}

// RecalculateScores only acknowledges the request; the feed service recomputes asynchronously.
func (s *AdminService) RecalculateScores(ctx context.Context) (dto.MessageResponseDTO, error) {
	resp, err := s.api.RecalculateScores(ctx)
	if err != nil {
		return dto.MessageResponseDTO{}, err
	}
	logger.InfoWithFields("score recalculation requested", logger.Fields{"message": resp.Message})
	return dto.MessageResponseDTO{Message: resp.Message}, nil
}

func (s *AdminService) Health(ctx context.Context) error {
	return s.api.Health(ctx)
}

// Overview loads stats and the first post page concurrently. The two parts
// complete in either order and fail independently.
func (s *AdminService) Overview(ctx context.Context) dto.OverviewDTO {
	var (
		out   dto.OverviewDTO
		stats feedclient.Stats
		page  paging.Page[feedclient.Post]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.api.GetStats(gctx)
		if err != nil {
			out.StatsError = err.Error()
		}
		return nil
	})
	g.Go(func() error {
		var err error
		page, err = s.api.PostsFetcher().Fetch(gctx, 0, s.postsPageSize, feedclient.PostFilter{})
		if err != nil {
			out.PostsError = err.Error()
		}
		return nil
	})
	_ = g.Wait()

	if out.StatsError == "" {
		out.Stats = toStats(stats)
	}
	if out.PostsError == "" {
		state := paging.ListState[feedclient.Post]{
			Items:      page.Content,
			Total:      page.TotalElements,
			TotalPages: page.TotalPages,
			PageIndex:  page.PageNumber,
			PageSize:   s.postsPageSize,
		}
		posts := toPostListState(state, func(string) bool { return false })
		out.Posts = &posts
	}
	return out
}
