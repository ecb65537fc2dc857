package services

import (
	"feed-admin/cmd/api/clients/feedclient"
	"feed-admin/cmd/api/dto"
	"feed-admin/cmd/internal/moderation"
	"feed-admin/paging"
)

func toPostRow(p feedclient.Post, executing bool) dto.PostRowDTO {
	return dto.PostRowDTO{
		ID:            p.ID,
		AuthorID:      p.AuthorID,
		AuthorName:    p.AuthorName,
		Preview:       feedclient.Preview(p.Content, feedclient.DefaultPreviewLength),
		MediaCount:    len(p.MediaURLs),
		Status:        string(p.Status),
		IsFeatured:    p.IsFeatured,
		FeaturedUntil: p.FeaturedUntil,
		LikeCount:     p.LikeCount,
		CommentCount:  p.CommentCount,
		ShareCount:    p.ShareCount,
		ViewCount:     p.ViewCount,
		Score:         p.Score,
		CreatedAt:     p.CreatedAt,
		Executing:     executing,
	}
}

func toPostDetail(p feedclient.Post, executing bool) *dto.PostDetailDTO {
	media := p.MediaURLs
	if media == nil {
		media = []string{}
	}
	return &dto.PostDetailDTO{
		PostRowDTO:    toPostRow(p, executing),
		Content:       p.Content,
		MediaURLs:     media,
		HiddenReason:  p.HiddenReason,
		DeletedReason: p.DeletedReason,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toEngagedUser(u feedclient.EngagedUser) dto.EngagedUserDTO {
	return dto.EngagedUserDTO{
		UserID:      u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		EngagedAt:   u.EngagedAt,
	}
}

func toComment(c feedclient.Comment) dto.CommentDTO {
	return dto.CommentDTO{
		ID:        c.ID,
		UserID:    c.UserID,
		Username:  c.Username,
		Content:   c.Content,
		LikeCount: c.LikeCount,
		CreatedAt: c.CreatedAt,
	}
}

func toCommentWithReplies(c feedclient.CommentWithReplies) dto.CommentDTO {
	out := toComment(c.Comment)
	for _, r := range c.Replies {
		out.Replies = append(out.Replies, toComment(r))
	}
	return out
}

func toStats(s feedclient.Stats) *dto.StatsDTO {
	return &dto.StatsDTO{
		TotalPosts:    s.TotalPosts,
		ActivePosts:   s.ActivePosts,
		HiddenPosts:   s.HiddenPosts,
		DeletedPosts:  s.DeletedPosts,
		FeaturedPosts: s.FeaturedPosts,
		TodayPosts:    s.TodayPosts,
	}
}

func toPostListState(s paging.ListState[feedclient.Post], isExecuting func(string) bool) dto.PostListStateDTO {
	return dto.ListStateFrom(s, func(p feedclient.Post) dto.PostRowDTO {
		return toPostRow(p, isExecuting(p.ID))
	})
}

func toActionResult(ev moderation.Event) dto.ActionResultDTO {
	out := dto.ActionResultDTO{
		EventID:    ev.ID,
		PostID:     ev.PostID,
		Kind:       string(ev.Action.Kind),
		Succeeded:  ev.Succeeded(),
		FinishedAt: ev.At,
	}
	if ev.Err != nil {
		out.Error = ev.Err.Error()
	}
	return out
}

func toActionStatus(st moderation.Status) dto.ActionStatusDTO {
	out := dto.ActionStatusDTO{
		PostID:    st.PostID,
		State:     string(st.State),
		Executing: string(st.Executing),
	}
	if st.Last != nil {
		last := toActionResult(*st.Last)
		out.Last = &last
	}
	return out
}
