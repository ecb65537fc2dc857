package dto

import "time"

// PostRowDTO is one row of the moderation post table.
type PostRowDTO struct {
	ID            string     `json:"id"`
	AuthorID      string     `json:"author_id"`
	AuthorName    string     `json:"author_name"`
	Preview       string     `json:"preview"`
	MediaCount    int        `json:"media_count"`
	Status        string     `json:"status" example:"ACTIVE"`
	IsFeatured    bool       `json:"is_featured"`
	FeaturedUntil *time.Time `json:"featured_until,omitempty"`
	LikeCount     int64      `json:"like_count"`
	CommentCount  int64      `json:"comment_count"`
	ShareCount    int64      `json:"share_count"`
	ViewCount     int64      `json:"view_count"`
	Score         float64    `json:"score"`
	CreatedAt     time.Time  `json:"created_at"`
	// Executing is true while a moderation action for this post is in flight.
	Executing bool `json:"executing"`
}

// PostDetailDTO is the selected post in the detail panel.
type PostDetailDTO struct {
	PostRowDTO
	Content       string    `json:"content"`
	MediaURLs     []string  `json:"media_urls"`
	HiddenReason  string    `json:"hidden_reason,omitempty"`
	DeletedReason string    `json:"deleted_reason,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PostFilterDTO struct {
	Status string `json:"status" example:"HIDDEN"`
	Query  string `json:"query" example:"spam"`
}

type PostListStateDTO = ListStateDTO[PostRowDTO]

// PostsViewDTO is the post table of a view: active filter plus the current page.
type PostsViewDTO struct {
	Filter PostFilterDTO    `json:"filter"`
	Page   PostListStateDTO `json:"page"`
}

type EngagedUserDTO struct {
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	EngagedAt   time.Time `json:"engaged_at"`
}

type CommentDTO struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Username  string       `json:"username"`
	Content   string       `json:"content"`
	LikeCount int64        `json:"like_count"`
	CreatedAt time.Time    `json:"created_at"`
	Replies   []CommentDTO `json:"replies,omitempty"`
}

type EngagedUserListStateDTO = ListStateDTO[EngagedUserDTO]
type CommentListStateDTO = ListStateDTO[CommentDTO]

// DetailDTO is the detail panel of a view. Tabs that were never activated for
// the selected post are returned empty.
type DetailDTO struct {
	Post      *PostDetailDTO          `json:"post"`
	ActiveTab string                  `json:"active_tab,omitempty" example:"comments"`
	Likes     EngagedUserListStateDTO `json:"likes"`
	Comments  CommentListStateDTO     `json:"comments"`
	Shares    EngagedUserListStateDTO `json:"shares"`
	Action    ActionStatusDTO         `json:"action"`
}

type StatsDTO struct {
	TotalPosts    int64 `json:"total_posts"`
	ActivePosts   int64 `json:"active_posts"`
	HiddenPosts   int64 `json:"hidden_posts"`
	DeletedPosts  int64 `json:"deleted_posts"`
	FeaturedPosts int64 `json:"featured_posts"`
	TodayPosts    int64 `json:"today_posts"`
}

// OverviewDTO bundles stats and the first post page. Each part fails independently.
type OverviewDTO struct {
	Stats      *StatsDTO         `json:"stats"`
	StatsError string            `json:"stats_error,omitempty"`
	Posts      *PostListStateDTO `json:"posts"`
	PostsError string            `json:"posts_error,omitempty"`
}
