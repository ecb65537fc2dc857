package feedclient

import (
	"strings"
	"time"
)

// PostStatus is the moderation status of a post on the feed service.
type PostStatus string

const (
	StatusActive  PostStatus = "ACTIVE"
	StatusHidden  PostStatus = "HIDDEN"
	StatusDeleted PostStatus = "DELETED"
)

// ParseStatus accepts the three statuses case-insensitively; "" and "ALL" mean no filter.
func ParseStatus(s string) (PostStatus, bool) {
	switch PostStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case "", "ALL":
		return "", true
	case StatusActive:
		return StatusActive, true
	case StatusHidden:
		return StatusHidden, true
	case StatusDeleted:
		return StatusDeleted, true
	}
	return "", false
}

type Post struct {
	ID            string     `json:"id"`
	AuthorID      string     `json:"authorId"`
	AuthorName    string     `json:"authorName"`
	Content       string     `json:"content"`
	MediaURLs     []string   `json:"mediaUrls"`
	Status        PostStatus `json:"status"`
	IsFeatured    bool       `json:"isFeatured"`
	FeaturedUntil *time.Time `json:"featuredUntil"`
	LikeCount     int64      `json:"likeCount"`
	CommentCount  int64      `json:"commentCount"`
	ShareCount    int64      `json:"shareCount"`
	ViewCount     int64      `json:"viewCount"`
	Score         float64    `json:"score"`
	HiddenReason  string     `json:"hiddenReason,omitempty"`
	DeletedReason string     `json:"deletedReason,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// EngagedUser is a user who liked or shared a post.
type EngagedUser struct {
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl"`
	EngagedAt   time.Time `json:"engagedAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	LikeCount int64     `json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentWithReplies is a top-level comment; replies are embedded and not paginated.
type CommentWithReplies struct {
	Comment
	Replies []Comment `json:"replies"`
}

type Stats struct {
	TotalPosts    int64 `json:"totalPosts"`
	ActivePosts   int64 `json:"activePosts"`
	HiddenPosts   int64 `json:"hiddenPosts"`
	DeletedPosts  int64 `json:"deletedPosts"`
	FeaturedPosts int64 `json:"featuredPosts"`
	TodayPosts    int64 `json:"todayPosts"`
}

// PageResponse is the wire shape of every paged endpoint.
type PageResponse[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

type ListPostsParams struct {
	Page   int
	Size   int
	Status PostStatus
	Search string
}

type RecalculateResponse struct {
	Message string `json:"message"`
}
