package dto

import (
	"time"

	"feed-admin/notify"
)

type ViewDTO struct {
	ID        string       `json:"id" example:"6f1c1d7e-3a53-4e0c-9b4e-8f0f3f7e2a10"`
	CreatedAt time.Time    `json:"created_at"`
	Posts     PostsViewDTO `json:"posts"`
}

type FilterRequestDTO struct {
	Status string `json:"status" example:"HIDDEN"`
	Query  string `json:"query" example:"spam"`
}

type PageRequestDTO struct {
	Page int `json:"page" example:"3"`
}

type PageSizeRequestDTO struct {
	Size int `json:"size" binding:"required" example:"50"`
}

type NavigateRequestDTO struct {
	Direction string `json:"direction" binding:"required" example:"next"`
}

type SelectPostRequestDTO struct {
	PostID string `json:"post_id" binding:"required"`
}

type ActionRequestDTO struct {
	PostID        string `json:"post_id" binding:"required"`
	Kind          string `json:"kind" binding:"required" example:"hide"`
	Reason        string `json:"reason,omitempty" example:"spam"`
	DurationHours *int   `json:"duration_hours,omitempty" example:"24"`
}

type ActionResultDTO struct {
	EventID    string    `json:"event_id"`
	PostID     string    `json:"post_id"`
	Kind       string    `json:"kind"`
	Succeeded  bool      `json:"succeeded"`
	Error      string    `json:"error,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

type ActionStatusDTO struct {
	PostID    string           `json:"post_id"`
	State     string           `json:"state" example:"idle"`
	Executing string           `json:"executing,omitempty"`
	Last      *ActionResultDTO `json:"last,omitempty"`
}

type NotificationsDTO struct {
	Items []notify.Notification `json:"items"`
}
