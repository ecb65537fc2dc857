package moderation

import (
	"errors"
	"fmt"
)

var (
	// ErrActionInProgress is returned when a command is dispatched for a post
	// that already has one executing.
	ErrActionInProgress = errors.New("moderation: an action is already executing for this post")

	ErrInvalidAction = errors.New("moderation: invalid action")
)

// ActionError is a moderation command the feed service rejected or never received.
type ActionError struct {
	Kind   Kind
	PostID string
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("moderation: %s post %s: %v", e.Kind, e.PostID, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// IsActionError checks if err is (or wraps) an ActionError
func IsActionError(err error) bool {
	var actErr *ActionError
	return errors.As(err, &actErr)
}
