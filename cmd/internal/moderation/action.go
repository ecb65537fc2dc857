// Package moderation sends moderation commands to the feed service and reports
// their outcome to subscribers.
package moderation

import (
	"context"
	"fmt"
	"strings"
)

type Kind string

const (
	KindHide      Kind = "hide"
	KindRestore   Kind = "restore"
	KindDelete    Kind = "delete"
	KindFeature   Kind = "feature"
	KindUnfeature Kind = "unfeature"
)

// ParseKind accepts a kind case-insensitively.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindHide, KindRestore, KindDelete, KindFeature, KindUnfeature:
		return k, true
	}
	return "", false
}

// Action is one moderation command applied to exactly one post.
type Action struct {
	Kind   Kind   `json:"kind"`
	Reason string `json:"reason,omitempty"`
	// DurationHours only applies to KindFeature. nil means the server default.
	DurationHours *int `json:"durationHours,omitempty"`
}

func Hide(reason string) Action   { return Action{Kind: KindHide, Reason: reason} }
func Restore() Action             { return Action{Kind: KindRestore} }
func Delete(reason string) Action { return Action{Kind: KindDelete, Reason: reason} }
func Unfeature() Action           { return Action{Kind: KindUnfeature} }

func Feature(durationHours *int) Action {
	return Action{Kind: KindFeature, DurationHours: durationHours}
}

// Validate checks the action shape. It does not know whether the transition is
// allowed for the post's current status; the feed service decides that.
func (a Action) Validate() error {
	if _, ok := ParseKind(string(a.Kind)); !ok {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidAction, a.Kind)
	}
	if a.DurationHours != nil {
		if a.Kind != KindFeature {
			return fmt.Errorf("%w: durationHours only applies to %s", ErrInvalidAction, KindFeature)
		}
		if *a.DurationHours <= 0 {
			return fmt.Errorf("%w: durationHours must be positive", ErrInvalidAction)
		}
	}
	return nil
}

// Executor is the part of the feed service client the dispatcher needs.
type Executor interface {
	Hide(ctx context.Context, postID, reason string) error
	Restore(ctx context.Context, postID string) error
	Delete(ctx context.Context, postID, reason string) error
	Feature(ctx context.Context, postID string, durationHours *int) error
	Unfeature(ctx context.Context, postID string) error
}

func execute(ctx context.Context, ex Executor, postID string, a Action) error {
	switch a.Kind {
	case KindHide:
		return ex.Hide(ctx, postID, a.Reason)
	case KindRestore:
		return ex.Restore(ctx, postID)
	case KindDelete:
		return ex.Delete(ctx, postID, a.Reason)
	case KindFeature:
		return ex.Feature(ctx, postID, a.DurationHours)
	case KindUnfeature:
		return ex.Unfeature(ctx, postID)
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalidAction, a.Kind)
}
