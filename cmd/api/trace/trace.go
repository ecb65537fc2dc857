// Package trace carries the dashboard request id through feed service calls.
// Inbound requests start at span 0; each outbound call takes the next span.
package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type ctxKey struct{}

type span struct {
	requestID string
	seq       atomic.Int64
}

func GenerateID() string {
	return uuid.NewString()
}

// WithRequestAndSpan starts a trace for requestID at the given span.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	s := &span{requestID: requestID}
	s.seq.Store(initialSpan)
	return context.WithValue(ctx, ctxKey{}, s)
}

func fromContext(ctx context.Context) *span {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(ctxKey{}).(*span)
	return s
}

func RequestIDFromContext(ctx context.Context) string {
	if s := fromContext(ctx); s != nil {
		return s.requestID
	}
	return ""
}

// CurrentSpanID reads the span without advancing it. Untraced contexts report "0".
func CurrentSpanID(ctx context.Context) string {
	s := fromContext(ctx)
	if s == nil {
		return "0"
	}
	return strconv.FormatInt(max(s.seq.Load(), 0), 10)
}

// NextSpanID advances the span for an outbound call. Untraced contexts get a
// fresh request id at span 1.
func NextSpanID(ctx context.Context) (requestID, spanID string) {
	s := fromContext(ctx)
	if s == nil {
		return GenerateID(), "1"
	}
	return s.requestID, strconv.FormatInt(max(s.seq.Add(1), 1), 10)
}
