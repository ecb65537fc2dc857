package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feed-admin/cmd/api/trace"
	"feed-admin/cmd/internal/moderation"
)

type published struct {
	topic string
	event Event
}

type fakeBus struct {
	mu     sync.Mutex
	events []published
	err    error
	closed bool
}

func (b *fakeBus) Publish(_ context.Context, topic string, event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, published{topic: topic, event: event})
	return nil
}

func (b *fakeBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

type okExecutor struct{ err error }

func (e okExecutor) Hide(context.Context, string, string) error   { return e.err }
func (e okExecutor) Restore(context.Context, string) error        { return e.err }
func (e okExecutor) Delete(context.Context, string, string) error { return e.err }
func (e okExecutor) Feature(context.Context, string, *int) error  { return e.err }
func (e okExecutor) Unfeature(context.Context, string) error      { return e.err }

func TestAuditPublisherPublishesDispatchedActions(t *testing.T) {
	bus := &fakeBus{}
	pub := NewAuditPublisher(bus, "feed-admin.moderation.actions")

	d := moderation.NewDispatcher(okExecutor{})
	d.Subscribe(pub.Listen)

	ctx := trace.WithRequestAndSpan(context.Background(), "req-1", 0)
	ev, err := d.Dispatch(ctx, "post-7", moderation.Hide("spam"))
	require.NoError(t, err)

	pub.Close()
	assert.True(t, bus.closed)
	require.Len(t, bus.events, 1)
	got := bus.events[0]
	assert.Equal(t, "feed-admin.moderation.actions", got.topic)
	assert.Equal(t, ev.ID, got.event.ID)
	assert.Equal(t, EventTypeModerationAction, got.event.Type)

	audit, err := DecodeJSON[ModerationAudit](got.event)
	require.NoError(t, err)
	assert.Equal(t, "post-7", audit.PostID)
	assert.Equal(t, moderation.KindHide, audit.Kind)
	assert.Equal(t, "spam", audit.Reason)
	assert.True(t, audit.Succeeded)
	assert.Equal(t, "req-1", audit.RequestID)
}

func TestAuditRecordsFailures(t *testing.T) {
	hours := 24
	ev := moderation.Event{
		ID:      "a1",
		PostID:  "9",
		Action:  moderation.Feature(&hours),
		Err:     errors.New("status=500"),
		At:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Elapsed: 1500 * time.Millisecond,
	}

	audit := NewModerationAudit(context.Background(), ev)
	assert.False(t, audit.Succeeded)
	assert.Equal(t, "status=500", audit.Error)
	assert.Equal(t, 24, *audit.DurationHours)
	assert.Equal(t, int64(1500), audit.ElapsedMillis)
	assert.Empty(t, audit.RequestID)
}

func TestAuditPublishFailureDoesNotPanic(t *testing.T) {
	bus := &fakeBus{err: errors.New("broker down")}
	pub := NewAuditPublisher(bus, "t")

	pub.Listen(context.Background(), moderation.Event{ID: "x", PostID: "1", Action: moderation.Restore()})
	pub.Close()

	assert.Empty(t, bus.events)
}

func TestNewJSONEventGeneratesID(t *testing.T) {
	evt, err := NewJSONEvent("", "t", map[string]int{"n": 1})
	require.NoError(t, err)
	assert.NotEmpty(t, evt.ID)

	out, err := DecodeJSON[map[string]int](evt)
	require.NoError(t, err)
	assert.Equal(t, 1, out["n"])
}

func TestAuditHandlerDecodesModerationEvents(t *testing.T) {
	var got []ModerationAudit
	h := AuditHandler(func(_ context.Context, a ModerationAudit) error {
		got = append(got, a)
		return nil
	})

	evt, err := NewJSONEvent("a1", EventTypeModerationAction, ModerationAudit{ActionID: "a1", PostID: "p1", Kind: moderation.KindHide, Succeeded: true})
	require.NoError(t, err)
	require.NoError(t, h(context.Background(), evt))

	other, err := NewJSONEvent("o1", "post.created", map[string]string{"id": "p2"})
	require.NoError(t, err)
	require.NoError(t, h(context.Background(), other))

	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].PostID)
	assert.Equal(t, moderation.KindHide, got[0].Kind)

	broken := Event{ID: "b1", Type: EventTypeModerationAction, Payload: []byte(`{`)}
	assert.Error(t, h(context.Background(), broken))
}
