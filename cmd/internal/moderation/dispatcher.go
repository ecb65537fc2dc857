package moderation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"feed-admin/cmd/internal/logger"
)

type State string

const (
	StateIdle      State = "idle"
	StateExecuting State = "executing"
)

// Event is published once per dispatched command, after the post is back to idle.
type Event struct {
	ID      string        `json:"id"`
	Seq     uint64        `json:"seq"`
	PostID  string        `json:"postId"`
	Action  Action        `json:"action"`
	Err     error         `json:"-"`
	At      time.Time     `json:"at"`
	Elapsed time.Duration `json:"elapsed"`
}

func (e Event) Succeeded() bool { return e.Err == nil }

// Listener receives completion events. Listeners run synchronously on the
// dispatching goroutine, in subscription order.
type Listener func(ctx context.Context, ev Event)

// Status is the per-post view of the dispatcher.
type Status struct {
	PostID    string `json:"postId"`
	State     State  `json:"state"`
	Executing Kind   `json:"executing,omitempty"`
	Last      *Event `json:"last,omitempty"`
}

const defaultHistorySize = 256

// Dispatcher executes at most one command per post at a time. It holds no list
// state; successful commands are announced to subscribers, which decide what to
// refresh.
type Dispatcher struct {
	exec Executor

	mu        sync.Mutex
	executing map[string]Kind
	listeners map[int]Listener
	order     []int
	nextSub   int
	seq       uint64
	history   *lru.Cache[string, Event]
	now       func() time.Time
}

func NewDispatcher(exec Executor) *Dispatcher {
	history, _ := lru.New[string, Event](defaultHistorySize)
	return &Dispatcher{
		exec:      exec,
		executing: make(map[string]Kind),
		listeners: make(map[int]Listener),
		history:   history,
		now:       time.Now,
	}
}

// Subscribe registers fn and returns a function that removes it.
func (d *Dispatcher) Subscribe(fn Listener) (unsubscribe func()) {
	d.mu.Lock()
	id := d.nextSub
	d.nextSub++
	d.listeners[id] = fn
	d.order = append(d.order, id)
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			delete(d.listeners, id)
			for i, v := range d.order {
				if v == id {
					d.order = append(d.order[:i], d.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Dispatch sends a to the feed service for postID and blocks until it completes.
//
//   - ErrInvalidAction: the command is malformed, nothing is sent.
//   - ErrActionInProgress: another command for postID is executing, nothing is sent.
//   - *ActionError: the feed service call failed. No local state is touched.
//
// Every sent command produces exactly one Event for subscribers.
func (d *Dispatcher) Dispatch(ctx context.Context, postID string, a Action) (Event, error) {
	if err := a.Validate(); err != nil {
		return Event{}, err
	}

	d.mu.Lock()
	if _, busy := d.executing[postID]; busy {
		d.mu.Unlock()
		logger.WarnWithFields("moderation action rejected", logger.Fields{
			"post_id": postID,
			"action":  string(a.Kind),
		})
		return Event{}, ErrActionInProgress
	}
	d.executing[postID] = a.Kind
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	start := d.now()
	err := execute(ctx, d.exec, postID, a)
	if err != nil {
		err = &ActionError{Kind: a.Kind, PostID: postID, Err: err}
	}

	ev := Event{
		ID:      uuid.NewString(),
		Seq:     seq,
		PostID:  postID,
		Action:  a,
		Err:     err,
		At:      d.now(),
		Elapsed: d.now().Sub(start),
	}

	d.mu.Lock()
	delete(d.executing, postID)
	d.history.Add(postID, ev)
	listeners := make([]Listener, 0, len(d.order))
	for _, id := range d.order {
		listeners = append(listeners, d.listeners[id])
	}
	d.mu.Unlock()

	fields := logger.Fields{
		"post_id":  postID,
		"action":   string(a.Kind),
		"event_id": ev.ID,
		"duration": ev.Elapsed.String(),
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("moderation action failed", fields)
	} else {
		logger.InfoWithFields("moderation action succeeded", fields)
	}

	for _, fn := range listeners {
		fn(ctx, ev)
	}
	return ev, err
}

func (d *Dispatcher) IsExecuting(postID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.executing[postID]
	return ok
}

// StateOf reports whether postID has a command executing and the last completed one, if remembered.
func (d *Dispatcher) StateOf(postID string) Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := Status{PostID: postID, State: StateIdle}
	if kind, ok := d.executing[postID]; ok {
		st.State = StateExecuting
		st.Executing = kind
	}
	if ev, ok := d.history.Get(postID); ok {
		st.Last = &ev
	}
	return st
}
