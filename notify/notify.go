// Package notify queues the transient notifications shown to one operator.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one transient message. Key identifies the request that
// caused it; two notifications with the same non-empty Key are duplicates
// regardless of their text.
type Notification struct {
	ID      string    `json:"id"`
	Level   Level     `json:"level"`
	Source  string    `json:"source"`
	Message string    `json:"message"`
	Key     string    `json:"-"`
	At      time.Time `json:"at"`
}

func Failure(key, source string, err error) Notification {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Notification{Level: LevelError, Source: source, Message: msg, Key: key}
}

func Success(key, source, message string) Notification {
	return Notification{Level: LevelSuccess, Source: source, Message: message, Key: key}
}

const (
	defaultDedupeCapacity = 1024
	defaultMaxPending     = 50
)

// Queue holds undelivered notifications. When more than maxPending are waiting
// the oldest are dropped.
type Queue struct {
	mu         sync.Mutex
	pending    []Notification
	seen       *lru.Cache[string, struct{}]
	maxPending int
	now        func() time.Time
}

func NewQueue(dedupeCapacity, maxPending int) *Queue {
	if dedupeCapacity <= 0 {
		dedupeCapacity = defaultDedupeCapacity
	}
	if maxPending <= 0 {
		maxPending = defaultMaxPending
	}
	seen, _ := lru.New[string, struct{}](dedupeCapacity)
	return &Queue{seen: seen, maxPending: maxPending, now: time.Now}
}

// Push enqueues n unless a notification with the same Key was already pushed.
// It reports whether n was enqueued.
func (q *Queue) Push(n Notification) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n.Key != "" {
		if ok, _ := q.seen.ContainsOrAdd(n.Key, struct{}{}); ok {
			return false
		}
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.At.IsZero() {
		n.At = q.now()
	}

	q.pending = append(q.pending, n)
	if over := len(q.pending) - q.maxPending; over > 0 {
		q.pending = append([]Notification(nil), q.pending[over:]...)
	}
	return true
}

// Drain returns the pending notifications oldest first and empties the queue.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.pending
	q.pending = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
