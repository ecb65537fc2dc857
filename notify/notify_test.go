package notify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushDedupesByRequestIdentity(t *testing.T) {
	q := NewQueue(16, 10)
	offline := errors.New("network error: connection refused")

	assert.True(t, q.Push(Failure("posts#3", "posts", offline)))
	assert.False(t, q.Push(Failure("posts#3", "posts", offline)), "same request")
	assert.True(t, q.Push(Failure("posts#4", "posts", offline)), "same text, different request")

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, LevelError, got[0].Level)
	assert.Equal(t, offline.Error(), got[0].Message)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].At.IsZero())

	// drained keys stay remembered
	assert.False(t, q.Push(Failure("posts#3", "posts", offline)))
}

func TestPushWithoutKeyIsNeverDeduped(t *testing.T) {
	q := NewQueue(16, 10)
	assert.True(t, q.Push(Success("", "scores", "started")))
	assert.True(t, q.Push(Success("", "scores", "started")))
	assert.Equal(t, 2, q.Len())
}

func TestPushDropsOldestBeyondMaxPending(t *testing.T) {
	q := NewQueue(16, 3)
	for i := 0; i < 5; i++ {
		q.Push(Success(fmt.Sprintf("k%d", i), "test", fmt.Sprintf("m%d", i)))
	}

	got := q.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, "m2", got[0].Message)
	assert.Equal(t, "m4", got[2].Message)
}

func TestDedupeCapacityEvictsOldestKey(t *testing.T) {
	q := NewQueue(2, 10)
	q.Push(Success("a", "t", "a"))
	q.Push(Success("b", "t", "b"))
	q.Push(Success("c", "t", "c"))

	assert.True(t, q.Push(Success("a", "t", "a again")), "a was evicted")
	assert.False(t, q.Push(Success("c", "t", "c again")))
}

func TestDrainEmpty(t *testing.T) {
	q := NewQueue(0, 0)
	got := q.Drain()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
