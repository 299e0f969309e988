package pathfinder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/room"
)

func TestTaskQueue_FIFO(t *testing.T) {
	q := newTaskQueue()
	for i := 0; i < 3; i++ {
		require.True(t, q.push(task{room: room.New(i, false, float64(i)), parentDistance: float64(i - 1)}))
	}
	assert.Equal(t, 3, q.len())

	for i := 0; i < 3; i++ {
		got, ok := q.pop()
		require.True(t, ok)
		assert.Equal(t, i, got.room.ID())
		assert.Equal(t, float64(i-1), got.parentDistance)
	}
	assert.Zero(t, q.len())
}

func TestTaskQueue_CloseReleasesWaiters(t *testing.T) {
	q := newTaskQueue()
	released := make(chan bool, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, ok := q.pop()
			released <- ok
		}()
	}

	q.close()
	for i := 0; i < 2; i++ {
		select {
		case ok := <-released:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("pop did not return after close")
		}
	}
	assert.False(t, q.push(task{}), "push after close")
}

func TestTaskQueue_DrainAfterClose(t *testing.T) {
	q := newTaskQueue()
	require.True(t, q.push(task{room: room.New(1, false, 1)}))
	q.close()

	got, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, 1, got.room.ID())

	_, ok = q.pop()
	assert.False(t, ok)
}
