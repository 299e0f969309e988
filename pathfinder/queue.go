package pathfinder

import (
	"errors"
	"sync"

	"github.com/katalvlaran/labyrinth/room"
)

// errPoolClosed is returned by submit once the run has drained.
var errPoolClosed = errors.New("pathfinder: pool closed")

// task is one unit of scheduled work: visit room, whose parent sits at parentDistance.
type task struct {
	room           *room.Room
	parentDistance float64
}

// taskQueue is an unbounded FIFO shared by all workers of one run.
// Workers block in pop while it is empty and open; close wakes them all.
type taskQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []task
	closed bool
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// push appends t. It reports false once the queue is closed.
func (q *taskQueue) push(t task) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.items = append(q.items, t)
	q.cond.Signal()

	return true
}

// pop blocks until a task is available or the queue is closed and empty.
func (q *taskQueue) pop() (task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return task{}, false
	}
	t := q.items[0]
	q.items[0] = task{} // drop the room reference
	q.items = q.items[1:]

	return t, true
}

// close rejects further pushes and releases every waiting worker.
func (q *taskQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *taskQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
