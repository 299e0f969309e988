package room

import (
	"fmt"
	"math"
)

// Walk visits every room reachable from root in pre-order, following
// corridors in insertion order. It stops early when fn returns false.
// A nil root is a no-op.
//
// Walk is iterative (explicit stack), so deep chains do not grow the
// goroutine stack. It assumes a tree: a room reachable twice is visited twice.
func Walk(root *Room, fn func(r *Room, depth int) bool) {
	if root == nil || fn == nil {
		return
	}

	type frame struct {
		r     *Room
		depth int
	}
	stack := []frame{{r: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top.r, top.depth) {
			return
		}
		next := top.r.Corridors()
		// push in reverse so the first corridor is visited first
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, frame{r: next[i], depth: top.depth + 1})
		}
	}
}

// Count returns the number of rooms reachable from root, root included.
func Count(root *Room) int {
	n := 0
	Walk(root, func(*Room, int) bool {
		n++
		return true
	})

	return n
}

// Exits returns every exit reachable from root, in pre-order.
func Exits(root *Room) []*Room {
	var out []*Room
	Walk(root, func(r *Room, _ int) bool {
		if r.IsExit() {
			out = append(out, r)
		}
		return true
	})

	return out
}

// Validate checks the whole labyrinth up front: root must be non-nil with
// distance 0, and every corridor must lead strictly farther from the entrance.
// The first violation is returned wrapped around ErrMalformed.
func Validate(root *Room) error {
	if root == nil {
		return ErrNilRoom
	}
	if root.DistanceFromStart() != 0 {
		return fmt.Errorf("Validate: entrance %d at distance %g: %w",
			root.ID(), root.DistanceFromStart(), ErrMalformed)
	}

	var err error
	Walk(root, func(r *Room, _ int) bool {
		for _, next := range r.Corridors() {
			d := next.DistanceFromStart()
			if math.IsNaN(d) || d <= r.DistanceFromStart() {
				err = fmt.Errorf("Validate: corridor %d(%g)→%d(%g): %w",
					r.ID(), r.DistanceFromStart(), next.ID(), d, ErrMalformed)
				return false
			}
		}
		return true
	})

	return err
}
