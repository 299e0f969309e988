package room

import (
	"fmt"
	"strconv"
)

// ID returns the diagnostic identifier given to New.
func (r *Room) ID() int { return r.id }

// IsExit reports whether the room is a valid way out of the labyrinth.
func (r *Room) IsExit() bool { return r.exit }

// DistanceFromStart returns the precomputed distance from the entrance.
func (r *Room) DistanceFromStart() float64 { return r.distance }

// AddCorridor appends next to the ordered corridor list of r.
// It returns ErrNilRoom if either room is nil and ErrSelfCorridor if next is r.
// Distances are not compared here; see Validate.
func (r *Room) AddCorridor(next *Room) error {
	if r == nil || next == nil {
		return ErrNilRoom
	}
	if r == next {
		return fmt.Errorf("AddCorridor(%d): %w", r.id, ErrSelfCorridor)
	}

	r.mu.Lock()
	r.corridors = append(r.corridors, next)
	r.mu.Unlock()

	return nil
}

// Corridors returns a copy of the rooms reachable from r, in insertion order.
// The result is never nil.
func (r *Room) Corridors() []*Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Room, len(r.corridors))
	copy(out, r.corridors)

	return out
}

// Degree returns the number of corridors leaving r.
func (r *Room) Degree() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.corridors)
}

// String renders the room without descending into its corridors.
func (r *Room) String() string {
	if r == nil {
		return "Room<nil>"
	}

	return "Room{id=" + strconv.Itoa(r.id) +
		", exit=" + strconv.FormatBool(r.exit) +
		", distance=" + strconv.FormatFloat(r.distance, 'g', -1, 64) +
		", corridors=" + strconv.Itoa(r.Degree()) + "}"
}
