package pathfinder

import (
	"fmt"
	"log/slog"
	"math"
)

// process runs the branch-and-bound step for one task:
//
//  1. discard if the run was aborted;
//  2. admission: discard if an exit is known and parentDistance >= best;
//  3. invariant: the room must be strictly farther than its parent;
//  4. exit rooms try to improve the best distance, other rooms expand their
//     corridors unless they already cannot beat the best distance.
//
// Only a broken invariant returns an error; it aborts the whole run.
func (s *search) process(t task) error {
	if s.aborted() {
		return nil
	}

	found, shortest := s.state.read()
	if found && t.parentDistance >= shortest {
		s.pruned.Add(1)
		s.opts.OnPrune(t.room, t.parentDistance)
		return nil
	}

	r := t.room
	d := r.DistanceFromStart()
	if math.IsNaN(d) || d <= t.parentDistance {
		err := fmt.Errorf("visit room %d: distance %g not beyond parent distance %g: %w",
			r.ID(), d, t.parentDistance, ErrMalformedGraph)
		s.abort(err)
		return err
	}

	s.visited.Add(1)
	s.opts.OnVisit(r, t.parentDistance)

	if r.IsExit() {
		if s.state.tryImprove(d) {
			s.improvements.Add(1)
			s.opts.OnImprove(d)
			s.logger.Debug("exit improved", slog.Int("room_id", r.ID()), slog.Float64("distance", d))
		}
		return nil
	}

	corridors := r.Corridors()
	if len(corridors) == 0 {
		return nil
	}

	// Fresh snapshot; it may already be stale when the children are
	// enqueued. Admission of those children filters most of it.
	found, shortest = s.state.read()
	if found && !(d < shortest) {
		s.pruned.Add(1)
		s.opts.OnPrune(r, t.parentDistance)
		return nil
	}

	for _, next := range corridors {
		if s.aborted() {
			break
		}
		if err := s.submit(task{room: next, parentDistance: d}); err != nil {
			return fmt.Errorf("expand room %d: %w", r.ID(), err)
		}
	}

	return nil
}
