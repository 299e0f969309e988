// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_random.go - Random(exitCount, shortestDistance, roomCount).
//
// Contract:
//   - exitCount ≥ 1, roomCount ≥ 1 (else ErrTooFewRooms).
//   - shortestDistance finite and > 0 (else ErrInvalidDistance).
//   - cfg.rng required (else ErrNeedRandSource).
//   - roomCount plain rooms, the entrance included, form a random tree: room i
//     hangs off a uniformly chosen earlier room, cfg.step() farther away.
//   - Exit i sits at shortestDistance + 2i and hangs off a uniformly chosen
//     plain room closer than itself; the entrance always qualifies.
//
// Complexity: O(roomCount + exitCount·roomCount) time, O(roomCount) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/room"
)

const (
	methodRandom = "Random"

	minRandomRooms = 1
	minRandomExits = 1

	// exitSpacing separates consecutive exits.
	exitSpacing = 2.0
)

// Random returns a Constructor for a seeded random labyrinth whose closest
// exit is exactly shortestDistance.
func Random(exitCount int, shortestDistance float64, roomCount int) Constructor {
	return func(cfg builderConfig) (*room.Room, error) {
		if exitCount < minRandomExits {
			return nil, fmt.Errorf("%s: exitCount=%d < min=%d: %w", methodRandom, exitCount, minRandomExits, ErrTooFewRooms)
		}
		if !validDistance(shortestDistance) {
			return nil, fmt.Errorf("%s: shortestDistance=%g: %w", methodRandom, shortestDistance, ErrInvalidDistance)
		}
		if roomCount < minRandomRooms {
			return nil, fmt.Errorf("%s: roomCount=%d < min=%d: %w", methodRandom, roomCount, minRandomRooms, ErrTooFewRooms)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		gen := ids{next: cfg.firstID}
		rooms := make([]*room.Room, 0, roomCount)
		rooms = append(rooms, room.New(gen.take(), false, 0))
		for i := 1; i < roomCount; i++ {
			parent := rooms[cfg.rng.Intn(i)]
			next := room.New(gen.take(), false, parent.DistanceFromStart()+cfg.step())
			if err := link(methodRandom, parent, next); err != nil {
				return nil, err
			}
			rooms = append(rooms, next)
		}

		candidates := make([]*room.Room, 0, roomCount)
		for i := 0; i < exitCount; i++ {
			d := shortestDistance + float64(i)*exitSpacing
			candidates = candidates[:0]
			for _, r := range rooms {
				if r.DistanceFromStart() < d {
					candidates = append(candidates, r)
				}
			}
			parent := candidates[cfg.rng.Intn(len(candidates))]
			if err := link(methodRandom, parent, room.New(gen.take(), true, d)); err != nil {
				return nil, err
			}
		}

		return rooms[0], nil
	}
}
