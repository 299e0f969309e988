// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_chain.go - Chain(length, step) and Spokes(distances...).

package builder

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/room"
)

const (
	methodChain  = "Chain"
	methodSpokes = "Spokes"

	minChainLength = 1
	minSpokes      = 1
)

// Chain returns a single corridor line: the entrance followed by length rooms
// spaced step apart. Only the last room is an exit, at length*step.
func Chain(length int, step float64) Constructor {
	return func(cfg builderConfig) (*room.Room, error) {
		if length < minChainLength {
			return nil, fmt.Errorf("%s: length=%d < min=%d: %w", methodChain, length, minChainLength, ErrTooFewRooms)
		}
		if !validDistance(step) {
			return nil, fmt.Errorf("%s: step=%g: %w", methodChain, step, ErrInvalidDistance)
		}

		gen := ids{next: cfg.firstID}
		entrance := room.New(gen.take(), false, 0)
		prev := entrance
		for i := 1; i <= length; i++ {
			next := room.New(gen.take(), i == length, float64(i)*step)
			if err := link(methodChain, prev, next); err != nil {
				return nil, err
			}
			prev = next
		}

		return entrance, nil
	}
}

// Spokes returns an entrance with one hall per distance; each hall sits
// halfway and leads to an exit at that distance. The closest exit is the
// minimum distance given.
func Spokes(exitDistances ...float64) Constructor {
	distances := append([]float64(nil), exitDistances...)
	return func(cfg builderConfig) (*room.Room, error) {
		if len(distances) < minSpokes {
			return nil, fmt.Errorf("%s: spokes=%d < min=%d: %w", methodSpokes, len(distances), minSpokes, ErrTooFewRooms)
		}
		for i, d := range distances {
			if !validDistance(d) {
				return nil, fmt.Errorf("%s: distance[%d]=%g: %w", methodSpokes, i, d, ErrInvalidDistance)
			}
		}

		gen := ids{next: cfg.firstID}
		entrance := room.New(gen.take(), false, 0)
		for _, d := range distances {
			hall := room.New(gen.take(), false, d/2)
			exit := room.New(gen.take(), true, d)
			if err := link(methodSpokes, entrance, hall); err != nil {
				return nil, err
			}
			if err := link(methodSpokes, hall, exit); err != nil {
				return nil, err
			}
		}

		return entrance, nil
	}
}
