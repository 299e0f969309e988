// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// api.go - thin public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(con, opts...). Resolves cfg, runs con once.
//   - Public factories are declared in impl_*.go and return a Constructor.
//   - Determinism: same constructor, options and seed ⇒ identical labyrinths.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/labyrinth/room"
)

// Constructor assembles a labyrinth from a resolved builderConfig and returns
// its entrance. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(cfg builderConfig) (*room.Room, error)

// Build resolves opts and runs con. Constructor errors are wrapped with
// "Build: %w"; callers branch with errors.Is on the builder sentinels.
func Build(con Constructor, opts ...BuilderOption) (*room.Room, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	entrance, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return entrance, nil
}

// link adds a corridor and converts a room error into ErrConstructFailed.
func link(method string, from, to *room.Room) error {
	if err := from.AddCorridor(to); err != nil {
		return fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}

	return nil
}

// validDistance reports whether d is finite and strictly positive.
func validDistance(d float64) bool {
	return d > 0 && !math.IsInf(d, 1)
}
