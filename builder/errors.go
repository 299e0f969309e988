// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w, prefixed by the method name.
//   • Constructors never panic; option constructors may (programmer error).

package builder

import "errors"

// ErrTooFewRooms indicates that a count parameter (rooms, exits, chain
// length, spokes) is below the allowed minimum.
var ErrTooFewRooms = errors.New("builder: parameter too small")

// ErrInvalidDistance indicates a distance or step that is not a finite,
// strictly positive number.
var ErrInvalidDistance = errors.New("builder: invalid distance")

// ErrNeedRandSource indicates that a stochastic constructor was run without
// an RNG in the resolved builderConfig (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not assemble the
// labyrinth (nil constructor, or a room refused a corridor).
var ErrConstructFailed = errors.New("builder: construction failed")
