// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStep sets the range [lo, hi] from which Random draws the distance
// between a room and its parent. Panics unless 0 < lo <= hi and both are finite.
func WithStep(lo, hi float64) BuilderOption {
	if !(lo > 0) || hi < lo || math.IsInf(hi, 1) {
		panic("builder: WithStep requires 0 < lo <= hi < +Inf")
	}
	return func(c *builderConfig) {
		c.stepLo, c.stepHi = lo, hi
	}
}

// WithFirstID sets the ID given to the entrance; other rooms follow in
// construction order. Negative values panic.
func WithFirstID(id int) BuilderOption {
	if id < 0 {
		panic("builder: WithFirstID(id<0)")
	}
	return func(c *builderConfig) {
		c.firstID = id
	}
}
