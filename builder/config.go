// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil   (Random requires WithSeed/WithRand)
//   • step    = [1,1] (unit room spacing)
//   • firstID = 0

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng     *rand.Rand
	stepLo  float64
	stepHi  float64
	firstID int
}

const (
	defaultStep    = 1.0
	defaultFirstID = 0
)

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		stepLo:  defaultStep,
		stepHi:  defaultStep,
		firstID: defaultFirstID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// step draws one parent→child spacing. Without an RNG, or with a degenerate
// range, it returns stepLo.
func (c builderConfig) step() float64 {
	if c.rng == nil || c.stepHi == c.stepLo {
		return c.stepLo
	}

	return c.stepLo + c.rng.Float64()*(c.stepHi-c.stepLo)
}

// ids hands out sequential room IDs starting at firstID.
type ids struct{ next int }

func (g *ids) take() int {
	id := g.next
	g.next++

	return id
}
