// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// Package builder assembles labyrinths (trees of *room.Room) for searches,
// tests, examples and benchmarks.
//
// Every factory returns a Constructor; Build resolves the functional options
// into an immutable builderConfig and runs it:
//
//	entrance, err := builder.Build(builder.Trial())
//	entrance, err := builder.Build(builder.Random(3, 10, 500), builder.WithSeed(42))
//
// Factories
//
//   - Manual()                     17 rooms, three rooms at distance 1, closest exit at 3.
//   - Trial()                      16 rooms, three rooms at distance 1, closest exit at 14.
//   - Chain(length, step)          entrance + length rooms, step apart, the last one an exit.
//   - Spokes(d1, d2, ...)          one hall + exit per distance; closest exit is min(d).
//   - Random(exits, shortest, n)   n rooms in a random tree, exits at shortest+2i (needs RNG).
//
// Guarantees
//
//	Every labyrinth produced here satisfies the invariant the search relies
//	on: the entrance is at distance 0 and every corridor leads strictly
//	farther. Identical options and seed ⇒ identical labyrinth.
//
// Errors
//
//   - ErrTooFewRooms      counts below their minimum.
//   - ErrInvalidDistance  non-positive, NaN or infinite distances and steps.
//   - ErrNeedRandSource   Random without WithSeed/WithRand.
//   - ErrConstructFailed  nil constructor or an assembly failure.
package builder
