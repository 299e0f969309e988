// Package labyrinth finds the exit closest to the entrance of a tree-shaped
// labyrinth with a fixed pool of cooperating worker goroutines.
//
// Every room knows its distance from the entrance, and every corridor leads
// strictly farther away. Workers share one best-known exit distance; a room
// that cannot beat it is not expanded, so most of a large labyrinth is never
// entered.
//
// Packages:
//
//	room/       - Room, corridors and tree helpers (Walk, Count, Exits, Validate)
//	pathfinder/ - the concurrent branch-and-bound search and its completion observer
//	builder/    - fixed labyrinths (Manual, Trial), Chain, Spokes and seeded Random
//	harness/    - repeated timing trials across worker counts
//	config/     - YAML + environment configuration with validation
//	telemetry/  - OpenTelemetry providers (stdout, OTLP, Prometheus)
//	cmd/labyrinth - CLI: search, bench, version
//	examples/   - runnable scenarios
//
// Quick ASCII example:
//
//	entrance(0) ─┬─ hall(2.5) ── exit(5)
//	             ├─ hall(1.5) ── exit(3)   ← closest
//	             └─ hall(4)   ── exit(8)
//
// is builder.Spokes(5, 3, 8); any number of workers reports 3.
//
//	go install github.com/katalvlaran/labyrinth/cmd/labyrinth@latest
package labyrinth
