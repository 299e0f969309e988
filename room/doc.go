// Package room defines the Room type, the vertex of a labyrinth.
//
// A labyrinth is a tree rooted at a single entrance. Every Room carries an
// integer ID (diagnostics only), an exit flag, its precomputed distance from
// the entrance, and an ordered list of corridors leading to child rooms.
//
// Invariant (owned by whoever assembles the labyrinth, not by this package):
//
//	for every corridor parent→child: child.DistanceFromStart() > parent.DistanceFromStart()
//	entrance.DistanceFromStart() == 0
//
// AddCorridor deliberately does not enforce the invariant; consumers such as
// pathfinder discover violations lazily, when the offending corridor is
// actually walked. Validate performs the full up-front check for callers that
// want it.
//
// Concurrency
//
//	Corridor lists are guarded by a sync.RWMutex, so a labyrinth may be
//	assembled from several goroutines. Once assembly is done a Room is treated
//	as read-only; Corridors returns a copy, never the internal slice.
//
// Usage
//
//	entrance := room.New(0, false, 0)
//	hall := room.New(1, false, 1)
//	door := room.New(2, true, 2)
//	_ = entrance.AddCorridor(hall)
//	_ = hall.AddCorridor(door)
//	n := room.Count(entrance) // 3
//
// Errors
//
//   - ErrNilRoom       a nil *Room was passed where a room is required.
//   - ErrSelfCorridor  a corridor from a room to itself.
//   - ErrMalformed     Validate found an edge violating the invariant.
package room
