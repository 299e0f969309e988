package room

import (
	"errors"
	"sync"
)

// Sentinel errors for room assembly and validation.
var (
	// ErrNilRoom indicates a nil *Room where a room is required.
	ErrNilRoom = errors.New("room: room is nil")

	// ErrSelfCorridor indicates an attempt to connect a room to itself.
	ErrSelfCorridor = errors.New("room: corridor to itself")

	// ErrMalformed indicates a corridor whose target is not strictly farther
	// from the entrance than its source, or an entrance with non-zero distance.
	ErrMalformed = errors.New("room: labyrinth invariant violated")
)

// Room is one vertex of a labyrinth.
//
// id, exit and distance are fixed at construction. corridors only grows,
// and only while the labyrinth is being assembled.
type Room struct {
	id       int
	exit     bool
	distance float64

	mu        sync.RWMutex
	corridors []*Room
}

// New returns a Room with no corridors.
func New(id int, isExit bool, distance float64) *Room {
	return &Room{
		id:       id,
		exit:     isExit,
		distance: distance,
	}
}
