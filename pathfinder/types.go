package pathfinder

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/labyrinth/room"
)

// NoExit is reported by ShortestDistanceToExit while no exit has been found.
const NoExit = math.MaxFloat64

// Sentinel errors for configuration and search execution.
var (
	// ErrInvalidConfiguration is returned by Configure for a non-positive worker count.
	ErrInvalidConfiguration = errors.New("pathfinder: max workers must be positive")

	// ErrInvalidArgument is returned by Run for a nil entrance or an entrance
	// whose distance from start is not zero.
	ErrInvalidArgument = errors.New("pathfinder: invalid entrance")

	// ErrNotConfigured is returned by Run when Configure was never called successfully.
	ErrNotConfigured = errors.New("pathfinder: max workers not configured")

	// ErrNoObserver is returned by Run when no completion observer is registered.
	ErrNoObserver = errors.New("pathfinder: completion observer not registered")

	// ErrMalformedGraph aborts a run when a corridor leads to a room that is
	// not strictly farther from the entrance than the room it leaves.
	ErrMalformedGraph = errors.New("pathfinder: malformed labyrinth")

	// ErrRunInProgress is returned when Run or Configure is called while a
	// previous run has not yet signalled completion.
	ErrRunInProgress = errors.New("pathfinder: run in progress")

	// ErrOptionViolation is returned by Run when an invalid Option was supplied to New.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")
)

// Option configures a PathFinder via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds the logger and hooks of a PathFinder.
//
// Hooks run on worker goroutines, concurrently with each other, and must be
// safe for concurrent use. A slow hook stalls the worker that called it.
type Options struct {
	// Logger receives run lifecycle records. Never nil after DefaultOptions.
	Logger *slog.Logger

	// OnVisit is called for every room that passed admission and the
	// invariant check, before it is inspected.
	OnVisit func(r *room.Room, parentDistance float64)

	// OnPrune is called when a room is discarded by admission or when its
	// corridors are not expanded because it cannot beat the best exit.
	OnPrune func(r *room.Room, parentDistance float64)

	// OnImprove is called after an exit lowered the best known distance.
	OnImprove func(distance float64)

	err error
}

// DefaultOptions returns Options with slog.Default() and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.Default(),
		OnVisit:   func(*room.Room, float64) {},
		OnPrune:   func(*room.Room, float64) {},
		OnImprove: func(float64) {},
	}
}

// WithLogger sets the structured logger. A nil logger is an option violation.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = logger
	}
}

// WithOnVisit registers a visit hook. nil is ignored.
func WithOnVisit(fn func(r *room.Room, parentDistance float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPrune registers a prune hook. nil is ignored.
func WithOnPrune(fn func(r *room.Room, parentDistance float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// WithOnImprove registers a hook fired on every successful improvement. nil is ignored.
func WithOnImprove(fn func(distance float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// Stats counts the work done by one run.
type Stats struct {
	// Scheduled is the number of tasks enqueued, the entrance included.
	Scheduled int64
	// Visited is the number of rooms that passed admission.
	Visited int64
	// Pruned is the number of rooms discarded by admission plus rooms whose
	// corridors were not expanded.
	Pruned int64
	// Improvements is the number of successful best-distance updates.
	Improvements int64
}
