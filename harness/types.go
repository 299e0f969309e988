package harness

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/labyrinth/pathfinder"
)

var (
	// ErrNoWorkerCounts is returned by Run when no worker count was given.
	ErrNoWorkerCounts = errors.New("harness: no worker counts")

	// ErrTimeout marks a trial whose observer was not invoked in time.
	ErrTimeout = errors.New("harness: observer not invoked before deadline")

	// ErrDistanceMismatch marks a trial whose result missed the expected distance.
	ErrDistanceMismatch = errors.New("harness: shortest distance differs from expected")

	// ErrConcurrencyExceeded marks a trial that visited more rooms at once
	// than it had workers.
	ErrConcurrencyExceeded = errors.New("harness: concurrency above worker limit")

	// ErrOptionViolation is returned by Run when an invalid Option was supplied.
	ErrOptionViolation = errors.New("harness: invalid option supplied")
)

// Defaults used by Run.
const (
	DefaultRepeats   = 3
	DefaultTimeout   = 5 * time.Second
	DefaultTolerance = 0.01
)

// Option configures a harness run.
type Option func(*Options)

// Options holds the harness parameters.
type Options struct {
	Logger    *slog.Logger
	Repeats   int
	Timeout   time.Duration
	Tolerance float64
	SlowDown  time.Duration

	// Expected is NaN when no distance check is wanted.
	Expected float64

	err error
}

// DefaultOptions returns three repeats, a 5s deadline and no distance check.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.Default(),
		Repeats:   DefaultRepeats,
		Timeout:   DefaultTimeout,
		Tolerance: DefaultTolerance,
		Expected:  math.NaN(),
	}
}

// WithLogger sets the logger passed to every PathFinder. nil is a violation.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = logger
	}
}

// WithRepeats sets how many times every worker count is run.
func WithRepeats(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: repeats=%d", ErrOptionViolation, n)
			return
		}
		o.Repeats = n
	}
}

// WithTimeout bounds the wait for each trial's observer.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: timeout=%s", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithExpected enables the distance check against d within tolerance.
func WithExpected(d, tolerance float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || tolerance < 0 || math.IsNaN(tolerance) {
			o.err = fmt.Errorf("%w: expected=%g tolerance=%g", ErrOptionViolation, d, tolerance)
			return
		}
		o.Expected = d
		o.Tolerance = tolerance
	}
}

// WithSlowDown delays every room visit by d.
func WithSlowDown(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: slowdown=%s", ErrOptionViolation, d)
			return
		}
		o.SlowDown = d
	}
}

// Trial is the outcome of one run.
type Trial struct {
	Workers int
	Repeat  int
	RunID   string

	// Elapsed runs from Run to the observer call; zero on timeout.
	Elapsed time.Duration

	ExitFound       bool
	Shortest        float64
	PeakConcurrency int
	Stats           pathfinder.Stats

	// Err is nil for a passing trial.
	Err error
}

// Summary aggregates the trials of one worker count.
type Summary struct {
	Workers  int
	Trials   int
	Failures int
	Min      time.Duration
	Mean     time.Duration
	Max      time.Duration
}

// Report collects all trials in execution order.
type Report struct {
	Trials []Trial
}
