package pathfinder

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/room"
)

// PathFinder searches a labyrinth for the exit closest to the entrance using
// a fixed number of worker goroutines.
//
// Lifecycle: Configure, RegisterObserver, then Run. Run is asynchronous; the
// observer is invoked exactly once when the run has drained (or aborted), and
// only then are ExitFound and ShortestDistanceToExit final. A PathFinder may
// run again after its previous run completed; every run starts from a fresh
// Search State.
type PathFinder struct {
	opts Options

	mu         sync.Mutex
	maxWorkers int
	observer   func()
	running    bool

	last atomic.Pointer[search]
}

// New returns a PathFinder that still needs Configure and RegisterObserver.
func New(opts ...Option) *PathFinder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &PathFinder{opts: o}
}

// Configure sets the number of workers used by subsequent runs.
// Calling it again with a valid value simply replaces the previous one.
func (p *PathFinder) Configure(maxWorkers int) error {
	if maxWorkers <= 0 {
		return fmt.Errorf("Configure(%d): %w", maxWorkers, ErrInvalidConfiguration)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return fmt.Errorf("Configure(%d): %w", maxWorkers, ErrRunInProgress)
	}
	p.maxWorkers = maxWorkers

	return nil
}

// RegisterObserver sets the completion callback. It takes effect for runs
// started afterwards; nil unregisters.
func (p *PathFinder) RegisterObserver(fn func()) {
	p.mu.Lock()
	p.observer = fn
	p.mu.Unlock()
}

// Run validates the entrance and prerequisites, schedules the entrance and
// returns. Traversal continues on the worker goroutines.
func (p *PathFinder) Run(entrance *room.Room) error {
	if p.opts.err != nil {
		return p.opts.err
	}
	if entrance == nil {
		return fmt.Errorf("Run: entrance is nil: %w", ErrInvalidArgument)
	}
	if d := entrance.DistanceFromStart(); d != 0 {
		return fmt.Errorf("Run: entrance %d at distance %g: %w", entrance.ID(), d, ErrInvalidArgument)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case p.running:
		return fmt.Errorf("Run: %w", ErrRunInProgress)
	case p.maxWorkers == 0:
		return fmt.Errorf("Run: %w", ErrNotConfigured)
	case p.observer == nil:
		return fmt.Errorf("Run: %w", ErrNoObserver)
	}

	s := newSearch(uuid.NewString(), p.maxWorkers, p.opts, currentInstruments(p.opts.Logger))
	observer := p.observer
	p.running = true
	p.last.Store(s)

	s.start(entrance, func(s *search) { p.finish(s, observer) })

	return nil
}

// finish runs on the supervisor goroutine once every worker has returned.
func (p *PathFinder) finish(s *search, observer func()) {
	s.report()
	s.notifyOnce.Do(func() {
		observer()
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
		close(s.done)
	})
}

// ExitFound reports whether the current or last run has reached an exit.
// It is false once a run has aborted on a malformed labyrinth.
func (p *PathFinder) ExitFound() bool {
	found, _ := p.result()

	return found
}

// ShortestDistanceToExit returns the best exit distance of the current or
// last run, or NoExit if none was found or the run aborted. During a healthy
// run the value only decreases.
func (p *PathFinder) ShortestDistanceToExit() float64 {
	_, shortest := p.result()

	return shortest
}

func (p *PathFinder) result() (bool, float64) {
	if s := p.last.Load(); s != nil {
		return s.result()
	}

	return false, NoExit
}

// Err returns the ErrMalformedGraph error that aborted the last run, or nil.
// It is set before the observer is invoked.
func (p *PathFinder) Err() error {
	if s := p.last.Load(); s != nil {
		return s.failure()
	}

	return nil
}

// Done returns a channel closed right after the observer of the last run
// returned. Before any run it returns a closed channel.
func (p *PathFinder) Done() <-chan struct{} {
	if s := p.last.Load(); s != nil {
		return s.done
	}
	closed := make(chan struct{})
	close(closed)

	return closed
}

// Stats returns the counters of the current or last run.
func (p *PathFinder) Stats() Stats {
	if s := p.last.Load(); s != nil {
		return s.stats()
	}

	return Stats{}
}

// RunID returns the identifier of the current or last run, used in logs and
// traces. It is empty before the first run.
func (p *PathFinder) RunID() string {
	if s := p.last.Load(); s != nil {
		return s.id
	}

	return ""
}
