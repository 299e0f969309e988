package pathfinder

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/labyrinth/room"
)

// search is the state of one run: its Search State, queue, pending counter
// and workers. A new search is built for every Run; nothing leaks across runs.
type search struct {
	id      string
	workers int
	opts    Options
	logger  *slog.Logger

	state   *searchState
	inst    *instruments
	queue   *taskQueue
	pending atomic.Int64
	group   errgroup.Group

	// ctx is cancelled with the MalformedGraph cause on abort.
	ctx       context.Context
	cancel    context.CancelCauseFunc
	malformed atomic.Bool

	spanCtx context.Context
	span    trace.Span
	started time.Time

	scheduled    atomic.Int64
	visited      atomic.Int64
	pruned       atomic.Int64
	improvements atomic.Int64

	notifyOnce sync.Once
	done       chan struct{}

	errMu sync.Mutex
	err   error
}

func newSearch(id string, workers int, opts Options, inst *instruments) *search {
	return &search{
		id:      id,
		workers: workers,
		opts:    opts,
		logger:  opts.Logger.With(slog.String("run_id", id)),
		state:   newSearchState(),
		inst:    inst,
		queue:   newTaskQueue(),
		done:    make(chan struct{}),
	}
}

// start seeds the queue with the entrance and launches the workers plus the
// supervisor that fires finish once every worker has returned.
func (s *search) start(entrance *room.Room, finish func(*search)) {
	s.spanCtx, s.span = tracer().Start(context.Background(), "pathfinder.Run",
		trace.WithAttributes(
			attribute.String("run_id", s.id),
			attribute.Int("workers", s.workers),
			attribute.Int("entrance_id", entrance.ID()),
		),
	)
	s.ctx, s.cancel = context.WithCancelCause(s.spanCtx)
	s.started = time.Now()

	s.logger.Info("search started",
		slog.Int("workers", s.workers),
		slog.Int("entrance_id", entrance.ID()),
	)

	// The entrance has no parent constraint and is never pruned by admission.
	s.seed(task{room: entrance, parentDistance: math.Inf(-1)})

	for i := 0; i < s.workers; i++ {
		s.group.Go(s.work)
	}

	go func() {
		err := s.group.Wait()
		s.errMu.Lock()
		s.err = err
		s.errMu.Unlock()
		s.cancel(nil)
		finish(s)
	}()
}

// work drains the queue until it is closed. The first MalformedGraph error
// seen by this worker is returned after the queue closes, so a failing
// worker keeps counting tasks down and the run still terminates.
func (s *search) work() error {
	var failure error
	for {
		t, ok := s.queue.pop()
		if !ok {
			return failure
		}
		if err := s.process(t); err != nil && failure == nil {
			failure = err
		}
		s.complete()
	}
}

// submit counts t as pending before it becomes visible to workers, so the
// counter cannot reach zero while a parent is still enqueuing children.
func (s *search) submit(t task) error {
	s.pending.Add(1)
	if !s.queue.push(t) {
		s.pending.Add(-1)
		return errPoolClosed
	}
	s.scheduled.Add(1)

	return nil
}

// seed schedules the first task. No worker runs yet, so the queue is open.
func (s *search) seed(t task) {
	s.pending.Add(1)
	if !s.queue.push(t) {
		panic("pathfinder: fresh queue rejected the entrance")
	}
	s.scheduled.Add(1)
}

// complete marks one task finished. The worker that brings the counter to
// zero closes the queue; no task is in flight, so nothing can be submitted.
func (s *search) complete() {
	if s.pending.Add(-1) == 0 {
		s.queue.close()
	}
}

// abort cancels the run; only the first cause is kept. From here on the
// run reports no exit: the exits recorded so far are not a trustworthy minimum.
func (s *search) abort(err error) {
	s.malformed.Store(true)
	s.cancel(err)
}

// result is the (exitFound, shortest) pair published for this run.
func (s *search) result() (bool, float64) {
	found, shortest := s.state.read()
	if s.malformed.Load() {
		return false, NoExit
	}

	return found, shortest
}

func (s *search) aborted() bool {
	return s.ctx.Err() != nil
}

// failure returns the error that aborted the run, once the run has drained.
func (s *search) failure() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()

	return s.err
}

func (s *search) stats() Stats {
	return Stats{
		Scheduled:    s.scheduled.Load(),
		Visited:      s.visited.Load(),
		Pruned:       s.pruned.Load(),
		Improvements: s.improvements.Load(),
	}
}

// report logs, records metrics and closes the span for a drained run.
func (s *search) report() {
	elapsed := time.Since(s.started)
	found, shortest := s.result()
	stats := s.stats()
	err := s.failure()

	s.span.SetAttributes(
		attribute.Bool("exit_found", found),
		attribute.Float64("shortest_distance", shortest),
		attribute.Int64("rooms_visited", stats.Visited),
		attribute.Int64("rooms_pruned", stats.Pruned),
	)
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		s.logger.Error("search aborted",
			slog.String("error", err.Error()),
			slog.Int64("rooms_visited", stats.Visited),
			slog.Duration("elapsed", elapsed),
		)
	} else {
		s.span.SetStatus(codes.Ok, "")
		s.logger.Info("search finished",
			slog.Bool("exit_found", found),
			slog.Float64("shortest_distance", shortest),
			slog.Int64("rooms_visited", stats.Visited),
			slog.Int64("rooms_pruned", stats.Pruned),
			slog.Duration("elapsed", elapsed),
		)
	}
	s.inst.record(s.spanCtx, s.workers, stats, elapsed, err != nil)
	s.span.End()
}
