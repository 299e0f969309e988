package harness

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/labyrinth/pathfinder"
	"github.com/katalvlaran/labyrinth/room"
	"github.com/katalvlaran/labyrinth/telemetry"
)

var tracer = otel.Tracer("labyrinth.harness")

// Run executes Repeats trials for every worker count, in the order given,
// and returns every trial. Trial failures are recorded in the report; Run
// itself fails only on invalid input or when ctx is done.
func Run(ctx context.Context, entrance *room.Room, workers []int, opts ...Option) (Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Report{}, o.err
	}
	if len(workers) == 0 {
		return Report{}, ErrNoWorkerCounts
	}
	for _, w := range workers {
		if w < 1 {
			return Report{}, fmt.Errorf("workers=%d: %w", w, pathfinder.ErrInvalidConfiguration)
		}
	}
	if entrance == nil {
		return Report{}, fmt.Errorf("Run: entrance is nil: %w", pathfinder.ErrInvalidArgument)
	}

	var rep Report
	for repeat := 1; repeat <= o.Repeats; repeat++ {
		for _, w := range workers {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			tr, err := runTrial(ctx, entrance, w, repeat, o)
			if err != nil {
				return rep, err
			}
			rep.Trials = append(rep.Trials, tr)
		}
	}

	return rep, nil
}

// runTrial returns an error only for setup failures or ctx cancellation;
// a failed trial is reported through Trial.Err.
func runTrial(ctx context.Context, entrance *room.Room, workers, repeat int, o Options) (Trial, error) {
	ctx, span := tracer.Start(ctx, "harness.Trial", trace.WithAttributes(
		attribute.Int("workers", workers),
		attribute.Int("repeat", repeat),
	))
	defer span.End()
	logger := telemetry.LoggerWithTrace(ctx, o.Logger).With(
		slog.Int("workers", workers),
		slog.Int("repeat", repeat),
	)

	var gauge concurrencyGauge
	pf := pathfinder.New(
		pathfinder.WithLogger(o.Logger),
		pathfinder.WithOnVisit(func(*room.Room, float64) {
			gauge.enter()
			if o.SlowDown > 0 {
				time.Sleep(o.SlowDown)
			}
			gauge.leave()
		}),
	)
	if err := pf.Configure(workers); err != nil {
		return Trial{}, err
	}

	var elapsed atomic.Int64
	start := time.Now()
	pf.RegisterObserver(func() {
		elapsed.Store(int64(time.Since(start)))
	})
	if err := pf.Run(entrance); err != nil {
		return Trial{}, err
	}

	tr := Trial{Workers: workers, Repeat: repeat, RunID: pf.RunID()}
	span.SetAttributes(attribute.String("run_id", tr.RunID))

	deadline, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()
	select {
	case <-pf.Done():
	case <-deadline.Done():
		if err := ctx.Err(); err != nil {
			return Trial{}, err
		}
		tr.Err = fmt.Errorf("run %s after %s: %w", tr.RunID, o.Timeout, ErrTimeout)
		span.SetStatus(codes.Error, tr.Err.Error())
		logger.Warn("trial timed out", slog.String("run_id", tr.RunID), slog.Duration("timeout", o.Timeout))

		return tr, nil
	}

	tr.Elapsed = time.Duration(elapsed.Load())
	tr.ExitFound = pf.ExitFound()
	tr.Shortest = pf.ShortestDistanceToExit()
	tr.PeakConcurrency = gauge.peak()
	tr.Stats = pf.Stats()
	tr.Err = check(pf.Err(), tr, o)

	span.SetAttributes(
		attribute.Int64("elapsed_ms", tr.Elapsed.Milliseconds()),
		attribute.Float64("shortest_distance", tr.Shortest),
		attribute.Int("peak_concurrency", tr.PeakConcurrency),
	)
	if tr.Err != nil {
		span.SetStatus(codes.Error, tr.Err.Error())
		logger.Warn("trial failed", slog.String("run_id", tr.RunID), slog.String("error", tr.Err.Error()))
	} else {
		span.SetStatus(codes.Ok, "")
		logger.Info("trial passed",
			slog.String("run_id", tr.RunID),
			slog.Duration("elapsed", tr.Elapsed),
			slog.Float64("shortest_distance", tr.Shortest),
			slog.Int("peak_concurrency", tr.PeakConcurrency),
		)
	}

	return tr, nil
}

func check(runErr error, tr Trial, o Options) error {
	switch {
	case runErr != nil:
		return runErr
	case tr.PeakConcurrency > tr.Workers:
		return fmt.Errorf("peak %d with %d workers: %w", tr.PeakConcurrency, tr.Workers, ErrConcurrencyExceeded)
	case !math.IsNaN(o.Expected) && !(math.Abs(tr.Shortest-o.Expected) < o.Tolerance):
		return fmt.Errorf("got %g, want %g±%g: %w", tr.Shortest, o.Expected, o.Tolerance, ErrDistanceMismatch)
	}

	return nil
}

// concurrencyGauge tracks how many visits are in progress and the maximum seen.
type concurrencyGauge struct {
	mu     sync.Mutex
	active int
	max    int
}

func (g *concurrencyGauge) enter() {
	g.mu.Lock()
	g.active++
	if g.active > g.max {
		g.max = g.active
	}
	g.mu.Unlock()
}

func (g *concurrencyGauge) leave() {
	g.mu.Lock()
	g.active--
	g.mu.Unlock()
}

func (g *concurrencyGauge) peak() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.max
}
