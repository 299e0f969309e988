package pathfinder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "labyrinth.pathfinder"

// instruments are the per-run metrics, bound to one MeterProvider.
type instruments struct {
	runsTotal    metric.Int64Counter
	roomsVisited metric.Int64Counter
	roomsPruned  metric.Int64Counter
	runDuration  metric.Float64Histogram
}

var (
	instrumentsMu       sync.Mutex
	instrumentsProvider metric.MeterProvider
	cachedInstruments   *instruments
)

// tracer is looked up per run so a TracerProvider installed later is used.
func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// currentInstruments returns instruments bound to the global MeterProvider.
// They are created on first use and again whenever a different provider has
// been installed since. Creation failures are logged; a run never fails
// because of metrics.
func currentInstruments(logger *slog.Logger) *instruments {
	provider := otel.GetMeterProvider()

	instrumentsMu.Lock()
	defer instrumentsMu.Unlock()
	if cachedInstruments != nil && instrumentsProvider == provider {
		return cachedInstruments
	}

	meter := provider.Meter(instrumentationName)
	inst := &instruments{}
	var initErrors []string
	var err error

	inst.runsTotal, err = meter.Int64Counter("pathfinder_runs_total",
		metric.WithDescription("Number of completed searches by outcome"),
	)
	if err != nil {
		initErrors = append(initErrors, "runs_total: "+err.Error())
	}

	inst.roomsVisited, err = meter.Int64Counter("pathfinder_rooms_visited_total",
		metric.WithDescription("Rooms that passed admission"),
	)
	if err != nil {
		initErrors = append(initErrors, "rooms_visited: "+err.Error())
	}

	inst.roomsPruned, err = meter.Int64Counter("pathfinder_rooms_pruned_total",
		metric.WithDescription("Rooms discarded or left unexpanded by the bound"),
	)
	if err != nil {
		initErrors = append(initErrors, "rooms_pruned: "+err.Error())
	}

	inst.runDuration, err = meter.Float64Histogram("pathfinder_run_duration_seconds",
		metric.WithDescription("Wall time from Run to completion"),
		metric.WithUnit("s"),
	)
	if err != nil {
		initErrors = append(initErrors, "run_duration: "+err.Error())
	}

	if len(initErrors) > 0 {
		logger.Error("failed to initialize some pathfinder metrics (observability degraded)",
			slog.Int("failed_count", len(initErrors)),
			slog.Any("errors", initErrors),
		)
	}

	instrumentsProvider = provider
	cachedInstruments = inst

	return inst
}

// record publishes the totals of one finished run.
func (m *instruments) record(ctx context.Context, workers int, stats Stats, elapsed time.Duration, failed bool) {
	outcome := "ok"
	if failed {
		outcome = "aborted"
	}
	attrs := metric.WithAttributes(
		attribute.Int("workers", workers),
		attribute.String("outcome", outcome),
	)
	if m.runsTotal != nil {
		m.runsTotal.Add(ctx, 1, attrs)
	}
	if m.roomsVisited != nil {
		m.roomsVisited.Add(ctx, stats.Visited, attrs)
	}
	if m.roomsPruned != nil {
		m.roomsPruned.Add(ctx, stats.Pruned, attrs)
	}
	if m.runDuration != nil {
		m.runDuration.Record(ctx, elapsed.Seconds(), attrs)
	}
}
