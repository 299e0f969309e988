// Package telemetry wires the OpenTelemetry SDK for the labyrinth tools.
//
// Packages such as pathfinder only use the global otel.Tracer and otel.Meter;
// until Init installs real providers those are no-ops. Init picks the
// exporters from Config:
//
//   - traces:  "otlp" (gRPC), "stdout" or "none";
//   - metrics: "prometheus" (served by MetricsHandler), "stdout" or "none".
//
// Usage:
//
//	shutdown, err := telemetry.Init(ctx, telemetry.DefaultConfig())
//	if err != nil {
//	    return fmt.Errorf("init telemetry: %w", err)
//	}
//	defer shutdown(context.Background())
//
// LoggerWithTrace adds trace_id and span_id to a slog.Logger so log records
// can be joined with spans.
package telemetry
