// Package config loads the settings of the labyrinth CLI and harness.
//
// Values are resolved in priority order: environment, YAML file, defaults.
// The result is validated with go-playground/validator struct tags; any
// violation is reported as ErrInvalidConfig.
//
// Environment variables:
//
//	LABYRINTH_LABYRINTH          search.labyrinth (manual, trial, random)
//	LABYRINTH_WORKERS            search.workers
//	LABYRINTH_BENCH_WORKERS      harness.workers, comma separated
//	LABYRINTH_REPEATS            harness.repeats
//	LABYRINTH_TIMEOUT            search.timeout and harness.timeout
//	LABYRINTH_SEED               search.seed
//	LABYRINTH_LOG_LEVEL          log.level
//	LABYRINTH_LOG_FORMAT         log.format (auto, text, json)
//	OTEL_TRACES_EXPORTER         telemetry.trace_exporter
//	OTEL_METRICS_EXPORTER        telemetry.metric_exporter
//	OTEL_EXPORTER_OTLP_ENDPOINT  telemetry.otlp_endpoint
//
// Malformed numeric or duration values in the environment are ignored and
// the lower-priority value is kept.
package config
