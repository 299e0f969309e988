package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/telemetry"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labyrinth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.LabyrinthTrial, cfg.Search.Labyrinth)
	assert.Equal(t, []int{2, 3, 4, 5}, cfg.Harness.Workers)
	assert.Equal(t, 3, cfg.Harness.Repeats)
	assert.Equal(t, 0.01, cfg.Harness.Tolerance)
	assert.Equal(t, telemetry.ExporterNone, cfg.Telemetry.TraceExporter)
}

func TestLoad_NoPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
search:
  labyrinth: random
  workers: 8
  rooms: 500
  timeout: 2s
harness:
  workers: [1, 2]
log:
  level: debug
  format: json
telemetry:
  trace_exporter: stdout
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.LabyrinthRandom, cfg.Search.Labyrinth)
	assert.Equal(t, 8, cfg.Search.Workers)
	assert.Equal(t, 500, cfg.Search.Rooms)
	assert.Equal(t, 2*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 5, cfg.Search.Exits, "unset keys keep defaults")
	assert.Equal(t, []int{1, 2}, cfg.Harness.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, telemetry.ExporterStdout, cfg.Telemetry.TraceExporter)
	assert.Equal(t, "labyrinth", cfg.Telemetry.ServiceName)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "search:\n  wrokers: 3\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "search: [1, 2\n"))
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "search:\n  workers: 8\n")
	t.Setenv("LABYRINTH_WORKERS", "3")
	t.Setenv("LABYRINTH_BENCH_WORKERS", "1, 4")
	t.Setenv("LABYRINTH_REPEATS", "7")
	t.Setenv("LABYRINTH_TIMEOUT", "750ms")
	t.Setenv("LABYRINTH_LOG_LEVEL", "WARN")
	t.Setenv("OTEL_METRICS_EXPORTER", "prometheus")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Search.Workers)
	assert.Equal(t, []int{1, 4}, cfg.Harness.Workers)
	assert.Equal(t, 7, cfg.Harness.Repeats)
	assert.Equal(t, 750*time.Millisecond, cfg.Search.Timeout)
	assert.Equal(t, 750*time.Millisecond, cfg.Harness.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, telemetry.ExporterPrometheus, cfg.Telemetry.MetricExporter)
	assert.Equal(t, "collector:4317", cfg.Telemetry.OTLPEndpoint)
}

func TestLoad_MalformedEnvIgnored(t *testing.T) {
	t.Setenv("LABYRINTH_WORKERS", "many")
	t.Setenv("LABYRINTH_TIMEOUT", "soon")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default().Search.Workers, cfg.Search.Workers)
	assert.Equal(t, config.Default().Search.Timeout, cfg.Search.Timeout)
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"zero workers", func(c *config.Config) { c.Search.Workers = 0 }, "Workers"},
		{"unknown labyrinth", func(c *config.Config) { c.Search.Labyrinth = "maze" }, "Labyrinth"},
		{"non-positive shortest", func(c *config.Config) { c.Search.Shortest = 0 }, "Shortest"},
		{"empty bench list", func(c *config.Config) { c.Harness.Workers = nil }, "Workers"},
		{"bad bench entry", func(c *config.Config) { c.Harness.Workers = []int{2, 0} }, "Workers[1]"},
		{"zero timeout", func(c *config.Config) { c.Harness.Timeout = 0 }, "Timeout"},
		{"log level", func(c *config.Config) { c.Log.Level = "trace" }, "Level"},
		{"trace exporter", func(c *config.Config) { c.Telemetry.TraceExporter = "jaeger" }, "TraceExporter"},
		{"otlp without endpoint", func(c *config.Config) {
			c.Telemetry.TraceExporter = telemetry.ExporterOTLP
			c.Telemetry.OTLPEndpoint = ""
		}, "OTLPEndpoint"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.NotEmpty(t, verrs)
			assert.Equal(t, tc.field, verrs[0].Field())
		})
	}
}

func TestParseWorkers(t *testing.T) {
	got, err := config.ParseWorkers("2,3, 4,5")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5}, got)

	_, err = config.ParseWorkers("2,x")
	require.Error(t, err)

	_, err = config.ParseWorkers(" , ")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
