package telemetry_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/labyrinth/telemetry"
)

func TestDefaultConfig(t *testing.T) {
	cfg := telemetry.DefaultConfig()
	assert.Equal(t, "labyrinth", cfg.ServiceName)
	assert.Equal(t, telemetry.ExporterNone, cfg.TraceExporter)
	assert.Equal(t, telemetry.ExporterNone, cfg.MetricExporter)
	assert.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
}

func TestInit_NilContext(t *testing.T) {
	//nolint:staticcheck // nil context is the case under test
	_, err := telemetry.Init(nil, telemetry.DefaultConfig())
	require.ErrorIs(t, err, telemetry.ErrNilContext)
}

func TestInit_None(t *testing.T) {
	shutdown, err := telemetry.Init(context.Background(), telemetry.DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_UnknownExporter(t *testing.T) {
	cfg := telemetry.DefaultConfig()
	cfg.TraceExporter = "zipkin"
	_, err := telemetry.Init(context.Background(), cfg)
	require.ErrorIs(t, err, telemetry.ErrUnknownExporter)

	cfg = telemetry.DefaultConfig()
	cfg.MetricExporter = "statsd"
	_, err = telemetry.Init(context.Background(), cfg)
	require.ErrorIs(t, err, telemetry.ErrUnknownExporter)
}

func TestInit_StdoutTraces(t *testing.T) {
	cfg := telemetry.DefaultConfig()
	cfg.TraceExporter = telemetry.ExporterStdout

	shutdown, err := telemetry.Init(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	_, span := otel.Tracer("telemetry_test").Start(context.Background(), "probe")
	assert.True(t, span.SpanContext().IsValid())
	span.End()
}

func TestInit_OTLPDoesNotDial(t *testing.T) {
	cfg := telemetry.DefaultConfig()
	cfg.TraceExporter = telemetry.ExporterOTLP
	cfg.OTLPEndpoint = "127.0.0.1:1"

	shutdown, err := telemetry.Init(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

func TestInit_PrometheusHandler(t *testing.T) {
	cfg := telemetry.DefaultConfig()
	cfg.MetricExporter = telemetry.ExporterPrometheus

	shutdown, err := telemetry.Init(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	counter, err := otel.Meter("telemetry_test").Int64Counter("probe_events")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	handler := telemetry.MetricsHandler()
	require.NotNil(t, handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "probe_events")
}

func TestLoggerWithTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	telemetry.LoggerWithTrace(context.Background(), logger).Info("plain")
	assert.NotContains(t, buf.String(), "trace_id")
	assert.NotNil(t, telemetry.LoggerWithTrace(context.Background(), nil))

	traceID := trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	spanID := trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	buf.Reset()
	telemetry.LoggerWithTrace(ctx, logger).Info("traced")
	assert.Contains(t, buf.String(), traceID.String())
	assert.Contains(t, buf.String(), spanID.String())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	telemetry.NewLogger(&buf, slog.LevelWarn, true).Info("hidden")
	assert.Empty(t, buf.String())

	telemetry.NewLogger(&buf, slog.LevelDebug, true).Debug("shown", slog.Int("workers", 3))
	assert.Contains(t, buf.String(), `"workers":3`)

	buf.Reset()
	telemetry.NewLogger(&buf, slog.LevelInfo, false).Info("text")
	assert.Contains(t, buf.String(), "msg=text")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tc := range tests {
		got, ok := telemetry.ParseLevel(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
