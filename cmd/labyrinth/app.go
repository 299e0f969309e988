package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/telemetry"
)

const shutdownTimeout = 5 * time.Second

// app carries the state shared by every subcommand of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath     string
	logLevel       string
	logJSON        bool
	traceExporter  string
	metricExporter string
	metricsAddr    string

	cfg    config.Config
	logger *slog.Logger

	// overrides applies a subcommand's own flags over cfg.
	overrides map[*cobra.Command]func(*cobra.Command) error

	cleanups []func(context.Context) error
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		logger:    slog.Default(),
		overrides: make(map[*cobra.Command]func(*cobra.Command) error),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "labyrinth",
		Short:         "Concurrent closest-exit search over tree labyrinths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "log as JSON (default: JSON unless stderr is a terminal)")
	pf.StringVar(&a.traceExporter, "trace-exporter", "", "trace exporter: otlp, stdout, none")
	pf.StringVar(&a.metricExporter, "metric-exporter", "", "metric exporter: prometheus, stdout, none")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "serve /metrics on this address (prometheus exporter)")

	root.AddCommand(a.searchCmd(), a.benchCmd(), a.versionCmd())
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	return root
}

// setup resolves configuration, the logger, telemetry and the metrics endpoint.
// Flags override every other source.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.Format = "text"
		if a.logJSON {
			cfg.Log.Format = "json"
		}
	}
	if flags.Changed("trace-exporter") {
		cfg.Telemetry.TraceExporter = a.traceExporter
	}
	if flags.Changed("metric-exporter") {
		cfg.Telemetry.MetricExporter = a.metricExporter
	}
	if a.metricsAddr != "" && !flags.Changed("metric-exporter") {
		cfg.Telemetry.MetricExporter = telemetry.ExporterPrometheus
	}
	cfg.Telemetry.ServiceVersion = version
	a.cfg = cfg
	if override, ok := a.overrides[cmd]; ok {
		if err = override(cmd); err != nil {
			return err
		}
	}
	if err = a.cfg.Validate(); err != nil {
		return err
	}

	level, _ := telemetry.ParseLevel(a.cfg.Log.Level)
	a.logger = telemetry.NewLogger(a.stderr, level, a.jsonLogs())

	shutdown, err := telemetry.Init(cmd.Context(), a.cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	a.cleanups = append(a.cleanups, shutdown)

	if a.metricsAddr != "" {
		return a.serveMetrics()
	}

	return nil
}

func (a *app) jsonLogs() bool {
	switch a.cfg.Log.Format {
	case "json":
		return true
	case "text":
		return false
	}
	f, ok := a.stderr.(*os.File)
	if !ok {
		return true
	}

	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) serveMetrics() error {
	handler := telemetry.MetricsHandler()
	if a.cfg.Telemetry.MetricExporter != telemetry.ExporterPrometheus || handler == nil {
		return fmt.Errorf("--metrics-addr needs the prometheus metric exporter, got %q", a.cfg.Telemetry.MetricExporter)
	}

	ln, err := net.Listen("tcp", a.metricsAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.metricsAddr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", slog.String("error", err.Error()))
		}
	}()
	a.logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))
	a.cleanups = append(a.cleanups, srv.Shutdown)

	return nil
}

// close runs cleanups in reverse order of registration.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		if err := a.cleanups[i](ctx); err != nil {
			a.logger.Warn("shutdown", slog.String("error", err.Error()))
		}
	}
	a.cleanups = nil
}
