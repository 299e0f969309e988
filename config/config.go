package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/telemetry"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Labyrinth kinds understood by the CLI.
const (
	LabyrinthManual = "manual"
	LabyrinthTrial  = "trial"
	LabyrinthRandom = "random"
)

// Config is the full configuration of the CLI.
type Config struct {
	Search    SearchConfig     `yaml:"search"`
	Harness   HarnessConfig    `yaml:"harness"`
	Log       LogConfig        `yaml:"log"`
	Telemetry telemetry.Config `yaml:"telemetry"`
}

// SearchConfig drives a single search.
type SearchConfig struct {
	// Labyrinth selects the fixture: manual, trial or random.
	Labyrinth string `yaml:"labyrinth" validate:"oneof=manual trial random"`
	Workers   int    `yaml:"workers" validate:"gte=1"`

	// Random labyrinth parameters; rooms counts the entrance.
	Exits    int     `yaml:"exits" validate:"gte=1"`
	Shortest float64 `yaml:"shortest" validate:"gt=0"`
	Rooms    int     `yaml:"rooms" validate:"gte=1"`
	Seed     int64   `yaml:"seed"`

	// Timeout bounds the wait for the completion observer.
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

// HarnessConfig drives repeated timing trials.
type HarnessConfig struct {
	Workers []int `yaml:"workers" validate:"min=1,dive,gte=1"`
	Repeats int   `yaml:"repeats" validate:"gte=1"`

	// Timeout bounds each trial's wait for the observer.
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`

	// Tolerance is the accepted gap between found and expected distance.
	Tolerance float64 `yaml:"tolerance" validate:"gte=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// Format is text, json or auto (json unless stderr is a terminal).
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

// Default returns the configuration used when nothing else is given:
// the trial labyrinth searched by four workers, benchmarked over 2..5
// workers three times each.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Labyrinth: LabyrinthTrial,
			Workers:   4,
			Exits:     5,
			Shortest:  10,
			Rooms:     1000,
			Seed:      1,
			Timeout:   5 * time.Second,
		},
		Harness: HarnessConfig{
			Workers:   []int{2, 3, 4, 5},
			Repeats:   3,
			Timeout:   5 * time.Second,
			Tolerance: 0.01,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		Telemetry: telemetry.DefaultConfig(),
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and then with the environment, validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err = decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// decode rejects unknown keys so that typos do not silently fall back to defaults.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every struct tag; the returned error wraps both
// ErrInvalidConfig and the validator.ValidationErrors.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("LABYRINTH_LABYRINTH"); v != "" {
		cfg.Search.Labyrinth = strings.ToLower(v)
	}
	if v := getenv("LABYRINTH_WORKERS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Search.Workers = i
		}
	}
	if v := getenv("LABYRINTH_BENCH_WORKERS"); v != "" {
		if list, err := ParseWorkers(v); err == nil {
			cfg.Harness.Workers = list
		}
	}
	if v := getenv("LABYRINTH_REPEATS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Harness.Repeats = i
		}
	}
	if v := getenv("LABYRINTH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Search.Timeout = d
			cfg.Harness.Timeout = d
		}
	}
	if v := getenv("LABYRINTH_SEED"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Search.Seed = i
		}
	}
	if v := getenv("LABYRINTH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := getenv("LABYRINTH_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := getenv("OTEL_TRACES_EXPORTER"); v != "" {
		cfg.Telemetry.TraceExporter = v
	}
	if v := getenv("OTEL_METRICS_EXPORTER"); v != "" {
		cfg.Telemetry.MetricExporter = v
	}
	if v := getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.Telemetry.OTLPEndpoint = v
	}
}

// ParseWorkers parses a comma separated list of worker counts such as "2,3,4,5".
func ParseWorkers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("worker count %q: %w", p, err)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("worker list %q is empty: %w", s, ErrInvalidConfig)
	}

	return out, nil
}
