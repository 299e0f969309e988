package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
)

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "labyrinth dev\n", out)
}

func TestSearch_Trial(t *testing.T) {
	out, logs, err := execute(t, "search", "--labyrinth", "trial", "--workers", "3", "--log-json")
	require.NoError(t, err)
	assert.Contains(t, out, "exit found: true")
	assert.Contains(t, out, "shortest:   14\n")
	assert.Contains(t, out, "workers:    3\n")
	assert.Contains(t, logs, `"msg":"labyrinth built"`)
	assert.Contains(t, logs, `"rooms":16`)
}

func TestSearch_Manual_TextLogs(t *testing.T) {
	out, logs, err := execute(t, "search", "--labyrinth", "manual", "--workers", "2", "--log-json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "shortest:   3\n")
	assert.Contains(t, logs, "msg=\"labyrinth built\"")
}

func TestSearch_Random(t *testing.T) {
	out, _, err := execute(t, "search", "--labyrinth", "random",
		"--exits", "3", "--shortest", "7", "--rooms", "500", "--seed", "2", "--workers", "4",
		"--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "shortest:   7\n")
}

func TestSearch_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labyrinth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  labyrinth: manual\n  workers: 5\nlog:\n  level: error\n"), 0o600))

	out, _, err := execute(t, "search", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "labyrinth:  manual\n")
	assert.Contains(t, out, "workers:    5\n")

	out, _, err = execute(t, "search", "--config", path, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "workers:    2\n", "flags override the file")
}

func TestSearch_MetricsEndpoint(t *testing.T) {
	out, _, err := execute(t, "search", "--metrics-addr", "127.0.0.1:0", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "shortest:   14\n")
}

func TestBench(t *testing.T) {
	out, _, err := execute(t, "bench", "--labyrinth", "manual", "--workers", "2,3", "--repeats", "2", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "WORKERS")
	assert.Contains(t, out, "MEAN")
	assert.NotContains(t, out, "harness:")
}

func TestCLI_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"zero workers", []string{"search", "--workers", "0"}, config.ErrInvalidConfig},
		{"unknown labyrinth", []string{"search", "--labyrinth", "maze"}, config.ErrInvalidConfig},
		{"unknown exporter", []string{"search", "--trace-exporter", "zipkin"}, config.ErrInvalidConfig},
		{"bench worker list", []string{"bench", "--workers", " , "}, config.ErrInvalidConfig},
		{"missing config", []string{"search", "--config", filepath.Join(t.TempDir(), "none.yaml")}, os.ErrNotExist},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.ErrorIs(t, err, tc.is)
		})
	}

	_, _, err := execute(t, "bench", "--workers", "2,x")
	require.Error(t, err)
	_, _, err = execute(t, "dance")
	require.Error(t, err)
	_, _, err = execute(t, "search", "--metrics-addr", "127.0.0.1:0", "--metric-exporter", "stdout")
	require.Error(t, err)
}
