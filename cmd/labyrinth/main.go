// Command labyrinth searches generated labyrinths for the closest exit and
// benchmarks the search across worker counts.
//
//	labyrinth search --labyrinth trial --workers 4
//	labyrinth search --labyrinth random --exits 5 --shortest 10 --rooms 100000 --seed 7
//	labyrinth bench --workers 2,3,4,5 --repeats 3
//	labyrinth version
//
// Settings come from flags, then the environment, then --config, then
// defaults; see package config.
package main

import (
	"fmt"
	"io"
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run executes the CLI and releases telemetry and the metrics server
// whatever the command outcome.
func run(args []string, stdout, stderr io.Writer) error {
	a := newApp(stdout, stderr)
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)

	return root.Execute()
}
