package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/harness"
	"github.com/katalvlaran/labyrinth/room"
)

func (a *app) searchCmd() *cobra.Command {
	var (
		lf      labyrinthFlags
		workers int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the closest exit of one labyrinth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSearch(cmd)
		},
	}
	lf.register(cmd)
	cmd.Flags().IntVar(&workers, "workers", 0, "number of worker goroutines")
	a.overrides[cmd] = func(cmd *cobra.Command) error {
		lf.apply(cmd, &a.cfg)
		if cmd.Flags().Changed("workers") {
			a.cfg.Search.Workers = workers
		}
		return nil
	}

	return cmd
}

// runSearch is a single harness trial, so timing, the observer deadline and
// the distance check behave exactly as in bench.
func (a *app) runSearch(cmd *cobra.Command) error {
	s := a.cfg.Search
	entrance, expected, err := buildLabyrinth(s)
	if err != nil {
		return err
	}
	a.logger.Info("labyrinth built",
		slog.String("labyrinth", s.Labyrinth),
		slog.Int("rooms", room.Count(entrance)),
		slog.Int("exits", len(room.Exits(entrance))),
	)

	rep, err := harness.Run(cmd.Context(), entrance, []int{s.Workers},
		harness.WithLogger(a.logger),
		harness.WithRepeats(1),
		harness.WithTimeout(s.Timeout),
		harness.WithExpected(expected, a.cfg.Harness.Tolerance),
	)
	if err != nil {
		return err
	}
	tr := rep.Trials[0]

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "labyrinth:  %s\n", s.Labyrinth)
	fmt.Fprintf(out, "workers:    %d\n", tr.Workers)
	fmt.Fprintf(out, "exit found: %t\n", tr.ExitFound)
	if tr.ExitFound {
		fmt.Fprintf(out, "shortest:   %g\n", tr.Shortest)
	}
	fmt.Fprintf(out, "visited:    %d\n", tr.Stats.Visited)
	fmt.Fprintf(out, "pruned:     %d\n", tr.Stats.Pruned)
	fmt.Fprintf(out, "elapsed:    %s\n", tr.Elapsed)
	fmt.Fprintf(out, "run id:     %s\n", tr.RunID)

	return tr.Err
}
