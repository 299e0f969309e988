package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/harness"
)

func (a *app) benchCmd() *cobra.Command {
	var (
		lf       labyrinthFlags
		workers  string
		repeats  int
		slowDown time.Duration
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated searches across worker counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd, slowDown)
		},
	}
	lf.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&workers, "workers", "", "comma separated worker counts, e.g. 2,3,4,5")
	fs.IntVar(&repeats, "repeats", 0, "trials per worker count")
	fs.DurationVar(&slowDown, "slowdown", 0, "delay added to every room visit")
	a.overrides[cmd] = func(cmd *cobra.Command) error {
		lf.apply(cmd, &a.cfg)
		fs := cmd.Flags()
		if fs.Changed("workers") {
			list, err := config.ParseWorkers(workers)
			if err != nil {
				return err
			}
			a.cfg.Harness.Workers = list
		}
		if fs.Changed("repeats") {
			a.cfg.Harness.Repeats = repeats
		}
		return nil
	}

	return cmd
}

func (a *app) runBench(cmd *cobra.Command, slowDown time.Duration) error {
	h := a.cfg.Harness
	entrance, expected, err := buildLabyrinth(a.cfg.Search)
	if err != nil {
		return err
	}

	rep, err := harness.Run(cmd.Context(), entrance, h.Workers,
		harness.WithLogger(a.logger),
		harness.WithRepeats(h.Repeats),
		harness.WithTimeout(h.Timeout),
		harness.WithExpected(expected, h.Tolerance),
		harness.WithSlowDown(slowDown),
	)
	if err != nil {
		return err
	}
	if _, err = rep.WriteTo(cmd.OutOrStdout()); err != nil {
		return err
	}
	if failed := rep.Failures(); len(failed) > 0 {
		return fmt.Errorf("%d of %d trials failed: %w", len(failed), len(rep.Trials), failed[0].Err)
	}

	return nil
}
