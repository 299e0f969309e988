package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/room"
)

// labyrinthFlags are shared by search and bench.
type labyrinthFlags struct {
	kind     string
	exits    int
	shortest float64
	rooms    int
	seed     int64
	timeout  time.Duration
}

func (f *labyrinthFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.kind, "labyrinth", "", "labyrinth to search: manual, trial, random")
	fs.IntVar(&f.exits, "exits", 0, "random labyrinth: number of exits")
	fs.Float64Var(&f.shortest, "shortest", 0, "random labyrinth: distance of the closest exit")
	fs.IntVar(&f.rooms, "rooms", 0, "random labyrinth: number of plain rooms, entrance included")
	fs.Int64Var(&f.seed, "seed", 0, "random labyrinth: RNG seed")
	fs.DurationVar(&f.timeout, "timeout", 0, "deadline for the completion observer")
}

// apply copies explicitly set flags over cfg.
func (f *labyrinthFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("labyrinth") {
		cfg.Search.Labyrinth = f.kind
	}
	if fs.Changed("exits") {
		cfg.Search.Exits = f.exits
	}
	if fs.Changed("shortest") {
		cfg.Search.Shortest = f.shortest
	}
	if fs.Changed("rooms") {
		cfg.Search.Rooms = f.rooms
	}
	if fs.Changed("seed") {
		cfg.Search.Seed = f.seed
	}
	if fs.Changed("timeout") {
		cfg.Search.Timeout = f.timeout
		cfg.Harness.Timeout = f.timeout
	}
}

// buildLabyrinth returns the entrance of the configured labyrinth and the
// distance of its closest exit.
func buildLabyrinth(s config.SearchConfig) (*room.Room, float64, error) {
	var (
		entrance *room.Room
		expected float64
		err      error
	)
	switch s.Labyrinth {
	case config.LabyrinthManual:
		entrance, err = builder.Build(builder.Manual())
		expected = builder.ManualShortest
	case config.LabyrinthTrial:
		entrance, err = builder.Build(builder.Trial())
		expected = builder.TrialShortest
	case config.LabyrinthRandom:
		entrance, err = builder.Build(builder.Random(s.Exits, s.Shortest, s.Rooms), builder.WithSeed(s.Seed))
		expected = s.Shortest
	default:
		return nil, 0, fmt.Errorf("labyrinth %q: %w", s.Labyrinth, config.ErrInvalidConfig)
	}
	if err != nil {
		return nil, 0, err
	}

	return entrance, expected, nil
}
