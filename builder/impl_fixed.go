// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_fixed.go - hand-built fixtures Manual() and Trial().
//
// Both start with an entrance and three rooms at distance 1. Room IDs are
// firstID + the index used in the tables below.

package builder

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/room"
)

const (
	methodManual = "Manual"
	methodTrial  = "Trial"
)

// Closest exit distances of the fixed labyrinths.
const (
	ManualShortest = 3.0
	TrialShortest  = 14.0
)

// fixtureRoom describes one room of a fixed table.
type fixtureRoom struct {
	exit     bool
	distance float64
}

// fixtureEdge is a corridor between two table indices.
type fixtureEdge struct{ from, to int }

// manualRooms: closest exit is room 8 at distance 3 (0→2→5→8).
var manualRooms = []fixtureRoom{
	{false, 0}, {false, 1}, {false, 1}, {false, 1}, {false, 2}, {false, 2},
	{false, 3}, {false, 3}, {true, 3}, {false, 4}, {false, 4}, {true, 5},
	{false, 5}, {false, 6}, {true, 4}, {true, 7}, {true, 8},
}

var manualEdges = []fixtureEdge{
	{0, 1}, {0, 2}, {0, 3},
	{1, 14}, {1, 4},
	{2, 5}, {2, 6},
	{3, 11},
	{4, 9}, {4, 10}, {4, 12},
	{5, 7}, {5, 8},
	{12, 13}, {9, 15}, {12, 16},
}

// trialRooms: closest exit is room 12 at distance 14 (0→1→4→7→12).
//
//	0 ─┬─ 1(1) ── 4(5) ── 7(9) ─┬─ 12(14)*
//	   │                        └─ 10(12) ── 13(20)*
//	   ├─ 2(1) ── 5(4) ── 8(8) ── 11(13) ── 14(17)*
//	   └─ 3(1) ── 6(6) ─┬─ 15(15)*
//	                    └─ 9(10)
var trialRooms = []fixtureRoom{
	{false, 0},
	{false, 1}, {false, 1}, {false, 1},
	{false, 5}, {false, 4}, {false, 6},
	{false, 9}, {false, 8}, {false, 10},
	{false, 12}, {false, 13},
	{true, 14}, {true, 20}, {true, 17}, {true, 15},
}

var trialEdges = []fixtureEdge{
	{0, 1}, {0, 2}, {0, 3},
	{1, 4}, {2, 5}, {3, 6},
	{4, 7}, {5, 8}, {6, 15}, {6, 9},
	{7, 12}, {7, 10}, {8, 11},
	{10, 13}, {11, 14},
}

// Manual returns the 17-room hand-built labyrinth; closest exit at 3.
func Manual() Constructor {
	return func(cfg builderConfig) (*room.Room, error) {
		return fromTable(methodManual, cfg, manualRooms, manualEdges)
	}
}

// Trial returns the 16-room labyrinth used by the timing harness; closest exit at 14.
func Trial() Constructor {
	return func(cfg builderConfig) (*room.Room, error) {
		return fromTable(methodTrial, cfg, trialRooms, trialEdges)
	}
}

// fromTable materializes rooms and corridors; index 0 is the entrance.
func fromTable(method string, cfg builderConfig, rooms []fixtureRoom, edges []fixtureEdge) (*room.Room, error) {
	built := make([]*room.Room, len(rooms))
	for i, fr := range rooms {
		built[i] = room.New(cfg.firstID+i, fr.exit, fr.distance)
	}
	for _, e := range edges {
		if err := link(method, built[e.from], built[e.to]); err != nil {
			return nil, fmt.Errorf("%s: corridor %d→%d: %w", method, e.from, e.to, err)
		}
	}

	return built[0], nil
}
