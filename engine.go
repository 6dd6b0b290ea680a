// engine.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements MoveEngine, the top-level entry point that
// wires move generation, scoring, leave evaluation and simulation
// into the request/response shape the rest of the package exposes:
// board + rack + top-N in, a ranked list of scored moves out.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package crossplay

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Options controls how far FindBestMoves carries a request beyond raw
// generation: whether to score each candidate's leave, and how many
// Monte-Carlo trials (if any) to run per candidate before the final
// ranking.
type Options struct {
	// UseLeaveEval scores each candidate's post-move rack into
	// LeaveScore and adds it to SimEquity once simulation runs. When
	// NSims is 0 LeaveScore is still filled in but does not affect the
	// ranking.
	UseLeaveEval bool
	// NSims is the number of simulation trials per candidate. Zero
	// disables simulation; the engine then ranks by base Score.
	NSims int
	// Seed seeds the master RNG driving simulation, for reproducible
	// results. Meaningless when NSims is 0.
	Seed int64
}

// MoveEngine is the package's top-level facade: a dictionary plus the
// scorer built over it.
type MoveEngine struct {
	dict   *Dictionary
	scorer *Scorer
}

// NewMoveEngine builds an engine around dict. The caller is
// responsible for loading the dictionary before issuing requests;
// dict is not checked here, and a nil dict makes the first
// FindBestMoves call panic.
func NewMoveEngine(dict *Dictionary) *MoveEngine {
	return &MoveEngine{dict: dict, scorer: NewScorer(dict)}
}

// FindBestMoves returns up to topN legal moves for rack on board,
// ranked by simulation equity when opts.NSims > 0, otherwise by raw
// score. Moves are deduplicated by (word, row, col, direction),
// preserving first-seen order before the final sort.
func (e *MoveEngine) FindBestMoves(ctx context.Context, board *Board, rack *Rack, topN int, opts Options) []*Move {
	all := e.scorer.generateAllMoves(board, rack)
	unique := dedupMoves(all)
	rankByScore(unique)

	if len(unique) > topN {
		unique = unique[:topN]
	}

	if opts.UseLeaveEval {
		for _, m := range unique {
			m.LeaveScore = EvaluateLeave(leaveAfter(rack, m))
		}
	}

	if opts.NSims > 0 && len(unique) > 0 {
		unique = e.scorer.evaluateCandidates(ctx, board, unique, rack, opts.NSims, opts.Seed)
	}

	log.Debug().Int("candidates", len(all)).Int("returned", len(unique)).
		Int("top_n", topN).Int("n_sims", opts.NSims).Msg("FindBestMoves")
	return unique
}

// dedupKey identifies a move by its observable placement: the word it
// spells, its start cell, and its direction.
type dedupKey struct {
	word      string
	row, col  int
	direction Direction
}

// dedupMoves removes duplicate moves produced by different generation
// paths that happen to land on the same (word, row, col, direction),
// preserving the order moves were first seen in.
func dedupMoves(moves []*Move) []*Move {
	seen := make(map[dedupKey]bool, len(moves))
	unique := make([]*Move, 0, len(moves))
	for _, m := range moves {
		key := dedupKey{word: m.Word, row: m.Row, col: m.Col, direction: m.Direction}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, m)
	}
	return unique
}
