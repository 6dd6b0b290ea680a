// simulate.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements Monte Carlo simulation of a candidate move's
// equity: play the move on a board copy, draw a plausible opponent
// rack from the unseen tile pool, let the opponent find their best
// one-ply response (without leave evaluation), and average that
// response's score across many trials. Simulation equity is the
// move's own score minus that average, plus the move's leave score.

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
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// simulateMove runs nSims Monte Carlo trials for a single candidate
// move and returns the score part of its simulation equity: move.Score
// minus the average of the opponent's best one-ply response across all
// trials.
// Per-trial randomness is derived from rng on the calling goroutine
// before any trial runs concurrently, so the result is identical
// regardless of how the worker goroutines are scheduled.
// simulateMove returns the unrounded score-minus-average-opponent-
// response term; the caller adds the leave score and rounds once, per
// the spec's single round(score - avg_opp + leave_score, 1) formula.
func (s *Scorer) simulateMove(ctx context.Context, board *Board, move *Move, myRack *Rack, nSims int, rng *rand.Rand) float64 {
	simBoard := board.Copy()
	move.Apply(simBoard)

	rackAfter := myRack.Clone()
	for _, p := range move.Placements {
		if p.WasBlank {
			rackAfter.Remove(Blank)
		} else {
			rackAfter.Remove(p.Letter)
		}
	}

	unseen := Flatten(UnseenPool(simBoard, rackAfter))
	if len(unseen) == 0 {
		return float64(move.Score)
	}

	trialSeeds := make([]int64, nSims)
	for i := range trialSeeds {
		trialSeeds[i] = rng.Int63()
	}

	scores := make([]float64, nSims)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < nSims; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			trialRNG := rand.New(rand.NewSource(trialSeeds[i]))
			opp := drawRack(unseen, trialRNG)
			oppMoves := s.generateAllMoves(simBoard, opp)
			best := rankByScore(oppMoves)
			if len(best) > 0 {
				scores[i] = float64(best[0].Score)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Debug().Err(err).Str("word", move.Word).Msg("simulation cancelled")
	}

	total := 0.0
	for _, sc := range scores {
		total += sc
	}
	avgOpp := total / float64(nSims)

	equity := float64(move.Score) - avgOpp
	log.Debug().Str("word", move.Word).Int("score", move.Score).
		Float64("avg_opp", avgOpp).Float64("equity", equity).Int("trials", nSims).
		Msg("simulateMove")
	return equity
}

// drawRack samples min(RackSize, len(unseen)) tiles without
// replacement from the flattened unseen pool.
func drawRack(unseen []rune, rng *rand.Rand) *Rack {
	n := RackSize
	if n > len(unseen) {
		n = len(unseen)
	}
	perm := rng.Perm(len(unseen))
	rack := &Rack{Counts: make(map[rune]int)}
	for i := 0; i < n; i++ {
		rack.Add(unseen[perm[i]])
	}
	return rack
}

// evaluateCandidates populates SimScore and SimEquity on each
// candidate by simulation, then returns them sorted by SimEquity
// descending.
func (s *Scorer) evaluateCandidates(ctx context.Context, board *Board, candidates []*Move, myRack *Rack, nSims int, seed int64) []*Move {
	rng := rand.New(rand.NewSource(seed))
	for _, move := range candidates {
		eq := s.simulateMove(ctx, board, move, myRack, nSims, rng)
		move.SimScore = round1(eq)
		move.SimEquity = round1(eq + move.LeaveScore)
	}
	rankBySimEquity(candidates)
	return candidates
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
