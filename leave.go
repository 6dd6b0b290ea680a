// leave.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements leave evaluation: a heuristic score for the
// tiles remaining on a rack after a move, combining per-tile
// desirability, vowel/consonant balance, duplicate penalties, synergy
// bonuses for common combos, and a Q-without-U penalty.

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

import "math"

var vowels = map[rune]bool{'A': true, 'E': true, 'I': true, 'O': true, 'U': true}

// EvaluateLeave returns a heuristic value, in points, for the tiles
// remaining on a rack after a move; higher is a better strategic
// position. An empty leave (a sweep) scores 0: using every tile is
// neither penalized nor rewarded here.
func EvaluateLeave(leave []rune) float64 {
	if len(leave) == 0 {
		return 0
	}

	score := 0.0
	for _, t := range leave {
		score += leaveDesirability[t]
	}

	score += balancePenalty(leave)
	score += duplicatePenalty(leave)
	score += synergyBonus(leave)
	score += qWithoutU(leave)

	return math.Round(score*10) / 10
}

// balancePenalty penalizes a vowel ratio far from the ideal 40%.
func balancePenalty(leave []rune) float64 {
	n := float64(len(leave))
	vowelCount := 0
	for _, t := range leave {
		if vowels[t] {
			vowelCount++
		}
	}
	ratio := float64(vowelCount) / n
	deviation := ratio - 0.40
	return -15.0 * deviation * deviation * n
}

// duplicatePenalty penalizes holding 2+ copies of a non-blank tile.
func duplicatePenalty(leave []rune) float64 {
	counts := make(map[rune]int)
	for _, t := range leave {
		counts[t]++
	}
	penalty := 0.0
	for tile, cnt := range counts {
		if tile == Blank {
			continue
		}
		if cnt >= 2 {
			penalty -= 3.0 * float64(cnt-1)
		}
		if cnt >= 3 {
			penalty -= 4.0
		}
	}
	return penalty
}

// synergyBonus rewards a leave whose letter set contains a known
// useful pair or triple combo.
func synergyBonus(leave []rune) float64 {
	set := make(map[rune]bool, len(leave))
	for _, t := range leave {
		set[t] = true
	}
	bonus := 0.0
	for combo, val := range synergyPairs {
		if set[combo[0]] && set[combo[1]] {
			bonus += val
		}
	}
	for combo, val := range synergyTriples {
		if set[combo[0]] && set[combo[1]] && set[combo[2]] {
			bonus += val
		}
	}
	return bonus
}

// qWithoutU penalizes holding a Q with no U to pair it with.
func qWithoutU(leave []rune) float64 {
	hasQ, hasU := false, false
	for _, t := range leave {
		if t == 'Q' {
			hasQ = true
		}
		if t == 'U' {
			hasU = true
		}
	}
	if hasQ && !hasU {
		return -8.0
	}
	return 0
}

// leaveAfter returns the rack's tiles that remain once move's
// placements are removed, as a rune slice suitable for EvaluateLeave.
func leaveAfter(rack *Rack, move *Move) []rune {
	remaining := rack.Clone()
	for _, p := range move.Placements {
		if p.WasBlank {
			remaining.Remove(Blank)
		} else {
			remaining.Remove(p.Letter)
		}
	}
	return remaining.AsRunes()
}
