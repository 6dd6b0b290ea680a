// move.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Move result object: a scored placement,
// together with the bookkeeping (placements, cross-words, sweep flag,
// blank usage) that the scorer and simulator need downstream.

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

import "fmt"

// Coordinate stores a board position as a (row, col) pair.
type Coordinate struct {
	Row, Col int
}

// Placement records a single tile laid down by a move: the letter
// shown on the board, its coordinate, and whether it was played from
// a blank (in which case it is always worth zero points).
type Placement struct {
	Letter   rune
	Row, Col int
	WasBlank bool
}

// Move is a fully scored candidate: a word placed at an anchor cell
// along one axis, together with every cross-word it formed and the
// score breakdown needed for ranking.
type Move struct {
	Word      string
	Row, Col  int // start cell of the main word
	Direction Direction
	Score     int
	Placements []Placement
	CrossWords []string
	IsSweep    bool

	// LeaveScore is populated by the leave evaluator when the caller
	// opts in; zero otherwise.
	LeaveScore float64
	// SimScore and SimEquity are populated by the simulator when the
	// caller opts in; both remain zero otherwise.
	SimScore  float64
	SimEquity float64
}

// String renders a human-readable summary of the move.
func (m *Move) String() string {
	sweep := ""
	if m.IsSweep {
		sweep = " +SWEEP!"
	}
	arrow := "→"
	if m.Direction == Vertical {
		arrow = "↓"
	}
	return fmt.Sprintf("%s at (%d,%d) %s = %d pts%s", m.Word, m.Row, m.Col, arrow, m.Score, sweep)
}

// Apply commits the move's placements to board, mutating it. Callers
// must only apply moves to a board copy unless they intend the move
// to become part of the live game state.
func (m *Move) Apply(board *Board) {
	for _, p := range m.Placements {
		letter := p.Letter
		if p.WasBlank {
			letter = letter - ('A' - 'a')
		}
		board.Set(p.Row, p.Col, letter)
	}
}
