// movegen.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains code to generate all valid tile moves
// on a Crossplay board, given a player's rack.

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

/*

The generator is anchor-based, in the spirit of the classic Appel &
Jacobson algorithm, but expressed over a dictionary trie rather than
a DAWG. An anchor is an empty square adjacent to an occupied one (or,
on an empty board, the center square). For each anchor and axis, the
generator works out how far a word could extend to either side given
the tiles already on the board, then walks every candidate length
through a single recursive trie-guided fill that consumes rack tiles
and tries each distinct letter at a given frame only once, even when
the rack holds duplicates or a blank could stand in for it.

*/

package crossplay

import "github.com/rs/zerolog/log"

// generateAllMoves returns every legal move obtainable from rack on
// board, unfiltered and unsorted; FindBestMoves dedups, sorts and
// truncates the result.
func (s *Scorer) generateAllMoves(board *Board, rack *Rack) []*Move {
	if board.IsBoardEmpty() {
		return s.generateFirstMoves(board, rack)
	}
	var moves []*Move
	anchors := findAnchors(board)
	for _, dir := range [...]Direction{Horizontal, Vertical} {
		for _, a := range anchors {
			moves = append(moves, s.generateMovesAtAnchor(board, rack, a.Row, a.Col, dir)...)
		}
	}
	return moves
}

// generateFirstMoves handles the empty-board case: the opening word
// must cross the center square.
func (s *Scorer) generateFirstMoves(board *Board, rack *Rack) []*Move {
	var moves []*Move
	maxLen := rack.Len() + 1
	if maxLen > BoardSize {
		maxLen = BoardSize
	}
	for length := 2; length <= maxLen; length++ {
		lo := Center - length + 1
		if lo < 0 {
			lo = 0
		}
		hi := Center
		if hi > BoardSize-length {
			hi = BoardSize - length
		}
		for sc := lo; sc <= hi; sc++ {
			if sc <= Center && Center < sc+length {
				moves = append(moves, s.tryPlacements(board, rack, Center, sc, Horizontal, length)...)
			}
		}
		for sr := lo; sr <= hi; sr++ {
			if sr <= Center && Center < sr+length {
				moves = append(moves, s.tryPlacements(board, rack, sr, Center, Vertical, length)...)
			}
		}
	}
	return moves
}

// findAnchors returns every empty square adjacent to at least one
// occupied square.
func findAnchors(board *Board) []Coordinate {
	var anchors []Coordinate
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if board.IsOccupied(r, c) {
				continue
			}
			if board.IsOccupied(r-1, c) || board.IsOccupied(r+1, c) ||
				board.IsOccupied(r, c-1) || board.IsOccupied(r, c+1) {
				anchors = append(anchors, Coordinate{Row: r, Col: c})
			}
		}
	}
	return anchors
}

// generateMovesAtAnchor generates the words along dir, of every
// candidate length, that cover the anchor square and start at the
// first cell of the occupied run directly before it (the anchor itself
// when that run is empty). Words whose first cell lies further back
// than that are not generated from this anchor.
func (s *Scorer) generateMovesAtAnchor(board *Board, rack *Rack, anchorRow, anchorCol int, dir Direction) []*Move {
	dr, dc := dir.delta()

	pr, pc := anchorRow-dr, anchorCol-dc
	prefixLen := 0
	for inBounds(pr, pc) && board.IsOccupied(pr, pc) {
		prefixLen++
		pr -= dr
		pc -= dc
	}
	startRow := anchorRow - prefixLen*dr
	startCol := anchorCol - prefixLen*dc

	suffixLen := 0
	sr, sc := anchorRow+dr, anchorCol+dc
	for inBounds(sr, sc) && board.IsOccupied(sr, sc) {
		suffixLen++
		sr += dr
		sc += dc
	}

	var moves []*Move
	maxLength := prefixLen + rack.Len() + suffixLen + 1
	if maxLength > BoardSize {
		maxLength = BoardSize
	}
	for length := 2; length <= maxLength; length++ {
		endRow := startRow + (length-1)*dr
		endCol := startCol + (length-1)*dc
		if endRow >= BoardSize || endCol >= BoardSize {
			break
		}
		anchorIdx := anchorRow - startRow
		if dr == 0 {
			anchorIdx = anchorCol - startCol
		}
		if anchorIdx < 0 || anchorIdx >= length {
			continue
		}
		moves = append(moves, s.tryPlacements(board, rack, startRow, startCol, dir, length)...)
	}
	return moves
}

// fillSlot is a tile about to be placed during the recursive fill:
// its letter, coordinate, and whether it came off a blank.
type fillSlot struct {
	letter   rune
	row, col int
	isBlank  bool
}

// tryPlacements fills a word of the given length starting at
// (startRow, startCol) along dir, walking the trie in lockstep with
// the candidate letters and consuming only rack tiles at empty cells.
func (s *Scorer) tryPlacements(board *Board, rack *Rack, startRow, startCol int, dir Direction, length int) []*Move {
	dr, dc := dir.delta()

	beforeRow, beforeCol := startRow-dr, startCol-dc
	if inBounds(beforeRow, beforeCol) && board.IsOccupied(beforeRow, beforeCol) {
		return nil
	}
	afterRow, afterCol := startRow+length*dr, startCol+length*dc
	if inBounds(afterRow, afterCol) && board.IsOccupied(afterRow, afterCol) {
		return nil
	}

	type pos struct{ row, col int }
	positions := make([]pos, length)
	fixed := make([]rune, length) // 0 means the cell is empty
	for i := 0; i < length; i++ {
		r := startRow + i*dr
		c := startCol + i*dc
		if r >= BoardSize || c >= BoardSize {
			return nil
		}
		positions[i] = pos{r, c}
		fixed[i] = board.Letter(r, c)
	}

	tilesNeeded := 0
	for _, f := range fixed {
		if f == 0 {
			tilesNeeded++
		}
	}
	if tilesNeeded == 0 || tilesNeeded > rack.Len() {
		return nil
	}

	var moves []*Move
	avail := rack.Clone()

	var fill func(idx int, node *TrieNode, placed []fillSlot)
	fill = func(idx int, node *TrieNode, placed []fillSlot) {
		if idx == length {
			if node.Terminal() {
				wordRunes := make([]rune, length)
				p := 0
				for i := 0; i < length; i++ {
					if fixed[i] != 0 {
						wordRunes[i] = fixed[i]
					} else {
						wordRunes[i] = placed[p].letter
						p++
					}
				}
				word := string(wordRunes)
				move := s.validateAndScore(board, word, startRow, startCol, dir, fixed, placed)
				if move != nil {
					moves = append(moves, move)
				}
			}
			return
		}

		r, c := positions[idx].row, positions[idx].col
		if fixed[idx] != 0 {
			child := node.Child(fixed[idx])
			if child != nil {
				fill(idx+1, child, placed)
			}
			return
		}

		// Iterate candidate letters in a fixed A..Z order, not map
		// order: a rack can hold both a real tile and a blank capable
		// of producing the same letter, and the tried-set must prefer
		// a deterministic choice (the real tile, tried first) rather
		// than one that varies with Go's randomized map iteration.
		tried := make(map[rune]bool)
		for letter := 'A'; letter <= 'Z'; letter++ {
			if avail.Counts[letter] == 0 || tried[letter] {
				continue
			}
			child := node.Child(letter)
			if child == nil {
				continue
			}
			tried[letter] = true
			avail.Remove(letter)
			fill(idx+1, child, append(placed, fillSlot{letter: letter, row: r, col: c, isBlank: false}))
			avail.Add(letter)
		}
		if avail.Counts[Blank] > 0 {
			for ch := 'A'; ch <= 'Z'; ch++ {
				if tried[ch] {
					continue
				}
				child := node.Child(ch)
				if child == nil {
					continue
				}
				tried[ch] = true
				avail.Remove(Blank)
				fill(idx+1, child, append(placed, fillSlot{letter: ch, row: r, col: c, isBlank: true}))
				avail.Add(Blank)
			}
		}
	}

	fill(0, s.dict.Trie().Root(), nil)
	log.Debug().Int("row", startRow).Int("col", startCol).Str("dir", dir.String()).
		Int("length", length).Int("found", len(moves)).Msg("tryPlacements")
	return moves
}
