// scorer.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements cross-word validation and score arithmetic: once
// a candidate word completes at a trie-terminal node, validateAndScore
// checks every freshly-placed letter's perpendicular cross-word against
// the dictionary and totals up the main word's and every cross-word's
// score, including bonus-square multipliers and the sweep bonus.

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
	lru "github.com/hashicorp/golang-lru"
)

// crossWordCacheSize bounds the cross-word validity cache; a single
// generation pass can re-derive the same cross-word from many
// candidate main-word placements that share a prefix, so memoizing
// dictionary lookups pays for itself quickly.
const crossWordCacheSize = 4096

// Scorer ties a dictionary to the move generator and the cross-word
// validity cache. The cache lives as long as the Scorer, so it is
// shared by every FindBestMoves call of the engine that owns it.
type Scorer struct {
	dict       *Dictionary
	crossCache *lru.Cache
}

// NewScorer builds a Scorer backed by dict.
func NewScorer(dict *Dictionary) *Scorer {
	cache, err := lru.New(crossWordCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// crossWordCacheSize never is.
		panic(err)
	}
	return &Scorer{dict: dict, crossCache: cache}
}

// isValidCached checks dictionary membership through the cross-word
// cache, so a repeated cross-word is answered from the cache instead
// of the dictionary's word set.
func (s *Scorer) isValidCached(word string) bool {
	if v, ok := s.crossCache.Get(word); ok {
		return v.(bool)
	}
	ok := s.dict.IsValid(word)
	s.crossCache.Add(word, ok)
	return ok
}

// validateAndScore checks every cross-word formed by a completed
// placement and, if all are valid, computes the move's total score.
// fixed holds the pre-existing board letter at each position of the
// word (0 if that position is empty and was filled from placed).
func (s *Scorer) validateAndScore(board *Board, word string, startRow, startCol int, dir Direction, fixed []rune, placed []fillSlot) *Move {
	dr, dc := dir.delta()
	crossDr, crossDc := dc, dr

	placedAt := make(map[[2]int]fillSlot, len(placed))
	for _, p := range placed {
		placedAt[[2]int{p.row, p.col}] = p
	}

	mainScore := 0
	wordMult := 1
	totalCross := 0
	var crossWords []string

	wordRunes := []rune(word)
	for i, letter := range wordRunes {
		row := startRow + i*dr
		col := startCol + i*dc

		isBlank := board.IsBlankCell(row, col)
		slot, isNew := placedAt[[2]int{row, col}]
		if isNew {
			isBlank = slot.isBlank
		}
		letterVal := 0
		if !isBlank {
			letterVal = TileValues[letter]
		}

		if isNew {
			bonus := BonusAt(row, col)
			lm := 1
			switch bonus {
			case DoubleLetter:
				lm = 2
			case TripleLetter:
				lm = 3
			case DoubleWord, Star:
				wordMult *= 2
			case TripleWord:
				wordMult *= 3
			}
			mainScore += letterVal * lm

			cw, cs, ok := s.crossWord(board, row, col, letter, crossDr, crossDc, bonus, isBlank)
			if !ok {
				return nil
			}
			if cw != "" {
				crossWords = append(crossWords, cw)
				totalCross += cs
			}
		} else {
			mainScore += letterVal
		}
	}

	mainScore *= wordMult
	totalScore := mainScore + totalCross

	isSweep := len(placed) == RackSize
	if isSweep {
		totalScore += SweepBonus
	}

	placements := make([]Placement, len(placed))
	for i, p := range placed {
		placements[i] = Placement{Letter: p.letter, Row: p.row, Col: p.col, WasBlank: p.isBlank}
	}

	return &Move{
		Word:       word,
		Row:        startRow,
		Col:        startCol,
		Direction:  dir,
		Score:      totalScore,
		Placements: placements,
		CrossWords: crossWords,
		IsSweep:    isSweep,
	}
}

// crossWord builds the perpendicular word formed at (row, col) by a
// freshly-placed letter and scores it. It returns ok=false if a
// cross-word was formed but is not a dictionary entry.
func (s *Scorer) crossWord(board *Board, row, col int, placedLetter rune, crossDr, crossDc int, bonus Bonus, isBlank bool) (word string, score int, ok bool) {
	var beforeRunes, beforeRaw []rune
	nr, nc := row-crossDr, col-crossDc
	for inBounds(nr, nc) && board.IsOccupied(nr, nc) {
		beforeRaw = append(beforeRaw, board.Get(nr, nc))
		nr -= crossDr
		nc -= crossDc
	}
	for i, j := 0, len(beforeRaw)-1; i < j; i, j = i+1, j-1 {
		beforeRaw[i], beforeRaw[j] = beforeRaw[j], beforeRaw[i]
	}
	for _, ch := range beforeRaw {
		beforeRunes = append(beforeRunes, upperRune(ch))
	}

	var afterRaw []rune
	nr, nc = row+crossDr, col+crossDc
	for inBounds(nr, nc) && board.IsOccupied(nr, nc) {
		afterRaw = append(afterRaw, board.Get(nr, nc))
		nr += crossDr
		nc += crossDc
	}

	if len(beforeRaw) == 0 && len(afterRaw) == 0 {
		return "", 0, true
	}

	var sb []rune
	sb = append(sb, beforeRunes...)
	sb = append(sb, placedLetter)
	for _, ch := range afterRaw {
		sb = append(sb, upperRune(ch))
	}
	crossWord := string(sb)

	if !s.isValidCached(crossWord) {
		return "", 0, false
	}

	score = sumRawValues(beforeRaw)

	letterVal := 0
	if !isBlank {
		letterVal = TileValues[placedLetter]
	}
	cwMult := 1
	switch bonus {
	case DoubleLetter:
		score += letterVal * 2
	case TripleLetter:
		score += letterVal * 3
	default:
		score += letterVal
	}
	switch bonus {
	case DoubleWord, Star:
		cwMult = 2
	case TripleWord:
		cwMult = 3
	}

	score += sumRawValues(afterRaw)
	score *= cwMult

	return crossWord, score, true
}

// sumRawValues totals the point value of a run of raw board cells,
// where a lowercase cell (a blank played as that letter) is worth 0.
func sumRawValues(raw []rune) int {
	total := 0
	for _, ch := range raw {
		if ch >= 'a' && ch <= 'z' {
			continue
		}
		total += TileValues[ch]
	}
	return total
}

func upperRune(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - ('a' - 'A')
	}
	return ch
}
