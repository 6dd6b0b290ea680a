// movegen_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains tests for anchor discovery and move generation.

package crossplay

import "testing"

// TestFirstMovesCoverCenter is spec invariant 2: every first move's
// span must include (7,7).
func TestFirstMovesCoverCenter(t *testing.T) {
	s := newTestScorer()
	board := NewBoard()
	rack, _ := NewRack("HELLO??")
	moves := s.generateFirstMoves(board, rack)
	if len(moves) == 0 {
		t.Fatal("expected at least one first move for rack HELLO??")
	}
	for _, m := range moves {
		dr, dc := m.Direction.delta()
		length := len([]rune(m.Word))
		lastRow := m.Row + (length-1)*dr
		lastCol := m.Col + (length-1)*dc
		coversCenter := (m.Row <= Center && Center <= lastRow) && (m.Col <= Center && Center <= lastCol)
		if !coversCenter {
			t.Errorf("move %v does not cover the center square", m)
		}
	}
}

// TestFindAnchorsAdjacency is spec invariant 1, at the anchor-discovery
// level: an anchor must be empty and orthogonally adjacent to a tile.
func TestFindAnchorsAdjacency(t *testing.T) {
	board := NewBoard()
	board.Set(7, 7, 'A')
	anchors := findAnchors(board)
	if len(anchors) == 0 {
		t.Fatal("expected anchors around a single placed tile")
	}
	want := map[Coordinate]bool{
		{Row: 6, Col: 7}: true, {Row: 8, Col: 7}: true,
		{Row: 7, Col: 6}: true, {Row: 7, Col: 8}: true,
	}
	for _, a := range anchors {
		if !want[a] {
			t.Errorf("unexpected anchor %v", a)
		}
		if board.IsOccupied(a.Row, a.Col) {
			t.Errorf("anchor %v must be an empty cell", a)
		}
	}
	if len(anchors) != len(want) {
		t.Errorf("got %d anchors, want %d", len(anchors), len(want))
	}
}

// TestGeneratedMovesOnlyFillEmptyCells is spec invariant 3: every
// placement lands on a cell that was empty before the move.
func TestGeneratedMovesOnlyFillEmptyCells(t *testing.T) {
	s := newTestScorer()
	board := NewBoard()
	for i, l := range "CAT" {
		board.Set(7, 5+i, l)
	}
	rack, _ := NewRack("SOHEDOG")
	moves := s.generateAllMoves(board, rack)
	for _, m := range moves {
		for _, p := range m.Placements {
			if board.IsOccupied(p.Row, p.Col) {
				t.Errorf("move %v places a tile on an already-occupied cell (%d,%d)", m, p.Row, p.Col)
			}
		}
	}
}

// TestGeneratedMovesAdjacentToExistingTile is spec invariant 1 for
// non-opening moves: at least one placement must neighbor a tile
// already on the board.
func TestGeneratedMovesAdjacentToExistingTile(t *testing.T) {
	s := newTestScorer()
	board := NewBoard()
	for i, l := range "CAT" {
		board.Set(7, 5+i, l)
	}
	rack, _ := NewRack("SOHEDOG")
	moves := s.generateAllMoves(board, rack)
	if len(moves) == 0 {
		t.Fatal("expected at least one follow-on move")
	}
	for _, m := range moves {
		adjacent := false
		for _, p := range m.Placements {
			if board.IsOccupied(p.Row-1, p.Col) || board.IsOccupied(p.Row+1, p.Col) ||
				board.IsOccupied(p.Row, p.Col-1) || board.IsOccupied(p.Row, p.Col+1) {
				adjacent = true
				break
			}
		}
		if !adjacent {
			t.Errorf("move %v has no placement adjacent to an existing tile", m)
		}
	}
}

// TestAllZRackFindsNoMoves is spec scoring scenario 5 at the generator
// level: an all-Z rack against a board with no dictionary entry for any
// Z-led cross-word yields zero moves.
func TestAllZRackFindsNoMoves(t *testing.T) {
	s := newTestScorer()
	board := NewBoard()
	for i, l := range "CAT" {
		board.Set(7, 5+i, l)
	}
	rack, _ := NewRack("ZZZZZZZ")
	moves := s.generateAllMoves(board, rack)
	if len(moves) != 0 {
		t.Errorf("expected no moves for an all-Z rack, got %v", moves)
	}
}

// TestTriedSetDedupesDuplicateRackLetters ensures that a rack holding
// two copies of the same letter (EVEN needs two E's) produces exactly
// one recursion path per candidate word, instead of one per E tile.
func TestTriedSetDedupesDuplicateRackLetters(t *testing.T) {
	s := newTestScorer()
	board := NewBoard()
	rack, _ := NewRack("EEVN")
	moves := s.tryPlacements(board, rack, Center, Center-3, Horizontal, 4)
	var even []*Move
	for _, m := range moves {
		if m.Word == "EVEN" {
			even = append(even, m)
		}
	}
	if len(even) != 1 {
		t.Errorf("expected exactly one EVEN move from a single tryPlacements call, got %d: %v", len(even), even)
	}
}
