// board_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains tests for the board.

package crossplay

import "testing"

func TestBoardEmptyByDefault(t *testing.T) {
	b := NewBoard()
	if !b.IsBoardEmpty() {
		t.Error("fresh board should be empty")
	}
	if b.CountTiles() != 0 {
		t.Errorf("CountTiles() = %d, want 0", b.CountTiles())
	}
	if b.IsOccupied(7, 7) {
		t.Error("center square should start unoccupied")
	}
}

func TestBoardSetAndGet(t *testing.T) {
	b := NewBoard()
	b.Set(7, 7, 'A')
	if b.Get(7, 7) != 'A' {
		t.Errorf("Get(7,7) = %q, want 'A'", b.Get(7, 7))
	}
	if !b.IsOccupied(7, 7) || b.IsEmpty(7, 7) {
		t.Error("(7,7) should be occupied after Set")
	}
	if b.CountTiles() != 1 {
		t.Errorf("CountTiles() = %d, want 1", b.CountTiles())
	}
}

func TestBoardBlankCell(t *testing.T) {
	b := NewBoard()
	b.Set(3, 3, 'q') // blank played as Q
	if !b.IsBlankCell(3, 3) {
		t.Error("lowercase cell should be reported as a blank")
	}
	if b.Letter(3, 3) != 'Q' {
		t.Errorf("Letter(3,3) = %q, want 'Q'", b.Letter(3, 3))
	}
	b.Set(3, 4, 'Q')
	if b.IsBlankCell(3, 4) {
		t.Error("uppercase cell should not be reported as a blank")
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b := NewBoard()
	if b.Get(-1, 0) != 0 || b.Get(0, BoardSize) != 0 {
		t.Error("out-of-bounds Get should return 0")
	}
	b.Set(-1, 0, 'A') // must not panic
	b.Set(BoardSize, 0, 'A')
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Set(0, 0, 'A')
	cp := b.Copy()
	cp.Set(0, 1, 'B')
	if b.IsOccupied(0, 1) {
		t.Error("mutating the copy should not affect the original")
	}
	if !cp.IsOccupied(0, 0) {
		t.Error("copy should retain the original's tiles")
	}
}

func TestBonusGridCenterIsStar(t *testing.T) {
	if BonusAt(Center, Center) != Star {
		t.Errorf("BonusAt(center) = %v, want Star", BonusAt(Center, Center))
	}
}

func TestBonusGridOutOfBounds(t *testing.T) {
	if BonusAt(-1, 0) != NoBonus || BonusAt(0, BoardSize) != NoBonus {
		t.Error("out-of-bounds BonusAt should return NoBonus")
	}
}
