// constants.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file contains the fixed constants of the Crossplay board and
// tile set: board geometry, tile values, the bag distribution, the
// bonus-square grid, the sweep bonus, and the leave-evaluation tables.

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

// BoardSize is the width and height of the Crossplay board.
const BoardSize = 15

// Center is the 0-indexed row/column of the star square.
const Center = 7

// RackSize is the number of tiles a rack holds.
const RackSize = 7

// Blank is the rune used to denote a wildcard tile, both on a rack
// and (uppercased away) in board/tile-set bookkeeping.
const Blank = '?'

// SweepBonus is awarded when a move places all RackSize tiles at once.
const SweepBonus = 40

// Bonus identifies the bonus carried by a board square.
type Bonus int

const (
	NoBonus Bonus = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
	Star
)

// TileValues gives the nominal point value of each letter; the blank
// is always worth zero, both on the rack and once played.
var TileValues = map[rune]int{
	'A': 1, 'B': 4, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 4,
	'H': 3, 'I': 1, 'J': 10, 'K': 6, 'L': 2, 'M': 3, 'N': 1,
	'O': 1, 'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 2,
	'V': 6, 'W': 5, 'X': 8, 'Y': 4, 'Z': 10, Blank: 0,
}

// TileDistribution is the fixed Crossplay bag: 100 tiles total.
var TileDistribution = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3,
	'H': 3, 'I': 8, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 5,
	'O': 8, 'P': 2, 'Q': 1, 'R': 6, 'S': 5, 'T': 6, 'U': 3,
	'V': 2, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1, Blank: 3,
}

// TotalTiles is the sum of TileDistribution's counts.
var TotalTiles = func() int {
	n := 0
	for _, c := range TileDistribution {
		n += c
	}
	return n
}()

// bonusGrid is the literal 15x15 bonus layout. It is intentionally
// not symmetric in a few rows/columns; the asymmetry is part of the
// Crossplay board definition and must be preserved as-is.
var bonusGrid = [BoardSize][BoardSize]Bonus{
	{TripleLetter, NoBonus, NoBonus, TripleWord, NoBonus, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, NoBonus, TripleWord, NoBonus, NoBonus, TripleLetter},
	{NoBonus, DoubleWord, NoBonus, NoBonus, NoBonus, NoBonus, TripleLetter, NoBonus, TripleLetter, NoBonus, NoBonus, NoBonus, NoBonus, DoubleWord, NoBonus},
	{NoBonus, NoBonus, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, NoBonus, NoBonus},
	{TripleWord, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, NoBonus, DoubleWord, NoBonus, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, TripleWord},
	{NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, TripleLetter, NoBonus, NoBonus, NoBonus, TripleLetter, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus},
	{NoBonus, NoBonus, NoBonus, NoBonus, TripleLetter, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, TripleLetter, NoBonus, NoBonus, NoBonus, NoBonus},
	{NoBonus, TripleLetter, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, TripleLetter, NoBonus},
	{DoubleLetter, NoBonus, NoBonus, DoubleWord, NoBonus, DoubleLetter, NoBonus, Star, NoBonus, DoubleLetter, NoBonus, DoubleWord, NoBonus, NoBonus, DoubleLetter},
	{NoBonus, TripleLetter, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, TripleLetter, NoBonus},
	{NoBonus, NoBonus, NoBonus, NoBonus, TripleLetter, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, TripleLetter, NoBonus, NoBonus, NoBonus, NoBonus},
	{NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, TripleLetter, NoBonus, NoBonus, NoBonus, TripleLetter, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus},
	{TripleWord, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, NoBonus, DoubleWord, NoBonus, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, TripleWord},
	{NoBonus, NoBonus, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, NoBonus, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, NoBonus, NoBonus},
	{NoBonus, DoubleWord, NoBonus, NoBonus, NoBonus, NoBonus, TripleLetter, NoBonus, TripleLetter, NoBonus, NoBonus, NoBonus, NoBonus, DoubleWord, NoBonus},
	{TripleLetter, NoBonus, NoBonus, TripleWord, NoBonus, NoBonus, NoBonus, DoubleLetter, NoBonus, NoBonus, NoBonus, TripleWord, NoBonus, NoBonus, TripleLetter},
}

// BonusAt returns the bonus carried by square (row, col).
func BonusAt(row, col int) Bonus {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoBonus
	}
	return bonusGrid[row][col]
}

// leaveDesirability is the per-tile weight used by the leave evaluator;
// higher is more desirable to keep on the rack.
var leaveDesirability = map[rune]float64{
	'A': 0.5, 'B': -2.0, 'C': -0.5, 'D': 0.5, 'E': 1.5,
	'F': -2.0, 'G': -1.0, 'H': 0.5, 'I': 0.5, 'J': -4.0,
	'K': -2.5, 'L': 1.0, 'M': -0.5, 'N': 1.5, 'O': 0.0,
	'P': -0.5, 'Q': -6.0, 'R': 2.0, 'S': 5.0, 'T': 1.0,
	'U': -0.5, 'V': -4.0, 'W': -2.5, 'X': -1.0, 'Y': -0.5,
	'Z': -2.0, Blank: 15.0,
}

// synergyPairs awards a bonus when the leave's letter set is a superset
// of the pair. Keyed by the two letters sorted ascending.
var synergyPairs = map[[2]rune]float64{
	{'E', 'R'}: 1.5,
	{'D', 'E'}: 1.0,
	{'E', 'S'}: 1.5,
	{'E', 'N'}: 1.0,
	{'I', 'N'}: 1.5,
	{'A', 'N'}: 1.0,
	{'A', 'T'}: 0.5,
	{'S', 'T'}: 1.5,
	{'R', 'S'}: 1.0,
	{'E', 'L'}: 0.5,
	{'E', 'T'}: 0.5,
}

// synergyTriples awards a bonus when the leave's letter set is a
// superset of the triple. Keyed by the three letters sorted ascending.
var synergyTriples = map[[3]rune]float64{
	{'G', 'I', 'N'}: 3.5,
	{'E', 'R', 'S'}: 3.0,
	{'E', 'S', 'T'}: 2.5,
	{'E', 'I', 'S'}: 2.5,
	{'E', 'N', 'T'}: 2.0,
	{'A', 'E', 'T'}: 1.5,
	{'A', 'E', 'N'}: 1.5,
	{'E', 'I', 'N'}: 1.5,
}
