// ranker.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements move ranking: sorting a candidate list by raw
// score or by simulation equity, descending.

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

import "sort"

// byScore sorts a move list by raw score, descending.
type byScore []*Move

func (list byScore) Len() int      { return len(list) }
func (list byScore) Swap(i, j int) { list[i], list[j] = list[j], list[i] }
func (list byScore) Less(i, j int) bool {
	return list[i].Score > list[j].Score
}

// rankByScore sorts moves by Score, descending, preserving generation
// order among ties, and returns it.
func rankByScore(moves []*Move) []*Move {
	sort.Stable(byScore(moves))
	return moves
}

// bySimEquity sorts a move list by simulation equity, descending.
type bySimEquity []*Move

func (list bySimEquity) Len() int      { return len(list) }
func (list bySimEquity) Swap(i, j int) { list[i], list[j] = list[j], list[i] }
func (list bySimEquity) Less(i, j int) bool {
	return list[i].SimEquity > list[j].SimEquity
}

// rankBySimEquity sorts moves by SimEquity, descending, preserving
// generation order among ties, and returns it.
func rankBySimEquity(moves []*Move) []*Move {
	sort.Stable(bySimEquity(moves))
	return moves
}
