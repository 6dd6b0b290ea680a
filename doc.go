// doc.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

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

// Package crossplay implements a move engine for a 15x15 crossword
// tile game. Given a board, a rack and a dictionary, it generates
// legal moves by anchor-based trie-guided search, scores each
// one under the game's bonus-square and blank-tile rules, evaluates
// the post-move rack heuristically, and can refine the leading
// candidates with Monte-Carlo rollout against random opponent racks.
package crossplay
