// rack.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Rack as a letter count-vector, so that the
// move generator's recursive fill can consume and restore tiles in
// O(1) without scanning a slot array, per the generator's tried-set
// dedup design.

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
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Rack is a multiset of up to RackSize tiles, held as a count vector
// keyed by uppercase letter ('?' denotes the blank). Order does not
// matter to the engine.
type Rack struct {
	Counts map[rune]int
}

// NewRack parses a rack string using the external convention:
// 'A'-'Z' for a regular tile, '?' for a blank. It rejects racks
// longer than RackSize or containing a letter outside A-Z/'?'.
func NewRack(letters string) (*Rack, error) {
	runes := []rune(strings.ToUpper(letters))
	if len(runes) > RackSize {
		return nil, fmt.Errorf("crossplay: rack has %d tiles, max is %d", len(runes), RackSize)
	}
	r := &Rack{Counts: make(map[rune]int)}
	for _, ch := range runes {
		if ch != Blank && (ch < 'A' || ch > 'Z' || !unicode.IsUpper(ch)) {
			return nil, fmt.Errorf("crossplay: invalid rack letter %q", ch)
		}
		r.Counts[ch]++
	}
	return r, nil
}

// Len returns the number of tiles held by the rack.
func (r *Rack) Len() int {
	n := 0
	for _, c := range r.Counts {
		n += c
	}
	return n
}

// Clone returns an independent copy of the rack.
func (r *Rack) Clone() *Rack {
	nc := make(map[rune]int, len(r.Counts))
	for k, v := range r.Counts {
		nc[k] = v
	}
	return &Rack{Counts: nc}
}

// Remove takes one tile of the given letter off the rack. It reports
// false (and makes no change) if the rack has none of that letter.
func (r *Rack) Remove(letter rune) bool {
	if r.Counts[letter] <= 0 {
		return false
	}
	r.Counts[letter]--
	if r.Counts[letter] == 0 {
		delete(r.Counts, letter)
	}
	return true
}

// Add returns one tile of the given letter to the rack.
func (r *Rack) Add(letter rune) {
	r.Counts[letter]++
}

// HasBlank reports whether the rack holds at least one blank.
func (r *Rack) HasBlank() bool {
	return r.Counts[Blank] > 0
}

// AsRunes returns the rack's tiles as a sorted slice, for deterministic
// display and test comparisons.
func (r *Rack) AsRunes() []rune {
	out := make([]rune, 0, r.Len())
	for letter, count := range r.Counts {
		for i := 0; i < count; i++ {
			out = append(out, letter)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the rack using '?' for blanks.
func (r *Rack) String() string {
	return string(r.AsRunes())
}
