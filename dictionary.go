// dictionary.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements the Dictionary: a word list with both a
// membership set and a trie-backed prefix index, loaded from a
// line-delimited word-list reader. Loading the actual file from disk
// is a collaborator concern; this type only knows how to parse an
// io.Reader and, failing that, fall back to a small built-in list.

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
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// Dictionary holds a word-membership set and the trie built over the
// same words, so that FindBestMoves can both prune prefixes with the
// trie and validate complete cross-words with a simple lookup.
type Dictionary struct {
	words map[string]bool
	trie  *Trie
}

// NewDictionaryFromReader builds a Dictionary from a line-delimited
// word list. Each line is upper-cased and normalized; lines shorter
// than 2 letters, longer than BoardSize letters, or containing a
// non-letter rune are silently rejected, matching the format the
// OCR/CLI/GUI collaborators are expected to feed in.
func NewDictionaryFromReader(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]bool), trie: NewTrie()}
	scanner := bufio.NewScanner(r)
	// Start with a 64 KiB buffer and accept lines up to 1 MiB; words
	// longer than BoardSize letters are rejected below.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if !validDictionaryWord(word) {
			continue
		}
		if !d.words[word] {
			d.words[word] = true
			d.trie.Insert(word)
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if count == 0 {
		log.Warn().Msg("dictionary reader produced no valid words; falling back to built-in minimal list")
		d.loadMinimal()
	} else {
		log.Info().Int("words", count).Msg("loaded dictionary")
	}
	return d, nil
}

// NewMinimalDictionary returns a Dictionary seeded only with the small
// built-in word list, useful for tests and as the engine's refusal-to-
// start fallback is itself a collaborator decision, not the engine's.
func NewMinimalDictionary() *Dictionary {
	d := &Dictionary{words: make(map[string]bool), trie: NewTrie()}
	d.loadMinimal()
	return d
}

func validDictionaryWord(word string) bool {
	n := len([]rune(word))
	if n < 2 || n > BoardSize {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsValid reports whether word (case-insensitive) is a dictionary entry.
func (d *Dictionary) IsValid(word string) bool {
	return d.words[strings.ToUpper(word)]
}

// Trie exposes the dictionary's prefix trie to the move generator.
func (d *Dictionary) Trie() *Trie {
	return d.trie
}

// loadMinimal seeds the dictionary with a small built-in word list,
// used when no real word-list reader is available (e.g. in tests).
func (d *Dictionary) loadMinimal() {
	twoLetter := []string{
		"AA", "AB", "AD", "AE", "AG", "AH", "AI", "AL", "AM", "AN",
		"AR", "AS", "AT", "AW", "AX", "AY", "BA", "BE", "BI", "BO",
		"BY", "DA", "DE", "DO", "ED", "EF", "EH", "EL", "EM", "EN",
		"ER", "ES", "ET", "EW", "EX", "FA", "FE", "GO", "HA", "HE",
		"HI", "HM", "HO", "ID", "IF", "IN", "IS", "IT", "JO", "KA",
		"KI", "LA", "LI", "LO", "MA", "ME", "MI", "MM", "MO", "MU",
		"MY", "NA", "NE", "NO", "NU", "OD", "OE", "OF", "OH", "OI",
		"OK", "OM", "ON", "OP", "OR", "OS", "OU", "OW", "OX", "OY",
		"PA", "PE", "PI", "PO", "QI", "RE", "SH", "SI", "SO", "TA",
		"TI", "TO", "UH", "UM", "UN", "UP", "US", "UT", "WE", "WO",
		"XI", "XU", "YA", "YE", "YO",
	}
	common := []string{
		"THE", "AND", "FOR", "ARE", "BUT", "NOT", "YOU", "ALL", "CAN",
		"HER", "WAS", "ONE", "OUR", "OUT", "DAY", "HAD", "HAS", "HIS",
		"HOW", "ITS", "MAY", "NEW", "NOW", "OLD", "SEE", "WAY", "WHO",
		"BOY", "DID", "GET", "HIM", "LET", "SAY", "SHE", "TOO", "USE",
		"CAT", "DOG", "RUN", "SET", "TOP", "RED", "WORD", "PLAY", "GAME",
		"TILE", "BEST", "MOVE", "QUIZ", "QUAY", "JINX", "ZERO", "ZONE",
		"JAZZ", "FIZZ", "BUZZ", "FUZZ", "HAZE", "MAZE", "GAZE", "LAZE",
		"OXEN", "APEX", "LYNX", "ONYX", "WAXY", "DEWY", "ENVY", "LEVY",
		"NAVY", "WAVY", "HAVE", "GAVE", "SAVE", "WAVE", "CAVE", "DOVE",
		"FIVE", "GIVE", "HIVE", "JIVE", "LIVE", "LOVE", "OVEN", "OVER",
		"VERY", "VIEW", "VOWS", "AVOW", "AVID", "EVEN", "EVER", "EVIL",
		"VOID", "HELLO", "QUAINT", "RETAINS", "HELLOS",
	}
	for _, w := range twoLetter {
		d.words[w] = true
		d.trie.Insert(w)
	}
	for _, w := range common {
		d.words[w] = true
		d.trie.Insert(w)
	}
}
