// trie_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains tests for the trie.

package crossplay

import "testing"

func TestTrieInsertAndLookup(t *testing.T) {
	trie := NewTrie()
	words := []string{"CAT", "CATS", "CAR", "DOG"}
	for _, w := range words {
		trie.Insert(w)
	}

	positive := []string{"CAT", "CATS", "CAR", "DOG"}
	for _, w := range positive {
		if !trie.IsWord(w) {
			t.Errorf("IsWord(%q) = false, want true", w)
		}
	}

	negative := []string{"CA", "CATSS", "COW", ""}
	for _, w := range negative {
		if trie.IsWord(w) {
			t.Errorf("IsWord(%q) = true, want false", w)
		}
	}
}

func TestTriePrefix(t *testing.T) {
	trie := NewTrie()
	trie.Insert("HELLO")

	prefixes := []string{"H", "HE", "HEL", "HELL", "HELLO"}
	for _, p := range prefixes {
		if !trie.IsPrefix(p) {
			t.Errorf("IsPrefix(%q) = false, want true", p)
		}
	}
	if trie.IsPrefix("HELLOX") {
		t.Errorf("IsPrefix(%q) = true, want false", "HELLOX")
	}
	if trie.IsPrefix("X") {
		t.Errorf("IsPrefix(%q) = true, want false", "X")
	}
}

func TestTrieRootChild(t *testing.T) {
	trie := NewTrie()
	trie.Insert("AT")
	root := trie.Root()
	child := root.Child('A')
	if child == nil {
		t.Fatal("expected root to have a child at 'A'")
	}
	if child.Terminal() {
		t.Error("node after 'A' should not be terminal")
	}
	grandchild := child.Child('T')
	if grandchild == nil || !grandchild.Terminal() {
		t.Error("node after 'AT' should be terminal")
	}
}
