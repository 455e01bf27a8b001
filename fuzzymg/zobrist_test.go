package fuzzymg_test

import (
	"testing"

	fm "fuzzymax/fuzzymg"
)

func TestHashDeterministic(t *testing.T) {
	p := fm.StartPosition()
	if p.Hash() != p.Hash() {
		t.Fatalf("hash of the same position differs between calls")
	}
	q := fm.ParseFEN(fm.FENStartPos)
	if p.Hash() != q.Hash() {
		t.Fatalf("equal positions hash differently")
	}
}

func TestHashSideToMove(t *testing.T) {
	w := fm.ParseFEN("8/8/8/8/8/8/8/K1k5 w - - 0 1")
	b := fm.ParseFEN("8/8/8/8/8/8/8/K1k5 b - - 0 1")
	if w.Hash() == b.Hash() {
		t.Fatalf("side to move must be part of the hash")
	}
}

func TestHashReturnsAfterRepetition(t *testing.T) {
	p := fm.StartPosition()
	start := p.Hash()

	// Shuffle the knights out and back.
	for _, s := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		m, err := fm.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		p = p.MakeMove(m)
	}
	if p.Hash() != start {
		t.Fatalf("hash did not return to its original value after a shuffle")
	}
}

func TestHashDiffersByPlacement(t *testing.T) {
	p := fm.StartPosition()
	m, _ := fm.ParseMove("e2e4")
	n, _ := fm.ParseMove("d2d4")
	if p.MakeMove(m).Hash() == p.MakeMove(n).Hash() {
		t.Fatalf("different placements should hash differently")
	}
}
