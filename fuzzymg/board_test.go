package fuzzymg_test

import (
	"math/bits"
	"strings"
	"testing"

	fm "fuzzymax/fuzzymg"
)

func TestStartPositionOccupancy(t *testing.T) {
	p := fm.StartPosition()

	if got := bits.OnesCount64(p.AllOccupancy()); got != 32 {
		t.Fatalf("expected 32 occupied squares, got %d", got)
	}
	if got := bits.OnesCount64(p.ColorOccupancy(fm.White)); got != 16 {
		t.Fatalf("expected 16 white pieces, got %d", got)
	}
	if got := bits.OnesCount64(p.ColorOccupancy(fm.Black)); got != 16 {
		t.Fatalf("expected 16 black pieces, got %d", got)
	}
	if p.SideToMove() != fm.White {
		t.Fatalf("expected White to move")
	}
}

func TestPlanesDisjoint(t *testing.T) {
	p := fm.ParseFEN("r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10")

	var seen uint64
	for _, c := range []fm.Color{fm.White, fm.Black} {
		for pt := fm.PieceTypePawn; pt <= fm.PieceTypeKing; pt++ {
			pl := p.Plane(c, pt)
			if seen&pl != 0 {
				t.Fatalf("planes overlap at %v %v", c, pt)
			}
			seen |= pl
		}
	}
	if seen != p.AllOccupancy() {
		t.Fatalf("occupancy does not match the union of planes")
	}
}

func TestPieceAt(t *testing.T) {
	p := fm.StartPosition()

	c, pt, ok := p.PieceAt(fm.SquareOf(0, 4))
	if !ok || c != fm.White || pt != fm.PieceTypeKing {
		t.Fatalf("expected white king on e1, got %v %v %v", c, pt, ok)
	}
	c, pt, ok = p.PieceAt(fm.SquareOf(7, 3))
	if !ok || c != fm.Black || pt != fm.PieceTypeQueen {
		t.Fatalf("expected black queen on d8, got %v %v %v", c, pt, ok)
	}
	if _, _, ok := p.PieceAt(fm.SquareOf(4, 4)); ok {
		t.Fatalf("expected e5 to be empty")
	}
}

func TestStringRender(t *testing.T) {
	out := fm.StartPosition().String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 ranks, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "r n b q k b n r") {
		t.Fatalf("unexpected top rank: %q", lines[0])
	}
	if !strings.HasPrefix(lines[7], "R N B Q K B N R") {
		t.Fatalf("unexpected bottom rank: %q", lines[7])
	}
}

func TestInsufficientMaterial(t *testing.T) {
	var cases = []struct {
		fen  string
		want bool
	}{
		{"8/8/8/8/8/8/8/K1k5 w - - 0 1", true},
		{"8/8/8/3b4/8/8/8/K1k5 w - - 0 1", true},
		{"8/8/8/3n4/8/8/8/K1k5 w - - 0 1", true},
		{"8/8/8/3nb3/8/8/8/K1k5 w - - 0 1", false},   // knight + bishop mates
		{"8/8/8/2bb4/8/8/8/K1k5 w - - 0 1", false},   // opposite-colored bishops
		{"8/8/8/2b1b3/8/8/8/K1k5 w - - 0 1", true},   // same-colored bishops
		{"8/8/8/1nn2n2/8/8/8/K1k5 w - - 0 1", false}, // three knights
		{"8/8/8/3P4/8/8/8/K1k5 w - - 0 1", false},
		{fm.FENStartPos, false},
	}
	for _, c := range cases {
		p := fm.ParseFEN(c.fen)
		if got := p.InsufficientMaterial(); got != c.want {
			t.Errorf("InsufficientMaterial(%q) = %v, want %v", c.fen, got, c.want)
		}
	}
}
