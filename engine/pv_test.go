package engine_test

import (
	"testing"

	"fuzzymax/engine"
	fm "fuzzymax/fuzzymg"
)

func TestPVLineUpdate(t *testing.T) {
	e2e4, _ := fm.ParseMove("e2e4")
	e7e5, _ := fm.ParseMove("e7e5")

	var child engine.PVLine
	child.Update(e7e5, engine.PVLine{})

	var pv engine.PVLine
	pv.Update(e2e4, child)

	if got := pv.String(); got != "e2e4 e7e5" {
		t.Fatalf("pv rendered as %q", got)
	}
	if pv.GetPVMove() != e2e4 {
		t.Fatalf("GetPVMove = %s", pv.GetPVMove())
	}
}

func TestPVLineCloneIsIndependent(t *testing.T) {
	e2e4, _ := fm.ParseMove("e2e4")
	d2d4, _ := fm.ParseMove("d2d4")

	var pv engine.PVLine
	pv.Update(e2e4, engine.PVLine{})
	clone := pv.Clone()
	pv.Moves[0] = d2d4

	if clone.GetPVMove() != e2e4 {
		t.Fatalf("clone shares storage with the original")
	}
}

func TestPVLineEmpty(t *testing.T) {
	var pv engine.PVLine
	if !pv.GetPVMove().IsNone() {
		t.Fatalf("empty line should yield the null move")
	}
	if pv.String() != "" {
		t.Fatalf("empty line should render empty, got %q", pv.String())
	}
	pv.Update(fm.NoMove, engine.PVLine{})
	pv.Clear()
	if len(pv.Moves) != 0 {
		t.Fatalf("Clear left %d moves", len(pv.Moves))
	}
}
