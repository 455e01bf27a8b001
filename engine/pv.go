package engine

import (
	"strings"

	fm "fuzzymax/fuzzymg"
)

// PVLine holds a principal variation: the moves a search would play from a
// position onward, root move first.
type PVLine struct {
	Moves []fm.Move
}

// Clear empties the line.
func (pv *PVLine) Clear() { pv.Moves = nil }

// Update sets the line to move followed by the child line.
func (pv *PVLine) Update(move fm.Move, child PVLine) {
	line := make([]fm.Move, 0, len(child.Moves)+1)
	line = append(line, move)
	line = append(line, child.Moves...)
	pv.Moves = line
}

// Clone returns a copy that does not share backing storage.
func (pv PVLine) Clone() PVLine {
	if len(pv.Moves) == 0 {
		return PVLine{}
	}
	moves := make([]fm.Move, len(pv.Moves))
	copy(moves, pv.Moves)
	return PVLine{Moves: moves}
}

// GetPVMove returns the first move of the line, or NoMove if empty.
func (pv PVLine) GetPVMove() fm.Move {
	if len(pv.Moves) == 0 {
		return fm.NoMove
	}
	return pv.Moves[0]
}

// String renders the line as space-separated algebraic moves.
func (pv PVLine) String() string {
	parts := make([]string, len(pv.Moves))
	for i, m := range pv.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
