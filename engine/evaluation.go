package engine

import (
	"math/bits"

	fm "fuzzymax/fuzzymg"
)

// Evaluator scores a position from the side to move's point of view. The
// engine ships with plain material counting; a network-backed evaluator can
// be plugged in through the same signature.
type Evaluator func(fm.Position) float64

// Centipawn piece values indexed by PieceType (pawn through king).
var pieceValue = [...]float64{0, 100, 320, 330, 500, 900, 20000}

// Material sums piece values over both sides and returns the balance
// relative to the side to move: positive favors the player whose turn it is.
func Material(p fm.Position) float64 {
	var score float64
	for pt := fm.PieceTypePawn; pt <= fm.PieceTypeKing; pt++ {
		v := pieceValue[pt]
		score += v * float64(bits.OnesCount64(p.Plane(fm.White, pt)))
		score -= v * float64(bits.OnesCount64(p.Plane(fm.Black, pt)))
	}
	if p.SideToMove() == fm.Black {
		return -score
	}
	return score
}
