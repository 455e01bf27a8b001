package fuzzymg

import "math/bits"

// Direction tables shared by attack detection and move generation.
// Each entry is a {rank, file} delta.
var (
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	queenDirs  = [8][2]int{
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}

	knightOffsets = [8][2]int{
		{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
		{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
	}
	kingOffsets = [8][2]int{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
)

// InCheck reports whether the side to move's king is attacked.
func (p Position) InCheck() bool { return p.KingAttacked(p.side) }

// KingAttacked reports whether c's king square is attacked by the other side.
// It is the single source of truth for both legality filtering and terminal
// state detection. Legality of a move is decided on the post-move position by
// asking about the king of the side that just moved: the side field has
// already flipped, so the caller passes the pre-flip color explicitly.
func (p Position) KingAttacked(c Color) bool {
	kingBB := p.planes[plane(c, PieceTypeKing)]
	if kingBB == 0 {
		return false
	}
	ksq := bits.TrailingZeros64(kingBB)
	kr := ksq / 8
	kf := ksq % 8
	them := c.Other()

	// Pawns attack one rank toward the enemy, so c's king is hit by an enemy
	// pawn sitting one rank on c's far side.
	pawnRank := kr + 1
	if c == Black {
		pawnRank = kr - 1
	}
	if pawnRank >= 0 && pawnRank < 8 {
		enemyPawns := p.planes[plane(them, PieceTypePawn)]
		for _, df := range [2]int{-1, 1} {
			f := kf + df
			if f < 0 || f > 7 {
				continue
			}
			if enemyPawns&bb(SquareOf(pawnRank, f)) != 0 {
				return true
			}
		}
	}

	enemyKnights := p.planes[plane(them, PieceTypeKnight)]
	for _, d := range knightOffsets {
		r, f := kr+d[0], kf+d[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		if enemyKnights&bb(SquareOf(r, f)) != 0 {
			return true
		}
	}

	enemyKing := p.planes[plane(them, PieceTypeKing)]
	for _, d := range kingOffsets {
		r, f := kr+d[0], kf+d[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		if enemyKing&bb(SquareOf(r, f)) != 0 {
			return true
		}
	}

	diagonal := p.planes[plane(them, PieceTypeBishop)] | p.planes[plane(them, PieceTypeQueen)]
	if p.rayHits(kr, kf, bishopDirs[:], diagonal) {
		return true
	}

	straight := p.planes[plane(them, PieceTypeRook)] | p.planes[plane(them, PieceTypeQueen)]
	return p.rayHits(kr, kf, rookDirs[:], straight)
}

// rayHits walks each direction from (rank, file) and reports whether the
// first occupied square along any ray belongs to attackers.
func (p Position) rayHits(rank, file int, dirs [][2]int, attackers uint64) bool {
	for _, d := range dirs {
		r, f := rank, file
		for {
			r += d[0]
			f += d[1]
			if r < 0 || r > 7 || f < 0 || f > 7 {
				break
			}
			mask := bb(SquareOf(r, f))
			if attackers&mask != 0 {
				return true
			}
			if p.allOcc&mask != 0 {
				break
			}
		}
	}
	return false
}
