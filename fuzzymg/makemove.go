package fuzzymg

// MakeMove applies m and returns the resulting position; the receiver is
// untouched. The moving piece is resolved by scanning the mover's six planes
// for a bit at m.From. If no such bit exists the move is malformed and the
// unchanged copy is returned; callers must not assume a state change
// occurred. A capture clears the enemy bit at m.To; a promotion lands on the
// promoted piece's plane instead of the pawn plane. Occupancies are rebuilt
// in full and the side to move flips.
func (p Position) MakeMove(m Move) Position {
	next := p
	if m.IsNone() {
		return next
	}

	us := p.side
	them := us.Other()
	fromBB := bb(m.From)

	mover := -1
	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		if next.planes[plane(us, pt)]&fromBB != 0 {
			mover = plane(us, pt)
			break
		}
	}
	if mover < 0 {
		return next
	}

	toBB := bb(m.To)
	next.planes[mover] &^= fromBB

	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		idx := plane(them, pt)
		if next.planes[idx]&toBB != 0 {
			next.planes[idx] &^= toBB
			break
		}
	}

	if m.Promotion != PieceTypeNone {
		next.planes[plane(us, promotionTarget(m.Promotion))] |= toBB
	} else {
		next.planes[mover] |= toBB
	}

	next.recomputeOccupancy()
	next.side = them
	return next
}

// promotionTarget normalizes the promotion tag; anything outside
// knight..queen is coerced to queen.
func promotionTarget(pt PieceType) PieceType {
	switch pt {
	case PieceTypeKnight, PieceTypeBishop, PieceTypeRook, PieceTypeQueen:
		return pt
	default:
		return PieceTypeQueen
	}
}
