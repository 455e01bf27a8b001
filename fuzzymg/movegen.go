package fuzzymg

// GenerateLegalMoves returns every legal move for the side to move: the
// pseudo-legal moves, minus those after which the mover's own king is
// attacked. Castling and en passant are not part of the move set.
func (p Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoMoves()
	legal := make([]Move, 0, len(pseudo))
	us := p.side
	for _, m := range pseudo {
		next := p.MakeMove(m)
		if !next.KingAttacked(us) {
			legal = append(legal, m)
		}
	}
	return legal
}

// GeneratePseudoMoves produces moves consistent with piece movement rules,
// before any king safety filtering.
func (p Position) GeneratePseudoMoves() []Move {
	moves := make([]Move, 0, 64)
	moves = p.appendSlidingMoves(moves, PieceTypeBishop, bishopDirs[:])
	moves = p.appendSlidingMoves(moves, PieceTypeRook, rookDirs[:])
	moves = p.appendSlidingMoves(moves, PieceTypeQueen, queenDirs[:])
	moves = p.appendKnightMoves(moves)
	moves = p.appendKingMoves(moves)
	moves = p.appendPawnMoves(moves)
	return moves
}

func (p Position) appendSlidingMoves(moves []Move, pt PieceType, dirs [][2]int) []Move {
	pieces := p.planes[plane(p.side, pt)]
	friendly := p.ColorOccupancy(p.side)
	enemy := p.ColorOccupancy(p.side.Other())

	for pieces != 0 {
		from := popLSB(&pieces)
		fr, ff := from/8, from%8
		for _, d := range dirs {
			r, f := fr, ff
			for {
				r += d[0]
				f += d[1]
				if r < 0 || r > 7 || f < 0 || f > 7 {
					break
				}
				to := SquareOf(r, f)
				mask := bb(to)
				if friendly&mask != 0 {
					break
				}
				moves = append(moves, Move{From: Square(from), To: to})
				if enemy&mask != 0 {
					break
				}
			}
		}
	}
	return moves
}

func (p Position) appendKnightMoves(moves []Move) []Move {
	knights := p.planes[plane(p.side, PieceTypeKnight)]
	friendly := p.ColorOccupancy(p.side)

	for knights != 0 {
		from := popLSB(&knights)
		fr, ff := from/8, from%8
		for _, d := range knightOffsets {
			r, f := fr+d[0], ff+d[1]
			if r < 0 || r > 7 || f < 0 || f > 7 {
				continue
			}
			to := SquareOf(r, f)
			if friendly&bb(to) != 0 {
				continue
			}
			moves = append(moves, Move{From: Square(from), To: to})
		}
	}
	return moves
}

func (p Position) appendKingMoves(moves []Move) []Move {
	king := p.planes[plane(p.side, PieceTypeKing)]
	if king == 0 {
		return moves
	}
	friendly := p.ColorOccupancy(p.side)

	from := popLSB(&king)
	fr, ff := from/8, from%8
	for _, d := range kingOffsets {
		r, f := fr+d[0], ff+d[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		to := SquareOf(r, f)
		if friendly&bb(to) != 0 {
			continue
		}
		moves = append(moves, Move{From: Square(from), To: to})
	}
	return moves
}

func (p Position) appendPawnMoves(moves []Move) []Move {
	pawns := p.planes[plane(p.side, PieceTypePawn)]
	enemy := p.ColorOccupancy(p.side.Other())

	forward := 1
	startRank := 1
	lastRank := 7
	if p.side == Black {
		forward = -1
		startRank = 6
		lastRank = 0
	}

	for pawns != 0 {
		from := popLSB(&pawns)
		r, f := from/8, from%8
		nr := r + forward
		if nr < 0 || nr > 7 {
			continue
		}
		promoting := nr == lastRank

		// Single push onto an empty square.
		to := SquareOf(nr, f)
		if p.allOcc&bb(to) == 0 {
			moves = p.appendPawnMove(moves, Square(from), to, promoting)

			// Double push from the start rank through two empty squares.
			if r == startRank {
				to2 := SquareOf(nr+forward, f)
				if p.allOcc&bb(to2) == 0 {
					moves = append(moves, Move{From: Square(from), To: to2})
				}
			}
		}

		// Diagonal captures onto enemy-occupied squares.
		for _, df := range [2]int{-1, 1} {
			cf := f + df
			if cf < 0 || cf > 7 {
				continue
			}
			cap := SquareOf(nr, cf)
			if enemy&bb(cap) != 0 {
				moves = p.appendPawnMove(moves, Square(from), cap, promoting)
			}
		}
	}
	return moves
}

// appendPawnMove adds one pawn move, fanned out into the four promotion
// choices when the pawn lands on the last rank.
func (p Position) appendPawnMove(moves []Move, from, to Square, promoting bool) []Move {
	if !promoting {
		return append(moves, Move{From: from, To: to})
	}
	for pt := PieceTypeKnight; pt <= PieceTypeQueen; pt++ {
		moves = append(moves, Move{From: from, To: to, Promotion: pt})
	}
	return moves
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(p.MakeMove(m), depth-1)
	}
	return nodes
}

// PerftDivide returns the per-root-move leaf counts at the given depth.
func PerftDivide(p Position, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	for _, m := range p.GenerateLegalMoves() {
		div[m] = Perft(p.MakeMove(m), depth-1)
	}
	return div
}
