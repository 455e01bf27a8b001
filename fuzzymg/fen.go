package fuzzymg

import "strings"

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to its color and piece type.
// Unknown characters map to PieceTypeNone.
func pieceFromChar(ch rune) (Color, PieceType) {
	switch ch {
	case 'P':
		return White, PieceTypePawn
	case 'N':
		return White, PieceTypeKnight
	case 'B':
		return White, PieceTypeBishop
	case 'R':
		return White, PieceTypeRook
	case 'Q':
		return White, PieceTypeQueen
	case 'K':
		return White, PieceTypeKing
	case 'p':
		return Black, PieceTypePawn
	case 'n':
		return Black, PieceTypeKnight
	case 'b':
		return Black, PieceTypeBishop
	case 'r':
		return Black, PieceTypeRook
	case 'q':
		return Black, PieceTypeQueen
	case 'k':
		return Black, PieceTypeKing
	default:
		return White, PieceTypeNone
	}
}

// ParseFEN builds a Position from a FEN string. Parsing is lenient and
// total: unrecognized placement characters are skipped, missing fields
// default to start-of-game assumptions (White to move unless the second
// field reads "b"), and the castling, en passant and clock fields are
// consumed without effect.
func ParseFEN(fen string) Position {
	var p Position
	p.side = White

	fields := strings.Fields(fen)
	if len(fields) > 0 {
		rank, file := 7, 0
		for _, ch := range fields[0] {
			switch {
			case ch == '/':
				rank--
				file = 0
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				c, pt := pieceFromChar(ch)
				if pt == PieceTypeNone {
					continue
				}
				if rank >= 0 && file < 8 {
					p.planes[plane(c, pt)] |= bb(SquareOf(rank, file))
				}
				file++
			}
		}
	}
	if len(fields) > 1 && fields[1] == "b" {
		p.side = Black
	}

	p.recomputeOccupancy()
	return p
}

// FEN renders the position's placement and side-to-move fields. The fields
// the position does not track are emitted as their start-of-game values.
func (p Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			c, pt, ok := p.PieceAt(SquareOf(rank, file))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(planeChars[plane(c, pt)])
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.side == Black {
		sb.WriteString(" b - - 0 1")
	} else {
		sb.WriteString(" w - - 0 1")
	}
	return sb.String()
}
