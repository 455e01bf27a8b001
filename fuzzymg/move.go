package fuzzymg

import "fmt"

// Square represents a board position (0-63), a1 = 0, h8 = 63, rank-major.
type Square int

const NoSquare Square = -1

// SquareOf builds a square index from zero-based rank and file.
func SquareOf(rank, file int) Square { return Square(rank*8 + file) }

// Rank returns the zero-based rank of the square.
func (sq Square) Rank() int { return int(sq) / 8 }

// File returns the zero-based file of the square.
func (sq Square) File() int { return int(sq) % 8 }

// Valid reports whether the square is on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// Move is a from/to square pair plus an optional promotion piece type.
// Two moves are the same move exactly when these three fields are equal;
// no capture or check metadata is carried.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType // PieceTypeNone unless a pawn reaches the last rank
}

// NoMove is the null move, rendered as "0000" at the protocol boundary.
var NoMove = Move{From: NoSquare, To: NoSquare}

// IsNone reports whether the move is the null move.
func (m Move) IsNone() bool { return !m.From.Valid() || !m.To.Valid() }

// String produces the 4-5 character algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != PieceTypeNone {
		s += string(promotionChar(m.Promotion))
	}
	return s
}

func promotionChar(pt PieceType) byte {
	switch pt {
	case PieceTypeKnight:
		return 'n'
	case PieceTypeBishop:
		return 'b'
	case PieceTypeRook:
		return 'r'
	default:
		return 'q'
	}
}

// ParseMove decodes a move in 4-5 character algebraic form. "0000" and
// "(none)" decode to NoMove. An unrecognized promotion letter is coerced to
// queen, matching MakeMove's handling of unknown promotion tags.
func ParseMove(s string) (Move, error) {
	if s == "0000" || s == "(none)" {
		return NoMove, nil
	}
	if len(s) < 4 {
		return NoMove, fmt.Errorf("malformed move %q", s)
	}

	fromFile := int(s[0] - 'a')
	fromRank := int(s[1] - '1')
	toFile := int(s[2] - 'a')
	toRank := int(s[3] - '1')
	if fromFile < 0 || fromFile > 7 || fromRank < 0 || fromRank > 7 ||
		toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
		return NoMove, fmt.Errorf("malformed move %q", s)
	}

	m := Move{From: SquareOf(fromRank, fromFile), To: SquareOf(toRank, toFile)}
	if len(s) >= 5 {
		switch s[4] {
		case 'n':
			m.Promotion = PieceTypeKnight
		case 'b':
			m.Promotion = PieceTypeBishop
		case 'r':
			m.Promotion = PieceTypeRook
		default:
			m.Promotion = PieceTypeQueen
		}
	}
	return m, nil
}
