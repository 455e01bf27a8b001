package fuzzymg

import "math/bits"

// Color identifies a side: White moves first.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// PieceType is a colorless piece identifier used for plane and table lookups.
type PieceType uint8

const (
	PieceTypeNone PieceType = iota
	PieceTypePawn
	PieceTypeKnight
	PieceTypeBishop
	PieceTypeRook
	PieceTypeQueen
	PieceTypeKing
)

// plane maps (color, piece type) to an index into Position.planes. The fixed
// order is white pawn..king, then black pawn..king.
func plane(c Color, pt PieceType) int { return int(c)*6 + int(pt) - 1 }

// Position is the complete board state: twelve piece planes, the derived
// occupancy masks, and the side to move. Position is a value type; MakeMove
// returns a fresh copy, so positions in a search tree never alias each other.
type Position struct {
	planes [12]uint64

	wOcc   uint64
	bOcc   uint64
	allOcc uint64

	side Color
}

// StartPosition returns the standard initial chess position, White to move.
func StartPosition() Position {
	p := Position{
		planes: [12]uint64{
			0x000000000000FF00, // white pawns
			0x0000000000000042, // white knights
			0x0000000000000024, // white bishops
			0x0000000000000081, // white rooks
			0x0000000000000008, // white queen
			0x0000000000000010, // white king
			0x00FF000000000000, // black pawns
			0x4200000000000000, // black knights
			0x2400000000000000, // black bishops
			0x8100000000000000, // black rooks
			0x0800000000000000, // black queen
			0x1000000000000000, // black king
		},
		side: White,
	}
	p.recomputeOccupancy()
	return p
}

// recomputeOccupancy rebuilds the occupancy masks from the piece planes.
// Occupancies are always derived in full after a mutation, never patched.
func (p *Position) recomputeOccupancy() {
	p.wOcc = 0
	p.bOcc = 0
	for i := 0; i < 6; i++ {
		p.wOcc |= p.planes[i]
		p.bOcc |= p.planes[i+6]
	}
	p.allOcc = p.wOcc | p.bOcc
}

// SideToMove reports which side is to play.
func (p Position) SideToMove() Color { return p.side }

// Turn names the side to move, for display.
func (p Position) Turn() string { return p.side.String() }

// Plane returns the bitboard for one (color, piece type) pair.
func (p Position) Plane(c Color, pt PieceType) uint64 { return p.planes[plane(c, pt)] }

// AllOccupancy returns a bitboard of all occupied squares.
func (p Position) AllOccupancy() uint64 { return p.allOcc }

// ColorOccupancy returns the occupancy bitboard for the given side.
func (p Position) ColorOccupancy(c Color) uint64 {
	if c == Black {
		return p.bOcc
	}
	return p.wOcc
}

// PieceAt reports the piece on a square, if any.
func (p Position) PieceAt(sq Square) (Color, PieceType, bool) {
	if !sq.Valid() {
		return White, PieceTypeNone, false
	}
	mask := bb(sq)
	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		if p.planes[plane(White, pt)]&mask != 0 {
			return White, pt, true
		}
		if p.planes[plane(Black, pt)]&mask != 0 {
			return Black, pt, true
		}
	}
	return White, PieceTypeNone, false
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (p Position) HasLegalMoves() bool {
	return len(p.GenerateLegalMoves()) > 0
}

// InCheckmate reports whether the side to move is checkmated.
func (p Position) InCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (p Position) InStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsThreefoldRepetition reports a draw by repetition: the current position's
// hash appears three or more times in the game history. The caller owns the
// history and appends one hash per position reached on the real game line.
func (p Position) IsThreefoldRepetition(history []uint64) bool {
	target := p.Hash()
	count := 0
	for _, h := range history {
		if h == target {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// InsufficientMaterial reports a conservative dead-draw condition: no pawns,
// rooks or queens on the board, and neither side holds mating material
// (bishop plus knight, two opposite-colored bishops, or three knights).
func (p Position) InsufficientMaterial() bool {
	for _, pt := range [...]PieceType{PieceTypePawn, PieceTypeRook, PieceTypeQueen} {
		if p.planes[plane(White, pt)]|p.planes[plane(Black, pt)] != 0 {
			return false
		}
	}
	return !p.hasMatingMaterial(White) && !p.hasMatingMaterial(Black)
}

func (p Position) hasMatingMaterial(c Color) bool {
	knights := bits.OnesCount64(p.planes[plane(c, PieceTypeKnight)])
	bishopsBB := p.planes[plane(c, PieceTypeBishop)]
	bishops := bits.OnesCount64(bishopsBB)

	if knights >= 1 && bishops >= 1 {
		return true
	}
	if bishops >= 2 && bishopsOnBothColors(bishopsBB) {
		return true
	}
	return knights >= 3
}

// bishopsOnBothColors reports whether the mask holds bishops on both light
// and dark squares.
func bishopsOnBothColors(mask uint64) bool {
	var light, dark bool
	for mask != 0 {
		sq := popLSB(&mask)
		if (sq/8+sq%8)%2 == 0 {
			light = true
		} else {
			dark = true
		}
		if light && dark {
			return true
		}
	}
	return false
}

// String renders the board as an 8x8 grid, rank 8 at the top, empty squares
// as dots.
func (p Position) String() string {
	var grid [64]byte
	for i := range grid {
		grid[i] = '.'
	}
	for pl := 0; pl < 12; pl++ {
		mask := p.planes[pl]
		for mask != 0 {
			sq := popLSB(&mask)
			grid[sq] = planeChars[pl]
		}
	}

	buf := make([]byte, 0, 8*17)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			buf = append(buf, grid[rank*8+file], ' ')
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// planeChars are the piece symbols in plane order.
var planeChars = [12]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}
