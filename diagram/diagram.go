// Package diagram renders a position as a standalone SVG board image.
package diagram

import (
	"io"

	svg "github.com/ajstarks/svgo"

	fm "fuzzymax/fuzzymg"
)

const squareSize = 48

const (
	darkFill  = "fill:#b58863"
	lightFill = "fill:#f0d9b5"
)

// glyphs maps color then piece type (pawn..king) to its unicode figurine.
var glyphs = [2][6]string{
	{"♙", "♘", "♗", "♖", "♕", "♔"},
	{"♟", "♞", "♝", "♜", "♛", "♚"},
}

// Write renders pos as an 8x8 SVG board with white's first rank at the
// bottom, the usual orientation of printed diagrams.
func Write(w io.Writer, pos fm.Position) {
	canvas := svg.New(w)
	canvas.Start(8*squareSize, 8*squareSize)

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize

			fill := darkFill
			if (rank+file)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, squareSize, squareSize, fill)

			c, pt, ok := pos.PieceAt(fm.SquareOf(rank, file))
			if !ok {
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize*3/4,
				glyphs[c][pt-1],
				"text-anchor:middle;font-size:40px")
		}
	}

	canvas.End()
}
