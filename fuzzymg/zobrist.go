package fuzzymg

import (
	"math/rand"
	"sync"
	"time"
)

// Zobrist tables: one random 64-bit key per (plane, square) pair plus one
// key XORed in when Black is to move.
var (
	zobristOnce  sync.Once
	zobristPiece [12][64]uint64
	zobristSide  uint64
)

// initZobrist fills the tables on first use. The seed is time-based: hashes
// are only compared within one process's game history, so there is no
// cross-run reproducibility requirement.
func initZobrist() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for pl := 0; pl < 12; pl++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[pl][sq] = rnd.Uint64()
		}
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist fingerprint of the position: the XOR of the keys
// for every occupied (plane, square) pair, with the side key folded in when
// Black is to move. Cost is proportional to the piece count; there is no
// incremental update.
func (p Position) Hash() uint64 {
	zobristOnce.Do(initZobrist)

	var key uint64
	for pl := 0; pl < 12; pl++ {
		mask := p.planes[pl]
		for mask != 0 {
			sq := popLSB(&mask)
			key ^= zobristPiece[pl][sq]
		}
	}
	if p.side == Black {
		key ^= zobristSide
	}
	return key
}
