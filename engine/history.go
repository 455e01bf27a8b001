package engine

import fm "fuzzymax/fuzzymg"

// Session owns the actual game line shared between the protocol loop and
// the engine: the current position and the ordered Zobrist history used for
// repetition detection. Search-internal positions never touch it.
type Session struct {
	Pos     fm.Position
	History []uint64
}

// NewSession starts a session at the standard initial position.
func NewSession() *Session {
	s := &Session{}
	s.Reset(fm.StartPosition())
	return s
}

// Reset rebinds the session to pos and restarts the hash history at it.
func (s *Session) Reset(pos fm.Position) {
	s.Pos = pos
	s.History = append(s.History[:0], pos.Hash())
}

// Play applies a move to the game line and records the resulting hash. The
// history grows only through real game moves, one hash per position reached.
func (s *Session) Play(m fm.Move) {
	s.Pos = s.Pos.MakeMove(m)
	s.History = append(s.History, s.Pos.Hash())
}

// IsThreefoldRepetition reports whether the current position has now
// occurred three times on the game line.
func (s *Session) IsThreefoldRepetition() bool {
	return s.Pos.IsThreefoldRepetition(s.History)
}
