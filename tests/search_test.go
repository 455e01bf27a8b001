package fuzzymax_test

import (
	"testing"
	"time"

	"fuzzymax/engine"
	fm "fuzzymax/fuzzymg"
)

func TestSearchPlaysOnlyLegalMove(t *testing.T) {
	pos := fm.ParseFEN("2r5/8/8/8/8/8/8/K1k5 w - - 0 1")

	for _, useBandit := range []bool{false, true} {
		cfg := engine.DefaultConfig()
		cfg.UseBandit = useBandit
		s := engine.NewSearcher(cfg)

		result := s.Search(pos, 0, 1)
		if result.BestMove.String() != "a1a2" {
			t.Errorf("useBandit=%v: best move %s, want a1a2", useBandit, result.BestMove)
		}
	}
}

func TestSearchPrefersHangingQueen(t *testing.T) {
	// White can take an undefended queen; a depth-1 bandit search with
	// material evaluation must find the capture.
	pos := fm.ParseFEN("4k3/8/8/4q3/4R3/8/8/4K3 w - - 0 1")

	cfg := engine.DefaultConfig()
	cfg.UseBandit = true
	cfg.Iterations = 400
	s := engine.NewSearcher(cfg)

	result := s.Search(pos, 0, 1)
	if result.BestMove.String() != "e4e5" {
		t.Fatalf("expected the rook to take the queen, got %s", result.BestMove)
	}
}

func TestStopCancelsPromptly(t *testing.T) {
	s := engine.NewSearcher(engine.DefaultConfig())

	done := make(chan engine.Result, 1)
	go func() {
		// Without a stop this depth would run for a very long time.
		done <- s.Search(fm.StartPosition(), 0, 30)
	}()

	time.Sleep(50 * time.Millisecond)
	s.Stop()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatalf("search did not honor the stop request")
	}
}

func TestMovetimeBoundsSearch(t *testing.T) {
	s := engine.NewSearcher(engine.DefaultConfig())

	start := time.Now()
	result := s.Search(fm.StartPosition(), 200*time.Millisecond, 0)
	elapsed := time.Since(start)

	if result.BestMove.IsNone() {
		t.Fatalf("expected a move under a time budget")
	}
	if elapsed > 10*time.Second {
		t.Fatalf("movetime was not enforced: %v", elapsed)
	}
}
