package engine

import (
	"sync/atomic"
	"time"
)

const (
	timerTick     = 5 * time.Millisecond
	moveOverhead  = 30 * time.Millisecond // reserve for protocol/IO jitter
	minMoveBudget = 5 * time.Millisecond
)

// TimeHandler watches a per-move time budget and flips the shared stop flag
// once it elapses. The deadline sits slightly inside the budget so the
// search has room to unwind and report.
type TimeHandler struct{}

// Start launches the watchdog goroutine and returns a function that cancels
// it. The goroutine sleeps in small increments, checking the deadline on
// each tick; the search side polls the same flag at every recursive entry.
func (th TimeHandler) Start(budget time.Duration, stop *atomic.Bool) func() {
	deadline := time.Now().Add(softBudget(budget))
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(timerTick)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if stop.Load() {
					return
				}
				if !time.Now().Before(deadline) {
					stop.Store(true)
					return
				}
			}
		}
	}()

	return func() { close(done) }
}

// softBudget takes the protocol overhead out of the allotted time, clamped
// to a floor so very short budgets still search at all.
func softBudget(budget time.Duration) time.Duration {
	return Max(budget-moveOverhead, minMoveBudget)
}
