package engine

import (
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	fm "fuzzymax/fuzzymg"
)

// Strategy is the common recursive shape shared by both search algorithms.
// The value is negamax-style: relative to the side to move at the node, with
// a parent combining children by sign negation. The line is the variation
// the search would play from the node.
type Strategy interface {
	Evaluate(pos fm.Position, depth int) (float64, PVLine)
}

// SoftmaxSearch explores the full tree and, instead of taking the maximum
// child, samples a child with probability proportional to
// exp(Beta*(value-max)). The value it returns is the log-partition of the
// child weights, not the value of the sampled line.
type SoftmaxSearch struct {
	Eval Evaluator
	Beta float64 // softmax temperature

	rng  *rand.Rand
	stop *atomic.Bool
}

// NewSoftmaxSearch builds a softmax searcher polling stop at each node.
func NewSoftmaxSearch(eval Evaluator, stop *atomic.Bool) *SoftmaxSearch {
	return &SoftmaxSearch{
		Eval: eval,
		Beta: 1.0,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		stop: stop,
	}
}

func (s *SoftmaxSearch) Evaluate(pos fm.Position, depth int) (float64, PVLine) {
	if s.stop.Load() || depth <= 0 {
		return s.Eval(pos), PVLine{}
	}
	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		// Checkmate or stalemate; the caller recognizes the terminal state
		// through the empty line.
		return s.Eval(pos), PVLine{}
	}

	childVals := make([]float64, len(moves))
	childPVs := make([]PVLine, len(moves))
	maxVal := math.Inf(-1)
	for i, m := range moves {
		val, childPV := s.Evaluate(pos.MakeMove(m), depth-1)
		childVals[i] = -val
		childPVs[i] = childPV
		maxVal = Max(maxVal, childVals[i])
	}

	weights := make([]float64, len(moves))
	total := 0.0
	for i, v := range childVals {
		w := math.Exp(s.Beta * (v - maxVal))
		weights[i] = w
		total += w
	}

	// Sample one child proportionally to its weight.
	r := s.rng.Float64() * total
	chosen := 0
	accum := 0.0
	for i, w := range weights {
		accum += w
		if accum >= r {
			chosen = i
			break
		}
	}

	var pv PVLine
	pv.Update(moves[chosen], childPVs[chosen])
	return math.Log(total)/s.Beta + maxVal, pv
}

// BanditSearch treats each legal move as the arm of a multi-armed bandit and
// spends a fixed number of iterations on UCB1-guided simulations. The answer
// is the arm with the highest average reward; its value is that average.
type BanditSearch struct {
	Eval       Evaluator
	Iterations int

	stop *atomic.Bool
}

// NewBanditSearch builds a bandit searcher polling stop at each node.
func NewBanditSearch(eval Evaluator, iterations int, stop *atomic.Bool) *BanditSearch {
	return &BanditSearch{Eval: eval, Iterations: iterations, stop: stop}
}

func (s *BanditSearch) Evaluate(pos fm.Position, depth int) (float64, PVLine) {
	if s.stop.Load() || depth <= 0 {
		return s.Eval(pos), PVLine{}
	}
	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		return s.Eval(pos), PVLine{}
	}

	plays := make([]int, len(moves))
	totalReward := make([]float64, len(moves))
	bestReward := make([]float64, len(moves))
	bestPV := make([]PVLine, len(moves))

	for iter := 1; iter <= s.Iterations; iter++ {
		// UCB1 selection; unplayed arms have infinite priority, so they are
		// visited first in generation order.
		arm := 0
		bestUCB := math.Inf(-1)
		for i := range moves {
			ucb := math.Inf(1)
			if plays[i] > 0 {
				avg := totalReward[i] / float64(plays[i])
				ucb = avg + math.Sqrt(2*math.Log(float64(iter))/float64(plays[i]))
			}
			if ucb > bestUCB {
				bestUCB = ucb
				arm = i
			}
		}

		val, childPV := s.Evaluate(pos.MakeMove(moves[arm]), depth-1)
		reward := -val

		plays[arm]++
		totalReward[arm] += reward
		if plays[arm] == 1 || reward > bestReward[arm] {
			bestReward[arm] = reward
			bestPV[arm] = childPV
		}
	}

	bestArm := 0
	bestAvg := math.Inf(-1)
	for i := range moves {
		if plays[i] == 0 {
			continue
		}
		avg := totalReward[i] / float64(plays[i])
		if avg > bestAvg {
			bestAvg = avg
			bestArm = i
		}
	}

	var pv PVLine
	pv.Update(moves[bestArm], bestPV[bestArm])
	return bestAvg, pv
}

// Result is what a completed search hands back to the protocol layer.
type Result struct {
	BestMove fm.Move
	Value    float64
	Depth    int
	PV       PVLine
}

// Searcher drives iterative deepening over one of the two strategies. The
// stop flag is the only state shared with the timer goroutine; it only ever
// transitions false to true during one search, so polling it unlocked is
// safe.
type Searcher struct {
	Config Config
	Eval   Evaluator

	stop  atomic.Bool
	timer TimeHandler
}

// NewSearcher builds a Searcher with material evaluation and the given
// configuration.
func NewSearcher(cfg Config) *Searcher {
	return &Searcher{Config: cfg.sanitized(), Eval: Material}
}

// Stop requests a cooperative cancel of the search in flight. In-flight
// recursive calls fall back to their static evaluation rather than being
// forcibly unwound.
func (s *Searcher) Stop() { s.stop.Store(true) }

func (s *Searcher) strategy() Strategy {
	if s.Config.UseBandit {
		return NewBanditSearch(s.Eval, s.Config.Iterations, &s.stop)
	}
	return NewSoftmaxSearch(s.Eval, &s.stop)
}

// Search runs iterative deepening from pos. A positive movetime runs under a
// time budget enforced by the timer goroutine; otherwise the loop runs to a
// fixed depth (maxDepth when positive, else Config.MaxDepth). After each
// completed depth the depth, evaluation and line are reported, and the line
// is kept as the fallback should the next depth be cut short. An empty line
// at the end means the root has no legal moves.
func (s *Searcher) Search(pos fm.Position, movetime time.Duration, maxDepth int) Result {
	s.stop.Store(false)
	st := s.strategy()

	if maxDepth <= 0 {
		maxDepth = s.Config.MaxDepth
	}
	useTime := movetime > 0
	if useTime {
		cancel := s.timer.Start(movetime, &s.stop)
		defer cancel()
	}

	started := time.Now()
	best := Result{BestMove: fm.NoMove}
	for depth := 1; ; depth++ {
		if s.stop.Load() {
			break
		}

		value, pv := st.Evaluate(pos, depth)

		if s.stop.Load() {
			// Cut short mid-depth: keep the shallow line only if nothing
			// deeper completed before.
			if best.Depth == 0 && len(pv.Moves) > 0 {
				best = Result{BestMove: pv.GetPVMove(), Value: value, Depth: depth, PV: pv.Clone()}
			}
			break
		}

		if len(pv.Moves) > 0 {
			best = Result{BestMove: pv.GetPVMove(), Value: value, Depth: depth, PV: pv.Clone()}
		}
		fmt.Printf("info depth %d eval %.2f pv %s\n", depth, value, pv)

		if useTime {
			if time.Since(started) > movetime {
				break
			}
		} else if depth >= maxDepth {
			break
		}
	}
	return best
}
