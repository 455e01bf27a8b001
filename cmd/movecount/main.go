package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	fm "fuzzymax/fuzzymg"
)

func main() {
	fen := flag.String("fen", fm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Node-count depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat N times and report aggregate (for steadier timings)")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos := fm.ParseFEN(*fen)

	if *divide {
		div := fm.PerftDivide(pos, *depth)
		// Sort moves for stable output
		type kv struct {
			m fm.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += fm.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	fmt.Printf("%d \t%d \t%s \t%.0f\n", *depth, totalNodes, elapsed, nps)
}
