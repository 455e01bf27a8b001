package main

import (
	"flag"
	"fmt"
	"os"

	"fuzzymax/diagram"
	fm "fuzzymax/fuzzymg"
)

func main() {
	fen := flag.String("fen", fm.FENStartPos, "FEN string (defaults to initial position)")
	out := flag.String("out", "", "Output file (defaults to stdout)")
	flag.Parse()

	pos := fm.ParseFEN(*fen)

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating %s: %v\n", *out, err)
			os.Exit(2)
		}
		defer f.Close()
		w = f
	}

	diagram.Write(w, pos)
}
