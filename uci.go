package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fuzzymax/engine"
	fm "fuzzymax/fuzzymg"
)

// configFile is where setoption changes are persisted between runs.
const configFile = "fuzzymax.json"

func main() {
	uciLoop()
}

func uciLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	session := engine.NewSession()
	searcher := engine.NewSearcher(engine.LoadConfig(configFile))

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name fuzzymax")
			fmt.Println("id author the fuzzymax authors")
			fmt.Printf("option name MAB type check default %v\n", searcher.Config.UseBandit)
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			session.Reset(fm.StartPosition())
		case "setoption":
			handleSetOption(line, searcher)
		case "position":
			handlePosition(tokens, session)
		case "go":
			handleGo(tokens, session, searcher)
		case "stop":
			searcher.Stop()
		case "d":
			fmt.Print(session.Pos)
			fmt.Println(session.Pos.Turn(), "to move")
		case "quit":
			return
		}
	}
}

func handleSetOption(line string, searcher *engine.Searcher) {
	if !strings.Contains(line, "name MAB") {
		return
	}
	searcher.Config.UseBandit = strings.Contains(line, "value true")
	if err := searcher.Config.Save(configFile); err != nil {
		fmt.Println("info string could not persist config:", err)
	}
}

func handlePosition(tokens []string, session *engine.Session) {
	if len(tokens) < 2 {
		return
	}

	i := 2
	switch tokens[1] {
	case "startpos":
		session.Reset(fm.StartPosition())
	case "fen":
		var fenParts []string
		for i < len(tokens) && tokens[i] != "moves" {
			fenParts = append(fenParts, tokens[i])
			i++
		}
		session.Reset(fm.ParseFEN(strings.Join(fenParts, " ")))
	default:
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		for _, tok := range tokens[i+1:] {
			m, err := fm.ParseMove(tok)
			if err != nil {
				fmt.Println("info string ignoring malformed move", tok)
				continue
			}
			session.Play(m)
		}
	}
}

func handleGo(tokens []string, session *engine.Session, searcher *engine.Searcher) {
	movetime, depth := parseGo(tokens)

	result := searcher.Search(session.Pos, movetime, depth)
	if result.BestMove.IsNone() {
		fmt.Println("bestmove 0000")
		return
	}
	fmt.Println("bestmove", result.BestMove)
	session.Play(result.BestMove)
}

// parseGo extracts the movetime budget and fixed depth from a "go" command.
// Unknown options and malformed values are skipped.
func parseGo(tokens []string) (movetime time.Duration, depth int) {
	for i := 1; i+1 < len(tokens); i++ {
		switch strings.ToLower(tokens[i]) {
		case "movetime":
			if ms, err := strconv.Atoi(tokens[i+1]); err == nil && ms > 0 {
				movetime = time.Duration(ms) * time.Millisecond
			}
			i++
		case "depth":
			if d, err := strconv.Atoi(tokens[i+1]); err == nil && d > 0 {
				depth = d
			}
			i++
		}
	}
	return movetime, depth
}
