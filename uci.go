package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sampuka/gorilla-chess/board"
	"github.com/sampuka/gorilla-chess/engine"
)

func main() {
	engineName := flag.String("engine", "alphabeta", "search strategy: alphabeta, random, greedy, minimax, mcts")
	flag.Parse()

	think, ok := engine.ByName(*engineName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown engine %q\n", *engineName)
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	uciLoop(os.Stdin, think, rng)
}

func uciLoop(in io.Reader, think engine.SearchFunc, rng *rand.Rand) {
	scanner := bufio.NewScanner(in)
	pos := board.MustParseFEN(board.FENStartPos)

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name GorillaChess")
			fmt.Println("id author sampuka")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			pos = board.MustParseFEN(board.FENStartPos)
		case "position":
			if next, ok := parsePosition(line); ok {
				pos = next
			}
		case "go":
			clock := parseGo(line)
			move := think(&pos, clock, rng)
			fmt.Println("bestmove", move.String())
		case "stop":
			// Search runs synchronously; by the time stop is read there
			// is nothing left to interrupt.
		case "quit":
			return
		default:
			fmt.Println("info string Unknown command", tokens[0])
		}
	}
}

// parsePosition handles "position startpos [moves ...]" and
// "position fen <FEN> [moves ...]".
func parsePosition(line string) (board.Position, bool) {
	var pos board.Position

	posScanner := bufio.NewScanner(strings.NewReader(line))
	posScanner.Split(bufio.ScanWords)
	posScanner.Scan() // skip the first token
	if !posScanner.Scan() {
		fmt.Println("info string Malformed position command")
		return pos, false
	}

	switch strings.ToLower(posScanner.Text()) {
	case "startpos":
		pos = board.MustParseFEN(board.FENStartPos)
		posScanner.Scan() // advance the scanner to leave it in a consistent state
	case "fen":
		fenstr := ""
		for posScanner.Scan() && strings.ToLower(posScanner.Text()) != "moves" {
			fenstr += posScanner.Text() + " "
		}
		parsed, err := board.ParseFEN(fenstr)
		if err != nil {
			fmt.Println("info string Invalid fen position:", err)
			return pos, false
		}
		pos = *parsed
	default:
		fmt.Println("info string Invalid position subcommand")
		return pos, false
	}

	if strings.ToLower(posScanner.Text()) != "moves" {
		return pos, true
	}
	for posScanner.Scan() {
		moveStr := strings.ToLower(posScanner.Text())
		parsed, err := board.ParseMove(moveStr)
		if err != nil {
			fmt.Println("info string Skipping unparsable move", moveStr)
			continue
		}
		found := false
		for _, mv := range pos.Moves() {
			if mv == parsed {
				pos.MakeMove(mv)
				found = true
				break
			}
		}
		if !found {
			fmt.Println("info string Move", moveStr, "not legal in position", pos.FEN())
		}
	}
	return pos, true
}

// parseGo extracts the clock fields of a go command; unknown
// subcommands are reported and skipped.
func parseGo(line string) engine.Clock {
	var clock engine.Clock

	goScanner := bufio.NewScanner(strings.NewReader(line))
	goScanner.Split(bufio.ScanWords)
	goScanner.Scan() // skip the first token
	for goScanner.Scan() {
		nextToken := strings.ToLower(goScanner.Text())
		switch nextToken {
		case "infinite":
			continue
		case "wtime", "btime", "winc", "binc", "movetime":
			if !goScanner.Scan() {
				fmt.Println("info string Malformed go command option", nextToken)
				continue
			}
			value, err := strconv.Atoi(goScanner.Text())
			if err != nil {
				fmt.Println("info string Could not convert go option", nextToken)
				continue
			}
			switch nextToken {
			case "wtime":
				clock.WTime = value
			case "btime":
				clock.BTime = value
			case "winc":
				clock.WInc = value
			case "binc":
				clock.BInc = value
			case "movetime":
				clock.MoveTime = value
			}
		default:
			fmt.Println("info string Unknown go subcommand", nextToken)
		}
	}
	return clock
}
