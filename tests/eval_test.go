package gorillachess_test

import (
	"math"
	"strings"
	"testing"

	myboard "github.com/sampuka/gorilla-chess/board"
)

const evalEps = 1e-9

func TestBasicEval_StartposIsLevel(t *testing.T) {
	p := parse(t, myboard.FENStartPos)
	if got := p.BasicEval(); got != 0 {
		t.Fatalf("BasicEval(startpos): got %v want 0", got)
	}
	if got := p.AdvEval(); math.Abs(got) > evalEps {
		t.Fatalf("AdvEval(startpos): got %v want 0", got)
	}
}

func TestBasicEval_Material(t *testing.T) {
	cases := []struct {
		fen  string
		want float64
	}{
		{"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", 1},
		{"4k3/8/8/8/8/8/8/R3K1n1 w - - 0 1", 2},
		{"3qk3/8/8/8/8/8/8/4K3 b - - 0 1", -9},
		{"4k3/8/8/8/8/8/8/2B1K3 b - - 0 1", 3},
	}
	for _, c := range cases {
		p := parse(t, c.fen)
		if got := p.BasicEval(); got != c.want {
			t.Errorf("BasicEval(%s): got %v want %v", c.fen, got, c.want)
		}
	}
}

func TestAdvEval_PieceSquareBonus(t *testing.T) {
	// A lone pawn on e2 sits on the -0.20 square of its table.
	p := parse(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if got := p.AdvEval(); math.Abs(got-0.8) > evalEps {
		t.Fatalf("AdvEval lone e2 pawn: got %v want 0.8", got)
	}
}

func TestAdvEval_EndgameKingTable(t *testing.T) {
	// Bare kings force endgameness 1: the centralized king cashes in
	// +0.40 against the defender's -0.30 on its back-rank e8 square.
	p := parse(t, "4k3/8/8/3K4/8/8/8/8 w - - 0 1")
	if got := p.AdvEval(); math.Abs(got-0.70) > evalEps {
		t.Fatalf("AdvEval king endgame: got %v want 0.70", got)
	}
}

// mirrorFEN flips a position vertically and swaps the colors, producing
// the symmetric twin with the opposite side to move.
func mirrorFEN(fen string) string {
	fields := strings.Fields(fen)

	ranks := strings.Split(fields[0], "/")
	flipped := make([]string, 8)
	for i, r := range ranks {
		flipped[7-i] = swapCase(r)
	}

	turn := "w"
	if fields[1] == "w" {
		turn = "b"
	}

	castle := fields[2]
	if castle != "-" {
		castle = swapCase(castle)
	}

	ep := fields[3]
	if ep != "-" {
		rank := byte('6')
		if ep[1] == '6' {
			rank = '3'
		}
		ep = string([]byte{ep[0], rank})
	}

	out := []string{strings.Join(flipped, "/"), turn, castle, ep}
	out = append(out, fields[4:]...)
	return strings.Join(out, " ")
}

func swapCase(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r - 'A' + 'a')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func TestEval_Symmetry(t *testing.T) {
	fens := []string{
		myboard.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"8/5k2/8/2Q5/4K3/8/8/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}
	for _, fen := range fens {
		p := parse(t, fen)
		m := parse(t, mirrorFEN(fen))

		if got, want := m.BasicEval(), -p.BasicEval(); math.Abs(got-want) > evalEps {
			t.Errorf("BasicEval symmetry broken for %s: %v vs %v", fen, p.BasicEval(), got)
		}
		if got, want := m.AdvEval(), -p.AdvEval(); math.Abs(got-want) > evalEps {
			t.Errorf("AdvEval symmetry broken for %s: %v vs %v", fen, p.AdvEval(), got)
		}
	}
}
