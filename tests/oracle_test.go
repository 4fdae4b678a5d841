package gorillachess_test

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	myboard "github.com/sampuka/gorilla-chess/board"
)

// The oracle suite replays a FEN corpus against dragontoothmg: both
// generators must agree on the exact legal move set and on shallow node
// counts.
var oracleFENs = []string{
	myboard.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R b kq - 0 1",
}

func dtPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		nodes += dtPerft(b, depth-1)
		undo()
	}
	return nodes
}

func TestOracle_MoveSets(t *testing.T) {
	for _, fen := range oracleFENs {
		p := parse(t, fen)
		ours := make([]string, 0, 64)
		for _, m := range p.Moves() {
			ours = append(ours, m.String())
		}
		sort.Strings(ours)

		dtBoard := dragontoothmg.ParseFen(fen)
		theirs := make([]string, 0, 64)
		for _, m := range dtBoard.GenerateLegalMoves() {
			theirs = append(theirs, m.String())
		}
		sort.Strings(theirs)

		if diff := cmp.Diff(theirs, ours); diff != "" {
			t.Errorf("%s: move set disagrees with oracle (-oracle +ours):\n%s", fen, diff)
		}
	}
}

func TestOracle_NodeCounts(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range oracleFENs {
		p := parse(t, fen)
		dtBoard := dragontoothmg.ParseFen(fen)
		for d := 1; d <= depth; d++ {
			want := dtPerft(&dtBoard, d)
			if got := myboard.Perft(p, d); got != want {
				t.Errorf("%s: perft(%d) = %d, oracle says %d", fen, d, got, want)
			}
		}
	}
}
