package board

import (
	"math/rand"
	"testing"
)

func TestIncrementalHashMatchesRecompute(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for game := 0; game < 5; game++ {
		p := MustParseFEN(FENStartPos)
		if p.Hash() != p.ComputeZobrist() {
			t.Fatalf("hash mismatch right after parse")
		}
		for ply := 0; ply < 80; ply++ {
			moves := p.Moves()
			if len(moves) == 0 {
				break
			}
			m := moves[rng.Intn(len(moves))]
			p.MakeMove(m)
			if p.Hash() != p.ComputeZobrist() {
				t.Fatalf("game %d ply %d: incremental hash diverged after %s\n%s", game, ply, m, &p)
			}
			if !p.Validate() {
				t.Fatalf("game %d ply %d: invariants broken after %s\n%s", game, ply, m, &p)
			}
		}
	}
}

func TestHashDistinguishesState(t *testing.T) {
	a := MustParseFEN(FENStartPos)
	b := MustParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	if a.Hash() == b.Hash() {
		t.Fatalf("side to move must change the key")
	}

	c := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	d := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1")
	if c.Hash() == d.Hash() {
		t.Fatalf("castling rights must change the key")
	}

	e := MustParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	f := MustParseFEN("k7/8/8/3pP3/8/8/8/7K w - - 0 2")
	if e.Hash() == f.Hash() {
		t.Fatalf("en passant file must change the key")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := MustParseFEN(FENStartPos)
	c := p.Clone()

	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}
	c.MakeMove(m)

	if p.Tile(4, 1).Piece != Pawn {
		t.Fatalf("mutating the clone touched the parent")
	}
	if p.Hash() == c.Hash() {
		t.Fatalf("clone should have diverged from the parent")
	}
	if p.Turn() == c.Turn() {
		t.Fatalf("clone turn should have flipped")
	}
}

func TestSetTilePanicsOutOfBounds(t *testing.T) {
	p := MustParseFEN(FENStartPos)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-bounds SetTile")
		}
	}()
	p.SetTile(8, 0, Tile{Color: Empty, Piece: None})
}
