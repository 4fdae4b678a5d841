package main

import (
	"testing"

	"github.com/sampuka/gorilla-chess/board"
)

func TestParseGo(t *testing.T) {
	clock := parseGo("go wtime 60000 btime 59000 winc 1000 binc 900")
	if clock.WTime != 60000 || clock.BTime != 59000 || clock.WInc != 1000 || clock.BInc != 900 {
		t.Fatalf("parseGo clock mismatch: %+v", clock)
	}

	clock = parseGo("go movetime 2500")
	if clock.MoveTime != 2500 {
		t.Fatalf("parseGo movetime: got %d want 2500", clock.MoveTime)
	}
}

func TestParsePosition_StartposMoves(t *testing.T) {
	pos, ok := parsePosition("position startpos moves e2e4 e7e5 g1f3")
	if !ok {
		t.Fatalf("parsePosition failed")
	}
	if pos.Turn() != board.Black {
		t.Fatalf("expected Black to move after three half-moves")
	}
	if got := pos.Tile(4, 3); got.Piece != board.Pawn || got.Color != board.White {
		t.Fatalf("expected white pawn on e4, got %+v", got)
	}
	if got := pos.Tile(5, 2); got.Piece != board.Knight || got.Color != board.White {
		t.Fatalf("expected white knight on f3, got %+v", got)
	}
}

func TestParsePosition_FEN(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	pos, ok := parsePosition("position fen " + fen)
	if !ok {
		t.Fatalf("parsePosition failed for FEN input")
	}
	if pos.FEN() != fen {
		t.Fatalf("FEN mismatch: got %q want %q", pos.FEN(), fen)
	}
}
