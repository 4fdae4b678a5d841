package board

import "math/rand"

// Zobrist tables for pieces, castling rights, en passant file, and side
// to move.
var zobristPiece [2][6][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed keeps keys reproducible across runs and in tests.
	rnd := rand.New(rand.NewSource(0x60121117A))

	for c := 0; c < 2; c++ {
		for p := 0; p < 6; p++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][p][sq] = rnd.Uint64()
			}
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// castleIndex packs the four castling rights into a table index.
func (p *Position) castleIndex() int {
	idx := 0
	if p.castle[White][Kingside] {
		idx |= 1
	}
	if p.castle[White][Queenside] {
		idx |= 2
	}
	if p.castle[Black][Kingside] {
		idx |= 4
	}
	if p.castle[Black][Queenside] {
		idx |= 8
	}
	return idx
}

// ComputeZobrist calculates the position key from scratch. The Position
// maintains the same key incrementally; this is the reference for
// validating it.
func (p *Position) ComputeZobrist() uint64 {
	var key uint64
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			t := p.Tile(x, y)
			if t.Piece != None && t.Color != Empty {
				key ^= zobristPiece[t.Color][t.Piece][y*8+x]
			}
		}
	}
	if p.turn == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castleIndex()]
	if p.epFile < EPNone {
		key ^= zobristEnPassant[p.epFile]
	}
	return key
}
