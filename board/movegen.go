package board

// Direction tables for the sliding pieces.
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// The eight knight offsets.
var knightOffsets = [8][2]int{
	{-1, 2}, {1, 2}, {2, 1}, {2, -1},
	{1, -2}, {-1, -2}, {-2, -1}, {-2, 1},
}

// Moves returns the legal move list for the side to move, computing and
// caching it on first use. The returned slice is owned by the Position
// and stays valid until the next mutation.
func (p *Position) Moves() []Move {
	if !p.movesOK {
		p.findMoves()
	}
	return p.moves
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	return len(p.Moves()) > 0
}

// Threat returns the set of squares the side to move attacks or
// defends. Own pieces covered by an attack pattern are included, and
// the king marks its own square; castling tests depend on both.
func (p *Position) Threat() Bitboard {
	if !p.threatOK {
		_, p.threat = p.generate(true)
		p.threatOK = true
	}
	return p.threat
}

// EnemyThreat returns the threat map of the opposing side, computed on
// a clone with the turn flipped.
func (p *Position) EnemyThreat() Bitboard {
	if !p.enemyThreatOK {
		oppo := p.Clone()
		oppo.SetTurn(p.turn.Other())
		p.enemyThreat = oppo.Threat()
		p.enemyThreatOK = true
	}
	return p.enemyThreat
}

// InCheck reports whether the mover's king stands on a threatened square.
func (p *Position) InCheck() bool {
	return p.EnemyThreat()&p.Bitboard(p.turn, King) != 0
}

// IsCheckmate reports whether the side to move has no legal moves while
// in check.
func (p *Position) IsCheckmate() bool {
	if len(p.Moves()) != 0 {
		return false
	}
	return p.EnemyThreat()&p.Bitboard(p.turn, King) != 0
}

// IsStalemate reports whether the side to move has no legal moves and
// is not in check.
func (p *Position) IsStalemate() bool {
	if len(p.Moves()) != 0 || p.IsCheckmate() {
		return false
	}
	return p.EnemyThreat()&p.Bitboard(p.turn, King) == 0
}

// generate walks every piece of the side to move, producing the
// pseudo-legal move list and the threat map. In threatOnly mode pawn
// move emission and castling are skipped; the threat bits are the same
// either way except for pawn push destinations, which only count as
// threatened when they are reachable moves.
func (p *Position) generate(threatOnly bool) ([]Move, Bitboard) {
	player := p.turn
	enemy := player.Other()

	var threat Bitboard
	var enemyThreat Bitboard
	if !threatOnly {
		// Needed for castling legality below; cached for the filter.
		enemyThreat = p.EnemyThreat()
	}

	moves := make([]Move, 0, 64)

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			tile := p.Tile(x, y)
			if tile.Color != player {
				continue
			}

			switch tile.Piece {
			case Pawn:
				dir := 1
				startRank, epRank := 1, 4
				if player == Black {
					dir = -1
					startRank, epRank = 6, 3
				}

				// Pushes never threaten; they are only moves.
				if p.Tile(x, y+dir).Color == Empty {
					if !threatOnly {
						moves = appendPawnMoves(moves, x, y, x, y+dir)
					}
					if y == startRank && p.Tile(x, y+2*dir).Color == Empty {
						if !threatOnly {
							moves = appendPawnMoves(moves, x, y, x, y+2*dir)
						}
					}
				}

				// Diagonals always threaten, even when empty.
				for _, dx := range [2]int{-1, 1} {
					t := p.Tile(x+dx, y+dir)
					if t.OOB {
						continue
					}
					threat.Write(x+dx, y+dir, true)
					if !threatOnly && (t.Color == enemy || (y == epRank && p.epFile == x+dx)) {
						moves = appendPawnMoves(moves, x, y, x+dx, y+dir)
					}
				}

			case Knight:
				for _, d := range knightOffsets {
					tx, ty := x+d[0], y+d[1]
					t := p.Tile(tx, ty)
					if t.OOB {
						continue
					}
					threat.Write(tx, ty, true)
					if t.Color != player {
						moves = append(moves, Move{FromX: x, FromY: y, ToX: tx, ToY: ty, Promo: None})
					}
				}

			case Bishop:
				moves = p.rayMoves(moves, &threat, x, y, bishopDirs[:], player, enemy)

			case Rook:
				moves = p.rayMoves(moves, &threat, x, y, rookDirs[:], player, enemy)

			case Queen:
				moves = p.rayMoves(moves, &threat, x, y, bishopDirs[:], player, enemy)
				moves = p.rayMoves(moves, &threat, x, y, rookDirs[:], player, enemy)

			case King:
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						if dx == 0 && dy == 0 {
							continue
						}
						tx, ty := x+dx, y+dy
						t := p.Tile(tx, ty)
						if t.OOB {
							continue
						}
						threat.Write(tx, ty, true)
						if t.Color != player {
							moves = append(moves, Move{FromX: x, FromY: y, ToX: tx, ToY: ty, Promo: None})
						}
					}
				}

				// The king defends its own square; the enemy-threat
				// intersection tests during castling rely on the bit.
				threat.Write(x, y, true)

				// Castling is emitted only when generating moves and
				// never marks threat.
				if !threatOnly {
					if p.castle[player][Kingside] &&
						p.Tile(5, y).Color == Empty && p.Tile(6, y).Color == Empty {
						var path Bitboard
						path.Write(4, y, true)
						path.Write(5, y, true)
						path.Write(6, y, true)
						if enemyThreat&path == 0 {
							moves = append(moves, Move{FromX: x, FromY: y, ToX: 6, ToY: y, Promo: None})
						}
					}
					if p.castle[player][Queenside] &&
						p.Tile(1, y).Color == Empty && p.Tile(2, y).Color == Empty && p.Tile(3, y).Color == Empty {
						// b1/b8 must be empty but only the king's path
						// has to be safe.
						var path Bitboard
						path.Write(2, y, true)
						path.Write(3, y, true)
						path.Write(4, y, true)
						if enemyThreat&path == 0 {
							moves = append(moves, Move{FromX: x, FromY: y, ToX: 2, ToY: y, Promo: None})
						}
					}
				}
			}
		}
	}

	// Every move destination counts as threatened, covering squares a
	// piece can reach without attacking them (pawn pushes).
	for _, m := range moves {
		threat.Write(m.ToX, m.ToY, true)
	}

	return moves, threat
}

// rayMoves walks the given directions outward from (x, y), marking
// threat on every reached square. An own piece stops the ray without a
// move; an enemy piece stops it with a capture.
func (p *Position) rayMoves(moves []Move, threat *Bitboard, x, y int, dirs [][2]int, player, enemy Color) []Move {
	for _, d := range dirs {
		for i := 1; ; i++ {
			tx, ty := x+i*d[0], y+i*d[1]
			t := p.Tile(tx, ty)
			if t.OOB {
				break
			}
			threat.Write(tx, ty, true)
			if t.Color == player {
				break
			}
			moves = append(moves, Move{FromX: x, FromY: y, ToX: tx, ToY: ty, Promo: None})
			if t.Color == enemy {
				break
			}
		}
	}
	return moves
}

// appendPawnMoves emits the move, fanned out into the four promotions
// when the destination is a back rank.
func appendPawnMoves(moves []Move, fx, fy, tx, ty int) []Move {
	if ty == 7 || ty == 0 {
		return append(moves,
			Move{FromX: fx, FromY: fy, ToX: tx, ToY: ty, Promo: Knight},
			Move{FromX: fx, FromY: fy, ToX: tx, ToY: ty, Promo: Bishop},
			Move{FromX: fx, FromY: fy, ToX: tx, ToY: ty, Promo: Rook},
			Move{FromX: fx, FromY: fy, ToX: tx, ToY: ty, Promo: Queen},
		)
	}
	return append(moves, Move{FromX: fx, FromY: fy, ToX: tx, ToY: ty, Promo: None})
}

// findMoves runs the generator and filters the pseudo-legal list down
// to moves that leave the mover's king unattacked. Quiet moves of
// pieces that are not on a threatened square while the king is safe
// cannot expose the king and are accepted without simulation; the rest
// are verified on a clone.
func (p *Position) findMoves() {
	player := p.turn
	enemyThreat := p.EnemyThreat()

	pseudo, threat := p.generate(false)
	p.threat = threat
	p.threatOK = true

	kingBB := p.Bitboard(player, King)
	underThreat := enemyThreat&kingBB != 0

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		from := p.PieceAt(m.FromX, m.FromY)

		// The king may never step onto a threatened square. Castling is
		// already filtered at generation.
		if from == King && enemyThreat.Read(m.ToX, m.ToY) {
			continue
		}

		// In check, possibly pinned, or a diagonal pawn move (the en
		// passant discovery cannot be read off the origin square):
		// verify by simulation.
		if underThreat || enemyThreat.Read(m.FromX, m.FromY) || (from == Pawn && m.FromX != m.ToX) {
			next := p.Clone()
			next.MakeMove(m)
			if next.Threat()&next.Bitboard(player, King) != 0 {
				continue
			}
		}

		legal = append(legal, m)
	}

	p.moves = legal
	p.movesOK = true
}
