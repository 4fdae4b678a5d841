package engine

import (
	"math/rand"

	"github.com/sampuka/gorilla-chess/board"
)

// Random plays a uniformly random legal move. With no legal moves it
// returns the zero Move; callers detect the terminal position first.
func Random(pos *board.Position, _ Clock, rng *rand.Rand) board.Move {
	moves := pos.Moves()
	if len(moves) == 0 {
		return board.Move{}
	}
	return moves[rng.Intn(len(moves))]
}

// shuffled copies the move list in a random order, so equal evaluations
// do not always resolve to the same move.
func shuffled(moves []board.Move, rng *rand.Rand) []board.Move {
	out := make([]board.Move, len(moves))
	copy(out, moves)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Greedy plays the reply with the best advanced evaluation one ply
// deep.
func Greedy(pos *board.Position, _ Clock, rng *rand.Rand) board.Move {
	moves := pos.Moves()
	if len(moves) == 0 {
		return board.Move{}
	}

	sign := signOf(pos.Turn())
	order := shuffled(moves, rng)

	best := order[0]
	bestValue := -scoreInf
	for _, m := range order {
		child := pos.Clone()
		child.MakeMove(m)
		if eval := child.AdvEval() * sign; eval >= bestValue {
			bestValue = eval
			best = m
		}
	}
	return best
}

// Minimax looks two plies ahead on the material evaluator: for every
// own move it assumes the opponent picks the reply that is worst for
// the mover, and maximizes over that.
func Minimax(pos *board.Position, _ Clock, rng *rand.Rand) board.Move {
	moves := pos.Moves()
	if len(moves) == 0 {
		return board.Move{}
	}

	sign := signOf(pos.Turn())
	order := shuffled(moves, rng)

	best := order[0]
	bestValue := -scoreInf
	for _, m := range order {
		child := pos.Clone()
		child.MakeMove(m)

		replies := child.Moves()
		if len(replies) == 0 {
			// Mate or stalemate after our move; score it directly.
			if eval := child.BasicEval() * sign; eval >= bestValue {
				bestValue = eval
				best = m
			}
			continue
		}

		worst := scoreInf
		for _, r := range replies {
			grandchild := child.Clone()
			grandchild.MakeMove(r)
			if eval := grandchild.BasicEval() * sign; eval < worst {
				worst = eval
			}
		}

		if worst >= bestValue {
			bestValue = worst
			best = m
		}
	}
	return best
}
