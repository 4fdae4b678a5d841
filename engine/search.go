package engine

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"slices"

	"github.com/sampuka/gorilla-chess/board"
)

// Clock carries the time-control fields of a UCI go command, in
// milliseconds. A zero Clock means "no budget": strategies fall back to
// their defaults.
type Clock struct {
	WTime, BTime int
	WInc, BInc   int
	MoveTime     int
}

// SearchFunc chooses a move for the side to move. Every strategy in
// this package has this shape; the UCI layer treats them uniformly.
type SearchFunc func(pos *board.Position, clock Clock, rng *rand.Rand) board.Move

// ByName resolves the -engine flag values to their strategies.
func ByName(name string) (SearchFunc, bool) {
	switch strings.ToLower(name) {
	case "alphabeta":
		return AlphaBeta, true
	case "random":
		return Random, true
	case "greedy":
		return Greedy, true
	case "minimax":
		return Minimax, true
	case "mcts":
		return MCTS, true
	}
	return nil, false
}

const (
	scoreInf           = 100000.0
	maxPly             = 5
	maxQuiescenceDepth = 8

	// Hard cap on a single move's thinking time.
	maxMoveTimeMillis = 30000
)

// signOf converts the White-positive evaluators to the side-to-move
// perspective negamax needs.
func signOf(c board.Color) float64 {
	if c == board.White {
		return 1
	}
	return -1
}

// budget derives the time allowance for one move: the full movetime if
// given, otherwise the increment plus a quarter of the remaining clock,
// capped at 30 seconds.
func (c Clock) budget(turn board.Color) time.Duration {
	if c.MoveTime > 0 {
		return time.Duration(c.MoveTime) * time.Millisecond
	}
	left, inc := c.WTime, c.WInc
	if turn == board.Black {
		left, inc = c.BTime, c.BInc
	}
	ms := inc + left/4
	if ms <= 0 || ms > maxMoveTimeMillis {
		ms = maxMoveTimeMillis
	}
	return time.Duration(ms) * time.Millisecond
}

// AlphaBeta is the reference engine: iterative-deepening alpha-beta
// with quiescence and delta pruning. Each completed ply records its
// wall time; deepening stops once the projected cost of the next ply
// would overrun the budget, or at the ply cap.
func AlphaBeta(pos *board.Position, clock Clock, rng *rand.Rand) board.Move {
	moves := pos.Moves()
	if len(moves) == 0 {
		return board.Move{}
	}

	root := NewTree(pos.Clone())
	root.Expand(1)
	// Shuffling the root order breaks ties differently from game to
	// game; alpha-beta keeps the first move that reaches the best score.
	rng.Shuffle(len(root.Children), func(i, j int) {
		root.Children[i], root.Children[j] = root.Children[j], root.Children[i]
	})

	best := root.Children[0].Move
	budget := clock.budget(pos.Turn())
	start := time.Now()

	keys := make([]uint64, 0, 64)
	keys = append(keys, root.Pos.Hash())

	var lastPly, prevPly time.Duration
	for ply := 1; ply <= maxPly; ply++ {
		plyStart := time.Now()
		score := alphaBeta(root, -scoreInf, scoreInf, ply, &keys)
		prevPly, lastPly = lastPly, time.Since(plyStart)

		best = root.Best
		fmt.Printf("info depth %d score cp %d pv %s\n",
			ply, int(math.Round(score*100)), best)

		// Project the next ply's cost from the branching observed so
		// far and stop before overrunning the budget.
		ratio := 30.0
		if prevPly > 0 {
			ratio = math.Min(float64(lastPly)/float64(prevPly), 30)
		}
		projected := time.Duration(ratio * float64(lastPly))
		if time.Since(start)+projected > budget {
			break
		}
	}

	return best
}

// alphaBeta is fail-hard negamax. keys is the stack of position keys on
// the current line; hitting one again scores the node as a draw.
func alphaBeta(node *PositionTree, alpha, beta float64, depth int, keys *[]uint64) float64 {
	if depth == 0 {
		return quiesce(node, alpha, beta, maxQuiescenceDepth)
	}

	node.Expand(1)
	if len(node.Children) == 0 {
		// Checkmate or stalemate; the evaluator scores both. A mate met
		// with more depth left is a shorter mate, so it scores worse for
		// the mated side and the search prefers the quickest mate.
		score := signOf(node.Pos.Turn()) * node.Pos.AdvEval()
		if node.Pos.IsCheckmate() {
			score -= float64(depth)
		}
		return score
	}

	best := node.Children[0].Move
	for _, child := range node.Children {
		var score float64
		key := child.Pos.Hash()
		if slices.Contains(*keys, key) {
			score = 0 // repetition within the search window
		} else {
			*keys = append(*keys, key)
			score = -alphaBeta(child, -beta, -alpha, depth-1, keys)
			*keys = (*keys)[:len(*keys)-1]
		}

		if score >= beta {
			node.Best = child.Move
			return beta
		}
		if score > alpha {
			alpha = score
			best = child.Move
		}
	}
	node.Best = best
	return alpha
}

// quiesce extends the search past the horizon through capture
// continuations only, so the frontier evaluation lands on a quiet
// position. Delta pruning cuts branches where not even a queen swing
// (plus a promotion, if one just happened) could raise alpha.
func quiesce(node *PositionTree, alpha, beta float64, depth int) float64 {
	standPat := signOf(node.Pos.Turn()) * node.Pos.AdvEval()
	if standPat >= beta {
		return beta
	}

	delta := 9.0
	if node.Move.Promo != board.None {
		delta += 7
	}
	if standPat < alpha-delta {
		return alpha
	}

	if standPat > alpha {
		alpha = standPat
	}
	if depth == 0 {
		return alpha
	}

	node.Expand(1)
	captures := make([]*PositionTree, 0, len(node.Children))
	for _, child := range node.Children {
		if isCapture(&node.Pos, child.Move) {
			captures = append(captures, child)
		}
	}
	// Most valuable victim first.
	slices.SortStableFunc(captures, func(a, b *PositionTree) int {
		return victimValue(&node.Pos, b.Move) - victimValue(&node.Pos, a.Move)
	})

	for _, child := range captures {
		score := -quiesce(child, -beta, -alpha, depth-1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// isCapture reports whether the move takes a piece on the given parent
// position: the destination is occupied, or a pawn leaves its file
// (en passant).
func isCapture(parent *board.Position, m board.Move) bool {
	if parent.Tile(m.ToX, m.ToY).Piece != board.None {
		return true
	}
	return parent.Tile(m.FromX, m.FromY).Piece == board.Pawn && m.FromX != m.ToX
}

// victimValue scores the captured piece for move ordering, in
// centipawns. En passant always takes a pawn.
func victimValue(parent *board.Position, m board.Move) int {
	values := [6]int{100, 300, 300, 500, 900, 0}
	victim := parent.Tile(m.ToX, m.ToY).Piece
	if victim == board.None {
		victim = board.Pawn
	}
	return values[victim]
}
