package engine

import (
	"github.com/sampuka/gorilla-chess/board"
)

// PositionTree is one node of the search tree: a position, the move
// that reached it, the node's evaluation, and the best reply found so
// far. Ownership runs strictly downward; search unwinds by return, so
// no parent pointer is kept.
type PositionTree struct {
	Pos      board.Position
	Move     board.Move
	Eval     float64
	Best     board.Move
	Children []*PositionTree

	expanded bool
}

// NewTree wraps a root position.
func NewTree(pos board.Position) *PositionTree {
	return &PositionTree{Pos: pos}
}

func newChild(parent *board.Position, m board.Move) *PositionTree {
	t := &PositionTree{Pos: parent.Clone(), Move: m}
	t.Pos.MakeMove(m)
	return t
}

// Expand generates all legal children down to depth n. Nodes already
// expanded keep their children and only recurse.
func (t *PositionTree) Expand(n int) {
	if !t.expanded {
		moves := t.Pos.Moves()
		t.Children = make([]*PositionTree, 0, len(moves))
		for _, m := range moves {
			t.Children = append(t.Children, newChild(&t.Pos, m))
		}
		t.expanded = true
	}
	if n > 1 {
		for _, c := range t.Children {
			c.Expand(n - 1)
		}
	}
}
