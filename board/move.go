package board

import (
	"errors"
	"strings"
)

// Move is a coordinate move. Castling is encoded as a king move of two
// files; en passant as a diagonal pawn move onto an empty square;
// promotion by Promo != None.
type Move struct {
	FromX, FromY int
	ToX, ToY     int
	Promo        Piece
}

// ParseMove converts a UCI long-algebraic string (e2e4, e7e8q) into a Move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) != 4 && len(s) != 5 {
		return Move{}, errors.New("invalid move length")
	}
	fx, fy, err := algebraicToCoords(s[0:2])
	if err != nil {
		return Move{}, err
	}
	tx, ty, err := algebraicToCoords(s[2:4])
	if err != nil {
		return Move{}, err
	}
	promo := None
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return Move{}, errors.New("invalid promotion piece")
		}
	}
	return Move{FromX: fx, FromY: fy, ToX: tx, ToY: ty, Promo: promo}, nil
}

func algebraicToCoords(alg string) (x, y int, err error) {
	if len(alg) != 2 {
		return 0, 0, errors.New("invalid algebraic square length")
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, 0, errors.New("invalid algebraic square")
	}
	return int(file - 'a'), int(rank - '1'), nil
}

// String returns the UCI long-algebraic form of the move (e.g. "e2e4",
// "e7e8q").
func (m Move) String() string {
	b := []byte{
		'a' + byte(m.FromX),
		'1' + byte(m.FromY),
		'a' + byte(m.ToX),
		'1' + byte(m.ToY),
	}
	switch m.Promo {
	case Knight:
		b = append(b, 'n')
	case Bishop:
		b = append(b, 'b')
	case Rook:
		b = append(b, 'r')
	case Queen:
		b = append(b, 'q')
	}
	return string(b)
}
