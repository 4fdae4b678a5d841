package board

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// tileFromChar converts a FEN piece letter into a Tile. Unknown letters
// come back as an empty tile.
func tileFromChar(ch rune) Tile {
	switch ch {
	case 'P':
		return Tile{Color: White, Piece: Pawn}
	case 'N':
		return Tile{Color: White, Piece: Knight}
	case 'B':
		return Tile{Color: White, Piece: Bishop}
	case 'R':
		return Tile{Color: White, Piece: Rook}
	case 'Q':
		return Tile{Color: White, Piece: Queen}
	case 'K':
		return Tile{Color: White, Piece: King}
	case 'p':
		return Tile{Color: Black, Piece: Pawn}
	case 'n':
		return Tile{Color: Black, Piece: Knight}
	case 'b':
		return Tile{Color: Black, Piece: Bishop}
	case 'r':
		return Tile{Color: Black, Piece: Rook}
	case 'q':
		return Tile{Color: Black, Piece: Queen}
	case 'k':
		return Tile{Color: Black, Piece: King}
	default:
		return Tile{Color: Empty, Piece: None}
	}
}

// charFromTile converts a Tile into its FEN letter, '.' when empty.
func charFromTile(t Tile) byte {
	letters := [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if t.Piece == None || t.Color == Empty {
		return '.'
	}
	ch := letters[t.Piece]
	if t.Color == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// ParseFEN parses a six-field FEN string into a Position. The halfmove
// clock and fullmove number are stored but play no legality role.
//
// Castling rights are rectified after parsing: a right whose rook or
// king is not on its home square is cleared.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	p := &Position{epFile: EPNone, fullmove: 1}
	p.colors[Empty] = ^Bitboard(0)

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		y := 7 - i
		x := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			t := tileFromChar(ch)
			if t.Piece == None {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if x >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			p.SetTile(x, y, t)
			x++
		}
		if x != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		p.turn = White
	case "b":
		p.turn = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castle[White][Kingside] = true
			case 'Q':
				p.castle[White][Queenside] = true
			case 'k':
				p.castle[Black][Kingside] = true
			case 'q':
				p.castle[Black][Queenside] = true
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}
	p.rectifyCastling()

	// 4. En passant target square; only the file is retained.
	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, errors.New("invalid FEN: invalid en passant square")
		}
		fileChar := fields[3][0]
		rankChar := fields[3][1]
		if fileChar < 'a' || fileChar > 'h' || rankChar < '1' || rankChar > '8' {
			return nil, errors.New("invalid FEN: en passant square out of range")
		}
		p.epFile = int(fileChar - 'a')
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("invalid FEN: halfmove clock is not a number")
		}
		p.halfmove = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("invalid FEN: fullmove number is not a number")
		}
		p.fullmove = fullmove
	}

	p.hash = p.ComputeZobrist()
	return p, nil
}

// rectifyCastling clears any right whose rook or king has left its home
// square. FEN strings seen in the wild carry stale rights.
func (p *Position) rectifyCastling() {
	corners := []struct {
		color Color
		side  int
		x, y  int
	}{
		{White, Kingside, 7, 0},
		{White, Queenside, 0, 0},
		{Black, Kingside, 7, 7},
		{Black, Queenside, 0, 7},
	}
	for _, c := range corners {
		t := p.Tile(c.x, c.y)
		if t.Color != c.color || t.Piece != Rook {
			p.castle[c.color][c.side] = false
		}
	}
	for _, home := range []struct {
		color Color
		y     int
	}{{White, 0}, {Black, 7}} {
		t := p.Tile(4, home.y)
		if t.Color != home.color || t.Piece != King {
			p.castle[home.color][Kingside] = false
			p.castle[home.color][Queenside] = false
		}
	}
}

// MustParseFEN parses a FEN string known to be valid and panics
// otherwise.
func MustParseFEN(fen string) Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return *p
}

// FEN produces the FEN string for the current position.
func (p *Position) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for y := 7; y >= 0; y-- {
		emptyCount := 0
		for x := 0; x < 8; x++ {
			t := p.Tile(x, y)
			if t.Piece == None {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(charFromTile(t))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if p.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if p.castleIndex() == 0 {
		sb.WriteByte('-')
	} else {
		if p.castle[White][Kingside] {
			sb.WriteByte('K')
		}
		if p.castle[White][Queenside] {
			sb.WriteByte('Q')
		}
		if p.castle[Black][Kingside] {
			sb.WriteByte('k')
		}
		if p.castle[Black][Queenside] {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant target. Only the file is tracked; the rank follows
	// from the side to move.
	if p.epFile < EPNone {
		sb.WriteByte('a' + byte(p.epFile))
		if p.turn == White {
			sb.WriteByte('6')
		} else {
			sb.WriteByte('3')
		}
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	// 5.-6. Clocks
	sb.WriteString(strconv.Itoa(p.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmove))
	return sb.String()
}
