package checkers

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the opening layout in FEN notation.
const StartingFEN = "R:R1,2,3,4,5,6,7,8,9,10,11,12:B21,22,23,24,25,26,27,28,29,30,31,32"

// Position is the board plus the side to move. It is mutated in place by
// Execute and is not safe for concurrent use. Build one with
// StartingPosition, NewPosition or ParseFEN; the zero value has no board.
type Position struct {
	board *Board
	turn  Color
}

// StartingPosition returns the opening layout with Red to move.
func StartingPosition() *Position {
	return &Position{board: startingBoard(), turn: Red}
}

// NewPosition returns a position over a copy of b with turn to move.
// A nil board gives an empty one.
func NewPosition(b *Board, turn Color) *Position {
	if b == nil {
		return &Position{board: NewBoard(nil), turn: turn}
	}
	return &Position{board: b.copy(), turn: turn}
}

// Board returns the position's board.
func (pos *Position) Board() *Board { return pos.board }

// Turn returns the side to move.
func (pos *Position) Turn() Color { return pos.turn }

// MaterialCount returns the number of pieces side has on the board.
func (pos *Position) MaterialCount(side Color) int { return pos.board.MaterialCount(side) }

func (pos *Position) copy() *Position {
	return &Position{board: pos.board.copy(), turn: pos.turn}
}

// String implements the fmt.Stringer interface and returns the position
// in FEN notation, e.g. "R:R1,2,K3:B21,22".
func (pos *Position) String() string {
	var sb strings.Builder
	sb.WriteString(pos.turn.String())
	for _, c := range []Color{Red, Black} {
		sb.WriteByte(':')
		sb.WriteString(c.String())
		sep := ""
		for n := 1; n <= NumOfPlayableSquares; n++ {
			sq, _ := SquareFromNumber(n)
			p := pos.board.Piece(sq)
			if p.Color() != c {
				continue
			}
			sb.WriteString(sep)
			if p.Type() == King {
				sb.WriteByte('K')
			}
			sb.WriteString(strconv.Itoa(n))
			sep = ","
		}
	}
	return sb.String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (pos *Position) MarshalText() (text []byte, err error) {
	return []byte(pos.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (pos *Position) UnmarshalText(text []byte) error {
	parsed, err := decodeFEN(string(text))
	if err != nil {
		return err
	}
	*pos = *parsed
	return nil
}

// ParseFEN parses a position in FEN notation. Each color section lists
// square numbers, K marks a king and a-b gives an inclusive range of men.
func ParseFEN(fen string) (*Position, error) {
	return decodeFEN(fen)
}

func decodeFEN(fen string) (*Position, error) {
	fen = strings.TrimSuffix(strings.TrimSpace(fen), ".")
	parts := strings.Split(fen, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("checkers: fen %q: expected 3 sections but got %d: %w", fen, len(parts), ErrInvalidFEN)
	}
	turn, err := fenColor(parts[0])
	if err != nil {
		return nil, fmt.Errorf("checkers: fen %q: turn: %w", fen, err)
	}

	m := map[Square]Piece{}
	seen := map[Color]bool{}
	for _, section := range parts[1:] {
		section = strings.TrimSpace(section)
		if section == "" {
			return nil, fmt.Errorf("checkers: fen %q: empty color section: %w", fen, ErrInvalidFEN)
		}
		c, err := fenColor(section[:1])
		if err != nil {
			return nil, fmt.Errorf("checkers: fen %q: %w", fen, err)
		}
		if seen[c] {
			return nil, fmt.Errorf("checkers: fen %q: color %s listed twice: %w", fen, c.Name(), ErrInvalidFEN)
		}
		seen[c] = true
		if err := fenPieces(section[1:], c, m); err != nil {
			return nil, fmt.Errorf("checkers: fen %q: %w", fen, err)
		}
	}
	return &Position{board: NewBoard(m), turn: turn}, nil
}

func fenColor(s string) (Color, error) {
	switch strings.TrimSpace(s) {
	case "R", "r":
		return Red, nil
	case "B", "b":
		return Black, nil
	}
	return NoColor, fmt.Errorf("unknown color %q: %w", s, ErrInvalidFEN)
}

// fenPieces adds the comma separated pieces of one color section to m.
func fenPieces(list string, c Color, m map[Square]Piece) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		pt := Man
		if strings.HasPrefix(item, "K") {
			pt = King
			item = item[1:]
		}
		lo, hi := item, item
		if i := strings.IndexByte(item, '-'); i > 0 && pt == Man {
			lo, hi = item[:i], item[i+1:]
		}
		from, err1 := strconv.Atoi(lo)
		to, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil || from > to {
			return fmt.Errorf("bad square %q: %w", item, ErrInvalidFEN)
		}
		for n := from; n <= to; n++ {
			sq, err := SquareFromNumber(n)
			if err != nil {
				return err
			}
			if _, dup := m[sq]; dup {
				return fmt.Errorf("square %d listed twice: %w", n, ErrInvalidFEN)
			}
			m[sq] = NewPiece(pt, c)
		}
	}
	return nil
}
