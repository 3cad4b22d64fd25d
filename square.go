package checkers

import (
	"fmt"
	"strconv"
	"strings"
)

// A Square is one of the 64 squares on the board, indexed row*8 + col.
// Row 0 is Red's home row.
type Square int8

// NoSquare represents the absence of a square.
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NumOfPlayableSquares is the number of dark squares pieces may occupy.
const NumOfPlayableSquares = 32

// A File is one of the eight columns, a through h.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// String implements the fmt.Stringer interface.
func (f File) String() string {
	if f < FileA || f > FileH {
		return "?"
	}
	return string(rune('a' + f))
}

// A Rank is one of the eight rows, 1 through 8.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// String implements the fmt.Stringer interface.
func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return "?"
	}
	return string(rune('1' + r))
}

// NewSquare returns the square at file f and rank r, or NoSquare when
// either is off the board.
func NewSquare(f File, r Rank) Square {
	if f < FileA || f > FileH || r < Rank1 || r > Rank8 {
		return NoSquare
	}
	return Square(int(r)*NumOfFiles + int(f))
}

// Valid reports whether sq is one of the 64 board squares.
func (sq Square) Valid() bool { return sq >= A1 && sq <= H8 }

// File returns the square's file.
func (sq Square) File() File { return File(int(sq) % NumOfFiles) }

// Rank returns the square's rank.
func (sq Square) Rank() Rank { return Rank(int(sq) / NumOfFiles) }

// Playable reports whether sq is a dark square, the only squares pieces
// ever occupy.
func (sq Square) Playable() bool {
	return sq.Valid() && (int(sq.Rank())+int(sq.File()))%2 == 1
}

// String returns the algebraic name of the square, e.g. "b3", or "?" for
// squares off the board.
func (sq Square) String() string {
	if !sq.Valid() {
		return "?"
	}
	return sq.File().String() + sq.Rank().String()
}

// Number returns the standard 1..32 draughts number of a playable square,
// or 0 for light and invalid squares.
func (sq Square) Number() int {
	if !sq.Playable() {
		return 0
	}
	return int(sq.Rank())*4 + int(sq.File())/2 + 1
}

// ParseSquare parses algebraic notation such as "b3". The file is case
// insensitive.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("checkers: %q: %w", s, ErrInvalidCoordinate)
	}
	file := strings.ToLower(s[:1])[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("checkers: %q: %w", s, ErrInvalidCoordinate)
	}
	return NewSquare(File(file-'a'), Rank(rank-'1')), nil
}

// SquareFromNumber maps a standard draughts number 1..32 to its square.
func SquareFromNumber(n int) (Square, error) {
	if n < 1 || n > NumOfPlayableSquares {
		return NoSquare, fmt.Errorf("checkers: square number %d: %w", n, ErrInvalidCoordinate)
	}
	row := (n - 1) / 4
	col := 2 * ((n - 1) % 4)
	if row%2 == 0 {
		col++
	}
	return NewSquare(File(col), Rank(row)), nil
}

// parseSquareToken accepts either algebraic ("b3") or numeric ("11")
// notation.
func parseSquareToken(s string) (Square, error) {
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		n, err := strconv.Atoi(s)
		if err != nil {
			return NoSquare, fmt.Errorf("checkers: %q: %w", s, ErrInvalidCoordinate)
		}
		return SquareFromNumber(n)
	}
	return ParseSquare(s)
}
