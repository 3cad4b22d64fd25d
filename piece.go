package checkers

// Color represents the color of a piece and the side it belongs to.
type Color int8

const (
	// NoColor represents no color.
	NoColor Color = iota
	// Red is the side that starts on rows 1 to 3 and moves first.
	Red
	// Black is the side that starts on rows 6 to 8.
	Black
)

// Other returns the opposite color of the receiver.
func (c Color) Other() Color {
	switch c {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoColor
}

// String implements the fmt.Stringer interface and returns
// the color's FEN character.
func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Black:
		return "B"
	}
	return "-"
}

// Name returns a display friendly name.
func (c Color) Name() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	}
	return "No Color"
}

// forward is the row delta of a man's move for c.
func (c Color) forward() int {
	if c == Black {
		return -1
	}
	return 1
}

// PieceType is the type of a piece.
type PieceType int8

const (
	// NoPieceType represents a lack of piece type.
	NoPieceType PieceType = iota
	// Man is an unpromoted piece.
	Man
	// King is a promoted piece.
	King
)

// String implements the fmt.Stringer interface.
func (p PieceType) String() string {
	switch p {
	case Man:
		return "man"
	case King:
		return "king"
	}
	return ""
}

// Piece is a piece type with a color.
type Piece int8

const (
	// NoPiece represents no piece.
	NoPiece Piece = iota
	RedMan
	RedKing
	BlackMan
	BlackKing
)

var allPieces = []Piece{RedMan, RedKing, BlackMan, BlackKing}

// NewPiece returns the piece matching the PieceType and Color.
// NoPiece is returned if the PieceType or Color isn't valid.
func NewPiece(t PieceType, c Color) Piece {
	for _, p := range allPieces {
		if p.Color() == c && p.Type() == t {
			return p
		}
	}
	return NoPiece
}

// Type returns the type of the piece.
func (p Piece) Type() PieceType {
	switch p {
	case RedMan, BlackMan:
		return Man
	case RedKing, BlackKing:
		return King
	}
	return NoPieceType
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	switch p {
	case RedMan, RedKing:
		return Red
	case BlackMan, BlackKing:
		return Black
	}
	return NoColor
}

// String returns the board character of the piece: r, R, b or B.
func (p Piece) String() string {
	switch p {
	case RedMan:
		return "r"
	case RedKing:
		return "R"
	case BlackMan:
		return "b"
	case BlackKing:
		return "B"
	}
	return " "
}
