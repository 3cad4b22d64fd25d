package checkers

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// A Board represents a checkers board and its relationship between squares and pieces using bitboards.
type Board struct {
	// Piece Bitboards
	bbRedMan    Bitboard
	bbRedKing   Bitboard
	bbBlackMan  Bitboard
	bbBlackKing Bitboard

	// Convenience Bitboards
	redSqs   Bitboard // Combined red pieces
	blackSqs Bitboard // Combined black pieces
	emptySqs Bitboard // Unoccupied squares
}

// NewBoard returns a board initialized from a square-to-piece mapping.
// Entries on light or invalid squares are ignored.
func NewBoard(m map[Square]Piece) *Board {
	b := &Board{}
	for sq, p := range m {
		if !sq.Playable() {
			continue
		}
		switch p {
		case RedMan, RedKing, BlackMan, BlackKing:
			b.setBBForPiece(p, b.bbForPiece(p).Set(sq))
		}
	}
	b.calcConvienceBBs()
	return b
}

// startingBoard returns the opening layout.
func startingBoard() *Board {
	b := &Board{bbRedMan: RedStartBB, bbBlackMan: BlackStartBB}
	b.calcConvienceBBs()
	return b
}

// SquareMap returns a mapping of squares to pieces derived from the bitboard representation.
// Only occupied squares are included in the map.
func (b *Board) SquareMap() map[Square]Piece {
	m := map[Square]Piece{}
	for _, sq := range b.AllPieces().Scan() {
		if p := b.Piece(sq); p != NoPiece {
			m[sq] = p
		}
	}
	return m
}

// Piece returns the piece located on the given square by checking the individual bitboards.
// Returns NoPiece if the square is empty or invalid.
func (b *Board) Piece(sq Square) Piece {
	for _, p := range allPieces {
		if b.bbForPiece(p).Occupied(sq) {
			return p
		}
	}
	return NoPiece
}

// --- Derived views ---

// AllRed returns every red man and king.
func (b *Board) AllRed() Bitboard { return b.redSqs }

// AllBlack returns every black man and king.
func (b *Board) AllBlack() Bitboard { return b.blackSqs }

// AllPieces returns every occupied square.
func (b *Board) AllPieces() Bitboard { return b.redSqs | b.blackSqs }

// Empty returns every unoccupied square, light squares included.
func (b *Board) Empty() Bitboard { return b.emptySqs }

// Pieces returns the men and kings of side. Pieces(side.Other()) gives the
// opponent's.
func (b *Board) Pieces(side Color) Bitboard {
	switch side {
	case Red:
		return b.redSqs
	case Black:
		return b.blackSqs
	}
	return EmptyBB
}

// Men returns the unpromoted pieces of side.
func (b *Board) Men(side Color) Bitboard { return b.bbForPiece(NewPiece(Man, side)) }

// Kings returns the kings of side.
func (b *Board) Kings(side Color) Bitboard { return b.bbForPiece(NewPiece(King, side)) }

// Occupied reports whether any piece stands on sq.
func (b *Board) Occupied(sq Square) bool { return b.AllPieces().Occupied(sq) }

// IsSidePiece reports whether sq holds a man or king of side.
func (b *Board) IsSidePiece(side Color, sq Square) bool { return b.Pieces(side).Occupied(sq) }

// IsKing reports whether sq holds a king of either color.
func (b *Board) IsKing(sq Square) bool { return (b.bbRedKing | b.bbBlackKing).Occupied(sq) }

// MaterialCount returns the number of men plus kings side has left.
func (b *Board) MaterialCount(side Color) int {
	return b.Men(side).PopCount() + b.Kings(side).PopCount()
}

// Verify checks the board invariants: the four piece sets are pairwise
// disjoint and only dark squares are occupied.
func (b *Board) Verify() error {
	sets := [4]Bitboard{b.bbRedMan, b.bbRedKing, b.bbBlackMan, b.bbBlackKing}
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			if overlap := sets[i] & sets[j]; overlap != EmptyBB {
				sq, _ := overlap.LSB()
				return fmt.Errorf("checkers: %s and %s piece sets overlap at %s", allPieces[i], allPieces[j], sq)
			}
		}
	}
	if light := b.AllPieces() & LightSquaresBB; light != EmptyBB {
		sq, _ := light.LSB()
		return fmt.Errorf("checkers: piece on light square %s", sq)
	}
	return nil
}

// calcConvienceBBs updates the combined red, black, and empty square bitboards.
func (b *Board) calcConvienceBBs() {
	b.redSqs = b.bbRedMan | b.bbRedKing
	b.blackSqs = b.bbBlackMan | b.bbBlackKing
	b.emptySqs = FullBB &^ (b.redSqs | b.blackSqs)
}

// copy creates a deep copy of the board.
func (b *Board) copy() *Board {
	c := *b
	return &c
}

// --- Helper methods for getting/setting specific piece bitboards ---

// bbForPiece returns the specific Bitboard for the given piece.
// Returns EmptyBB if the piece is NoPiece.
func (b *Board) bbForPiece(p Piece) Bitboard {
	switch p {
	case RedMan:
		return b.bbRedMan
	case RedKing:
		return b.bbRedKing
	case BlackMan:
		return b.bbBlackMan
	case BlackKing:
		return b.bbBlackKing
	default:
		return EmptyBB
	}
}

// setBBForPiece updates the specific Bitboard for the given piece.
// Panics if the piece is invalid (should not happen with internal use).
func (b *Board) setBBForPiece(p Piece, bb Bitboard) {
	switch p {
	case RedMan:
		b.bbRedMan = bb
	case RedKing:
		b.bbRedKing = bb
	case BlackMan:
		b.bbBlackMan = bb
	case BlackKing:
		b.bbBlackKing = bb
	default:
		panic("checkers: setBBForPiece called with invalid piece")
	}
}

// --- Drawing ---

// Draw returns visual representation of the board useful for debugging.
// Empty dark squares show as '#', light squares as '.'.
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String() + " ")
		for f := FileA; f <= FileH; f++ {
			sq := NewSquare(f, r)
			switch p := b.Piece(sq); {
			case p != NoPiece:
				sb.WriteString(p.String())
			case sq.Playable():
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString(r.String() + "\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// String implements the fmt.Stringer interface and returns one line per
// rank from 8 down to 1, using r, R, b, B for pieces and '.' otherwise,
// e.g. "b.b.b.b./.b.b.b.b/...".
func (b *Board) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if p := b.Piece(NewSquare(f, r)); p != NoPiece {
				sb.WriteString(p.String())
			} else {
				sb.WriteByte('.')
			}
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// --- Serialization ---

const boardBinarySize = 4 * 8

// MarshalBinary implements the encoding.BinaryMarshaler interface.
// Encodes the 4 piece bitboards in order red man, red king, black man, black king.
func (b *Board) MarshalBinary() (data []byte, err error) {
	bbs := []Bitboard{b.bbRedMan, b.bbRedKing, b.bbBlackMan, b.bbBlackKing}
	buf := new(bytes.Buffer)
	buf.Grow(boardBinarySize)
	err = binary.Write(buf, binary.BigEndian, bbs)
	return buf.Bytes(), err
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
// The decoded board must satisfy Verify.
func (b *Board) UnmarshalBinary(data []byte) error {
	if len(data) != boardBinarySize {
		return errors.New("checkers: invalid number of bytes for board unmarshal binary (expected 32)")
	}
	decoded := Board{
		bbRedMan:    Bitboard(binary.BigEndian.Uint64(data[0:8])),
		bbRedKing:   Bitboard(binary.BigEndian.Uint64(data[8:16])),
		bbBlackMan:  Bitboard(binary.BigEndian.Uint64(data[16:24])),
		bbBlackKing: Bitboard(binary.BigEndian.Uint64(data[24:32])),
	}
	decoded.calcConvienceBBs()
	if err := decoded.Verify(); err != nil {
		return err
	}
	*b = decoded
	return nil
}

// Rotate turns the board half way round, swapping every square with its
// mirror through the centre. Colors are unchanged.
func (b *Board) Rotate() *Board {
	r := &Board{
		bbRedMan:    b.bbRedMan.Reverse(),
		bbRedKing:   b.bbRedKing.Reverse(),
		bbBlackMan:  b.bbBlackMan.Reverse(),
		bbBlackKing: b.bbBlackKing.Reverse(),
	}
	r.calcConvienceBBs()
	return r
}
