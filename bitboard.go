package checkers

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/0x5844/checkers/bitops"
)

// Bitboard represents a 64-bit set of squares, bit i standing for Square(i).
type Bitboard uint64

// --- Constants ---

const (
	NumOfSquaresInBoard = 64 // Total squares on the board.
	NumOfFiles          = 8  // Number of files (columns).
	NumOfRanks          = 8  // Number of ranks (rows).
)

// --- Predefined Bitboard Constants ---

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB // All squares set

	// Ranks (LSB = File A)
	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << (8 * 1)
	Rank3BB Bitboard = Rank1BB << (8 * 2)
	Rank4BB Bitboard = Rank1BB << (8 * 3)
	Rank5BB Bitboard = Rank1BB << (8 * 4)
	Rank6BB Bitboard = Rank1BB << (8 * 5)
	Rank7BB Bitboard = Rank1BB << (8 * 6)
	Rank8BB Bitboard = Rank1BB << (8 * 7)

	// Square colors. Dark squares are those with (row+col) odd; a1 is light.
	DarkSquaresBB  Bitboard = 0x55AA55AA55AA55AA
	LightSquaresBB Bitboard = ^DarkSquaresBB

	// Opening layout.
	RedStartBB   Bitboard = DarkSquaresBB & (Rank1BB | Rank2BB | Rank3BB)
	BlackStartBB Bitboard = DarkSquaresBB & (Rank6BB | Rank7BB | Rank8BB)
)

// --- Precomputed Geometry ---
// These tables are initialized in the init() function below.
var (
	rankMasks [NumOfRanks]Bitboard // [rank] Mask for each rank.

	// neighbors[sq][dir] is the playable square one diagonal step away, or NoSquare.
	neighbors [NumOfSquaresInBoard][NumDirections]Square
	// jumpLandings[sq][dir] is the playable square two diagonal steps away, or NoSquare.
	jumpLandings [NumOfSquaresInBoard][NumDirections]Square
	// promotionMasks[color] is the far row on which that color's men are crowned.
	promotionMasks [3]Bitboard
)

// --- Initialization ---

func init() {
	initRankMasks()
	initDiagonalSteps()
	promotionMasks[Red] = BBRank(Rank8)
	promotionMasks[Black] = BBRank(Rank1)
}

func initRankMasks() {
	for r := Rank1; r <= Rank8; r++ {
		rankMasks[r] = Rank1BB << (uint(r) * 8)
	}
}

// Initializes the one and two step diagonal tables.
func initDiagonalSteps() {
	for sq := A1; sq <= H8; sq++ {
		for dir := Direction(0); dir < NumDirections; dir++ {
			neighbors[sq][dir] = offset(sq, dir, 1)
			jumpLandings[sq][dir] = offset(sq, dir, 2)
		}
	}
}

// offset walks n steps from sq in dir. It returns NoSquare when the walk
// leaves the board or ends on a light square.
func offset(sq Square, dir Direction, n int) Square {
	dr, dc := dir.Delta()
	r := int(sq.Rank()) + dr*n
	f := int(sq.File()) + dc*n
	if r < 0 || r >= NumOfRanks || f < 0 || f >= NumOfFiles {
		return NoSquare
	}
	to := NewSquare(File(f), Rank(r))
	if !to.Playable() {
		return NoSquare
	}
	return to
}

// Neighbor returns the playable square one diagonal step from sq in dir.
// ok is false if that step leaves the board.
func Neighbor(sq Square, dir Direction) (Square, bool) {
	if !sq.Valid() || dir < 0 || dir >= NumDirections {
		return NoSquare, false
	}
	to := neighbors[sq][dir]
	return to, to != NoSquare
}

// JumpLanding returns the playable square two diagonal steps from sq in dir.
func JumpLanding(sq Square, dir Direction) (Square, bool) {
	if !sq.Valid() || dir < 0 || dir >= NumDirections {
		return NoSquare, false
	}
	to := jumpLandings[sq][dir]
	return to, to != NoSquare
}

// PromotionMask returns the row on which men of color c are crowned.
func PromotionMask(c Color) Bitboard {
	if c != Red && c != Black {
		return EmptyBB
	}
	return promotionMasks[c]
}

// BBRank returns the mask of a single rank.
func BBRank(r Rank) Bitboard {
	if r < Rank1 || r > Rank8 {
		return EmptyBB
	}
	return rankMasks[r]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// --- Bitboard Manipulation ---

// SquareBB returns a bitboard with only the given square set. Returns EmptyBB for invalid squares.
func SquareBB(sq Square) Bitboard {
	return EmptyBB.Set(sq)
}

// Set sets the bit corresponding to the square. Handles invalid squares.
func (b Bitboard) Set(sq Square) Bitboard { return Bitboard(bitops.Set(uint64(b), int(sq))) }

// Clear clears the bit corresponding to the square. Handles invalid squares.
func (b Bitboard) Clear(sq Square) Bitboard { return Bitboard(bitops.Clear(uint64(b), int(sq))) }

// Occupied checks if the square's bit is set. Handles invalid squares.
func (b Bitboard) Occupied(sq Square) bool { return bitops.Get(uint64(b), int(sq)) == 1 }

// IsEmpty checks if the bitboard is empty.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bitops.Count(uint64(b)) }

// LSB finds the index of the least significant bit. Returns (square, true) or (NoSquare, false).
func (b Bitboard) LSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	// bits.TrailingZeros64 is 64 for input 0, hence the check above.
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// PopLSB finds and removes the least significant bit. Returns (square, new bitboard, true) or (NoSquare, original bitboard, false).
func (b Bitboard) PopLSB() (Square, Bitboard, bool) {
	sq, ok := b.LSB()
	if !ok {
		return NoSquare, b, false
	}
	// b & (b-1) clears the LSB
	return sq, b & (b - 1), true
}

// Scan returns a slice of all squares corresponding to set bits, ordered LSB to MSB.
func (b Bitboard) Scan() []Square {
	squares := make([]Square, 0, b.PopCount())
	for tempBB := b; tempBB != EmptyBB; {
		sq, next, _ := tempBB.PopLSB()
		squares = append(squares, sq)
		tempBB = next
	}
	return squares
}

// Reverse reverses the bits of the bitboard, turning the board half way
// round (A1 <-> H8). Dark squares stay dark.
func (b Bitboard) Reverse() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }

// String returns the 64-bit binary representation in nibble groups (MSB=H8, LSB=A1).
func (b Bitboard) String() string { return bitops.Binary(uint64(b)) }

// Draw returns a string visually representing the bitboard on a board grid.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := Rank8; r >= Rank1; r-- { // Iterate ranks 8->1 (visual top to bottom)
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for f := FileA; f <= FileH; f++ {
			if b.Occupied(NewSquare(f, r)) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf("%d\n", r+1))
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
