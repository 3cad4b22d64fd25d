package checkers

// Direction is one of the four diagonal directions. North points from
// Red's home row towards Black's.
type Direction int8

const (
	NorthEast Direction = iota
	NorthWest
	SouthEast
	SouthWest
	NumDirections // Total number of directions = 4
)

// diagonalDeltas holds the (row, col) step of each direction.
var diagonalDeltas = [NumDirections][2]int{
	NorthEast: {1, 1},
	NorthWest: {1, -1},
	SouthEast: {-1, 1},
	SouthWest: {-1, -1},
}

var (
	allDirections   = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	northDirections = []Direction{NorthEast, NorthWest}
	southDirections = []Direction{SouthEast, SouthWest}
)

// Delta returns the row and column step of d.
func (d Direction) Delta() (dr, dc int) {
	if d < 0 || d >= NumDirections {
		return 0, 0
	}
	return diagonalDeltas[d][0], diagonalDeltas[d][1]
}

// String implements the fmt.Stringer interface.
func (d Direction) String() string {
	switch d {
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	}
	return "?"
}

// directionOf returns the direction whose delta has the signs of dr and
// dc, and false unless |dr| == |dc| != 0.
func directionOf(dr, dc int) (Direction, bool) {
	if dr == 0 || dc == 0 || abs(dr) != abs(dc) {
		return 0, false
	}
	switch {
	case dr > 0 && dc > 0:
		return NorthEast, true
	case dr > 0:
		return NorthWest, true
	case dc > 0:
		return SouthEast, true
	default:
		return SouthWest, true
	}
}

// AllowedDirections returns the directions a piece of side may move and
// jump in. Men go forward only, kings go all four ways. The returned slice
// must not be modified.
func AllowedDirections(side Color, king bool) []Direction {
	switch {
	case king:
		return allDirections
	case side == Red:
		return northDirections
	case side == Black:
		return southDirections
	}
	return nil
}

// allows reports whether d is one of the directions allowed for side.
func allows(side Color, king bool, d Direction) bool {
	for _, a := range AllowedDirections(side, king) {
		if a == d {
			return true
		}
	}
	return false
}
