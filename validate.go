package checkers

// Legality classifies a proposed move.
type Legality uint8

const (
	// Illegal moves break a placement, direction or geometry rule.
	Illegal Legality = iota
	// Simple is a legal one step diagonal move.
	Simple
	// Jump is a legal capturing move over an adjacent opponent piece.
	Jump
)

// Legal reports whether the move may be played.
func (l Legality) Legal() bool { return l != Illegal }

// IsCapture reports whether the move removes an opponent piece.
func (l Legality) IsCapture() bool { return l == Jump }

// String implements the fmt.Stringer interface.
func (l Legality) String() string {
	switch l {
	case Simple:
		return "simple"
	case Jump:
		return "jump"
	}
	return "illegal"
}

// Validate decides whether side may move the piece on from to to, looking
// only at this one move. It does not apply the mandatory capture rule;
// the caller checks HasAnyCapture for that.
func (pos *Position) Validate(side Color, from, to Square) Legality {
	b := pos.board
	switch {
	case from == to, !from.Valid(), !to.Valid():
		return Illegal
	case b.Occupied(to):
		return Illegal
	case !b.IsSidePiece(side, from):
		return Illegal
	case !from.Playable(), !to.Playable():
		return Illegal
	}

	dr := int(to.Rank()) - int(from.Rank())
	dc := int(to.File()) - int(from.File())
	dir, ok := directionOf(dr, dc)
	if !ok || !allows(side, b.IsKing(from), dir) {
		return Illegal
	}
	switch abs(dr) {
	case 1:
		return Simple
	case 2:
		if mid, ok := jumpedSquare(from, to); ok && b.IsSidePiece(side.Other(), mid) {
			return Jump
		}
	}
	return Illegal
}

// jumpedSquare returns the square passed over by a two step diagonal
// from -> to, or false when from and to are not a jump apart.
func jumpedSquare(from, to Square) (Square, bool) {
	dir, ok := directionOf(int(to.Rank())-int(from.Rank()), int(to.File())-int(from.File()))
	if !ok {
		return NoSquare, false
	}
	if end, ok := JumpLanding(from, dir); !ok || end != to {
		return NoSquare, false
	}
	return Neighbor(from, dir)
}
