package checkers

// ExecResult is the outcome of Execute.
type ExecResult uint8

const (
	// Rejected means the move failed validation and nothing changed.
	Rejected ExecResult = iota
	// Done means the move was applied and the turn is over.
	Done
	// MustContinue means the move was a jump and the same piece has
	// another jump from its landing square, which it must take.
	MustContinue
)

// String implements the fmt.Stringer interface.
func (r ExecResult) String() string {
	switch r {
	case Done:
		return "done"
	case MustContinue:
		return "must continue"
	}
	return "rejected"
}

// Execute applies the move from -> to for side. The move is validated
// first and the position is left untouched when it fails. A man reaching
// the far row is crowned as part of the same call. Execute does not change
// the side to move.
func (pos *Position) Execute(side Color, from, to Square) ExecResult {
	legality := pos.Validate(side, from, to)
	if !legality.Legal() {
		return Rejected
	}

	b := pos.board
	mover := b.Piece(from)
	wasKing := mover.Type() == King
	b.setBBForPiece(mover, b.bbForPiece(mover).Clear(from))

	if legality.IsCapture() {
		mid, _ := jumpedSquare(from, to)
		captured := b.Piece(mid)
		if captured.Color() != side.Other() {
			// Validate found an opponent here a moment ago.
			panic("checkers: captured square " + mid.String() + " holds no opponent piece")
		}
		b.setBBForPiece(captured, b.bbForPiece(captured).Clear(mid))
	}

	landed := mover
	if !wasKing && PromotionMask(side).Occupied(to) {
		landed = NewPiece(King, side)
	}
	b.setBBForPiece(landed, b.bbForPiece(landed).Set(to))
	b.calcConvienceBBs()

	if legality.IsCapture() && pos.CanJumpFrom(side, to) {
		return MustContinue
	}
	return Done
}
