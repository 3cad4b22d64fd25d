package checkers

// HasAnyCapture reports whether side has a jump available anywhere on the
// board. Mandatory capture is decided on this answer.
func (pos *Position) HasAnyCapture(side Color) bool {
	for bb := pos.board.Pieces(side); bb != EmptyBB; {
		sq, next, _ := bb.PopLSB()
		bb = next
		if pos.CanJumpFrom(side, sq) {
			return true
		}
	}
	return false
}

// HasAnyLegalMove reports whether side has any simple move or jump. A side
// without one has lost.
func (pos *Position) HasAnyLegalMove(side Color) bool {
	empty := pos.board.Empty()
	for bb := pos.board.Pieces(side); bb != EmptyBB; {
		sq, next, _ := bb.PopLSB()
		bb = next
		for _, dir := range AllowedDirections(side, pos.board.IsKing(sq)) {
			if to, ok := Neighbor(sq, dir); ok && empty.Occupied(to) {
				return true
			}
		}
		if pos.CanJumpFrom(side, sq) {
			return true
		}
	}
	return false
}

// CanJumpFrom reports whether the piece of side standing on sq can make a
// jump, using that piece's current man or king status.
func (pos *Position) CanJumpFrom(side Color, sq Square) bool {
	if !pos.board.IsSidePiece(side, sq) {
		return false
	}
	opponent := pos.board.Pieces(side.Other())
	empty := pos.board.Empty()
	for _, dir := range AllowedDirections(side, pos.board.IsKing(sq)) {
		mid, ok := Neighbor(sq, dir)
		if !ok || !opponent.Occupied(mid) {
			continue
		}
		if end, ok := JumpLanding(sq, dir); ok && empty.Occupied(end) {
			return true
		}
	}
	return false
}

// ValidMoves returns every move side may play, one step or one jump each.
// When any jump exists only jumps are returned.
func (pos *Position) ValidMoves(side Color) []*Move {
	jumps := pos.movesFor(side, true)
	if len(jumps) > 0 {
		return jumps
	}
	return pos.movesFor(side, false)
}

// jumpsFrom returns the jumps available to the piece on sq.
func (pos *Position) jumpsFrom(side Color, sq Square) []*Move {
	var moves []*Move
	for _, dir := range AllowedDirections(side, pos.board.IsKing(sq)) {
		if to, ok := JumpLanding(sq, dir); ok && pos.Validate(side, sq, to) == Jump {
			moves = append(moves, &Move{s1: sq, s2: to, capture: true})
		}
	}
	return moves
}

func (pos *Position) movesFor(side Color, captures bool) []*Move {
	var moves []*Move
	for _, sq := range pos.board.Pieces(side).Scan() {
		if captures {
			moves = append(moves, pos.jumpsFrom(side, sq)...)
			continue
		}
		for _, dir := range AllowedDirections(side, pos.board.IsKing(sq)) {
			if to, ok := Neighbor(sq, dir); ok && pos.Validate(side, sq, to) == Simple {
				moves = append(moves, &Move{s1: sq, s2: to})
			}
		}
	}
	return moves
}
