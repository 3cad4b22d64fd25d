/*
Package checkers implements the rules of English draughts (American
checkers) on an 8x8 board held as four bitboards: red men, red kings,
black men and black kings.

The Position type answers the rule questions (Validate, Execute,
HasAnyCapture, HasAnyLegalMove) for one move at a time. The Game type
layers the turn protocol on top: mandatory capture, multi-jump
continuation with the same piece, and win detection.

Example usage:

	game := checkers.NewGame()
	if err := game.MoveStr("b3 c4"); err != nil {
		// try again
	}
	if game.Outcome() != checkers.NoOutcome {
		fmt.Printf("Game ended: %s by %s\n", game.Outcome(), game.Method())
	}
*/
package checkers

import (
	"fmt"
	"strings"
)

// A Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress.
	NoOutcome Outcome = "*"
	// RedWon indicates that red won the game.
	RedWon Outcome = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-1"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// A Method is the method that generated the outcome.
type Method uint8

const (
	// NoMethod indicates that an outcome hasn't occurred.
	NoMethod Method = iota
	// NoPieces indicates that the loser had no pieces left.
	NoPieces
	// NoMoves indicates that the loser had no legal move on their turn.
	NoMoves
	// Resignation indicates that the game was won by resignation.
	Resignation
)

// String implements the fmt.Stringer interface.
func (m Method) String() string {
	switch m {
	case NoPieces:
		return "NoPieces"
	case NoMoves:
		return "NoMoves"
	case Resignation:
		return "Resignation"
	}
	return "NoMethod"
}

// TurnState is where the game stands within the current turn.
type TurnState uint8

const (
	// AwaitingMove means the side to move may play any legal move.
	AwaitingMove TurnState = iota
	// AwaitingContinuation means a jump chain is pending and the piece on
	// the pending square must jump again.
	AwaitingContinuation
)

// String implements the fmt.Stringer interface.
func (s TurnState) String() string {
	if s == AwaitingContinuation {
		return "awaiting continuation"
	}
	return "awaiting move"
}

// A Game represents a single checkers game.
type Game struct {
	pos       *Position // Current position
	startTurn Color     // Side to move in the first position
	state     TurnState // Turn state machine
	pending   Square    // Square the chaining piece stands on
	moves     []*Move   // Every hop played, in order
	outcome   Outcome   // Game result
	method    Method    // How the game ended
}

// FEN takes a position in FEN notation and returns a function that sets
// it as the game's starting position. The returned function is designed
// to be used in the NewGame constructor. An error is returned if the FEN
// can't be parsed.
func FEN(fen string) (func(*Game), error) {
	pos, err := decodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return func(g *Game) {
		g.pos = pos.copy()
		g.startTurn = pos.turn
		g.state = AwaitingMove
		g.pending = NoSquare
		g.moves = nil
		g.outcome = NoOutcome
		g.method = NoMethod
		g.evaluateOutcome()
	}, nil
}

// NewGame returns a new game in the standard opening position, Red to
// move. Options such as FEN can change the starting position.
//
//	game := NewGame()
//	game := NewGame(opt) // where opt, err := FEN("B:R1,2:BK21")
func NewGame(options ...func(*Game)) *Game {
	pos := StartingPosition()
	g := &Game{
		pos:       pos,
		startTurn: pos.turn,
		state:     AwaitingMove,
		pending:   NoSquare,
		outcome:   NoOutcome,
		method:    NoMethod,
	}
	for _, f := range options {
		if f != nil {
			f(g)
		}
	}
	return g
}

// Move plays from -> to for the side to move. The move must be
// geometrically legal, must be a jump whenever any jump is available, and
// while a jump chain is pending must be a jump by the chaining piece. On
// error the game is unchanged.
func (g *Game) Move(from, to Square) error {
	if g.outcome != NoOutcome {
		return ErrGameOver
	}
	side := g.pos.turn
	legality := g.pos.Validate(side, from, to)
	if g.state == AwaitingContinuation && (from != g.pending || !legality.IsCapture()) {
		return fmt.Errorf("%w: jump again from %s", ErrMustContinue, g.pending)
	}
	if !legality.Legal() {
		return fmt.Errorf("%w: %s to %s for %s", ErrIllegalMove, from, to, side.Name())
	}
	if !legality.IsCapture() && g.pos.HasAnyCapture(side) {
		return fmt.Errorf("%w: %s to %s", ErrMandatoryCapture, from, to)
	}

	wasKing := g.pos.board.IsKing(from)
	res := g.pos.Execute(side, from, to)
	if res == Rejected {
		return fmt.Errorf("%w: %s to %s for %s", ErrIllegalMove, from, to, side.Name())
	}
	g.moves = append(g.moves, &Move{
		s1:      from,
		s2:      to,
		capture: legality.IsCapture(),
		promote: !wasKing && g.pos.board.IsKing(to),
		result:  res,
	})

	if res == MustContinue {
		g.state = AwaitingContinuation
		g.pending = to
		return nil
	}
	g.state = AwaitingMove
	g.pending = NoSquare
	g.pos.turn = side.Other()
	g.evaluateOutcome()
	return nil
}

// MoveStr parses move text (see ParseMovePath) and plays each hop in turn.
// Either every hop is played or, on error, none is. A lone square while a
// jump chain is pending continues the chain to that square.
func (g *Game) MoveStr(s string) error {
	path, err := ParseMovePath(s)
	if err != nil {
		return err
	}
	if len(path) == 1 {
		if g.state != AwaitingContinuation {
			return fmt.Errorf("checkers: %q needs an origin and a destination: %w", s, ErrInvalidMoveText)
		}
		path = append([]Square{g.pending}, path...)
	}

	saved := g.snapshot()
	for i := 0; i+1 < len(path); i++ {
		if err := g.Move(path[i], path[i+1]); err != nil {
			g.restore(saved)
			return err
		}
	}
	return nil
}

type gameSnapshot struct {
	pos     *Position
	state   TurnState
	pending Square
	nMoves  int
	outcome Outcome
	method  Method
}

func (g *Game) snapshot() gameSnapshot {
	return gameSnapshot{
		pos:     g.pos.copy(),
		state:   g.state,
		pending: g.pending,
		nMoves:  len(g.moves),
		outcome: g.outcome,
		method:  g.method,
	}
}

func (g *Game) restore(s gameSnapshot) {
	g.pos = s.pos
	g.state = s.state
	g.pending = s.pending
	g.moves = g.moves[:s.nMoves]
	g.outcome = s.outcome
	g.method = s.method
}

// evaluateOutcome decides the game after a completed turn: a side with no
// pieces loses, then the side to move loses if it has no legal move.
func (g *Game) evaluateOutcome() {
	switch {
	case g.pos.MaterialCount(Red) == 0:
		g.outcome, g.method = BlackWon, NoPieces
	case g.pos.MaterialCount(Black) == 0:
		g.outcome, g.method = RedWon, NoPieces
	case !g.pos.HasAnyLegalMove(g.pos.turn):
		g.outcome, g.method = winnerOutcome(g.pos.turn.Other()), NoMoves
	}
}

func winnerOutcome(c Color) Outcome {
	if c == Red {
		return RedWon
	}
	return BlackWon
}

// Resign resigns the game for the given color. If the game has
// already been completed then the game is not updated.
func (g *Game) Resign(color Color) {
	if g.outcome != NoOutcome || (color != Red && color != Black) {
		return
	}
	g.outcome = winnerOutcome(color.Other())
	g.method = Resignation
}

// Position returns a copy of the current position.
func (g *Game) Position() *Position { return g.pos.copy() }

// Turn returns the side to move.
func (g *Game) Turn() Color { return g.pos.turn }

// State returns the turn state.
func (g *Game) State() TurnState { return g.state }

// Pending returns the square of the piece that must keep jumping, and
// false when no chain is pending.
func (g *Game) Pending() (Square, bool) {
	return g.pending, g.state == AwaitingContinuation
}

// Moves returns the hops played so far.
func (g *Game) Moves() []*Move {
	return append([]*Move(nil), g.moves...)
}

// ValidMoves returns the moves the side to move may play right now.
func (g *Game) ValidMoves() []*Move {
	if g.outcome != NoOutcome {
		return nil
	}
	if g.state == AwaitingContinuation {
		return g.pos.jumpsFrom(g.pos.turn, g.pending)
	}
	return g.pos.ValidMoves(g.pos.turn)
}

// Outcome returns the game outcome.
func (g *Game) Outcome() Outcome { return g.outcome }

// Method returns the method in which the outcome occurred.
func (g *Game) Method() Method { return g.method }

// String implements the fmt.Stringer interface and returns the move list,
// one entry per turn with jump chains joined, e.g. "1. f3-e4 e6-f5 2. ...".
func (g *Game) String() string {
	var turns []string
	cur := ""
	for _, m := range g.moves {
		if cur == "" {
			cur = m.String()
		} else {
			cur += "x" + m.s2.String()
		}
		if !m.Continues() {
			turns = append(turns, cur)
			cur = ""
		}
	}
	if cur != "" {
		turns = append(turns, cur)
	}

	var sb strings.Builder
	side, num := g.startTurn, 1
	for i, t := range turns {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case side == Red:
			fmt.Fprintf(&sb, "%d. ", num)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", num)
		}
		sb.WriteString(t)
		if side == Black {
			num++
		}
		side = side.Other()
	}
	if g.outcome != NoOutcome {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.outcome.String())
	}
	return sb.String()
}
