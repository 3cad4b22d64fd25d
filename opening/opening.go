// Package opening implements draughts opening determination and exploration.
package opening

import (
	"fmt"

	"github.com/0x5844/checkers"
)

// A Opening represents a specific sequence of moves from the starting position.
type Opening struct {
	title string
	pdn   string
	moves []*checkers.Move
}

// Title returns the traditional name of the opening.
func (o *Opening) Title() string {
	return o.title
}

// PDN returns the opening moves in numbered square notation, e.g. "11-15 23-19".
func (o *Opening) PDN() string {
	return o.pdn
}

// Moves returns the sequence of moves defining the opening.
func (o *Opening) Moves() []*checkers.Move {
	m := make([]*checkers.Move, len(o.moves))
	copy(m, o.moves)
	return m
}

// Game returns a new game with the opening moves already played.
func (o *Opening) Game() (*checkers.Game, error) {
	g, err := parseGameFromPDN(o.pdn)
	if err != nil {
		return nil, fmt.Errorf("failed to replay opening %q: %w", o.title, err)
	}
	return g, nil
}

// Book is an opening book that returns openings for move sequences
type Book interface {
	// Find returns the most specific opening for the list of moves.  If no opening is found, Find returns nil.
	Find(moves []*checkers.Move) *Opening
	// Possible returns the possible openings after the moves given.  If moves is empty or nil all openings are returned.
	Possible(moves []*checkers.Move) []*Opening
}

var _ Book = (*BookBallots)(nil)
