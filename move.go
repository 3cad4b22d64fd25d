package checkers

import (
	"fmt"
	"strings"
)

// A Move is a single step or a single jump. A multi-jump is recorded as
// one Move per hop.
type Move struct {
	s1      Square
	s2      Square
	capture bool
	promote bool
	result  ExecResult
}

// S1 returns the origin square of the move.
func (m *Move) S1() Square { return m.s1 }

// S2 returns the destination square of the move.
func (m *Move) S2() Square { return m.s2 }

// IsCapture reports whether the move jumped an opponent piece.
func (m *Move) IsCapture() bool { return m.capture }

// Promotes reports whether the move crowned a man.
func (m *Move) Promotes() bool { return m.promote }

// Continues reports whether the jumping piece had to keep capturing after
// this move.
func (m *Move) Continues() bool { return m.result == MustContinue }

// String implements the fmt.Stringer interface and returns the move in
// algebraic notation, "b3-c4" or "b3xd5".
func (m *Move) String() string {
	sep := "-"
	if m.capture {
		sep = "x"
	}
	return m.s1.String() + sep + m.s2.String()
}

// ParseMovePath reads move text into the squares it visits. Squares may be
// algebraic ("b3") or numbered ("11") and separated by spaces, '-' or 'x',
// so "b3 c4", "b3-c4", "b3xd5", "11-15" and "15x24x31" are all accepted.
// A single square is accepted as well and means "continue from the
// pending square".
func ParseMovePath(s string) ([]Square, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\r', '\n', '-', 'x', 'X':
			return true
		}
		return false
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("checkers: %q: %w", s, ErrInvalidMoveText)
	}
	path := make([]Square, 0, len(fields))
	for _, f := range fields {
		sq, err := parseSquareToken(f)
		if err != nil {
			return nil, fmt.Errorf("checkers: move %q: %w", s, err)
		}
		path = append(path, sq)
	}
	return path, nil
}
