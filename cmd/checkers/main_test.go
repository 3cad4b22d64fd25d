package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0x5844/checkers"
	"github.com/0x5844/checkers/opening"
)

func gameFromFEN(t *testing.T, fen string) *checkers.Game {
	t.Helper()
	opt, err := checkers.FEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return checkers.NewGame(opt)
}

func TestRunLines(t *testing.T) {
	var out strings.Builder
	g := checkers.NewGame()
	if err := runLines(g, nil, strings.NewReader("b3 c4\nmoves\nbogus\nq\n"), &out); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Red to move: ", "Black to move: ", "e6-d5", "Invalid move:"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out.String())
		}
	}
	if len(g.Moves()) != 1 {
		t.Fatalf("expected one move played but got %d", len(g.Moves()))
	}
}

func TestRunLinesChainAndGameOver(t *testing.T) {
	var out strings.Builder
	g := gameFromFEN(t, "B:R4,10,18:B23")
	if err := runLines(g, nil, strings.NewReader("23x14\ne2\nq\n"), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Black, continue jumping from c4: ") {
		t.Fatalf("expected a continuation prompt:\n%s", out.String())
	}
	if g.Position().MaterialCount(checkers.Red) != 1 {
		t.Fatalf("expected both jumps played")
	}

	out.Reset()
	g = gameFromFEN(t, "R:R14:B18")
	if err := runLines(g, nil, strings.NewReader("14x23\n"), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Game over: 1-0 by NoPieces") {
		t.Fatalf("expected the game to end:\n%s", out.String())
	}
}

func TestRunLinesCrowned(t *testing.T) {
	var out strings.Builder
	g := gameFromFEN(t, "R:R26:B21")
	if err := runLines(g, nil, strings.NewReader("26-31\nq\n"), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Red man crowned on e8") {
		t.Fatalf("expected a crowning notice:\n%s", out.String())
	}
	if strings.Count(out.String(), "crowned") != 1 {
		t.Fatalf("expected exactly one crowning notice:\n%s", out.String())
	}
}

func TestRunLinesOpening(t *testing.T) {
	book, err := opening.NewBookBallots()
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := runLines(checkers.NewGame(), book, strings.NewReader("11-15\n22-18\nq\n"), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Opening: Single Corner") {
		t.Fatalf("expected the opening to be named:\n%s", out.String())
	}
}

func TestSelector(t *testing.T) {
	g := checkers.NewGame()
	s := newSelector(g, nil)

	s.cursor = checkers.A1
	s.moveCursor(-1, 0)
	s.moveCursor(0, -1)
	if s.cursor != checkers.A1 {
		t.Fatalf("cursor expected to stay on the board but moved to %s", s.cursor)
	}

	s.cursor = checkers.E6
	s.activate()
	if s.selected != checkers.NoSquare || !strings.Contains(s.status, "Red") {
		t.Fatalf("selecting an opponent piece expected to fail, status %q", s.status)
	}

	s.cursor = checkers.B3
	s.activate()
	if s.selected != checkers.B3 {
		t.Fatalf("expected b3 selected")
	}
	s.moveCursor(1, 1)
	s.activate()
	if g.Turn() != checkers.Black || s.selected != checkers.NoSquare {
		t.Fatalf("expected b3-c4 played, status %q", s.status)
	}
	if g.Position().Board().Piece(checkers.C4) != checkers.RedMan {
		t.Fatalf("expected a red man on c4")
	}
}

func TestSelectorChain(t *testing.T) {
	g := gameFromFEN(t, "B:R4,10,18:B23")
	s := newSelector(g, nil)
	s.cursor = checkers.E6
	s.activate()
	s.cursor = checkers.C4
	s.activate()
	if s.selected != checkers.C4 || !strings.Contains(s.status, "jump again") {
		t.Fatalf("expected the chain to stay selected on c4, status %q", s.status)
	}
	s.cursor = checkers.E2
	s.activate()
	if g.Turn() != checkers.Red {
		t.Fatalf("expected the chain to finish, status %q", s.status)
	}
}

func TestSelectorCrowned(t *testing.T) {
	g := gameFromFEN(t, "R:R26:B21")
	s := newSelector(g, nil)
	s.cursor = checkers.D7
	s.activate()
	s.cursor = checkers.C8
	s.activate()
	if s.status != "Red man crowned on c8" {
		t.Fatalf("expected a crowning status but got %q", s.status)
	}
	if g.Position().Board().Piece(checkers.C8) != checkers.RedKing {
		t.Fatalf("expected a red king on c8")
	}
}

func TestWriteSVG(t *testing.T) {
	g := checkers.NewGame()
	if err := g.MoveStr("b3 c4"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "board.svg")
	if err := writeSVG(path, g); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") || !strings.Contains(string(data), "#cdd26a") {
		t.Fatalf("expected an svg with the last move marked")
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("CHECKERS_TEST_STR", "R:R1:B32")
	if got := getenv("CHECKERS_TEST_STR", ""); got != "R:R1:B32" {
		t.Fatalf("expected env value but got %q", got)
	}
	if got := getenv("CHECKERS_TEST_UNSET", "def"); got != "def" {
		t.Fatalf("expected default but got %q", got)
	}
	for v, want := range map[string]bool{"yes": true, "ON": true, "0": false, "off": false, "maybe": true} {
		t.Setenv("CHECKERS_TEST_BOOL", v)
		if got := getenb("CHECKERS_TEST_BOOL", true); got != want {
			t.Fatalf("getenb(%q) expected %v but got %v", v, want, got)
		}
	}
}
