package checkers

import (
	"errors"
	"testing"
)

func TestStartingFEN(t *testing.T) {
	pos := StartingPosition()
	if got := pos.String(); got != StartingFEN {
		t.Fatalf("starting position expected FEN %s but got %s", StartingFEN, got)
	}
	parsed, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Turn() != Red || parsed.Board().String() != startBoardString {
		t.Fatalf("parsed starting FEN does not match the opening layout: %s", parsed.Board())
	}
}

func TestParseFEN(t *testing.T) {
	pos, err := ParseFEN("B:RK1,5:B21-24,K32.")
	if err != nil {
		t.Fatal(err)
	}
	if pos.Turn() != Black {
		t.Fatalf("expected Black to move")
	}
	b := pos.Board()
	if b.Piece(B1) != RedKing || b.Piece(A2) != RedMan || b.Piece(G8) != BlackKing {
		t.Fatalf("unexpected pieces: %s", b)
	}
	if b.Men(Black).PopCount() != 4 {
		t.Fatalf("range 21-24 expected 4 black men but got %d", b.Men(Black).PopCount())
	}
	if got, want := pos.String(), "B:RK1,5:B21,22,23,24,K32"; got != want {
		t.Fatalf("expected FEN %s but got %s", want, got)
	}

	empty, err := ParseFEN("R:R:B")
	if err != nil {
		t.Fatal(err)
	}
	if empty.Board().AllPieces() != EmptyBB {
		t.Fatalf("expected an empty board")
	}
}

func TestParseFENErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"R:R1",
		"X:R1:B2",
		"R:R1:R2",
		"R:R1,1:B2",
		"R:R1:B1",
		"R:Rx:B2",
		"R:R9-5:B2",
		"R:W1:B2",
	} {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("ParseFEN(%q) expected ErrInvalidFEN but got %v", fen, err)
		}
	}
	if _, err := ParseFEN("R:R33:B2"); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate for square 33 but got %v", err)
	}
}

func TestPositionText(t *testing.T) {
	pos := StartingPosition()
	text, err := pos.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var decoded Position
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if decoded.String() != pos.String() {
		t.Fatalf("text round trip expected %s but got %s", pos, &decoded)
	}
}

func TestNewPositionNilBoard(t *testing.T) {
	pos := NewPosition(nil, Black)
	if pos.Turn() != Black || pos.MaterialCount(Red) != 0 || pos.MaterialCount(Black) != 0 {
		t.Fatalf("a nil board expected an empty position with black to move")
	}
	if pos.HasAnyLegalMove(Black) {
		t.Fatalf("an empty board expected no legal moves")
	}
	if got := pos.Validate(Red, B3, C4); got != Illegal {
		t.Fatalf("moving on an empty board expected %s but got %s", Illegal, got)
	}
	if got := pos.String(); got != "B:R:B" {
		t.Fatalf("empty position FEN expected %q but got %q", "B:R:B", got)
	}
}
