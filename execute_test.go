package checkers

import "testing"

func TestExecuteSimple(t *testing.T) {
	pos := StartingPosition()
	if res := pos.Execute(Red, B3, C4); res != Done {
		t.Fatalf("b3 to c4 expected %s but got %s", Done, res)
	}
	b := pos.Board()
	if b.Piece(C4) != RedMan || b.Occupied(B3) {
		t.Fatalf("expected the red man to move from b3 to c4: %s", b)
	}
	if b.MaterialCount(Red) != 12 || b.MaterialCount(Black) != 12 {
		t.Fatalf("a simple move must not change material")
	}
	if pos.Turn() != Red {
		t.Fatalf("Execute must not pass the turn")
	}
	if err := b.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestExecuteRejected(t *testing.T) {
	pos := StartingPosition()
	before := pos.String()
	for _, mv := range [][2]Square{{B3, D5}, {E6, D5}, {B3, B3}, {A2, B3}} {
		if res := pos.Execute(Red, mv[0], mv[1]); res != Rejected {
			t.Fatalf("%s to %s expected %s but got %s", mv[0], mv[1], Rejected, res)
		}
	}
	if pos.String() != before {
		t.Fatalf("rejected moves changed the position: %s", pos)
	}
}

func TestExecutePromotion(t *testing.T) {
	pos := positionWith(Red, map[Square]Piece{D7: RedMan, C2: BlackMan})
	if res := pos.Execute(Red, D7, E8); res != Done {
		t.Fatalf("d7 to e8 expected %s but got %s", Done, res)
	}
	if pos.Board().Piece(E8) != RedKing {
		t.Fatalf("red man on e8 expected to be crowned but got %s", pos.Board().Piece(E8))
	}
	if res := pos.Execute(Black, C2, B1); res != Done {
		t.Fatalf("c2 to b1 expected %s but got %s", Done, res)
	}
	if pos.Board().Piece(B1) != BlackKing {
		t.Fatalf("black man on b1 expected to be crowned but got %s", pos.Board().Piece(B1))
	}
	if pos.Board().MaterialCount(Red) != 1 || pos.Board().MaterialCount(Black) != 1 {
		t.Fatalf("promotion must not change material")
	}
}

func TestExecuteChain(t *testing.T) {
	pos := positionWith(Black, map[Square]Piece{E6: BlackMan, D5: RedMan, D3: RedMan})
	if res := pos.Execute(Black, E6, C4); res != MustContinue {
		t.Fatalf("e6 over d5 expected %s but got %s", MustContinue, res)
	}
	if pos.Board().Occupied(D5) || pos.Board().Piece(C4) != BlackMan {
		t.Fatalf("expected d5 captured and the black man on c4: %s", pos.Board())
	}
	if res := pos.Execute(Black, C4, E2); res != Done {
		t.Fatalf("c4 over d3 expected %s but got %s", Done, res)
	}
	if pos.MaterialCount(Red) != 0 || pos.MaterialCount(Black) != 1 {
		t.Fatalf("expected both red men captured")
	}
	if err := pos.Board().Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestExecutePromotionContinues(t *testing.T) {
	pos := positionWith(Red, map[Square]Piece{C6: RedMan, D7: BlackMan, F7: BlackMan})
	if res := pos.Execute(Red, C6, E8); res != MustContinue {
		t.Fatalf("c6 over d7 expected %s but got %s", MustContinue, res)
	}
	if pos.Board().Piece(E8) != RedKing {
		t.Fatalf("expected the man crowned on e8")
	}
	if res := pos.Execute(Red, E8, G6); res != Done {
		t.Fatalf("e8 over f7 expected %s but got %s", Done, res)
	}
	if pos.MaterialCount(Black) != 0 {
		t.Fatalf("expected both black men captured")
	}
}

func BenchmarkExecute(b *testing.B) {
	start := StartingPosition()
	for i := 0; i < b.N; i++ {
		pos := start.copy()
		pos.Execute(Red, B3, C4)
	}
}
