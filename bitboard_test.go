package checkers

import (
	"strings"
	"testing"
)

type bitboardTestPair struct {
	initial  uint64
	reversed uint64
}

var (
	tests = []bitboardTestPair{
		{
			uint64(1),
			uint64(9223372036854775808),
		},
		{
			uint64(18446744073709551615),
			uint64(18446744073709551615),
		},
		{
			uint64(0),
			uint64(0),
		},
	}
)

func TestBitboardReverse(t *testing.T) {
	for _, p := range tests {
		r := uint64(Bitboard(p.initial).Reverse())
		if r != p.reversed {
			t.Fatalf("bitboard reverse of %s expected %s but got %s", intStr(p.initial), intStr(p.reversed), intStr(r))
		}
	}
	if DarkSquaresBB.Reverse() != DarkSquaresBB {
		t.Fatalf("reversing the dark squares expected the dark squares")
	}
}

func TestBitboardOccupied(t *testing.T) {
	bb := EmptyBB.Set(B3)

	if bb.Occupied(B3) != true {
		t.Fatalf("bitboard occupied of %s expected %t but got %t", bb, true, false)
	}

	if bb.Occupied(C4) != false {
		t.Fatalf("bitboard occupied of %s expected %t but got %t", bb, false, true)
	}

	if bb.Occupied(NoSquare) {
		t.Fatalf("bitboard occupied of NoSquare expected false")
	}
	if bb.Set(NoSquare) != bb || bb.Clear(Square(64)) != bb {
		t.Fatalf("setting or clearing an invalid square expected no change")
	}

	d := bb.Draw()
	if !strings.Contains(d, "3 . X . . . . . . 3") || !strings.Contains(d, "4 . . . . . . . . 4") {
		t.Fatalf("bitboard draw expected b3 marked:%s", d)
	}
	if strings.Count(d, "X") != 1 {
		t.Fatalf("bitboard draw expected exactly one square marked:%s", d)
	}
}

func TestDarkSquares(t *testing.T) {
	if n := DarkSquaresBB.PopCount(); n != NumOfPlayableSquares {
		t.Fatalf("dark squares expected %d but got %d", NumOfPlayableSquares, n)
	}
	for sq := A1; sq <= H8; sq++ {
		if DarkSquaresBB.Occupied(sq) != sq.Playable() {
			t.Fatalf("dark square mask disagrees with Playable at %s", sq)
		}
	}
	if RedStartBB.PopCount() != 12 || BlackStartBB.PopCount() != 12 {
		t.Fatalf("start masks expected 12 squares each but got %d and %d", RedStartBB.PopCount(), BlackStartBB.PopCount())
	}
}

func TestDiagonalTables(t *testing.T) {
	tests := []struct {
		sq      Square
		dir     Direction
		step    Square
		landing Square
	}{
		{B3, NorthEast, C4, D5},
		{B3, NorthWest, A4, NoSquare},
		{B3, SouthEast, C2, D1},
		{B3, SouthWest, A2, NoSquare},
		{H1, NorthWest, G2, F3},
		{H1, NorthEast, NoSquare, NoSquare},
		{E6, SouthWest, D5, C4},
	}
	for _, tt := range tests {
		step, ok := Neighbor(tt.sq, tt.dir)
		if step != tt.step || ok != (tt.step != NoSquare) {
			t.Fatalf("Neighbor(%s, %s) expected %s but got %s", tt.sq, tt.dir, tt.step, step)
		}
		landing, ok := JumpLanding(tt.sq, tt.dir)
		if landing != tt.landing || ok != (tt.landing != NoSquare) {
			t.Fatalf("JumpLanding(%s, %s) expected %s but got %s", tt.sq, tt.dir, tt.landing, landing)
		}
	}
}

func BenchmarkBitboardReverse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		u := uint64(9223372036854775807)
		Bitboard(u).Reverse()
	}
}

func intStr(i uint64) string {
	return Bitboard(i).String()
}

func TestBitboardPopLSB(t *testing.T) {
	bb := BlackStartBB
	var popped []Square
	for {
		sq, next, ok := bb.PopLSB()
		if !ok {
			if next != bb || sq != NoSquare {
				t.Fatalf("PopLSB of an empty bitboard expected (NoSquare, unchanged) but got (%s, %s)", sq, next)
			}
			break
		}
		if next.Occupied(sq) || next.PopCount() != bb.PopCount()-1 {
			t.Fatalf("PopLSB expected %s removed from %s but got %s", sq, bb, next)
		}
		popped = append(popped, sq)
		bb = next
	}
	if len(popped) != 12 || popped[0] != A6 || popped[11] != G8 {
		t.Fatalf("popping the black start squares expected a6 first and g8 last but got %v", popped)
	}
}

func TestBitboardScan(t *testing.T) {
	got := RedStartBB.Scan()
	if len(got) != 12 {
		t.Fatalf("scan of the red start squares expected 12 squares but got %d", len(got))
	}
	// Scan order is LSB first, which matches the 1..12 numbering.
	for i, sq := range got {
		want, err := SquareFromNumber(i + 1)
		if err != nil {
			t.Fatal(err)
		}
		if sq != want {
			t.Fatalf("scan of the red start squares expected %s at %d but got %s", want, i, sq)
		}
	}

	if n := len(EmptyBB.Scan()); n != 0 {
		t.Fatalf("scan of an empty bitboard expected 0 squares but got %d", n)
	}
}

func TestRankMasks(t *testing.T) {
	if BBRank(Rank1) != Rank1BB || BBRank(Rank8) != Rank8BB {
		t.Fatalf("rank masks disagree with the rank constants")
	}
	if BBRank(Rank(8)) != EmptyBB {
		t.Fatalf("rank mask of an invalid rank expected empty")
	}
	if PromotionMask(Red) != Rank8BB || PromotionMask(Black) != Rank1BB {
		t.Fatalf("promotion rows expected rank 8 for red and rank 1 for black")
	}
	if PromotionMask(NoColor) != EmptyBB {
		t.Fatalf("promotion row of no color expected empty")
	}
}

func BenchmarkBitboardScan(b *testing.B) {
	bb := RedStartBB | BlackStartBB
	for i := 0; i < b.N; i++ {
		bb.Scan()
	}
}
