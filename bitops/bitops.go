// Package bitops implements bit manipulation primitives over fixed-width
// unsigned integers.
//
// Every operation is side-effect free. Positions outside [0, N) for an N-bit
// type leave the value unchanged rather than failing, shift amounts of N or
// more yield zero and negative shift amounts are treated as zero.
package bitops

import (
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// Width returns the number of bits in T.
func Width[T constraints.Unsigned]() int {
	var zero T
	return bits.Len64(uint64(^zero))
}

func inRange[T constraints.Unsigned](pos int) bool {
	return pos >= 0 && pos < Width[T]()
}

// Set returns v with the bit at pos set.
func Set[T constraints.Unsigned](v T, pos int) T {
	if !inRange[T](pos) {
		return v
	}
	return v | T(1)<<uint(pos)
}

// Clear returns v with the bit at pos cleared.
func Clear[T constraints.Unsigned](v T, pos int) T {
	if !inRange[T](pos) {
		return v
	}
	return v &^ (T(1) << uint(pos))
}

// Toggle returns v with the bit at pos flipped.
func Toggle[T constraints.Unsigned](v T, pos int) T {
	if !inRange[T](pos) {
		return v
	}
	return v ^ T(1)<<uint(pos)
}

// Get returns the bit at pos as 0 or 1. Out of range positions read as 0.
func Get[T constraints.Unsigned](v T, pos int) int {
	if !inRange[T](pos) {
		return 0
	}
	return int(v>>uint(pos)) & 1
}

// Count returns the number of set bits in v.
func Count[T constraints.Unsigned](v T) int {
	n := 0
	for v != 0 {
		v &= v - 1 // clear lowest set bit
		n++
	}
	return n
}

// ShiftLeft shifts v left by n bits.
func ShiftLeft[T constraints.Unsigned](v T, n int) T {
	if n < 0 {
		n = 0
	}
	if n >= Width[T]() {
		return 0
	}
	return v << uint(n)
}

// ShiftRight shifts v right by n bits.
func ShiftRight[T constraints.Unsigned](v T, n int) T {
	if n < 0 {
		n = 0
	}
	if n >= Width[T]() {
		return 0
	}
	return v >> uint(n)
}

// Binary renders v most significant bit first, in groups of four
// separated by a space.
func Binary[T constraints.Unsigned](v T) string {
	w := Width[T]()
	var sb strings.Builder
	sb.Grow(w + w/4)
	for i := w - 1; i >= 0; i-- {
		if Get(v, i) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i%4 == 0 && i != 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Hex renders v as 0x followed by upper case hex digits.
func Hex[T constraints.Unsigned](v T) string {
	const digits = "0123456789ABCDEF"
	if v == 0 {
		return "0x0"
	}
	buf := make([]byte, 0, Width[T]()/4)
	for v != 0 {
		buf = append(buf, digits[v&0xF])
		v >>= 4
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return "0x" + string(buf)
}
