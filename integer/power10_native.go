package integer

import (
	"math/bits"
)

type digits[T uint32 | uint64] struct {
	n     uint32
	pow10 T
}

func isPow10U8(v uint8) bool {
	if v >= 100 {
		return v == 100
	}
	if v >= 10 {
		return v == 10
	}

	return v == 1
}

func isPow10U16(v uint16) bool {
	return uint32(v) == pow10HashU16[(uint32(v)>>3)&7]
}

func isPow10U32(v uint32) bool {
	return v == pow10HashU32[(v^(v>>14))&15]
}

func isPow10U64(v uint64) bool {
	// The mask removes the bounds check: lz is 64 only for v == 0 which
	// then compares against slot 0.
	return v == pow10LZU64[bits.LeadingZeros64(v)&63]
}

func log10U8(v uint8) uint32 {
	if v >= 100 {
		return 2
	}
	if v >= 10 {
		return 1
	}

	return 0
}

func log10U16(v uint16) uint32 {
	return log10U32(uint32(v))
}

func log10U32(v uint32) uint32 {
	return log10Digits(v, bits.LeadingZeros32(v), digitsU32[:])
}

func log10U64(v uint64) uint32 {
	return log10Digits(v, bits.LeadingZeros64(v), digitsU64[:])
}

func log10Digits[T uint32 | uint64](v T, lz int, table []digits[T]) uint32 {
	d := table[lz]
	if v >= d.pow10 {
		return d.n + 1
	}

	return d.n
}

func nextPow10U8(v uint8) uint8 {
	switch {
	case v > 100:
		return 0
	case v > 10:
		return 100
	case v > 1:
		return 10
	}

	return 1
}

func nextPow10U16(v uint16) uint16 {
	if v > 10000 {
		return 0
	}

	return uint16(nextPow10U32(uint32(v)))
}

func nextPow10U32(v uint32) uint32 {
	return nextPow10Digits(v, bits.LeadingZeros32(v), digitsU32[:])
}

func nextPow10U64(v uint64) uint64 {
	return nextPow10Digits(v, bits.LeadingZeros64(v), digitsU64[:])
}

// nextPow10Digits reads the power of ten just below the bucket of v from the
// entry at lz+1. Entry 0 holds the largest power of ten of the width.
func nextPow10Digits[T uint32 | uint64](v T, lz int, table []digits[T]) T {
	if v > table[0].pow10 {
		return 0
	}

	prev := table[lz+1].pow10
	switch {
	case v == prev:
		return prev
	case v > prev:
		// Only reachable with lz > 0: v <= table[0].pow10 == table[1].pow10.
		return table[lz-1].pow10
	}

	return table[lz].pow10
}
