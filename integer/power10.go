package integer

import (
	"golang.org/x/exp/constraints"
)

// Power10 provides methods to compute functions related to powers of 10.
type Power10[T any] interface {
	// IsPowerOfTen returns true if the number is a power of 10.
	IsPowerOfTen() bool

	// FloorLog10 returns the base 10 logarithm, truncated down. It panics
	// if the number is zero.
	//
	// The result is a uint32 regardless of the width of T so wider
	// integers can share the contract: 10^(2^32) has 4 billion digits.
	FloorLog10() uint32

	// CheckedFloorLog10 returns the base 10 logarithm, truncated down, or
	// false if the number is zero.
	CheckedFloorLog10() (uint32, bool)

	// WrappingNextPowerOfTen returns the smallest power of ten greater
	// than or equal to the number. If it doesn't fit in T, 0 is returned.
	// Zero is never a valid result otherwise (the next power of ten of 0
	// is 1).
	WrappingNextPowerOfTen() T

	// CheckedNextPowerOfTen returns the smallest power of ten greater than
	// or equal to the number, or false if it doesn't fit in T.
	CheckedNextPowerOfTen() (T, bool)

	// NextPowerOfTen returns the smallest power of ten greater than or
	// equal to the number. It panics if it doesn't fit in T.
	NextPowerOfTen() T
}

// IsPowerOfTen returns true if x is a power of 10.
func IsPowerOfTen[T Power10[T]](x T) bool {
	return x.IsPowerOfTen()
}

// FloorLog10 returns the base 10 logarithm of x, truncated down. It panics if
// x is zero.
func FloorLog10[T Power10[T]](x T) uint32 {
	return x.FloorLog10()
}

// CheckedFloorLog10 returns the base 10 logarithm of x, truncated down, or
// false if x is zero.
func CheckedFloorLog10[T Power10[T]](x T) (uint32, bool) {
	return x.CheckedFloorLog10()
}

// WrappingNextPowerOfTen returns the smallest power of ten greater than or
// equal to x, or 0 if it doesn't fit in T.
func WrappingNextPowerOfTen[T Power10[T]](x T) T {
	return x.WrappingNextPowerOfTen()
}

// CheckedNextPowerOfTen returns the smallest power of ten greater than or
// equal to x, or false if it doesn't fit in T.
func CheckedNextPowerOfTen[T Power10[T]](x T) (T, bool) {
	return x.CheckedNextPowerOfTen()
}

// NextPowerOfTen returns the smallest power of ten greater than or equal to
// x. It panics if it doesn't fit in T.
func NextPowerOfTen[T Power10[T]](x T) T {
	return x.NextPowerOfTen()
}

// IsPow10 returns true if v is a power of 10.
func IsPow10[T constraints.Unsigned](v T) bool {
	switch bitWidth[T]() {
	case 8:
		return isPow10U8(uint8(v))
	case 16:
		return isPow10U16(uint16(v))
	case 32:
		return isPow10U32(uint32(v))
	default:
		return isPow10U64(uint64(v))
	}
}

// CheckedLog10 returns the base 10 logarithm of v, truncated down, or false
// if v is zero.
func CheckedLog10[T constraints.Unsigned](v T) (uint32, bool) {
	if v == 0 {
		return 0, false
	}

	switch bitWidth[T]() {
	case 8:
		return log10U8(uint8(v)), true
	case 16:
		return log10U16(uint16(v)), true
	case 32:
		return log10U32(uint32(v)), true
	default:
		return log10U64(uint64(v)), true
	}
}

// Log10 returns the base 10 logarithm of v, truncated down. It panics if v is
// zero.
func Log10[T constraints.Unsigned](v T) uint32 {
	n, ok := CheckedLog10(v)
	if !ok {
		panic(Error.New("%w: log10 of zero", ErrUndefinedInput))
	}

	return n
}

// WrappingNextPow10 returns the smallest power of ten greater than or equal
// to v, or 0 if it doesn't fit in T.
func WrappingNextPow10[T constraints.Unsigned](v T) T {
	switch bitWidth[T]() {
	case 8:
		return T(nextPow10U8(uint8(v)))
	case 16:
		return T(nextPow10U16(uint16(v)))
	case 32:
		return T(nextPow10U32(uint32(v)))
	default:
		return T(nextPow10U64(uint64(v)))
	}
}

// CheckedNextPow10 returns the smallest power of ten greater than or equal to
// v, or false if it doesn't fit in T.
func CheckedNextPow10[T constraints.Unsigned](v T) (T, bool) {
	p := WrappingNextPow10(v)

	return p, p != 0
}

// NextPow10 returns the smallest power of ten greater than or equal to v. It
// panics if it doesn't fit in T.
func NextPow10[T constraints.Unsigned](v T) T {
	p := WrappingNextPow10(v)
	if p == 0 {
		panic(Error.New("%w: next power of ten for %d", ErrOverflow, v))
	}

	return p
}
