package integer

import (
	"golang.org/x/exp/constraints"
)

func checkBase[T constraints.Unsigned](base T) {
	if base < 2 {
		panic(Error.New("%w: %d", ErrInvalidBase, base))
	}
}

// CheckedLog returns the base logarithm of v, truncated down, or false if v
// is zero. It panics if base is less than 2.
func CheckedLog[T constraints.Unsigned](v, base T) (uint32, bool) {
	checkBase(base)

	if base == 10 {
		return CheckedLog10(v)
	}
	if v == 0 {
		return 0, false
	}

	var n uint32
	for v >= base {
		v /= base
		n++
	}

	return n, true
}

// Log returns the base logarithm of v, truncated down. It panics if v is zero
// or base is less than 2.
func Log[T constraints.Unsigned](v, base T) uint32 {
	n, ok := CheckedLog(v, base)
	if !ok {
		panic(Error.New("%w: log of zero", ErrUndefinedInput))
	}

	return n
}

// CheckedNextPowerOf returns the smallest power of base greater than or equal
// to v, or false if it doesn't fit in T. It panics if base is less than 2.
func CheckedNextPowerOf[T constraints.Unsigned](v, base T) (T, bool) {
	checkBase(base)

	if base == 10 {
		return CheckedNextPow10(v)
	}
	if v <= 1 {
		return 1, true
	}

	n, _ := CheckedLog(v-1, base)

	return CheckedPow(base, n+1)
}

// WrappingNextPowerOf returns the smallest power of base greater than or
// equal to v, or 0 if it doesn't fit in T. It panics if base is less than 2.
func WrappingNextPowerOf[T constraints.Unsigned](v, base T) T {
	p, _ := CheckedNextPowerOf(v, base)

	return p
}

// NextPowerOf returns the smallest power of base greater than or equal to v.
// It panics if it doesn't fit in T or base is less than 2.
func NextPowerOf[T constraints.Unsigned](v, base T) T {
	p, ok := CheckedNextPowerOf(v, base)
	if !ok {
		panic(Error.New("%w: next power of %d for %d", ErrOverflow, base, v))
	}

	return p
}

// IsPowerOf returns true if v is a power of base. It panics if base is less
// than 2.
func IsPowerOf[T constraints.Unsigned](v, base T) bool {
	p, ok := CheckedNextPowerOf(v, base)

	return ok && p == v
}
