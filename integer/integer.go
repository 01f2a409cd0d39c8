package integer

import (
	"math/bits"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// Error is the class of errors raised by this package. The panicking
// variants of the operations panic with errors of this class.
var Error = errs.Class("integer")

var (
	// ErrUndefinedInput is raised by the logarithms of zero.
	ErrUndefinedInput = Error.New("undefined input")
	// ErrOverflow is raised when a next power does not fit the type.
	ErrOverflow = Error.New("overflow")
	// ErrInvalidBase is raised for a base below 2.
	ErrInvalidBase = Error.New("invalid base")
)

// bitWidth returns the number of bits in T.
func bitWidth[T constraints.Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// CheckedMul returns a*b and false if the product overflows T.
func CheckedMul[T constraints.Unsigned](a, b T) (T, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(^T(0)) {
		return 0, false
	}

	return T(lo), true
}

// CheckedPow returns base**exp and false if the result overflows T.
func CheckedPow[T constraints.Unsigned](base T, exp uint32) (T, bool) {
	var ok bool

	result := T(1)
	for {
		if exp&1 == 1 {
			result, ok = CheckedMul(result, base)
			if !ok {
				return 0, false
			}
		}

		exp >>= 1
		if exp == 0 {
			return result, true
		}

		// Squaring overflows only when a later multiply would too.
		base, ok = CheckedMul(base, base)
		if !ok {
			return 0, false
		}
	}
}
