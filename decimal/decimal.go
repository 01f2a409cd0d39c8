package decimal

import (
	"math"
	"strconv"
	"strings"

	"github.com/calebcase/numint/integer"
	"github.com/zeebo/errs"
	"lukechampine.com/uint128"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

var (
	// ErrOverflow is returned when a value does not fit 64 bits.
	ErrOverflow = Error.New("overflow")
	// ErrInexact is returned when lowering the scale would drop digits.
	ErrInexact = Error.New("inexact")
	// ErrSyntax is returned for text that is not a decimal.
	ErrSyntax = Error.New("invalid syntax")
)

// MaxScale is the largest scale Parse and Rescale produce. String writes Scale
// digits after the point, so a larger Scale set directly costs that much
// memory to print.
const MaxScale = 1 << 16

// Block is a fixed point base 10 decimal number: Value * 10^-Scale.
type Block struct {
	Value uint64
	Scale uint32
}

// Precision returns the number of significant digits in the value. Zero has
// one digit.
func (b Block) Precision() uint32 {
	n, ok := integer.CheckedLog10(b.Value)
	if !ok {
		return 1
	}

	return n + 1
}

// Rescale returns the same number with the given scale. Raising the scale
// fails with ErrOverflow if the value no longer fits, lowering it fails with
// ErrInexact if nonzero digits would be dropped. A scale above MaxScale fails
// with ErrOverflow.
func (b Block) Rescale(scale uint32) (Block, error) {
	switch {
	case scale == b.Scale:
		return b, nil
	case scale > MaxScale:
		return Block{}, Error.New("%w: scale %d above %d", ErrOverflow, scale, MaxScale)
	case b.Value == 0:
		return Block{Scale: scale}, nil
	case scale > b.Scale:
		p, ok := integer.CheckedPow(uint64(10), scale-b.Scale)
		if !ok {
			return Block{}, Error.New("%w: rescale %s to %d", ErrOverflow, b, scale)
		}

		v, ok := integer.CheckedMul(b.Value, p)
		if !ok {
			return Block{}, Error.New("%w: rescale %s to %d", ErrOverflow, b, scale)
		}

		return Block{Value: v, Scale: scale}, nil
	}

	// A divisor too large for 64 bits divides no nonzero value.
	p, ok := integer.CheckedPow(uint64(10), b.Scale-scale)
	if !ok || b.Value%p != 0 {
		return Block{}, Error.New("%w: rescale %s to %d", ErrInexact, b, scale)
	}

	return Block{Value: b.Value / p, Scale: scale}, nil
}

// Normalize returns the number with the smallest scale that represents it
// exactly.
func (b Block) Normalize() Block {
	if b.Value == 0 {
		return Block{}
	}

	for b.Scale > 0 && b.Value%10 == 0 {
		b.Value /= 10
		b.Scale--
	}

	return b
}

// Cmp returns -1, 0 or +1 as b is less than, equal to or greater than o.
func (b Block) Cmp(o Block) int {
	if b.Scale < o.Scale {
		return -o.Cmp(b)
	}

	// b has the larger scale, so o is the one scaled up.
	diff := b.Scale - o.Scale
	if diff == 0 {
		return cmp64(b.Value, o.Value)
	}

	if o.Value == 0 {
		return cmp64(b.Value, 0)
	}

	p, ok := integer.CheckedPow(uint64(10), diff)
	if !ok {
		// o is at least 10^20 after scaling.
		return -1
	}

	return uint128.From64(b.Value).Cmp(uint128.From64(o.Value).Mul64(p))
}

func cmp64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// String returns the number in fixed point notation with exactly Scale
// digits after the decimal point.
func (b Block) String() string {
	digits := strconv.FormatUint(b.Value, 10)
	if b.Scale == 0 {
		return digits
	}

	n := b.Precision()
	if n <= b.Scale {
		return "0." + strings.Repeat("0", int(b.Scale-n)) + digits
	}

	point := n - b.Scale

	return digits[:point] + "." + digits[point:]
}

// MarshalText implements encoding.TextMarshaler.
func (b Block) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Block) UnmarshalText(text []byte) (err error) {
	*b, err = Parse(string(text))

	return err
}

// Parse reads a number in the notation produced by String. The scale is the
// number of digits after the decimal point, trailing zeros included, and at
// most MaxScale.
func Parse(s string) (Block, error) {
	whole, frac, hasPoint := strings.Cut(s, ".")
	if whole == "" || (hasPoint && frac == "") {
		return Block{}, Error.New("%w: %q", ErrSyntax, s)
	}

	if len(frac) > MaxScale {
		return Block{}, Error.New("%w: more than %d digits after the point", ErrOverflow, MaxScale)
	}

	var v uint64
	for _, part := range []string{whole, frac} {
		for i := 0; i < len(part); i++ {
			c := part[i]
			if c < '0' || c > '9' {
				return Block{}, Error.New("%w: %q", ErrSyntax, s)
			}

			var ok bool
			v, ok = integer.CheckedMul(v, 10)
			if !ok || v > math.MaxUint64-uint64(c-'0') {
				return Block{}, Error.New("%w: %q", ErrOverflow, s)
			}
			v += uint64(c - '0')
		}
	}

	return Block{Value: v, Scale: uint32(len(frac))}, nil
}
