package integer

import (
	"lukechampine.com/uint128"
)

// U128 is a 128-bit unsigned integer implementing Power10.
type U128 uint128.Uint128

var _ Power10[U128] = U128{}

// U128From64 converts v to a U128.
func U128From64(v uint64) U128 {
	return U128(uint128.From64(v))
}

type digitsU128 struct {
	n     uint32
	pow10 uint128.Uint128
}

var (
	pow10LZU128     = buildPow10LZU128()
	pow10DigitsU128 = buildDigitsU128()
)

// buildPow10LZU128 follows the layout of pow10LZU64. 10^38 has one leading
// zero so slot 0 is empty. All ones can't mark it: the maximum value has no
// leading zeros and would match. Zero lands there too, so 1 is used.
func buildPow10LZU128() (table [129]uint128.Uint128) {
	for i := range table {
		table[i] = uint128.Max
	}
	table[0] = uint128.From64(1)

	for _, p := range pow10U128 {
		table[p.LeadingZeros()] = p
	}

	return table
}

// buildDigitsU128 follows the layout of digitsU64: for each leading zero
// count the smallest value of the bucket determines n and the threshold is
// the next power of ten. When that doesn't fit, the entry steps back one
// power so the largest power of ten becomes the threshold.
func buildDigitsU128() (table [130]digitsU128) {
	for lz := 0; lz < 128; lz++ {
		low := uint128.From64(1).Lsh(uint(127 - lz))

		n := 0
		for n+1 < len(pow10U128) && pow10U128[n+1].Cmp(low) <= 0 {
			n++
		}

		if n+1 < len(pow10U128) {
			table[lz] = digitsU128{uint32(n), pow10U128[n+1]}
		} else {
			table[lz] = digitsU128{uint32(n - 1), pow10U128[n]}
		}
	}

	table[128] = digitsU128{0, uint128.From64(1)}
	table[129] = digitsU128{0, uint128.From64(1)}

	return table
}

// String returns the base 10 representation of v.
func (v U128) String() string {
	return uint128.Uint128(v).String()
}

// IsPowerOfTen implements Power10.
func (v U128) IsPowerOfTen() bool {
	u := uint128.Uint128(v)

	return u == pow10LZU128[u.LeadingZeros()&127]
}

// CheckedFloorLog10 implements Power10.
func (v U128) CheckedFloorLog10() (uint32, bool) {
	u := uint128.Uint128(v)
	if u.IsZero() {
		return 0, false
	}

	d := pow10DigitsU128[u.LeadingZeros()]
	if u.Cmp(d.pow10) >= 0 {
		return d.n + 1, true
	}

	return d.n, true
}

// FloorLog10 implements Power10.
func (v U128) FloorLog10() uint32 {
	n, ok := v.CheckedFloorLog10()
	if !ok {
		panic(Error.New("%w: log10 of zero", ErrUndefinedInput))
	}

	return n
}

// WrappingNextPowerOfTen implements Power10.
func (v U128) WrappingNextPowerOfTen() U128 {
	u := uint128.Uint128(v)
	if u.Cmp(pow10DigitsU128[0].pow10) > 0 {
		return U128{}
	}

	lz := u.LeadingZeros()
	prev := pow10DigitsU128[lz+1].pow10

	switch u.Cmp(prev) {
	case 0:
		return U128(prev)
	case 1:
		return U128(pow10DigitsU128[lz-1].pow10)
	}

	return U128(pow10DigitsU128[lz].pow10)
}

// CheckedNextPowerOfTen implements Power10.
func (v U128) CheckedNextPowerOfTen() (U128, bool) {
	p := v.WrappingNextPowerOfTen()

	return p, p != U128{}
}

// NextPowerOfTen implements Power10.
func (v U128) NextPowerOfTen() U128 {
	p, ok := v.CheckedNextPowerOfTen()
	if !ok {
		panic(Error.New("%w: next power of ten for %s", ErrOverflow, v))
	}

	return p
}

// AverageFloor returns ⌊(v + w) / 2⌋ without overflowing.
func (v U128) AverageFloor(w U128) U128 {
	a, b := uint128.Uint128(v), uint128.Uint128(w)

	return U128(a.And(b).Add(a.Xor(b).Rsh(1)))
}

// AverageCeil returns ⌈(v + w) / 2⌉ without overflowing.
func (v U128) AverageCeil(w U128) U128 {
	a, b := uint128.Uint128(v), uint128.Uint128(w)

	return U128(a.Or(b).Sub(a.Xor(b).Rsh(1)))
}
