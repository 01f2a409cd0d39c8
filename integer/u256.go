package integer

import (
	"github.com/holiman/uint256"
)

// U256 is a 256-bit unsigned integer implementing Power10.
type U256 uint256.Int

var _ Power10[U256] = U256{}

// U256From64 converts v to a U256.
func U256From64(v uint64) U256 {
	return U256(*uint256.NewInt(v))
}

type digitsU256 struct {
	n     uint32
	pow10 uint256.Int
}

var (
	pow10U256       = buildPow10U256()
	pow10LZU256     = buildPow10LZU256()
	pow10DigitsU256 = buildDigitsU256()
)

// buildPow10U256 lists every power of ten that fits in 256 bits.
func buildPow10U256() (table [78]uint256.Int) {
	ten := uint256.NewInt(10)

	table[0].SetUint64(1)
	for i := 1; i < len(table); i++ {
		table[i].Mul(&table[i-1], ten)
	}

	return table
}

// buildPow10LZU256 follows the layout of pow10LZU64, 10^77 fills slot 0.
func buildPow10LZU256() (table [257]uint256.Int) {
	for i := range table {
		table[i].SetAllOne()
	}

	for _, p := range pow10U256 {
		table[256-p.BitLen()] = p
	}

	return table
}

// buildDigitsU256 follows buildDigitsU128.
func buildDigitsU256() (table [258]digitsU256) {
	one := uint256.NewInt(1)

	for lz := 0; lz < 256; lz++ {
		low := new(uint256.Int).Lsh(one, uint(255-lz))

		n := 0
		for n+1 < len(pow10U256) && pow10U256[n+1].Cmp(low) <= 0 {
			n++
		}

		if n+1 < len(pow10U256) {
			table[lz] = digitsU256{uint32(n), pow10U256[n+1]}
		} else {
			table[lz] = digitsU256{uint32(n - 1), pow10U256[n]}
		}
	}

	table[256] = digitsU256{0, *one}
	table[257] = digitsU256{0, *one}

	return table
}

func (v *U256) raw() *uint256.Int {
	return (*uint256.Int)(v)
}

// String returns the base 10 representation of v.
func (v U256) String() string {
	return v.raw().Dec()
}

// IsPowerOfTen implements Power10.
func (v U256) IsPowerOfTen() bool {
	u := v.raw()

	return u.Eq(&pow10LZU256[(256-u.BitLen())&255])
}

// CheckedFloorLog10 implements Power10.
func (v U256) CheckedFloorLog10() (uint32, bool) {
	u := v.raw()
	if u.IsZero() {
		return 0, false
	}

	d := &pow10DigitsU256[256-u.BitLen()]
	if u.Cmp(&d.pow10) >= 0 {
		return d.n + 1, true
	}

	return d.n, true
}

// FloorLog10 implements Power10.
func (v U256) FloorLog10() uint32 {
	n, ok := v.CheckedFloorLog10()
	if !ok {
		panic(Error.New("%w: log10 of zero", ErrUndefinedInput))
	}

	return n
}

// WrappingNextPowerOfTen implements Power10.
func (v U256) WrappingNextPowerOfTen() U256 {
	u := v.raw()
	if u.Gt(&pow10DigitsU256[0].pow10) {
		return U256{}
	}

	lz := 256 - u.BitLen()
	prev := pow10DigitsU256[lz+1].pow10

	switch u.Cmp(&prev) {
	case 0:
		return U256(prev)
	case 1:
		return U256(pow10DigitsU256[lz-1].pow10)
	}

	return U256(pow10DigitsU256[lz].pow10)
}

// CheckedNextPowerOfTen implements Power10.
func (v U256) CheckedNextPowerOfTen() (U256, bool) {
	p := v.WrappingNextPowerOfTen()

	return p, !p.raw().IsZero()
}

// NextPowerOfTen implements Power10.
func (v U256) NextPowerOfTen() U256 {
	p, ok := v.CheckedNextPowerOfTen()
	if !ok {
		panic(Error.New("%w: next power of ten for %s", ErrOverflow, v))
	}

	return p
}

// AverageFloor returns ⌊(v + w) / 2⌋ without overflowing.
func (v U256) AverageFloor(w U256) U256 {
	a, b := v.raw(), w.raw()

	var and, xor uint256.Int
	and.And(a, b)
	xor.Xor(a, b)
	xor.Rsh(&xor, 1)

	return U256(*and.Add(&and, &xor))
}

// AverageCeil returns ⌈(v + w) / 2⌉ without overflowing.
func (v U256) AverageCeil(w U256) U256 {
	a, b := v.raw(), w.raw()

	var or, xor uint256.Int
	or.Or(a, b)
	xor.Xor(a, b)
	xor.Rsh(&xor, 1)

	return U256(*or.Sub(&or, &xor))
}
