package integer

import (
	"math/big"
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

var bigTen = big.NewInt(10)

// oracle answers the power of ten questions slowly but obviously for values
// of a given bit width.
type oracle struct {
	bits int
	max  *big.Int
}

func newOracle(bits int) oracle {
	m := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	m.Sub(m, big.NewInt(1))

	return oracle{
		bits: bits,
		max:  m,
	}
}

func (o oracle) isPow10(v *big.Int) bool {
	s := v.String()

	return s[0] == '1' && strings.Trim(s[1:], "0") == ""
}

func (o oracle) log10(v *big.Int) uint32 {
	return uint32(len(v.String()) - 1)
}

// nextPow10 returns 0 when the next power of ten doesn't fit.
func (o oracle) nextPow10(v *big.Int) *big.Int {
	p := big.NewInt(1)
	for p.Cmp(v) < 0 {
		p.Mul(p, bigTen)
	}

	if p.Cmp(o.max) > 0 {
		return new(big.Int)
	}

	return p
}

// pow10s returns every power of ten that fits.
func (o oracle) pow10s() (ps []*big.Int) {
	for p := big.NewInt(1); p.Cmp(o.max) <= 0; p = new(big.Int).Mul(p, bigTen) {
		ps = append(ps, p)
	}

	return ps
}

// samples returns values near the interesting boundaries (zero, max, powers
// of two and powers of ten) plus random values of random magnitude.
func (o oracle) samples(t testing.TB, random int) (vs []*big.Int) {
	t.Helper()

	add := func(v *big.Int) {
		for d := int64(-2); d <= 2; d++ {
			w := new(big.Int).Add(v, big.NewInt(d))
			if w.Sign() >= 0 && w.Cmp(o.max) <= 0 {
				vs = append(vs, w)
			}
		}
	}

	add(new(big.Int))
	add(o.max)
	for i := 0; i < o.bits; i++ {
		add(new(big.Int).Lsh(big.NewInt(1), uint(i)))
	}
	for _, p := range o.pow10s() {
		add(p)
	}

	f := fuzz.NewWithSeed(int64(o.bits))
	for i := 0; i < random; i++ {
		var limbs [4]uint64
		var shift uint16
		f.Fuzz(&limbs)
		f.Fuzz(&shift)

		v := new(big.Int)
		for _, l := range limbs {
			v.Lsh(v, 64)
			v.Or(v, new(big.Int).SetUint64(l))
		}
		v.And(v, o.max)
		v.Rsh(v, uint(shift)%uint(o.bits))

		vs = append(vs, v)
	}

	require.NotEmpty(t, vs)

	return vs
}

// digits derives a digit table the way the literal tables are laid out.
func (o oracle) digits() (ns []uint32, pow10s []*big.Int) {
	ps := o.pow10s()

	for lz := 0; lz < o.bits; lz++ {
		low := new(big.Int).Lsh(big.NewInt(1), uint(o.bits-lz-1))
		n := o.log10(low)

		if int(n)+1 < len(ps) {
			ns = append(ns, n)
			pow10s = append(pow10s, ps[n+1])
		} else {
			ns = append(ns, n-1)
			pow10s = append(pow10s, ps[n])
		}
	}

	for i := 0; i < 2; i++ {
		ns = append(ns, 0)
		pow10s = append(pow10s, big.NewInt(1))
	}

	return ns, pow10s
}
