//go:build 386 || arm || mips || mipsle

package integer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// On 32-bit platforms uint and uintptr take the 32 bit strategies.
func TestPow10Native32(t *testing.T) {
	require.Equal(t, 32, bitWidth[uint]())
	require.Equal(t, 32, bitWidth[uintptr]())

	for _, b := range newOracle(32).samples(t, 2000) {
		v := uint32(b.Uint64())

		require.Equal(t, isPow10U32(v), IsPow10(uint(v)), "%d", v)
		require.Equal(t, isPow10U32(v), Uintptr(v).IsPowerOfTen(), "%d", v)
		require.Equal(t, uint(nextPow10U32(v)), WrappingNextPow10(uint(v)), "%d", v)
		require.Equal(t, Uintptr(nextPow10U32(v)), Uintptr(v).WrappingNextPowerOfTen(), "%d", v)

		if v != 0 {
			require.Equal(t, log10U32(v), Log10(uint(v)), "%d", v)
			require.Equal(t, log10U32(v), Uintptr(v).FloorLog10(), "%d", v)
		}
	}

	requirePanicsWith(t, ErrOverflow, func() { NextPow10(uint(4_000_000_000)) })
}
