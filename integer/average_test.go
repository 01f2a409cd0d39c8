package integer

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func bigAverage(a, b *big.Int) (floor, ceil *big.Int) {
	sum := new(big.Int).Add(a, b)
	floor = new(big.Int).Rsh(sum, 1)
	ceil = new(big.Int).Rsh(sum.Add(sum, big.NewInt(1)), 1)

	return floor, ceil
}

func toBig[T constraints.Integer](v T) *big.Int {
	var zero T
	if zero-1 > zero {
		return new(big.Int).SetUint64(uint64(v))
	}

	return big.NewInt(int64(v))
}

func TestAverageExamples(t *testing.T) {
	require.Equal(t, 6, AverageFloor(3, 10))
	require.Equal(t, 7, AverageCeil(3, 10))
	require.Equal(t, -4, AverageFloor(-2, -5))
	require.Equal(t, -3, AverageCeil(-2, -5))
	require.Equal(t, 4, AverageFloor(4, 4))
	require.Equal(t, 4, AverageCeil(4, 4))
	require.Equal(t, uint8(128), AverageFloor(uint8(math.MaxUint8), 2))
	require.Equal(t, uint8(129), AverageCeil(uint8(math.MaxUint8), 2))
}

func TestAverage(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		testAverage(t, []int8{math.MinInt8, math.MinInt8 + 1, -2, -1, 0, 1, 2, math.MaxInt8 - 1, math.MaxInt8})
	})
	t.Run("int16", func(t *testing.T) {
		testAverage(t, []int16{math.MinInt16, math.MinInt16 + 1, -3, -1, 0, 1, 3, math.MaxInt16 - 1, math.MaxInt16})
	})
	t.Run("int32", func(t *testing.T) {
		testAverage(t, []int32{math.MinInt32, math.MinInt32 + 1, -7, -1, 0, 1, 7, math.MaxInt32 - 1, math.MaxInt32})
	})
	t.Run("int64", func(t *testing.T) {
		testAverage(t, []int64{math.MinInt64, math.MinInt64 + 1, -9, -1, 0, 1, 9, math.MaxInt64 - 1, math.MaxInt64})
	})
	t.Run("int", func(t *testing.T) {
		testAverage(t, []int{math.MinInt, -1, 0, 1, math.MaxInt})
	})
	t.Run("uint8", func(t *testing.T) {
		testAverage(t, []uint8{0, 1, 2, 3, math.MaxUint8 / 2, math.MaxUint8 - 1, math.MaxUint8})
	})
	t.Run("uint16", func(t *testing.T) {
		testAverage(t, []uint16{0, 1, 2, 3, math.MaxUint16 / 2, math.MaxUint16 - 1, math.MaxUint16})
	})
	t.Run("uint32", func(t *testing.T) {
		testAverage(t, []uint32{0, 1, 2, 3, math.MaxUint32 / 2, math.MaxUint32 - 1, math.MaxUint32})
	})
	t.Run("uint64", func(t *testing.T) {
		testAverage(t, []uint64{0, 1, 2, 3, math.MaxUint64 / 2, math.MaxUint64 - 1, math.MaxUint64})
	})
	t.Run("uint", func(t *testing.T) {
		testAverage(t, []uint{0, 1, math.MaxUint - 1, math.MaxUint})
	})
}

func testAverage[T constraints.Integer](t *testing.T, vals []T) {
	// Every pair both ways round.
	for _, a := range vals {
		for _, b := range vals {
			t.Run(fmt.Sprintf("%d,%d", a, b), func(t *testing.T) {
				floor, ceil := bigAverage(toBig(a), toBig(b))

				require.Equal(t, 0, floor.Cmp(toBig(AverageFloor(a, b))))
				require.Equal(t, 0, ceil.Cmp(toBig(AverageCeil(a, b))))
			})
		}
	}
}

func BenchmarkAverageFloor(b *testing.B) {
	var total uint64

	for n := 0; n < b.N; n++ {
		total += AverageFloor(uint64(n), math.MaxUint64-uint64(n))
	}

	sink = total
}
