package integer

import (
	"golang.org/x/exp/constraints"
)

// AverageFloor returns ⌊(a + b) / 2⌋ without overflowing. Signed values round
// toward negative infinity.
//
// See Hacker's Delight (Dietz): http://aggregate.org/MAGIC/#Average%20of%20Integers
func AverageFloor[T constraints.Integer](a, b T) T {
	return (a & b) + ((a ^ b) >> 1)
}

// AverageCeil returns ⌈(a + b) / 2⌉ without overflowing. Signed values round
// toward positive infinity.
func AverageCeil[T constraints.Integer](a, b T) T {
	return (a | b) - ((a ^ b) >> 1)
}
