// Package integer provides overflow safe integer helpers.
//
// Powers of Ten
//
// Every unsigned width answers the same questions about powers of ten:
//
//  | Operation              | Zero        | Overflow     |
//  |------------------------|-------------|--------------|
//  | IsPowerOfTen           | false       | n/a          |
//  | FloorLog10             | panics      | n/a          |
//  | CheckedFloorLog10      | false       | n/a          |
//  | WrappingNextPowerOfTen | 1           | 0            |
//  | CheckedNextPowerOfTen  | 1           | false        |
//  | NextPowerOfTen         | 1           | panics       |
//  |------------------------|-------------|--------------|
//
// The operations are methods on the named types U8, U16, U32, U64, Uint,
// Uintptr, U128 and U256 (the Power10 interface), with generic functions of
// the same names accepting any Power10. Plain Go integers can use IsPow10,
// Log10, CheckedLog10, WrappingNextPow10, CheckedNextPow10 and NextPow10
// directly.
//
// NextPowerOfTen panics on overflow regardless of how the program is built.
// Callers wanting wraparound ask for it with WrappingNextPowerOfTen. A result
// of 0 from the wrapping form always means overflow: every other input has a
// next power of ten of at least 1.
//
// Panics carry an error of class Error wrapping ErrUndefinedInput or
// ErrOverflow, so a recovering caller can tell them apart with errors.Is.
//
// Strategies
//
// Nothing loops or divides. Each width uses a fixed table and one or two
// comparisons:
//
//  | Width   | IsPowerOfTen                  | FloorLog10 / NextPowerOfTen         |
//  |---------|-------------------------------|-------------------------------------|
//  | 8       | compare with 100, 10, 1       | compare with 100, 10                |
//  | 16      | hash (v >> 3) & 7             | 32 bit digit table                  |
//  | 32      | hash (v ^ (v >> 14)) & 15     | digit table by leading zeros        |
//  | 64      | table by leading zeros & 63   | digit table by leading zeros        |
//  | 128     | table by leading zeros & 127  | digit table by leading zeros        |
//  | 256     | table by leading zeros & 255  | digit table by leading zeros        |
//  | pointer | 32 or 64                      | 32 or 64                            |
//  |---------|-------------------------------|-------------------------------------|
//
// Values sharing a leading zero count span at most one power of ten, so a
// digit table entry holds the digit count n of the bucket's smallest value and
// the power of ten that bumps it to n+1.
//
// The tables of the 128 and 256 bit widths are derived from their lists of
// powers of ten when the package is initialized and are never written again.
//
// Averages
//
// AverageFloor and AverageCeil compute the rounded mean of two integers of any
// width without the intermediate sum, for example binary search midpoints.
//
// Other Bases
//
// IsPowerOf, Log, CheckedLog, NextPowerOf, CheckedNextPowerOf and
// WrappingNextPowerOf accept any base of at least 2. Base 10 uses the tables,
// other bases divide.
package integer
