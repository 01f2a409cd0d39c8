// Package decimal provides a fixed point base 10 number.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ -scale
//
// Where number is the fixed point number, value is an unscaled 64 bit
// unsigned integer, and scale is the count of digits after the decimal point.
// For example:
//
//  1.23   = 123 * 10^-2
//  0.0001 = 1 * 10^-4
//  20.470 = 20470 * 10^-3
//
// Scale is part of the number: 20.47 and 20.470 compare equal but print
// differently. Normalize drops the trailing zeros. Parse and Rescale refuse
// scales above MaxScale.
//
// Rescaling
//
// Changing the scale multiplies or divides the value by a power of ten:
//
//  | Direction | Example                 | Fails with  |
//  |-----------|-------------------------|-------------|
//  | up        | 20.47 -> 20.4700        | ErrOverflow |
//  | down      | 20.4700 -> 20.47        | ErrInexact  |
//  |-----------|-------------------------|-------------|
//
// Text
//
// String always prints exactly scale digits after the point and at least one
// digit before it. Parse accepts the same notation and nothing else: no sign,
// no exponent, no bare point.
//
//  | Block         | String  |
//  |---------------|---------|
//  | {0, 0}        | 0       |
//  | {5, 3}        | 0.005   |
//  | {12345, 2}    | 123.45  |
//  | {100, 2}      | 1.00    |
//  |---------------|---------|
package decimal
