// Package decimal provides an exact fixed point number in the radix of a
// configurable numeral system.
//
// The equation for a decimal number is:
//
//	number = magnitude * base ^ -scale
//
// Where magnitude is an arbitrary-precision integer and scale is a
// non-negative count of fractional digits. For example, in base 36:
//
//	1:i = 1i * 36^-1 = 1.5
//
// Canonical Form
//
// Two differently built magnitudes can name the same number (1:i0 and 1:i).
// Every constructor funnels through Make, which strips trailing fractional
// zero digits and reduces the scale to match, and collapses zero to scale 0.
// Decimals representing the same number therefore always compare equal and
// format identically.
//
// Arithmetic
//
// Addition and subtraction first align both operands to the larger scale by
// shifting the coarser magnitude left, then operate at that common scale.
// Multiplication is exact: magnitudes multiply and scales add; no rounding
// ever occurs. SetScale is the only precision-dropping operation, and it
// only shrinks: requesting a scale at or above the current one is a no-op.
package decimal
