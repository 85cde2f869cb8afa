// Package integer provides an arbitrary-precision signed integer in the
// radix of a configurable numeral system.
package integer

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/lexorank/numeral"
)

var Error = errs.Class("integer")

// Int is a signed integer number.
//
// The magnitude is stored least significant digit first with every digit in
// [0, base). Canonical form has no high zero digits and represents zero as
// sign 0 with the single digit 0. Values are immutable: every operation
// returns a new Int.
type Int struct {
	sys  numeral.System
	sign int
	mag  []int
}

// Zero returns 0 under the given system.
func Zero(sys numeral.System) Int {
	return Int{
		sys:  sys,
		sign: 0,
		mag:  []int{0},
	}
}

// One returns 1 under the given system.
func One(sys numeral.System) Int {
	return Int{
		sys:  sys,
		sign: 1,
		mag:  []int{1},
	}
}

// FromInt64 converts a machine integer by repeated division by the base.
func FromInt64(v int64, sys numeral.System) Int {
	if v == 0 {
		return Zero(sys)
	}

	sign := 1
	if v < 0 {
		sign = -1
		v = -v
	}

	base := int64(sys.Base())
	mag := []int{}
	for v > 0 {
		mag = append(mag, int(v%base))
		v /= base
	}

	return Int{
		sys:  sys,
		sign: sign,
		mag:  mag,
	}
}

// Parse reads an optional sign character followed by one or more digits.
// Leading zero digits are accepted and normalized away.
func Parse(s string, sys numeral.System) (i Int, err error) {
	defer Error.WrapP(&err)

	sign := 1
	if len(s) > 0 {
		switch s[0] {
		case sys.Positive():
			s = s[1:]
		case sys.Negative():
			sign = -1
			s = s[1:]
		}
	}

	if len(s) == 0 {
		return Int{}, Error.New("empty digit sequence")
	}

	mag := make([]int, len(s))
	for k := 0; k < len(s); k++ {
		d, err := sys.ToDigit(s[k])
		if err != nil {
			return Int{}, err
		}

		mag[len(s)-1-k] = d
	}

	return norm(sys, sign, mag), nil
}

// norm trims high zero digits and collapses zero to its canonical form.
func norm(sys numeral.System, sign int, mag []int) Int {
	n := len(mag)
	for n > 0 && mag[n-1] == 0 {
		n--
	}

	if n == 0 {
		return Zero(sys)
	}

	return Int{
		sys:  sys,
		sign: sign,
		mag:  mag[:n],
	}
}

// check panics when the operands were built under different numeral systems.
// Mixing systems is a programmer error, not input to validate.
func (i Int) check(o Int) {
	if !numeral.Same(i.sys, o.sys) {
		panic(Error.New("numeral system mismatch: %s vs %s", i.sys.Name(), o.sys.Name()))
	}
}

// System returns the numeral system the integer was built under.
func (i Int) System() numeral.System {
	return i.sys
}

// Sign returns -1, 0, or 1.
func (i Int) Sign() int {
	return i.sign
}

// IsZero returns true if the integer is zero.
func (i Int) IsZero() bool {
	return i.sign == 0
}

// DigitAt returns the digit at position k (least significant is 0). Positions
// beyond the stored magnitude are 0.
func (i Int) DigitAt(k int) int {
	if k < 0 || k >= len(i.mag) {
		return 0
	}

	return i.mag[k]
}

// Len returns the number of stored digits.
func (i Int) Len() int {
	return len(i.mag)
}

// Cmp returns -1, 0, or 1 as i is less than, equal to, or greater than o.
func (i Int) Cmp(o Int) int {
	i.check(o)

	if i.sign != o.sign {
		if i.sign < o.sign {
			return -1
		}

		return 1
	}

	if i.sign < 0 {
		return cmpMag(o.mag, i.mag)
	}

	return cmpMag(i.mag, o.mag)
}

// cmpMag compares magnitudes. No high zero digits means more digits is
// strictly larger.
func cmpMag(a, b []int) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	for k := len(a) - 1; k >= 0; k-- {
		if a[k] != b[k] {
			if a[k] < b[k] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// Neg returns the negation.
func (i Int) Neg() Int {
	if i.sign == 0 {
		return i
	}

	return Int{
		sys:  i.sys,
		sign: -i.sign,
		mag:  i.mag,
	}
}

// Add returns i + o.
func (i Int) Add(o Int) Int {
	i.check(o)

	if i.sign == 0 {
		return o
	}
	if o.sign == 0 {
		return i
	}

	if i.sign == o.sign {
		return norm(i.sys, i.sign, addMag(i.sys.Base(), i.mag, o.mag))
	}

	switch cmpMag(i.mag, o.mag) {
	case 0:
		return Zero(i.sys)
	case 1:
		return norm(i.sys, i.sign, subMag(i.sys.Base(), i.mag, o.mag))
	default:
		return norm(i.sys, o.sign, subMag(i.sys.Base(), o.mag, i.mag))
	}
}

// Sub returns i - o.
func (i Int) Sub(o Int) Int {
	return i.Add(o.Neg())
}

// addMag adds magnitudes digit-wise with carry.
func addMag(base int, a, b []int) []int {
	if len(a) < len(b) {
		a, b = b, a
	}

	sum := make([]int, len(a)+1)
	carry := 0
	for k := 0; k < len(a); k++ {
		v := a[k] + carry
		if k < len(b) {
			v += b[k]
		}

		sum[k] = v % base
		carry = v / base
	}
	sum[len(a)] = carry

	return sum
}

// subMag subtracts magnitudes digit-wise with borrow. Requires a >= b.
func subMag(base int, a, b []int) []int {
	diff := make([]int, len(a))
	borrow := 0
	for k := 0; k < len(a); k++ {
		v := a[k] - borrow
		if k < len(b) {
			v -= b[k]
		}

		if v < 0 {
			v += base
			borrow = 1
		} else {
			borrow = 0
		}

		diff[k] = v
	}

	return diff
}

// Mul returns i * o via schoolbook digit products.
func (i Int) Mul(o Int) Int {
	i.check(o)

	if i.sign == 0 || o.sign == 0 {
		return Zero(i.sys)
	}

	base := i.sys.Base()
	buf := make([]int, len(i.mag)+len(o.mag))
	for a, da := range i.mag {
		carry := 0
		for b, db := range o.mag {
			v := buf[a+b] + da*db + carry
			buf[a+b] = v % base
			carry = v / base
		}
		buf[a+len(o.mag)] += carry
	}

	return norm(i.sys, i.sign*o.sign, buf)
}

// ShiftLeft appends n zero digits, multiplying by base^n. Negative n shifts
// right instead.
func (i Int) ShiftLeft(n int) Int {
	if n == 0 || i.sign == 0 {
		return i
	}
	if n < 0 {
		return i.ShiftRight(-n)
	}

	mag := make([]int, len(i.mag)+n)
	copy(mag[n:], i.mag)

	return Int{
		sys:  i.sys,
		sign: i.sign,
		mag:  mag,
	}
}

// ShiftRight drops the n least significant digits, integer-dividing by
// base^n and discarding the remainder. Negative n shifts left instead.
func (i Int) ShiftRight(n int) Int {
	if n == 0 || i.sign == 0 {
		return i
	}
	if n < 0 {
		return i.ShiftLeft(-n)
	}
	if n >= len(i.mag) {
		return Zero(i.sys)
	}

	return norm(i.sys, i.sign, i.mag[n:])
}

// Format renders the integer most significant digit first. Zero is the
// single zero character with no sign.
func (i Int) Format() string {
	zero, _ := i.sys.ToChar(0)
	if i.sign == 0 {
		return string(zero)
	}

	var b strings.Builder
	if i.sign < 0 {
		b.WriteByte(i.sys.Negative())
	}
	for k := len(i.mag) - 1; k >= 0; k-- {
		c, _ := i.sys.ToChar(i.mag[k])
		b.WriteByte(c)
	}

	return b.String()
}

// String implements fmt.Stringer.
func (i Int) String() string {
	return i.Format()
}
