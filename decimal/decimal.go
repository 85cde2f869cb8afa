package decimal

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/lexorank/integer"
	"github.com/calebcase/lexorank/numeral"
)

var Error = errs.Class("decimal")

// Decimal is a fixed point number: an integer magnitude scaled by
// base^-scale. Values are immutable and always canonical: the magnitude
// carries no trailing fractional zero digits and zero has scale 0.
type Decimal struct {
	mag   integer.Int
	scale int
}

// Make builds a decimal from a raw magnitude and requested scale,
// canonicalizing on the way in. Every construction path funnels through
// here; equality and the scale walk in rank generation depend on it.
func Make(mag integer.Int, scale int) Decimal {
	if scale < 0 {
		scale = 0
	}

	if mag.IsZero() {
		return Decimal{
			mag:   mag,
			scale: 0,
		}
	}

	for scale > 0 && mag.DigitAt(0) == 0 {
		mag = mag.ShiftRight(1)
		scale--
	}

	return Decimal{
		mag:   mag,
		scale: scale,
	}
}

// FromInteger returns the decimal with the integer's value and scale 0.
func FromInteger(i integer.Int) Decimal {
	return Make(i, 0)
}

// Zero returns 0 under the given system.
func Zero(sys numeral.System) Decimal {
	return FromInteger(integer.Zero(sys))
}

// Half returns 1/2 under the given system: magnitude base/2 at scale 1.
func Half(sys numeral.System) Decimal {
	return Make(integer.FromInt64(int64(sys.Base()/2), sys), 1)
}

// Parse reads digits with at most one radix point. The scale is the digit
// count after the point.
func Parse(s string, sys numeral.System) (d Decimal, err error) {
	defer Error.WrapP(&err)

	point := strings.IndexByte(s, sys.RadixPoint())
	if point < 0 {
		i, err := integer.Parse(s, sys)
		if err != nil {
			return Decimal{}, err
		}

		return FromInteger(i), nil
	}

	if strings.IndexByte(s[point+1:], sys.RadixPoint()) >= 0 {
		return Decimal{}, Error.New("more than one radix point: %q", s)
	}

	i, err := integer.Parse(s[:point]+s[point+1:], sys)
	if err != nil {
		return Decimal{}, err
	}

	return Make(i, len(s)-point-1), nil
}

// System returns the numeral system the decimal was built under.
func (d Decimal) System() numeral.System {
	return d.mag.System()
}

// Scale returns the count of fractional digits.
func (d Decimal) Scale() int {
	return d.scale
}

// IsZero returns true if the decimal is zero.
func (d Decimal) IsZero() bool {
	return d.mag.IsZero()
}

// align shifts whichever magnitude has the smaller scale up to the common
// scale.
func align(a, b Decimal) (am, bm integer.Int, scale int) {
	am, bm = a.mag, b.mag
	scale = a.scale

	switch {
	case a.scale < b.scale:
		am = am.ShiftLeft(b.scale - a.scale)
		scale = b.scale
	case a.scale > b.scale:
		bm = bm.ShiftLeft(a.scale - b.scale)
	}

	return am, bm, scale
}

// Cmp returns -1, 0, or 1 as d is less than, equal to, or greater than o.
func (d Decimal) Cmp(o Decimal) int {
	am, bm, _ := align(d, o)

	return am.Cmp(bm)
}

// Add returns d + o.
func (d Decimal) Add(o Decimal) Decimal {
	am, bm, scale := align(d, o)

	return Make(am.Add(bm), scale)
}

// Sub returns d - o.
func (d Decimal) Sub(o Decimal) Decimal {
	am, bm, scale := align(d, o)

	return Make(am.Sub(bm), scale)
}

// Mul returns d * o exactly: magnitudes multiply, scales add.
func (d Decimal) Mul(o Decimal) Decimal {
	return Make(d.mag.Mul(o.mag), d.scale+o.scale)
}

// Floor drops the fractional digits, truncating toward zero.
func (d Decimal) Floor() integer.Int {
	return d.mag.ShiftRight(d.scale)
}

// Ceil returns the magnitude when the value is exact and floor + 1
// otherwise.
func (d Decimal) Ceil() integer.Int {
	if d.IsExact() {
		return d.Floor()
	}

	return d.Floor().Add(integer.One(d.System()))
}

// IsExact returns true if the fractional part is entirely zero digits. Make
// strips trailing fractional zeros, so any remaining scale carries a nonzero
// low digit.
func (d Decimal) IsExact() bool {
	return d.scale == 0
}

// SetScale reduces the decimal to the given scale. Scales at or above the
// current one return the value unchanged: precision is never invented. When
// roundUp is set, one is added to the shrunk magnitude, guaranteeing the
// result is at least the true value.
func (d Decimal) SetScale(scale int, roundUp bool) Decimal {
	if scale >= d.scale {
		return d
	}
	if scale < 0 {
		scale = 0
	}

	mag := d.mag.ShiftRight(d.scale - scale)
	if roundUp {
		mag = mag.Add(integer.One(d.System()))
	}

	return Make(mag, scale)
}

// Format renders the magnitude with the radix point inserted scale digits
// from the right. The integer part is zero padded to at least one digit and
// any sign precedes the padding.
func (d Decimal) Format() string {
	s := d.mag.Format()
	if d.scale == 0 {
		return s
	}

	sys := d.System()

	var sign string
	if len(s) > 0 && s[0] == sys.Negative() {
		sign = s[:1]
		s = s[1:]
	}

	zero, _ := sys.ToChar(0)
	for len(s) < d.scale+1 {
		s = string(zero) + s
	}

	point := len(s) - d.scale

	return sign + s[:point] + string(sys.RadixPoint()) + s[point:]
}

// String implements fmt.Stringer.
func (d Decimal) String() string {
	return d.Format()
}
