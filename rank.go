package lexorank

import (
	"strings"
	"time"

	"github.com/calebcase/lexorank/decimal"
	"github.com/calebcase/lexorank/integer"
	"github.com/calebcase/lexorank/numeral"
)

// System is the numeral system ranks are encoded in.
var System = numeral.Base36

// BucketSeparator splits a rank's bucket tag from its decimal component.
const BucketSeparator = '|'

// integerWidth is the minimum digit count of the formatted integer part. It
// also bounds the decimal component: legal values lie in [0, base^6 - 1].
const integerWidth = 6

var (
	minDecimal = mustDecimal("0")
	maxDecimal = mustDecimal("zzzzzz")

	// stepDecimal is the fixed increment taken by GenNext and GenPrev.
	stepDecimal = mustDecimal("8")

	halfDecimal = decimal.Half(System)

	// initialMinDecimal seeds GenNext from the minimum sentinel and
	// initialMaxDecimal seeds GenPrev from the maximum sentinel, leaving
	// room to keep stepping in both directions.
	initialMinDecimal = mustDecimal("100000")
	initialMaxDecimal = mustDecimal("y00000")

	// timestampMod is base^integerWidth: the wrap period, in seconds, of
	// timestamp seeded ranks.
	timestampMod = func() int64 {
		m := int64(1)
		for k := 0; k < integerWidth; k++ {
			m *= int64(System.Base())
		}

		return m
	}()
)

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.Parse(s, System)
	if err != nil {
		panic(err)
	}

	return d
}

// Rank is a sortable position in an ordered collection: a bucket tag plus a
// decimal component, serialized as "<bucket>|<integer>:<fraction>". Ranks
// are immutable; every generating operation returns a new value.
type Rank struct {
	bucket Bucket
	value  decimal.Decimal
	str    string
}

func newRank(b Bucket, v decimal.Decimal) Rank {
	return Rank{
		bucket: b,
		value:  v,
		str:    formatRank(b, v),
	}
}

// formatRank renders the canonical string: the integer part zero padded to
// at least integerWidth digits, the radix point always present, and the
// fraction with trailing zeros already stripped by the decimal's canonical
// form.
func formatRank(b Bucket, v decimal.Decimal) string {
	s := v.Format()

	whole, frac := s, ""
	if k := strings.IndexByte(s, System.RadixPoint()); k >= 0 {
		whole, frac = s[:k], s[k+1:]
	}

	zero, _ := System.ToChar(0)
	for len(whole) < integerWidth {
		whole = string(zero) + whole
	}

	var sb strings.Builder
	sb.WriteString(b.String())
	sb.WriteByte(BucketSeparator)
	sb.WriteString(whole)
	sb.WriteByte(System.RadixPoint())
	sb.WriteString(frac)

	return sb.String()
}

func validSystem(v decimal.Decimal) bool {
	sys := v.System()

	return sys != nil && numeral.Same(sys, System)
}

// New constructs a rank from a bucket and decimal component. The decimal
// must be built under the rank System and lie in [Min, Max].
func New(b Bucket, v decimal.Decimal) (r Rank, err error) {
	defer Error.WrapP(&err)

	if !validSystem(v) {
		return Rank{}, ErrSystemMismatch.New("decimal was not built under the %s rank system", System.Name())
	}
	if v.Cmp(minDecimal) < 0 || v.Cmp(maxDecimal) > 0 {
		return Rank{}, ErrOutOfRange.New("decimal %s outside [%s, %s]", v, minDecimal, maxDecimal)
	}

	return newRank(b, v), nil
}

// Parse reads a rank from its canonical string form. Both halves are
// validated independently; reformatting the result reproduces the canonical
// form byte for byte.
func Parse(s string) (r Rank, err error) {
	defer Error.WrapP(&err)

	parts := strings.Split(s, string(BucketSeparator))
	if len(parts) != 2 {
		return Rank{}, Error.New("missing bucket separator: %q", s)
	}

	b, err := BucketFromString(parts[0])
	if err != nil {
		return Rank{}, err
	}

	v, err := decimal.Parse(parts[1], System)
	if err != nil {
		return Rank{}, err
	}

	return New(b, v)
}

// Min returns the minimum rank in bucket 0.
func Min() Rank {
	return MinIn(Bucket0)
}

// MinIn returns the minimum rank in the given bucket.
func MinIn(b Bucket) Rank {
	return newRank(b, minDecimal)
}

// Max returns the maximum rank in bucket 0.
func Max() Rank {
	return MaxIn(Bucket0)
}

// MaxIn returns the maximum rank in the given bucket.
func MaxIn(b Bucket) Rank {
	return newRank(b, maxDecimal)
}

// Middle returns the rank midway between Min and Max in bucket 0.
func Middle() Rank {
	return MiddleIn(Bucket0)
}

// MiddleIn returns the rank midway between the minimum and maximum of the
// given bucket.
func MiddleIn(b Bucket) Rank {
	return newRank(b, decimalBetween(minDecimal, maxDecimal))
}

// String returns the canonical form.
func (r Rank) String() string {
	return r.str
}

// Bucket returns the rank's bucket.
func (r Rank) Bucket() Bucket {
	return r.bucket
}

// Value returns the rank's decimal component.
func (r Rank) Value() decimal.Decimal {
	return r.value
}

// Cmp orders ranks by ordinal comparison of their canonical strings. The
// zero padded integer part makes string order coincide with numeric order.
func (r Rank) Cmp(o Rank) int {
	return strings.Compare(r.str, o.str)
}

// IsMin returns true if the decimal component is the minimum sentinel.
func (r Rank) IsMin() bool {
	return r.value.Cmp(minDecimal) == 0
}

// IsMax returns true if the decimal component is the maximum sentinel.
func (r Rank) IsMax() bool {
	return r.value.Cmp(maxDecimal) == 0
}

// MarshalText implements encoding.TextMarshaler.
func (r Rank) MarshalText() (data []byte, err error) {
	return []byte(r.str), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rank) UnmarshalText(data []byte) (err error) {
	nr, err := Parse(string(data))
	if err != nil {
		return err
	}

	*r = nr

	return nil
}

// Between returns a new rank strictly between r and other, with the fewest
// fractional digits that keep it strictly inside. Both ranks must share a
// bucket and differ in value.
func (r Rank) Between(other Rank) (out Rank, err error) {
	defer Error.WrapP(&err)

	if !validSystem(r.value) || !validSystem(other.value) {
		return Rank{}, ErrSystemMismatch.New("rank decimal was not built under the %s rank system", System.Name())
	}
	if !r.bucket.Equal(other.bucket) {
		return Rank{}, ErrCrossBucket.New("cannot rank between buckets %s and %s", r.bucket, other.bucket)
	}

	cmp := r.value.Cmp(other.value)
	if cmp == 0 {
		return Rank{}, ErrEqualRanks.New("cannot rank between equal ranks %s and %s", r, other)
	}

	left, right := r.value, other.value
	if cmp > 0 {
		left, right = right, left
	}

	return newRank(r.bucket, decimalBetween(left, right)), nil
}

// GenNext returns a rank after r. From the minimum sentinel it returns the
// fixed initial minimum; otherwise it takes the ceiling plus a fixed step,
// falling back to a midpoint against the maximum when the step would reach
// the boundary. Fails only from the maximum sentinel, where the rank space
// above is exhausted.
func (r Rank) GenNext() (out Rank, err error) {
	defer Error.WrapP(&err)

	if r.IsMin() {
		return newRank(r.bucket, initialMinDecimal), nil
	}
	if r.IsMax() {
		return Rank{}, ErrOutOfRange.New("no rank after the maximum")
	}

	next := decimal.FromInteger(r.value.Ceil()).Add(stepDecimal)
	if next.Cmp(maxDecimal) >= 0 {
		next = decimalBetween(r.value, maxDecimal)
	}

	return newRank(r.bucket, next), nil
}

// GenPrev mirrors GenNext: the fixed initial maximum from the maximum
// sentinel, otherwise floor minus the step with a midpoint fallback against
// the minimum. Fails only from the minimum sentinel.
func (r Rank) GenPrev() (out Rank, err error) {
	defer Error.WrapP(&err)

	if r.IsMax() {
		return newRank(r.bucket, initialMaxDecimal), nil
	}
	if r.IsMin() {
		return Rank{}, ErrOutOfRange.New("no rank before the minimum")
	}

	prev := decimal.FromInteger(r.value.Floor()).Sub(stepDecimal)
	if prev.Cmp(minDecimal) <= 0 {
		prev = decimalBetween(minDecimal, r.value)
	}

	return newRank(r.bucket, prev), nil
}

// InNextBucket returns the same decimal component tagged with the next
// bucket.
func (r Rank) InNextBucket() Rank {
	return newRank(r.bucket.Next(), r.value)
}

// InPrevBucket returns the same decimal component tagged with the previous
// bucket.
func (r Rank) InPrevBucket() Rank {
	return newRank(r.bucket.Prev(), r.value)
}

// FromTimestamp seeds a rank from a point in time: seconds since the Unix
// epoch reduced modulo base^6 to fit the integer digit budget. Ordering is
// chronological only within one modulus period; after a wraparound, later
// times compare less than earlier ones.
func FromTimestamp(t time.Time, b Bucket) Rank {
	secs := t.Unix() % timestampMod
	if secs < 0 {
		secs += timestampMod
	}

	return newRank(b, decimal.FromInteger(integer.FromInt64(secs, System)))
}

// CalculateBetween returns a rank between two canonical rank strings, where
// the empty string means absent. Both absent yields the global middle;
// absent prev means before next; absent next means after prev.
func CalculateBetween(prev, next string) (r Rank, err error) {
	defer Error.WrapP(&err)

	switch {
	case prev == "" && next == "":
		return Middle(), nil
	case prev == "":
		n, err := Parse(next)
		if err != nil {
			return Rank{}, err
		}

		return n.GenPrev()
	case next == "":
		p, err := Parse(prev)
		if err != nil {
			return Rank{}, err
		}

		return p.GenNext()
	}

	p, err := Parse(prev)
	if err != nil {
		return Rank{}, err
	}

	n, err := Parse(next)
	if err != nil {
		return Rank{}, err
	}

	return p.Between(n)
}

// decimalBetween returns the decimal with the fewest fractional digits that
// lies strictly inside (oleft, oright). Precondition: oleft < oright.
func decimalBetween(oleft, oright decimal.Decimal) decimal.Decimal {
	left, right := oleft, oright

	// Align the bounds to the coarser scale, rounding each one inward so
	// the shrunk pair still brackets. If shrinking collapses the bracket,
	// only the exact mean can separate the bounds.
	switch {
	case left.Scale() < right.Scale():
		shrunk := right.SetScale(left.Scale(), false)
		if shrunk.Cmp(left) <= 0 {
			return trim(oleft, oright, mean(oleft, oright))
		}

		right = shrunk
	case left.Scale() > right.Scale():
		shrunk := left.SetScale(right.Scale(), true)
		if shrunk.Cmp(right) >= 0 {
			return trim(oleft, oright, mean(oleft, oright))
		}

		left = shrunk
	}

	// Walk toward scale zero, ceiling the left bound and flooring the
	// right. The first scale where they meet is the shortest separating
	// value. Once they cross, no shorter value exists and the mean of the
	// last bracketing pair decides.
	for scale := left.Scale(); scale > 0; scale-- {
		ceil := left.SetScale(scale-1, true)
		floor := right.SetScale(scale-1, false)

		cmp := ceil.Cmp(floor)
		if cmp == 0 {
			return trim(oleft, oright, verify(oleft, oright, ceil))
		}
		if cmp > 0 {
			break
		}

		left, right = ceil, floor
	}

	return trim(oleft, oright, verify(oleft, oright, mean(left, right)))
}

// mean returns the exact arithmetic midpoint of left and right, shrunk back
// to the larger operand scale when that keeps it strictly inside.
func mean(left, right decimal.Decimal) decimal.Decimal {
	m := left.Add(right).Mul(halfDecimal)

	scale := left.Scale()
	if right.Scale() > scale {
		scale = right.Scale()
	}

	if m.Scale() > scale {
		if down := m.SetScale(scale, false); down.Cmp(left) > 0 {
			return down
		}
		if up := m.SetScale(scale, true); up.Cmp(right) < 0 {
			return up
		}
	}

	return m
}

// verify re-checks a candidate against the original bounds. Rounding during
// the scale walk can push a candidate onto or past an endpoint; the
// full-precision mean of two distinct originals is always strictly interior
// and replaces it.
func verify(oleft, oright, cand decimal.Decimal) decimal.Decimal {
	if cand.Cmp(oleft) <= 0 || cand.Cmp(oright) >= 0 {
		return mean(oleft, oright)
	}

	return cand
}

// trim drops fractional digits one at a time for as long as the result
// stays strictly inside the original open interval. The value returned is
// the shortest representation consistent with the requested ordering.
func trim(oleft, oright, m decimal.Decimal) decimal.Decimal {
	for m.Scale() > 0 {
		shrunk := m.SetScale(m.Scale()-1, false)
		if shrunk.Cmp(oleft) <= 0 || shrunk.Cmp(oright) >= 0 {
			break
		}

		m = shrunk
	}

	return m
}
