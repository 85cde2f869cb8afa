package decimal_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/lexorank/decimal"
	"github.com/calebcase/lexorank/integer"
	"github.com/calebcase/lexorank/numeral"
)

func mustParse(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.Parse(s, numeral.Base36)
	require.NoError(t, err)

	return d
}

func TestParseFormat(t *testing.T) {
	type TC struct {
		name   string
		input  string
		output string
		scale  int
		ok     bool
	}

	tcs := []TC{
		{
			name:   "integer",
			input:  "123",
			output: "123",
			scale:  0,
			ok:     true,
		},
		{
			name:   "fraction",
			input:  "1:i",
			output: "1:i",
			scale:  1,
			ok:     true,
		},
		{
			name:   "trailing fraction zeros",
			input:  "1:i0",
			output: "1:i",
			scale:  1,
			ok:     true,
		},
		{
			name:   "zero fraction",
			input:  "0:0",
			output: "0",
			scale:  0,
			ok:     true,
		},
		{
			name:   "trailing point",
			input:  "123:",
			output: "123",
			scale:  0,
			ok:     true,
		},
		{
			name:   "leading point",
			input:  ":5",
			output: "0:5",
			scale:  1,
			ok:     true,
		},
		{
			name:   "negative fraction",
			input:  "-0:05",
			output: "-0:05",
			scale:  2,
			ok:     true,
		},
		{
			name:  "double point",
			input: "1:2:3",
			ok:    false,
		},
		{
			name:  "bad digit",
			input: "1:?",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
		{
			name:  "point only",
			input: ":",
			ok:    false,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d, err := decimal.Parse(tc.input, numeral.Base36)
			if !tc.ok {
				require.Error(t, err)
				require.True(t, decimal.Error.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.output, d.Format())
			require.Equal(t, tc.scale, d.Scale())
		})
	}
}

func TestMake(t *testing.T) {
	// Trailing fractional zeros strip and the scale reduces with them.
	mag, err := integer.Parse("1i00", numeral.Base36)
	require.NoError(t, err)

	d := decimal.Make(mag, 3)
	require.Equal(t, 1, d.Scale())
	require.Equal(t, "1:i", d.Format())

	// Stripping stops at the scale boundary: integer part zeros stay.
	mag, err = integer.Parse("400", numeral.Base36)
	require.NoError(t, err)

	d = decimal.Make(mag, 1)
	require.Equal(t, 0, d.Scale())
	require.Equal(t, "40", d.Format())

	// Canonical zero has scale 0.
	d = decimal.Make(integer.Zero(numeral.Base36), 5)
	require.Equal(t, 0, d.Scale())
	require.True(t, d.IsZero())
	require.Equal(t, "0", d.Format())
}

func TestAddSub(t *testing.T) {
	type TC struct {
		name string
		a    string
		b    string
		sum  string
		diff string
	}

	tcs := []TC{
		{
			name: "same scale",
			a:    "1:i",
			b:    "1:i",
			sum:  "3",
			diff: "0",
		},
		{
			name: "fraction carry",
			a:    "0:z",
			b:    "0:1",
			sum:  "1",
			diff: "0:y",
		},
		{
			name: "scale alignment",
			a:    "1",
			b:    "0:1",
			sum:  "1:1",
			diff: "0:z",
		},
		{
			name: "uneven scales",
			a:    "1:05",
			b:    "0:5",
			sum:  "1:55",
			diff: "0:v5",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			a := mustParse(t, tc.a)
			b := mustParse(t, tc.b)

			require.Equal(t, tc.sum, a.Add(b).Format())
			require.Equal(t, tc.diff, a.Sub(b).Format())
		})
	}
}

func TestMul(t *testing.T) {
	type TC struct {
		name   string
		a      string
		b      string
		output string
	}

	tcs := []TC{
		{
			name:   "quarter",
			a:      "0:i",
			b:      "0:i",
			output: "0:9",
		},
		{
			name:   "integers",
			a:      "z",
			b:      "z",
			output: "y1",
		},
		{
			name:   "scales add",
			a:      "0:1",
			b:      "0:1",
			output: "0:01",
		},
		{
			name:   "by zero",
			a:      "1:abc",
			b:      "0",
			output: "0",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			a := mustParse(t, tc.a)
			b := mustParse(t, tc.b)

			require.Equal(t, tc.output, a.Mul(b).Format())
		})
	}
}

func TestHalf(t *testing.T) {
	half := decimal.Half(numeral.Base36)
	require.Equal(t, "0:i", half.Format())
	require.Equal(t, 1, half.Scale())

	// Multiplying by half is exact division by two for even values.
	require.Equal(t, "3", mustParse(t, "6").Mul(half).Format())
	require.Equal(t, "3:i", mustParse(t, "7").Mul(half).Format())
}

func TestFloorCeil(t *testing.T) {
	type TC struct {
		name  string
		input string
		floor string
		ceil  string
		exact bool
	}

	tcs := []TC{
		{
			name:  "exact",
			input: "2",
			floor: "2",
			ceil:  "2",
			exact: true,
		},
		{
			name:  "fraction",
			input: "1:i",
			floor: "1",
			ceil:  "2",
			exact: false,
		},
		{
			name:  "below one",
			input: "0:z",
			floor: "0",
			ceil:  "1",
			exact: false,
		},
		{
			name:  "zero",
			input: "0",
			floor: "0",
			ceil:  "0",
			exact: true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d := mustParse(t, tc.input)

			require.Equal(t, tc.floor, d.Floor().Format())
			require.Equal(t, tc.ceil, d.Ceil().Format())
			require.Equal(t, tc.exact, d.IsExact())
		})
	}
}

func TestSetScale(t *testing.T) {
	d := mustParse(t, "1:abc")

	require.Equal(t, "1:a", d.SetScale(1, false).Format())
	require.Equal(t, "1:b", d.SetScale(1, true).Format())
	require.Equal(t, "1", d.SetScale(0, false).Format())
	require.Equal(t, "2", d.SetScale(0, true).Format())

	// Growing the scale is a no-op: precision is never invented.
	require.Equal(t, "1:abc", d.SetScale(5, false).Format())
	require.Equal(t, "1:abc", d.SetScale(3, true).Format())

	// Negative scales clamp to zero.
	require.Equal(t, "1", d.SetScale(-1, false).Format())
}

func TestCmp(t *testing.T) {
	type TC struct {
		name string
		a    string
		b    string
		cmp  int
	}

	tcs := []TC{
		{
			name: "equal across scales",
			a:    "1:i",
			b:    "1:i0",
			cmp:  0,
		},
		{
			name: "fraction order",
			a:    "1:8",
			b:    "1:i",
			cmp:  -1,
		},
		{
			name: "integer dominates",
			a:    "0:z",
			b:    "1",
			cmp:  -1,
		},
		{
			name: "longer fraction larger",
			a:    "1:i1",
			b:    "1:i",
			cmp:  1,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			a := mustParse(t, tc.a)
			b := mustParse(t, tc.b)

			require.Equal(t, tc.cmp, a.Cmp(b))
			require.Equal(t, -tc.cmp, b.Cmp(a))
		})
	}
}

func TestFromInteger(t *testing.T) {
	v, err := integer.Parse("zz", numeral.Base36)
	require.NoError(t, err)

	d := decimal.FromInteger(v)
	require.Equal(t, 0, d.Scale())
	require.Equal(t, "zz", d.Format())

	require.True(t, decimal.Zero(numeral.Base36).IsZero())
}
