package decimal_test

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"github.com/calebcase/bbi/decimal"
	"github.com/calebcase/bbi/integer"
)

func TestParse(t *testing.T) {
	type TC struct {
		input string
		limbs []integer.Limb
		Mark  error
	}

	tcs := []TC{
		{input: "0", limbs: []integer.Limb{0}, Mark: oops.New("unexpected")},
		{input: "000", limbs: []integer.Limb{0}, Mark: oops.New("unexpected")},
		{input: "7", limbs: []integer.Limb{7}, Mark: oops.New("unexpected")},
		{input: "12345", limbs: []integer.Limb{12345}, Mark: oops.New("unexpected")},
		{input: "0012345", limbs: []integer.Limb{12345}, Mark: oops.New("unexpected")},
		{input: "4294967295", limbs: []integer.Limb{0xFFFFFFFF}, Mark: oops.New("unexpected")},
		{input: "4294967296", limbs: []integer.Limb{1, 0}, Mark: oops.New("unexpected")},
		{input: "18446744073709551615", limbs: []integer.Limb{0xFFFFFFFF, 0xFFFFFFFF}, Mark: oops.New("unexpected")},
		{input: "18446744073709551616", limbs: []integer.Limb{1, 0, 0}, Mark: oops.New("unexpected")},
		{input: "340282366920938463463374607431768211456", limbs: []integer.Limb{1, 0, 0, 0, 0}, Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			x, err := decimal.Parse(tc.input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.limbs, x.Limbs(), tc.Mark)
		})
	}
}

func TestParseMatchesBig(t *testing.T) {
	inputs := []string{
		"1000000000",
		"9999999999",
		"123456789012345678901234567890",
		"98765432109876543210987654321098765432109876543210",
		"1" + strings.Repeat("0", 200),
		strings.Repeat("9", 311),
	}

	for i, input := range inputs {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, err := decimal.Parse(input)
			require.NoError(t, err)

			expected, ok := new(big.Int).SetString(input, 10)
			require.True(t, ok)

			data, err := x.MarshalBinary()
			require.NoError(t, err)

			actual := new(big.Int).SetBytes(data)
			require.Equal(t, 0, expected.Cmp(actual), spew.Sdump(x.DumpBinary()))

			// No most significant zero limbs.
			require.Equal(t, (expected.BitLen()+integer.LimbBits-1)/integer.LimbBits, x.Len())
			require.NotEqual(t, integer.Limb(0), x.Limb(0))
		})
	}
}

func TestParseErrors(t *testing.T) {
	type TC struct {
		input string
		class *errs.Class
		Mark  error
	}

	tcs := []TC{
		{input: "", class: &decimal.Empty, Mark: oops.New("unexpected")},
		{input: "-1", class: &decimal.InvalidDigit, Mark: oops.New("unexpected")},
		{input: "+1", class: &decimal.InvalidDigit, Mark: oops.New("unexpected")},
		{input: "12a4", class: &decimal.InvalidDigit, Mark: oops.New("unexpected")},
		{input: " 1", class: &decimal.InvalidDigit, Mark: oops.New("unexpected")},
		{input: "1 ", class: &decimal.InvalidDigit, Mark: oops.New("unexpected")},
		{input: "1_000", class: &decimal.InvalidDigit, Mark: oops.New("unexpected")},
		{input: "3.14", class: &decimal.InvalidDigit, Mark: oops.New("unexpected")},
		{input: "٣", class: &decimal.InvalidDigit, Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%q", tc.input), func(t *testing.T) {
			x, err := decimal.Parse(tc.input)
			require.Error(t, err, tc.Mark)
			require.Nil(t, x, tc.Mark)

			require.True(t, decimal.Error.Has(err), tc.Mark)
			require.True(t, decimal.ParseError.Has(err), tc.Mark)
			require.True(t, tc.class.Has(err), tc.Mark)
		})
	}

	_, err := decimal.Parse("12a4")
	require.Contains(t, err.Error(), "offset 2")
	require.False(t, decimal.Empty.Has(err))
}

func TestMustParse(t *testing.T) {
	require.Equal(t, []integer.Limb{1, 0}, decimal.MustParse("4294967296").Limbs())
	require.Panics(t, func() { decimal.MustParse("nope") })
}
