package numfmt

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInteger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		magnitude uint64
		negative  bool
		base      uint8
		width     uint8
		expected  string
	}{
		{name: "zero", magnitude: 0, base: 10, expected: "0"},
		{name: "zero hex padded", magnitude: 0, base: 16, width: 2, expected: "00"},
		{name: "hex zero padded", magnitude: 255, base: 16, width: 4, expected: "00FF"},
		{name: "decimal space padded", magnitude: 42, base: 10, width: 5, expected: "   42"},
		{name: "negative decimal", magnitude: 7, negative: true, base: 10, expected: "-7"},
		{name: "sign precedes padding", magnitude: 42, negative: true, base: 10, width: 5, expected: "-   42"},
		{name: "negative ignored in hex", magnitude: 7, negative: true, base: 16, expected: "7"},
		{name: "binary", magnitude: 5, base: 2, width: 8, expected: "00000101"},
		{name: "octal", magnitude: 8, base: 8, expected: "10"},
		{name: "base 0 is decimal", magnitude: 123, base: 0, expected: "123"},
		{name: "base 1 is decimal", magnitude: 123, base: 1, width: 4, expected: " 123"},
		{name: "base 36 is hex", magnitude: 0xBEEF, base: 36, expected: "BEEF"},
		{name: "width capped", magnitude: 1, base: 10, width: 40, expected: strings.Repeat(" ", 15) + "1"},
		{name: "width smaller than digits", magnitude: 123456, base: 10, width: 2, expected: "123456"},
		{name: "max uint64 decimal", magnitude: math.MaxUint64, base: 10, expected: "18446744073709551615"},
		{name: "max uint64 binary", magnitude: math.MaxUint64, base: 2, expected: strings.Repeat("1", 64)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Integer(tc.magnitude, tc.negative, tc.base, tc.width)

			require.Equal(t, tc.expected, got.String())
			require.Equal(t, len(tc.expected), got.Len())
		})
	}
}

func TestSignedEntries(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		got      Digits
		expected string
	}{
		{name: "int8 decimal", got: Int8(-128, 10, 0), expected: "-128"},
		{name: "int8 hex pattern", got: Int8(-1, 16, 0), expected: "FF"},
		{name: "int16 hex pattern", got: Int16(-2, 16, 0), expected: "FFFE"},
		{name: "int32 binary pattern", got: Int32(-1, 2, 0), expected: strings.Repeat("1", 32)},
		{name: "int64 min", got: Int64(math.MinInt64, 10, 0), expected: "-9223372036854775808"},
		{name: "int64 max", got: Int64(math.MaxInt64, 10, 0), expected: "9223372036854775807"},
		{name: "int64 hex pattern", got: Int64(-1, 16, 0), expected: "FFFFFFFFFFFFFFFF"},
		{name: "clamped base keeps sign", got: Int32(-5, 0, 3), expected: "-  5"},
		{name: "positive octal", got: Int16(64, 8, 4), expected: "0100"},
		{name: "uint", got: Uint(4096, 16, 0), expected: "1000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, tc.got.String())
		})
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	t.Parallel()

	values := []uint64{0, 1, 2, 9, 10, 15, 16, 255, 256, 1000, 65535, 1<<32 - 1, 1 << 32, 1<<63 + 12345, math.MaxUint64}

	for base := uint8(2); base <= 16; base++ {
		for _, v := range values {
			d := Integer(v, false, base, 0)

			got, err := strconv.ParseUint(d.String(), int(base), 64)

			require.NoError(t, err)
			require.Equal(t, v, got, "base %d", base)
		}
	}
}

func TestIntegerSignOnlyInDecimal(t *testing.T) {
	t.Parallel()

	for base := uint8(0); base < 40; base++ {
		d := Integer(42, true, base, 0)
		hasSign := strings.HasPrefix(d.String(), "-")

		require.Equal(t, ClampBase(base) == 10, hasSign, "base %d", base)
	}
}

func TestIntegerWidthOnlyPads(t *testing.T) {
	t.Parallel()

	for _, base := range []uint8{2, 8, 10, 16} {
		natural := Integer(1234, false, base, 0).String()

		for width := uint8(0); width <= MaxWidth+2; width++ {
			got := Integer(1234, false, base, width).String()

			require.True(t, strings.HasSuffix(got, natural), "base %d width %d: %q", base, width, got)
			require.GreaterOrEqual(t, len(got), len(natural))
			require.LessOrEqual(t, len(got), max(len(natural), MaxWidth))
		}
	}
}

func TestDigitsBuffers(t *testing.T) {
	t.Parallel()

	d := Uint(255, 16, 4)

	require.Equal(t, []byte("00FF"), d.Bytes())
	require.Equal(t, []byte("x=00FF"), d.AppendTo([]byte("x=")))

	var zero Digits
	require.Equal(t, 0, zero.Len())
	require.Empty(t, zero.Bytes())
}

func TestIntegerIsPure(t *testing.T) {
	t.Parallel()

	a := Int64(-9876, 10, 8)
	b := Int64(-9876, 10, 8)

	require.Equal(t, a.String(), b.String())
	require.Equal(t, a, b)
}
