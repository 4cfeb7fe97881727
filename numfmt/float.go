package numfmt

import "math"

const (
	// MaxFrac is the largest number of fractional digits; 10^19 is the
	// largest power of ten representable in a uint64.
	MaxFrac = 19

	// MaxFloatWidth caps the field width requested from the float formatter.
	MaxFloatWidth = 32

	// LegacyLimit is the magnitude above which printers that extract the
	// integer part through 32 bits report "ovf". Pass it to FloatLimit to
	// keep output compatible with them.
	LegacyLimit = 4294967167.0
)

// two64 is 2^64, the first float64 that does not fit in a uint64.
const two64 = 18446744073709551616.0

var pow10 = [MaxFrac + 1]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// Float formats v in fixed-point notation with frac fractional digits in a
// field of at least width bytes. It only reports "ovf" when v scaled by
// 10^frac does not fit in 64 bits.
func Float(v float64, width, frac uint8) Digits {
	return FloatLimit(v, width, frac, 0)
}

// FloatLimit is Float with an additional magnitude limit: when limit > 0,
// values with |v| > limit print as "ovf".
//
// NaN prints as "nan" and both infinities as "inf". Otherwise the output is
// an optional '-', the integer part, and when frac > 0 a '.' followed by
// exactly frac digits. v is scaled by 10^frac and rounded half-up once.
// width counts every byte including the sign and point; it only ever widens
// the field, with leading spaces between the sign and the integer part.
func FloatLimit(v float64, width, frac uint8, limit float64) Digits {
	switch {
	case math.IsNaN(v):
		return literal("nan")
	case math.IsInf(v, 0):
		return literal("inf")
	case limit > 0 && (v > limit || v < -limit):
		return literal("ovf")
	}

	frac = min(frac, MaxFrac)
	width = min(width, MaxFloatWidth)

	var d Digits

	negative := v < 0
	if negative {
		v = -v
	}

	scaled := v*float64(pow10[frac]) + 0.5
	if scaled >= two64 {
		return literal("ovf")
	}
	rounded := uint64(scaled)

	intWidth := int(width)
	if negative {
		d.push('-')
		intWidth--
	}
	if frac > 0 {
		intWidth -= int(frac) + 1
	}

	d.put(rounded/pow10[frac], 10, intWidth, ' ')
	if frac > 0 {
		d.push('.')
		d.put(rounded%pow10[frac], 10, int(frac), '0')
	}
	return d
}
