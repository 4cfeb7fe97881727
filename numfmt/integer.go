package numfmt

// ClampBase maps base into [2, 16]: bases below 2 fall back to decimal and
// bases above 16 to hexadecimal.
func ClampBase(base uint8) uint8 {
	switch {
	case base < 2:
		return 10
	case base > 16:
		return 16
	default:
		return base
	}
}

// Integer formats magnitude in the given base.
//
// A minus sign is written only when negative is set and the base is 10. The
// digits are right-aligned in at least width positions (capped at MaxWidth);
// padding is a space in base 10 and '0' in every other base. Significant
// digits are never dropped, so a value wider than width keeps all of them.
func Integer(magnitude uint64, negative bool, base, width uint8) Digits {
	var d Digits

	base = ClampBase(base)
	if negative && base == 10 {
		d.push('-')
	}

	pad := byte('0')
	if base == 10 {
		pad = ' '
	}

	d.put(magnitude, uint64(base), int(min(width, MaxWidth)), pad)
	return d
}

// Uint formats an unsigned value of any width.
func Uint(v uint64, base, width uint8) Digits {
	return Integer(v, false, base, width)
}

// Int8 formats v. Outside base 10 a negative v is printed as its 8-bit
// two's-complement pattern, so Int8(-1, 16, 0) is "FF".
func Int8(v int8, base, width uint8) Digits {
	return signed(int64(v), 8, base, width)
}

// Int16 formats v like Int8 with a 16-bit pattern outside base 10.
func Int16(v int16, base, width uint8) Digits {
	return signed(int64(v), 16, base, width)
}

// Int32 formats v like Int8 with a 32-bit pattern outside base 10.
func Int32(v int32, base, width uint8) Digits {
	return signed(int64(v), 32, base, width)
}

// Int64 formats v like Int8 with a 64-bit pattern outside base 10.
func Int64(v int64, base, width uint8) Digits {
	return signed(v, 64, base, width)
}

func signed(v int64, bits uint, base, width uint8) Digits {
	if v < 0 && ClampBase(base) == 10 {
		// -math.MinInt64 wraps to itself; as uint64 it is the right magnitude.
		return Integer(uint64(-v), true, base, width)
	}
	return Integer(uint64(v)&(^uint64(0)>>(64-bits)), false, base, width)
}
