package num

import (
	"math"
)

// Integer is implemented by every signed and unsigned type in this package,
// and is the source type for conversions between widths.
type Integer interface {
	Sign() int

	// MagnitudeWords returns the little-endian 64-bit words of the absolute
	// value.
	MagnitudeWords() []uint64
}

var (
	_ Integer = U128{}
	_ Integer = I128{}
)

// magnitudeOf returns the magnitude of src truncated to the width of U2X[W],
// and whether any set bits were discarded.
func magnitudeOf[W Word[W]](src Integer) (mag U2X[W], fits bool) {
	ws := src.MagnitudeWords()
	n := int(mag.BitWidth() / 64)
	fits = true
	for i := n; i < len(ws); i++ {
		if ws[i] != 0 {
			fits = false
			break
		}
	}
	return mag.FromWords(ws), fits
}

func signed[W Word[W]](mag U2X[W], neg bool) Int2X[W] {
	if neg {
		mag = mag.Neg()
	}
	return Int2X[W]{raw: mag}
}

// Int2XExactly converts src to an Int2X[W], reporting false if src can not be
// represented without loss.
func Int2XExactly[W Word[W]](src Integer) (out Int2X[W], ok bool) {
	neg := src.Sign() < 0
	mag, fits := magnitudeOf[W](src)

	limit := maxRaw[W]()
	if neg {
		limit = minRaw[W]()
	}
	if !fits || mag.Cmp(limit) > 0 {
		return out, false
	}
	return signed(mag, neg), true
}

// Int2XTruncating converts src to an Int2X[W] by keeping the low bits of its
// magnitude and re-applying the sign. It always succeeds.
func Int2XTruncating[W Word[W]](src Integer) Int2X[W] {
	mag, _ := magnitudeOf[W](src)
	return signed(mag, src.Sign() < 0)
}

// Int2XClamping converts src to an Int2X[W], substituting MaxInt2X when
// src can not be represented. This applies to negative sources too: a source
// below MinInt2X also produces MaxInt2X.
func Int2XClamping[W Word[W]](src Integer) Int2X[W] {
	if out, ok := Int2XExactly[W](src); ok {
		return out
	}
	return MaxInt2X[W]()
}

// Int2XConvert converts src to an Int2X[W]. It panics with an
// *ArithmeticError wrapping ErrOverflow if src can not be represented; see
// Int2XExactly, Int2XTruncating and Int2XClamping for alternatives.
func Int2XConvert[W Word[W]](src Integer) Int2X[W] {
	out, ok := Int2XExactly[W](src)
	if !ok {
		panic(out.arithError("convert", ErrOverflow))
	}
	return out
}

// U2XExactly converts src to a U2X[W], reporting false if src is negative or
// too large.
func U2XExactly[W Word[W]](src Integer) (out U2X[W], ok bool) {
	if src.Sign() < 0 {
		return out, false
	}
	out, ok = magnitudeOf[W](src)
	if !ok {
		return U2X[W]{}, false
	}
	return out, true
}

// U2XTruncating converts src to a U2X[W] by keeping its low bits. Negative
// sources are converted through their two's complement.
func U2XTruncating[W Word[W]](src Integer) U2X[W] {
	mag, _ := magnitudeOf[W](src)
	if src.Sign() < 0 {
		return mag.Neg()
	}
	return mag
}

// Int2XFromFloat64Exactly converts f through an exact int64. It reports false
// for NaN, infinities, non-integral values and values outside the range of
// int64.
func Int2XFromFloat64Exactly[W Word[W]](f float64) (out Int2X[W], ok bool) {
	if f != f || f != math.Trunc(f) { // f != f == isnan; Trunc(±Inf) is ±Inf.
		return out, false
	}
	if f < minInt64Float || f >= -minInt64Float {
		return out, false
	}
	return Int2XFrom[W](int64(f)), true
}

// Int2XFromFloat64 converts f through an int64, truncating towards zero. It
// always succeeds: values outside the range of int64 saturate at its bounds
// and NaN is treated as 0.
func Int2XFromFloat64[W Word[W]](f float64) Int2X[W] {
	switch {
	case f != f:
		return Int2X[W]{}
	case f >= -minInt64Float:
		return Int2XFrom[W](int64(maxInt64))
	case f <= minInt64Float:
		return Int2XFrom[W](int64(minInt64))
	}
	return Int2XFrom[W](int64(f))
}

func Int2XFromFloat32Exactly[W Word[W]](f float32) (Int2X[W], bool) {
	return Int2XFromFloat64Exactly[W](float64(f))
}

func Int2XFromFloat32[W Word[W]](f float32) Int2X[W] {
	return Int2XFromFloat64[W](float64(f))
}
