package num

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Int2X is a two's complement signed integer twice as wide as W. Its only
// field is the raw bit pattern, held in the unsigned U2X[W]; all signed
// behaviour is layered on top of that.
//
// Int2X is a value type; all operations return new values. Use the width
// aliases rather than spelling out the nesting: I128, I256, I512 and I1024.
type Int2X[W Word[W]] struct {
	raw U2X[W]
}

// Int2XFromRaw is the complement to Int2X.Raw(); it reinterprets a two's
// complement bit pattern as an Int2X.
func Int2XFromRaw[W Word[W]](raw U2X[W]) Int2X[W] { return Int2X[W]{raw: raw} }

// Int2XFrom creates an Int2X from any native integer. Every native integer
// fits, so this always succeeds.
func Int2XFrom[W Word[W], T constraints.Integer](v T) (out Int2X[W]) {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	out.raw = U2XFrom64[W](mag)
	if v < 0 {
		out.raw = out.raw.Neg()
	}
	return out
}

// Int2XFromWords creates an Int2X from the little-endian words of its two's
// complement bit pattern. See Int2X.Words() for the counterpart.
func Int2XFromWords[W Word[W]](ws []uint64) Int2X[W] {
	return Int2X[W]{raw: U2XFromWords[W](ws)}
}

// Int2XFromBigInt creates an Int2X from a big.Int. Overflow clamps to
// MaxInt2X/MinInt2X and sets accurate to 'false'.
func Int2XFromBigInt[W Word[W]](v *big.Int) (out Int2X[W], accurate bool) {
	neg := v.Sign() < 0

	mag, accurate := U2XFromBigInt[W](new(big.Int).Abs(v))
	if !neg {
		if !accurate || mag.Cmp(maxRaw[W]()) > 0 {
			return MaxInt2X[W](), false
		}
		return Int2X[W]{raw: mag}, true
	}

	if !accurate || mag.Cmp(minRaw[W]()) > 0 {
		return MinInt2X[W](), false
	}
	return Int2X[W]{raw: mag.Neg()}, true
}

// RandInt2X generates a non-negative random integer from an external source.
func RandInt2X[W Word[W]](source RandSource) Int2X[W] {
	return Int2X[W]{raw: RandU2X[W](source).Rsh(1)}
}

// MaxInt2X returns the largest value representable by Int2X[W]: every bit
// set except the top one.
func MaxInt2X[W Word[W]]() Int2X[W] { return Int2X[W]{raw: maxRaw[W]()} }

// MinInt2X returns the smallest value representable by Int2X[W]: only the top
// bit set. MinInt2X has no positive counterpart, so MinInt2X().Neg() is
// MinInt2X().
func MinInt2X[W Word[W]]() Int2X[W] { return Int2X[W]{raw: minRaw[W]()} }

func maxRaw[W Word[W]]() U2X[W] { return MaxU2X[W]().Rsh(1) }
func minRaw[W Word[W]]() U2X[W] { return maxRaw[W]().Inc() }

func (i Int2X[W]) BitWidth() uint { return i.raw.BitWidth() }
func (i Int2X[W]) IsZero() bool   { return i.raw.IsZero() }

// Raw returns the two's complement bit pattern. See Int2XFromRaw() for the
// counterpart.
func (i Int2X[W]) Raw() U2X[W] { return i.raw }

// AsU2X performs a direct cast of an Int2X to a U2X. Negative numbers become
// values > MaxInt2X.
func (i Int2X[W]) AsU2X() U2X[W] { return i.raw }

// IsU2X reports whether i can be represented in a U2X of the same width.
func (i Int2X[W]) IsU2X() bool { return !i.IsNegative() }

// Words returns the little-endian words of the two's complement bit pattern.
func (i Int2X[W]) Words() []uint64 { return i.raw.Words() }

// MagnitudeWords returns the little-endian words of Magnitude(); it exists so
// Int2X satisfies Integer.
func (i Int2X[W]) MagnitudeWords() []uint64 { return i.Magnitude().Words() }

// IsNegative reports whether the top bit of the bit pattern is set.
func (i Int2X[W]) IsNegative() bool { return i.raw.hi.LeadingZeros() == 0 }

// Magnitude returns the absolute value of i as an unsigned integer. Unlike
// Abs, this is exact for MinInt2X.
func (i Int2X[W]) Magnitude() U2X[W] {
	if i.IsNegative() {
		return i.raw.Neg()
	}
	return i.raw
}

func (i Int2X[W]) Sign() int {
	if i.raw.IsZero() {
		return 0
	} else if i.IsNegative() {
		return -1
	}
	return 1
}

// AsInt64 truncates the Int2X to fit in an int64. Values outside the range
// will over/underflow. See IsInt64() if you want to check before you convert.
func (i Int2X[W]) AsInt64() int64 { return int64(i.raw.AsUint64()) }

// IsInt64 reports whether i can be represented as an int64.
func (i Int2X[W]) IsInt64() bool { return Int2XFrom[W](i.AsInt64()) == i }

// IntoBigInt copies this Int2X into a big.Int, allowing you to retain and
// recycle memory.
func (i Int2X[W]) IntoBigInt(b *big.Int) {
	i.Magnitude().IntoBigInt(b)
	if i.IsNegative() {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int2X into it.
func (i Int2X[W]) AsBigInt() *big.Int {
	var b big.Int
	i.IntoBigInt(&b)
	return &b
}

func (i Int2X[W]) AsFloat64() float64 {
	if i.IsNegative() {
		return -i.Magnitude().AsFloat64()
	}
	return i.raw.AsFloat64()
}

// Neg returns -i. Negating MinInt2X wraps around to MinInt2X.
func (i Int2X[W]) Neg() Int2X[W] { return Int2X[W]{raw: i.raw.Neg()} }

// NegOverflow returns -i, reporting overflow when i is MinInt2X.
func (i Int2X[W]) NegOverflow() (v Int2X[W], overflow bool) {
	v = i.Neg()
	return v, !i.raw.IsZero() && v == i
}

// Abs returns the absolute value of i. The absolute value of MinInt2X wraps
// around to MinInt2X; use Magnitude() if you need it exactly.
func (i Int2X[W]) Abs() Int2X[W] {
	if i.IsNegative() {
		return i.Neg()
	}
	return i
}

func (i Int2X[W]) Inc() Int2X[W] { return Int2X[W]{raw: i.raw.Inc()} }
func (i Int2X[W]) Dec() Int2X[W] { return Int2X[W]{raw: i.raw.Dec()} }

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i Int2X[W]) Cmp(n Int2X[W]) int {
	if i == n {
		return 0
	} else if i.LessThan(n) {
		return -1
	}
	return 1
}

func (i Int2X[W]) Equal(n Int2X[W]) bool { return i == n }

// LessThan reports whether i < n.
//
// When the signs agree, i - n can't overflow, so the sign of the wrapped
// difference is the answer. When they differ, the negative one is smaller.
func (i Int2X[W]) LessThan(n Int2X[W]) bool {
	ineg, nneg := i.IsNegative(), n.IsNegative()
	if ineg != nneg {
		return ineg
	}
	return i.raw.Sub(n.raw).Cmp(maxRaw[W]()) > 0
}

func (i Int2X[W]) LessOrEqualTo(n Int2X[W]) bool    { return !n.LessThan(i) }
func (i Int2X[W]) GreaterThan(n Int2X[W]) bool      { return n.LessThan(i) }
func (i Int2X[W]) GreaterOrEqualTo(n Int2X[W]) bool { return !i.LessThan(n) }

// AddOverflow returns i+n and whether the true result fell outside the range
// of Int2X. The partial value is the wrapped result.
//
// Two's complement addition is the same operation as unsigned addition; only
// the overflow test differs: the result overflows when both operands have the
// same sign and the result's sign differs from it.
func (i Int2X[W]) AddOverflow(n Int2X[W]) (v Int2X[W], overflow bool) {
	v.raw = i.raw.Add(n.raw)
	ineg := i.IsNegative()
	return v, ineg == n.IsNegative() && v.IsNegative() != ineg
}

// AddWrap returns i+n, wrapping on overflow like the native integer types.
func (i Int2X[W]) AddWrap(n Int2X[W]) Int2X[W] { return Int2X[W]{raw: i.raw.Add(n.raw)} }

// AddChecked returns i+n, or an *ArithmeticError wrapping ErrOverflow.
func (i Int2X[W]) AddChecked(n Int2X[W]) (Int2X[W], error) {
	v, overflow := i.AddOverflow(n)
	if overflow {
		return v, i.arithError("add", ErrOverflow)
	}
	return v, nil
}

// Add returns i+n. It panics with an *ArithmeticError if the result
// overflows; see AddWrap, AddOverflow and AddChecked for alternatives.
func (i Int2X[W]) Add(n Int2X[W]) Int2X[W] { return must[W](i.AddChecked(n)) }

// SubOverflow returns i-n and whether the true result fell outside the range
// of Int2X. The partial value is the wrapped result.
func (i Int2X[W]) SubOverflow(n Int2X[W]) (v Int2X[W], overflow bool) {
	v.raw = i.raw.Sub(n.raw)
	ineg := i.IsNegative()
	return v, ineg != n.IsNegative() && v.IsNegative() != ineg
}

// SubWrap returns i-n, wrapping on overflow like the native integer types.
func (i Int2X[W]) SubWrap(n Int2X[W]) Int2X[W] { return Int2X[W]{raw: i.raw.Sub(n.raw)} }

// SubChecked returns i-n, or an *ArithmeticError wrapping ErrOverflow.
func (i Int2X[W]) SubChecked(n Int2X[W]) (Int2X[W], error) {
	v, overflow := i.SubOverflow(n)
	if overflow {
		return v, i.arithError("sub", ErrOverflow)
	}
	return v, nil
}

// Sub returns i-n. It panics with an *ArithmeticError if the result
// overflows; see SubWrap, SubOverflow and SubChecked for alternatives.
func (i Int2X[W]) Sub(n Int2X[W]) Int2X[W] { return must[W](i.SubChecked(n)) }

// MulFull returns the double-width signed product of i and n: hi is the
// signed high half, lo the unsigned low half.
//
// The unsigned product of the bit patterns is corrected into the signed one
// by subtracting n from the high half when i is negative, and i when n is
// negative.
func (i Int2X[W]) MulFull(n Int2X[W]) (hi Int2X[W], lo U2X[W]) {
	h, lo := i.raw.MulFull(n.raw)
	if i.IsNegative() {
		h = h.Sub(n.raw)
	}
	if n.IsNegative() {
		h = h.Sub(i.raw)
	}
	return Int2X[W]{raw: h}, lo
}

// MulOverflow returns i*n and whether the true result fell outside the range
// of Int2X. The partial value is the wrapped result.
func (i Int2X[W]) MulOverflow(n Int2X[W]) (v Int2X[W], overflow bool) {
	v = i.MulWrap(n)

	hi, lo := i.Magnitude().MulFull(n.Magnitude())
	if !hi.IsZero() {
		return v, true
	}
	if i.IsNegative() != n.IsNegative() {
		return v, lo.Cmp(minRaw[W]()) > 0
	}
	return v, lo.Cmp(maxRaw[W]()) > 0
}

// MulWrap returns i*n, wrapping on overflow like the native integer types.
// The low half of a product doesn't depend on how the operands are signed, so
// this is the unsigned product of the bit patterns.
func (i Int2X[W]) MulWrap(n Int2X[W]) Int2X[W] { return Int2X[W]{raw: i.raw.Mul(n.raw)} }

// MulChecked returns i*n, or an *ArithmeticError wrapping ErrOverflow.
func (i Int2X[W]) MulChecked(n Int2X[W]) (Int2X[W], error) {
	v, overflow := i.MulOverflow(n)
	if overflow {
		return v, i.arithError("mul", ErrOverflow)
	}
	return v, nil
}

// Mul returns i*n. It panics with an *ArithmeticError if the result
// overflows; see MulWrap, MulOverflow and MulChecked for alternatives.
func (i Int2X[W]) Mul(n Int2X[W]) Int2X[W] { return must[W](i.MulChecked(n)) }

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, it
// panics with an *ArithmeticError wrapping ErrDivideByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// As with Go's native integers, MinInt2X / -1 wraps around to MinInt2X with
// a remainder of 0; QuoOverflow reports that case.
func (i Int2X[W]) QuoRem(by Int2X[W]) (q, r Int2X[W]) {
	if by.IsZero() {
		panic(i.arithError("quorem", ErrDivideByZero))
	}

	qu, ru := i.Magnitude().QuoRem(by.Magnitude())
	if i.IsNegative() != by.IsNegative() {
		qu = qu.Neg()
	}
	if i.IsNegative() {
		ru = ru.Neg()
	}
	return Int2X[W]{raw: qu}, Int2X[W]{raw: ru}
}

// Quo returns the quotient i/by for by != 0. If by == 0, it panics with an
// *ArithmeticError wrapping ErrDivideByZero. Quo implements truncated
// division (like Go); see QuoRem for more details.
func (i Int2X[W]) Quo(by Int2X[W]) (q Int2X[W]) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, it panics with
// an *ArithmeticError wrapping ErrDivideByZero. Rem implements truncated
// modulus (like Go); the result has the sign of i, or is zero.
func (i Int2X[W]) Rem(by Int2X[W]) (r Int2X[W]) {
	_, r = i.QuoRem(by)
	return r
}

// QuoOverflow returns i/by, reporting overflow for MinInt2X / -1 (where the
// quotient wraps to MinInt2X) and for by == 0 (where the partial value is i).
func (i Int2X[W]) QuoOverflow(by Int2X[W]) (v Int2X[W], overflow bool) {
	if by.IsZero() {
		return i, true
	}
	if i.isMinDivByNegOne(by) {
		return i, true
	}
	return i.Quo(by), false
}

// RemOverflow returns i%by, reporting overflow for MinInt2X % -1 (where the
// partial value is 0) and for by == 0 (where the partial value is i).
func (i Int2X[W]) RemOverflow(by Int2X[W]) (v Int2X[W], overflow bool) {
	if by.IsZero() {
		return i, true
	}
	if i.isMinDivByNegOne(by) {
		return v, true
	}
	return i.Rem(by), false
}

// QuoChecked returns i/by, or an *ArithmeticError wrapping ErrDivideByZero or
// ErrOverflow (for MinInt2X / -1).
func (i Int2X[W]) QuoChecked(by Int2X[W]) (Int2X[W], error) {
	if by.IsZero() {
		return Int2X[W]{}, i.arithError("quo", ErrDivideByZero)
	}
	if i.isMinDivByNegOne(by) {
		return i, i.arithError("quo", ErrOverflow)
	}
	return i.Quo(by), nil
}

// RemChecked returns i%by, or an *ArithmeticError wrapping ErrDivideByZero.
// MinInt2X % -1 is exactly 0, so it is not an error here.
func (i Int2X[W]) RemChecked(by Int2X[W]) (Int2X[W], error) {
	if by.IsZero() {
		return Int2X[W]{}, i.arithError("rem", ErrDivideByZero)
	}
	return i.Rem(by), nil
}

func (i Int2X[W]) isMinDivByNegOne(by Int2X[W]) bool {
	return i.raw == minRaw[W]() && by.raw == MaxU2X[W]()
}

// DivFull returns the truncated quotient and remainder of the double-width
// signed dividend (hi, lo) divided by i. hi carries the sign of the dividend.
// The remainder has the sign of the dividend, or is zero.
//
// DivFull panics with an *ArithmeticError if i == 0 or if the quotient does
// not fit in an Int2X.
func (i Int2X[W]) DivFull(hi Int2X[W], lo U2X[W]) (q, r Int2X[W]) {
	if i.IsZero() {
		panic(i.arithError("divfull", ErrDivideByZero))
	}

	neg := hi.IsNegative()
	mhi, mlo := hi.raw, lo
	if neg {
		// Negate the double-width pair: -(H·B + L) == ^H·B + -L, with a carry
		// into ^H when L == 0.
		mhi, mlo = hi.raw.Not(), lo.Neg()
		if mlo.IsZero() {
			mhi = mhi.Inc()
		}
	}

	by := i.Magnitude()
	if by.Cmp(mhi) <= 0 {
		panic(i.arithError("divfull", ErrOverflow))
	}
	qu, ru := by.DivFull(mhi, mlo)

	qneg := neg != i.IsNegative()
	limit := maxRaw[W]()
	if qneg {
		limit = minRaw[W]()
	}
	if qu.Cmp(limit) > 0 {
		panic(i.arithError("divfull", ErrOverflow))
	}

	if qneg {
		qu = qu.Neg()
	}
	if neg {
		ru = ru.Neg()
	}
	return Int2X[W]{raw: qu}, Int2X[W]{raw: ru}
}

func (i Int2X[W]) And(n Int2X[W]) Int2X[W]    { return Int2X[W]{raw: i.raw.And(n.raw)} }
func (i Int2X[W]) AndNot(n Int2X[W]) Int2X[W] { return Int2X[W]{raw: i.raw.AndNot(n.raw)} }
func (i Int2X[W]) Or(n Int2X[W]) Int2X[W]     { return Int2X[W]{raw: i.raw.Or(n.raw)} }
func (i Int2X[W]) Xor(n Int2X[W]) Int2X[W]    { return Int2X[W]{raw: i.raw.Xor(n.raw)} }
func (i Int2X[W]) Not() Int2X[W]              { return Int2X[W]{raw: i.raw.Not()} }

// Lsh returns i<<n: the magnitude is shifted and the sign re-applied. Shift
// counts >= BitWidth() produce 0.
func (i Int2X[W]) Lsh(n uint) Int2X[W] {
	mag := i.Magnitude().Lsh(n)
	if i.IsNegative() {
		mag = mag.Neg()
	}
	return Int2X[W]{raw: mag}
}

// Rsh returns i>>n, rounding towards negative infinity like Go's >> on signed
// integers. Shift counts >= BitWidth() produce 0 for non-negative i and -1
// for negative i.
func (i Int2X[W]) Rsh(n uint) Int2X[W] {
	if !i.IsNegative() {
		return Int2X[W]{raw: i.raw.Rsh(n)}
	}
	// floor(-m / 2ⁿ) == -((m-1)>>n) - 1 == ^((m-1)>>n)
	return Int2X[W]{raw: i.Magnitude().Dec().Rsh(n).Not()}
}

// LshWrap shifts i left by n modulo BitWidth(). A negative n shifts right by
// |n| instead.
func (i Int2X[W]) LshWrap(n Int2X[W]) Int2X[W] {
	count := n.maskedShift()
	if n.IsNegative() {
		return i.Rsh(count)
	}
	return i.Lsh(count)
}

// RshWrap shifts i right by n modulo BitWidth(), rounding towards negative
// infinity. A negative n shifts left by |n| instead.
func (i Int2X[W]) RshWrap(n Int2X[W]) Int2X[W] {
	count := n.maskedShift()
	if n.IsNegative() {
		return i.Lsh(count)
	}
	return i.Rsh(count)
}

// The width is a power of two, so the low word of the magnitude is enough to
// reduce the count modulo the width.
func (i Int2X[W]) maskedShift() uint {
	return uint(i.Magnitude().AsUint64() & uint64(i.BitWidth()-1))
}

// RawLsh shifts the bit pattern of i left by n, ignoring the sign.
func (i Int2X[W]) RawLsh(n uint) Int2X[W] { return Int2X[W]{raw: i.raw.Lsh(n)} }

// RawRsh shifts the bit pattern of i right by n, filling with zeros and
// ignoring the sign.
func (i Int2X[W]) RawRsh(n uint) Int2X[W] { return Int2X[W]{raw: i.raw.Rsh(n)} }

func (i Int2X[W]) LeadingZeros() uint     { return i.raw.LeadingZeros() }
func (i Int2X[W]) TrailingZeros() uint    { return i.raw.TrailingZeros() }
func (i Int2X[W]) OnesCount() uint        { return i.raw.OnesCount() }
func (i Int2X[W]) ReverseBytes() Int2X[W] { return Int2X[W]{raw: i.raw.ReverseBytes()} }
func (i Int2X[W]) Bit(n uint) uint        { return i.raw.Bit(n) }

// AsInt narrows i to an int by truncating its magnitude and re-applying the
// sign. Values outside the range of int are not detected and wrap.
func (i Int2X[W]) AsInt() int {
	a := int(i.Magnitude().AsUint64())
	if i.IsNegative() {
		return -a
	}
	return a
}

// Distance returns to - i as an int. It is only meaningful when both values
// fit in an int; see AsInt.
func (i Int2X[W]) Distance(to Int2X[W]) int { return to.AsInt() - i.AsInt() }

// Advance returns i + n. Like Add, it panics if the result overflows.
func (i Int2X[W]) Advance(n int) Int2X[W] { return i.Add(Int2XFrom[W](n)) }

func (i Int2X[W]) arithError(op string, err error) *ArithmeticError {
	return &ArithmeticError{Op: op, Type: i.typeName(), Err: err}
}

func must[W Word[W]](v Int2X[W], err error) Int2X[W] {
	if err != nil {
		panic(err)
	}
	return v
}
