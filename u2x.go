package num

import (
	"math"
	"math/big"
)

// U2X is an unsigned integer twice as wide as W. It is a value type; all
// operations return new values.
//
// Use the width aliases rather than spelling out the nesting: U128, U256,
// U512 and U1024.
type U2X[W Word[W]] struct {
	hi, lo W
}

// U2XFromRaw is the complement to U2X.Raw(); it creates a U2X from its high
// and low halves.
func U2XFromRaw[W Word[W]](hi, lo W) U2X[W] { return U2X[W]{hi: hi, lo: lo} }

func U2XFrom64[W Word[W]](v uint64) (out U2X[W]) {
	out.lo = out.lo.FromUint64(v)
	return out
}

// U2XFromWords creates a U2X from little-endian 64-bit words. Words past the
// width of the result are discarded.
func U2XFromWords[W Word[W]](ws []uint64) (out U2X[W]) {
	return out.FromWords(ws)
}

// U2XFromBigInt creates a U2X from a big.Int. Overflow truncates to the
// maximum value and sets accurate to 'false'. Negative numbers become zero.
func U2XFromBigInt[W Word[W]](v *big.Int) (out U2X[W], accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	width := out.BitWidth()
	if uint(v.BitLen()) > width {
		return MaxU2X[W](), false
	}
	return out.FromWords(bigWords(v, width)), true
}

// U2XFromFloat64 creates a U2X from a float64. Any fractional portion will be
// truncated towards zero. Floats outside the bounds of the U2X are clamped and
// inRange is set to false.
//
// NaN is treated as 0, inRange is set to false.
func U2XFromFloat64[W Word[W]](f float64) (out U2X[W], inRange bool) {
	if f == 0 {
		return out, true
	} else if f != f { // f != f == isnan
		return out, false
	} else if f < 0 {
		return out, false
	} else if f >= math.Ldexp(1, int(out.BitWidth())) {
		return MaxU2X[W](), false
	}

	f = math.Trunc(f)
	if f < wrapUint64Float {
		return U2XFrom64[W](uint64(f)), true
	}

	ws := make([]uint64, 0, out.BitWidth()/64)
	for f > 0 {
		w := modpos(f, wrapUint64Float) // f is guaranteed to be > 0 here.
		ws = append(ws, uint64(w))
		f = (f - w) / wrapUint64Float
	}
	return out.FromWords(ws), true
}

// MaxU2X returns the largest value representable by U2X[W]. The smallest is
// the zero value.
func MaxU2X[W Word[W]]() (out U2X[W]) { return out.Not() }

func (u U2X[W]) BitWidth() uint { return u.lo.BitWidth() * 2 }
func (u U2X[W]) IsZero() bool   { return u.hi.IsZero() && u.lo.IsZero() }

// Raw returns access to the U2X as its two halves. See U2XFromRaw() for the
// counterpart.
func (u U2X[W]) Raw() (hi, lo W) { return u.hi, u.lo }

// FromUint64 ignores the receiver. It exists so U2X can itself be doubled;
// prefer U2XFrom64.
func (u U2X[W]) FromUint64(v uint64) U2X[W] { return U2XFrom64[W](v) }

// FromWords ignores the receiver. It exists so U2X can itself be doubled;
// prefer U2XFromWords.
func (u U2X[W]) FromWords(ws []uint64) (out U2X[W]) {
	n := int(out.lo.BitWidth() / 64)
	out.lo = out.lo.FromWords(ws)
	if len(ws) > n {
		out.hi = out.hi.FromWords(ws[n:])
	}
	return out
}

func (u U2X[W]) AppendWords(dst []uint64) []uint64 {
	return u.hi.AppendWords(u.lo.AppendWords(dst))
}

// Words returns the little-endian 64-bit words of u.
func (u U2X[W]) Words() []uint64 {
	return u.AppendWords(make([]uint64, 0, u.BitWidth()/64))
}

// AsUint64 truncates the U2X to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U2X[W]) AsUint64() uint64 { return u.lo.AsUint64() }

// IsUint64 reports whether u can be represented as a uint64.
func (u U2X[W]) IsUint64() bool { return u.LeadingZeros() >= u.BitWidth()-64 }

// AsInt2X performs a direct cast of a U2X to an Int2X, which will interpret it
// as a two's complement value.
func (u U2X[W]) AsInt2X() Int2X[W] { return Int2X[W]{raw: u} }

// IsInt2X reports whether u can be represented in an Int2X of the same width.
func (u U2X[W]) IsInt2X() bool { return u.hi.LeadingZeros() > 0 }

func (u U2X[W]) AsFloat64() float64 {
	if u.IsZero() {
		return 0
	}
	ws := u.Words()
	var f float64
	for i := len(ws) - 1; i >= 0; i-- {
		f = (f * wrapUint64Float) + float64(ws[i])
	}
	return f
}

// IntoBigInt copies this U2X into a big.Int, allowing you to retain and
// recycle memory.
func (u U2X[W]) IntoBigInt(b *big.Int) {
	ws := u.Words()

	switch intSize {
	case 64:
		bits := b.Bits()
		if cap(bits) < len(ws) {
			bits = make([]big.Word, len(ws))
		}
		bits = bits[:len(ws)]
		for i, w := range ws {
			bits[i] = big.Word(w)
		}
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		if cap(bits) < len(ws)*2 {
			bits = make([]big.Word, len(ws)*2)
		}
		bits = bits[:len(ws)*2]
		for i, w := range ws {
			bits[i*2] = big.Word(w & 0xFFFFFFFF)
			bits[i*2+1] = big.Word(w >> 32)
		}
		b.SetBits(bits)

	default:
		panic("num: unsupported bit size")
	}
}

// AsBigInt allocates a new big.Int and copies this U2X into it.
func (u U2X[W]) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U2X[W]) Sign() int {
	if u.IsZero() {
		return 0
	}
	return 1
}

// MagnitudeWords returns the little-endian words of u; it exists so U2X
// satisfies Integer.
func (u U2X[W]) MagnitudeWords() []uint64 { return u.Words() }

func (u U2X[W]) Inc() U2X[W] {
	v, _ := u.AddCarry(U2X[W]{}, 1)
	return v
}

func (u U2X[W]) Dec() U2X[W] {
	v, _ := u.SubBorrow(U2X[W]{}, 1)
	return v
}

func (u U2X[W]) AddCarry(n U2X[W], carry uint64) (v U2X[W], carryOut uint64) {
	v.lo, carry = u.lo.AddCarry(n.lo, carry)
	v.hi, carryOut = u.hi.AddCarry(n.hi, carry)
	return v, carryOut
}

func (u U2X[W]) SubBorrow(n U2X[W], borrow uint64) (v U2X[W], borrowOut uint64) {
	v.lo, borrow = u.lo.SubBorrow(n.lo, borrow)
	v.hi, borrowOut = u.hi.SubBorrow(n.hi, borrow)
	return v, borrowOut
}

// Add returns u+n, wrapping on overflow like the native integer types.
func (u U2X[W]) Add(n U2X[W]) U2X[W] {
	v, _ := u.AddCarry(n, 0)
	return v
}

func (u U2X[W]) AddOverflow(n U2X[W]) (v U2X[W], overflow bool) {
	v, c := u.AddCarry(n, 0)
	return v, c != 0
}

// Sub returns u-n, wrapping on underflow like the native integer types.
func (u U2X[W]) Sub(n U2X[W]) U2X[W] {
	v, _ := u.SubBorrow(n, 0)
	return v
}

func (u U2X[W]) SubOverflow(n U2X[W]) (v U2X[W], overflow bool) {
	v, b := u.SubBorrow(n, 0)
	return v, b != 0
}

// Neg returns the additive inverse of u modulo 1<<BitWidth().
func (u U2X[W]) Neg() U2X[W] {
	return U2X[W]{}.Sub(u)
}

// Mul returns the low half of u*n. Overflow wraps around, like the native
// integer types.
func (u U2X[W]) Mul(n U2X[W]) (dest U2X[W]) {
	// Adapted from Warren, Hacker's Delight, p. 132: the cross terms only
	// contribute to the high half, and only their low halves survive.
	dest.hi, dest.lo = u.lo.MulFull(n.lo)
	dest.hi, _ = dest.hi.AddCarry(u.hi.Mul(n.lo), 0)
	dest.hi, _ = dest.hi.AddCarry(u.lo.Mul(n.hi), 0)
	return dest
}

func (u U2X[W]) MulOverflow(n U2X[W]) (v U2X[W], overflow bool) {
	hi, lo := u.MulFull(n)
	return lo, !hi.IsZero()
}

// MulFull returns the double-width product of u and n as its high and low
// halves.
func (u U2X[W]) MulFull(n U2X[W]) (hi, lo U2X[W]) {
	return mulFull(u, n)
}

func (u U2X[W]) MulAdd64(m, add uint64) (v U2X[W], carry uint64) {
	v.lo, carry = u.lo.MulAdd64(m, add)
	v.hi, carry = u.hi.MulAdd64(m, carry)
	return v, carry
}

func (u U2X[W]) QuoRem64(carry, d uint64) (q U2X[W], r uint64) {
	q.hi, r = u.hi.QuoRem64(carry, d)
	q.lo, r = u.lo.QuoRem64(r, d)
	return q, r
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U2X[W]) Quo(by U2X[W]) (q U2X[W]) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
func (u U2X[W]) QuoRem(by U2X[W]) (q, r U2X[W]) {
	if by.IsZero() {
		panic(&ArithmeticError{Op: "quorem", Type: u.typeName(), Err: ErrDivideByZero})
	}

	width := u.BitWidth()
	byLeading0 := by.LeadingZeros()
	if byLeading0 >= width-64 {
		q, rem := u.QuoRem64(0, by.AsUint64())
		return q, U2XFrom64[W](rem)
	}

	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == width-1 {
		return u.Rsh(byTrailing0), u.And(by.Dec())
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		return U2XFrom64[W](1), r // dividend and divisor are the same
	}

	return quoremBin(u, by, u.LeadingZeros(), byLeading0)
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (u U2X[W]) Rem(by U2X[W]) (r U2X[W]) {
	_, r = u.QuoRem(by)
	return r
}

// DivFull returns the quotient and remainder of (hi, lo) divided by u, where
// (hi, lo) is a dividend twice as wide as u. Like bits.Div64, DivFull panics
// if u == 0 (division by zero) or u <= hi (quotient overflow).
func (u U2X[W]) DivFull(hi, lo U2X[W]) (q, r U2X[W]) {
	if u.IsZero() {
		panic(&ArithmeticError{Op: "divfull", Type: u.typeName(), Err: ErrDivideByZero})
	}
	if u.Cmp(hi) <= 0 {
		panic(&ArithmeticError{Op: "divfull", Type: u.typeName(), Err: ErrOverflow})
	}
	if hi.IsZero() {
		return lo.QuoRem(u)
	}
	if u.IsUint64() {
		// hi < u, so hi fits in the carry word:
		q, rem := lo.QuoRem64(hi.AsUint64(), u.AsUint64())
		return q, U2XFrom64[W](rem)
	}
	return divFullBin(hi, lo, u)
}

func (u U2X[W]) And(n U2X[W]) U2X[W]    { return U2X[W]{hi: u.hi.And(n.hi), lo: u.lo.And(n.lo)} }
func (u U2X[W]) AndNot(n U2X[W]) U2X[W] { return U2X[W]{hi: u.hi.And(n.hi.Not()), lo: u.lo.And(n.lo.Not())} }
func (u U2X[W]) Or(n U2X[W]) U2X[W]     { return U2X[W]{hi: u.hi.Or(n.hi), lo: u.lo.Or(n.lo)} }
func (u U2X[W]) Xor(n U2X[W]) U2X[W]    { return U2X[W]{hi: u.hi.Xor(n.hi), lo: u.lo.Xor(n.lo)} }
func (u U2X[W]) Not() U2X[W]            { return U2X[W]{hi: u.hi.Not(), lo: u.lo.Not()} }

// Lsh returns u<<n. Shift counts >= BitWidth() produce 0, like the native
// integer types.
func (u U2X[W]) Lsh(n uint) (v U2X[W]) {
	half := u.lo.BitWidth()
	if n == 0 {
		return u
	} else if n >= half*2 {
		return v
	} else if n > half {
		v.hi = u.lo.Lsh(n - half)
	} else if n < half {
		v.hi = u.hi.Lsh(n).Or(u.lo.Rsh(half - n))
		v.lo = u.lo.Lsh(n)
	} else { // n == half
		v.hi = u.lo
	}
	return v
}

// Rsh returns u>>n, filling with zeros. Shift counts >= BitWidth() produce 0,
// like the native integer types.
func (u U2X[W]) Rsh(n uint) (v U2X[W]) {
	half := u.lo.BitWidth()
	if n == 0 {
		return u
	} else if n >= half*2 {
		return v
	} else if n > half {
		v.lo = u.hi.Rsh(n - half)
	} else if n < half {
		v.lo = u.lo.Rsh(n).Or(u.hi.Lsh(half - n))
		v.hi = u.hi.Rsh(n)
	} else { // n == half
		v.lo = u.hi
	}
	return v
}

// LshWrap shifts left by n modulo BitWidth().
func (u U2X[W]) LshWrap(n uint) U2X[W] { return u.Lsh(n & (u.BitWidth() - 1)) }

// RshWrap shifts right by n modulo BitWidth().
func (u U2X[W]) RshWrap(n uint) U2X[W] { return u.Rsh(n & (u.BitWidth() - 1)) }

// Bit returns the value of the i'th bit of u.
func (u U2X[W]) Bit(i uint) uint {
	return uint(u.Rsh(i).AsUint64() & 1)
}

// Cmp compares u to n and returns:
//
//	< 0 if u <  n
//	  0 if u == n
//	> 0 if u >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (u U2X[W]) Cmp(n U2X[W]) int {
	if c := u.hi.Cmp(n.hi); c != 0 {
		return c
	}
	return u.lo.Cmp(n.lo)
}

func (u U2X[W]) Equal(n U2X[W]) bool            { return u == n }
func (u U2X[W]) GreaterThan(n U2X[W]) bool      { return u.Cmp(n) > 0 }
func (u U2X[W]) GreaterOrEqualTo(n U2X[W]) bool { return u.Cmp(n) >= 0 }
func (u U2X[W]) LessThan(n U2X[W]) bool         { return u.Cmp(n) < 0 }
func (u U2X[W]) LessOrEqualTo(n U2X[W]) bool    { return u.Cmp(n) <= 0 }

func (u U2X[W]) LeadingZeros() uint {
	if u.hi.IsZero() {
		return u.lo.LeadingZeros() + u.lo.BitWidth()
	}
	return u.hi.LeadingZeros()
}

func (u U2X[W]) TrailingZeros() uint {
	if u.lo.IsZero() {
		return u.hi.TrailingZeros() + u.lo.BitWidth()
	}
	return u.lo.TrailingZeros()
}

func (u U2X[W]) OnesCount() uint { return u.hi.OnesCount() + u.lo.OnesCount() }

// BitLen returns the number of bits required to represent u; the result is
// 0 for u == 0.
func (u U2X[W]) BitLen() uint { return u.BitWidth() - u.LeadingZeros() }

// ReverseBytes returns u with its bytes in reverse order.
func (u U2X[W]) ReverseBytes() U2X[W] {
	return U2X[W]{hi: u.lo.ReverseBytes(), lo: u.hi.ReverseBytes()}
}
