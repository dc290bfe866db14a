package num

import "math/bits"

// Word is the set of operations a fixed-width unsigned integer must provide to
// be doubled into a U2X. U2X[W] satisfies Word[U2X[W]] itself, which is how
// U256, U512 and U1024 are built out of U128.
//
// Methods documented as ignoring the receiver are constructors; call them on
// the zero value:
//
//	var w W
//	one := w.FromUint64(1)
type Word[W any] interface {
	comparable

	BitWidth() uint
	IsZero() bool

	// FromUint64 ignores the receiver and returns v as a W.
	FromUint64(v uint64) W

	// FromWords ignores the receiver and builds a W from little-endian 64-bit
	// words. Missing words are zero, extra words are discarded.
	FromWords(ws []uint64) W

	AppendWords(dst []uint64) []uint64
	AsUint64() uint64

	AddCarry(n W, carry uint64) (sum W, carryOut uint64)
	SubBorrow(n W, borrow uint64) (diff W, borrowOut uint64)
	Mul(n W) W
	MulFull(n W) (hi, lo W)

	// MulAdd64 returns the low BitWidth() bits of w*m + add and the 64-bit
	// carry out of the top.
	MulAdd64(m, add uint64) (lo W, carry uint64)

	// QuoRem64 divides (carry<<BitWidth() + w) by d. carry must be < d.
	QuoRem64(carry, d uint64) (q W, r uint64)

	And(n W) W
	Or(n W) W
	Xor(n W) W
	Not() W
	Lsh(n uint) W
	Rsh(n uint) W

	Cmp(n W) int
	LeadingZeros() uint
	TrailingZeros() uint
	OnesCount() uint
	ReverseBytes() W
}

// Uint64 is the base Word from which every wider type is built.
type Uint64 uint64

var _ = checkWord[Uint64]

// checkWord fails to instantiate unless W satisfies Word[W].
func checkWord[W Word[W]]() {}

func (w Uint64) BitWidth() uint                    { return 64 }
func (w Uint64) IsZero() bool                      { return w == 0 }
func (w Uint64) FromUint64(v uint64) Uint64        { return Uint64(v) }
func (w Uint64) AsUint64() uint64                  { return uint64(w) }
func (w Uint64) AppendWords(dst []uint64) []uint64 { return append(dst, uint64(w)) }

func (w Uint64) FromWords(ws []uint64) Uint64 {
	if len(ws) == 0 {
		return 0
	}
	return Uint64(ws[0])
}

func (w Uint64) AddCarry(n Uint64, carry uint64) (Uint64, uint64) {
	s, c := bits.Add64(uint64(w), uint64(n), carry)
	return Uint64(s), c
}

func (w Uint64) SubBorrow(n Uint64, borrow uint64) (Uint64, uint64) {
	d, b := bits.Sub64(uint64(w), uint64(n), borrow)
	return Uint64(d), b
}

func (w Uint64) Mul(n Uint64) Uint64 { return w * n }

func (w Uint64) MulFull(n Uint64) (hi, lo Uint64) {
	h, l := bits.Mul64(uint64(w), uint64(n))
	return Uint64(h), Uint64(l)
}

func (w Uint64) MulAdd64(m, add uint64) (Uint64, uint64) {
	hi, lo := bits.Mul64(uint64(w), m)
	lo, c := bits.Add64(lo, add, 0)
	return Uint64(lo), hi + c
}

func (w Uint64) QuoRem64(carry, d uint64) (Uint64, uint64) {
	q, r := bits.Div64(carry, uint64(w), d)
	return Uint64(q), r
}

func (w Uint64) And(n Uint64) Uint64 { return w & n }
func (w Uint64) Or(n Uint64) Uint64  { return w | n }
func (w Uint64) Xor(n Uint64) Uint64 { return w ^ n }
func (w Uint64) Not() Uint64         { return ^w }

// Lsh and Rsh give 0 for shift counts >= 64, like the native shift operators.
func (w Uint64) Lsh(n uint) Uint64 { return w << n }
func (w Uint64) Rsh(n uint) Uint64 { return w >> n }

func (w Uint64) Cmp(n Uint64) int {
	if w > n {
		return 1
	} else if w < n {
		return -1
	}
	return 0
}

func (w Uint64) LeadingZeros() uint   { return uint(bits.LeadingZeros64(uint64(w))) }
func (w Uint64) TrailingZeros() uint  { return uint(bits.TrailingZeros64(uint64(w))) }
func (w Uint64) OnesCount() uint      { return uint(bits.OnesCount64(uint64(w))) }
func (w Uint64) ReverseBytes() Uint64 { return Uint64(bits.ReverseBytes64(uint64(w))) }
