package num

import (
	"encoding/binary"
	"math/big"
)

// mulFull is schoolbook multiplication on halves:
//
//	(a1·B + a0)(b1·B + b0) = a1b1·B² + (a1b0 + a0b1)·B + a0b0
//
// where B is 1<<W.BitWidth(). The result is returned as four W-sized limbs
// packed into two U2X values.
func mulFull[W Word[W]](u, n U2X[W]) (hi, lo U2X[W]) {
	var zero W

	llh, lll := u.lo.MulFull(n.lo)
	lhh, lhl := u.lo.MulFull(n.hi)
	hlh, hll := u.hi.MulFull(n.lo)
	hhh, hhl := u.hi.MulFull(n.hi)

	lo.lo = lll

	var c1, c2, c uint64
	lo.hi, c = llh.AddCarry(lhl, 0)
	c1 += c
	lo.hi, c = lo.hi.AddCarry(hll, 0)
	c1 += c

	hi.lo, c = hhl.AddCarry(lhh, 0)
	c2 += c
	hi.lo, c = hi.lo.AddCarry(hlh, 0)
	c2 += c
	hi.lo, c = hi.lo.AddCarry(zero.FromUint64(c1), 0)
	c2 += c

	// The full product always fits in four limbs, so this can't carry out:
	hi.hi, _ = hhh.AddCarry(zero.FromUint64(c2), 0)

	return hi, lo
}

func quoremBin[W Word[W]](u, by U2X[W], uLeading0, byLeading0 uint) (q, r U2X[W]) {
	one := U2XFrom64[W](1)
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		if u.Cmp(by) >= 0 {
			u = u.Sub(by)
			q = q.Or(one)
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	r = u
	return q, r
}

// divFullBin is restoring binary long division of the double-width value
// (hi, lo) by "by". The caller guarantees hi < by, so the remainder always
// fits and the quotient fits in a single U2X.
func divFullBin[W Word[W]](hi, lo, by U2X[W]) (q, r U2X[W]) {
	one := U2X[W]{}.FromUint64(1)
	r = hi

	for i := lo.BitWidth(); i > 0; i-- {
		// {{{ shift the next dividend bit from lo into r
		carry := r.LeadingZeros() == 0
		r = r.Lsh(1)
		if lo.LeadingZeros() == 0 {
			r = r.Or(one)
		}
		lo = lo.Lsh(1)
		// }}}

		q = q.Lsh(1)

		// If a bit fell off the top of r, the true value is >= 1<<BitWidth(),
		// which is > by; the wrapped subtraction below is still exact.
		if carry || r.Cmp(by) >= 0 {
			r = r.Sub(by)
			q = q.Or(one)
		}
	}

	return q, r
}

// bigWords returns the magnitude of v as little-endian 64-bit words, padded
// to width bits. The caller guarantees v fits.
func bigWords(v *big.Int, width uint) []uint64 {
	buf := make([]byte, width/8)
	new(big.Int).Abs(v).FillBytes(buf)

	ws := make([]uint64, width/64)
	for i := range ws {
		end := len(buf) - i*8
		ws[i] = binary.BigEndian.Uint64(buf[end-8 : end])
	}
	return ws
}
