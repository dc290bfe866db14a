package num

import (
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestMulFullAgainstBig(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 20000; i++ {
		u1, u2 := RandU2X[U128](globalRNG), RandU2X[U128](globalRNG)
		if i%2 == 1 {
			u2 = u2.Rsh(uint(globalRNG.Intn(256)))
		}
		hi, lo := mulFull(u1, u2)

		rb := new(big.Int).Mul(u1.AsBigInt(), u2.AsBigInt())
		rc := new(big.Int).Lsh(hi.AsBigInt(), 256)
		rc.Add(rc, lo.AsBigInt())
		tt.MustEqual(rb.String(), rc.String(), "failed at index %d", i)
	}
}

func TestDivFullBinAgainstBig(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 5000; i++ {
		by := RandU2X[Uint64](globalRNG).Or(U128FromRaw(1, 0))
		hi := RandU2X[Uint64](globalRNG).Rem(by)
		lo := RandU2X[Uint64](globalRNG)

		q, r := divFullBin(hi, lo, by)

		num := new(big.Int).Lsh(hi.AsBigInt(), 128)
		num.Add(num, lo.AsBigInt())
		bq, br := new(big.Int).QuoRem(num, by.AsBigInt(), new(big.Int))
		tt.MustEqual(bq.String(), q.String(), "failed at index %d", i)
		tt.MustEqual(br.String(), r.String(), "failed at index %d", i)
	}
}

func TestBigWords(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual([]uint64{2, 1, 0, 0}, bigWords(bigs("0x1 0000000000000002"), 256))
	tt.MustEqual([]uint64{2, 1}, bigWords(bigs("-0x1 0000000000000002"), 128))
}

func TestModpos(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(float64(5), modpos(5, wrapUint64Float))
	tt.MustEqual(float64(0), modpos(wrapUint64Float*3, wrapUint64Float))
	tt.MustEqual(float64(1<<60), modpos(wrapUint64Float*7+(1<<60), wrapUint64Float))
}

var BenchU256Lo, BenchU256Hi U256

func BenchmarkMulFull256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Hi, BenchU256Lo = mulFull(BenchU256In1, BenchU256In2)
	}
}
