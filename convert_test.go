package num

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"github.com/stretchr/testify/require"
)

func TestInt2XExactly(t *testing.T) {
	for idx, tc := range []struct {
		src Integer
		out I128
		ok  bool
	}{
		{I256From64(-5), i64(-5), true},
		{I256{}, I128{}, true},
		{i256s("-0x80000000000000000000000000000000"), MinI128, true},
		{i256s("0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"), MaxI128, true},
		{i256s("0x80000000000000000000000000000000"), I128{}, false},
		{i256s("-0x80000000000000000000000000000001"), I128{}, false},
		{MinI256, I128{}, false},
		{MaxU128, I128{}, false},
		{MaxU128.Rsh(1), MaxI128, true},
		{MinI128, MinI128, true},
		{MaxI128, MaxI128, true},
		{U1024From64(7), i64(7), true},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.src), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, ok := Int2XExactly[Uint64](tc.src)
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestInt2XExactlyWidens(t *testing.T) {
	tt := assert.WrapTB(t)

	wide, ok := Int2XExactly[U512](MinI128)
	tt.MustAssert(ok)
	tt.MustEqual(MinI128.String(), wide.String())

	wide, ok = Int2XExactly[U512](MaxU512)
	tt.MustAssert(ok)
	tt.MustEqual(MaxU512.String(), wide.String())
}

func TestInt2XTruncating(t *testing.T) {
	for idx, tc := range []struct {
		src Integer
		out I128
	}{
		{I256From64(-5), i64(-5)},
		{i256s("-0x1 00000000000000000000000000000005"), i64(-5)},
		{i256s("0x1 00000000000000000000000000000005"), i64(5)},

		// The magnitude is kept, so 2^127 comes back as the bit pattern of
		// MinI128:
		{i256s("0x80000000000000000000000000000000"), MinI128},
		{MaxU128, i64(-1)},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.src), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, Int2XTruncating[Uint64](tc.src))
		})
	}
}

func TestInt2XClamping(t *testing.T) {
	for idx, tc := range []struct {
		src Integer
		out I128
	}{
		{I256From64(-5), i64(-5)},
		{MaxI256, MaxI128},
		{MinI128, MinI128},

		// Too-negative sources clamp to the maximum too:
		{MinI256, MaxI128},
		{i256s("-0x80000000000000000000000000000001"), MaxI128},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.src), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, Int2XClamping[Uint64](tc.src))
		})
	}
}

func TestInt2XConvert(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(i64(-5), Int2XConvert[Uint64](I512From64(-5)))

	require.PanicsWithError(t, "num: i128 convert: integer overflow", func() {
		Int2XConvert[Uint64](MaxI256)
	})
}

func TestU2XExactly(t *testing.T) {
	for idx, tc := range []struct {
		src Integer
		out U128
		ok  bool
	}{
		{I256From64(5), u64(5), true},
		{i64(-1), U128{}, false},
		{i256s("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"), MaxU128, true},
		{i256s("0x1 00000000000000000000000000000000"), U128{}, false},
		{MaxU256, U128{}, false},
		{MinI128, U128{}, false},
		{MaxI128, MaxI128.AsU2X(), true},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.src), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, ok := U2XExactly[Uint64](tc.src)
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestU2XTruncating(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(MaxU128, U2XTruncating[Uint64](i64(-1)))
	tt.MustEqual(MaxU128, U2XTruncating[Uint64](I1024FromInt(-1)))
	tt.MustEqual(u64(5), U2XTruncating[Uint64](u256s("0x1 00000000000000000000000000000005")))
}

func TestInt2XFromFloat64Exactly(t *testing.T) {
	for idx, tc := range []struct {
		f   float64
		out I128
		ok  bool
	}{
		{0, i64(0), true},
		{-3, i64(-3), true},
		{1.5, I128{}, false},
		{-0.5, I128{}, false},
		{math.NaN(), I128{}, false},
		{math.Inf(1), I128{}, false},
		{math.Inf(-1), I128{}, false},
		{-9223372036854775808, i64(minInt64), true},
		{9223372036854775808, I128{}, false}, // outside int64
		{1e30, I128{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%g", idx, tc.f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, ok := Int2XFromFloat64Exactly[Uint64](tc.f)
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestInt2XFromFloat64(t *testing.T) {
	for idx, tc := range []struct {
		f   float64
		out I256
	}{
		{0, I256{}},
		{-2.7, I256From64(-2)},
		{2.7, I256From64(2)},
		{math.NaN(), I256{}},
		{1e30, I256From64(maxInt64)},
		{-1e30, I256From64(minInt64)},
		{math.Inf(1), I256From64(maxInt64)},
		{math.Inf(-1), I256From64(minInt64)},
	} {
		t.Run(fmt.Sprintf("%d/%g", idx, tc.f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, Int2XFromFloat64[U128](tc.f))
		})
	}
}

func TestInt2XFromFloat32(t *testing.T) {
	tt := assert.WrapTB(t)

	v, ok := Int2XFromFloat32Exactly[Uint64](float32(16777216))
	tt.MustAssert(ok)
	tt.MustEqual(i64(16777216), v)

	_, ok = Int2XFromFloat32Exactly[Uint64](float32(0.25))
	tt.MustAssert(!ok)

	tt.MustEqual(i64(-1), Int2XFromFloat32[Uint64](float32(-1.5)))
}
