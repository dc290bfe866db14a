package num

// The four widths this package provides. Each is its half-width type doubled;
// U128 is the base Uint64 doubled.
type (
	U128  = U2X[Uint64]
	U256  = U2X[U128]
	U512  = U2X[U256]
	U1024 = U2X[U512]

	I128  = Int2X[Uint64]
	I256  = Int2X[U128]
	I512  = Int2X[U256]
	I1024 = Int2X[U512]
)

var (
	MaxU128  = MaxU2X[Uint64]()
	MaxU256  = MaxU2X[U128]()
	MaxU512  = MaxU2X[U256]()
	MaxU1024 = MaxU2X[U512]()

	MaxI128  = MaxInt2X[Uint64]()
	MinI128  = MinInt2X[Uint64]()
	MaxI256  = MaxInt2X[U128]()
	MinI256  = MinInt2X[U128]()
	MaxI512  = MaxInt2X[U256]()
	MinI512  = MinInt2X[U256]()
	MaxI1024 = MaxInt2X[U512]()
	MinI1024 = MinInt2X[U512]()
)

// U128FromRaw is the complement to U128.Raw(); it creates a U128 from two
// uint64s representing the hi and lo bits.
func U128FromRaw(hi, lo uint64) U128 { return U2XFromRaw(Uint64(hi), Uint64(lo)) }

// I128FromRaw creates an I128 from two uint64s representing the hi and lo bits
// of its two's complement bit pattern.
func I128FromRaw(hi, lo uint64) I128 { return Int2XFromRaw(U128FromRaw(hi, lo)) }

func U128From64(v uint64) U128 { return U2XFrom64[Uint64](v) }
func I128From64(v int64) I128  { return Int2XFrom[Uint64](v) }
func I128FromU64(v uint64) I128 { return Int2XFrom[Uint64](v) }
func I128FromInt(v int) I128    { return Int2XFrom[Uint64](v) }

func ParseU128(s string, base int) (U128, error) { return ParseU2X[Uint64](s, base) }
func ParseI128(s string, base int) (I128, error) { return ParseInt2X[Uint64](s, base) }

func U256From64(v uint64) U256 { return U2XFrom64[U128](v) }
func I256From64(v int64) I256  { return Int2XFrom[U128](v) }
func I256FromU64(v uint64) I256 { return Int2XFrom[U128](v) }
func I256FromInt(v int) I256    { return Int2XFrom[U128](v) }

func ParseU256(s string, base int) (U256, error) { return ParseU2X[U128](s, base) }
func ParseI256(s string, base int) (I256, error) { return ParseInt2X[U128](s, base) }

func U512From64(v uint64) U512 { return U2XFrom64[U256](v) }
func I512From64(v int64) I512  { return Int2XFrom[U256](v) }
func I512FromU64(v uint64) I512 { return Int2XFrom[U256](v) }
func I512FromInt(v int) I512    { return Int2XFrom[U256](v) }

func ParseU512(s string, base int) (U512, error) { return ParseU2X[U256](s, base) }
func ParseI512(s string, base int) (I512, error) { return ParseInt2X[U256](s, base) }

func U1024From64(v uint64) U1024 { return U2XFrom64[U512](v) }
func I1024From64(v int64) I1024  { return Int2XFrom[U512](v) }
func I1024FromU64(v uint64) I1024 { return Int2XFrom[U512](v) }
func I1024FromInt(v int) I1024    { return Int2XFrom[U512](v) }

func ParseU1024(s string, base int) (U1024, error) { return ParseU2X[U512](s, base) }
func ParseI1024(s string, base int) (I1024, error) { return ParseInt2X[U512](s, base) }
