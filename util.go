package num

type RandSource interface {
	Uint64() uint64
}

// RandU2X generates an unsigned random integer from an external source,
// filling every bit.
func RandU2X[W Word[W]](source RandSource) (out U2X[W]) {
	ws := make([]uint64, out.BitWidth()/64)
	for i := range ws {
		ws[i] = source.Uint64()
	}
	return out.FromWords(ws)
}

// DifferenceU2X subtracts the smaller of a and b from the larger.
func DifferenceU2X[W Word[W]](a, b U2X[W]) U2X[W] {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

// DifferenceInt2X returns |a - b|. The result is unsigned because the
// distance between two Int2X values can exceed MaxInt2X.
func DifferenceInt2X[W Word[W]](a, b Int2X[W]) U2X[W] {
	if a.LessThan(b) {
		return b.raw.Sub(a.raw)
	}
	return a.raw.Sub(b.raw)
}

func LargerInt2X[W Word[W]](a, b Int2X[W]) Int2X[W] {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerInt2X[W Word[W]](a, b Int2X[W]) Int2X[W] {
	if b.LessThan(a) {
		return b
	}
	return a
}
