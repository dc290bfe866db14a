package num

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// AppendBytes appends the little-endian bytes of u to dst.
func (u U2X[W]) AppendBytes(dst []byte) []byte {
	for _, w := range u.Words() {
		dst = binary.LittleEndian.AppendUint64(dst, w)
	}
	return dst
}

// Hash returns a 64-bit hash of the bit pattern of u. Equal values always
// hash equally.
func (u U2X[W]) Hash() uint64 {
	var scratch [128]byte
	return xxhash.Sum64(u.AppendBytes(scratch[:0]))
}

// AppendBytes appends the little-endian bytes of the two's complement bit
// pattern of i to dst.
func (i Int2X[W]) AppendBytes(dst []byte) []byte { return i.raw.AppendBytes(dst) }

// Hash returns a 64-bit hash of the bit pattern of i. It is the same as the
// hash of i.AsU2X().
func (i Int2X[W]) Hash() uint64 { return i.raw.Hash() }
