package num

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	minInt64Float = float64(minInt64) // -(1<<63)

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	intSize = 32 << (^uint(0) >> 63)
)
