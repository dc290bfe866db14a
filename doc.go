/*
Package num provides fixed-width signed integers of 128, 256, 512 and 1024
bits (I128, I256, I512, I1024) and the unsigned integers they are built on
(U128, U256, U512, U1024).

Every width is made by doubling a narrower one. Uint64 is the base Word; U2X[W]
pairs two Ws into an unsigned integer twice as wide, and is itself a Word, so
it can be doubled again. Int2X[W] is a two's complement signed integer over the
bit pattern of a U2X[W].

All types are value types; all operations return new values.

Simple example:

	a := I128From64(math.MinInt64)
	b := I128From64(math.MaxInt64)
	fmt.Println(a.Mul(b))
	// Output: -85070591730234615856620279821087277056

Signed arithmetic comes in four flavours, following the way overflow is
handled:

	AddWrap(n)      wraps around, like the native integer types
	AddOverflow(n)  returns the wrapped value and whether it overflowed
	AddChecked(n)   returns an *ArithmeticError wrapping ErrOverflow
	Add(n)          panics with that *ArithmeticError

Values can be converted between widths with Int2XExactly, Int2XTruncating,
Int2XClamping and Int2XConvert:

	small, ok := Int2XExactly[Uint64](I256From64(-5)) // an I128

Both the signed and unsigned types support the following formatting and
marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - fmt.GoStringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package num
