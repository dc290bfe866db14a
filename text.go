package num

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// chunkDigits[base] is the number of base-digits that always fit in a uint64,
// and chunkPow[base] is base to that power. Formatting and parsing work a
// chunk at a time rather than a digit at a time.
var (
	chunkDigits [37]int
	chunkPow    [37]uint64
)

func init() {
	for base := 2; base <= 36; base++ {
		pow, n := uint64(base), 1
		for pow <= maxUint64/uint64(base) {
			pow *= uint64(base)
			n++
		}
		chunkDigits[base], chunkPow[base] = n, pow
	}
}

func (u U2X[W]) typeName() string   { return "u" + strconv.Itoa(int(u.BitWidth())) }
func (i Int2X[W]) typeName() string { return "i" + strconv.Itoa(int(i.BitWidth())) }

// Text returns the representation of u in the given base, which must be
// between 2 and 36 inclusive. Digits above 9 are lowercase unless upper is
// set.
func (u U2X[W]) Text(base int, upper bool) string {
	if base < 2 || base > 36 {
		panic(baseError(u.typeName(), base))
	}
	if u.IsUint64() {
		return caseDigits(strconv.FormatUint(u.AsUint64(), base), upper)
	}

	var chunks []string
	pow, width := chunkPow[base], chunkDigits[base]
	for !u.IsZero() {
		var r uint64
		u, r = u.QuoRem64(0, pow)
		chunks = append(chunks, strconv.FormatUint(r, base))
	}

	var sb strings.Builder
	sb.Grow(len(chunks) * width)
	for i := len(chunks) - 1; i >= 0; i-- {
		if i != len(chunks)-1 {
			for pad := width - len(chunks[i]); pad > 0; pad-- {
				sb.WriteByte('0')
			}
		}
		sb.WriteString(chunks[i])
	}
	return caseDigits(sb.String(), upper)
}

func caseDigits(s string, upper bool) string {
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

func (u U2X[W]) String() string { return u.Text(10, false) }

// GoString returns u in hex with a 0x prefix.
func (u U2X[W]) GoString() string { return "0x" + u.Text(16, false) }

func (u U2X[W]) Format(s fmt.State, c rune) {
	if c == 'v' && s.Flag('#') {
		io.WriteString(s, u.GoString())
		return
	}
	formatInt(s, c, false, u)
}

// ParseU2X parses a string of digits in the given base, which must be between
// 2 and 36 inclusive. Signs, prefixes and underscores are not accepted. Values
// that do not fit return an error wrapping ErrRange.
func ParseU2X[W Word[W]](s string, base int) (out U2X[W], err error) {
	if base < 2 || base > 36 {
		return out, baseError(out.typeName(), base)
	}
	if len(s) == 0 {
		return out, syntaxError(out.typeName(), s)
	}

	pow, width := chunkPow[base], chunkDigits[base]
	for start := 0; start < len(s); start += width {
		end := start + width
		mul := pow
		if end > len(s) {
			end = len(s)
			mul = 1
			for n := end - start; n > 0; n-- {
				mul *= uint64(base)
			}
		}

		var chunk uint64
		for _, c := range []byte(s[start:end]) {
			d := digitVal(c)
			if d >= base {
				return U2X[W]{}, syntaxError(out.typeName(), s)
			}
			chunk = chunk*uint64(base) + uint64(d)
		}

		var carry uint64
		out, carry = out.MulAdd64(mul, chunk)
		if carry != 0 {
			return U2X[W]{}, rangeError(out.typeName(), s)
		}
	}
	return out, nil
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// Text returns the representation of i in the given base, which must be
// between 2 and 36 inclusive: a '-' for negative numbers followed by the
// digits of the magnitude.
func (i Int2X[W]) Text(base int, upper bool) string {
	if base < 2 || base > 36 {
		panic(baseError(i.typeName(), base))
	}
	if i.IsNegative() {
		return "-" + i.Magnitude().Text(base, upper)
	}
	return i.raw.Text(base, upper)
}

func (i Int2X[W]) String() string { return i.Text(10, false) }

// GoString returns the debug form of i: an explicit sign followed by the
// magnitude in hex, i.e. "+0x1f" or "-0x80".
func (i Int2X[W]) GoString() string {
	if i.IsNegative() {
		return "-0x" + i.Magnitude().Text(16, false)
	}
	return "+0x" + i.raw.Text(16, false)
}

func (i Int2X[W]) Format(s fmt.State, c rune) {
	if c == 'v' && s.Flag('#') {
		io.WriteString(s, i.GoString())
		return
	}
	formatInt(s, c, i.IsNegative(), i.Magnitude())
}

// ParseInt2X parses an optional '+' or '-' followed by digits in the given
// base, which must be between 2 and 36 inclusive. Values outside the range of
// Int2X return an error wrapping ErrRange.
func ParseInt2X[W Word[W]](s string, base int) (out Int2X[W], err error) {
	digits := s
	neg := false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}

	mag, err := ParseU2X[W](digits, base)
	if err != nil {
		switch {
		case errors.Is(err, ErrRange):
			return out, rangeError(out.typeName(), s)
		case errors.Is(err, ErrBase):
			return out, baseError(out.typeName(), base)
		default:
			return out, syntaxError(out.typeName(), s)
		}
	}

	limit := maxRaw[W]()
	if neg {
		limit = minRaw[W]()
	}
	if mag.Cmp(limit) > 0 {
		return out, rangeError(out.typeName(), s)
	}

	out.raw = mag
	if neg {
		out.raw = mag.Neg()
	}
	return out, nil
}

// Int2XFromString parses a base 10 string the way an integer literal would be
// written. Malformed or out of range input produces 0; use ParseInt2X if you
// need to know why.
func Int2XFromString[W Word[W]](s string) Int2X[W] {
	out, err := ParseInt2X[W](s, 10)
	if err != nil {
		return Int2X[W]{}
	}
	return out
}

func (i Int2X[W]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int2X[W]) UnmarshalText(bts []byte) (err error) {
	v, err := ParseInt2X[W](string(bts), 10)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int2X[W]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int2X[W]) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(i.typeName(), bts)
	if err != nil {
		return err
	}
	return i.UnmarshalText(bts)
}

func (u U2X[W]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U2X[W]) UnmarshalText(bts []byte) (err error) {
	v, err := ParseU2X[W](string(bts), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U2X[W]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U2X[W]) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(u.typeName(), bts)
	if err != nil {
		return err
	}
	return u.UnmarshalText(bts)
}

func unquoteJSON(typ string, bts []byte) ([]byte, error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, errors.Wrapf(ErrSyntax, "num: %s JSON %q invalid", typ, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}

// formatInt implements fmt.Formatter for both signed and unsigned types.
// Supported verbs are 'v', 's', 'd', 'b', 'o', 'O', 'x', 'X' and 'q', with
// the '+', ' ', '#', '-' and '0' flags, a width and a precision. As with
// big.Int, the precision is the minimum number of digits, and a zero value
// with a precision of 0 prints no digits.
func formatInt[W Word[W]](s fmt.State, c rune, neg bool, mag U2X[W]) {
	base, prefix, upper := 10, "", false
	switch c {
	case 'v', 's', 'd', 'q':
	case 'b':
		base, prefix = 2, "0b"
	case 'o':
		base, prefix = 8, "0"
	case 'O':
		base, prefix = 8, "0o"
	case 'x':
		base, prefix = 16, "0x"
	case 'X':
		base, prefix, upper = 16, "0X", true
	default:
		str := mag.String()
		if neg {
			str = "-" + str
		}
		fmt.Fprintf(s, "%%!%c(num=%s)", c, str)
		return
	}
	if c != 'O' && !s.Flag('#') {
		prefix = ""
	}

	var sign string
	if neg {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}

	digits := mag.Text(base, upper)
	prec, hasPrec := s.Precision()
	if hasPrec {
		if prec == 0 && mag.IsZero() {
			digits = ""
		} else if len(digits) < prec {
			digits = strings.Repeat("0", prec-len(digits)) + digits
		}
	}
	if c == 'q' {
		digits = strconv.Quote(sign + digits)
		sign = ""
	}

	body := sign + prefix + digits
	if w, ok := s.Width(); ok && len(body) < w {
		pad := w - len(body)
		switch {
		case s.Flag('-'):
			body += strings.Repeat(" ", pad)
		case s.Flag('0') && c != 'q' && !hasPrec:
			body = sign + prefix + strings.Repeat("0", pad) + digits
		default:
			body = strings.Repeat(" ", pad) + body
		}
	}
	io.WriteString(s, body)
}
