package num

import (
	"github.com/pkg/errors"
)

var (
	ErrOverflow     = errors.New("integer overflow")
	ErrDivideByZero = errors.New("integer divide by zero")
	ErrSyntax       = errors.New("invalid syntax")
	ErrRange        = errors.New("value out of range")
	ErrBase         = errors.New("invalid base")
)

// ArithmeticError is returned by the Checked arithmetic methods, and is the
// value the trapping methods (Add, Sub, Mul, Quo, ...) panic with.
type ArithmeticError struct {
	Op   string // "add", "sub", "mul", "quo", ...
	Type string // "i128", "u256", ...
	Err  error  // ErrOverflow or ErrDivideByZero
}

func (e *ArithmeticError) Error() string {
	return "num: " + e.Type + " " + e.Op + ": " + e.Err.Error()
}

func (e *ArithmeticError) Unwrap() error { return e.Err }

func syntaxError(typ, s string) error {
	return errors.Wrapf(ErrSyntax, "num: %s string %q invalid", typ, s)
}

func rangeError(typ, s string) error {
	return errors.Wrapf(ErrRange, "num: %s string %q out of range", typ, s)
}

func baseError(typ string, base int) error {
	return errors.Wrapf(ErrBase, "num: %s base %d must be in [2, 36]", typ, base)
}
