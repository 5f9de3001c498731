package json

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to check for one of these; the concrete
// error returned from Parse or an accessor always wraps one of them.
var (
	// ErrType is returned when a value-level accessor is called on a Value
	// of the wrong variant.
	ErrType = errors.New("type error")
	// ErrParse is returned for any problem found while parsing JSON text.
	ErrParse = errors.New("parse error")
)

// UnexpectedCharacterError reports a byte (or decoded Unicode scalar) that
// is not valid at the parser's current position.
type UnexpectedCharacterError struct {
	Ch     rune
	Line   int
	Column int
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("%s: unexpected character %q at %d:%d", ErrParse, e.Ch, e.Line, e.Column)
}

func (e *UnexpectedCharacterError) Unwrap() error { return ErrParse }

// UnexpectedEndOfJSONError is returned when the input is exhausted in the
// middle of a token.
type UnexpectedEndOfJSONError struct{}

func (e *UnexpectedEndOfJSONError) Error() string {
	return fmt.Sprintf("%s: unexpected end of JSON", ErrParse)
}

func (e *UnexpectedEndOfJSONError) Unwrap() error { return ErrParse }

// FailedUTF8Error is returned for a malformed \u escape (lone or reversed
// surrogate) or malformed UTF-8 continuation bytes encountered while
// decoding a byte for an error message.
type FailedUTF8Error struct{}

func (e *FailedUTF8Error) Error() string {
	return fmt.Sprintf("%s: failed to parse UTF-8", ErrParse)
}

func (e *FailedUTF8Error) Unwrap() error { return ErrParse }

// ExceededDepthLimitError is returned when nested arrays/objects exceed the
// parser's maximum recursion depth.
type ExceededDepthLimitError struct {
	Limit int
}

func (e *ExceededDepthLimitError) Error() string {
	return fmt.Sprintf("%s: exceeded max nesting depth of %d", ErrParse, e.Limit)
}

func (e *ExceededDepthLimitError) Unwrap() error { return ErrParse }

// WrongTypeError is returned by a typed accessor (AsString, AsNumber, ...)
// called on a Value of a different variant.
type WrongTypeError struct {
	Expected string
	Actual   string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", ErrType, e.Expected, e.Actual)
}

func (e *WrongTypeError) Unwrap() error { return ErrType }

// ArrayIndexOutOfBoundsError is returned by a positional accessor on an
// Array whose length the index exceeds.
type ArrayIndexOutOfBoundsError struct {
	Index, Len int
}

func (e *ArrayIndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds for array of length %d", ErrType, e.Index, e.Len)
}

func (e *ArrayIndexOutOfBoundsError) Unwrap() error { return ErrType }

// UndefinedFieldError is returned by a typed getter used on an Object with
// no such key. This is distinct from the Key()/[] contract, which returns
// a Null Value instead of an error.
type UndefinedFieldError struct {
	Name string
}

func (e *UndefinedFieldError) Error() string {
	return fmt.Sprintf("%s: undefined field %q", ErrType, e.Name)
}

func (e *UndefinedFieldError) Unwrap() error { return ErrType }
