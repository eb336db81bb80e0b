package parser

import (
	"errors"
	"fmt"
)

// ErrNoData reports a parse call with no input source: the parser was
// constructed without a file path and Parse received no inline data.
var ErrNoData = errors.New("no data available")

// ErrInvalidJSON reports input that is not syntactically valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON data")

// MissingFieldError reports a required key absent from an object at any
// nesting level. Enclosing story and comment positions are added by
// wrapping, so a caller sees e.g.
// `stories[2]: comments[0]: missing required field "text"`.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// InvalidFieldError reports a field whose value has the wrong JSON shape,
// such as a stories key holding anything but an array.
type InvalidFieldError struct {
	Field string
	Want  string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("field %q is not %s", e.Field, e.Want)
}
