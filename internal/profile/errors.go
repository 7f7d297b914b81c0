package profile

import (
	"errors"
	"fmt"
)

var (
	ErrMissing       = errors.New("missing attribute")
	ErrOutOfRange    = errors.New("value out of range")
	ErrUnknownOption = errors.New("unknown option")
	ErrUnknownField  = errors.New("unknown field")
	ErrNotNumeric    = errors.New("not a number")
	ErrOffStep       = errors.New("value not on the field's step")
)

// FieldError reports a problem with a single profile attribute.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string {
	if f, ok := Lookup(e.Key); ok {
		return fmt.Sprintf("%s (%s): %v", f.Label, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
