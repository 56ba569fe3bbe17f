package vm

import "fmt"

// Error defines a program decoding error.
type Error struct {
	Offset int // Byte offset at which decoding failed.
	Msg    string
}

// NewError creates a new, formatted error message for the given offset.
func NewError(offset int, f string, argv ...interface{}) *Error {
	return &Error{
		Offset: offset,
		Msg:    fmt.Sprintf(f, argv...),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%04x: %s", e.Offset, e.Msg)
}
