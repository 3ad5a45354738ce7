package oerror

import "fmt"

// Error is the error type returned by the parkour packages for failures that are not caused by an
// underlying I/O or decode error.
type Error struct {
	Err string
}

// New returns a new Error with a message formatted from the arguments passed.
func New(format string, args ...any) *Error {
	if len(args) == 0 {
		return &Error{Err: format}
	}
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
