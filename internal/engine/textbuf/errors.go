package textbuf

import (
	"errors"
	"fmt"
)

// Errors returned by builder operations.
var (
	// ErrIndexOutOfRange indicates an index outside the valid buffer range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrRangeInvalid indicates an inverted span (end < start).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrNilMatcher indicates a required matcher was not supplied.
	ErrNilMatcher = errors.New("matcher is required")

	// ErrCapacityOverflow is the panic value used when a requested capacity
	// cannot be represented.
	ErrCapacityOverflow = errors.New("textbuf: capacity overflow")
)

// RangeError reports an index or span rejected before any mutation happened.
type RangeError struct {
	// Op is the operation that failed.
	Op string
	// Start is the offending index, or the start of the offending span.
	Start int
	// End is the end of the offending span, or -1 for a single index.
	End int
	// Len is the buffer length at the time of the call.
	Len int
	// Err is ErrIndexOutOfRange or ErrRangeInvalid.
	Err error
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.End < 0 {
		return fmt.Sprintf("textbuf: %s: index %d: %v (length %d)", e.Op, e.Start, e.Err, e.Len)
	}
	return fmt.Sprintf("textbuf: %s: range [%d, %d): %v (length %d)", e.Op, e.Start, e.End, e.Err, e.Len)
}

// Unwrap returns the underlying sentinel error.
func (e *RangeError) Unwrap() error {
	return e.Err
}

func indexError(op string, index, length int) error {
	return &RangeError{Op: op, Start: index, End: -1, Len: length, Err: ErrIndexOutOfRange}
}

func rangeError(op string, start, end, length int, err error) error {
	return &RangeError{Op: op, Start: start, End: end, Len: length, Err: err}
}
