package subtitle

import (
	"fmt"
)

// structural failure kinds reported by the decoder
type ErrorKind int

const (
	// a single time token does not match HH:MM:SS,mmm
	InvalidTimeString ErrorKind = iota + 1
	// a time line does not hold two valid times around " --> "
	InvalidTimeLine
	// the index line is not a non-negative integer
	InvalidIndex
	// the line source failed to deliver a line
	InvalidContent
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidTimeString:
		return "Invalid time"
	case InvalidTimeLine:
		return "Invalid time line"
	case InvalidIndex:
		return "Invalid index"
	case InvalidContent:
		return "Invalid content"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error lets a kind be used as an errors.Is target.
func (k ErrorKind) Error() string {
	return k.String()
}

// ParseError is a decode failure tagged with the line it happened on.
// Line is zero when the error did not come from a decoder.
type ParseError struct {
	Kind ErrorKind
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}
