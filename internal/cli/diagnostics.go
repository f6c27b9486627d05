package cli

import (
	"errors"
	"fmt"

	"github.com/mgpai22/srttool/internal/subtitle"
)

// describeError renders a per-input failure. Parse errors get the file
// and line they were found on plus a hint for each kind.
func describeError(name string, err error) string {
	var perr *subtitle.ParseError
	if !errors.As(err, &perr) {
		return fmt.Sprintf("%s: %v", name, err)
	}

	var hint string
	switch perr.Kind {
	case subtitle.InvalidIndex:
		hint = "expected a block number or a blank line"
	case subtitle.InvalidTimeString:
		hint = "block number is not followed by a time line"
	case subtitle.InvalidTimeLine:
		hint = `time line must look like "00:00:01,000 --> 00:00:02,500"`
	case subtitle.InvalidContent:
		hint = "text could not be read; try --encoding"
	default:
		hint = "unrecognised error"
	}

	msg := fmt.Sprintf("%s:%d: %s (%s)", name, perr.Line, perr.Kind, hint)
	if perr.Err != nil {
		msg += ": " + perr.Err.Error()
	}
	return msg
}
