package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeSeparator separates the start and end time on a time line.
const TimeSeparator = " --> "

// single instant of a block, never negative, millisecond resolution
type Time struct {
	d time.Duration
}

// largest representable Time, about 2.5 million hours
var maxTime = Time{d: time.Duration(math.MaxInt64).Truncate(time.Millisecond)}

// NewTime builds a Time from its clock fields. Fields are additive, so
// minutes or seconds above 59 simply carry into the total. Totals too
// large to represent saturate at the maximum Time.
func NewTime(hours, minutes, seconds, millis uint64) Time {
	d, ok := clockDuration(hours, minutes, seconds, millis)
	if !ok {
		return maxTime
	}
	return Time{d: d}
}

// clockDuration sums the clock fields, reporting false if the total does
// not fit in a time.Duration.
func clockDuration(hours, minutes, seconds, millis uint64) (time.Duration, bool) {
	fields := [...]struct {
		n    uint64
		unit time.Duration
	}{
		{hours, time.Hour},
		{minutes, time.Minute},
		{seconds, time.Second},
		{millis, time.Millisecond},
	}

	var total time.Duration
	for _, f := range fields {
		if f.n > uint64(math.MaxInt64/f.unit) {
			return 0, false
		}
		part := time.Duration(f.n) * f.unit
		if total > math.MaxInt64-part {
			return 0, false
		}
		total += part
	}
	return total, true
}

// TimeFromDuration converts d to a Time, clamping negative values to zero
// and truncating anything below a millisecond.
func TimeFromDuration(d time.Duration) Time {
	if d <= 0 {
		return Time{}
	}
	return Time{d: d.Truncate(time.Millisecond)}
}

// ParseTime parses "HH:MM:SS,mmm". The hour field has no fixed width.
func ParseTime(s string) (Time, error) {
	clock, millis, ok := strings.Cut(s, ",")
	if !ok {
		return Time{}, &ParseError{Kind: InvalidTimeString}
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return Time{}, &ParseError{Kind: InvalidTimeString}
	}

	var fields [4]uint64
	for i, p := range append(parts, millis) {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Time{}, &ParseError{Kind: InvalidTimeString, Err: err}
		}
		fields[i] = n
	}

	d, ok := clockDuration(fields[0], fields[1], fields[2], fields[3])
	if !ok {
		return Time{}, &ParseError{
			Kind: InvalidTimeString,
			Err:  fmt.Errorf("time %q out of range", s),
		}
	}
	return Time{d: d}, nil
}

// Duration returns t as a non-negative time.Duration.
func (t Time) Duration() time.Duration {
	return t.d
}

func (t Time) IsZero() bool {
	return t.d == 0
}

// Add returns t+u, saturating at the maximum Time.
func (t Time) Add(u Time) Time {
	if u.d > maxTime.d-t.d {
		return maxTime
	}
	return Time{d: t.d + u.d}
}

// Sub returns t-u, or zero when u is not smaller than t.
func (t Time) Sub(u Time) Time {
	if t.d <= u.d {
		return Time{}
	}
	return Time{d: t.d - u.d}
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to
// or after u.
func (t Time) Compare(u Time) int {
	switch {
	case t.d < u.d:
		return -1
	case t.d > u.d:
		return 1
	default:
		return 0
	}
}

// String renders the time as HH:MM:SS,mmm. Hours are never truncated.
func (t Time) String() string {
	ms := t.d.Milliseconds()
	millis := ms % 1000
	secs := ms / 1000
	seconds := secs % 60
	minutes := (secs / 60) % 60
	hours := secs / 3600

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// display interval of a block; start after end is allowed and kept as is
type StartEnd struct {
	Start Time
	End   Time
}

// Span pairs t with itself, which is how a scalar offset is applied to
// both ends of a range.
func Span(t Time) StartEnd {
	return StartEnd{Start: t, End: t}
}

// ParseStartEnd parses "<Time> --> <Time>".
func ParseStartEnd(s string) (StartEnd, error) {
	parts := strings.Split(s, TimeSeparator)
	if len(parts) != 2 {
		return StartEnd{}, &ParseError{Kind: InvalidTimeLine}
	}
	start, err := ParseTime(parts[0])
	if err != nil {
		return StartEnd{}, &ParseError{
			Kind: InvalidTimeLine,
			Err:  fmt.Errorf("bad start time %q", parts[0]),
		}
	}
	end, err := ParseTime(parts[1])
	if err != nil {
		return StartEnd{}, &ParseError{
			Kind: InvalidTimeLine,
			Err:  fmt.Errorf("bad end time %q", parts[1]),
		}
	}
	return StartEnd{Start: start, End: end}, nil
}

// Add adds o component-wise.
func (r StartEnd) Add(o StartEnd) StartEnd {
	return StartEnd{Start: r.Start.Add(o.Start), End: r.End.Add(o.End)}
}

// Sub subtracts o component-wise, clamping each end at zero.
func (r StartEnd) Sub(o StartEnd) StartEnd {
	return StartEnd{Start: r.Start.Sub(o.Start), End: r.End.Sub(o.End)}
}

func (r StartEnd) AddTime(t Time) StartEnd {
	return r.Add(Span(t))
}

func (r StartEnd) SubTime(t Time) StartEnd {
	return r.Sub(Span(t))
}

// AddDuration shifts both ends by d. A negative d is applied as a
// saturating subtraction.
func (r StartEnd) AddDuration(d time.Duration) StartEnd {
	if d < 0 {
		return r.SubTime(TimeFromDuration(-d))
	}
	return r.AddTime(TimeFromDuration(d))
}

func (r StartEnd) SubDuration(d time.Duration) StartEnd {
	return r.AddDuration(-d)
}

// Compare orders ranges by their start time.
func (r StartEnd) Compare(o StartEnd) int {
	return r.Start.Compare(o.Start)
}

func (r StartEnd) String() string {
	return r.Start.String() + TimeSeparator + r.End.String()
}
