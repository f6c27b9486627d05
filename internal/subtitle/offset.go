package subtitle

import (
	"fmt"
	"strings"
	"time"
)

// signed shift applied to every block range
type Offset struct {
	Amount   Time
	Negative bool
}

// ParseOffset parses "[+|-]HH:MM:SS,mmm". The "n" prefix used by older
// releases is accepted as an alias for "-". An empty string is a zero
// offset.
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Offset{}, nil
	}

	var neg bool
	switch s[0] {
	case '-', 'n':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	t, err := ParseTime(s)
	if err != nil {
		return Offset{}, fmt.Errorf(
			"offset must be in the form \"00:11:22,333\" or \"-00:11:22,333\": %w",
			err,
		)
	}
	return Offset{Amount: t, Negative: neg && !t.IsZero()}, nil
}

// OffsetFromDuration converts a signed duration to an Offset. It is the
// inverse of Offset.Duration for callers that hold a time.Duration rather
// than offset text.
func OffsetFromDuration(d time.Duration) Offset {
	if d < 0 {
		return Offset{Amount: TimeFromDuration(-d), Negative: true}
	}
	return Offset{Amount: TimeFromDuration(d)}
}

// Duration returns the offset as a signed time.Duration.
func (o Offset) Duration() time.Duration {
	if o.Negative {
		return -o.Amount.Duration()
	}
	return o.Amount.Duration()
}

func (o Offset) IsZero() bool {
	return o.Amount.IsZero()
}

// Inverse returns the offset that undoes o when no clamping happened.
func (o Offset) Inverse() Offset {
	if o.IsZero() {
		return o
	}
	return Offset{Amount: o.Amount, Negative: !o.Negative}
}

// Apply shifts both ends of r. Negative offsets saturate at zero.
func (o Offset) Apply(r StartEnd) StartEnd {
	if o.Negative {
		return r.SubTime(o.Amount)
	}
	return r.AddTime(o.Amount)
}

func (o Offset) String() string {
	if o.Negative {
		return "-" + o.Amount.String()
	}
	return o.Amount.String()
}
