package subtitle

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeRoundTrip(t *testing.T) {
	tests := []string{
		"00:00:00,000",
		"00:00:22,280",
		"01:02:03,456",
		"23:59:59,999",
		"100:40:39,999",
		"1234:00:00,001",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			got, err := ParseTime(s)
			if err != nil {
				t.Fatalf("ParseTime(%q) returned error: %v", s, err)
			}
			if got.String() != s {
				t.Errorf("ParseTime(%q).String() = %q", s, got.String())
			}
			again, err := ParseTime(got.String())
			if err != nil {
				t.Fatalf("reparse failed: %v", err)
			}
			if again != got {
				t.Errorf("round trip changed value: %v != %v", again, got)
			}
		})
	}
}

func TestParseTimeIrregularFields(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"6:5:4,321", "06:05:04,321"},
		{"00:00:00,5", "00:00:00,005"},
		{"00:90:00,000", "01:30:00,000"},
		{"99:99:99,999", "100:40:39,999"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if err != nil {
				t.Fatalf("ParseTime(%q) returned error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseTime(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimeInvalid(t *testing.T) {
	tests := []string{
		"",
		"00:00:00",
		"00:00:00.000",
		"00:00,000",
		"00:00:00:00,000",
		"aa:00:00,000",
		"-1:00:00,000",
		"+1:00:00,000",
		"00:00:00,000 ",
		"00:00:00,00,0",
		"3000000:00:00,000",
		"2562047:47:16,855",
		"0:4294967295:0,0",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := ParseTime(s)
			if err == nil {
				t.Fatalf("ParseTime(%q) expected error", s)
			}
			if !errors.Is(err, InvalidTimeString) {
				t.Errorf("ParseTime(%q) error = %v, want InvalidTimeString", s, err)
			}
		})
	}
}

func TestTimeArithmetic(t *testing.T) {
	sum := NewTime(1, 2, 3, 456).Add(NewTime(6, 5, 4, 321))
	if sum.String() != "07:07:07,777" {
		t.Errorf("expected 07:07:07,777, got %s", sum)
	}

	diff := NewTime(0, 0, 1, 0).Sub(NewTime(0, 0, 2, 0))
	if diff.String() != "00:00:00,000" {
		t.Errorf("expected saturated zero, got %s", diff)
	}
	if !diff.IsZero() {
		t.Error("expected IsZero after saturating subtraction")
	}

	equal := NewTime(0, 0, 2, 0).Sub(NewTime(0, 0, 2, 0))
	if !equal.IsZero() {
		t.Errorf("expected zero for equal operands, got %s", equal)
	}

	if got := NewTime(0, 0, 5, 500).Sub(NewTime(0, 0, 2, 250)); got.String() != "00:00:03,250" {
		t.Errorf("expected 00:00:03,250, got %s", got)
	}
}

func TestTimeHourOverflow(t *testing.T) {
	base, err := ParseTime("99:99:99,999")
	if err != nil {
		t.Fatalf("ParseTime returned error: %v", err)
	}

	r := Span(base)
	r.End = r.End.Add(base)
	if got := r.String(); got != "100:40:39,999 --> 201:21:19,998" {
		t.Errorf("unexpected rendering: %s", got)
	}
}

func TestTimeSaturatesAtMaximum(t *testing.T) {
	top, err := ParseTime("2562047:47:16,854")
	if err != nil {
		t.Fatalf("ParseTime returned error for largest time: %v", err)
	}
	if top != maxTime {
		t.Errorf("expected largest time %s, got %s", maxTime, top)
	}

	big, err := ParseTime("2000000:00:00,000")
	if err != nil {
		t.Fatalf("ParseTime returned error: %v", err)
	}
	tests := []struct {
		name string
		got  Time
	}{
		{"add", big.Add(big)},
		{"add to maximum", maxTime.Add(NewTime(0, 0, 0, 1))},
		{"new time", NewTime(3000000, 0, 0, 0)},
		{"new time sum", NewTime(2000000, 600000*60, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != maxTime {
				t.Errorf("expected saturation at %s, got %s", maxTime, tt.got)
			}
			if tt.got.Duration() < 0 {
				t.Errorf("time went negative: %v", tt.got.Duration())
			}
		})
	}

	r := Offset{Amount: big}.Apply(Span(big))
	if r.Start != maxTime || r.End != maxTime {
		t.Errorf("expected range clamped at maximum, got %s", r)
	}
	if got := big.Add(NewTime(1, 0, 0, 0)).String(); got != "2000001:00:00,000" {
		t.Errorf("expected unsaturated sum, got %s", got)
	}
}

func TestTimeFromDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"negative clamps", -time.Second, "00:00:00,000"},
		{"zero", 0, "00:00:00,000"},
		{"sub millisecond truncated", 1500 * time.Microsecond, "00:00:00,001"},
		{"hours", 3*time.Hour + 4*time.Millisecond, "03:00:00,004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeFromDuration(tt.d).String()
			if got != tt.want {
				t.Errorf("TimeFromDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestParseStartEnd(t *testing.T) {
	r, err := ParseStartEnd("00:00:22,280 --> 00:00:34,090")
	if err != nil {
		t.Fatalf("ParseStartEnd returned error: %v", err)
	}
	if r.Start != NewTime(0, 0, 22, 280) || r.End != NewTime(0, 0, 34, 90) {
		t.Errorf("unexpected range: %s", r)
	}

	// end before start is passed through untouched
	r, err = ParseStartEnd("00:00:10,000 --> 00:00:05,000")
	if err != nil {
		t.Fatalf("ParseStartEnd returned error: %v", err)
	}
	if r.String() != "00:00:10,000 --> 00:00:05,000" {
		t.Errorf("reversed range changed: %s", r)
	}
}

func TestParseStartEndInvalid(t *testing.T) {
	tests := []string{
		"",
		"00:00:22,280",
		"00:00:22,280 -> 00:00:34,090",
		"00:00:22,280-->00:00:34,090",
		"00:00:22,280 --> 00:00:34,090 --> 00:00:40,000",
		"00:00:22,280 --> nope",
		"nope --> 00:00:34,090",
		"00:00:22.280 --> 00:00:34.090",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := ParseStartEnd(s)
			if !errors.Is(err, InvalidTimeLine) {
				t.Errorf("ParseStartEnd(%q) error = %v, want InvalidTimeLine", s, err)
			}
			if errors.Is(err, InvalidTimeString) {
				t.Errorf("ParseStartEnd(%q) should not report InvalidTimeString", s)
			}
		})
	}
}

func TestStartEndArithmetic(t *testing.T) {
	r := StartEnd{Start: NewTime(0, 0, 1, 0), End: NewTime(0, 0, 3, 0)}

	if got := r.Add(StartEnd{Start: NewTime(0, 0, 1, 0), End: NewTime(0, 0, 2, 0)}); got.String() != "00:00:02,000 --> 00:00:05,000" {
		t.Errorf("Add: got %s", got)
	}
	if got := r.SubTime(NewTime(0, 0, 2, 0)); got.String() != "00:00:00,000 --> 00:00:01,000" {
		t.Errorf("SubTime: got %s", got)
	}
	if got := r.AddDuration(-500 * time.Millisecond); got.String() != "00:00:00,500 --> 00:00:02,500" {
		t.Errorf("AddDuration negative: got %s", got)
	}
	if got := r.SubDuration(-time.Minute); got.String() != "00:01:01,000 --> 00:01:03,000" {
		t.Errorf("SubDuration negative: got %s", got)
	}
	if r.String() != "00:00:01,000 --> 00:00:03,000" {
		t.Errorf("receiver was modified: %s", r)
	}

	later := r.AddTime(NewTime(0, 0, 0, 1))
	if r.Compare(later) != -1 || later.Compare(r) != 1 || r.Compare(r) != 0 {
		t.Error("Compare does not order by start time")
	}
}
