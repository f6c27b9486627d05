package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     zapcore.Level
		wantDebug bool
	}{
		{"info", zapcore.InfoLevel, false},
		{"verbose", zapcore.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(zapcore.AddSync(&buf), tt.level)

			logger.Debugw("decoded block", "index", 1)
			logger.Infow("parsed input", "lines", 12)
			_ = logger.Sync()

			out := buf.String()
			if !strings.Contains(out, "parsed input") || !strings.Contains(out, "lines") {
				t.Errorf("info entry missing from output: %q", out)
			}
			if got := strings.Contains(out, "decoded block"); got != tt.wantDebug {
				t.Errorf("debug entry present = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Infow("ignored", "key", "value")
}
