package subtitle

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

const maxLineSize = 1024 * 1024

var errInvalidUTF8 = errors.New("line is not valid UTF-8")

// ordered sequence of text lines consumed once, start to finish
type LineSource interface {
	// Next returns the next line without its terminator, or io.EOF
	// once the source is exhausted.
	Next() (string, error)
}

// line source over a reader, lines split on \n with a trailing \r trimmed
type ScannerSource struct {
	scanner *bufio.Scanner
	first   bool
}

func ScanLines(r io.Reader) *ScannerSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &ScannerSource{scanner: scanner, first: true}
}

func (s *ScannerSource) Next() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	line := strings.TrimSuffix(s.scanner.Text(), "\r")
	if s.first {
		line = strings.TrimPrefix(line, "\ufeff")
		s.first = false
	}
	if !utf8.ValidString(line) {
		return "", errInvalidUTF8
	}
	return line, nil
}

// line source over lines already held in memory
type SliceSource struct {
	lines []string
	pos   int
}

func NewSliceSource(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

// SplitLines splits text the way ScanLines would read it.
func SplitLines(text string) *SliceSource {
	if text == "" {
		return NewSliceSource()
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return NewSliceSource(lines...)
}

func (s *SliceSource) Next() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}
