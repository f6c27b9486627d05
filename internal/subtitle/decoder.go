package subtitle

import (
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Decoder pulls blocks from a LineSource one at a time.
//
// Each call to Decode reads an index line, a time line and content lines
// up to a blank line or the end of the source. A blank or missing index
// line ends the sequence with io.EOF. Any structural failure is returned
// as a *ParseError carrying the line it was found on; after that the
// decoder is spent and keeps returning the same error.
type Decoder struct {
	src  LineSource
	line int
	err  error
}

func NewDecoder(src LineSource) *Decoder {
	return &Decoder{src: src}
}

// Line returns the number of lines consumed so far.
func (d *Decoder) Line() int {
	return d.line
}

func (d *Decoder) Decode() (Block, error) {
	if d.err != nil {
		return Block{}, d.err
	}
	b, err := d.decode()
	if err != nil {
		d.err = err
	}
	return b, err
}

// Blocks iterates over the remaining blocks. Iteration stops after the
// first error is yielded.
func (d *Decoder) Blocks() iter.Seq2[Block, error] {
	return func(yield func(Block, error) bool) {
		for {
			b, err := d.Decode()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(b, err) || err != nil {
				return
			}
		}
	}
}

func (d *Decoder) decode() (Block, error) {
	// index
	idx, err := d.next()
	if errors.Is(err, io.EOF) {
		return Block{}, io.EOF
	}
	if err != nil {
		return Block{}, d.fail(InvalidContent, err)
	}
	if idx == "" {
		return Block{}, io.EOF
	}
	if _, err := strconv.ParseUint(idx, 10, 64); err != nil {
		return Block{}, d.fail(InvalidIndex, err)
	}

	// time line
	tl, err := d.next()
	if errors.Is(err, io.EOF) {
		return Block{}, d.fail(InvalidTimeString, io.ErrUnexpectedEOF)
	}
	if err != nil {
		return Block{}, d.fail(InvalidContent, err)
	}
	times, err := ParseStartEnd(tl)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return Block{}, d.fail(perr.Kind, perr.Err)
		}
		return Block{}, d.fail(InvalidTimeLine, err)
	}

	// content
	var content strings.Builder
	for {
		text, err := d.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Block{}, d.fail(InvalidContent, err)
		}
		if text == "" {
			break
		}
		content.WriteString(text)
		content.WriteByte('\n')
	}

	return Block{Range: times, Content: content.String()}, nil
}

// next reads one line, counting it even when the source reports a fault.
func (d *Decoder) next() (string, error) {
	line, err := d.src.Next()
	if errors.Is(err, io.EOF) {
		return "", io.EOF
	}
	d.line++
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\r"), nil
}

func (d *Decoder) fail(kind ErrorKind, cause error) error {
	return &ParseError{Kind: kind, Line: d.line, Err: cause}
}
