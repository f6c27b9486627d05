package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Encoder writes blocks in SubRip form, numbering them from 1. The
// counter carries over between inputs so concatenated files come out
// numbered as one sequence.
type Encoder struct {
	w     *bufio.Writer
	count int
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// writes one block with the next index
func (e *Encoder) Encode(b Block) error {
	e.count++
	if _, err := fmt.Fprintf(e.w, "%d\n%s", e.count, b); err != nil {
		return fmt.Errorf("failed to write block %d: %w", e.count, err)
	}
	return nil
}

// Count returns how many blocks have been written.
func (e *Encoder) Count() int {
	return e.count
}

func (e *Encoder) Flush() error {
	return e.w.Flush()
}

// CreateOutput creates the file at path, making parent directories as
// needed.
func CreateOutput(path string) (*os.File, error) {
	if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
