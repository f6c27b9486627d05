package subtitle

import (
	"fmt"
	"os"
)

// opened subtitle file with a decoder positioned at its first block
type Input struct {
	*Decoder
	Path    string
	Charset string

	file *os.File
}

// Open opens path for decoding. encoding is passed to NewUTF8Reader.
func Open(path, encoding string) (*Input, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}

	r, charset, err := NewUTF8Reader(file, encoding)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return &Input{
		Decoder: NewDecoder(ScanLines(r)),
		Path:    path,
		Charset: charset,
		file:    file,
	}, nil
}

func (in *Input) Close() error {
	return in.file.Close()
}
