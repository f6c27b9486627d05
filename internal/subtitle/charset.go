package subtitle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

const (
	EncodingAuto = "auto"
	EncodingUTF8 = "UTF-8"

	sniffSize = 32 * 1024
)

// chardet names that differ from their IANA registration
var chardetAliases = map[string]string{
	"GB-18030": "GB18030",
}

// NewUTF8Reader returns a reader that yields r decoded to UTF-8 along with
// the name of the charset it was decoded from. With EncodingAuto the
// charset is guessed from the start of the stream; any other name is
// looked up in the IANA registry.
func NewUTF8Reader(r io.Reader, name string) (io.Reader, string, error) {
	if name == "" || strings.EqualFold(name, EncodingAuto) {
		return detectReader(r)
	}
	if isUTF8Name(name) {
		return r, EncodingUTF8, nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, "", err
	}
	return transform.NewReader(r, enc.NewDecoder()), name, nil
}

func detectReader(r io.Reader) (io.Reader, string, error) {
	br := bufio.NewReaderSize(r, sniffSize)
	data, err := br.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) == 0 || validUTF8Prefix(data, len(data) == sniffSize) {
		return br, EncodingUTF8, nil
	}

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to detect charset: %w", err)
	}
	if isUTF8Name(result.Charset) {
		return br, EncodingUTF8, nil
	}

	enc, err := lookupEncoding(result.Charset)
	if err != nil {
		return nil, "", err
	}
	return transform.NewReader(br, enc.NewDecoder()), result.Charset, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if alias, ok := chardetAliases[name]; ok {
		name = alias
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return enc, nil
}

// a peeked window may end in the middle of a rune
func validUTF8Prefix(data []byte, truncated bool) bool {
	if utf8.Valid(data) {
		return true
	}
	if !truncated {
		return false
	}
	for i := 1; i < utf8.UTFMax && i < len(data); i++ {
		if utf8.Valid(data[:len(data)-i]) {
			return true
		}
	}
	return false
}

func isUTF8Name(name string) bool {
	return strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8")
}
