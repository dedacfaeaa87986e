// Package master provides the zone-file token primitives consumed by the
// RFC 3597 generic record data scanner: skipping literal tokens, reading
// decimal integers, and decoding whitespace-delimited words of hex digit
// pairs.
package master

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrSyntax is the sentinel for malformed zone-file tokens. Wrap with
	// fmt.Errorf("context: %w", ErrSyntax) to add context.
	ErrSyntax = errors.New("master file syntax error")

	// ErrLongGenericData is returned when generic record data contains
	// more hex bytes than its declared length.
	ErrLongGenericData = errors.New("generic record data longer than declared")
)

// Stream reads whitespace-separated tokens from zone-file text.
type Stream struct {
	r *bufio.Reader
}

// NewStream returns a token stream over r.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: bufio.NewReader(r)}
}

// next returns the next whitespace-delimited word. Running out of input
// before any word starts is reported as io.ErrUnexpectedEOF.
func (s *Stream) next() (string, error) {
	var word []byte
	for {
		b, err := s.r.ReadByte()
		if err == io.EOF {
			if len(word) > 0 {
				return string(word), nil
			}
			return "", io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			if len(word) > 0 {
				return string(word), nil
			}
			continue
		}
		word = append(word, b)
	}
}

// SkipLiteral consumes the next word and fails unless it equals lit.
func (s *Stream) SkipLiteral(lit string) error {
	w, err := s.next()
	if err != nil {
		return err
	}
	if w != lit {
		return fmt.Errorf("%w: expected %q, got %q", ErrSyntax, lit, w)
	}
	return nil
}

// ScanU16 consumes the next word as a decimal 16-bit unsigned integer.
func (s *Stream) ScanU16() (uint16, error) {
	w, err := s.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(w, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: bad 16-bit integer %q", ErrSyntax, w)
	}
	return uint16(v), nil
}

// ScanHexWord consumes one word of hex digit pairs, invoking fn once per
// decoded byte. An error returned by fn stops the scan immediately and
// is propagated; bytes already delivered stay delivered.
func (s *Stream) ScanHexWord(fn func(byte) error) error {
	w, err := s.next()
	if err != nil {
		return err
	}
	if len(w)%2 != 0 {
		return fmt.Errorf("%w: odd-length hex data %q", ErrSyntax, w)
	}
	decoded, err := hex.DecodeString(w)
	if err != nil {
		return fmt.Errorf("%w: bad hex data %q", ErrSyntax, w)
	}
	for _, b := range decoded {
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
