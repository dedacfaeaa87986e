// Package wire provides the low-level byte primitives of the DNS wire
// format: a bounds-checked, read-only cursor for extracting big-endian
// integers and byte ranges, and an append-only sink for composing them.
//
// All multi-byte integers on the wire are big-endian (network byte order,
// RFC 1035 Section 2.3.2). Conversion is done with encoding/binary and
// never depends on the host's byte order.
package wire

import (
	"encoding/binary"
	"errors"
)

// ErrUnexpectedEnd is returned when an extraction would read past the end
// of a cursor's view. Wrap with fmt.Errorf("context: %w", ErrUnexpectedEnd)
// to add context.
var ErrUnexpectedEnd = errors.New("unexpected end of data")

// Cursor is a read-only view over a byte range. Every extraction splits
// the view, returning the value together with the unconsumed remainder;
// the underlying bytes are never copied or mutated. A failed extraction
// returns the view unchanged, so the caller can retry with a different
// size.
//
// The view length is the sole bounds authority: no operation reads past
// it even when the backing array physically extends further.
type Cursor []byte

// CheckLen reports whether n more bytes remain in the view. All other
// cursor operations delegate their bounds checks here.
func (c Cursor) CheckLen(n int) error {
	if n < 0 || n > len(c) {
		return ErrUnexpectedEnd
	}
	return nil
}

// SplitU8 consumes one byte and returns it together with the remainder.
func (c Cursor) SplitU8() (uint8, Cursor, error) {
	if err := c.CheckLen(1); err != nil {
		return 0, c, err
	}
	return c[0], c[1:], nil
}

// SplitU16 consumes two bytes as a big-endian unsigned integer.
func (c Cursor) SplitU16() (uint16, Cursor, error) {
	if err := c.CheckLen(2); err != nil {
		return 0, c, err
	}
	return binary.BigEndian.Uint16(c[:2]), c[2:], nil
}

// SplitU32 consumes four bytes as a big-endian unsigned integer.
func (c Cursor) SplitU32() (uint32, Cursor, error) {
	if err := c.CheckLen(4); err != nil {
		return 0, c, err
	}
	return binary.BigEndian.Uint32(c[:4]), c[4:], nil
}

// SplitBytes splits the view into [0, at) and [at, end).
func (c Cursor) SplitBytes(at int) ([]byte, Cursor, error) {
	if err := c.CheckLen(at); err != nil {
		return nil, c, err
	}
	return c[:at], c[at:], nil
}

// Tail returns the view from start to the end.
func (c Cursor) Tail(start int) (Cursor, error) {
	if err := c.CheckLen(start); err != nil {
		return nil, err
	}
	return c[start:], nil
}
