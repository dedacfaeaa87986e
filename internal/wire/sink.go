package wire

import "encoding/binary"

// Sink is an owned, growable accumulator for composing wire-format data.
// It is strictly append-only: bytes already pushed are never altered by
// later pushes, and no push operation can fail — the sink grows as
// needed.
//
// A sink under construction must not be written to by more than one
// goroutine; callers own serialization of writes.
type Sink struct {
	buf []byte
}

// Reserve hints that at least n more bytes will be pushed. It has no
// observable effect beyond avoiding reallocation.
func (s *Sink) Reserve(n int) {
	if n <= 0 || cap(s.buf)-len(s.buf) >= n {
		return
	}
	grown := make([]byte, len(s.buf), len(s.buf)+n)
	copy(grown, s.buf)
	s.buf = grown
}

// PushBytes appends data verbatim. Every byte that enters the sink
// passes through here; the integer pushes build on it rather than
// appending directly.
func (s *Sink) PushBytes(data []byte) {
	s.buf = append(s.buf, data...)
}

// PushU8 appends a single byte.
func (s *Sink) PushU8(v uint8) {
	s.PushBytes([]byte{v})
}

// PushU16 appends two bytes, big-endian.
func (s *Sink) PushU16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	s.PushBytes(b[:])
}

// PushU32 appends four bytes, big-endian.
func (s *Sink) PushU32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	s.PushBytes(b[:])
}

// Bytes returns the accumulated bytes. The slice aliases the sink's
// buffer; it is valid until the next push.
func (s *Sink) Bytes() []byte {
	return s.buf
}

// Len returns the number of bytes pushed so far.
func (s *Sink) Len() int {
	return len(s.buf)
}
