package rdata

import (
	"fmt"

	"github.com/jroosing/dnswire/internal/wire"
)

// Parser is a cursor over one record's data inside an enclosing DNS
// message. It carries the whole message, not just the record's extent,
// because compressed domain names point at earlier message offsets and
// can only be resolved with that context. The record's declared length
// (RDLENGTH, owned by the message-framing layer) bounds every read.
//
// Integer and byte extraction delegate to wire.Cursor, so there is a
// single place bounds policy lives.
type Parser struct {
	msg []byte
	off int // absolute read position within msg
	end int // absolute exclusive bound of this record's data
}

// NewParser returns a parser over the rdlen bytes starting at off
// within msg.
func NewParser(msg []byte, off, rdlen int) (*Parser, error) {
	if off < 0 || rdlen < 0 || off+rdlen > len(msg) {
		return nil, fmt.Errorf("record data extent out of message bounds: %w", wire.ErrUnexpectedEnd)
	}
	return &Parser{msg: msg, off: off, end: off + rdlen}, nil
}

// view returns the unread remainder as a cursor.
func (p *Parser) view() wire.Cursor {
	return wire.Cursor(p.msg[p.off:p.end])
}

// Left returns the number of unread bytes.
func (p *Parser) Left() int {
	return p.end - p.off
}

// Pos returns the absolute read position within the message.
func (p *Parser) Pos() int {
	return p.off
}

// U8 reads one byte.
func (p *Parser) U8() (uint8, error) {
	v, rest, err := p.view().SplitU8()
	if err != nil {
		return 0, err
	}
	p.off = p.end - len(rest)
	return v, nil
}

// U16 reads a big-endian 16-bit integer.
func (p *Parser) U16() (uint16, error) {
	v, rest, err := p.view().SplitU16()
	if err != nil {
		return 0, err
	}
	p.off = p.end - len(rest)
	return v, nil
}

// U32 reads a big-endian 32-bit integer.
func (p *Parser) U32() (uint32, error) {
	v, rest, err := p.view().SplitU32()
	if err != nil {
		return 0, err
	}
	p.off = p.end - len(rest)
	return v, nil
}

// Bytes reads the next n bytes. The returned slice aliases the message
// buffer and must not be modified.
func (p *Parser) Bytes(n int) ([]byte, error) {
	b, rest, err := p.view().SplitBytes(n)
	if err != nil {
		return nil, err
	}
	p.off = p.end - len(rest)
	return b, nil
}

// Name decodes a possibly-compressed domain name. Pointer targets may
// lie anywhere in the message, but the name's own bytes must not cross
// the record data boundary.
func (p *Parser) Name() (string, error) {
	off := p.off
	n, err := DecodeName(p.msg, &off)
	if err != nil {
		return "", err
	}
	if off > p.end {
		return "", fmt.Errorf("%w: domain name crosses record data boundary", ErrRData)
	}
	p.off = off
	return n, nil
}

// ParseNest captures the next n bytes as an opaque, re-parseable Nest
// and advances past them.
func (p *Parser) ParseNest(n int) (Nest, error) {
	if err := p.view().CheckLen(n); err != nil {
		return Nest{}, err
	}
	nest := Nest{msg: p.msg, start: p.off, end: p.off + n}
	p.off += n
	return nest, nil
}

// Nest is an opaque capture of a record's raw data bytes. It references
// the enclosing message rather than copying, so a later re-parse can
// still resolve compression pointers into earlier parts of that
// message. The message buffer stays reachable for as long as any Nest
// derived from it is in use.
type Nest struct {
	msg        []byte
	start, end int
}

// NewNest wraps a standalone byte slice, for record data that was never
// part of a larger message (scanned or hand-built data).
func NewNest(b []byte) Nest {
	return Nest{msg: b, start: 0, end: len(b)}
}

// Bytes returns the captured bytes. The slice aliases the message
// buffer and must not be modified.
func (n Nest) Bytes() []byte {
	return n.msg[n.start:n.end]
}

// Len returns the number of captured bytes.
func (n Nest) Len() int {
	return n.end - n.start
}

// Parser returns a fresh parser over the captured bytes, retaining the
// enclosing message for compression pointer resolution.
func (n Nest) Parser() *Parser {
	return &Parser{msg: n.msg, off: n.start, end: n.end}
}

// Compose appends the captured bytes to s unchanged.
func (n Nest) Compose(s *wire.Sink) error {
	s.PushBytes(n.Bytes())
	return nil
}
