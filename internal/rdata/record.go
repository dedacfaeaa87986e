package rdata

import (
	"github.com/jroosing/dnswire/internal/wire"
)

// RecordData is implemented by every concrete record data shape, and by
// Generic as the universal fallback container.
type RecordData interface {
	// Rtype returns the record type tag for this value.
	Rtype() RecordType

	// Compose appends the value's record data to s in wire format. It
	// fails only when a contained sub-component (a domain name) cannot
	// be encoded; the sink itself never fails.
	Compose(s *wire.Sink) error

	// String returns the zone-file presentation of the record data.
	String() string
}

// ParseFunc attempts to parse record data of type rtype from p.
//
// Three outcomes:
//   - (nil, false, nil): the implementation does not handle rtype. The
//     parser is untouched and the caller tries the next candidate.
//   - (v, true, nil): parsed; the parser has advanced past the data.
//   - (nil, true, err): rtype matched but the bytes were malformed.
//
// Declining must be silent and side-effect-free; it is the dispatch
// mechanism that lets an open-ended set of record types be tried in
// sequence without a central registry knowing their layouts.
type ParseFunc func(rtype RecordType, p *Parser) (RecordData, bool, error)

// parsers is the fixed order in which known shapes are offered a record.
var parsers = []ParseFunc{
	ParseIP,
	ParseHost,
	ParseMX,
	ParseSOA,
	ParseTXT,
	ParseHINFO,
	ParseMINFO,
	ParseWKS,
}

// ParseAny parses record data of type rtype, trying each known shape in
// order and falling back to Generic when all of them decline. The
// generic fallback accepts every type, so a message can always be
// walked even when it carries record types nothing here knows about.
func ParseAny(rtype RecordType, p *Parser) (RecordData, error) {
	for _, parse := range parsers {
		v, ok, err := parse(rtype, p)
		if !ok {
			continue
		}
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	g, err := ParseGeneric(rtype, p)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// equaler is implemented by shapes that compare decompressed values.
// Raw bytes are never compared here: two semantically identical records
// can have different encodings depending on where in a message their
// names were compressed.
type equaler interface {
	equal(other RecordData) bool
}

// equalRData compares two record data values semantically.
func equalRData(a, b RecordData) bool {
	if e, ok := a.(equaler); ok {
		return e.equal(b)
	}
	return false
}
