package rdata

import (
	"bytes"

	"github.com/jroosing/dnswire/internal/master"
	"github.com/jroosing/dnswire/internal/wire"
)

// Generic holds any record type's data as the raw bytes it had in its
// source message, captured as a Nest. It is the container a message
// walker falls back to when no concrete shape claims a record, and the
// result of scanning the RFC 3597 generic zone-file syntax.
//
// Values built from a received message may contain compressed domain
// names pointing elsewhere in that message. Compose replays the raw
// bytes unchanged, which is only correct if the new message keeps
// everything at the same offsets. Per RFC 3597 Section 4, compressed
// names only occur in record types defined in RFC 1035; Equal handles
// those types specially, but composition performs no decompression, so
// be wary when re-composing parsed messages unseen.
type Generic struct {
	rtype RecordType
	data  Nest
}

// NewGeneric creates a generic record data value from its components.
func NewGeneric(rtype RecordType, data Nest) Generic {
	return Generic{rtype: rtype, data: data}
}

// ParseGeneric captures the parser's entire remainder. It never
// declines and cannot fail on shape — the enclosing record length is
// already validated by the parser — which is what makes it the
// universal fallback after every concrete shape has declined.
func ParseGeneric(rtype RecordType, p *Parser) (Generic, error) {
	nest, err := p.ParseNest(p.Left())
	if err != nil {
		return Generic{}, err
	}
	return Generic{rtype: rtype, data: nest}, nil
}

// Rtype returns the stored record type tag.
func (g Generic) Rtype() RecordType {
	return g.rtype
}

// Data returns the captured raw record data.
func (g Generic) Data() Nest {
	return g.data
}

// Compose replays the captured bytes unchanged. See the type comment
// for the compression caveat.
func (g Generic) Compose(s *wire.Sink) error {
	return g.data.Compose(s)
}

// Concrete re-parses the value through parse with a fresh parser over
// the captured bytes. The three-way parse outcome is preserved exactly:
// ok is false when parse does not handle this record type, and
// declination is silent.
func (g Generic) Concrete(parse ParseFunc) (RecordData, bool, error) {
	return parse(g.rtype, g.data.Parser())
}

// knownTypes maps each tag with a concrete shape to its parser, for
// display and equality dispatch.
var knownTypes = map[RecordType]ParseFunc{
	TypeA:     ParseIP,
	TypeAAAA:  ParseIP,
	TypeCNAME: ParseHost,
	TypeNS:    ParseHost,
	TypePTR:   ParseHost,
	TypeMB:    ParseHost,
	TypeMD:    ParseHost,
	TypeMF:    ParseHost,
	TypeMG:    ParseHost,
	TypeMR:    ParseHost,
	TypeMX:    ParseMX,
	TypeSOA:   ParseSOA,
	TypeTXT:   ParseTXT,
	TypeHINFO: ParseHINFO,
	TypeMINFO: ParseMINFO,
	TypeWKS:   ParseWKS,
}

// compressible lists the RFC 1035 record types whose raw data may carry
// compressed domain names (RFC 3597 Section 4). Equality for these must
// go through decompression, never raw bytes.
var compressible = map[RecordType]ParseFunc{
	TypeCNAME: ParseHost,
	TypeMB:    ParseHost,
	TypeMD:    ParseHost,
	TypeMF:    ParseHost,
	TypeMG:    ParseHost,
	TypeMINFO: ParseMINFO,
	TypeMR:    ParseHost,
	TypeMX:    ParseMX,
	TypeNS:    ParseHost,
	TypePTR:   ParseHost,
	TypeSOA:   ParseSOA,
	TypeTXT:   ParseTXT,
}

// String formats the data by re-parsing it as the concrete shape for
// its tag and deferring to that value. The display path is best effort:
// a failed or declined re-parse renders nothing rather than erroring,
// and tags without a known shape render a placeholder.
func (g Generic) String() string {
	parse, known := knownTypes[g.rtype]
	if !known {
		return "..."
	}
	v, ok, err := g.Concrete(parse)
	if !ok || err != nil {
		return ""
	}
	return v.String()
}

// Equal reports whether two generic values carry the same record data.
//
// Records of different types are never equal. Most types compare
// bitwise, but the RFC 1035 name-bearing types may have been compressed
// against different messages, so two identical records can have
// different raw encodings; those are re-parsed and compared by their
// decompressed values. When either side fails to re-parse, the
// comparison falls back to raw bytes.
func (g Generic) Equal(o Generic) bool {
	if g.rtype != o.rtype {
		return false
	}
	if parse, ok := compressible[g.rtype]; ok {
		return concreteEqual(parse, g, o)
	}
	return bytes.Equal(g.data.Bytes(), o.data.Bytes())
}

// concreteEqual re-parses both sides and compares decompressed values.
func concreteEqual(parse ParseFunc, a, b Generic) bool {
	av, aok, aerr := a.Concrete(parse)
	bv, bok, berr := b.Concrete(parse)
	if !aok || !bok || aerr != nil || berr != nil {
		return bytes.Equal(a.data.Bytes(), b.data.Bytes())
	}
	return equalRData(av, bv)
}

// ScanGeneric scans the RFC 3597 generic record data zone-file syntax,
//
//	\# <decimal length> <hex bytes...>
//
// pushing each decoded byte to target. It fails with
// master.ErrLongGenericData as soon as a byte beyond the declared
// length appears; bytes up to the declared length are already in the
// sink at that point. Only the generic syntax is handled here —
// type-specific presentation formats belong to the zone-file
// collaborator.
func ScanGeneric(stream *master.Stream, target *wire.Sink) error {
	if err := stream.SkipLiteral(`\#`); err != nil {
		return err
	}
	left, err := stream.ScanU16()
	if err != nil {
		return err
	}
	target.Reserve(int(left))
	for left > 0 {
		err := stream.ScanHexWord(func(v byte) error {
			if left == 0 {
				return master.ErrLongGenericData
			}
			target.PushU8(v)
			left--
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
