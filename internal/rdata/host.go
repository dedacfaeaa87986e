package rdata

import (
	"fmt"

	"github.com/jroosing/dnswire/internal/wire"
)

// hostTypes are the record types whose data is exactly one domain name
// (RFC 1035 Section 3.3).
var hostTypes = map[RecordType]bool{
	TypeCNAME: true,
	TypeNS:    true,
	TypePTR:   true,
	TypeMB:    true,
	TypeMD:    true,
	TypeMF:    true,
	TypeMG:    true,
	TypeMR:    true,
}

// Host is record data consisting of a single domain name: CNAME, NS,
// PTR and the RFC 1035 mailbox types MB, MD, MF, MG and MR.
type Host struct {
	T    RecordType
	Name string
}

// NewHost creates single-name record data of the given type.
func NewHost(rtype RecordType, name string) Host {
	return Host{T: rtype, Name: name}
}

// NewCNAME creates CNAME record data.
func NewCNAME(name string) Host { return NewHost(TypeCNAME, name) }

// NewNS creates NS record data.
func NewNS(name string) Host { return NewHost(TypeNS, name) }

// NewPTR creates PTR record data.
func NewPTR(name string) Host { return NewHost(TypePTR, name) }

// Rtype returns the record type.
func (r Host) Rtype() RecordType { return r.T }

// Compose appends the name in wire format. No compression pointers are
// emitted.
func (r Host) Compose(s *wire.Sink) error {
	return ComposeName(s, r.Name)
}

// String returns the target name.
func (r Host) String() string { return r.Name }

func (r Host) equal(other RecordData) bool {
	o, ok := other.(Host)
	return ok && r.T == o.T && equalNames(r.Name, o.Name)
}

// ParseHost parses single-name record data, decompressing the name. It
// declines types not listed in hostTypes.
func ParseHost(rtype RecordType, p *Parser) (RecordData, bool, error) {
	if !hostTypes[rtype] {
		return nil, false, nil
	}
	name, err := p.Name()
	if err != nil {
		return nil, true, err
	}
	if p.Left() != 0 {
		return nil, true, fmt.Errorf("%w: trailing bytes after %s name", ErrRData, rtype)
	}
	return Host{T: rtype, Name: name}, true, nil
}
