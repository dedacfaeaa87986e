package rdata

import (
	"fmt"
	"net"

	"github.com/jroosing/dnswire/internal/wire"
)

// IP is A or AAAA record data: a single IP address (RFC 1035
// Section 3.4.1, RFC 3596). The record type is derived from the address
// version.
type IP struct {
	Addr net.IP
}

// NewIP creates IP record data (A or AAAA based on address type).
func NewIP(addr net.IP) IP {
	return IP{Addr: addr}
}

// Rtype returns TypeA for IPv4 addresses, TypeAAAA for IPv6.
func (r IP) Rtype() RecordType {
	if r.Addr.To4() != nil {
		return TypeA
	}
	return TypeAAAA
}

// Compose appends the address bytes: 4 for A, 16 for AAAA.
func (r IP) Compose(s *wire.Sink) error {
	if ip4 := r.Addr.To4(); ip4 != nil {
		s.PushBytes(ip4)
		return nil
	}
	if ip6 := r.Addr.To16(); ip6 != nil {
		s.PushBytes(ip6)
		return nil
	}
	return fmt.Errorf("%w: invalid IP address", ErrRData)
}

// String returns the textual address.
func (r IP) String() string {
	return r.Addr.String()
}

func (r IP) equal(other RecordData) bool {
	o, ok := other.(IP)
	return ok && r.Addr.Equal(o.Addr)
}

// ParseIP parses A and AAAA record data. It declines all other types.
func ParseIP(rtype RecordType, p *Parser) (RecordData, bool, error) {
	if rtype != TypeA && rtype != TypeAAAA {
		return nil, false, nil
	}
	want := net.IPv4len
	if rtype == TypeAAAA {
		want = net.IPv6len
	}
	if p.Left() != want {
		return nil, true, fmt.Errorf("%w: %s record data must be %d bytes, got %d",
			ErrRData, rtype, want, p.Left())
	}
	b, err := p.Bytes(want)
	if err != nil {
		return nil, true, err
	}
	addr := make(net.IP, want)
	copy(addr, b)
	return IP{Addr: addr}, true, nil
}
