package rdata

import (
	"bytes"
	"fmt"
	"net"
	"strings"

	"github.com/jroosing/dnswire/internal/wire"
)

// WKS is well-known service record data (RFC 1035 Section 3.4.2): an
// IPv4 address, an IP protocol number, and a bitmap of port numbers.
type WKS struct {
	Addr     net.IP
	Protocol uint8
	Bitmap   []byte
}

// Rtype returns TypeWKS.
func (r WKS) Rtype() RecordType { return TypeWKS }

// Compose appends the address, protocol and bitmap.
func (r WKS) Compose(s *wire.Sink) error {
	ip4 := r.Addr.To4()
	if ip4 == nil {
		return fmt.Errorf("%w: WKS address must be IPv4", ErrRData)
	}
	s.PushBytes(ip4)
	s.PushU8(r.Protocol)
	s.PushBytes(r.Bitmap)
	return nil
}

// String returns the address, protocol and the ports set in the bitmap.
func (r WKS) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d", r.Addr, r.Protocol)
	for i, oct := range r.Bitmap {
		for bit := 0; bit < 8; bit++ {
			if oct&(0x80>>bit) != 0 {
				fmt.Fprintf(&b, " %d", i*8+bit)
			}
		}
	}
	return b.String()
}

func (r WKS) equal(other RecordData) bool {
	o, ok := other.(WKS)
	return ok && r.Addr.Equal(o.Addr) && r.Protocol == o.Protocol &&
		bytes.Equal(r.Bitmap, o.Bitmap)
}

// ParseWKS parses WKS record data. It declines all other types.
func ParseWKS(rtype RecordType, p *Parser) (RecordData, bool, error) {
	if rtype != TypeWKS {
		return nil, false, nil
	}
	addrBytes, err := p.Bytes(net.IPv4len)
	if err != nil {
		return nil, true, err
	}
	addr := make(net.IP, net.IPv4len)
	copy(addr, addrBytes)
	proto, err := p.U8()
	if err != nil {
		return nil, true, err
	}
	bitmap, err := p.Bytes(p.Left())
	if err != nil {
		return nil, true, err
	}
	return WKS{Addr: addr, Protocol: proto, Bitmap: bytes.Clone(bitmap)}, true, nil
}
