package rdata

import (
	"fmt"

	"github.com/jroosing/dnswire/internal/wire"
)

// SOA is start-of-authority record data (RFC 1035 Section 3.3.13).
type SOA struct {
	MName   string // primary name server
	RName   string // responsible mailbox
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

// Rtype returns TypeSOA.
func (r SOA) Rtype() RecordType { return TypeSOA }

// Compose appends both names followed by the five timer fields.
func (r SOA) Compose(s *wire.Sink) error {
	if err := ComposeName(s, r.MName); err != nil {
		return err
	}
	if err := ComposeName(s, r.RName); err != nil {
		return err
	}
	s.PushU32(r.Serial)
	s.PushU32(r.Refresh)
	s.PushU32(r.Retry)
	s.PushU32(r.Expire)
	s.PushU32(r.Minimum)
	return nil
}

// String returns the zone-file field order: mname, rname, then timers.
func (r SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		r.MName, r.RName, r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum)
}

func (r SOA) equal(other RecordData) bool {
	o, ok := other.(SOA)
	return ok &&
		equalNames(r.MName, o.MName) &&
		equalNames(r.RName, o.RName) &&
		r.Serial == o.Serial &&
		r.Refresh == o.Refresh &&
		r.Retry == o.Retry &&
		r.Expire == o.Expire &&
		r.Minimum == o.Minimum
}

// ParseSOA parses SOA record data. It declines all other types.
func ParseSOA(rtype RecordType, p *Parser) (RecordData, bool, error) {
	if rtype != TypeSOA {
		return nil, false, nil
	}
	mname, err := p.Name()
	if err != nil {
		return nil, true, err
	}
	rname, err := p.Name()
	if err != nil {
		return nil, true, err
	}
	var timers [5]uint32
	for i := range timers {
		v, err := p.U32()
		if err != nil {
			return nil, true, err
		}
		timers[i] = v
	}
	if p.Left() != 0 {
		return nil, true, fmt.Errorf("%w: trailing bytes after SOA fields", ErrRData)
	}
	return SOA{
		MName:   mname,
		RName:   rname,
		Serial:  timers[0],
		Refresh: timers[1],
		Retry:   timers[2],
		Expire:  timers[3],
		Minimum: timers[4],
	}, true, nil
}
