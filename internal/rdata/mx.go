package rdata

import (
	"fmt"

	"github.com/jroosing/dnswire/internal/wire"
)

// MX is mail exchange record data (RFC 1035 Section 3.3.9): a
// preference value followed by the exchange host name.
type MX struct {
	Preference uint16
	Exchange   string
}

// NewMX creates MX record data.
func NewMX(preference uint16, exchange string) MX {
	return MX{Preference: preference, Exchange: exchange}
}

// Rtype returns TypeMX.
func (r MX) Rtype() RecordType { return TypeMX }

// Compose appends the preference and the exchange name.
func (r MX) Compose(s *wire.Sink) error {
	s.PushU16(r.Preference)
	return ComposeName(s, r.Exchange)
}

// String returns "<preference> <exchange>".
func (r MX) String() string {
	return fmt.Sprintf("%d %s", r.Preference, r.Exchange)
}

func (r MX) equal(other RecordData) bool {
	o, ok := other.(MX)
	return ok && r.Preference == o.Preference && equalNames(r.Exchange, o.Exchange)
}

// ParseMX parses MX record data. It declines all other types.
func ParseMX(rtype RecordType, p *Parser) (RecordData, bool, error) {
	if rtype != TypeMX {
		return nil, false, nil
	}
	pref, err := p.U16()
	if err != nil {
		return nil, true, err
	}
	exchange, err := p.Name()
	if err != nil {
		return nil, true, err
	}
	if p.Left() != 0 {
		return nil, true, fmt.Errorf("%w: trailing bytes after MX exchange", ErrRData)
	}
	return MX{Preference: pref, Exchange: exchange}, true, nil
}
