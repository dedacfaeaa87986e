package rdata

import (
	"fmt"

	"github.com/jroosing/dnswire/internal/wire"
)

// MINFO is mailbox information record data (RFC 1035 Section 3.3.7):
// the responsible mailbox and the error mailbox, both domain names.
type MINFO struct {
	RMailbox string
	EMailbox string
}

// Rtype returns TypeMINFO.
func (r MINFO) Rtype() RecordType { return TypeMINFO }

// Compose appends both mailbox names.
func (r MINFO) Compose(s *wire.Sink) error {
	if err := ComposeName(s, r.RMailbox); err != nil {
		return err
	}
	return ComposeName(s, r.EMailbox)
}

// String returns "<rmailbox> <emailbox>".
func (r MINFO) String() string {
	return r.RMailbox + " " + r.EMailbox
}

func (r MINFO) equal(other RecordData) bool {
	o, ok := other.(MINFO)
	return ok && equalNames(r.RMailbox, o.RMailbox) && equalNames(r.EMailbox, o.EMailbox)
}

// ParseMINFO parses MINFO record data. It declines all other types.
func ParseMINFO(rtype RecordType, p *Parser) (RecordData, bool, error) {
	if rtype != TypeMINFO {
		return nil, false, nil
	}
	rmail, err := p.Name()
	if err != nil {
		return nil, true, err
	}
	email, err := p.Name()
	if err != nil {
		return nil, true, err
	}
	if p.Left() != 0 {
		return nil, true, fmt.Errorf("%w: trailing bytes after MINFO mailboxes", ErrRData)
	}
	return MINFO{RMailbox: rmail, EMailbox: email}, true, nil
}
