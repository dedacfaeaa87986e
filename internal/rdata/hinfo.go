package rdata

import (
	"fmt"
	"strconv"

	"github.com/jroosing/dnswire/internal/wire"
)

// HINFO is host information record data (RFC 1035 Section 3.3.2): two
// character-strings naming CPU and operating system.
type HINFO struct {
	CPU string
	OS  string
}

// Rtype returns TypeHINFO.
func (r HINFO) Rtype() RecordType { return TypeHINFO }

// Compose appends the two character-strings.
func (r HINFO) Compose(s *wire.Sink) error {
	if err := composeCharString(s, r.CPU); err != nil {
		return err
	}
	return composeCharString(s, r.OS)
}

// String returns both fields quoted.
func (r HINFO) String() string {
	return strconv.Quote(r.CPU) + " " + strconv.Quote(r.OS)
}

func (r HINFO) equal(other RecordData) bool {
	o, ok := other.(HINFO)
	return ok && r.CPU == o.CPU && r.OS == o.OS
}

// ParseHINFO parses HINFO record data. It declines all other types.
func ParseHINFO(rtype RecordType, p *Parser) (RecordData, bool, error) {
	if rtype != TypeHINFO {
		return nil, false, nil
	}
	cpu, err := parseCharString(p)
	if err != nil {
		return nil, true, err
	}
	os, err := parseCharString(p)
	if err != nil {
		return nil, true, err
	}
	if p.Left() != 0 {
		return nil, true, fmt.Errorf("%w: trailing bytes after HINFO fields", ErrRData)
	}
	return HINFO{CPU: cpu, OS: os}, true, nil
}
