package rdata

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/jroosing/dnswire/internal/wire"
)

// TXT is text record data: one or more character-strings (RFC 1035
// Section 3.3.14).
type TXT struct {
	Text []string
}

// NewTXT creates TXT record data from one or more strings.
func NewTXT(text ...string) TXT {
	return TXT{Text: text}
}

// Rtype returns TypeTXT.
func (r TXT) Rtype() RecordType { return TypeTXT }

// Compose appends each string as a length-prefixed character-string.
func (r TXT) Compose(s *wire.Sink) error {
	if len(r.Text) == 0 {
		return fmt.Errorf("%w: TXT record data needs at least one string", ErrRData)
	}
	for _, str := range r.Text {
		if err := composeCharString(s, str); err != nil {
			return err
		}
	}
	return nil
}

// String returns the strings quoted and space-separated.
func (r TXT) String() string {
	quoted := make([]string, len(r.Text))
	for i, str := range r.Text {
		quoted[i] = strconv.Quote(str)
	}
	return strings.Join(quoted, " ")
}

// TXT text is byte data, compared exactly; only domain names are
// case-insensitive.
func (r TXT) equal(other RecordData) bool {
	o, ok := other.(TXT)
	return ok && slices.Equal(r.Text, o.Text)
}

// ParseTXT parses TXT record data. It declines all other types.
func ParseTXT(rtype RecordType, p *Parser) (RecordData, bool, error) {
	if rtype != TypeTXT {
		return nil, false, nil
	}
	if p.Left() == 0 {
		return nil, true, fmt.Errorf("%w: empty TXT record data", ErrRData)
	}
	var text []string
	for p.Left() > 0 {
		str, err := parseCharString(p)
		if err != nil {
			return nil, true, err
		}
		text = append(text, str)
	}
	return TXT{Text: text}, true, nil
}

// parseCharString reads one length-prefixed character-string (RFC 1035
// Section 3.3).
func parseCharString(p *Parser) (string, error) {
	n, err := p.U8()
	if err != nil {
		return "", err
	}
	b, err := p.Bytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// composeCharString appends one length-prefixed character-string.
func composeCharString(s *wire.Sink, str string) error {
	if len(str) > math.MaxUint8 {
		return fmt.Errorf("%w: character-string too long (%d > 255)", ErrRData, len(str))
	}
	s.PushU8(uint8(len(str)))
	s.PushBytes([]byte(str))
	return nil
}
