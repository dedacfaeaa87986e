package rdata

import "fmt"

// RecordType identifies the shape of a record's data. Values are the
// IANA-assigned RR type codes (RFC 1035 Section 3.2.2, RFC 3596).
type RecordType uint16

const (
	TypeA     RecordType = 1  // IPv4 address
	TypeNS    RecordType = 2  // Authoritative name server
	TypeMD    RecordType = 3  // Mail destination (obsolete)
	TypeMF    RecordType = 4  // Mail forwarder (obsolete)
	TypeCNAME RecordType = 5  // Canonical name (alias)
	TypeSOA   RecordType = 6  // Start of Authority
	TypeMB    RecordType = 7  // Mailbox domain name (experimental)
	TypeMG    RecordType = 8  // Mail group member (experimental)
	TypeMR    RecordType = 9  // Mail rename domain name (experimental)
	TypeNULL  RecordType = 10 // Null record (experimental)
	TypeWKS   RecordType = 11 // Well-known service description
	TypePTR   RecordType = 12 // Domain name pointer (reverse DNS)
	TypeHINFO RecordType = 13 // Host information
	TypeMINFO RecordType = 14 // Mailbox or mail list information
	TypeMX    RecordType = 15 // Mail exchange
	TypeTXT   RecordType = 16 // Text strings
	TypeAAAA  RecordType = 28 // IPv6 address (RFC 3596)
)

var typeNames = map[RecordType]string{
	TypeA:     "A",
	TypeNS:    "NS",
	TypeMD:    "MD",
	TypeMF:    "MF",
	TypeCNAME: "CNAME",
	TypeSOA:   "SOA",
	TypeMB:    "MB",
	TypeMG:    "MG",
	TypeMR:    "MR",
	TypeNULL:  "NULL",
	TypeWKS:   "WKS",
	TypePTR:   "PTR",
	TypeHINFO: "HINFO",
	TypeMINFO: "MINFO",
	TypeMX:    "MX",
	TypeTXT:   "TXT",
	TypeAAAA:  "AAAA",
}

// String returns the type mnemonic, or the RFC 3597 "TYPE###" form for
// codes without one.
func (t RecordType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}
