// Package rdata implements the record data layer of the DNS wire format.
//
// Standards Compliance:
//
// This package implements record data handling from the following RFCs:
//
//   - RFC 1035: Domain Names - Implementation and Specification (record
//     data layouts, domain name encoding, name compression)
//   - RFC 3596: DNS Extensions to Support IPv6 (AAAA records)
//   - RFC 3597: Handling of Unknown DNS Resource Record (RR) Types
//     (generic record data, the \# zone-file syntax, the rule that name
//     compression only occurs in RFC 1035 record types)
//   - RFC 4343: Domain Name System (DNS) Case Insensitivity Clarification
//
// Pluggable Record Types:
//
// There are far more record types than any one package wants to know
// about, so records are not a single giant struct. Each concrete shape
// implements the small RecordData interface and supplies a ParseFunc
// that may decline types it does not handle; an ordered dispatch table
// tries each in turn and falls back to Generic, a raw-byte container
// that accepts any type. Generic values can later be re-parsed into a
// concrete shape, displayed, or compared — with special handling for
// RFC 1035 types whose raw bytes may contain compressed domain names.
//
// Error Handling:
//
// All errors are wrapped with context using fmt.Errorf("...: %w", err).
// A parser declining a record type is not an error; only a type that
// matched but found malformed bytes reports one.
package rdata

import "errors"

// ErrRData is the sentinel for malformed record data and domain names.
// Wrap it with fmt.Errorf("context: %w", ErrRData) to add context.
var ErrRData = errors.New("malformed record data")
