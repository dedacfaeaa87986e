package rdata

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jroosing/dnswire/internal/wire"
)

// NormalizeName lowercases a domain name and drops trailing dots, for
// case-insensitive comparison per RFC 4343.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, "."))
}

// EncodeName encodes a domain name to DNS wire format (RFC 1035
// Section 3.1): a sequence of length-prefixed labels terminated by a
// zero-length label.
//
// Example: "www.example.com" → [3]www[7]example[3]com[0]
//
// Constraints: each label at most 63 bytes, the encoded name at most
// 255 bytes, ASCII only. No compression pointers are emitted; those
// require knowledge of the whole message being built.
func EncodeName(domain string) ([]byte, error) {
	if domain == "" {
		return nil, fmt.Errorf("%w: domain name must be non-empty", ErrRData)
	}
	domain = trimDot(domain)
	if domain == "" {
		return []byte{0}, nil // Root domain
	}

	out := make([]byte, 0, len(domain)+2)
	labelStart := 0
	for i := 0; i <= len(domain); i++ {
		if i == len(domain) || domain[i] == '.' {
			if i == labelStart {
				return nil, fmt.Errorf("%w: empty label in %q", ErrRData, domain)
			}
			label := domain[labelStart:i]
			for j := 0; j < len(label); j++ {
				if label[j] > 0x7F {
					return nil, fmt.Errorf("%w: domain name must be ASCII", ErrRData)
				}
			}
			if len(label) > 63 {
				return nil, fmt.Errorf("%w: label too long (%d > 63): %q", ErrRData, len(label), label)
			}
			out = append(out, byte(len(label)))
			out = append(out, label...)
			labelStart = i + 1
		}
	}
	out = append(out, 0) // Terminating zero-length label

	if len(out) > 255 {
		return nil, fmt.Errorf("%w: encoded domain name too long (%d > 255)", ErrRData, len(out))
	}
	return out, nil
}

// ComposeName appends a domain name in wire format to s. It fails only
// if the name itself cannot be encoded; this is the one way record data
// composition can fail.
func ComposeName(s *wire.Sink, domain string) error {
	b, err := EncodeName(domain)
	if err != nil {
		return err
	}
	s.PushBytes(b)
	return nil
}

// DecodeName decodes a possibly-compressed domain name from wire format
// (RFC 1035 Section 4.1.4). A compression pointer is a label length byte
// with the two high bits set (11xxxxxx); its low 6 bits plus the next
// byte form a 14-bit offset from the start of the message.
//
// Reading starts at *off within msg and advances *off past the encoded
// name, including any pointer bytes. The result is dot-separated ASCII
// without a trailing dot.
func DecodeName(msg []byte, off *int) (string, error) {
	return decodeName(msg, off, 0, map[int]struct{}{})
}

// decodeName is the recursive implementation of DecodeName. It tracks
// recursion depth and visited offsets to detect compression loops.
func decodeName(msg []byte, off *int, depth int, visited map[int]struct{}) (string, error) {
	const maxCompressionDepth = 20

	if depth > maxCompressionDepth {
		return "", fmt.Errorf("%w: too many compression pointer indirections", ErrRData)
	}
	if *off < 0 || *off >= len(msg) {
		return "", fmt.Errorf("decoding domain name: %w", wire.ErrUnexpectedEnd)
	}

	labels := make([]string, 0, 6)
	for {
		if *off >= len(msg) {
			return "", fmt.Errorf("decoding domain name: %w", wire.ErrUnexpectedEnd)
		}
		labelLen := msg[*off]
		*off++

		// Zero-length label marks end of name
		if labelLen == 0 {
			break
		}

		if isCompressionPointer(labelLen) {
			rest, err := followCompressionPointer(msg, off, labelLen, depth, visited)
			if err != nil {
				return "", err
			}
			if rest != "" {
				labels = append(labels, rest)
			}
			break
		}

		// High bit patterns 01 and 10 are reserved per RFC 1035
		if labelLen&0xC0 != 0 {
			return "", fmt.Errorf("%w: reserved label type bits set", ErrRData)
		}

		label, err := readLabel(msg, off, int(labelLen))
		if err != nil {
			return "", err
		}
		labels = append(labels, label)
	}

	return strings.Join(labels, "."), nil
}

// isCompressionPointer reports whether a label length byte starts a
// compression pointer (two high bits set, 0xC0 mask).
func isCompressionPointer(b byte) bool {
	return (b & 0xC0) == 0xC0
}

// followCompressionPointer resolves a 14-bit compression pointer and
// returns the name found at its target offset.
func followCompressionPointer(
	msg []byte,
	off *int,
	firstByte byte,
	depth int,
	visited map[int]struct{},
) (string, error) {
	if *off >= len(msg) {
		return "", fmt.Errorf("decoding compression pointer: %w", wire.ErrUnexpectedEnd)
	}

	ptr := int(binary.BigEndian.Uint16([]byte{firstByte & 0x3F, msg[*off]}))
	*off++

	if ptr >= len(msg) {
		return "", fmt.Errorf("%w: compression pointer out of bounds", ErrRData)
	}
	if _, ok := visited[ptr]; ok {
		return "", fmt.Errorf("%w: compression pointer loop detected", ErrRData)
	}
	visited[ptr] = struct{}{}

	ptrOff := ptr
	return decodeName(msg, &ptrOff, depth+1, visited)
}

// readLabel reads a single label of the given length.
func readLabel(msg []byte, off *int, length int) (string, error) {
	if *off+length > len(msg) {
		return "", fmt.Errorf("reading label: %w", wire.ErrUnexpectedEnd)
	}
	label := msg[*off : *off+length]
	*off += length

	for _, b := range label {
		if b > 0x7F {
			return "", fmt.Errorf("%w: decoded domain name was not ASCII", ErrRData)
		}
	}
	return string(label), nil
}

// trimDot removes all trailing dots from a string.
func trimDot(s string) string {
	for len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// equalNames compares two domain names case-insensitively.
func equalNames(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}
