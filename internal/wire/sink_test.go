package wire_test

import (
	"testing"

	"github.com/jroosing/dnswire/internal/wire"
	"github.com/stretchr/testify/assert"
)

func TestSinkPushU16_BigEndian(t *testing.T) {
	var s wire.Sink
	s.PushU16(0x0102)
	assert.Equal(t, []byte{0x01, 0x02}, s.Bytes())
}

func TestSinkPushU32_BigEndian(t *testing.T) {
	var s wire.Sink
	s.PushU32(0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, s.Bytes())
}

func TestSinkPushSequence(t *testing.T) {
	var s wire.Sink
	s.PushU8(0xAB)
	s.PushBytes([]byte{0x01, 0x02})
	s.PushU16(0x0304)
	s.PushU32(0x05060708)

	assert.Equal(t, []byte{0xAB, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, s.Bytes())
	assert.Equal(t, 9, s.Len())
}

func TestSinkAppendOnly(t *testing.T) {
	// Bytes already pushed are never altered by later pushes.
	var s wire.Sink
	s.PushBytes([]byte{1, 2, 3})
	before := append([]byte(nil), s.Bytes()...)

	s.PushU32(0xDEADBEEF)
	assert.Equal(t, before, s.Bytes()[:3])
}

func TestSinkReserve(t *testing.T) {
	var s wire.Sink
	s.PushU8(0x01)
	s.Reserve(128)
	// Capacity hint only: contents unchanged.
	assert.Equal(t, []byte{0x01}, s.Bytes())
	assert.Equal(t, 1, s.Len())

	s.Reserve(-1)
	s.Reserve(0)
	assert.Equal(t, 1, s.Len())
}

func TestSinkEmpty(t *testing.T) {
	var s wire.Sink
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Bytes())
}
