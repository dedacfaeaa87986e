package rdata_test

import (
	"testing"

	"github.com/jroosing/dnswire/internal/rdata"
	"github.com/jroosing/dnswire/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParser_Bounds(t *testing.T) {
	msg := []byte{1, 2, 3, 4}

	_, err := rdata.NewParser(msg, 0, 4)
	assert.NoError(t, err)

	_, err = rdata.NewParser(msg, 2, 3)
	assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)

	_, err = rdata.NewParser(msg, -1, 2)
	assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
}

func TestParserIntegers(t *testing.T) {
	msg := []byte{0x01, 0x01, 0x02, 0x01, 0x02, 0x03, 0x04}
	p, err := rdata.NewParser(msg, 0, len(msg))
	require.NoError(t, err)

	v8, err := p.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), v8)

	v16, err := p.U16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v16)

	v32, err := p.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), v32)

	assert.Equal(t, 0, p.Left())
	_, err = p.U8()
	assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
}

func TestParserBytes(t *testing.T) {
	msg := []byte{1, 2, 3, 4, 5}
	p, err := rdata.NewParser(msg, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Left())
	b, err := p.Bytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, b)
	assert.Equal(t, 1, p.Left())

	// The declared extent bounds reads even though msg extends further.
	_, err = p.Bytes(2)
	assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
}

func TestParserName_Compressed(t *testing.T) {
	// Record data at offset 13 is just a pointer back to "example.com".
	msg := []byte{
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0xC0, 0x00,
	}
	p, err := rdata.NewParser(msg, 13, 2)
	require.NoError(t, err)

	n, err := p.Name()
	require.NoError(t, err)
	assert.Equal(t, "example.com", n)
	assert.Equal(t, 0, p.Left())
}

func TestParserName_CrossesBoundary(t *testing.T) {
	// The name's own bytes run past the declared record data extent.
	msg := []byte{3, 'w', 'w', 'w', 3, 'c', 'o', 'm', 0}
	p, err := rdata.NewParser(msg, 0, 4)
	require.NoError(t, err)

	_, err = p.Name()
	assert.ErrorIs(t, err, rdata.ErrRData)
}

func TestParseNest(t *testing.T) {
	msg := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	p, err := rdata.NewParser(msg, 1, 3)
	require.NoError(t, err)

	nest, err := p.ParseNest(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xBB, 0xCC}, nest.Bytes())
	assert.Equal(t, 2, nest.Len())
	assert.Equal(t, 1, p.Left())

	_, err = p.ParseNest(2)
	assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
}

func TestNestParserRetainsMessageContext(t *testing.T) {
	// A nest over a compressed name still resolves the pointer because
	// its parser keeps the whole message.
	msg := []byte{
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0xC0, 0x00,
	}
	p, err := rdata.NewParser(msg, 13, 2)
	require.NoError(t, err)
	nest, err := p.ParseNest(2)
	require.NoError(t, err)

	n, err := nest.Parser().Name()
	require.NoError(t, err)
	assert.Equal(t, "example.com", n)
}

func TestNestCompose(t *testing.T) {
	nest := rdata.NewNest([]byte{1, 2, 3})
	var s wire.Sink
	require.NoError(t, nest.Compose(&s))
	assert.Equal(t, []byte{1, 2, 3}, s.Bytes())
}
