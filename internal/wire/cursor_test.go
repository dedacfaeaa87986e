package wire_test

import (
	"testing"

	"github.com/jroosing/dnswire/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorSplitU8(t *testing.T) {
	c := wire.Cursor{0x2A, 0xFF}
	v, rest, err := c.SplitU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2A), v)
	assert.Equal(t, wire.Cursor{0xFF}, rest)
}

func TestCursorSplitU16_BigEndian(t *testing.T) {
	c := wire.Cursor{0x01, 0x02}
	v, rest, err := c.SplitU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v, "network byte order is big-endian")
	assert.Empty(t, rest)
}

func TestCursorSplitU32_BigEndian(t *testing.T) {
	c := wire.Cursor{0x01, 0x02, 0x03, 0x04, 0xAA}
	v, rest, err := c.SplitU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), v)
	assert.Equal(t, wire.Cursor{0xAA}, rest)
}

func TestCursorSplitBytes(t *testing.T) {
	c := wire.Cursor{1, 2, 3, 4, 5}
	b, rest, err := c.SplitBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.Equal(t, wire.Cursor{4, 5}, rest)
}

func TestCursorSplitBytes_ZeroAndFull(t *testing.T) {
	c := wire.Cursor{1, 2}

	b, rest, err := c.SplitBytes(0)
	require.NoError(t, err)
	assert.Empty(t, b)
	assert.Equal(t, c, rest)

	b, rest, err = c.SplitBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Empty(t, rest)
}

func TestCursorTail(t *testing.T) {
	c := wire.Cursor{1, 2, 3}
	tail, err := c.Tail(1)
	require.NoError(t, err)
	assert.Equal(t, wire.Cursor{2, 3}, tail)

	tail, err = c.Tail(3)
	require.NoError(t, err)
	assert.Empty(t, tail)
}

func TestCursorBounds(t *testing.T) {
	// Every oversized extraction fails with ErrUnexpectedEnd and leaves
	// the original cursor usable.
	c := wire.Cursor{0x01}

	t.Run("u16", func(t *testing.T) {
		_, rest, err := c.SplitU16()
		assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
		assert.Equal(t, c, rest)
	})
	t.Run("u32", func(t *testing.T) {
		_, rest, err := c.SplitU32()
		assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
		assert.Equal(t, c, rest)
	})
	t.Run("bytes", func(t *testing.T) {
		_, rest, err := c.SplitBytes(2)
		assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
		assert.Equal(t, c, rest)
	})
	t.Run("tail", func(t *testing.T) {
		_, err := c.Tail(2)
		assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
	})
	t.Run("u8 on empty", func(t *testing.T) {
		empty := wire.Cursor{}
		_, _, err := empty.SplitU8()
		assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
	})
	t.Run("retry after failure", func(t *testing.T) {
		_, _, err := c.SplitU32()
		require.ErrorIs(t, err, wire.ErrUnexpectedEnd)
		v, _, err := c.SplitU8()
		require.NoError(t, err)
		assert.Equal(t, uint8(0x01), v)
	})
}

func TestCursorCheckLen(t *testing.T) {
	c := wire.Cursor{1, 2, 3}
	assert.NoError(t, c.CheckLen(0))
	assert.NoError(t, c.CheckLen(3))
	assert.ErrorIs(t, c.CheckLen(4), wire.ErrUnexpectedEnd)
	assert.ErrorIs(t, c.CheckLen(-1), wire.ErrUnexpectedEnd)
}

func TestCursorViewIsAuthority(t *testing.T) {
	// The view length bounds reads even when the backing array extends
	// further.
	backing := []byte{1, 2, 3, 4}
	c := wire.Cursor(backing[:2])
	_, _, err := c.SplitU32()
	assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
	_, err = c.Tail(3)
	assert.ErrorIs(t, err, wire.ErrUnexpectedEnd)
}
