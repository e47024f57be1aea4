package level

import (
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorReadByte(t *testing.T) {
	c := NewCursor([]byte{0x01, 0xFF})

	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)

	b, err = c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), b)

	_, err = c.ReadByte()
	assert.True(t, errors.Is(err, ErrUnderflow))
	assert.Equal(t, 2, c.Pos())
}

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{0xC8})

	v, err := c.PeekUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(200), v)
	assert.Equal(t, 0, c.Pos())

	v, err = c.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, 200, int(v))
	assert.Equal(t, 1, c.Pos())

	_, err = c.PeekUint8()
	assert.True(t, errors.Is(err, ErrUnderflow))
}

func TestCursorLittleEndian(t *testing.T) {
	c := NewCursor([]byte{0x34, 0x12, 0x78, 0x56, 0x34, 0x12})
	assert.Equal(t, binary.ByteOrder(binary.LittleEndian), c.Order())

	u16, err := c.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	u32, err := c.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), u32)

	_, err = c.ReadUint16()
	assert.True(t, errors.Is(err, ErrUnderflow))
}

func TestCursorSkipAndReset(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	require.NoError(t, c.Skip(3))
	assert.Equal(t, 1, c.Remaining())
	assert.Error(t, c.Skip(2))
	assert.Equal(t, 3, c.Pos())

	c.Reset()
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 4, c.Len())
}

func TestCursorReadBytesNegative(t *testing.T) {
	c := NewCursor([]byte{1})
	_, err := c.ReadBytes(-1)
	assert.True(t, errors.Is(err, ErrUnderflow))
}

func TestEmptyCursorAlwaysUnderflows(t *testing.T) {
	c := NewCursor(nil)
	assert.Zero(t, c.Len())

	_, err := c.ReadByte()
	assert.True(t, errors.Is(err, ErrUnderflow))
	_, err = ReadString(c)
	assert.True(t, errors.Is(err, ErrUnderflow))
	_, err = ReadColors(c)
	assert.True(t, errors.Is(err, ErrUnderflow))
	assert.True(t, errors.Is(CheckString(c, "X"), ErrUnderflow))
}
