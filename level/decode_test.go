package level

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendString(dst []byte, s string) []byte {
	dst = append(dst, byte(len(s)))
	return append(dst, s...)
}

func appendColors(dst []byte, colors []Color) []byte {
	dst = append(dst, byte(len(colors)))
	for _, c := range colors {
		dst = append(dst, c.R, c.G, c.B)
	}
	return dst
}

func TestCheckString(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		token   string
		wantErr error
		wantPos int
	}{
		{name: "exact match", data: []byte("RED1"), token: "RED1", wantPos: 4},
		{name: "match with trailing data", data: []byte("RED1xyz"), token: "RED1", wantPos: 4},
		{name: "empty token", data: []byte("abc"), token: "", wantPos: 0},
		{name: "third byte differs", data: []byte("REX1"), token: "RED1", wantErr: ErrFormat},
		{name: "third byte differs and rest missing", data: []byte("REX"), token: "RED1", wantErr: ErrFormat},
		{name: "first byte differs", data: []byte{0xFF}, token: "RED1", wantErr: ErrFormat},
		{name: "short buffer", data: []byte("RE"), token: "RED1", wantErr: ErrUnderflow},
		{name: "empty buffer", data: nil, token: "R", wantErr: ErrUnderflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.data)
			err := CheckString(c, tt.token)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Equal(t, 0, c.Pos())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPos, c.Pos())
		})
	}
}

func TestCheckStringReportsMismatchOffset(t *testing.T) {
	c := NewCursor([]byte("REX"))
	err := CheckString(c, "RED1")

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 2, fe.Offset)
	assert.Equal(t, "invalid string", fe.Msg)
}

func TestReadStringRoundTrip(t *testing.T) {
	inputs := []string{"", "a", "Level One", string([]byte{0x00, 0x7F, 0x80, 0xFF})}
	long := make([]byte, 255)
	for i := range long {
		long[i] = byte(i)
	}
	inputs = append(inputs, string(long))

	for _, in := range inputs {
		raw := appendString(nil, in)
		c := NewCursor(raw)
		got, err := ReadString(c)
		require.NoError(t, err)
		assert.Equal(t, in, got)
		assert.Equal(t, len(raw), c.Pos())
		assert.Equal(t, raw, appendString(nil, got))
	}
}

func TestReadStringLengthAbove127IsUnsigned(t *testing.T) {
	payload := make([]byte, 200)
	for i := range payload {
		payload[i] = 'x'
	}
	c := NewCursor(append([]byte{200}, payload...))
	got, err := ReadString(c)
	require.NoError(t, err)
	assert.Len(t, got, 200)
}

func TestReadStringUnderflow(t *testing.T) {
	c := NewCursor([]byte{5, 'a', 'b', 'c'})
	_, err := ReadString(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnderflow))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, 0, c.Pos())

	_, err = ReadString(NewCursor(nil))
	assert.True(t, errors.Is(err, ErrUnderflow))
}

func TestReadColors(t *testing.T) {
	for _, count := range []int{0, 1, 2, 127, 128, 255} {
		colors := make([]Color, count)
		for i := range colors {
			colors[i] = RGB(byte(i), byte(255-i), byte(i*7))
		}
		raw := appendColors(nil, colors)
		c := NewCursor(raw)

		got, err := ReadColors(c)
		require.NoError(t, err, "count %d", count)
		require.Len(t, got, count)
		for i, col := range got {
			assert.Equal(t, colors[i], col)
			assert.Equal(t, uint8(255), col.A)
		}
		assert.Equal(t, len(raw), c.Pos())
	}
}

func TestReadColorsEmpty(t *testing.T) {
	c := NewCursor([]byte{0, 9, 9, 9})
	got, err := ReadColors(c)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 1, c.Pos())
}

func TestReadColorsUnderflow(t *testing.T) {
	c := NewCursor([]byte{2, 1, 2, 3, 4, 5})
	_, err := ReadColors(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnderflow))
	assert.Equal(t, 0, c.Pos())

	var ue *UnderflowError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 6, ue.Need)
	assert.Equal(t, 5, ue.Remaining)
}

func TestSequentialDecode(t *testing.T) {
	var raw []byte
	raw = append(raw, "RED1"...)
	raw = appendString(raw, "Title")
	raw = appendColors(raw, []Color{RGB(1, 2, 3)})
	raw = append(raw, "END"...)

	c := NewCursor(raw)
	require.NoError(t, CheckString(c, "RED1"))
	title, err := ReadString(c)
	require.NoError(t, err)
	colors, err := ReadColors(c)
	require.NoError(t, err)
	require.NoError(t, CheckString(c, "END"))

	assert.Equal(t, "Title", title)
	assert.Equal(t, []Color{RGB(1, 2, 3)}, colors)
	assert.Zero(t, c.Remaining())
}
