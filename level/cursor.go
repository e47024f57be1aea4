package level

import "encoding/binary"

// Cursor is a sequential reader over a fixed byte buffer. The byte order is
// little-endian and is fixed for the cursor's lifetime.
//
// A Cursor belongs to a single decoding session and must not be shared
// between goroutines.
type Cursor struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

// NewCursor wraps data without copying it. The position starts at 0.
func NewCursor(data []byte) *Cursor {
	if data == nil {
		data = []byte{}
	}
	return &Cursor{data: data, order: binary.LittleEndian}
}

// Len returns the buffer length.
func (c *Cursor) Len() int { return len(c.data) }

// Pos returns the offset of the next unread byte.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Order returns the cursor's byte order, always little-endian.
func (c *Cursor) Order() binary.ByteOrder { return c.order }

// Bytes returns the whole underlying buffer. Callers must not modify it.
func (c *Cursor) Bytes() []byte { return c.data }

// Reset rewinds the cursor to the start of the buffer.
func (c *Cursor) Reset() { c.pos = 0 }

func (c *Cursor) need(n int) error {
	if n < 0 || c.Remaining() < n {
		return &UnderflowError{Offset: c.pos, Need: n, Remaining: c.Remaining()}
	}
	return nil
}

// ReadByte returns the byte at the current position and advances by one.
func (c *Cursor) ReadByte() (byte, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// PeekUint8 returns the next byte as an unsigned value without advancing.
func (c *Cursor) PeekUint8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	return c.data[c.pos], nil
}

// ReadUint8 reads one byte as an unsigned value (0..255). Lengths and counts
// are always read through here.
func (c *Cursor) ReadUint8() (uint8, error) {
	return c.ReadByte()
}

// ReadBytes returns the next n bytes as a sub-slice of the buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances past n bytes.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// ReadUint16 reads a little-endian uint16.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return c.order.Uint16(b), nil
}

// ReadUint32 reads a little-endian uint32.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return c.order.Uint32(b), nil
}
