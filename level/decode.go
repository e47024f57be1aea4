package level

// ColorByteLength is the size of one encoded colour (R, G, B).
const ColorByteLength = 3

// CheckString reads len(s) bytes and compares them to s in order. It fails
// on the first mismatching byte, so the rest of s need not be present.
// Useful for the header or footer of a file.
//
// On failure the cursor is left where it was before the call.
func CheckString(c *Cursor, s string) error {
	start := c.pos
	for i := 0; i < len(s); i++ {
		b, err := c.ReadByte()
		if err != nil {
			c.pos = start
			return err
		}
		if b != s[i] {
			off := c.pos - 1
			c.pos = start
			return &FormatError{Offset: off, Msg: "invalid string"}
		}
	}
	return nil
}

// ReadString reads a sized string: one unsigned length byte followed by
// that many bytes. Bytes are kept verbatim, one byte per character.
func ReadString(c *Cursor) (string, error) {
	start := c.pos
	n, err := c.ReadUint8()
	if err != nil {
		return "", err
	}
	b, err := c.ReadBytes(int(n))
	if err != nil {
		c.pos = start
		return "", err
	}
	return string(b), nil
}

// ReadColors reads a list of colours: one unsigned count byte followed by
// count RGB triples. Every colour is fully opaque.
func ReadColors(c *Cursor) ([]Color, error) {
	start := c.pos
	n, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	raw, err := c.ReadBytes(int(n) * ColorByteLength)
	if err != nil {
		c.pos = start
		return nil, err
	}
	colors := make([]Color, 0, n)
	for i := 0; i < len(raw); i += ColorByteLength {
		colors = append(colors, RGB(raw[i], raw[i+1], raw[i+2]))
	}
	return colors, nil
}
