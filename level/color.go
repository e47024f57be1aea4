package level

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Color is an 8-bit RGBA colour. Level files only store RGB; A is 255 for
// every decoded colour.
type Color struct {
	R, G, B, A uint8
}

// RGB returns a fully opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Opaque returns c with its alpha forced to 255.
func (c Color) Opaque() Color {
	c.A = 255
	return c
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string {
	return fmt.Sprintf("r=%d,g=%d,b=%d", c.R, c.G, c.B)
}

// RGBA returns the colour as normalised floats, the form glTF vertex colours
// use.
func (c Color) RGBA() [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". Alpha defaults to 255.
func ParseHexColor(hex string) (Color, error) {
	if len(hex) == 0 || hex[0] != '#' {
		return Color{}, errors.Errorf("invalid hex colour: %q", hex)
	}
	h := hex[1:]
	if len(h) != 6 && len(h) != 8 {
		return Color{}, errors.Errorf("invalid hex colour length: %q", hex)
	}
	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(h)/2; i++ {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, errors.Wrapf(err, "invalid hex colour: %q", hex)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}
