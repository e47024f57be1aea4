package level

import "github.com/pkg/errors"

// Palette is an ordered list of colours owned by the caller. Every colour
// that enters the palette through Add or Set is made opaque.
type Palette []Color

// Len returns the number of colours.
func (p Palette) Len() int { return len(p) }

// Clone returns an independent copy of p.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Add appends c as an opaque colour.
func (p *Palette) Add(c Color) {
	*p = append(*p, c.Opaque())
}

// Set replaces the colour at i with an opaque c.
func (p *Palette) Set(i int, c Color) error {
	if i < 0 || i >= len(*p) {
		return errors.Wrapf(ErrIndex, "palette index %d (len %d)", i, len(*p))
	}
	(*p)[i] = c.Opaque()
	return nil
}

// Remove deletes the colour at i, keeping the order of the rest.
func (p *Palette) Remove(i int) error {
	if i < 0 || i >= len(*p) {
		return errors.Wrapf(ErrIndex, "palette index %d (len %d)", i, len(*p))
	}
	*p = append((*p)[:i], (*p)[i+1:]...)
	return nil
}
