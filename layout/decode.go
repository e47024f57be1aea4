package layout

import (
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/voxelsplace/redlevel/level"
)

// Value is one decoded field. Magic fields are recorded too, with the token
// in Text.
type Value struct {
	Name   string
	Kind   Kind
	Text   string
	Colors level.Palette
}

// Record is the result of decoding a level file with a layout.
type Record struct {
	Layout string
	Digest uint64
	Values []Value
}

func (r *Record) lookup(name string, kind Kind) (*Value, bool) {
	for i := range r.Values {
		if r.Values[i].Name == name && r.Values[i].Kind == kind {
			return &r.Values[i], true
		}
	}
	return nil, false
}

// Text returns the decoded string field called name.
func (r *Record) Text(name string) (string, bool) {
	v, ok := r.lookup(name, KindString)
	if !ok {
		return "", false
	}
	return v.Text, true
}

// Colors returns a copy of the decoded colour field called name.
func (r *Record) Colors(name string) (level.Palette, bool) {
	v, ok := r.lookup(name, KindColors)
	if !ok {
		return nil, false
	}
	return v.Colors.Clone(), true
}

// Decode runs every field of l against c in order. The first failure stops
// decoding; the returned error still matches level.ErrUnderflow or
// level.ErrFormat.
func (l *Layout) Decode(c *level.Cursor) (*Record, error) {
	rec := &Record{Layout: l.Name, Digest: xxhash.Sum64(c.Bytes()), Values: make([]Value, 0, len(l.Fields))}
	for i, f := range l.Fields {
		v := Value{Name: f.Name, Kind: f.Kind}
		var err error
		switch f.Kind {
		case KindMagic:
			err = level.CheckString(c, f.Value)
			v.Text = f.Value
		case KindString:
			v.Text, err = level.ReadString(c)
		case KindColors:
			var colors []level.Color
			colors, err = level.ReadColors(c)
			v.Colors = level.Palette(colors)
		default:
			err = errors.Errorf("unknown kind %q", f.Kind)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "field %d (%s %s)", i, f.Kind, f.label())
		}
		rec.Values = append(rec.Values, v)
	}
	if !l.AllowTrailing && c.Remaining() > 0 {
		return nil, &level.FormatError{Offset: c.Pos(), Msg: "trailing data"}
	}
	return rec, nil
}

func (f Field) label() string {
	if f.Kind == KindMagic {
		return "\"" + f.Value + "\""
	}
	return f.Name
}
