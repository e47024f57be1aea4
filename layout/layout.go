// Package layout describes the field order of a level file as a list of
// the three primitives the format is built from, and decodes files with it.
package layout

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Kind string

const (
	KindMagic  Kind = "magic"
	KindString Kind = "string"
	KindColors Kind = "colors"
)

// Field is one step of a layout. Magic fields carry the expected token in
// Value; string and colour fields are named so the decoded value can be
// looked up.
type Field struct {
	Kind  Kind   `toml:"kind"`
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

// Layout is an ordered list of fields.
type Layout struct {
	Name          string  `toml:"name"`
	AllowTrailing bool    `toml:"allow_trailing"`
	Fields        []Field `toml:"field"`
}

// Load reads and validates a layout file.
func Load(path string) (*Layout, error) {
	var l Layout
	if _, err := toml.DecodeFile(path, &l); err != nil {
		return nil, errors.Wrapf(err, "layout parse failed (%s)", path)
	}
	if err := l.Validate(); err != nil {
		return nil, errors.Wrapf(err, "layout %s", path)
	}
	return &l, nil
}

// Parse reads and validates a layout from TOML text.
func Parse(data string) (*Layout, error) {
	var l Layout
	if _, err := toml.Decode(data, &l); err != nil {
		return nil, errors.Wrap(err, "layout parse failed")
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks that every field has a known kind, magic values are
// non-empty ASCII and names are present and unique.
func (l *Layout) Validate() error {
	if len(l.Fields) == 0 {
		return errors.New("layout has no fields")
	}
	seen := make(map[string]bool, len(l.Fields))
	for i, f := range l.Fields {
		switch f.Kind {
		case KindMagic:
			if f.Value == "" {
				return errors.Errorf("field %d: magic needs a value", i)
			}
			for j := 0; j < len(f.Value); j++ {
				if f.Value[j] > 0x7F {
					return errors.Errorf("field %d: magic value must be ASCII", i)
				}
			}
		case KindString, KindColors:
			if f.Name == "" {
				return errors.Errorf("field %d: %s needs a name", i, f.Kind)
			}
			if seen[f.Name] {
				return errors.Errorf("field %d: duplicate name %q", i, f.Name)
			}
			seen[f.Name] = true
		default:
			return errors.Errorf("field %d: unknown kind %q", i, f.Kind)
		}
	}
	return nil
}
