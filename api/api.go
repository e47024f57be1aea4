// Package api works on in-memory level bytes. It is shared by the CLI
// helpers and the WASM build.
package api

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voxelsplace/redlevel/layout"
	"github.com/voxelsplace/redlevel/level"
)

// DecodeLevel decodes a level file held in memory using a TOML layout.
func DecodeLevel(layoutTOML string, data []byte) (*layout.Record, error) {
	l, err := layout.Parse(layoutTOML)
	if err != nil {
		return nil, err
	}
	return l.Decode(level.NewCursor(data))
}

// RecordPalette returns the colour field called field from rec.
func RecordPalette(rec *layout.Record, field string) (level.Palette, error) {
	p, ok := rec.Colors(field)
	if !ok {
		return nil, errors.Errorf("no colour field %q in layout %q", field, rec.Layout)
	}
	return p, nil
}

// PaletteToGLB renders the palette as a row of coloured squares and returns
// the binary glTF bytes.
func PaletteToGLB(p level.Palette) ([]byte, error) {
	if len(p) == 0 {
		return nil, errors.New("empty palette")
	}
	mesh := SwatchMesh(p)

	positions := make([][3]float32, len(mesh.Vertices))
	colors := make([][4]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position
		colors[i] = v.Color.RGBA()
	}
	indices := make([]uint32, len(mesh.Indices))
	copy(indices, mesh.Indices)
	normals := flatNormals(positions, indices)

	doc := gltf.NewDocument()
	doc.Asset.Generator = "redlevel palette -> GLB"
	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, indices)
	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
			gltf.NORMAL:   uint32(normalAccessor),
			gltf.COLOR_0:  uint32(colorAccessor),
		},
		Indices:  gltf.Index(uint32(indicesAccessor)),
		Material: gltf.Index(0),
	}
	pbr := &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float32{1, 1, 1, 1}, MetallicFactor: gltf.Float(0), RoughnessFactor: gltf.Float(1)}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque, DoubleSided: true}}
	doc.Meshes = []*gltf.Mesh{{Name: "Palette", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: "Palette", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))

	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

var (
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(5).Align(lipgloss.Right)
	hexStyle   = lipgloss.NewStyle().Bold(true)
)

// RenderPalette returns one line per colour: a swatch, the index, the hex
// value and the channel values.
func RenderPalette(name string, p level.Palette) string {
	var b strings.Builder
	b.WriteString(hexStyle.Render(fmt.Sprintf("%s (%d)", name, len(p))))
	b.WriteByte('\n')
	for i, c := range p {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
		fmt.Fprintf(&b, "%s %s  %s  %s\n", indexStyle.Render(fmt.Sprint(i)), swatch, hexStyle.Render(c.Hex()), c)
	}
	return b.String()
}
