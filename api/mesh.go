package api

import (
	"math"

	"github.com/voxelsplace/redlevel/level"
)

// Vertex is a mesh vertex with a palette colour.
type Vertex struct {
	Position [3]float32
	Color    level.Color
}

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// swatchGap is the spacing between neighbouring swatches along X.
const swatchGap = 0.25

// addQuad appends a w×h quad in the XY plane at origin, facing +Z.
func addQuad(mesh *Mesh, origin [3]float32, w, h float32, color level.Color) {
	verts := [4]Vertex{
		{Position: origin, Color: color},
		{Position: [3]float32{origin[0] + w, origin[1], origin[2]}, Color: color},
		{Position: [3]float32{origin[0] + w, origin[1] + h, origin[2]}, Color: color},
		{Position: [3]float32{origin[0], origin[1] + h, origin[2]}, Color: color},
	}
	baseIdx := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, verts[:]...)
	mesh.Indices = append(mesh.Indices, baseIdx, baseIdx+1, baseIdx+2, baseIdx, baseIdx+2, baseIdx+3)
}

// SwatchMesh lays out one unit square per colour along the X axis.
func SwatchMesh(p level.Palette) *Mesh {
	mesh := &Mesh{}
	for i, c := range p {
		x := float32(i) * (1 + swatchGap)
		addQuad(mesh, [3]float32{x, 0, 0}, 1, 1, c.Opaque())
	}
	return mesh
}

// flatNormals computes one normal per triangle and assigns it to the
// triangle's vertices.
func flatNormals(positions [][3]float32, indices []uint32) [][3]float32 {
	normals := make([][3]float32, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := positions[v0], positions[v1], positions[v2]
		vec1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		vec2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		cross := [3]float32{
			vec1[1]*vec2[2] - vec1[2]*vec2[1],
			vec1[2]*vec2[0] - vec1[0]*vec2[2],
			vec1[0]*vec2[1] - vec1[1]*vec2[0],
		}
		length := float32(math.Sqrt(float64(cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2])))
		if length > 0 {
			cross[0] /= length
			cross[1] /= length
			cross[2] /= length
		}
		normals[v0] = cross
		normals[v1] = cross
		normals[v2] = cross
	}
	return normals
}
