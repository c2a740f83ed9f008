// Package geometry builds CPU-side triangle meshes for upload. It has no
// GL dependency so mesh invariants can be tested anywhere.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction represents an axis-aligned face direction
type Direction int

const (
	Right  Direction = iota // +X
	Left                    // -X
	Top                     // +Y
	Bottom                  // -Y
	Front                   // +Z
	Back                    // -Z
)

// Directions lists every face direction in cube build order.
var Directions = [...]Direction{Right, Left, Top, Bottom, Front, Back}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Normal returns the outward unit normal for a direction
func (d Direction) Normal() mgl32.Vec3 {
	switch d {
	case Right:
		return mgl32.Vec3{1, 0, 0}
	case Left:
		return mgl32.Vec3{-1, 0, 0}
	case Top:
		return mgl32.Vec3{0, 1, 0}
	case Bottom:
		return mgl32.Vec3{0, -1, 0}
	case Front:
		return mgl32.Vec3{0, 0, 1}
	case Back:
		return mgl32.Vec3{0, 0, -1}
	default:
		return mgl32.Vec3{0, 0, 0}
	}
}

// axes returns the face's in-plane unit axes u and v, chosen so that
// u × v equals the outward normal.
func (d Direction) axes() (u, v mgl32.Vec3) {
	switch d {
	case Right:
		return mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}
	case Left:
		return mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}
	case Top:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}
	case Bottom:
		return mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, -1}
	case Front:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	case Back:
		return mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}
	default:
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
}

// Corners returns the four corners of the face of an axis-aligned cube with
// the given edge length centered on the origin, counter-clockwise when seen
// from outside.
func (d Direction) Corners(size float32) [4]mgl32.Vec3 {
	half := size / 2
	center := d.Normal().Mul(half)
	u, v := d.axes()
	u, v = u.Mul(half), v.Mul(half)

	return [4]mgl32.Vec3{
		center.Sub(u).Sub(v),
		center.Add(u).Sub(v),
		center.Add(u).Add(v),
		center.Sub(u).Add(v),
	}
}

// VerticesPerFace and IndicesPerFace describe a quad split along its
// first-to-third corner diagonal.
const (
	VerticesPerFace = 4
	IndicesPerFace  = 6
)

// Mesh is an indexed triangle list with one normal per vertex.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint16
}

// AddFace appends a flat quad with its own four vertices.
func (m *Mesh) AddFace(corners [4]mgl32.Vec3, normal mgl32.Vec3) {
	base := uint16(len(m.Positions))

	for _, c := range corners {
		m.Positions = append(m.Positions, c)
		m.Normals = append(m.Normals, normal)
	}

	// Two triangles sharing the 0-2 diagonal (CCW winding)
	m.Indices = append(m.Indices, base, base+1, base+2)
	m.Indices = append(m.Indices, base, base+2, base+3)
}

// NewCube builds a cube of the given edge length from six independently
// vertexed faces, so every face keeps a flat normal: 24 vertices, 36 indices.
func NewCube(size float32) *Mesh {
	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, len(Directions)*VerticesPerFace),
		Normals:   make([]mgl32.Vec3, 0, len(Directions)*VerticesPerFace),
		Indices:   make([]uint16, 0, len(Directions)*IndicesPerFace),
	}
	for _, d := range Directions {
		m.AddFace(d.Corners(size), d.Normal())
	}
	return m
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// PositionData flattens the positions to x, y, z triples.
func (m *Mesh) PositionData() []float32 {
	return flatten(m.Positions)
}

// NormalData flattens the normals to x, y, z triples.
func (m *Mesh) NormalData() []float32 {
	return flatten(m.Normals)
}

func flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Validate checks that the mesh is a list of independent quads: matching
// position and normal counts, unit normals, and every triangle drawing only
// from its own group of four vertices.
func (m *Mesh) Validate() error {
	if len(m.Positions) != len(m.Normals) {
		return fmt.Errorf("%d positions but %d normals", len(m.Positions), len(m.Normals))
	}
	if len(m.Positions)%VerticesPerFace != 0 {
		return fmt.Errorf("%d vertices is not a whole number of faces", len(m.Positions))
	}
	if want := len(m.Positions) / VerticesPerFace * IndicesPerFace; len(m.Indices) != want {
		return fmt.Errorf("%d indices, want %d", len(m.Indices), want)
	}

	for i, n := range m.Normals {
		if !mgl32.FloatEqualThreshold(n.Len(), 1, 1e-6) {
			return fmt.Errorf("normal %d has length %v", i, n.Len())
		}
		if first := m.Normals[i-i%VerticesPerFace]; n != first {
			return fmt.Errorf("normal %d differs from the rest of its face", i)
		}
	}

	for tri := 0; tri < len(m.Indices)/3; tri++ {
		face := tri * 3 / IndicesPerFace
		for _, idx := range m.Indices[tri*3 : tri*3+3] {
			if int(idx)/VerticesPerFace != face {
				return fmt.Errorf("triangle %d uses vertex %d outside face %d", tri, idx, face)
			}
		}
	}

	return nil
}
