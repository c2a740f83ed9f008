package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCubeCounts(t *testing.T) {
	m := NewCube(1)

	if got := m.VertexCount(); got != 24 {
		t.Errorf("VertexCount() = %d, want 24", got)
	}
	if got := len(m.Normals); got != 24 {
		t.Errorf("len(Normals) = %d, want 24", got)
	}
	if got := len(m.Indices); got != 36 {
		t.Errorf("len(Indices) = %d, want 36", got)
	}
	if got := m.TriangleCount(); got != 12 {
		t.Errorf("TriangleCount() = %d, want 12", got)
	}
	if got := len(m.PositionData()); got != 72 {
		t.Errorf("len(PositionData()) = %d, want 72", got)
	}
	if got := len(m.NormalData()); got != 72 {
		t.Errorf("len(NormalData()) = %d, want 72", got)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestNewCubeFaceNormals(t *testing.T) {
	m := NewCube(1)

	for f, d := range Directions {
		want := d.Normal()
		if want.Len() != 1 {
			t.Fatalf("%s normal %v is not unit length", d, want)
		}
		for i := f * VerticesPerFace; i < (f+1)*VerticesPerFace; i++ {
			if m.Normals[i] != want {
				t.Errorf("%s face vertex %d normal = %v, want %v", d, i, m.Normals[i], want)
			}
		}
	}
}

func TestNewCubeCornersOnFacePlane(t *testing.T) {
	m := NewCube(1)

	for f, d := range Directions {
		n := d.Normal()
		for i := f * VerticesPerFace; i < (f+1)*VerticesPerFace; i++ {
			p := m.Positions[i]
			if got := p.Dot(n); got != 0.5 {
				t.Errorf("%s vertex %d = %v lies at distance %v, want 0.5", d, i, p, got)
			}
			for axis := 0; axis < 3; axis++ {
				if p[axis] != 0.5 && p[axis] != -0.5 {
					t.Errorf("%s vertex %d = %v is not a unit cube corner", d, i, p)
				}
			}
		}
	}
}

func TestNewCubeMatchesUploadLayout(t *testing.T) {
	m := NewCube(1)

	// First face is +X, indices split along the 0-2 diagonal.
	wantRight := []mgl32.Vec3{
		{0.5, -0.5, 0.5},
		{0.5, -0.5, -0.5},
		{0.5, 0.5, -0.5},
		{0.5, 0.5, 0.5},
	}
	for i, want := range wantRight {
		if m.Positions[i] != want {
			t.Errorf("Positions[%d] = %v, want %v", i, m.Positions[i], want)
		}
	}

	wantIndices := []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	for i, want := range wantIndices {
		if m.Indices[i] != want {
			t.Errorf("Indices[%d] = %d, want %d", i, m.Indices[i], want)
		}
	}
}

func TestNewCubeTrianglesStayInFace(t *testing.T) {
	m := NewCube(1)

	for tri := 0; tri < m.TriangleCount(); tri++ {
		face := tri / 2
		for _, idx := range m.Indices[tri*3 : tri*3+3] {
			if int(idx)/VerticesPerFace != face {
				t.Errorf("triangle %d references vertex %d outside face %d", tri, idx, face)
			}
		}
	}
}

func TestNewCubeWindingFacesOutward(t *testing.T) {
	m := NewCube(1)

	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := m.Positions[m.Indices[tri*3]]
		b := m.Positions[m.Indices[tri*3+1]]
		c := m.Positions[m.Indices[tri*3+2]]

		cross := b.Sub(a).Cross(c.Sub(a))
		n := m.Normals[m.Indices[tri*3]]
		if cross.Dot(n) <= 0 {
			t.Errorf("triangle %d winds away from its normal %v", tri, n)
		}
	}
}

func TestNewCubeSize(t *testing.T) {
	m := NewCube(4)
	for i, p := range m.Positions {
		for axis := 0; axis < 3; axis++ {
			if p[axis] != 2 && p[axis] != -2 {
				t.Errorf("Positions[%d] = %v, want corners at ±2", i, p)
			}
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Mesh)
	}{
		{"missing normal", func(m *Mesh) { m.Normals = m.Normals[:23] }},
		{"partial face", func(m *Mesh) {
			m.Positions = m.Positions[:22]
			m.Normals = m.Normals[:22]
		}},
		{"missing index", func(m *Mesh) { m.Indices = m.Indices[:35] }},
		{"scaled normal", func(m *Mesh) { m.Normals[5] = m.Normals[5].Mul(2) }},
		{"mixed normals", func(m *Mesh) { m.Normals[1] = mgl32.Vec3{0, 1, 0} }},
		{"cross-face triangle", func(m *Mesh) { m.Indices[2] = 7 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCube(1)
			tt.mutate(m)
			if err := m.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	want := []string{"right", "left", "top", "bottom", "front", "back"}
	for i, d := range Directions {
		if got := d.String(); got != want[i] {
			t.Errorf("Directions[%d].String() = %q, want %q", i, got, want[i])
		}
	}
	if got := Direction(9).String(); got != "Direction(9)" {
		t.Errorf("Direction(9).String() = %q", got)
	}
}
