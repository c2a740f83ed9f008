package geometry

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Document builds a glTF 2.0 document holding mesh as a single node with a
// flat-colored PBR material.
func Document(name string, mesh *Mesh, color mgl32.Vec3) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(mesh.Positions))
	for i, p := range mesh.Positions {
		positions[i] = [3]float32(p)
	}
	normals := make([][3]float32, len(mesh.Normals))
	for i, n := range mesh.Normals {
		normals[i] = [3]float32(n)
	}

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: name + "-solid",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(color[0]), float64(color[1]), float64(color[2]), 1},
		},
	})

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, mesh.Indices)),
			Attributes: map[string]int{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			},
			Material: gltf.Index(len(doc.Materials) - 1),
		}},
	})

	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	return doc
}

// WriteGLTF encodes mesh to w, as a .glb container when binary is set and as
// a .gltf JSON file with an embedded base64 buffer otherwise.
func WriteGLTF(w io.Writer, name string, mesh *Mesh, color mgl32.Vec3, binary bool) error {
	if err := mesh.Validate(); err != nil {
		return fmt.Errorf("invalid mesh %s: %w", name, err)
	}

	doc := Document(name, mesh, color)
	if !binary {
		for _, b := range doc.Buffers {
			b.EmbeddedResource()
		}
	}

	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return nil
}
