// Command cubegltf writes the renderer's cube mesh as a glTF 2.0 asset.
// It does not import the render package and builds without cgo.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cube/pkg/geometry"
)

func parseColor(s string) (mgl32.Vec3, error) {
	var c mgl32.Vec3
	if _, err := fmt.Sscanf(s, "%f,%f,%f", &c[0], &c[1], &c[2]); err != nil {
		return c, fmt.Errorf("color %q is not r,g,b: %w", s, err)
	}
	return c, nil
}

func main() {
	out := flag.String("o", "cube.glb", "Output file")
	binary := flag.Bool("binary", true, "Write a .glb container instead of .gltf JSON")
	colorFlag := flag.String("color", "0.8,0.3,0.1", "Base color as r,g,b in [0,1]")
	size := flag.Float64("size", 1, "Cube edge length")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	color, err := parseColor(*colorFlag)
	if err != nil {
		log.Error("invalid -color", "error", err)
		os.Exit(2)
	}

	mesh := geometry.NewCube(float32(*size))

	f, err := os.Create(*out)
	if err != nil {
		log.Error("failed to create output", "path", *out, "error", err)
		os.Exit(1)
	}
	if err := geometry.WriteGLTF(f, "cube", mesh, color, *binary); err != nil {
		f.Close()
		log.Error("failed to write cube", "path", *out, "error", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		log.Error("failed to close output", "path", *out, "error", err)
		os.Exit(1)
	}

	log.Info("wrote cube", "path", *out, "vertices", mesh.VertexCount(), "triangles", mesh.TriangleCount())
}
