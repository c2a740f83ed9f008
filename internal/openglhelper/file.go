package openglhelper

import (
	"fmt"
	"io"
	"os"
)

// ReadFile returns the full contents of name and their length in bytes.
// On failure the returned length is -1 and the failure is logged with the
// offending path.
func ReadFile(name string) ([]byte, int, error) {
	f, err := os.Open(name)
	if err != nil {
		Logger().Error("cannot open file", "path", name, "error", err)
		return nil, -1, fmt.Errorf("cannot open %s: %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		Logger().Error("cannot read file", "path", name, "error", err)
		return nil, -1, fmt.Errorf("cannot read %s: %w", name, err)
	}

	return data, len(data), nil
}
