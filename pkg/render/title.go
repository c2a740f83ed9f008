package render

import "fmt"

// FormatTitle renders the window title for a frame rate report.
func FormatTitle(name string, fps float64) string {
	return fmt.Sprintf("%s - % 5.1f", name, fps)
}
