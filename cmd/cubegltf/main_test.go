package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestParseColor(t *testing.T) {
	got, err := parseColor("0.8,0.3,0.1")
	if err != nil {
		t.Fatalf("parseColor() error = %v", err)
	}
	if want := (mgl32.Vec3{0.8, 0.3, 0.1}); got != want {
		t.Errorf("parseColor() = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "red", "1,2"} {
		if _, err := parseColor(bad); err == nil {
			t.Errorf("parseColor(%q) error = nil, want error", bad)
		}
	}
}
