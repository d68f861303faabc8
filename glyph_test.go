package main

import (
	"testing"

	"github.com/milk9111/spritemarker/geom"
)

func TestGlyphRotation(t *testing.T) {
	q := float32(glyphThickness)
	tests := []struct {
		name     string
		glyph    string
		rotation float64
		want     []geom.Rect
	}{
		{"edge_top", "edge", 0, []geom.Rect{geom.NewRect(0, 0, 1, q)}},
		{"edge_right", "edge", 90, []geom.Rect{geom.NewRect(1-q, 0, q, 1)}},
		{"edge_bottom", "edge", 180, []geom.Rect{geom.NewRect(0, 1-q, 1, q)}},
		{"edge_left", "edge", 270, []geom.Rect{geom.NewRect(0, 0, q, 1)}},
		{"edge_negative", "edge", -90, []geom.Rect{geom.NewRect(0, 0, q, 1)}},
		{"inner_bottom_right", "inner", 180, []geom.Rect{geom.NewRect(1-q, 1-q, q, q)}},
		{"fill_ignores_rotation", "fill", 90, []geom.Rect{geom.NewRect(q, q, 1-2*q, 1-2*q)}},
		{"corner_top_right", "corner", 90, []geom.Rect{geom.NewRect(1-q, 0, q, 1), geom.NewRect(0, 0, 1-q, q)}},
		{"unknown", "star", 0, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := glyphParts(tc.glyph, tc.rotation)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("part %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestPlaceGlyph(t *testing.T) {
	cell := geom.NewRect(100, 200, 64, 64)
	got := placeGlyph([]geom.Rect{geom.NewRect(0, 0, 1, 0.25)}, cell)
	if want := geom.NewRect(100, 200, 64, 16); got[0] != want {
		t.Fatalf("got %+v, want %+v", got[0], want)
	}
}
