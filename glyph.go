package main

import (
	"math"

	"github.com/milk9111/spritemarker/geom"
)

// glyphThickness is the bar width of a ground glyph, relative to its cell.
const glyphThickness = 0.25

// glyphParts returns the unit-square rectangles of a ground glyph drawn at
// rotation degrees clockwise. Rotations snap to quarter turns.
func glyphParts(glyph string, rotation float64) []geom.Rect {
	t := float32(glyphThickness)
	var parts []geom.Rect
	switch glyph {
	case "corner":
		parts = []geom.Rect{geom.NewRect(0, 0, 1, t), geom.NewRect(0, t, t, 1-t)}
	case "edge":
		parts = []geom.Rect{geom.NewRect(0, 0, 1, t)}
	case "fill":
		parts = []geom.Rect{geom.NewRect(t, t, 1-2*t, 1-2*t)}
	case "inner":
		parts = []geom.Rect{geom.NewRect(0, 0, t, t)}
	default:
		return nil
	}

	turns := int(math.Round(rotation/90)) % 4
	if turns < 0 {
		turns += 4
	}
	for i := range parts {
		for range turns {
			parts[i] = rotateQuarter(parts[i])
		}
	}
	return parts
}

// rotateQuarter turns a rect inside the unit square 90 degrees clockwise in
// y-down space.
func rotateQuarter(r geom.Rect) geom.Rect {
	return geom.NewRect(1-r.Y-r.H, r.X, r.H, r.W)
}

// placeGlyph scales unit-square parts into cell.
func placeGlyph(parts []geom.Rect, cell geom.Rect) []geom.Rect {
	out := make([]geom.Rect, len(parts))
	for i, p := range parts {
		out[i] = geom.NewRect(cell.X+p.X*cell.W, cell.Y+p.Y*cell.H, p.W*cell.W, p.H*cell.H)
	}
	return out
}
