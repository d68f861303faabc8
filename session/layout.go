package session

import "github.com/milk9111/spritemarker/geom"

// Layout fixes where frames and the panel are drawn.
type Layout struct {
	// Origin is the top-left of cell (0, 0) at zero scroll.
	Origin geom.Point
	// Pitch is the distance between neighbouring cells on both axes.
	Pitch float32
	// CellFit is the size the larger side of each frame is scaled to.
	CellFit     float32
	Columns     int
	ScrollStep  float32
	PanelOrigin geom.Point
}

func DefaultLayout() Layout {
	return Layout{
		Origin:      geom.Point{X: 40, Y: 60},
		Pitch:       400,
		CellFit:     380,
		Columns:     3,
		ScrollStep:  30,
		PanelOrigin: geom.Point{X: 1260, Y: 200},
	}
}

// Placement is where one frame is drawn this frame.
type Placement struct {
	Index int
	Col   int
	Row   int
	// Rect is the on-screen rectangle, scroll applied.
	Rect  geom.Rect
	Scale float32
}

// Cell returns the grid position of frame index.
func (l Layout) Cell(index int) (col, row int) {
	cols := l.Columns
	if cols <= 0 {
		cols = 1
	}
	return index % cols, index / cols
}

// Scale is the uniform factor fitting a w x h frame into CellFit.
func (l Layout) Scale(w, h float32) float32 {
	m := max(w, h)
	if m <= 0 {
		return 0
	}
	return l.CellFit / m
}

// contentRect is the frame's rectangle at zero scroll.
func (l Layout) contentRect(index int, src geom.Rect) (geom.Rect, float32) {
	col, row := l.Cell(index)
	scale := l.Scale(src.W, src.H)
	return geom.NewRect(
		l.Origin.X+float32(col)*l.Pitch,
		l.Origin.Y+float32(row)*l.Pitch,
		src.W*scale,
		src.H*scale,
	), scale
}
