package panel

import (
	_ "embed"
	"fmt"

	"github.com/milk9111/spritemarker/geom"
	"github.com/milk9111/spritemarker/marker"
	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var layoutYAML []byte

type SizeSpec struct {
	W   float32 `yaml:"w"`
	H   float32 `yaml:"h"`
	Gap float32 `yaml:"gap"`
}

type OffsetSpec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

type CategorySpec struct {
	Kind string  `yaml:"kind"`
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
}

type SaveSpec struct {
	Label string  `yaml:"label"`
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
}

type EdgeSpec struct {
	Edge  string  `yaml:"edge"`
	Label string  `yaml:"label"`
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
}

// SquareSpec places one ground mark: the glyph drawn for it, its rotation in
// degrees, and its cell on the ground grid.
type SquareSpec struct {
	Square   string  `yaml:"square"`
	Glyph    string  `yaml:"glyph"`
	Rotation float64 `yaml:"rotation"`
	Col      float32 `yaml:"col"`
	Row      float32 `yaml:"row"`
}

type GroundSpec struct {
	Cell    float32      `yaml:"cell"`
	Gap     float32      `yaml:"gap"`
	Squares []SquareSpec `yaml:"squares"`
}

// Layout is the static placement table of every panel control.
type Layout struct {
	Button     SizeSpec       `yaml:"button"`
	Categories []CategorySpec `yaml:"categories"`
	Save       SaveSpec       `yaml:"save"`
	Body       OffsetSpec     `yaml:"body"`
	Platform   []EdgeSpec     `yaml:"platform"`
	Ground     GroundSpec     `yaml:"ground"`
}

var defaultLayout = mustParseLayout(layoutYAML)

// DefaultLayout returns the embedded layout table. Callers must not modify it.
func DefaultLayout() *Layout {
	return defaultLayout
}

func mustParseLayout(data []byte) *Layout {
	l, err := ParseLayout(data)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseLayout decodes and validates a layout table. Every category, edge
// and square must be placed exactly once.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("panel: unmarshal layout: %w", err)
	}
	if l.Button.W <= 0 || l.Button.H <= 0 {
		return nil, fmt.Errorf("panel: layout button size %gx%g must be positive", l.Button.W, l.Button.H)
	}
	if l.Ground.Cell <= 0 {
		return nil, fmt.Errorf("panel: layout ground cell %g must be positive", l.Ground.Cell)
	}

	seenKinds := map[marker.Kind]bool{}
	for _, c := range l.Categories {
		k, err := marker.ParseKind(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("panel: layout category: %w", err)
		}
		if seenKinds[k] {
			return nil, fmt.Errorf("panel: layout category %s placed twice", k)
		}
		seenKinds[k] = true
	}
	if len(seenKinds) != len(marker.Kinds) {
		return nil, fmt.Errorf("panel: layout places %d of %d categories", len(seenKinds), len(marker.Kinds))
	}

	seenEdges := map[marker.Horizontal]bool{}
	for _, e := range l.Platform {
		h, err := marker.ParseHorizontal(e.Edge)
		if err != nil {
			return nil, fmt.Errorf("panel: layout platform: %w", err)
		}
		if seenEdges[h] {
			return nil, fmt.Errorf("panel: layout edge %s placed twice", h)
		}
		seenEdges[h] = true
	}
	if len(seenEdges) != len(marker.Horizontals) {
		return nil, fmt.Errorf("panel: layout places %d of %d platform edges", len(seenEdges), len(marker.Horizontals))
	}

	seenSquares := map[marker.Square]bool{}
	for _, s := range l.Ground.Squares {
		q, err := marker.ParseSquare(s.Square)
		if err != nil {
			return nil, fmt.Errorf("panel: layout ground: %w", err)
		}
		if seenSquares[q] {
			return nil, fmt.Errorf("panel: layout square %s placed twice", q)
		}
		seenSquares[q] = true
	}
	if len(seenSquares) != len(marker.Squares) {
		return nil, fmt.Errorf("panel: layout places %d of %d ground squares", len(seenSquares), len(marker.Squares))
	}

	return &l, nil
}

func (l *Layout) buttonRect(origin geom.Point, x, y float32) geom.Rect {
	return geom.NewRect(origin.X+x, origin.Y+y, l.Button.W, l.Button.H)
}

func (l *Layout) bodyOrigin(origin geom.Point) geom.Point {
	return geom.Point{X: origin.X + l.Body.X, Y: origin.Y + l.Body.Y}
}

func (l *Layout) shellControls(origin geom.Point) []Control {
	out := make([]Control, 0, len(l.Categories)+1)
	for _, c := range l.Categories {
		k, _ := marker.ParseKind(c.Kind)
		out = append(out, Control{
			ID:    ControlID{Kind: ControlCategory, Category: k},
			Rect:  l.buttonRect(origin, c.X, c.Y),
			Label: k.String(),
		})
	}
	label := l.Save.Label
	if label == "" {
		label = "Save"
	}
	out = append(out, Control{
		ID:    ControlID{Kind: ControlSave},
		Rect:  l.buttonRect(origin, l.Save.X, l.Save.Y),
		Label: label,
	})
	return out
}

func (l *Layout) platformControls(origin geom.Point) []Control {
	out := make([]Control, 0, len(l.Platform))
	for _, e := range l.Platform {
		h, _ := marker.ParseHorizontal(e.Edge)
		label := e.Label
		if label == "" {
			label = h.String()
		}
		out = append(out, Control{
			ID:    ControlID{Kind: ControlEdge, Edge: h},
			Rect:  l.buttonRect(origin, e.X, e.Y),
			Label: label,
		})
	}
	return out
}

func (l *Layout) groundControls(origin geom.Point) []Control {
	pitch := l.Ground.Cell + l.Ground.Gap
	out := make([]Control, 0, len(l.Ground.Squares))
	for _, s := range l.Ground.Squares {
		q, _ := marker.ParseSquare(s.Square)
		out = append(out, Control{
			ID:       ControlID{Kind: ControlSquare, Square: q},
			Rect:     geom.NewRect(origin.X+s.Col*pitch, origin.Y+s.Row*pitch, l.Ground.Cell, l.Ground.Cell),
			Label:    q.String(),
			Glyph:    s.Glyph,
			Rotation: s.Rotation,
		})
	}
	return out
}
