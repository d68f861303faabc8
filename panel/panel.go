// Package panel implements the on-screen tag editor: a shell with category
// and save buttons wrapping one sub-panel that edits the tag payload.
package panel

import (
	"fmt"

	"github.com/milk9111/spritemarker/geom"
	"github.com/milk9111/spritemarker/marker"
)

// ControlKind says what a control edits.
type ControlKind uint8

const (
	ControlCategory ControlKind = iota
	ControlSave
	ControlEdge
	ControlSquare
)

// ControlID identifies a control. Only the field matching Kind is set.
type ControlID struct {
	Kind     ControlKind
	Category marker.Kind
	Edge     marker.Horizontal
	Square   marker.Square
}

// Control is one clickable rectangle in screen space.
type Control struct {
	ID       ControlID
	Rect     geom.Rect
	Label    string
	Glyph    string
	Rotation float64
}

// Kind is the panel variant.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindObject
	KindPlatform
	KindGround
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindObject:
		return "Object"
	case KindPlatform:
		return "Platform"
	case KindGround:
		return "Ground"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func kindFor(k marker.Kind) Kind {
	switch k {
	case marker.KindObject:
		return KindObject
	case marker.KindPlatform:
		return KindPlatform
	case marker.KindGround:
		return KindGround
	default:
		panic(fmt.Sprintf("panel: no panel for tag kind %d", k))
	}
}

// Panel edits the payload of one tag. It keeps its own copy of the set being
// edited; nothing is written back until the owner reads CurrentTag.
type Panel struct {
	kind     Kind
	edges    marker.EdgeSet
	marks    marker.MarkSet
	controls []Control

	hovered  geom.Rect
	hovering bool
}

// New builds the panel for tag at origin using the default layout. A nil tag
// yields the empty panel.
func New(tag *marker.Tag, origin geom.Point) *Panel {
	return NewWithLayout(DefaultLayout(), tag, origin)
}

func NewWithLayout(layout *Layout, tag *marker.Tag, origin geom.Point) *Panel {
	if tag == nil {
		return &Panel{kind: KindEmpty}
	}
	p := &Panel{kind: kindFor(tag.Kind)}
	switch p.kind {
	case KindPlatform:
		p.edges = tag.Edges
		p.controls = layout.platformControls(origin)
	case KindGround:
		p.marks = tag.Marks
		p.controls = layout.groundControls(origin)
	}
	return p
}

func (p *Panel) Kind() Kind { return p.kind }

// Controls returns the sub-controls in layout order.
func (p *Panel) Controls() []Control { return p.controls }

func (p *Panel) controlAt(pt geom.Point) (Control, bool) {
	for _, c := range p.controls {
		if geom.ContainsPoint(c.Rect, pt) {
			return c, true
		}
	}
	return Control{}, false
}

// HitTest reports the control under pt and remembers it as hovered.
func (p *Panel) HitTest(pt geom.Point) (geom.Rect, bool) {
	c, ok := p.controlAt(pt)
	p.hovered, p.hovering = c.Rect, ok
	return c.Rect, ok
}

func (p *Panel) ClearHover() {
	p.hovered, p.hovering = geom.Rect{}, false
}

func (p *Panel) Hovered() (geom.Rect, bool) {
	return p.hovered, p.hovering
}

// HandleClick toggles the set member of the control under pt, if any.
func (p *Panel) HandleClick(pt geom.Point) {
	c, ok := p.controlAt(pt)
	if !ok {
		return
	}
	switch p.kind {
	case KindPlatform:
		p.edges = p.edges.Toggle(c.ID.Edge)
	case KindGround:
		p.marks = p.marks.Toggle(c.ID.Square)
	case KindEmpty, KindObject:
	default:
		panic(fmt.Sprintf("panel: unknown panel kind %d", p.kind))
	}
}

// Active reports whether id is currently switched on.
func (p *Panel) Active(id ControlID) bool {
	switch {
	case p.kind == KindPlatform && id.Kind == ControlEdge:
		return p.edges.Has(id.Edge)
	case p.kind == KindGround && id.Kind == ControlSquare:
		return p.marks.Has(id.Square)
	default:
		return false
	}
}

// CurrentTag rebuilds the tag from the live panel state. The empty panel has
// no tag.
func (p *Panel) CurrentTag() (marker.Tag, bool) {
	switch p.kind {
	case KindEmpty:
		return marker.Tag{}, false
	case KindObject:
		return marker.Object(), true
	case KindPlatform:
		return marker.Tag{Kind: marker.KindPlatform, Edges: p.edges}, true
	case KindGround:
		return marker.Tag{Kind: marker.KindGround, Marks: p.marks}, true
	default:
		panic(fmt.Sprintf("panel: unknown panel kind %d", p.kind))
	}
}
