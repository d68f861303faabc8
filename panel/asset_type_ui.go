package panel

import (
	"errors"

	"github.com/milk9111/spritemarker/geom"
	"github.com/milk9111/spritemarker/marker"
)

// ErrSaveRequested is returned by AssetTypeUI.HandleClick when the Save
// button was clicked. The owner is expected to commit and persist.
var ErrSaveRequested = errors.New("panel: save requested")

// AssetTypeUI is the panel shell: three category buttons, a Save button, and
// exactly one active sub-panel. It stores no tag data of its own.
type AssetTypeUI struct {
	layout  *Layout
	origin  geom.Point
	buttons []Control
	panel   *Panel

	hovered  geom.Rect
	hovering bool
}

// NewAssetTypeUI opens the shell at origin seeded with tag. A nil tag opens
// the empty sub-panel.
func NewAssetTypeUI(origin geom.Point, tag *marker.Tag) *AssetTypeUI {
	return NewAssetTypeUIWithLayout(DefaultLayout(), origin, tag)
}

func NewAssetTypeUIWithLayout(layout *Layout, origin geom.Point, tag *marker.Tag) *AssetTypeUI {
	return &AssetTypeUI{
		layout:  layout,
		origin:  origin,
		buttons: layout.shellControls(origin),
		panel:   NewWithLayout(layout, tag, layout.bodyOrigin(origin)),
	}
}

func (u *AssetTypeUI) Origin() geom.Point { return u.origin }

// Buttons returns the category buttons followed by the Save button.
func (u *AssetTypeUI) Buttons() []Control { return u.buttons }

func (u *AssetTypeUI) Panel() *Panel { return u.panel }

// Category returns the tag kind being edited, if any.
func (u *AssetTypeUI) Category() (marker.Kind, bool) {
	tag, ok := u.panel.CurrentTag()
	return tag.Kind, ok
}

func (u *AssetTypeUI) buttonAt(pt geom.Point) (Control, bool) {
	for _, b := range u.buttons {
		if geom.ContainsPoint(b.Rect, pt) {
			return b, true
		}
	}
	return Control{}, false
}

// Contains reports whether pt is over any shell button or sub-panel control.
func (u *AssetTypeUI) Contains(pt geom.Point) bool {
	if _, ok := u.buttonAt(pt); ok {
		return true
	}
	_, ok := u.panel.controlAt(pt)
	return ok
}

// HandleClick switches category, requests a save, or forwards the click to
// the sub-panel. Switching category rebuilds the sub-panel from the empty
// tag of that category, dropping any toggles not yet committed.
func (u *AssetTypeUI) HandleClick(pt geom.Point) error {
	b, ok := u.buttonAt(pt)
	if !ok {
		u.panel.HandleClick(pt)
		return nil
	}
	switch b.ID.Kind {
	case ControlSave:
		return ErrSaveRequested
	case ControlCategory:
		empty := marker.Empty(b.ID.Category)
		u.panel = NewWithLayout(u.layout, &empty, u.layout.bodyOrigin(u.origin))
	}
	return nil
}

// Hover caches the rect under pt: a shell button when one is hit, otherwise
// whatever the sub-panel reports.
func (u *AssetTypeUI) Hover(pt geom.Point) (geom.Rect, bool) {
	if b, ok := u.buttonAt(pt); ok {
		u.panel.ClearHover()
		u.hovered, u.hovering = b.Rect, true
		return b.Rect, true
	}
	u.hovered, u.hovering = u.panel.HitTest(pt)
	return u.hovered, u.hovering
}

func (u *AssetTypeUI) ClearHover() {
	u.panel.ClearHover()
	u.hovered, u.hovering = geom.Rect{}, false
}

func (u *AssetTypeUI) Hovered() (geom.Rect, bool) {
	return u.hovered, u.hovering
}

// Active reports whether a control is lit: the current category button, or
// an enabled sub-panel member.
func (u *AssetTypeUI) Active(id ControlID) bool {
	if id.Kind == ControlCategory {
		k, ok := u.Category()
		return ok && k == id.Category
	}
	return u.panel.Active(id)
}

// CurrentTag is the sub-panel's tag.
func (u *AssetTypeUI) CurrentTag() (marker.Tag, bool) {
	return u.panel.CurrentTag()
}
