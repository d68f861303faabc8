// Package session drives frame selection and tag editing for one sprite
// sheet.
package session

import (
	"errors"
	"fmt"

	"github.com/milk9111/spritemarker/geom"
	"github.com/milk9111/spritemarker/marker"
	"github.com/milk9111/spritemarker/panel"
	"github.com/sirupsen/logrus"
)

type State int

const (
	StateBrowsing State = iota
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "Browsing"
	case StateEditing:
		return "Editing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Selection is a frame index and its rectangle at zero scroll.
type Selection struct {
	Index int
	Rect  geom.Rect
}

// Controller owns the tag collection of one sheet and the editing state.
// It is driven from a single goroutine.
type Controller struct {
	frames  marker.Collection
	sidecar string
	layout  Layout

	selected *Selection
	hovered  *Selection
	scroll   float32
	ui       *panel.AssetTypeUI
	onSave   func(path string, err error)
}

// New starts browsing frames, saving to sidecar.
func New(frames marker.Collection, sidecar string, layout Layout) *Controller {
	return &Controller{
		frames:  frames,
		sidecar: sidecar,
		layout:  layout,
	}
}

func (c *Controller) State() State {
	if c.selected != nil {
		return StateEditing
	}
	return StateBrowsing
}

func (c *Controller) Layout() Layout      { return c.layout }
func (c *Controller) SidecarPath() string { return c.sidecar }
func (c *Controller) Scroll() float32     { return c.scroll }
func (c *Controller) Len() int            { return len(c.frames) }

// UI is the open panel, nil while browsing.
func (c *Controller) UI() *panel.AssetTypeUI { return c.ui }

// Frames returns a copy of the collection.
func (c *Controller) Frames() marker.Collection { return c.frames.Clone() }

func (c *Controller) Frame(i int) marker.SpriteData { return c.frames[i] }

func (c *Controller) Selected() (Selection, bool) {
	if c.selected == nil {
		return Selection{}, false
	}
	return *c.selected, true
}

func (c *Controller) Hovered() (Selection, bool) {
	if c.hovered == nil {
		return Selection{}, false
	}
	return *c.hovered, true
}

// DisplayRect applies the current scroll to a zero-scroll rectangle.
func (c *Controller) DisplayRect(r geom.Rect) geom.Rect {
	return geom.Offset(r, geom.Point{Y: c.scroll})
}

// Placements lays out every frame for drawing.
func (c *Controller) Placements() []Placement {
	out := make([]Placement, len(c.frames))
	for i, sd := range c.frames {
		r, scale := c.layout.contentRect(sd.Index, sd.SourceRect)
		col, row := c.layout.Cell(sd.Index)
		out[i] = Placement{
			Index: sd.Index,
			Col:   col,
			Row:   row,
			Rect:  c.DisplayRect(r),
			Scale: scale,
		}
	}
	return out
}

// FrameAt hit-tests the grid at the current scroll.
func (c *Controller) FrameAt(p geom.Point) (Selection, bool) {
	for _, sd := range c.frames {
		r, _ := c.layout.contentRect(sd.Index, sd.SourceRect)
		if geom.ContainsPoint(c.DisplayRect(r), p) {
			return Selection{Index: sd.Index, Rect: r}, true
		}
	}
	return Selection{}, false
}

// Hover updates the hovered frame, or the panel hover when no frame is
// under p.
func (c *Controller) Hover(p geom.Point) {
	if sel, ok := c.FrameAt(p); ok {
		c.hovered = &sel
		if c.ui != nil {
			c.ui.ClearHover()
		}
		return
	}
	c.hovered = nil
	if c.ui != nil {
		c.ui.Hover(p)
	}
}

// Click applies a primary-button press at p. The returned error is a failed
// save; the committed edit stays in the collection either way.
func (c *Controller) Click(p geom.Point) error {
	if c.selected == nil {
		if sel, ok := c.FrameAt(p); ok {
			c.open(sel)
		}
		return nil
	}

	if geom.ContainsPoint(c.DisplayRect(c.selected.Rect), p) {
		c.Commit()
		return nil
	}
	if sel, ok := c.FrameAt(p); ok {
		c.Commit()
		c.open(sel)
		return nil
	}

	if err := c.ui.HandleClick(p); err != nil {
		if errors.Is(err, panel.ErrSaveRequested) {
			c.Commit()
			return c.Save()
		}
		return err
	}
	return nil
}

// Wheel scrolls by dy notches. Content never moves below its top-aligned
// origin.
func (c *Controller) Wheel(dy float32) {
	c.scroll = min(0, c.scroll+dy*c.layout.ScrollStep)
}

func (c *Controller) open(sel Selection) {
	tag := c.frames[sel.Index].Tag
	c.selected = &sel
	c.ui = panel.NewAssetTypeUI(c.layout.PanelOrigin, &tag)
	logrus.WithFields(logrus.Fields{
		"index": sel.Index,
		"frame": c.frames[sel.Index].Name,
		"tag":   tag.String(),
	}).Debug("editing frame")
}

// Commit writes the panel's tag into the selected record and returns to
// browsing. Calling it with nothing selected is a bug.
func (c *Controller) Commit() {
	if c.selected == nil {
		panic("session: commit with no selection")
	}
	tag, ok := c.ui.CurrentTag()
	if !ok {
		panic(fmt.Sprintf("session: panel for frame %d has no tag", c.selected.Index))
	}
	idx := c.selected.Index
	c.frames[idx].Tag = tag
	c.selected = nil
	c.ui = nil
	logrus.WithFields(logrus.Fields{
		"index": idx,
		"frame": c.frames[idx].Name,
		"tag":   tag.String(),
	}).Debug("committed tag")
}

// Close commits the open selection, if any.
func (c *Controller) Close() bool {
	if c.selected == nil {
		return false
	}
	c.Commit()
	return true
}

// SetSaveHandler registers fn to run after every save attempt.
func (c *Controller) SetSaveHandler(fn func(path string, err error)) {
	c.onSave = fn
}

// Save persists the collection to the sidecar file.
func (c *Controller) Save() error {
	err := marker.Save(c.frames, c.sidecar)
	if err != nil {
		err = fmt.Errorf("session: %w", err)
	}
	if c.onSave != nil {
		c.onSave(c.sidecar, err)
	}
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"path":   c.sidecar,
		"frames": len(c.frames),
	}).Info("saved tags")
	return nil
}

// CommitAndSave commits any open edit, then saves.
func (c *Controller) CommitAndSave() error {
	c.Close()
	return c.Save()
}
