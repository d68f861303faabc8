package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/spritemarker/geom"
	"github.com/milk9111/spritemarker/panel"
	"github.com/milk9111/spritemarker/session"
)

const (
	outlineWidth = 2
	labelGap     = 4
	panelPadding = 12
)

func fillRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.FillRect(dst, r.X, r.Y, r.W, r.H, clr, false)
}

func strokeRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.StrokeRect(dst, r.X, r.Y, r.W, r.H, outlineWidth, clr, false)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawCenteredText(dst *ebiten.Image, s string, face text.Face, r geom.Rect, clr color.Color) {
	w, h := text.Measure(s, face, 0)
	c := geom.Center(r)
	drawText(dst, s, face, float64(c.X)-w/2, float64(c.Y)-h/2, clr)
}

// visible reports whether r is at least partly on a screen of size w x h.
func visible(r geom.Rect, w, h int) bool {
	return r.Intersects(geom.NewRect(0, 0, float32(w), float32(h)))
}

// drawFrames draws every on-screen frame scaled into its grid cell, with its
// name below.
func drawFrames(dst, sheet *ebiten.Image, face text.Face, ctrl *session.Controller) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	layout := ctrl.Layout()
	for _, p := range ctrl.Placements() {
		cell := geom.NewRect(p.Rect.X, p.Rect.Y, layout.CellFit, layout.CellFit)
		if !visible(cell, w, h) {
			continue
		}
		fillRect(dst, cell, colorCell)

		src := ctrl.Frame(p.Index).SourceRect
		if sheet != nil {
			sub := sheet.SubImage(image.Rect(
				int(src.X), int(src.Y),
				int(src.X+src.W), int(src.Y+src.H),
			)).(*ebiten.Image)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(p.Scale), float64(p.Scale))
			op.GeoM.Translate(float64(p.Rect.X), float64(p.Rect.Y))
			op.Filter = ebiten.FilterNearest
			dst.DrawImage(sub, op)
		}

		drawText(dst, ctrl.Frame(p.Index).Name, face,
			float64(cell.X), float64(cell.Y+cell.H+labelGap), colorLabel)
	}

	if sel, ok := ctrl.Hovered(); ok {
		strokeRect(dst, ctrl.DisplayRect(sel.Rect), colorHover)
	}
	if sel, ok := ctrl.Selected(); ok {
		strokeRect(dst, ctrl.DisplayRect(sel.Rect), colorSelected)
	}
}

// panelBounds is the box enclosing every control of ui, padded.
func panelBounds(ui *panel.AssetTypeUI) geom.Rect {
	controls := append(append([]panel.Control(nil), ui.Buttons()...), ui.Panel().Controls()...)
	if len(controls) == 0 {
		return geom.Rect{}
	}
	minX, minY := controls[0].Rect.Left(), controls[0].Rect.Top()
	maxX, maxY := controls[0].Rect.Right(), controls[0].Rect.Bottom()
	for _, c := range controls[1:] {
		minX = min(minX, c.Rect.Left())
		minY = min(minY, c.Rect.Top())
		maxX = max(maxX, c.Rect.Right())
		maxY = max(maxY, c.Rect.Bottom())
	}
	return geom.NewRect(minX-panelPadding, minY-panelPadding, maxX-minX+2*panelPadding, maxY-minY+2*panelPadding)
}

func drawButton(dst *ebiten.Image, face text.Face, c panel.Control, active bool) {
	clr := colorButtonIdle
	if active {
		clr = colorButtonActive
	}
	fillRect(dst, c.Rect, clr)
	drawCenteredText(dst, c.Label, face, c.Rect, colorSelected)
}

func drawSquare(dst *ebiten.Image, c panel.Control, active bool) {
	fillRect(dst, c.Rect, colorCell)
	clr := colorGlyphIdle
	if active {
		clr = colorGlyphActive
	}
	for _, part := range placeGlyph(glyphParts(c.Glyph, c.Rotation), c.Rect) {
		fillRect(dst, part, clr)
	}
}

// drawPanel draws the edit panel of the selected frame, if any.
func drawPanel(dst *ebiten.Image, face text.Face, ui *panel.AssetTypeUI) {
	if ui == nil {
		return
	}
	fillRect(dst, panelBounds(ui), colorPanel)

	for _, c := range ui.Buttons() {
		drawButton(dst, face, c, ui.Active(c.ID))
	}
	for _, c := range ui.Panel().Controls() {
		if c.ID.Kind == panel.ControlSquare {
			drawSquare(dst, c, ui.Active(c.ID))
			continue
		}
		drawButton(dst, face, c, ui.Active(c.ID))
	}

	if r, ok := ui.Hovered(); ok {
		strokeRect(dst, r, colorHover)
	}
}

// drawNotice draws n fading at the top right of the screen.
func drawNotice(dst *ebiten.Image, face text.Face, n *notice) {
	if !n.Visible() {
		return
	}
	clr := colorOK
	if n.isErr {
		clr = colorError
	}
	w, _ := text.Measure(n.text, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(dst.Bounds().Dx())-w-16, 16)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(n.alpha)
	text.Draw(dst, n.text, face, op)
}
