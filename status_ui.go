package main

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spritemarker/session"
)

// statusBar is the strip along the bottom of the window showing the open
// sheet and what is being edited.
type statusBar struct {
	ui    *ebitenui.UI
	sheet *widget.Text
	state *widget.Text
}

func newStatusBar(face text.Face, height int) *statusBar {
	var fontFace = face
	labelColor := color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}

	sheet := widget.NewText(
		widget.TextOpts.Text("", &fontFace, labelColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	state := widget.NewText(
		widget.TextOpts.Text("", &fontFace, labelColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(colorStatusBar)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)
	bar.AddChild(sheet)
	bar.AddChild(state)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(bar)

	ui := &ebitenui.UI{Container: root}
	ui.PrimaryTheme = newMarkerTheme(&fontFace)
	return &statusBar{ui: ui, sheet: sheet, state: state}
}

func (s *statusBar) Refresh(metaPath string, ctrl *session.Controller) {
	s.sheet.Label = fmt.Sprintf("%s  (%d frames)", filepath.Base(metaPath), ctrl.Len())
	s.state.Label = stateLine(ctrl)
}

// stateLine describes the session state for the status bar.
func stateLine(ctrl *session.Controller) string {
	sel, ok := ctrl.Selected()
	if !ok {
		return "Browsing  |  click a frame to edit, Ctrl+S to save"
	}
	line := fmt.Sprintf("Editing #%d %s", sel.Index, ctrl.Frame(sel.Index).Name)
	if tag, ok := ctrl.UI().CurrentTag(); ok {
		line += " as " + tag.String()
	}
	return line + "  |  Esc to commit"
}
