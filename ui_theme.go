package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	colorBackground   = color.RGBA{24, 24, 28, 255}
	colorCell         = color.RGBA{36, 36, 42, 255}
	colorLabel        = color.RGBA{200, 200, 200, 255}
	colorHover        = color.RGBA{70, 140, 255, 255}
	colorSelected     = color.White
	colorPanel        = color.RGBA{40, 40, 40, 235}
	colorButtonIdle   = color.RGBA{90, 90, 96, 255}
	colorButtonActive = color.RGBA{60, 170, 90, 255}
	colorGlyphIdle    = color.RGBA{130, 130, 136, 255}
	colorGlyphActive  = color.RGBA{120, 230, 140, 255}
	colorStatusBar    = color.RGBA{16, 16, 18, 240}
	colorError        = color.RGBA{255, 96, 96, 255}
	colorOK           = color.RGBA{140, 230, 150, 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newMarkerTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(colorStatusBar),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(colorButtonIdle),
				Hover:   solidNineSlice(colorHover),
				Pressed: solidNineSlice(colorButtonActive),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: colorLabel,
			},
		},
	}
}
