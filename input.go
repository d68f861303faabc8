package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spritemarker/geom"
)

// inputFrame is the input of one tick.
type inputFrame struct {
	Cursor geom.Point
	// Held is true while the left or right button is down; hover is frozen
	// then.
	Held   bool
	Click  bool
	WheelY float32
	Escape bool
	Save   bool
	Copy   bool
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func pollInput() inputFrame {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	ctrl := ctrlPressed()
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	return inputFrame{
		Cursor: geom.Point{X: float32(mx), Y: float32(my)},
		Held:   held,
		Click:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		WheelY: float32(wy),
		Escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Save:   ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS),
		Copy:   ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC),
	}
}
