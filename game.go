package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spritemarker/assets"
	"github.com/milk9111/spritemarker/config"
	"github.com/milk9111/spritemarker/picker"
	"github.com/milk9111/spritemarker/watch"
	"github.com/sirupsen/logrus"
)

const statusBarHeight = 28

// Game adapts an editor to the ebiten loop.
type Game struct {
	ed    *editor
	files picker.Selection
	cfg   config.Config

	sheet   *ebiten.Image
	face    text.Face
	status  *statusBar
	watcher *watch.Watcher
}

func NewGame(ed *editor, files picker.Selection, sheet *ebiten.Image, face text.Face, cfg config.Config) *Game {
	g := &Game{
		ed:     ed,
		files:  files,
		cfg:    cfg,
		sheet:  sheet,
		face:   face,
		status: newStatusBar(face, statusBarHeight),
	}
	if cfg.Watch {
		w, err := watch.New(watch.DefaultDebounce, files.Image)
		if err != nil {
			logrus.WithError(err).WithField("path", files.Image).Warn("image hot-reload disabled")
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) Update() error {
	g.ed.handle(pollInput(), 1/float32(ebiten.TPS()))
	g.pollWatcher()
	g.status.Refresh(g.files.Meta, g.ed.ctrl)
	g.status.ui.Update()
	return nil
}

// pollWatcher reloads the sheet image after it changes on disk.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		img, err := assets.LoadImage(path)
		if err != nil {
			// Exporters can leave a partial file behind; keep the old image.
			logrus.WithError(err).WithField("path", path).Warn("reload sheet image")
			return
		}
		g.sheet = img
		logrus.WithField("path", path).Info("reloaded sheet image")
		g.ed.notice.Show("Reloaded image", false)
	case err, ok := <-g.watcher.Errors:
		if ok {
			logrus.WithError(err).Warn("image watcher")
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	drawFrames(screen, g.sheet, g.face, g.ed.ctrl)
	drawPanel(screen, g.face, g.ed.ctrl.UI())
	drawNotice(screen, g.face, &g.ed.notice)
	g.status.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
