package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritemarker/assets"
	"github.com/milk9111/spritemarker/atlas"
	"github.com/milk9111/spritemarker/config"
	"github.com/milk9111/spritemarker/marker"
	"github.com/milk9111/spritemarker/picker"
	"github.com/milk9111/spritemarker/session"
	"github.com/sirupsen/logrus"
	"golang.design/x/clipboard"
)

func main() {
	metaPath := flag.String("meta", "", "texture-packer JSON atlas")
	imagePath := flag.String("image", "", "sprite sheet image (defaults to the atlas meta image)")
	dir := flag.String("dir", "", "directory to scan for an atlas and image pair")
	configPath := flag.String("config", "", "YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	logFile := flag.String("log-file", "", "also write logs to this rotated file")
	flag.Parse()

	if closer := setupLogging(*debug, *logFile); closer != nil {
		defer closer.Close()
	}

	cfg, err := config.LoadOptional(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	recent, err := openRecentFiles()
	if err != nil {
		logrus.WithError(err).Warn("recent files unavailable")
	}

	files, err := chooseFiles(*metaPath, *imagePath, *dir, recent)
	if err != nil {
		logrus.WithError(err).Fatal("choose sprite sheet")
	}

	sheet, err := atlas.Load(files.Meta)
	if err != nil {
		logrus.WithError(err).Fatal("load atlas")
	}
	if files.Image == "" {
		files.Image = assets.ImagePathFor(files.Meta, sheet.Meta.Image)
	}
	img, err := assets.LoadImage(files.Image)
	if err != nil {
		logrus.WithError(err).Fatal("load sheet image")
	}
	face, err := assets.Face(14)
	if err != nil {
		logrus.WithError(err).Fatal("load font")
	}

	sidecar := marker.SidecarPath(files.Meta)
	frames, loaded := marker.LoadOrDerive(sidecar, sheet)
	logrus.WithFields(logrus.Fields{
		"meta":    files.Meta,
		"image":   files.Image,
		"sidecar": sidecar,
		"frames":  len(frames),
		"loaded":  loaded,
	}).Info("opened sprite sheet")

	if recent != nil {
		if err := recent.Push(files); err != nil {
			logrus.WithError(err).Warn("remember sprite sheet")
		}
	}

	ctrl := session.New(frames, sidecar, cfg.Layout())
	game := NewGame(newEditor(ctrl, clipboardWriter()), files, img, face, cfg)
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		logrus.WithError(err).Fatal("run")
	}
}

// chooseFiles resolves the sheet to open: explicit flags, then a directory
// scan, then the native dialog, then the most recently opened sheet.
func chooseFiles(metaPath, imagePath, dir string, recent *recentFiles) (picker.Selection, error) {
	if metaPath != "" {
		return picker.Selection{Meta: metaPath, Image: imagePath}, nil
	}
	if dir != "" {
		return picker.ScanDir(dir)
	}
	files, err := picker.Open()
	if err == nil || !errors.Is(err, picker.ErrDialogUnavailable) {
		return files, err
	}
	if recent != nil {
		if last, ok := recent.Last(); ok {
			logrus.WithField("meta", last.Meta).Info("reopening last sprite sheet")
			return last, nil
		}
	}
	return picker.Selection{}, err
}

// clipboardWriter returns a text writer for the system clipboard, or nil
// when no clipboard is available.
func clipboardWriter() func(string) error {
	if err := clipboard.Init(); err != nil {
		logrus.WithError(err).Warn("clipboard unavailable")
		return nil
	}
	return func(s string) error {
		clipboard.Write(clipboard.FmtText, []byte(s))
		return nil
	}
}
