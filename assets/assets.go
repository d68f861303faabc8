// Package assets decodes sheet images from disk and provides the UI font.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DecodeImage reads and decodes the image at path.
func DecodeImage(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadImage decodes the image at path into a GPU image.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// ImagePathFor resolves the image an atlas names in its meta block. Relative
// names are relative to the atlas file.
func ImagePathFor(metaPath, image string) string {
	if image == "" {
		return ""
	}
	s := filepath.FromSlash(image)
	if filepath.IsAbs(s) {
		return s
	}
	return filepath.Join(filepath.Dir(metaPath), strings.TrimPrefix(s, "."+string(filepath.Separator)))
}

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error
)

// Face returns the UI font at size.
func Face(size float64) (text.Face, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if fontErr != nil {
		return nil, fmt.Errorf("assets: load font: %w", fontErr)
	}
	return &text.GoTextFace{Source: fontSource, Size: size}, nil
}
