package marker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/spritemarker/atlas"
	"github.com/milk9111/spritemarker/geom"
	"github.com/sirupsen/logrus"
)

var (
	ErrIndexMismatch = errors.New("marker: record index does not match its position")
	ErrFrameCount    = errors.New("marker: record count does not match atlas frame count")
)

const sidecarSuffix = "-marked"

// SidecarPath maps <dir>/<name>.<ext> to <dir>/<name>-marked.<ext>.
func SidecarPath(metaPath string) string {
	dir, base := filepath.Split(metaPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return dir + name + sidecarSuffix + ext
}

// Decode strictly parses a serialized collection.
func Decode(data []byte) (Collection, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records []recordJSON
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("marker: decode: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("marker: decode: trailing data after collection")
	}
	if records == nil {
		return nil, fmt.Errorf("marker: decode: collection is null")
	}
	c := make(Collection, len(records))
	for i, r := range records {
		sd, err := r.spriteData()
		if err != nil {
			return nil, fmt.Errorf("marker: decode: record %d: %w", i, err)
		}
		if sd.Index != i {
			return nil, fmt.Errorf("%w: record %d has index %d", ErrIndexMismatch, i, sd.Index)
		}
		c[i] = sd
	}
	return c, nil
}

// recordJSON is the wire form of SpriteData. Every field is required, so a
// nil pointer after decoding is a missing key.
type recordJSON struct {
	OnScreenRect *rectJSON `json:"onScreenRect"`
	SourceRect   *rectJSON `json:"sourceRect"`
	Tag          *Tag      `json:"tag"`
	Name         *string   `json:"name"`
	Index        *int      `json:"index"`
}

type rectJSON struct {
	X *float32 `json:"x"`
	Y *float32 `json:"y"`
	W *float32 `json:"w"`
	H *float32 `json:"h"`
}

func (r *rectJSON) rect(field string) (geom.Rect, error) {
	if r == nil {
		return geom.Rect{}, fmt.Errorf("missing %s", field)
	}
	if r.X == nil || r.Y == nil || r.W == nil || r.H == nil {
		return geom.Rect{}, fmt.Errorf("%s needs x, y, w and h", field)
	}
	return geom.NewRect(*r.X, *r.Y, *r.W, *r.H), nil
}

func (r recordJSON) spriteData() (SpriteData, error) {
	onScreen, err := r.OnScreenRect.rect("onScreenRect")
	if err != nil {
		return SpriteData{}, err
	}
	source, err := r.SourceRect.rect("sourceRect")
	if err != nil {
		return SpriteData{}, err
	}
	switch {
	case r.Tag == nil:
		return SpriteData{}, errors.New("missing tag")
	case r.Name == nil:
		return SpriteData{}, errors.New("missing name")
	case r.Index == nil:
		return SpriteData{}, errors.New("missing index")
	}
	return SpriteData{
		OnScreenRect: onScreen,
		SourceRect:   source,
		Tag:          *r.Tag,
		Name:         *r.Name,
		Index:        *r.Index,
	}, nil
}

// Load reads the sidecar at path.
func Load(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("marker: read %s: %w", path, err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("marker: %s: %w", path, err)
	}
	return c, nil
}

// LoadOrDerive returns the saved collection at path when it is valid for
// sheet, or freshly derived tags otherwise. The bool reports whether the
// saved file was used. A missing sidecar is the normal first-run state and is
// not reported as an error.
func LoadOrDerive(path string, sheet *atlas.Sheet) (Collection, bool) {
	c, err := Load(path)
	if err == nil && len(c) != sheet.Len() {
		err = fmt.Errorf("%w: %d records, %d frames", ErrFrameCount, len(c), sheet.Len())
	}
	if err != nil {
		logrus.WithField("path", path).WithError(err).Debug("sidecar unavailable, deriving tags from atlas")
		return DeriveInitialTags(sheet), false
	}
	return c, true
}

// Save writes c to path as indented JSON, replacing any previous content.
func Save(c Collection, path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marker: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("marker: save %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("marker: save %s: %w", path, err)
	}
	return nil
}
