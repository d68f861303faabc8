// Package atlas reads texture-packer style sprite sheet descriptions.
package atlas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/milk9111/spritemarker/geom"
)

// Frame is one named sub-rectangle of the sheet. Rotated and Trimmed are
// carried through but never interpreted.
type Frame struct {
	Name             string     `json:"filename"`
	Frame            geom.Rect  `json:"frame"`
	Rotated          bool       `json:"rotated"`
	Trimmed          bool       `json:"trimmed"`
	SpriteSourceSize geom.Rect  `json:"spriteSourceSize"`
	SourceSize       geom.Size  `json:"sourceSize"`
	Pivot            geom.Point `json:"pivot"`
}

// Meta holds the sheet-wide metadata block.
type Meta struct {
	App     string    `json:"app"`
	Version string    `json:"version"`
	Image   string    `json:"image"`
	Format  string    `json:"format"`
	Size    geom.Size `json:"size"`
	Scale   string    `json:"scale"`
}

// Sheet is an immutable, ordered view of a parsed atlas.
type Sheet struct {
	Frames []Frame
	Meta   Meta
}

type jsonSheet struct {
	Frames json.RawMessage `json:"frames"`
	Meta   json.RawMessage `json:"meta"`
}

// Load reads and parses the atlas at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: read %s: %w", path, err)
	}
	sheet, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("atlas: %s: %w", path, err)
	}
	return sheet, nil
}

// Parse decodes atlas JSON. Both the array form ("frames": [...], order kept)
// and the hash form ("frames": {"name": {...}}, ordered by name) are accepted.
func Parse(data []byte) (*Sheet, error) {
	var probe jsonSheet
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("atlas: parse: %w", err)
	}
	if len(probe.Frames) == 0 {
		return nil, fmt.Errorf("atlas: missing \"frames\"")
	}
	if len(probe.Meta) == 0 {
		return nil, fmt.Errorf("atlas: missing \"meta\"")
	}

	sheet := &Sheet{}
	if err := json.Unmarshal(probe.Meta, &sheet.Meta); err != nil {
		return nil, fmt.Errorf("atlas: parse meta: %w", err)
	}
	if sheet.Meta.Size.W <= 0 || sheet.Meta.Size.H <= 0 {
		return nil, fmt.Errorf("atlas: meta size %gx%g must be positive", sheet.Meta.Size.W, sheet.Meta.Size.H)
	}

	frames, err := parseFrames(probe.Frames)
	if err != nil {
		return nil, err
	}
	sheet.Frames = frames

	for i, f := range sheet.Frames {
		if !sheet.inBounds(f.Frame) {
			return nil, fmt.Errorf("atlas: frame %d (%q) %+v outside sheet %gx%g", i, f.Name, f.Frame, sheet.Meta.Size.W, sheet.Meta.Size.H)
		}
	}
	return sheet, nil
}

func parseFrames(raw json.RawMessage) ([]Frame, error) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		var frames []Frame
		if err := json.Unmarshal(trimmed, &frames); err != nil {
			return nil, fmt.Errorf("atlas: parse frames: %w", err)
		}
		return frames, nil
	case len(trimmed) > 0 && trimmed[0] == '{':
		var byName map[string]Frame
		if err := json.Unmarshal(trimmed, &byName); err != nil {
			return nil, fmt.Errorf("atlas: parse frames: %w", err)
		}
		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		sort.Strings(names)
		frames := make([]Frame, 0, len(names))
		for _, name := range names {
			f := byName[name]
			f.Name = name
			frames = append(frames, f)
		}
		return frames, nil
	default:
		return nil, fmt.Errorf("atlas: \"frames\" must be an array or an object")
	}
}

func (s *Sheet) inBounds(r geom.Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.W >= 0 && r.H >= 0 &&
		r.X+r.W <= s.Meta.Size.W && r.Y+r.H <= s.Meta.Size.H
}

// Len returns the number of frames.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// UV returns frame i normalized by the sheet size.
func (s *Sheet) UV(i int) geom.Rect {
	f := s.Frames[i].Frame
	w, h := s.Meta.Size.W, s.Meta.Size.H
	return geom.Rect{X: f.X / w, Y: f.Y / h, W: f.W / w, H: f.H / h}
}
