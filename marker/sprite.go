// Package marker holds the per-frame gameplay tags of a sprite sheet and
// their sidecar persistence.
package marker

import (
	"github.com/milk9111/spritemarker/atlas"
	"github.com/milk9111/spritemarker/geom"
)

// SpriteData is the tag record of one atlas frame.
type SpriteData struct {
	// OnScreenRect is the frame's normalized rectangle, fixed at creation.
	OnScreenRect geom.Rect `json:"onScreenRect"`
	SourceRect   geom.Rect `json:"sourceRect"`
	Tag          Tag       `json:"tag"`
	Name         string    `json:"name"`
	// Index is the position in the atlas frame list and in the collection.
	Index int `json:"index"`
}

// Collection is index-aligned with the atlas frames.
type Collection []SpriteData

// DeriveInitialTags builds one empty Ground record per atlas frame.
func DeriveInitialTags(sheet *atlas.Sheet) Collection {
	out := make(Collection, sheet.Len())
	for i, f := range sheet.Frames {
		out[i] = SpriteData{
			OnScreenRect: sheet.UV(i),
			SourceRect:   f.Frame,
			Tag:          Ground(),
			Name:         f.Name,
			Index:        i,
		}
	}
	return out
}

func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Equal compares records field by field, using Tag.Equal for tags.
func (c Collection) Equal(other Collection) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		a, b := c[i], other[i]
		if a.OnScreenRect != b.OnScreenRect || a.SourceRect != b.SourceRect ||
			a.Name != b.Name || a.Index != b.Index || !a.Tag.Equal(b.Tag) {
			return false
		}
	}
	return true
}

// Counts tallies records per tag kind.
func (c Collection) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, sd := range c {
		counts[sd.Tag.Kind]++
	}
	return counts
}
