// Package picker turns file-selection results into the atlas and image pair
// a session is launched with.
package picker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	MetaExt  = ".json"
	ImageExt = ".png"
)

var (
	ErrMissingMeta       = errors.New("picker: no atlas file selected")
	ErrMissingImage      = errors.New("picker: no image file selected")
	ErrAmbiguous         = errors.New("picker: more than one candidate")
	ErrDialogUnavailable = errors.New("picker: native file dialog unavailable; build with -tags dialog to enable")
)

// Selection is the launch input of a session.
type Selection struct {
	Meta  string `json:"meta"`
	Image string `json:"image"`
}

func hasExt(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

// Select picks exactly one metadata path and one image path out of paths.
// Paths with other extensions are ignored.
func Select(paths []string, metaExt, imageExt string) (Selection, error) {
	var metas, images []string
	for _, p := range paths {
		switch {
		case hasExt(p, metaExt):
			metas = append(metas, p)
		case hasExt(p, imageExt):
			images = append(images, p)
		}
	}

	var sel Selection
	switch len(metas) {
	case 0:
		return sel, ErrMissingMeta
	case 1:
		sel.Meta = metas[0]
	default:
		return sel, fmt.Errorf("%w: atlas files %s", ErrAmbiguous, strings.Join(metas, ", "))
	}
	switch len(images) {
	case 0:
		return sel, ErrMissingImage
	case 1:
		sel.Image = images[0]
	default:
		return sel, fmt.Errorf("%w: image files %s", ErrAmbiguous, strings.Join(images, ", "))
	}
	return sel, nil
}

// ListCandidates walks dir for atlas and image files. Sidecar files written
// by this tool are skipped.
func ListCandidates(dir string) ([]string, error) {
	var out []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		name := info.Name()
		if hasExt(name, MetaExt) && strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), "-marked") {
			return nil
		}
		if hasExt(name, MetaExt) || hasExt(name, ImageExt) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("picker: scan %s: %w", dir, err)
	}
	sort.Strings(out)
	return out, nil
}

// ScanDir selects the pair in dir. When several files are present, a single
// atlas and image sharing a base name win.
func ScanDir(dir string) (Selection, error) {
	paths, err := ListCandidates(dir)
	if err != nil {
		return Selection{}, err
	}
	if sel, err := Select(paths, MetaExt, ImageExt); err == nil || !errors.Is(err, ErrAmbiguous) {
		return sel, err
	}

	var pairs []Selection
	byStem := make(map[string][]string)
	for _, p := range paths {
		stem := strings.TrimSuffix(p, filepath.Ext(p))
		byStem[stem] = append(byStem[stem], p)
	}
	for _, group := range byStem {
		if sel, err := Select(group, MetaExt, ImageExt); err == nil {
			pairs = append(pairs, sel)
		}
	}
	if len(pairs) != 1 {
		return Selection{}, fmt.Errorf("%w: %d atlas/image pairs in %s", ErrAmbiguous, len(pairs), dir)
	}
	return pairs[0], nil
}

// Open asks the user for the atlas and then the image with the native
// dialog and validates the result.
func Open() (Selection, error) {
	paths, err := openDialog()
	if err != nil {
		return Selection{}, err
	}
	return Select(paths, MetaExt, ImageExt)
}
