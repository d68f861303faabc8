//go:build dialog
// +build dialog

package picker

import (
	"fmt"

	"github.com/sqweek/dialog"
)

// openDialog runs one native dialog per file; dialog.File has no
// multi-select.
func openDialog() ([]string, error) {
	meta, err := dialog.File().Filter("Atlas files", "json").Title("Select sprite atlas").Load()
	if err != nil {
		return nil, fmt.Errorf("picker: atlas dialog: %w", err)
	}
	image, err := dialog.File().Filter("Image files", "png").Title("Select sprite sheet").Load()
	if err != nil {
		return nil, fmt.Errorf("picker: image dialog: %w", err)
	}
	return []string{meta, image}, nil
}
