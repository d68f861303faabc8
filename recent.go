package main

import (
	"encoding/json"
	"fmt"

	"github.com/milk9111/spritemarker/picker"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

const (
	appName   = "spritemarker"
	recentKey = "recent"
	maxRecent = 8
)

// itemStore is the part of gdata.Manager the recent list uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// recentFiles remembers the sheets opened most recently, newest first.
type recentFiles struct {
	store itemStore
}

func openRecentFiles() (*recentFiles, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("recent: open store: %w", err)
	}
	return &recentFiles{store: m}, nil
}

func (r *recentFiles) List() ([]picker.Selection, error) {
	data, err := r.store.LoadItem(recentKey)
	if err != nil {
		return nil, fmt.Errorf("recent: load: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var list []picker.Selection
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("recent: parse: %w", err)
	}
	return list, nil
}

// Last is the most recently opened sheet.
func (r *recentFiles) Last() (picker.Selection, bool) {
	list, err := r.List()
	if err != nil {
		logrus.WithError(err).Warn("recent files unavailable")
		return picker.Selection{}, false
	}
	if len(list) == 0 {
		return picker.Selection{}, false
	}
	return list[0], true
}

// Push moves sel to the front of the list.
func (r *recentFiles) Push(sel picker.Selection) error {
	list, err := r.List()
	if err != nil {
		// A corrupt list is replaced rather than blocking the launch.
		logrus.WithError(err).Warn("discarding recent files")
		list = nil
	}
	out := make([]picker.Selection, 0, len(list)+1)
	out = append(out, sel)
	for _, s := range list {
		if s != sel && len(out) < maxRecent {
			out = append(out, s)
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("recent: marshal: %w", err)
	}
	if err := r.store.SaveItem(recentKey, data); err != nil {
		return fmt.Errorf("recent: save: %w", err)
	}
	return nil
}
