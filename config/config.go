// Package config holds the tunable window and layout settings of the app.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/spritemarker/geom"
	"github.com/milk9111/spritemarker/session"
	"gopkg.in/yaml.v3"
)

type PointSpec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type GridSpec struct {
	Origin  PointSpec `yaml:"origin"`
	Pitch   float32   `yaml:"pitch"`
	CellFit float32   `yaml:"cell_fit"`
	Columns int       `yaml:"columns"`
}

type Config struct {
	Window      WindowSpec `yaml:"window"`
	Grid        GridSpec   `yaml:"grid"`
	ScrollStep  float32    `yaml:"scroll_step"`
	PanelOrigin PointSpec  `yaml:"panel_origin"`

	// Watch reloads the sheet image when it changes on disk.
	Watch bool `yaml:"watch"`
}

func Default() Config {
	l := session.DefaultLayout()
	return Config{
		Window: WindowSpec{Width: 1600, Height: 1000, Title: "Sprite Marker"},
		Grid: GridSpec{
			Origin:  PointSpec{X: l.Origin.X, Y: l.Origin.Y},
			Pitch:   l.Pitch,
			CellFit: l.CellFit,
			Columns: l.Columns,
		},
		ScrollStep:  l.ScrollStep,
		PanelOrigin: PointSpec{X: l.PanelOrigin.X, Y: l.PanelOrigin.Y},
		Watch:       true,
	}
}

// Load reads a YAML file over Default. Keys missing from the file keep
// their default values.
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", filename, err)
	}
	return cfg, nil
}

// LoadOptional is Load, returning Default when filename is empty.
func LoadOptional(filename string) (Config, error) {
	if filename == "" {
		return Default(), nil
	}
	return Load(filename)
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Grid.Columns <= 0 {
		errs = append(errs, fmt.Errorf("grid columns %d must be positive", c.Grid.Columns))
	}
	if c.Grid.Pitch <= 0 || c.Grid.CellFit <= 0 {
		errs = append(errs, fmt.Errorf("grid pitch %v and cell_fit %v must be positive", c.Grid.Pitch, c.Grid.CellFit))
	}
	if c.Grid.CellFit > c.Grid.Pitch {
		errs = append(errs, fmt.Errorf("grid cell_fit %v exceeds pitch %v", c.Grid.CellFit, c.Grid.Pitch))
	}
	if c.ScrollStep <= 0 {
		errs = append(errs, fmt.Errorf("scroll_step %v must be positive", c.ScrollStep))
	}
	return errors.Join(errs...)
}

func (c Config) Layout() session.Layout {
	return session.Layout{
		Origin:      geom.Point{X: c.Grid.Origin.X, Y: c.Grid.Origin.Y},
		Pitch:       c.Grid.Pitch,
		CellFit:     c.Grid.CellFit,
		Columns:     c.Grid.Columns,
		ScrollStep:  c.ScrollStep,
		PanelOrigin: geom.Point{X: c.PanelOrigin.X, Y: c.PanelOrigin.Y},
	}
}
