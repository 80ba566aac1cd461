// Package config holds viewer settings loaded from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"origamiview/internal/geom"
)

type Config struct {
	// FPS is the frame driver rate for the terminal and headless hosts.
	FPS int `toml:"fps"`

	// FrustumSize is the fixed vertical extent of the orthographic view.
	FrustumSize float64 `toml:"frustum_size"`
	Near        float64 `toml:"near"`
	Far         float64 `toml:"far"`

	CameraPosition [3]float64 `toml:"camera_position"`

	LineWidth float64 `toml:"line_width"`
	AxisWidth float64 `toml:"axis_width"`

	// ScaffoldThreshold is the point count above which a record is reported
	// as a probable scaffold strand.
	ScaffoldThreshold int `toml:"scaffold_threshold"`

	// Transform overrides the dataset's own coordinate convention when set.
	Transform *geom.Transform `toml:"transform,omitempty"`

	Controls Controls `toml:"controls"`

	Background string `toml:"background"`
	LogFile    string `toml:"log_file"`
}

// Controls tunes the orbit controller.
type Controls struct {
	RotateSpeed float64 `toml:"rotate_speed"`
	PanSpeed    float64 `toml:"pan_speed"`
	ZoomSpeed   float64 `toml:"zoom_speed"`
	Damping     float64 `toml:"damping"`
	MinZoom     float64 `toml:"min_zoom"`
	MaxZoom     float64 `toml:"max_zoom"`
}

// Default returns the stock viewer settings.
func Default() Config {
	return Config{
		FPS:               30,
		FrustumSize:       100,
		Near:              1,
		Far:               1000,
		CameraPosition:    [3]float64{50, 35, 50},
		LineWidth:         0.01,
		AxisWidth:         0.005,
		ScaffoldThreshold: 2000,
		Controls: Controls{
			RotateSpeed: 1,
			PanSpeed:    1,
			ZoomSpeed:   1,
			MinZoom:     0.05,
			MaxZoom:     64,
		},
		Background: "#000000",
		LogFile:    "origamiview.log",
	}
}

// Load reads a TOML file on top of Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return Config{}, errors.New(sme.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	case c.FrustumSize <= 0:
		return fmt.Errorf("config: frustum_size must be positive, got %g", c.FrustumSize)
	case c.Near >= c.Far:
		return fmt.Errorf("config: near (%g) must be less than far (%g)", c.Near, c.Far)
	case c.LineWidth <= 0 || c.AxisWidth <= 0:
		return errors.New("config: line widths must be positive")
	case c.ScaffoldThreshold < 0:
		return errors.New("config: scaffold_threshold must not be negative")
	case c.Controls.MinZoom <= 0 || c.Controls.MaxZoom < c.Controls.MinZoom:
		return fmt.Errorf("config: invalid zoom range [%g, %g]", c.Controls.MinZoom, c.Controls.MaxZoom)
	case c.Controls.Damping < 0 || c.Controls.Damping >= 1:
		return fmt.Errorf("config: damping must be in [0, 1), got %g", c.Controls.Damping)
	}
	return nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
