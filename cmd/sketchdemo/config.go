package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/transform"
)

// Config describes one export. It is read from a TOML or YAML file and
// overridden by command line flags.
type Config struct {
	Backend    string  `toml:"backend" yaml:"backend"`
	Output     string  `toml:"output" yaml:"output"`
	Width      int     `toml:"width" yaml:"width"`
	Height     int     `toml:"height" yaml:"height"`
	View       string  `toml:"view" yaml:"view"`
	Color      string  `toml:"color" yaml:"color"`
	Background string  `toml:"background" yaml:"background"`
	LineWidth  float64 `toml:"line_width" yaml:"line_width"`
	Frame      bool    `toml:"frame" yaml:"frame"`

	// Camera is used by the "orthographic" and "perspective" views.
	Camera CameraConfig `toml:"camera" yaml:"camera"`

	// DXF names the drawing file written by the DXF scripts; PDF adds a
	// PDF rendering step to them.
	DXF string `toml:"dxf" yaml:"dxf"`
	PDF string `toml:"pdf" yaml:"pdf"`
}

// CameraConfig places the camera of the camera views.
type CameraConfig struct {
	Position  []float64 `toml:"position" yaml:"position"`
	Direction []float64 `toml:"direction" yaml:"direction"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Backend:    "svg",
		Width:      800,
		Height:     600,
		View:       "xy",
		Color:      "black",
		Background: "white",
		LineWidth:  1,
		Frame:      true,
		Camera: CameraConfig{
			Position:  []float64{0, -120, 60},
			Direction: []float64{0, 2, -1},
		},
	}
}

// LoadConfig reads path over the defaults. The format is chosen by the
// file extension: .toml, .yaml or .yml. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("sketchdemo: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("sketchdemo: unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("sketchdemo: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("sketchdemo: invalid canvas size %dx%d", c.Width, c.Height)
	}
	if c.LineWidth <= 0 {
		return fmt.Errorf("sketchdemo: invalid line width %v", c.LineWidth)
	}
	if _, err := c.Transformer(); err != nil {
		return err
	}
	if _, err := sketch.ParseColor(c.Color); err != nil {
		return err
	}
	if _, err := sketch.ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// OutputPath returns Output or a default name with the backend's
// extension.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return "sketch" + extension(c.Backend)
}

// DXFPath returns the drawing file the DXF scripts save.
func (c Config) DXFPath() string {
	if c.DXF != "" {
		return c.DXF
	}
	out := c.OutputPath()
	return strings.TrimSuffix(out, filepath.Ext(out)) + ".dxf"
}

func extension(backend string) string {
	switch backend {
	case "raster":
		return ".png"
	case "svg":
		return ".svg"
	case "dxf", "dxf-stitched":
		return ".py"
	default:
		return ".out"
	}
}

// Transformer returns the projection named by View.
func (c Config) Transformer() (transform.Transformer, error) {
	switch c.View {
	case "orthographic", "perspective":
		pos, err := vector3("camera.position", c.Camera.Position)
		if err != nil {
			return nil, err
		}
		dir, err := vector3("camera.direction", c.Camera.Direction)
		if err != nil {
			return nil, err
		}
		if dir.Len() == 0 {
			return nil, errors.New("sketchdemo: camera.direction must not be zero")
		}
		pose := transform.LookFrom(pos, geom.Normalize(dir))
		if c.View == "orthographic" {
			return transform.NewCameraOrthographic(pose), nil
		}
		return transform.NewCameraPerspective(pose), nil
	default:
		plane, err := geom.ParseAxisPlane(c.View)
		if err != nil {
			return nil, fmt.Errorf("sketchdemo: %w", err)
		}
		return transform.NewAxisAligned(plane), nil
	}
}

func vector3(name string, v []float64) (geom.Vector3, error) {
	if len(v) != 3 {
		return geom.Vector3{}, fmt.Errorf("sketchdemo: %s needs 3 components, got %d", name, len(v))
	}
	return geom.V3(v[0], v[1], v[2]), nil
}
