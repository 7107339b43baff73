// Package config handles mesh loader configuration loading and management.
package config

import (
	gomath "math"

	"github.com/Faultbox/meshload/pkg/formats"
	"github.com/Faultbox/meshload/pkg/math"
)

// Config holds all settings.
type Config struct {
	Loader  LoaderConfig  `yaml:"loader"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoaderConfig holds mesh decoding settings.
type LoaderConfig struct {
	AssetDirs     []string   `yaml:"asset_dirs"`     // Searched last to first
	StrictNumbers bool       `yaml:"strict_numbers"` // Fail on non-numeric fields
	Scale         float32    `yaml:"scale"`
	Rotation      [3]float32 `yaml:"rotation"` // Degrees, applied X then Y then Z
	Translation   [3]float32 `yaml:"translation"`
}

// ViewerConfig holds display settings for meshview.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Loader: LoaderConfig{
			AssetDirs: []string{"."},
			Scale:     1,
		},
		Viewer: ViewerConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Transform returns the import transform: scale, then rotation about X, Y
// and Z, then translation.
func (c LoaderConfig) Transform() math.Mat4 {
	s := c.Scale
	if s == 0 {
		s = 1
	}

	m := math.Translate(c.Translation[0], c.Translation[1], c.Translation[2])
	m = m.Mul(math.RotateZ(radians(c.Rotation[2])))
	m = m.Mul(math.RotateY(radians(c.Rotation[1])))
	m = m.Mul(math.RotateX(radians(c.Rotation[0])))
	return m.Mul(math.Scale(s, s, s))
}

// Options returns the decoder options.
func (c LoaderConfig) Options() formats.OBJOptions {
	return formats.OBJOptions{StrictNumbers: c.StrictNumbers}
}

func radians(deg float32) float32 {
	return deg * gomath.Pi / 180
}
