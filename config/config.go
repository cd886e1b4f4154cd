//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads isotile settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Map generators
const (
	GeneratorFlat  = "flat"
	GeneratorNoise = "noise"
	GeneratorEmpty = "empty"
)

type Config struct {
	Map     MapConfig     `toml:"map" yaml:"map"`
	Palette PaletteConfig `toml:"palette" yaml:"palette"`
	Input   InputConfig   `toml:"input" yaml:"input"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
}

// MapConfig describes the map generated at startup.
type MapConfig struct {
	Width     int     `toml:"width" yaml:"width"`
	Height    int     `toml:"height" yaml:"height"`
	Layers    int     `toml:"layers" yaml:"layers"`
	Generator string  `toml:"generator" yaml:"generator"`
	Seed      int64   `toml:"seed" yaml:"seed"`
	Scale     float64 `toml:"scale" yaml:"scale"` // noise sampling step per cell
}

// PaletteConfig says how tile types are drawn. Glyphs and colors are indexed
// by tile type; colors are xterm-256 indices.
type PaletteConfig struct {
	Tiles  int      `toml:"tiles" yaml:"tiles"`
	Glyphs []string `toml:"glyphs" yaml:"glyphs"`
	Colors []int    `toml:"colors" yaml:"colors"`
}

type InputConfig struct {
	MaxLayer int `toml:"max_layer" yaml:"max_layer"`
}

type LogConfig struct {
	Path  string `toml:"path" yaml:"path"`
	Debug bool   `toml:"debug" yaml:"debug"`
}

type MetricsConfig struct {
	Addr string `toml:"addr" yaml:"addr"` // empty disables the metrics server
}

var defaultGlyphs = []string{
	"..", "~~", "::", ",,", "--", "==", "++", "**", "##", "%%",
	"@@", "&&", "$$", "oo", "OO", "xx", "XX", "^^", "vv", "<>",
	"||", "//", "\\\\", "[]", "{}",
}

var defaultColors = []int{
	28, 33, 94, 142, 250, 244, 64, 178, 34, 130,
	160, 202, 220, 39, 45, 124, 196, 231, 21, 93,
	240, 136, 137, 172, 208,
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Map: MapConfig{
			Width:     16,
			Height:    16,
			Layers:    2,
			Generator: GeneratorFlat,
			Seed:      0,
			Scale:     0.1,
		},
		Palette: PaletteConfig{
			Tiles:  len(defaultGlyphs),
			Glyphs: append([]string(nil), defaultGlyphs...),
			Colors: append([]int(nil), defaultColors...),
		},
		Input: InputConfig{
			MaxLayer: 3,
		},
		Log: LogConfig{
			Path: DefaultLogPath(),
		},
	}
}

// DefaultLogPath returns the log file in the user's home directory.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".isotilelog")
}

// ApplyEnvOverrides replaces settings with values from the environment.
// Unparseable values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("ISOTILE_LOG"); v != "" {
		c.Log.Path = v
	}
	if v := os.Getenv("ISOTILE_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv("ISOTILE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Map.Seed = seed
		}
	}
}

// ValidationError reports one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks that the settings can be used to start an editor.
func (c *Config) Validate() error {
	var errs ValidationErrors
	invalid := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Map.Width <= 0 {
		invalid("map.width", "must be positive, got %d", c.Map.Width)
	}
	if c.Map.Height <= 0 {
		invalid("map.height", "must be positive, got %d", c.Map.Height)
	}
	if c.Map.Layers <= 0 {
		invalid("map.layers", "must be positive, got %d", c.Map.Layers)
	}
	switch c.Map.Generator {
	case GeneratorFlat, GeneratorNoise, GeneratorEmpty:
	default:
		invalid("map.generator", "unknown generator %q", c.Map.Generator)
	}
	if c.Map.Generator == GeneratorNoise && c.Map.Scale <= 0 {
		invalid("map.scale", "must be positive, got %g", c.Map.Scale)
	}

	if c.Palette.Tiles <= 0 {
		invalid("palette.tiles", "must be positive, got %d", c.Palette.Tiles)
	}
	if len(c.Palette.Glyphs) < c.Palette.Tiles {
		invalid("palette.glyphs", "%d glyphs for %d tiles", len(c.Palette.Glyphs), c.Palette.Tiles)
	}
	if len(c.Palette.Colors) < c.Palette.Tiles {
		invalid("palette.colors", "%d colors for %d tiles", len(c.Palette.Colors), c.Palette.Tiles)
	}
	for i, color := range c.Palette.Colors {
		if color < 0 || color > 255 {
			invalid("palette.colors", "color %d out of range: %d", i, color)
		}
	}

	if c.Input.MaxLayer < 0 {
		invalid("input.max_layer", "must not be negative, got %d", c.Input.MaxLayer)
	}
	if c.Map.Layers > c.Input.MaxLayer+1 {
		invalid("map.layers", "%d layers but the highest editable layer is %d", c.Map.Layers, c.Input.MaxLayer)
	}

	if c.Log.Path == "" {
		invalid("log.path", "must not be empty")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
