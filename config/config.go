// Package config loads the editor configuration and holds the settings cache
// shared by tools.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Window  WindowConfig   `yaml:"window"`
	History HistoryConfig  `yaml:"history"`
	Log     LogConfig      `yaml:"log"`
	Editor  EditorConfig   `yaml:"editor"`
	Mesh    MeshConfig     `yaml:"mesh"`
	Cache   map[string]any `yaml:"cache"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type HistoryConfig struct {
	// MaxDepth bounds the number of undoable units; 0 keeps all of them.
	MaxDepth int `yaml:"max-depth"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type EditorConfig struct {
	Tool ToolConfig `yaml:"tool"`
}

type ToolConfig struct {
	Sculpt SculptConfig `yaml:"sculpt"`
}

type SculptConfig struct {
	DetailFactor float32 `yaml:"detail-factor"`
}

// MeshConfig describes the icosphere the editor starts with.
type MeshConfig struct {
	Subdivisions int     `yaml:"subdivisions"`
	Radius       float32 `yaml:"radius"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Sculpt Editor",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		History: HistoryConfig{MaxDepth: 100},
		Log:     LogConfig{Level: "info"},
		Editor: EditorConfig{Tool: ToolConfig{Sculpt: SculptConfig{
			DetailFactor: 0.75,
		}}},
		Mesh:  MeshConfig{Subdivisions: 3, Radius: 1},
		Cache: map[string]any{},
	}
}

// Load reads a YAML configuration on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document on top of the defaults. Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Cache == nil {
		cfg.Cache = map[string]any{}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	case c.History.MaxDepth < 0:
		return fmt.Errorf("history max-depth %d: %w", c.History.MaxDepth, ErrInvalid)
	case c.Editor.Tool.Sculpt.DetailFactor < 0 || c.Editor.Tool.Sculpt.DetailFactor >= 1:
		return fmt.Errorf("detail-factor %g not in [0, 1): %w", c.Editor.Tool.Sculpt.DetailFactor, ErrInvalid)
	case c.Mesh.Subdivisions < 0 || c.Mesh.Subdivisions > 6:
		return fmt.Errorf("mesh subdivisions %d not in [0, 6]: %w", c.Mesh.Subdivisions, ErrInvalid)
	case c.Mesh.Radius <= 0:
		return fmt.Errorf("mesh radius %g: %w", c.Mesh.Radius, ErrInvalid)
	}
	return nil
}
