// Package replay runs scripted sculpt strokes against a mesh without a
// window.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"sculpt-editor/config"
	"sculpt-editor/math"
	"sculpt-editor/sculpt"
)

// ErrInvalidScript is returned for scripts that parse but cannot run.
var ErrInvalidScript = errors.New("replay: invalid script")

type Script struct {
	Mesh    *config.MeshConfig `yaml:"mesh"`
	Brush   BrushSettings      `yaml:"brush"`
	Strokes []Stroke           `yaml:"strokes"`
	// Flips lists edges to flip after the strokes, one unit each.
	Flips []uint32 `yaml:"flips"`
	Undo  int      `yaml:"undo"`
	Redo  int      `yaml:"redo"`
}

// BrushSettings seed the sculpt tool cache; zero values keep the tool
// defaults.
type BrushSettings struct {
	Kind            string  `yaml:"kind"`
	Radius          float32 `yaml:"radius"`
	Intensity       float32 `yaml:"intensity"`
	StepWidthFactor float32 `yaml:"step-width-factor"`
	// Subdivide turns edge splitting under the brush on or off.
	Subdivide *bool `yaml:"subdivide"`
}

type Stroke struct {
	Kind    string   `yaml:"kind"`
	Invert  bool     `yaml:"invert"`
	Samples []Sample `yaml:"samples"`
}

// Sample is one pointer position of a stroke, given as a picking ray.
type Sample struct {
	Origin    [3]float32 `yaml:"origin"`
	Direction [3]float32 `yaml:"direction"`
}

func (s Sample) Ray() math.Ray {
	return math.NewRay(
		math.NewVec3(s.Origin[0], s.Origin[1], s.Origin[2]),
		math.NewVec3(s.Direction[0], s.Direction[1], s.Direction[2]),
	)
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) Validate() error {
	if s.Undo < 0 || s.Redo < 0 {
		return fmt.Errorf("negative undo or redo count: %w", ErrInvalidScript)
	}
	if s.Brush.Kind != "" {
		if _, err := sculpt.ParseKind(s.Brush.Kind); err != nil {
			return fmt.Errorf("brush: %w", err)
		}
	}
	for i, st := range s.Strokes {
		if st.Kind != "" {
			if _, err := sculpt.ParseKind(st.Kind); err != nil {
				return fmt.Errorf("stroke %d: %w", i, err)
			}
		}
		for j, sample := range st.Samples {
			if sample.Direction == [3]float32{} {
				return fmt.Errorf("stroke %d sample %d has no direction: %w", i, j, ErrInvalidScript)
			}
		}
	}
	return nil
}

// cache returns the tool settings the script asks for.
func (s *Script) cache(base map[string]any) map[string]any {
	values := make(map[string]any, len(base)+4)
	for k, v := range base {
		values[k] = v
	}
	if s.Brush.Kind != "" {
		values["sculpt/kind"] = s.Brush.Kind
	}
	if s.Brush.Radius > 0 {
		values["sculpt/radius"] = s.Brush.Radius
	}
	if s.Brush.Intensity > 0 {
		values["sculpt/intensity"] = s.Brush.Intensity
	}
	if s.Brush.StepWidthFactor > 0 {
		values["sculpt/step-width-factor"] = s.Brush.StepWidthFactor
	}
	if s.Brush.Subdivide != nil {
		values["sculpt/subdivide"] = *s.Brush.Subdivide
	}
	return values
}
