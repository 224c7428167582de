// Package preset loads meshfx effect configurations from YAML or TOML files.
//
// A preset mirrors the properties an editor exposes for each effect:
//
//	gradient:
//	  shape: radial
//	  blend: multiply
//	  modify_vertices: true
//	  offset: 0.1
//	  zoom: 2
//	  ramp: "red 0%, #0000ff80 100%"
//	flip:
//	  horizontal: true
//
// The same fields are available in TOML under [gradient] and [flip].
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/meshfx"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a preset encoding.
type Format int

const (
	// FormatYAML is YAML, selected for .yaml and .yml files.
	FormatYAML Format = iota

	// FormatTOML is TOML, selected for .toml files.
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "YAML"
	case FormatTOML:
		return "TOML"
	default:
		return "Unknown"
	}
}

// ErrUnknownFormat is returned when a preset file extension is not recognized.
var ErrUnknownFormat = errors.New("preset: unknown format")

// Preset holds the configuration of a graphic's effects. Absent sections
// mean the effect is not used.
type Preset struct {
	Gradient *Gradient `yaml:"gradient" toml:"gradient"`
	Flip     *Flip     `yaml:"flip" toml:"flip"`
}

// Gradient configures a meshfx.GradientFill. Zero values select the
// effect's defaults.
type Gradient struct {
	Shape          string   `yaml:"shape" toml:"shape"`
	Blend          string   `yaml:"blend" toml:"blend"`
	ModifyVertices *bool    `yaml:"modify_vertices" toml:"modify_vertices"`
	ModifyTangents bool     `yaml:"modify_tangents" toml:"modify_tangents"`
	Offset         float32  `yaml:"offset" toml:"offset"`
	Zoom           *float32 `yaml:"zoom" toml:"zoom"`
	Ramp           string   `yaml:"ramp" toml:"ramp"`
}

// Flip configures a meshfx.MirrorFlip.
type Flip struct {
	Horizontal bool `yaml:"horizontal" toml:"horizontal"`
	Vertical   bool `yaml:"vertical" toml:"vertical"`
}

// FormatOf returns the format for a file name by extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(name))
}

// Load reads a preset file, choosing the decoder by extension.
func Load(name string) (*Preset, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("preset: open: %w", err)
	}
	defer f.Close()

	p, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("preset: %s: %w", name, err)
	}
	return p, nil
}

// Decode reads a preset in the given format. An empty document yields an
// empty preset.
func Decode(r io.Reader, format Format) (*Preset, error) {
	var p Preset
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(r).Decode(&p); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	return &p, nil
}

// Options converts the section to GradientFill options.
// Out-of-range offset and zoom values are clamped by the options and
// reported at warn level through meshfx.Logger.
func (g *Gradient) Options() ([]meshfx.GradientOption, error) {
	var opts []meshfx.GradientOption

	if g.Shape != "" {
		s, err := meshfx.ParseShape(g.Shape)
		if err != nil {
			return nil, fmt.Errorf("preset: shape %q: %w", g.Shape, err)
		}
		opts = append(opts, meshfx.WithShape(s))
	}
	if g.Blend != "" {
		m, err := meshfx.ParseBlendMode(g.Blend)
		if err != nil {
			return nil, fmt.Errorf("preset: blend %q: %w", g.Blend, err)
		}
		opts = append(opts, meshfx.WithBlendMode(m))
	}
	if g.Ramp != "" {
		r, err := meshfx.ParseRamp(g.Ramp)
		if err != nil {
			return nil, fmt.Errorf("preset: ramp: %w", err)
		}
		opts = append(opts, meshfx.WithRamp(r))
	}
	if g.ModifyVertices != nil {
		opts = append(opts, meshfx.WithModifyVertices(*g.ModifyVertices))
	}
	if g.ModifyTangents {
		opts = append(opts, meshfx.WithModifyTangents(true))
	}

	log := meshfx.Logger()
	if g.Offset != 0 {
		if g.Offset < meshfx.MinOffset || g.Offset > meshfx.MaxOffset {
			log.Warn("preset: offset out of range, clamping", "offset", g.Offset)
		}
		opts = append(opts, meshfx.WithOffset(g.Offset))
	}
	if g.Zoom != nil {
		if *g.Zoom < meshfx.MinZoom || *g.Zoom > meshfx.MaxZoom {
			log.Warn("preset: zoom out of range, clamping", "zoom", *g.Zoom)
		}
		opts = append(opts, meshfx.WithZoom(*g.Zoom))
	}
	return opts, nil
}

// Options converts the section to MirrorFlip options.
func (f *Flip) Options() []meshfx.FlipOption {
	return []meshfx.FlipOption{
		meshfx.WithHorizontal(f.Horizontal),
		meshfx.WithVertical(f.Vertical),
	}
}

// Pipeline builds the effects the preset describes, attached to owner and
// ordered by meshfx.Pipeline.
func (p *Preset) Pipeline(owner meshfx.Graphic, rt meshfx.RectTransform) (*meshfx.Pipeline, error) {
	pl := meshfx.NewPipeline()
	if p.Gradient != nil {
		opts, err := p.Gradient.Options()
		if err != nil {
			return nil, err
		}
		pl.Add(meshfx.NewGradientFill(owner, opts...))
	}
	if p.Flip != nil {
		pl.Add(meshfx.NewMirrorFlip(owner, rt, p.Flip.Options()...))
	}
	return pl, nil
}
