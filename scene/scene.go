// Package scene describes drawings in YAML files, which are
// turned into canvases by Build.
//
// A scene looks like
//
//	canvas:
//	  background: lightblue
//	  margin: 40
//	styles:
//	  bold: {line_width: 10, line_color: navy, fill_color: yellow}
//	shapes:
//	  - {kind: rect, center: [0, 0], size: [400, 200], style: bold}
//	  - {kind: arrow, start: [200, 500], end: [500, 500], line_width: 10, head_size: 60}
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/svgcad/svgcanvas"
	"github.com/benoitkugler/svgcad/svgshape"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind  = errors.New("unknown shape kind")
	ErrUnknownStyle = errors.New("unknown style")
	ErrInvalidPoint = errors.New("a point must have exactly two coordinates")
)

// Shape kinds.
const (
	KindLine    = "line"
	KindRect    = "rect"
	KindCircle  = "circle"
	KindPolygon = "polygon"
	KindArrow   = "arrow"
)

// Scene is the content of a scene file.
type Scene struct {
	Canvas CanvasConfig           `yaml:"canvas"`
	Styles map[string]StyleConfig `yaml:"styles,omitempty"`
	Shapes []ShapeConfig          `yaml:"shapes"`
}

// CanvasConfig mirrors svgcanvas.Options.
// A nil Margin selects the default margin.
type CanvasConfig struct {
	Background   string   `yaml:"background,omitempty"`
	BorderWidth  float64  `yaml:"border_width,omitempty"`
	BorderColor  string   `yaml:"border_color,omitempty"`
	Margin       *float64 `yaml:"margin,omitempty"`
	Precision    int      `yaml:"precision,omitempty"`
	DefaultStyle string   `yaml:"default_style,omitempty"` // name of an entry of Scene.Styles
}

// StyleConfig holds the optional fields of a style,
// missing ones being taken from svgshape.DefaultStyle.
type StyleConfig struct {
	LineWidth *float64 `yaml:"line_width,omitempty"`
	LineColor string   `yaml:"line_color,omitempty"`
	LineStyle string   `yaml:"line_style,omitempty"`
	FillColor string   `yaml:"fill_color,omitempty"`
	Opacity   *float64 `yaml:"opacity,omitempty"`
}

// Vec is a point, written as [x, y].
type Vec []float64

// ShapeConfig describes one shape. Only the fields relevant
// to Kind are used.
type ShapeConfig struct {
	Kind  string `yaml:"kind"`
	Style string `yaml:"style,omitempty"`

	Start  Vec     `yaml:"start,omitempty,flow"`  // line, arrow
	End    Vec     `yaml:"end,omitempty,flow"`    // line, arrow
	Center Vec     `yaml:"center,omitempty,flow"` // rect, circle
	Size   Vec     `yaml:"size,omitempty,flow"`   // rect
	Radius float64 `yaml:"radius,omitempty"`      // circle
	Points []Vec   `yaml:"points,omitempty,flow"` // polygon

	LineWidth float64 `yaml:"line_width,omitempty"` // arrow shaft
	HeadSize  float64 `yaml:"head_size,omitempty"`  // arrow
}

// Load decodes a scene. Unknown fields are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	return &s, nil
}

// LoadFile decodes the named scene file.
func LoadFile(name string) (*Scene, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Encode writes the scene as YAML.
func (s *Scene) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

func (v Vec) point() (svgshape.Point, error) {
	if len(v) != 2 {
		return svgshape.Point{}, fmt.Errorf("%v: %w", []float64(v), ErrInvalidPoint)
	}
	return svgshape.Pt(v[0], v[1]), nil
}

func (sc StyleConfig) style() *svgshape.Style {
	out := svgshape.NewStyle()
	if sc.LineWidth != nil {
		out.LineWidth = *sc.LineWidth
	}
	if sc.LineColor != "" {
		out.LineColor = sc.LineColor
	}
	if sc.LineStyle != "" {
		out.LineStyle = sc.LineStyle
	}
	if sc.FillColor != "" {
		out.FillColor = sc.FillColor
	}
	if sc.Opacity != nil {
		out.Opacity = *sc.Opacity
	}
	return out
}

// Options returns the canvas options, without default style.
func (cc CanvasConfig) Options() svgcanvas.Options {
	opts := svgcanvas.DefaultOptions
	opts.Background = orDefault(cc.Background, opts.Background)
	opts.BorderColor = orDefault(cc.BorderColor, opts.BorderColor)
	opts.BorderWidth = cc.BorderWidth
	if cc.Margin != nil {
		opts.Margin = *cc.Margin
	}
	opts.Precision = svgshape.Precision(cc.Precision)
	return opts
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Build creates a canvas and adds the shapes of the scene, in order.
// Shapes naming the same style share it.
func (s *Scene) Build() (*svgcanvas.Canvas, error) {
	styles := make(map[string]*svgshape.Style, len(s.Styles))
	for name, sc := range s.Styles {
		styles[name] = sc.style()
	}
	lookup := func(name string) (*svgshape.Style, error) {
		if name == "" {
			return nil, nil
		}
		st, ok := styles[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownStyle)
		}
		return st, nil
	}

	opts := s.Canvas.Options()
	var err error
	if opts.DefaultStyle, err = lookup(s.Canvas.DefaultStyle); err != nil {
		return nil, fmt.Errorf("canvas default style: %w", err)
	}
	c := svgcanvas.New(opts)
	for i, sh := range s.Shapes {
		style, err := lookup(sh.Style)
		if err == nil {
			err = sh.add(c, style)
		}
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err)
		}
	}
	return c, nil
}

func (sh ShapeConfig) add(c *svgcanvas.Canvas, style *svgshape.Style) error {
	switch sh.Kind {
	case KindLine, KindArrow:
		start, err := sh.Start.point()
		if err != nil {
			return err
		}
		end, err := sh.End.point()
		if err != nil {
			return err
		}
		if sh.Kind == KindLine {
			return c.AddLine(start, end, style)
		}
		return c.AddArrow(start, end, sh.LineWidth, sh.HeadSize, style)
	case KindRect:
		center, err := sh.Center.point()
		if err != nil {
			return err
		}
		size, err := sh.Size.point()
		if err != nil {
			return err
		}
		return c.AddRect(center, size, style)
	case KindCircle:
		center, err := sh.Center.point()
		if err != nil {
			return err
		}
		return c.AddCircle(center, sh.Radius, style)
	case KindPolygon:
		points := make([]svgshape.Point, len(sh.Points))
		for i, v := range sh.Points {
			p, err := v.point()
			if err != nil {
				return err
			}
			points[i] = p
		}
		return c.AddPolygon(points, style)
	default:
		return ErrUnknownKind
	}
}
