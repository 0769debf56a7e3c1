package svgshape

import "math"

// Line styles understood by the writers and the drawing backends.
// Any other token is treated as solid.
const (
	Solid  = "solid"
	Dashed = "dashed"
	Dotted = "dotted"
)

// Style holds the paint attributes of a shape.
// A Style is shared by pointer between shapes, and must not be
// modified once it has been given to one.
//
// The zero value is not usable as is: Opacity 0 paints nothing.
// Start from NewStyle and change the fields needed.
type Style struct {
	LineWidth float64
	LineColor string // SVG color token, such as "navy" or "#ff0000"
	LineStyle string // Solid, Dashed or Dotted
	FillColor string
	Opacity   float64 // conventionally in [0, 1], not enforced
}

// DefaultStyle is used when no style is given: a black, 1px wide
// solid outline, filled in red and fully opaque.
var DefaultStyle = Style{
	LineWidth: 1,
	LineColor: "black",
	LineStyle: Solid,
	FillColor: "red",
	Opacity:   1,
}

// NewStyle returns a copy of DefaultStyle, meant to be customized
// before use.
func NewStyle() *Style {
	s := DefaultStyle
	return &s
}

// Dashes returns the dash pattern for the line style,
// or nil for a continuous line.
func (s *Style) Dashes() []float64 {
	unit := math.Max(s.LineWidth, 1)
	switch s.LineStyle {
	case Dashed:
		return []float64{4 * unit, 2 * unit}
	case Dotted:
		return []float64{unit, unit}
	default:
		return nil
	}
}

func resolve(s *Style) *Style {
	if s == nil {
		return &DefaultStyle
	}
	return s
}
