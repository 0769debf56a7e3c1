// Given a laid out canvas, implements how to
// draw it with a backend.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"fmt"
	"image/color"

	"github.com/benoitkugler/svgcad/svgcanvas"
	"github.com/benoitkugler/svgcad/svgshape"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any shape knowledge.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(c color.Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line
	Dash      []float64     // dash pattern, nil for a continuous line
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every shape.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, the exact same path is sent
	// to the Filler first and then to the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// DrawDocument draws the border of the document, then its shapes.
func DrawDocument(doc *svgcanvas.Document, d Driver) error {
	if err := DrawShape(doc.Border, d); err != nil {
		return fmt.Errorf("border: %w", err)
	}
	for i, s := range doc.Shapes {
		if err := DrawShape(s, d); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, s.Kind(), err)
		}
	}
	return nil
}

// DrawShape fills then strokes `s`, according to its style.
// Paints set to "none" and zero line widths are skipped.
func DrawShape(s svgshape.Shape, d Driver) error {
	style := s.Style()
	if style == nil {
		style = &svgshape.DefaultStyle
	}

	var fillColor color.Color
	if s.Kind() != svgshape.KindLine {
		var err error
		fillColor, err = ParseColor(style.FillColor)
		if err != nil {
			return err
		}
	}
	strokeColor, err := ParseColor(style.LineColor)
	if err != nil {
		return err
	}
	willFill := fillColor != nil
	willStroke := strokeColor != nil && style.LineWidth > 0
	if !willFill && !willStroke {
		return nil
	}

	path := ShapePath(s)
	filler, stroker := d.SetupDrawers(willFill, willStroke)
	if filler != nil {
		filler.Clear()
		filler.SetWinding(true)
		for _, op := range path {
			op.drawTo(filler)
		}
		filler.Stop(false)
		filler.SetColor(fillColor, style.Opacity)
		filler.Draw()
	}

	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fixed.Int26_6(style.LineWidth * 64),
			Dash:      style.Dashes(),
		})
		for _, op := range path {
			op.drawTo(stroker)
		}
		stroker.Stop(false)
		stroker.SetColor(strokeColor, style.Opacity)
		stroker.Draw()
	}
	return nil
}
