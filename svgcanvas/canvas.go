// Implements a drawing surface which accumulates shapes on an
// unbounded plane, and renders them into an SVG document cropped
// to the drawn area plus a margin.
package svgcanvas

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/svgcad/svgshape"
	"github.com/google/uuid"
)

var (
	// ErrInvalidGeometry is returned for empty polygons and non finite coordinates.
	ErrInvalidGeometry = svgshape.ErrInvalidGeometry
	// ErrDegenerateArrow is returned for arrows whose start and end are the same.
	ErrDegenerateArrow = errors.New("degenerate arrow")
	// ErrDoubleFit is returned when the canvas has already been laid out:
	// its shapes have been moved to their final position and may not be
	// moved again.
	ErrDoubleFit = errors.New("canvas already fitted")
)

// Options configures a Canvas.
type Options struct {
	Background  string  // fill of the border rectangle, "" meaning "none"
	BorderWidth float64 // stroke width of the border rectangle
	BorderColor string  // "" meaning "none"
	Margin      float64 // space left around the drawing, on every side

	// DefaultStyle is used by shapes added without style.
	// If nil, svgshape.DefaultStyle is used.
	DefaultStyle *svgshape.Style

	// Precision of the coordinates in the output.
	// The zero value writes integers.
	Precision svgshape.Precision
}

// DefaultOptions describes a transparent canvas without border,
// and a margin of 10px.
var DefaultOptions = Options{
	Background:  "none",
	BorderWidth: 0,
	BorderColor: "none",
	Margin:      10,
}

// Canvas accumulates shapes, keeping track of the area they cover.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	opts         Options
	defaultStyle *svgshape.Style
	shapes       []svgshape.Shape

	extent   svgshape.Extent // valid if hasShape
	hasShape bool

	fitted bool
}

// New returns an empty canvas.
func New(opts Options) *Canvas {
	c := &Canvas{opts: opts}
	c.SetDefaultStyle(opts.DefaultStyle)
	return c
}

// SetDefaultStyle changes the style used by shapes added later on.
// Shapes already added keep their style.
// A nil style restores svgshape.DefaultStyle.
func (c *Canvas) SetDefaultStyle(s *svgshape.Style) {
	if s == nil {
		s = svgshape.NewStyle()
	}
	c.defaultStyle = s
}

// DefaultStyle returns the style used by shapes added without style.
func (c *Canvas) DefaultStyle() *svgshape.Style { return c.defaultStyle }

func (c *Canvas) Margin() float64 { return c.opts.Margin }

// Len returns the number of shapes.
func (c *Canvas) Len() int { return len(c.shapes) }

// Shapes returns the shapes in insertion order.
// The slice must not be modified.
func (c *Canvas) Shapes() []svgshape.Shape { return c.shapes }

// Extent returns the area covered by the shapes, and false
// if the canvas is empty.
func (c *Canvas) Extent() (svgshape.Extent, bool) { return c.extent, c.hasShape }

// Fitted reports whether the canvas has been laid out.
func (c *Canvas) Fitted() bool { return c.fitted }

// AddShape appends a copy of `s`, resolving a nil style to the current
// default style and assigning a fresh identity token.
// Later changes to `s` do not affect the canvas.
func (c *Canvas) AddShape(s svgshape.Shape) error {
	if s == nil {
		return fmt.Errorf("nil shape: %w", ErrInvalidGeometry)
	}
	return c.add(svgshape.Clone(s))
}

// add takes ownership of `s`.
func (c *Canvas) add(s svgshape.Shape) error {
	if c.fitted {
		return fmt.Errorf("adding %s: %w", s.Kind(), ErrDoubleFit)
	}
	if s.Style() == nil {
		s.SetStyle(c.defaultStyle)
	}
	s.SetID(uuid.NewString())
	c.appendShape(s)
	return nil
}

// appendShape grows the extent and stores the shape.
func (c *Canvas) appendShape(s svgshape.Shape) {
	ext := s.Extent()
	if c.hasShape {
		c.extent = c.extent.Union(ext)
	} else {
		c.extent = ext
		c.hasShape = true
	}
	c.shapes = append(c.shapes, s)
}

// AddLine adds the segment from start to end. A nil style selects
// the default style.
func (c *Canvas) AddLine(start, end svgshape.Point, style *svgshape.Style) error {
	l, err := svgshape.NewLine(start, end, style)
	if err != nil {
		return err
	}
	return c.add(l)
}

// AddRect adds a rectangle centered on `center`.
func (c *Canvas) AddRect(center, size svgshape.Point, style *svgshape.Style) error {
	r, err := svgshape.NewRect(center, size, style)
	if err != nil {
		return err
	}
	return c.add(r)
}

// AddCircle adds a circle of the given radius.
func (c *Canvas) AddCircle(center svgshape.Point, radius float64, style *svgshape.Style) error {
	ci, err := svgshape.NewCircle(center, radius, style)
	if err != nil {
		return err
	}
	return c.add(ci)
}

// AddPolygon adds a closed polygon through `points`.
func (c *Canvas) AddPolygon(points []svgshape.Point, style *svgshape.Style) error {
	p, err := svgshape.NewPolygon(points, style)
	if err != nil {
		return err
	}
	return c.add(p)
}

// fit moves every shape so that the top left corner of the
// extent lands on (margin, margin), and freezes the canvas.
func (c *Canvas) fit() {
	c.fitted = true
	if !c.hasShape {
		return
	}
	dx, dy := c.opts.Margin-c.extent.MinX, c.opts.Margin-c.extent.MinY
	for _, s := range c.shapes {
		s.Translate(dx, dy)
	}
	c.extent = c.extent.Translate(dx, dy)
}

// RenderedSize returns the size of the output document: the extent
// of the shapes plus the margins.
func (c *Canvas) RenderedSize() (width, height float64) {
	m := c.opts.Margin
	if !c.hasShape {
		return 2 * m, 2 * m
	}
	return c.extent.Width() + 2*m, c.extent.Height() + 2*m
}

// Layout moves the shapes to their final position and returns the
// resulting document. It may only be called once: the canvas is then
// frozen and ErrDoubleFit is returned by later calls.
// If the document can't be built, the canvas is left untouched.
func (c *Canvas) Layout() (*Document, error) {
	if c.fitted {
		return nil, ErrDoubleFit
	}
	// the size does not depend on the position of the shapes
	w, h := c.RenderedSize()
	border, err := c.border(w, h)
	if err != nil {
		return nil, fmt.Errorf("canvas border: %w", err)
	}
	c.fit()
	return &Document{
		Width:     w,
		Height:    h,
		Border:    border,
		Shapes:    c.shapes,
		Precision: c.opts.Precision,
	}, nil
}

// border returns the background rectangle of a w x h document.
// Empty colors are not painted.
func (c *Canvas) border(w, h float64) (*svgshape.Rect, error) {
	bw := c.opts.BorderWidth
	style := &svgshape.Style{
		LineWidth: bw,
		LineColor: paintOrNone(c.opts.BorderColor),
		LineStyle: svgshape.Solid,
		FillColor: paintOrNone(c.opts.Background),
		Opacity:   1,
	}
	return svgshape.NewRect(svgshape.Pt(w/2, h/2), svgshape.Pt(w-bw, h-bw), style)
}

func paintOrNone(color string) string {
	if color == "" {
		return "none"
	}
	return color
}

// Render lays out the canvas and returns the SVG document.
// See Layout for the restrictions.
func (c *Canvas) Render() (string, error) {
	doc, err := c.Layout()
	if err != nil {
		return "", err
	}
	return doc.String(), nil
}
