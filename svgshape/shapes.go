package svgshape

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Line is a stroked segment. Degenerate lines are valid.
type Line struct {
	base
	Start, End Point
}

// NewLine returns the segment from start to end.
func NewLine(start, end Point, style *Style) (*Line, error) {
	if !start.isFinite() || !end.isFinite() {
		return nil, fmt.Errorf("line from %v to %v: %w", start, end, ErrInvalidGeometry)
	}
	return &Line{base: newBase(style), Start: start, End: end}, nil
}

func (*Line) Kind() Kind { return KindLine }

func (l *Line) Extent() Extent {
	return Extent{
		MinX: min(l.Start.X, l.End.X), MinY: min(l.Start.Y, l.End.Y),
		MaxX: max(l.Start.X, l.End.X), MaxY: max(l.Start.Y, l.End.Y),
	}
}

func (l *Line) Translate(dx, dy float64) {
	d := Point{X: dx, Y: dy}
	l.Start = l.Start.Add(d)
	l.End = l.End.Add(d)
}

func (l *Line) AppendSVG(dst []byte, prec Precision) []byte {
	dst = append(dst, " <line"...)
	dst = prec.appendAttr(dst, "x1", l.Start.X)
	dst = prec.appendAttr(dst, "y1", l.Start.Y)
	dst = prec.appendAttr(dst, "x2", l.End.X)
	dst = prec.appendAttr(dst, "y2", l.End.Y)
	dst = append(dst, '\n')
	return appendPaint(dst, l.paint(), false)
}

// Rect is an axis aligned rectangle, stroked and filled.
type Rect struct {
	base
	Center Point
	Size   Point // width and height
}

// NewRect returns the rectangle of the given size, centered on `center`.
func NewRect(center, size Point, style *Style) (*Rect, error) {
	if !center.isFinite() || !size.isFinite() {
		return nil, fmt.Errorf("rect at %v of size %v: %w", center, size, ErrInvalidGeometry)
	}
	return &Rect{base: newBase(style), Center: center, Size: size}, nil
}

func (*Rect) Kind() Kind { return KindRect }

func (r *Rect) Extent() Extent { return extentAt(r.Center, r.Size.X, r.Size.Y) }

func (r *Rect) Translate(dx, dy float64) { r.Center = r.Center.Add(Point{X: dx, Y: dy}) }

func (r *Rect) AppendSVG(dst []byte, prec Precision) []byte {
	dst = append(dst, "  <rect"...)
	dst = prec.appendAttr(dst, "x", r.Center.X-r.Size.X/2)
	dst = prec.appendAttr(dst, "y", r.Center.Y-r.Size.Y/2)
	dst = prec.appendAttr(dst, "width", r.Size.X)
	dst = prec.appendAttr(dst, "height", r.Size.Y)
	dst = append(dst, '\n')
	return appendPaint(dst, r.paint(), true)
}

// Circle is a disk, stroked and filled.
type Circle struct {
	base
	Center Point
	Radius float64
}

// NewCircle returns the circle of radius r centered on `center`.
func NewCircle(center Point, r float64, style *Style) (*Circle, error) {
	if !center.isFinite() || !isFinite(r) {
		return nil, fmt.Errorf("circle at %v of radius %g: %w", center, r, ErrInvalidGeometry)
	}
	return &Circle{base: newBase(style), Center: center, Radius: r}, nil
}

func (*Circle) Kind() Kind { return KindCircle }

// Extent returns the square enclosing the circle.
func (c *Circle) Extent() Extent { return extentAt(c.Center, 2*c.Radius, 2*c.Radius) }

func (c *Circle) Translate(dx, dy float64) { c.Center = c.Center.Add(Point{X: dx, Y: dy}) }

func (c *Circle) AppendSVG(dst []byte, prec Precision) []byte {
	dst = append(dst, "  <circle"...)
	dst = prec.appendAttr(dst, "cx", c.Center.X)
	dst = prec.appendAttr(dst, "cy", c.Center.Y)
	dst = prec.appendAttr(dst, "r", c.Radius)
	dst = append(dst, "\n          "...)
	return appendPaint(dst, c.paint(), true)
}

// Polygon is a closed path through its vertices, stroked and filled.
type Polygon struct {
	base
	points []Point
	extent Extent // cached, updated by Translate
}

// NewPolygon returns the polygon through `points`, which are copied.
// At least one point is required; self intersecting polygons are accepted.
func NewPolygon(points []Point, style *Style) (*Polygon, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("polygon without vertices: %w", ErrInvalidGeometry)
	}
	xs, ys := make([]float64, len(points)), make([]float64, len(points))
	for i, p := range points {
		if !p.isFinite() {
			return nil, fmt.Errorf("polygon vertex %d (%v): %w", i, p, ErrInvalidGeometry)
		}
		xs[i], ys[i] = p.X, p.Y
	}
	return &Polygon{
		base:   newBase(style),
		points: append([]Point(nil), points...),
		extent: Extent{MinX: floats.Min(xs), MinY: floats.Min(ys), MaxX: floats.Max(xs), MaxY: floats.Max(ys)},
	}, nil
}

func (*Polygon) Kind() Kind { return KindPolygon }

// Points returns a copy of the vertices.
func (p *Polygon) Points() []Point { return append([]Point(nil), p.points...) }

func (p *Polygon) Extent() Extent { return p.extent }

func (p *Polygon) Translate(dx, dy float64) {
	d := Point{X: dx, Y: dy}
	for i := range p.points {
		p.points[i] = p.points[i].Add(d)
	}
	p.extent = p.extent.Translate(dx, dy)
}

func (p *Polygon) AppendSVG(dst []byte, prec Precision) []byte {
	dst = append(dst, ` <polygon points="`...)
	for _, pt := range p.points {
		dst = prec.AppendNumber(dst, pt.X)
		dst = append(dst, ',')
		dst = prec.AppendNumber(dst, pt.Y)
		dst = append(dst, ' ')
	}
	dst = append(dst, "\"\n"...)
	return appendPaint(dst, p.paint(), true)
}
