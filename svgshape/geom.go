package svgshape

import "math"

// Point is a position on the drawing plane, in pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

func (p Point) isFinite() bool { return isFinite(p.X, p.Y) }

// Extent is an axis aligned bounding box.
type Extent struct {
	MinX, MinY, MaxX, MaxY float64
}

// extentAt builds the box centered on c with the given size.
func extentAt(c Point, w, h float64) Extent {
	return Extent{MinX: c.X - w/2, MinY: c.Y - h/2, MaxX: c.X + w/2, MaxY: c.Y + h/2}
}

// Union returns the smallest box containing e and o.
func (e Extent) Union(o Extent) Extent {
	return Extent{
		MinX: math.Min(e.MinX, o.MinX),
		MinY: math.Min(e.MinY, o.MinY),
		MaxX: math.Max(e.MaxX, o.MaxX),
		MaxY: math.Max(e.MaxY, o.MaxY),
	}
}

// Translate shifts the box by (dx, dy).
func (e Extent) Translate(dx, dy float64) Extent {
	return Extent{MinX: e.MinX + dx, MinY: e.MinY + dy, MaxX: e.MaxX + dx, MaxY: e.MaxY + dy}
}

func (e Extent) Width() float64 { return e.MaxX - e.MinX }
func (e Extent) Height() float64 { return e.MaxY - e.MinY }

// Contains reports whether o lies entirely inside e.
func (e Extent) Contains(o Extent) bool {
	return e.MinX <= o.MinX && e.MinY <= o.MinY && o.MaxX <= e.MaxX && o.MaxY <= e.MaxY
}

func isFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
