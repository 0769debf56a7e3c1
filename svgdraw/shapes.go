package svgdraw

import (
	"github.com/benoitkugler/svgcad/svgshape"
	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// shapes to their path equivalent

// kappa places the control points of a cubic bezier
// approximating a quarter of circle.
const kappa = 0.5522847498307936

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// ShapePath returns the outline of `s`. Lines are open paths,
// other shapes are closed.
func ShapePath(s svgshape.Shape) Path {
	var p Path
	switch s := s.(type) {
	case *svgshape.Line:
		p.Start(toFixedP(s.Start.X, s.Start.Y))
		p.Line(toFixedP(s.End.X, s.End.Y))
	case *svgshape.Rect:
		p.addRect(s.Extent())
	case *svgshape.Circle:
		p.addCircle(s.Center.X, s.Center.Y, s.Radius)
	case *svgshape.Polygon:
		pts := s.Points()
		p.Start(toFixedP(pts[0].X, pts[0].Y))
		for _, pt := range pts[1:] {
			p.Line(toFixedP(pt.X, pt.Y))
		}
		p.Stop(true)
	}
	return p
}

// addRect adds an axis aligned rectangle.
func (p *Path) addRect(e svgshape.Extent) {
	p.Start(toFixedP(e.MinX, e.MinY))
	p.Line(toFixedP(e.MaxX, e.MinY))
	p.Line(toFixedP(e.MaxX, e.MaxY))
	p.Line(toFixedP(e.MinX, e.MaxY))
	p.Stop(true)
}

// addCircle approximates the circle with four cubic bezier curves,
// starting at the rightmost point and turning clockwise (in SVG coordinates).
func (p *Path) addCircle(cx, cy, r float64) {
	k := r * kappa
	p.Start(toFixedP(cx+r, cy))
	p.CubeBezier(toFixedP(cx+r, cy+k), toFixedP(cx+k, cy+r), toFixedP(cx, cy+r))
	p.CubeBezier(toFixedP(cx-k, cy+r), toFixedP(cx-r, cy+k), toFixedP(cx-r, cy))
	p.CubeBezier(toFixedP(cx-r, cy-k), toFixedP(cx-k, cy-r), toFixedP(cx, cy-r))
	p.CubeBezier(toFixedP(cx+k, cy-r), toFixedP(cx+r, cy-k), toFixedP(cx+r, cy))
	p.Stop(true)
}
