package svgdraw

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure

// Operation groups the different path commands
type Operation interface {
	// add itself on the drawer `d`
	drawTo(d Drawer)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Drawer) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(fixed.Point26_6(op))
}

func (op LineTo) drawTo(d Drawer) {
	d.Line(fixed.Point26_6(op))
}

func (op CubicTo) drawTo(d Drawer) {
	d.CubeBezier(op[0], op[1], op[2])
}

func (op Close) drawTo(d Drawer) {
	d.Stop(true)
}

// Path describes a sequence of basic drawing operations.
type Path []Operation

// String returns a representation of the path,
// using the syntax of the SVG `d` attribute.
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64, float32(op[2].X)/64, float32(op[2].Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Bounds returns the box containing every point of the path,
// control points included.
func (p Path) Bounds() fixed.Rectangle26_6 {
	var (
		box   fixed.Rectangle26_6
		empty = true
	)
	add := func(pts ...fixed.Point26_6) {
		for _, pt := range pts {
			if empty {
				box = fixed.Rectangle26_6{Min: pt, Max: pt}
				empty = false
				continue
			}
			box.Min.X, box.Min.Y = min(box.Min.X, pt.X), min(box.Min.Y, pt.Y)
			box.Max.X, box.Max.Y = max(box.Max.X, pt.X), max(box.Max.Y, pt.Y)
		}
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			add(fixed.Point26_6(op))
		case LineTo:
			add(fixed.Point26_6(op))
		case CubicTo:
			add(op[0], op[1], op[2])
		}
	}
	return box
}
