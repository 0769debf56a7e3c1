package svgcanvas

import (
	"fmt"
	"math"

	"github.com/benoitkugler/svgcad/svgshape"
)

// ArrowPoints returns the 7 vertices of an arrow from start to end:
// a shaft of width lineWidth ended by an equilateral head of side headSize,
// whose tip is `end`.
func ArrowPoints(start, end svgshape.Point, lineWidth, headSize float64) ([]svgshape.Point, error) {
	length := start.Distance(end)
	if length == 0 {
		return nil, fmt.Errorf("arrow at %v: %w", start, ErrDegenerateArrow)
	}
	// unit vector along the arrow
	dir := end.Sub(start)
	ux, uy := dir.X/length, dir.Y/length

	// base of the head
	b := end.Sub(svgshape.Pt(ux, uy).Scale(headSize / 2 * math.Sqrt(3)))
	bx, by := b.X, b.Y

	// half widths, perpendicular to the arrow
	dx, dy := lineWidth/2*uy, lineWidth/2*ux
	hx, hy := headSize/2*uy, headSize/2*ux

	return []svgshape.Point{
		{X: start.X - dx, Y: start.Y + dy},
		{X: bx - dx, Y: by + dy},
		{X: bx - hx, Y: by + hy},
		end,
		{X: bx + hx, Y: by - hy},
		{X: bx + dx, Y: by - dy},
		{X: start.X + dx, Y: start.Y - dy},
	}, nil
}

// AddArrow adds an arrow as a polygon. It returns ErrDegenerateArrow
// when start and end are equal, in which case the canvas is unchanged.
func (c *Canvas) AddArrow(start, end svgshape.Point, lineWidth, headSize float64, style *svgshape.Style) error {
	points, err := ArrowPoints(start, end, lineWidth, headSize)
	if err != nil {
		return err
	}
	return c.AddPolygon(points, style)
}
