package svgread

import (
	"encoding/xml"
	"errors"

	"github.com/benoitkugler/svgcad/svgshape"
)

// svgFunc reads the attributes of an element, returning
// the shape it describes, if any.
type svgFunc func(c *cursor, attrs []xml.Attr) (svgshape.Shape, error)

var drawFuncs = map[string]svgFunc{
	"svg":     svgF,
	"g":       gF,
	"title":   gF,
	"desc":    gF,
	"line":    lineF,
	"rect":    rectF,
	"circle":  circleF,
	"polygon": polygonF,
}

func svgF(c *cursor, attrs []xml.Attr) (svgshape.Shape, error) {
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			err = c.getPoints(attr.Value)
			if err == nil && len(c.points) != 4 {
				return nil, errParamMismatch
			}
			if err == nil {
				c.drawing.ViewBox = svgshape.Extent{
					MinX: c.points[0],
					MinY: c.points[1],
					MaxX: c.points[0] + c.points[2],
					MaxY: c.points[1] + c.points[3],
				}
			}
		case "width":
			c.drawing.Width = attr.Value
		case "height":
			c.drawing.Height = attr.Value
		}
		if err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func gF(*cursor, []xml.Attr) (svgshape.Shape, error) { return nil, nil } // only push the style

func rectF(c *cursor, attrs []xml.Attr) (svgshape.Shape, error) {
	var x, y, w, h float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = parseFloat(attr.Value)
		case "y":
			y, err = parseFloat(attr.Value)
		case "width":
			w, err = parseFloat(attr.Value)
		case "height":
			h, err = parseFloat(attr.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	return svgshape.NewRect(svgshape.Pt(x+w/2, y+h/2), svgshape.Pt(w, h), nil)
}

func circleF(c *cursor, attrs []xml.Attr) (svgshape.Shape, error) {
	var cx, cy, r float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = parseFloat(attr.Value)
		case "cy":
			cy, err = parseFloat(attr.Value)
		case "r":
			r, err = parseFloat(attr.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	return svgshape.NewCircle(svgshape.Pt(cx, cy), r, nil)
}

func lineF(c *cursor, attrs []xml.Attr) (svgshape.Shape, error) {
	var x1, x2, y1, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseFloat(attr.Value)
		case "x2":
			x2, err = parseFloat(attr.Value)
		case "y1":
			y1, err = parseFloat(attr.Value)
		case "y2":
			y2, err = parseFloat(attr.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	return svgshape.NewLine(svgshape.Pt(x1, y1), svgshape.Pt(x2, y2), nil)
}

func polygonF(c *cursor, attrs []xml.Attr) (svgshape.Shape, error) {
	c.points = c.points[:0]
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		if err := c.getPoints(attr.Value); err != nil {
			return nil, err
		}
		if len(c.points)%2 != 0 {
			return nil, errors.New("polygon has odd number of points")
		}
	}
	pts := make([]svgshape.Point, len(c.points)/2)
	for i := range pts {
		pts[i] = svgshape.Pt(c.points[2*i], c.points[2*i+1])
	}
	return svgshape.NewPolygon(pts, nil)
}
