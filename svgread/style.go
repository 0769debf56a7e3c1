package svgread

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgcad/svgdraw"
	"github.com/benoitkugler/svgcad/svgshape"
)

func (c *cursor) readStyleAttr(curStyle *svgshape.Style, k, v string) error {
	switch k {
	case "fill":
		if _, err := svgdraw.ParseColor(v); err != nil {
			return err
		}
		curStyle.FillColor = v
	case "stroke":
		if _, err := svgdraw.ParseColor(v); err != nil {
			return err
		}
		curStyle.LineColor = v
	case "stroke-width":
		width, err := parseFloat(v)
		if err != nil {
			return err
		}
		curStyle.LineWidth = width
	case "stroke-dasharray":
		if v == "none" {
			curStyle.LineStyle = svgshape.Solid
			break
		}
		dashes := splitOnCommaOrSpace(v)
		dList := make([]float64, len(dashes))
		for i, dstr := range dashes {
			d, err := parseFloat(dstr)
			if err != nil {
				return err
			}
			dList[i] = d
		}
		curStyle.LineStyle = lineStyle(dList)
	case "opacity":
		op, err := parseFloat(v)
		if err != nil {
			return err
		}
		curStyle.Opacity *= op
	}
	return nil
}

// lineStyle maps a dash array to the closest line style:
// even patterns are dotted, other ones dashed.
func lineStyle(dashes []float64) string {
	switch len(dashes) {
	case 0:
		return svgshape.Solid
	case 1:
		return svgshape.Dotted
	}
	for _, d := range dashes[1:] {
		if d != dashes[0] {
			return svgshape.Dashed
		}
	}
	return svgshape.Dotted
}

// pushStyle parses the style attribute and the presentation
// attributes of an element, and push the result on the style stack.
func (c *cursor) pushStyle(attrs []xml.Attr) error {
	var pairs []string
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name.Local) {
		case "style":
			pairs = append(pairs, strings.Split(attr.Value, ";")...)
		default:
			pairs = append(pairs, attr.Name.Local+":"+attr.Value)
		}
	}
	// Make a copy of the top style
	curStyle := c.styleStack[len(c.styleStack)-1]
	for _, pair := range pairs {
		kv := strings.Split(pair, ":")
		if len(kv) >= 2 {
			k := strings.TrimSpace(strings.ToLower(kv[0]))
			v := strings.TrimSpace(kv[1])
			if err := c.readStyleAttr(&curStyle, k, v); err != nil {
				return err
			}
		}
	}
	c.styleStack = append(c.styleStack, curStyle)
	return nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\n' || r == '\t'
		})
}

// parseFloat accepts an optional "px" unit.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	return strconv.ParseFloat(s, 64)
}

// getPoints reads a list of numbers into c.points.
func (c *cursor) getPoints(data string) error {
	c.points = c.points[:0]
	for _, f := range splitOnCommaOrSpace(data) {
		v, err := parseFloat(f)
		if err != nil {
			return err
		}
		c.points = append(c.points, v)
	}
	return nil
}
