// Implements the geometric shapes which may be placed on a canvas,
// and their serialization to SVG markup.
package svgshape

import (
	"errors"
	"strconv"
)

// ErrInvalidGeometry is returned when a shape is built from
// non finite coordinates or from an empty vertex list.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Kind identifies the concrete type of a Shape.
type Kind uint8

const (
	KindLine Kind = iota
	KindRect
	KindCircle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	default:
		return "<unknown Kind>"
	}
}

// Shape is one of *Line, *Rect, *Circle or *Polygon.
type Shape interface {
	Kind() Kind

	// ID returns the identity token of the shape, which is not
	// used when drawing.
	ID() string
	SetID(id string)

	// Extent returns the bounding box of the shape.
	// For circles, this is the enclosing square.
	Extent() Extent

	// Style returns the style in effect, which may be nil
	// (in which case DefaultStyle is used when drawing).
	Style() *Style
	SetStyle(s *Style)
	// CopyStyle makes the shape use the same style as `from`.
	CopyStyle(from Shape)

	// Translate shifts every coordinate of the shape by (dx, dy).
	Translate(dx, dy float64)

	// AppendSVG appends the markup of the shape to dst.
	AppendSVG(dst []byte, prec Precision) []byte

	isShape()
}

// SVG returns the markup fragment for s.
func SVG(s Shape, prec Precision) string {
	return string(s.AppendSVG(nil, prec))
}

// Clone returns a deep copy of the geometry of s, sharing its style.
func Clone(s Shape) Shape {
	switch s := s.(type) {
	case *Line:
		c := *s
		return &c
	case *Rect:
		c := *s
		return &c
	case *Circle:
		c := *s
		return &c
	case *Polygon:
		c := *s
		c.points = append([]Point(nil), s.points...)
		return &c
	}
	return nil
}

// base stores what is common to every variant.
type base struct {
	id    string
	style *Style
}

const unassignedID = "unassigned"

func newBase(style *Style) base { return base{id: unassignedID, style: style} }

func (b *base) ID() string { return b.id }
func (b *base) SetID(id string) { b.id = id }
func (b *base) Style() *Style { return b.style }
func (b *base) SetStyle(s *Style) { b.style = s }
func (b *base) CopyStyle(o Shape) { b.style = o.Style() }
func (b *base) paint() *Style { return resolve(b.style) }
func (*base) isShape() {}

// Precision is the number of decimals used for coordinates.
// The zero value writes integers, truncating toward zero.
type Precision int

// AppendNumber appends the formatted coordinate v.
func (p Precision) AppendNumber(dst []byte, v float64) []byte {
	if p <= 0 {
		return strconv.AppendInt(dst, int64(v), 10)
	}
	return strconv.AppendFloat(dst, v, 'f', int(p), 64)
}

// Format returns the formatted coordinate v.
func (p Precision) Format(v float64) string {
	return string(p.AppendNumber(nil, v))
}

// appendAttr appends ` name="v"` where v is a coordinate.
func (p Precision) appendAttr(dst []byte, name string, v float64) []byte {
	dst = append(dst, ' ')
	dst = append(dst, name...)
	dst = append(dst, `="`...)
	dst = p.AppendNumber(dst, v)
	return append(dst, '"')
}

// formatWidth writes stroke widths exactly, without trailing zeros.
func formatWidth(dst []byte, w float64) []byte {
	return strconv.AppendFloat(dst, w, 'f', -1, 64)
}

// appendPaint writes the paint attributes and closes the element.
func appendPaint(dst []byte, s *Style, fill bool) []byte {
	if fill {
		dst = append(dst, `fill="`...)
		dst = append(dst, s.FillColor...)
		dst = append(dst, `" `...)
	}
	dst = append(dst, `stroke="`...)
	dst = append(dst, s.LineColor...)
	dst = append(dst, `" stroke-width="`...)
	dst = formatWidth(dst, s.LineWidth)
	dst = append(dst, '"')
	if dashes := s.Dashes(); len(dashes) != 0 {
		dst = append(dst, ` stroke-dasharray="`...)
		for i, d := range dashes {
			if i != 0 {
				dst = append(dst, ',')
			}
			dst = formatWidth(dst, d)
		}
		dst = append(dst, '"')
	}
	if s.Opacity != 1 {
		dst = append(dst, ` opacity="`...)
		dst = formatWidth(dst, s.Opacity)
		dst = append(dst, '"')
	}
	return append(dst, " />\n"...)
}
