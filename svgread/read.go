// Provides parsing of SVG documents made of lines, rectangles,
// circles and polygons, such as the ones written by svgcanvas,
// back into shapes.
package svgread

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/benoitkugler/svgcad/svgcanvas"
	"github.com/benoitkugler/svgcad/svgshape"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how the parser reacts to unsupported elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported SVG elements
	IgnoreErrorMode ErrorMode = iota

	// WarnErrorMode logs a warning for unsupported SVG elements
	WarnErrorMode

	// StrictErrorMode returns an error for unsupported SVG elements
	StrictErrorMode
)

var (
	errParamMismatch = errors.New("SVG Parse: param mismatch")
	errNoSVG         = errors.New("SVG Parse: invalid svg document")
	errUnsupported   = errors.New("SVG Parse: unsupported element")
)

// Drawing holds data from parsed documents.
type Drawing struct {
	ViewBox       svgshape.Extent
	Width, Height string // top level width and height attributes

	// Border is the first element of the document, if it is a rectangle.
	Border *svgshape.Rect
	// Shapes, in document order, Border excluded.
	Shapes []svgshape.Shape
}

// cursor is used while parsing documents
type cursor struct {
	drawing    *Drawing
	styleStack []svgshape.Style
	styles     map[svgshape.Style]*svgshape.Style // shared styles
	errorMode  ErrorMode
	points     []float64
	seenShape  bool
}

// ReadDocument reads the document from the given io.Reader.
// errMode determines if the parser ignores, errors out, or logs a warning
// if it does not handle an element found in the document.
func ReadDocument(stream io.Reader, errMode ErrorMode) (*Drawing, error) {
	c := &cursor{
		drawing:    &Drawing{},
		styleStack: []svgshape.Style{svgshape.DefaultStyle},
		styles:     make(map[svgshape.Style]*svgshape.Style),
		errorMode:  errMode,
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errNoSVG
				}
				break
			}
			return c.drawing, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			if err = c.pushStyle(se.Attr); err != nil {
				return c.drawing, fmt.Errorf("<%s>: %w", se.Name.Local, err)
			}
			if err = c.readStartElement(se); err != nil {
				return c.drawing, fmt.Errorf("<%s>: %w", se.Name.Local, err)
			}
		case xml.EndElement:
			// pop style
			c.styleStack = c.styleStack[:len(c.styleStack)-1]
		}
	}
	return c.drawing, nil
}

// ReadFile reads the document from the named file.
func ReadFile(name string, errMode ErrorMode) (*Drawing, error) {
	fin, errf := os.Open(name)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadDocument(fin, errMode)
}

func (c *cursor) handleError(msg string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return fmt.Errorf("%s: %w", msg, errUnsupported)
	case WarnErrorMode:
		log.Println(msg)
	}
	return nil
}

func (c *cursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.handleError("Cannot process svg element " + se.Name.Local)
	}
	shape, err := df(c, se.Attr)
	if err != nil || shape == nil {
		return err
	}
	shape.SetStyle(c.currentStyle())

	rect, isRect := shape.(*svgshape.Rect)
	if !c.seenShape && isRect && c.spansViewBox(rect) {
		c.drawing.Border = rect
	} else {
		c.drawing.Shapes = append(c.drawing.Shapes, shape)
	}
	c.seenShape = true
	return nil
}

// currentStyle returns the style on top of the stack, identical
// styles being shared by the shapes of the drawing.
func (c *cursor) currentStyle() *svgshape.Style {
	st := c.styleStack[len(c.styleStack)-1]
	if shared, ok := c.styles[st]; ok {
		return shared
	}
	shared := new(svgshape.Style)
	*shared = st
	c.styles[st] = shared
	return shared
}

// spansViewBox returns true if the outline of `rect` reaches the
// edges of the view box, up to the truncation of the coordinates.
func (c *cursor) spansViewBox(rect *svgshape.Rect) bool {
	vb := c.drawing.ViewBox
	if vb.Width() <= 0 || vb.Height() <= 0 {
		return false
	}
	ext := rect.Extent()
	tol := rect.Style().LineWidth/2 + 1
	return ext.MinX <= vb.MinX+tol && ext.MinY <= vb.MinY+tol &&
		ext.MaxX >= vb.MaxX-tol && ext.MaxY >= vb.MaxY-tol
}

// Canvas returns a new canvas holding the shapes of the drawing.
// When the drawing has a border, its paint overrides
// the background and border fields of `opts`.
func (d *Drawing) Canvas(opts svgcanvas.Options) (*svgcanvas.Canvas, error) {
	if d.Border != nil {
		style := d.Border.Style()
		opts.Background = style.FillColor
		opts.BorderColor = style.LineColor
		opts.BorderWidth = style.LineWidth
	}
	c := svgcanvas.New(opts)
	for _, s := range d.Shapes {
		if err := c.AddShape(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}
