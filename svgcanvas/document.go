package svgcanvas

import (
	"io"
	"os"

	"github.com/benoitkugler/svgcad/svgshape"
)

// Document is a laid out canvas: every shape is in its final
// position, inside the [0, Width] x [0, Height] area.
type Document struct {
	Width, Height float64
	// Border is the background rectangle, drawn first.
	Border *svgshape.Rect
	// Shapes in drawing order.
	Shapes    []svgshape.Shape
	Precision svgshape.Precision
}

// AppendSVG appends the SVG markup of the document to dst.
func (doc *Document) AppendSVG(dst []byte) []byte {
	dst = append(dst, "<?xml version=\"1.0\" standalone=\"no\"?>\n"...)
	dst = append(dst, `<svg width="`...)
	dst = svgshape.Precision(0).AppendNumber(dst, doc.Width/100)
	dst = append(dst, `cm" height="`...)
	dst = svgshape.Precision(0).AppendNumber(dst, doc.Height/100)
	dst = append(dst, `cm" viewBox="0 0 `...)
	dst = doc.Precision.AppendNumber(dst, doc.Width)
	dst = append(dst, ' ')
	dst = doc.Precision.AppendNumber(dst, doc.Height)
	dst = append(dst, "\"\n     xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n"...)
	dst = doc.Border.AppendSVG(dst, doc.Precision)
	for _, s := range doc.Shapes {
		dst = s.AppendSVG(dst, doc.Precision)
	}
	return append(dst, "</svg>"...)
}

// String returns the SVG markup of the document.
func (doc *Document) String() string { return string(doc.AppendSVG(nil)) }

// WriteTo writes the SVG markup to w.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(doc.AppendSVG(nil))
	return int64(n), err
}

// WriteFile saves the SVG markup into the named file.
func (doc *Document) WriteFile(name string) error {
	return os.WriteFile(name, doc.AppendSVG(nil), 0o644)
}
