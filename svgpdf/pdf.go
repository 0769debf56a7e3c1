// Implements a PDF backend to render canvas documents,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/svgcad/svgcanvas"
	"github.com/benoitkugler/svgcad/svgdraw"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdraw.Driver  = Renderer{}
	_ svgdraw.Filler  = (*filler)(nil)
	_ svgdraw.Stroker = (*stroker)(nil)
)

// PixelSize is the length of a canvas pixel, in millimeters.
// It matches the physical size written in the SVG header.
const PixelSize = 0.1

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`, whose unit must be the millimeter.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

func (rd Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		f = &filler{pather: pather{rd.pdf}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather{rd.pdf}}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64 * PixelSize, float64(a.Y) / 64 * PixelSize
}

func (p pather) Clear() {}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// rgb returns the 8 bits components and the alpha of c
func rgb(c color.Color) (r, g, b int, alpha float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B), float64(nc.A) / 255
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, a := rgb(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(opacity*a, "")
}

func (f *filler) Draw() {
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64 * PixelSize)
	dashes := make([]float64, len(options.Dash))
	for i, d := range options.Dash {
		dashes[i] = d * PixelSize
	}
	s.pdf.SetDashPattern(dashes, 0)
}

func (s *stroker) SetColor(c color.Color, opacity float64) {
	r, g, b, a := rgb(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(opacity*a, "")
}

func (s *stroker) Draw() {
	s.pdf.DrawPath("D")
}

// RenderDocument draws the document on a single page,
// sized to the document.
func RenderDocument(doc *svgcanvas.Document) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: doc.Width * PixelSize, Ht: doc.Height * PixelSize},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	if err := svgdraw.DrawDocument(doc, NewRenderer(pdf)); err != nil {
		return nil, err
	}
	return pdf, pdf.Error()
}

// WritePDF renders the document and writes the PDF file to w.
func WritePDF(w io.Writer, doc *svgcanvas.Document) error {
	pdf, err := RenderDocument(doc)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// WriteFile renders the document into the named PDF file.
func WriteFile(name string, doc *svgcanvas.Document) error {
	pdf, err := RenderDocument(doc)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(name)
}
