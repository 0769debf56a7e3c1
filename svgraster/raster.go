// Implements a raster backend to render canvas documents,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/benoitkugler/svgcad/svgcanvas"
	"github.com/benoitkugler/svgcad/svgdraw"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints with rasterx. The filler and the dasher
// share the same scanner, and are used one after the other.
type Renderer struct {
	dasher *rasterx.Dasher
	filler *rasterx.Filler
}

// NewRenderer returns a renderer with default values.
// If scanner is nil, a default scanner rasterx.ScannerGV is used,
// writing into a new image.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	if scanner == nil {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		scanner = rasterx.NewScannerGV(width, height, img, img.Bounds())
	}
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

// default SVG stroking parameters
const miterLimit = 4

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.SetStroke(
		options.LineWidth, fixed.Int26_6(miterLimit*64), rasterx.ButtCap,
		rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, options.Dash, 0,
	)
}

// imageSize returns the pixel size of the document, rounded up.
func imageSize(doc *svgcanvas.Document) (int, int) {
	return int(math.Ceil(doc.Width)), int(math.Ceil(doc.Height))
}

// RasterDocument uses a ScannerGV instance to render the
// document into an image and returns it.
func RasterDocument(doc *svgcanvas.Document) (*image.RGBA, error) {
	w, h := imageSize(doc)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, scanner)
	if err := svgdraw.DrawDocument(doc, renderer); err != nil {
		return nil, err
	}
	return img, nil
}

// WritePNG renders the document and encodes it as PNG.
func WritePNG(w io.Writer, doc *svgcanvas.Document) error {
	img, err := RasterDocument(doc)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
