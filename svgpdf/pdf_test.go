package svgpdf

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/svgcad/svgcanvas"
	"github.com/benoitkugler/svgcad/svgshape"
)

func demoDocument(t *testing.T) *svgcanvas.Document {
	t.Helper()
	style := &svgshape.Style{LineWidth: 10, LineColor: "navy", LineStyle: svgshape.Dashed, FillColor: "yellow", Opacity: 0.8}
	c := svgcanvas.New(svgcanvas.Options{Background: "lightblue", BorderWidth: 5, BorderColor: "red", Margin: 40})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if err := c.AddRect(svgshape.Pt(float64(500*i), float64(300*j)), svgshape.Pt(400, 200), style); err != nil {
				t.Fatal(err)
			}
			if err := c.AddCircle(svgshape.Pt(float64(500*i), float64(300*j)), 100, nil); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := c.AddLine(svgshape.Pt(0, 0), svgshape.Pt(200, 200), style); err != nil {
		t.Fatal(err)
	}
	if err := c.AddArrow(svgshape.Pt(200, 500), svgshape.Pt(500, 500), 10, 60, nil); err != nil {
		t.Fatal(err)
	}
	doc, err := c.Layout()
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRenderDocument(t *testing.T) {
	doc := demoDocument(t)
	pdf, err := RenderDocument(doc)
	if err != nil {
		t.Fatalf("can't render pdf: %s", err)
	}
	if pdf.PageNo() != 1 {
		t.Fatalf("expected a single page, got %d", pdf.PageNo())
	}
	w, h := pdf.GetPageSize()
	if math.Abs(w-doc.Width*PixelSize) > 1e-9 || math.Abs(h-doc.Height*PixelSize) > 1e-9 {
		t.Errorf("unexpected page size %gx%g for a %gx%g document", w, h, doc.Width, doc.Height)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, demoDocument(t)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("output is not a PDF file")
	}
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "demo.pdf")
	if err := WriteFile(name, demoDocument(t)); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatal("output is not a PDF file")
	}
}

func TestUnknownColor(t *testing.T) {
	c := svgcanvas.New(svgcanvas.DefaultOptions)
	_ = c.AddLine(svgshape.Pt(0, 0), svgshape.Pt(5, 5), &svgshape.Style{LineWidth: 1, LineColor: "bleu", Opacity: 1})
	doc, err := c.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := RenderDocument(doc); err == nil {
		t.Fatal("expected an error for an unknown color")
	}
}
