package svgread

import (
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/svgcad/svgcanvas"
	"github.com/benoitkugler/svgcad/svgshape"
)

func renderSample(t *testing.T) string {
	t.Helper()
	opts := svgcanvas.Options{Background: "lightblue", BorderWidth: 4, BorderColor: "red", Margin: 10}
	c := svgcanvas.New(opts)
	dashed := &svgshape.Style{LineWidth: 2, LineColor: "navy", LineStyle: svgshape.Dashed, FillColor: "none", Opacity: 0.5}
	steps := []error{
		c.AddRect(svgshape.Pt(0, 0), svgshape.Pt(40, 20), nil),
		c.AddCircle(svgshape.Pt(100, 50), 10, nil),
		c.AddLine(svgshape.Pt(0, 0), svgshape.Pt(60, -30), dashed),
		c.AddPolygon([]svgshape.Point{{X: 20, Y: 20}, {X: 80, Y: 60}, {X: 100, Y: 20}}, nil),
	}
	for _, err := range steps {
		if err != nil {
			t.Fatal(err)
		}
	}
	out, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	src := renderSample(t)

	drawing, err := ReadDocument(strings.NewReader(src), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if drawing.ViewBox != (svgshape.Extent{MaxX: 150, MaxY: 110}) {
		t.Fatalf("unexpected view box %v", drawing.ViewBox)
	}
	if drawing.Width != "1cm" || drawing.Height != "1cm" {
		t.Fatalf("unexpected size %s x %s", drawing.Width, drawing.Height)
	}
	if drawing.Border == nil {
		t.Fatal("missing border")
	}
	if len(drawing.Shapes) != 4 {
		t.Fatalf("expected 4 shapes, got %d", len(drawing.Shapes))
	}
	kinds := []svgshape.Kind{svgshape.KindRect, svgshape.KindCircle, svgshape.KindLine, svgshape.KindPolygon}
	for i, s := range drawing.Shapes {
		if s.Kind() != kinds[i] {
			t.Errorf("shape %d: expected %s, got %s", i, kinds[i], s.Kind())
		}
	}
	if st := drawing.Shapes[2].Style(); st.LineStyle != svgshape.Dashed || st.Opacity != 0.5 || st.LineColor != "navy" {
		t.Errorf("unexpected line style %+v", *st)
	}

	c, err := drawing.Canvas(svgcanvas.Options{Margin: 10})
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	if out != src {
		t.Errorf("round trip mismatch: expected\n%s\ngot\n%s", src, out)
	}
}

func TestSharedStyles(t *testing.T) {
	src := `<svg viewBox="0 0 100 100">
	<g fill="blue" opacity="0.5">
		<rect x="10" y="10" width="10" height="10" stroke="black" stroke-width="1" />
		<rect x="30" y="10" width="10" height="10" style="stroke: black; stroke-width: 1" />
		<circle cx="50" cy="50" r="5" opacity="0.5" stroke-dasharray="3 3" />
	</g>
	</svg>`
	drawing, err := ReadDocument(strings.NewReader(src), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if drawing.Border != nil {
		t.Fatal("small rectangle taken as border")
	}
	if len(drawing.Shapes) != 3 {
		t.Fatalf("expected 3 shapes, got %d", len(drawing.Shapes))
	}
	s1, s2, s3 := drawing.Shapes[0].Style(), drawing.Shapes[1].Style(), drawing.Shapes[2].Style()
	if s1 != s2 {
		t.Error("identical styles should be shared")
	}
	if s1.FillColor != "blue" || s1.Opacity != 0.5 {
		t.Errorf("inherited style not applied: %+v", *s1)
	}
	if s3.Opacity != 0.25 || s3.LineStyle != svgshape.Dotted {
		t.Errorf("unexpected circle style %+v", *s3)
	}
}

func TestErrorModes(t *testing.T) {
	src := `<svg viewBox="0 0 10 10"><path d="M0 0 L10 10" /><line x1="0" y1="0" x2="5" y2="5" /></svg>`

	for _, mode := range []ErrorMode{IgnoreErrorMode, WarnErrorMode} {
		drawing, err := ReadDocument(strings.NewReader(src), mode)
		if err != nil {
			t.Fatal(err)
		}
		if len(drawing.Shapes) != 1 {
			t.Fatalf("expected 1 shape, got %d", len(drawing.Shapes))
		}
	}

	_, err := ReadDocument(strings.NewReader(src), StrictErrorMode)
	if !errors.Is(err, errUnsupported) {
		t.Fatalf("expected unsupported element error, got %v", err)
	}
}

func TestInvalidInput(t *testing.T) {
	for _, src := range []string{
		``,
		`<svg viewBox="0 0 10"></svg>`,
		`<svg><polygon points="1,2 3" /></svg>`,
		`<svg><polygon points="" /></svg>`,
		`<svg><rect x="a" /></svg>`,
		`<svg><rect fill="notacolor" /></svg>`,
		`<svg><circle r="NaN" /></svg>`,
	} {
		if _, err := ReadDocument(strings.NewReader(src), IgnoreErrorMode); err == nil {
			t.Errorf("expected error for %q", src)
		}
	}
}

func TestCharset(t *testing.T) {
	src := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<svg viewBox=\"0 0 10 10\"><title>caf\xe9</title><circle cx=\"5\" cy=\"5\" r=\"2\" /></svg>"
	drawing, err := ReadDocument(strings.NewReader(src), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(drawing.Shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(drawing.Shapes))
	}
}
