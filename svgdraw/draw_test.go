package svgdraw

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/benoitkugler/svgcad/svgcanvas"
	"github.com/benoitkugler/svgcad/svgshape"
	"golang.org/x/image/math/fixed"
)

// recorder logs the calls it receives
type recorder struct {
	name string
	log  *[]string
}

func (r recorder) add(format string, args ...interface{}) {
	*r.log = append(*r.log, r.name+" "+fmt.Sprintf(format, args...))
}

func (r recorder) Clear() { r.add("clear") }
func (r recorder) Start(a fixed.Point26_6) { r.add("start %d,%d", a.X/64, a.Y/64) }
func (r recorder) Line(b fixed.Point26_6) { r.add("line %d,%d", b.X/64, b.Y/64) }
func (r recorder) CubeBezier(b, c, d fixed.Point26_6) { r.add("cubic") }
func (r recorder) Stop(closeLoop bool) { r.add("stop %v", closeLoop) }
func (r recorder) Draw() { r.add("draw") }
func (r recorder) SetWinding(bool) {}
func (r recorder) SetStrokeOptions(o StrokeOptions) { r.add("width %d dash %v", o.LineWidth/64, o.Dash) }
func (r recorder) SetColor(c color.Color, opacity float64) {
	cr, cg, cb, _ := c.RGBA()
	r.add("color %d,%d,%d %g", cr>>8, cg>>8, cb>>8, opacity)
}

type recordingDriver struct {
	log []string
}

func (d *recordingDriver) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var (
		f Filler
		s Stroker
	)
	if willFill {
		f = recorder{name: "fill", log: &d.log}
	}
	if willStroke {
		s = recorder{name: "stroke", log: &d.log}
	}
	return f, s
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.Color
	}{
		{"navy", color.RGBA{0x00, 0x00, 0x80, 0xff}},
		{"LightBlue", color.RGBA{0xad, 0xd8, 0xe6, 0xff}},
		{"#ff8000", color.RGBA{0xff, 0x80, 0x00, 0xff}},
		{"#f80", color.RGBA{0xff, 0x88, 0x00, 0xff}},
		{"none", nil},
		{"", nil},
	} {
		got, err := ParseColor(test.in)
		if err != nil {
			t.Fatalf("%s: %s", test.in, err)
		}
		if got != test.want {
			t.Errorf("%s: expected %v, got %v", test.in, test.want, got)
		}
	}

	for _, in := range []string{"notacolor", "#12", "#zzzzzz"} {
		if _, err := ParseColor(in); !errors.Is(err, errUnknownColor) {
			t.Errorf("%s: expected an error, got %v", in, err)
		}
	}
}

func TestShapePathBounds(t *testing.T) {
	rect, _ := svgshape.NewRect(svgshape.Pt(10, 20), svgshape.Pt(8, 4), nil)
	circle, _ := svgshape.NewCircle(svgshape.Pt(50, 50), 10, nil)
	poly, _ := svgshape.NewPolygon([]svgshape.Point{{X: 0, Y: 0}, {X: 30, Y: 5}, {X: 12, Y: 40}}, nil)
	line, _ := svgshape.NewLine(svgshape.Pt(3, 9), svgshape.Pt(1, 2), nil)

	for _, s := range []svgshape.Shape{rect, circle, poly, line} {
		ext := s.Extent()
		want := fixed.Rectangle26_6{Min: toFixedP(ext.MinX, ext.MinY), Max: toFixedP(ext.MaxX, ext.MaxY)}
		if got := ShapePath(s).Bounds(); got != want {
			t.Errorf("%s: expected bounds %v, got %v", s.Kind(), want, got)
		}
	}
}

func TestShapePath(t *testing.T) {
	line, _ := svgshape.NewLine(svgshape.Pt(0, 0), svgshape.Pt(2, 3), nil)
	if got := ShapePath(line).String(); got != "M0.000,0.000 L2.000,3.000" {
		t.Errorf("unexpected line path %s", got)
	}
	poly, _ := svgshape.NewPolygon([]svgshape.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}, nil)
	if got := ShapePath(poly).String(); got != "M0.000,0.000 L2.000,0.000 L1.000,1.000 Z" {
		t.Errorf("unexpected polygon path %s", got)
	}
	circle, _ := svgshape.NewCircle(svgshape.Pt(0, 0), 1, nil)
	if got := ShapePath(circle).String(); strings.Count(got, "C") != 4 || !strings.HasSuffix(got, "Z") {
		t.Errorf("unexpected circle path %s", got)
	}
}

func TestDrawDocument(t *testing.T) {
	c := svgcanvas.New(svgcanvas.Options{Background: "white", BorderColor: "none", Margin: 10})
	thick := &svgshape.Style{LineWidth: 4, LineColor: "blue", LineStyle: svgshape.Dashed, FillColor: "none", Opacity: 0.5}
	if err := c.AddLine(svgshape.Pt(0, 0), svgshape.Pt(10, 0), nil); err != nil {
		t.Fatal(err)
	}
	if err := c.AddRect(svgshape.Pt(5, 5), svgshape.Pt(10, 10), thick); err != nil {
		t.Fatal(err)
	}
	doc, err := c.Layout()
	if err != nil {
		t.Fatal(err)
	}

	var d recordingDriver
	if err := DrawDocument(doc, &d); err != nil {
		t.Fatal(err)
	}
	want := []string{
		// border: filled only
		"fill clear", "fill stop false", "fill start 0,0", "fill line 30,0", "fill line 30,30", "fill line 0,30",
		"fill stop true", "fill stop false", "fill color 255,255,255 1", "fill draw",
		// line: stroked only
		"stroke clear", "stroke width 1 dash []", "stroke stop false", "stroke start 10,10", "stroke line 20,10",
		"stroke stop false", "stroke color 0,0,0 1", "stroke draw",
		// rect: no fill
		"stroke clear", "stroke width 4 dash [16 8]", "stroke stop false", "stroke start 10,10", "stroke line 20,10",
		"stroke line 20,20", "stroke line 10,20", "stroke stop true", "stroke stop false",
		"stroke color 0,0,255 0.5", "stroke draw",
	}
	if len(d.log) != len(want) {
		t.Fatalf("expected %d calls, got %d:\n%s", len(want), len(d.log), strings.Join(d.log, "\n"))
	}
	for i := range want {
		if d.log[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], d.log[i])
		}
	}
}

func TestDrawUnknownColor(t *testing.T) {
	c := svgcanvas.New(svgcanvas.DefaultOptions)
	_ = c.AddCircle(svgshape.Pt(0, 0), 3, &svgshape.Style{LineWidth: 1, LineColor: "black", FillColor: "blurple", Opacity: 1})
	doc, err := c.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if err := DrawDocument(doc, new(recordingDriver)); !errors.Is(err, errUnknownColor) {
		t.Fatalf("expected errUnknownColor, got %v", err)
	}
}
