// Command svgcad renders a scene file, or the built-in demo,
// to SVG, PNG or PDF.
//
// Usage:
//
//	svgcad [-in scene.yaml|drawing.svg] [-out file] [-format svg|png|pdf] [-precision n]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgcad/scene"
	"github.com/benoitkugler/svgcad/svgcanvas"
	"github.com/benoitkugler/svgcad/svgread"
	"github.com/benoitkugler/svgcad/svgshape"
)

func main() {
	input := flag.String("in", "", "scene (.yaml) or SVG file to render; the demo scene when empty")
	output := flag.String("out", "", "output file; standard output when empty")
	format := flag.String("format", "", "output format: svg, png or pdf (default: from the -out extension)")
	precision := flag.Int("precision", -1, "number of decimals for SVG coordinates (default: from the scene)")
	dump := flag.Bool("dump", false, "print the demo scene as YAML and exit")
	flag.Parse()

	if *dump {
		if err := scene.Demo().Encode(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	f, err := formatFor(*format, *output)
	if err != nil {
		log.Fatal(err)
	}

	canvas, err := load(*input)
	if err != nil {
		log.Fatal(err)
	}
	doc, err := canvas.Layout()
	if err != nil {
		log.Fatal(err)
	}
	if *precision >= 0 {
		doc.Precision = svgshape.Precision(*precision)
	}

	if *output == "" {
		err = write(os.Stdout, f, doc)
	} else {
		err = writeFile(*output, f, doc)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// writeFile saves the document into the named file,
// which is removed if the document can't be written.
func writeFile(name string, format Format, doc *svgcanvas.Document) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(file, format, doc)
	if errc := file.Close(); err == nil {
		err = errc
	}
	if err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

func load(input string) (*svgcanvas.Canvas, error) {
	if input == "" {
		return scene.Demo().Build()
	}
	if strings.EqualFold(filepath.Ext(input), ".svg") {
		drawing, err := svgread.ReadFile(input, svgread.WarnErrorMode)
		if err != nil {
			return nil, err
		}
		return drawing.Canvas(svgcanvas.DefaultOptions)
	}
	s, err := scene.LoadFile(input)
	if err != nil {
		return nil, err
	}
	return s.Build()
}
