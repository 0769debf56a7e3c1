package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgcad/svgcanvas"
	"github.com/benoitkugler/svgcad/svgpdf"
	"github.com/benoitkugler/svgcad/svgraster"
)

// Format is an output format
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unknown format: %q (valid: svg, png, pdf)", s)
	}
}

// formatFor returns the explicit format if given, or the one
// matching the extension of the output file, defaulting to svg.
func formatFor(explicit, output string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	if ext := filepath.Ext(output); ext != "" {
		return ParseFormat(ext[1:])
	}
	return FormatSVG, nil
}

func write(w io.Writer, format Format, doc *svgcanvas.Document) error {
	switch format {
	case FormatPNG:
		return svgraster.WritePNG(w, doc)
	case FormatPDF:
		return svgpdf.WritePDF(w, doc)
	default:
		_, err := doc.WriteTo(w)
		return err
	}
}
