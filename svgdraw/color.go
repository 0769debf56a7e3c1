package svgdraw

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var errUnknownColor = errors.New("unknown color")

// ParseColor resolves an SVG color token: a color keyword (such as "navy"),
// or an hexadecimal #rgb or #rrggbb value.
// "none" and "transparent" return a nil color, meaning no paint.
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "none", "transparent", "":
		return nil, nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHexColor(v[1:])
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%q: %w", s, errUnknownColor)
}

func parseHexColor(v string) (color.Color, error) {
	switch len(v) {
	case 3: // #rgb is a shorthand for #rrggbb
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	case 6:
	default:
		return nil, fmt.Errorf("#%s: %w", v, errUnknownColor)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("#%s: %w", v, errUnknownColor)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}
