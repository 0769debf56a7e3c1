package scene

func ptr(v float64) *float64 { return &v }

// Demo returns the sample drawing: a 15x15 grid of rectangles
// with a circle at their centers, a line, a triangle and an arrow.
func Demo() *Scene {
	margin := 40.
	s := &Scene{
		Canvas: CanvasConfig{
			Background:  "lightblue",
			BorderWidth: 5,
			BorderColor: "red",
			Margin:      &margin,
		},
		Styles: map[string]StyleConfig{
			"default":   {LineWidth: ptr(10), FillColor: "yellow", LineColor: "navy"},
			"highlight": {LineWidth: ptr(10), FillColor: "olive", LineColor: "black"},
			"arrow":     {LineWidth: ptr(0), FillColor: "black", LineColor: "black"},
		},
	}
	for i := 0; i < 15; i++ {
		for j := 0; j < 15; j++ {
			center := Vec{500 * float64(i), 300 * float64(j)}
			s.Shapes = append(s.Shapes,
				ShapeConfig{Kind: KindRect, Center: center, Size: Vec{400, 200}, Style: "default"},
				ShapeConfig{Kind: KindCircle, Center: center, Radius: 100, Style: "highlight"},
			)
		}
	}
	s.Shapes = append(s.Shapes,
		ShapeConfig{Kind: KindLine, Start: Vec{0, 0}, End: Vec{200, 200}, Style: "default"},
		ShapeConfig{Kind: KindPolygon, Points: []Vec{{20, 20}, {80, 60}, {100, 20}}, Style: "default"},
		ShapeConfig{Kind: KindArrow, Start: Vec{200, 500}, End: Vec{500, 500}, LineWidth: 10, HeadSize: 60, Style: "arrow"},
	)
	return s
}
