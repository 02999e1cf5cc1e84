package hoop

import "fmt"

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// HolePosition is where a leg would land if drilled plumb and where it
// actually lands at hole height, in canvas coordinates.
type HolePosition struct {
	Leg    LegName   `json:"leg" yaml:"leg"`
	Plumb  Point     `json:"plumb" yaml:"plumb"`
	Offset Point     `json:"offset" yaml:"offset"`
	Radius float64   `json:"radius" yaml:"radius"`
	Label  Point     `json:"label" yaml:"label"`
	X      AxisLabel `json:"-" yaml:"-"`
	Y      AxisLabel `json:"-" yaml:"-"`
}

// Layout places the three legs of a resolved side around (cx, cy). The two
// front legs sit left and right on one line, the rear leg centred behind it.
func Layout(side Side, spacing Spacing, cx, cy float64) ([]HolePosition, error) {
	if !side.Resolved() {
		return nil, fmt.Errorf("layout: %w", ErrUnresolved)
	}
	frontY := cy - spacing.RearToFrontLine/2
	plumb := map[LegName]Point{
		OuterLeg: {X: cx - spacing.FrontLegs/2, Y: frontY},
		InnerLeg: {X: cx + spacing.FrontLegs/2, Y: frontY},
		RearLeg:  {X: cx, Y: cy + spacing.RearToFrontLine/2},
	}

	out := make([]HolePosition, 0, len(legNames))
	for _, leg := range legNames {
		p := side.Leg(leg)
		for _, axis := range axes {
			if v := p.Axis(axis).Value(); !finite(v) {
				return nil, fmt.Errorf("layout %s %s = %g: %w", leg, axis, v, ErrNotFinite)
			}
		}
		hole := plumb[leg]
		dia := spacing.Diameter(leg)
		x, y := PlaneLabels(*p)
		out = append(out, HolePosition{
			Leg:   leg,
			Plumb: hole,
			Offset: Point{
				X: hole.X + p.NsToOs.Value(),
				Y: hole.Y + p.FrontToBack.Value(),
			},
			Radius: dia / 2,
			Label:  Point{X: hole.X + dia/1.5, Y: hole.Y},
			X:      x,
			Y:      y,
		})
	}
	return out, nil
}
