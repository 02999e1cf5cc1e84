package hoop

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestRound(t *testing.T) {
	cases := map[float64]int{
		0.4:   0,
		0.5:   1,
		-0.5:  0,
		-0.51: -1,
		-2.5:  -2,
		12.3:  12,
		-12.7: -13,
	}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Errorf("Round(%g) = %d, want %d", in, got, want)
		}
	}
}

func TestAxisLabel(t *testing.T) {
	cases := []struct {
		axis  Axis
		v     float64
		text  string
		ascii string
	}{
		{NsToOs, 0.2, "↔ level", "level"},
		{NsToOs, 12.3, "→ 12mm", "right 12mm"},
		{NsToOs, -12.3, "← 12mm", "left 12mm"},
		{FrontToBack, -0.4, "↕ level", "level"},
		{FrontToBack, 3.6, "↓ 4mm", "back 4mm"},
		{FrontToBack, -3.6, "↑ 4mm", "forward 4mm"},
		{NsToOs, math.Inf(1), "→ ∞", "right inf"},
		{NsToOs, math.Inf(-1), "← ∞", "left inf"},
		{FrontToBack, math.Inf(1), "↓ ∞", "back inf"},
		{FrontToBack, math.Inf(-1), "↑ ∞", "forward inf"},
		{NsToOs, math.NaN(), "↔ nan", "nan"},
		{FrontToBack, AngleToAbsolute(0, 240), "↓ ∞", "back inf"},
	}
	for _, c := range cases {
		l := NewAxisLabel(c.axis, c.v)
		if l.String() != c.text {
			t.Errorf("%s %g: got %q, want %q", c.axis, c.v, l.String(), c.text)
		}
		if l.ASCII() != c.ascii {
			t.Errorf("%s %g: got %q, want %q", c.axis, c.v, l.ASCII(), c.ascii)
		}
	}
}

func TestRoundNonFinite(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if got := Round(v); got != 0 {
			t.Errorf("Round(%g) = %d, want 0", v, got)
		}
		if l := NewAxisLabel(NsToOs, v); l.Finite || l.Level() {
			t.Errorf("%g: label %+v should be non-finite and not level", v, l)
		}
	}
}

func TestOffsetLabel(t *testing.T) {
	cases := map[float64]string{
		-3.98:        "-4mm",
		0.2:          "0mm",
		math.Inf(1):  "+inf",
		math.Inf(-1): "-inf",
	}
	for in, want := range cases {
		if got := OffsetLabel(in); got != want {
			t.Errorf("OffsetLabel(%g) = %q, want %q", in, got, want)
		}
	}
	if got := OffsetLabel(math.NaN()); got != "nan" {
		t.Errorf("OffsetLabel(NaN) = %q", got)
	}
}

func zeroAngle(t *testing.T) (Dataset, Configuration) {
	t.Helper()
	d, err := LookupDataset(DefaultDataset)
	if err != nil {
		t.Fatalf("LookupDataset: %v", err)
	}
	d.Configuration.Nearside.Outer.NsToOs.Angle = 0
	return d, d.Resolve()
}

func TestLayoutNotFinite(t *testing.T) {
	d, res := zeroAngle(t)
	if _, err := Layout(res.Nearside, d.Spacing, 250, 200); !errors.Is(err, ErrNotFinite) {
		t.Fatalf("expected ErrNotFinite, got %v", err)
	}
	if _, err := Layout(res.Offside, d.Spacing, 250, 200); err != nil {
		t.Fatalf("offside: %v", err)
	}
}

func TestMeasurementJSONNonFinite(t *testing.T) {
	_, res := zeroAngle(t)
	b, err := json.Marshal(res.Nearside.Outer)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(b), `"ns_to_os":{"angle":0,"absolute":"+Inf"}`) {
		t.Fatalf("unexpected json %s", b)
	}
	// finite values stay numbers
	var back map[string]map[string]interface{}
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := back["front_to_back"]["absolute"].(float64); !ok {
		t.Fatalf("front_to_back absolute not a number: %s", b)
	}
}

func TestLayout(t *testing.T) {
	d, _ := LookupDataset(DefaultDataset)
	if _, err := Layout(d.Configuration.Nearside, d.Spacing, 250, 200); !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}

	res := d.Resolve()
	holes, err := Layout(res.Nearside, d.Spacing, 250, 200)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(holes) != 3 {
		t.Fatalf("expected 3 holes, got %d", len(holes))
	}

	outer, inner, rear := holes[0], holes[1], holes[2]
	if outer.Leg != OuterLeg || inner.Leg != InnerLeg || rear.Leg != RearLeg {
		t.Fatalf("unexpected leg order %s %s %s", outer.Leg, inner.Leg, rear.Leg)
	}
	if outer.Plumb != (Point{X: 250 - 152.5, Y: 200 - 89.399}) {
		t.Fatalf("unexpected outer plumb %+v", outer.Plumb)
	}
	if inner.Plumb.X != 250+152.5 || inner.Plumb.Y != outer.Plumb.Y {
		t.Fatalf("unexpected inner plumb %+v", inner.Plumb)
	}
	if rear.Plumb != (Point{X: 250, Y: 200 + 89.399}) {
		t.Fatalf("unexpected rear plumb %+v", rear.Plumb)
	}

	p := res.Nearside.Inner
	want := Point{X: inner.Plumb.X + p.NsToOs.Value(), Y: inner.Plumb.Y + p.FrontToBack.Value()}
	if inner.Offset != want {
		t.Fatalf("inner offset %+v, want %+v", inner.Offset, want)
	}
	if rear.Radius != 1.5*25.4/2 || outer.Radius != 25.4 {
		t.Fatalf("unexpected radii %g %g", outer.Radius, rear.Radius)
	}
	if outer.Label.X != outer.Plumb.X+d.Spacing.FrontLegDiameter/1.5 {
		t.Fatalf("unexpected label anchor %+v", outer.Label)
	}
	if inner.X.String() != "→ 3mm" {
		t.Fatalf("unexpected inner x label %q", inner.X.String())
	}
}
