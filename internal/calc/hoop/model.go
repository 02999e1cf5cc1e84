package hoop

import (
	"encoding/json"
	"strconv"
)

// Measurement is one measured drilling angle and the offset derived from it.
// Absolute stays nil until the configuration has been resolved.
type Measurement struct {
	Angle    float64  `json:"angle" yaml:"angle"` // degrees off the plumb line
	Absolute *float64 `json:"absolute,omitempty" yaml:"absolute,omitempty"`
}

// Plane holds the two horizontal deviations measured at one mounting point.
type Plane struct {
	FrontToBack Measurement `json:"front_to_back" yaml:"frontToBack"`
	NsToOs      Measurement `json:"ns_to_os" yaml:"nsToOs"`
}

// Side is one side of the hoop. The three legs are fixed fields.
type Side struct {
	Outer Plane `json:"outer_leg" yaml:"outerLeg"`
	Inner Plane `json:"inner_leg" yaml:"innerLeg"`
	Rear  Plane `json:"rear_leg" yaml:"rearLeg"`
}

type Configuration struct {
	Nearside Side `json:"nearside" yaml:"nearside"`
	Offside  Side `json:"offside" yaml:"offside"`
}

type SideName string

const (
	Nearside SideName = "nearside"
	Offside  SideName = "offside"
)

type LegName string

const (
	OuterLeg LegName = "outer"
	InnerLeg LegName = "inner"
	RearLeg  LegName = "rear"
)

type Axis string

const (
	FrontToBack Axis = "frontToBack"
	NsToOs      Axis = "nsToOs"
)

var (
	sideNames = []SideName{Nearside, Offside}
	legNames  = []LegName{OuterLeg, InnerLeg, RearLeg}
	axes      = []Axis{FrontToBack, NsToOs}
)

func SideNames() []SideName { return append([]SideName(nil), sideNames...) }
func LegNames() []LegName   { return append([]LegName(nil), legNames...) }
func Axes() []Axis          { return append([]Axis(nil), axes...) }

// HeightTable is the vertical distance from the reference plane to the body
// hole for each leg, in millimetres.
type HeightTable struct {
	Outer float64 `json:"outer_leg" yaml:"outerLeg"`
	Inner float64 `json:"inner_leg" yaml:"innerLeg"`
	Rear  float64 `json:"rear_leg" yaml:"rearLeg"`
}

func DefaultHeights() HeightTable {
	return HeightTable{Outer: 240, Inner: 310, Rear: 270}
}

func (h HeightTable) For(leg LegName) float64 {
	switch leg {
	case OuterLeg:
		return h.Outer
	case InnerLeg:
		return h.Inner
	case RearLeg:
		return h.Rear
	}
	return 0
}

const mmPerInch = 25.4

// Spacing describes where the plumb holes sit relative to each other and
// how big the legs are. All values in millimetres.
type Spacing struct {
	FrontLegs        float64 `json:"front_legs_mm" yaml:"frontLegs"`
	RearToFrontLine  float64 `json:"rear_to_front_line_mm" yaml:"rearToFrontLine"`
	FrontLegDiameter float64 `json:"front_leg_dia_mm" yaml:"frontLegDiameter"`
	RearLegDiameter  float64 `json:"rear_leg_dia_mm" yaml:"rearLegDiameter"`
}

func DefaultSpacing() Spacing {
	return Spacing{
		FrontLegs:        305,
		RearToFrontLine:  178.798,
		FrontLegDiameter: 2 * mmPerInch,
		RearLegDiameter:  1.5 * mmPerInch,
	}
}

func (s Spacing) Diameter(leg LegName) float64 {
	if leg == RearLeg {
		return s.RearLegDiameter
	}
	return s.FrontLegDiameter
}

func (c *Configuration) Side(name SideName) *Side {
	switch name {
	case Nearside:
		return &c.Nearside
	case Offside:
		return &c.Offside
	}
	return nil
}

func (s *Side) Leg(name LegName) *Plane {
	switch name {
	case OuterLeg:
		return &s.Outer
	case InnerLeg:
		return &s.Inner
	case RearLeg:
		return &s.Rear
	}
	return nil
}

func (p *Plane) Axis(a Axis) *Measurement {
	switch a {
	case FrontToBack:
		return &p.FrontToBack
	case NsToOs:
		return &p.NsToOs
	}
	return nil
}

// Each visits the six measurements of a side in leg then axis order.
func (s *Side) Each(fn func(leg LegName, axis Axis, m *Measurement)) {
	for _, leg := range legNames {
		p := s.Leg(leg)
		for _, a := range axes {
			fn(leg, a, p.Axis(a))
		}
	}
}

// Each visits all twelve measurements, nearside first.
func (c *Configuration) Each(fn func(side SideName, leg LegName, axis Axis, m *Measurement)) {
	for _, name := range sideNames {
		c.Side(name).Each(func(leg LegName, axis Axis, m *Measurement) {
			fn(name, leg, axis, m)
		})
	}
}

func (s Side) Resolved() bool {
	ok := true
	s.Each(func(_ LegName, _ Axis, m *Measurement) {
		if m.Absolute == nil {
			ok = false
		}
	})
	return ok
}

func (c Configuration) Resolved() bool {
	return c.Nearside.Resolved() && c.Offside.Resolved()
}

// Value returns the resolved offset or 0 when unresolved.
func (m Measurement) Value() float64 {
	if m.Absolute == nil {
		return 0
	}
	return *m.Absolute
}

// MarshalJSON writes a non-finite Absolute as the string "+Inf", "-Inf" or
// "NaN", which plain json numbers cannot hold. yaml.v2 handles these as
// .inf and .nan without help.
func (m Measurement) MarshalJSON() ([]byte, error) {
	type plain Measurement
	if m.Absolute == nil || finite(*m.Absolute) {
		return json.Marshal(plain(m))
	}
	return json.Marshal(struct {
		Angle    float64 `json:"angle"`
		Absolute string  `json:"absolute"`
	}{m.Angle, strconv.FormatFloat(*m.Absolute, 'g', -1, 64)})
}
