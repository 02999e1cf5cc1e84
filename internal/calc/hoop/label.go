package hoop

import (
	"fmt"
	"math"
)

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Round rounds to the nearest millimetre with halves going towards +Inf.
// Non-finite values round to 0; callers print them through OffsetLabel or
// AxisLabel instead.
func Round(v float64) int {
	if !finite(v) {
		return 0
	}
	return int(math.Floor(v + 0.5))
}

// OffsetLabel prints v as "12mm", or "+inf", "-inf" and "nan" for the
// offsets a 0 degree or NaN angle resolves to.
func OffsetLabel(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return fmt.Sprintf("%dmm", Round(v))
}

type Direction struct {
	Symbol string
	Word   string
}

var (
	dirRight   = Direction{"→", "right"}
	dirLeft    = Direction{"←", "left"}
	dirLevelX  = Direction{"↔", "level"}
	dirBack    = Direction{"↓", "back"}
	dirForward = Direction{"↑", "forward"}
	dirLevelY  = Direction{"↕", "level"}
)

// AxisLabel is the human readable form of one resolved offset. The x axis
// is near-to-off side, the y axis is front-to-back.
//
// An infinite offset keeps its direction and prints as "→ ∞" ("right inf").
// NaN has no direction and prints as "↔ nan" ("nan").
type AxisLabel struct {
	Axis      Axis
	MM        int
	Finite    bool
	NaN       bool
	Direction Direction
}

func NewAxisLabel(axis Axis, v float64) AxisLabel {
	mm := Round(v)
	l := AxisLabel{Axis: axis, MM: mm, Finite: finite(v), NaN: math.IsNaN(v)}
	level := l.Finite && mm == 0 || l.NaN
	positive := mm > 0 || math.IsInf(v, 1)
	switch {
	case axis == NsToOs && level:
		l.Direction = dirLevelX
	case axis == NsToOs && positive:
		l.Direction = dirRight
	case axis == NsToOs:
		l.Direction = dirLeft
	case level:
		l.Direction = dirLevelY
	case positive:
		l.Direction = dirBack
	default:
		l.Direction = dirForward
	}
	return l
}

func (l AxisLabel) Level() bool { return l.Finite && l.MM == 0 }

func (l AxisLabel) magnitude() int {
	if l.MM < 0 {
		return -l.MM
	}
	return l.MM
}

// String uses arrows, e.g. "→ 12mm" or "↔ level".
func (l AxisLabel) String() string {
	switch {
	case l.NaN:
		return l.Direction.Symbol + " nan"
	case !l.Finite:
		return l.Direction.Symbol + " ∞"
	}
	if l.Level() {
		return l.Direction.Symbol + " level"
	}
	return fmt.Sprintf("%s %dmm", l.Direction.Symbol, l.magnitude())
}

// ASCII is for fonts without arrow glyphs, e.g. "right 12mm" or "level".
func (l AxisLabel) ASCII() string {
	switch {
	case l.NaN:
		return "nan"
	case !l.Finite:
		return l.Direction.Word + " inf"
	}
	if l.Level() {
		return "level"
	}
	return fmt.Sprintf("%s %dmm", l.Direction.Word, l.magnitude())
}

// PlaneLabels returns the x (nsToOs) and y (frontToBack) labels of a plane.
func PlaneLabels(p Plane) (x, y AxisLabel) {
	return NewAxisLabel(NsToOs, p.NsToOs.Value()), NewAxisLabel(FrontToBack, p.FrontToBack.Value())
}
