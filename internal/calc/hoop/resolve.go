package hoop

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrAngleOutOfRange = errors.New("angle outside (-90, 90) or zero")
	ErrUnresolved      = errors.New("configuration not resolved")
	ErrNotFinite       = errors.New("offset is not finite")
)

func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// AngleToAbsolute converts a leg angle into the horizontal displacement of
// the hole sitting height millimetres away from the reference plane.
func AngleToAbsolute(angle, height float64) float64 {
	return height / math.Tan(DegreesToRadians(angle))
}

// Resolve returns a copy of cfg with every Absolute populated. cfg itself is
// left untouched and the returned tree shares no pointers with it.
//
// Resolve does not validate angles. 0 gives ±Inf. ±90 gives a value of order
// 1e-14 rather than exactly 0, because tan(π/2) is about 1.6e16 in float64.
// Call Validate first when that matters.
func Resolve(cfg Configuration, heights HeightTable) Configuration {
	out := cfg
	out.Each(func(_ SideName, leg LegName, _ Axis, m *Measurement) {
		v := AngleToAbsolute(m.Angle, heights.For(leg))
		m.Absolute = &v
	})
	return out
}

type AngleError struct {
	Side  SideName
	Leg   LegName
	Axis  Axis
	Angle float64
}

func (e *AngleError) Error() string {
	return fmt.Sprintf("%s %s leg %s: %g°: %v", e.Side, e.Leg, e.Axis, e.Angle, ErrAngleOutOfRange)
}

func (e *AngleError) Unwrap() error { return ErrAngleOutOfRange }

func ValidAngle(angle float64) bool {
	return !math.IsNaN(angle) && angle > -90 && angle < 90 && angle != 0
}

// Validate reports every angle the resolver cannot turn into a finite,
// meaningful offset.
func (c Configuration) Validate() error {
	var errs []error
	c.Each(func(side SideName, leg LegName, axis Axis, m *Measurement) {
		if !ValidAngle(m.Angle) {
			errs = append(errs, &AngleError{Side: side, Leg: leg, Axis: axis, Angle: m.Angle})
		}
	})
	return errors.Join(errs...)
}

func (h HeightTable) Validate() error {
	for _, leg := range legNames {
		if v := h.For(leg); !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("height to hole for %s leg must be positive, got %g", leg, v)
		}
	}
	return nil
}
