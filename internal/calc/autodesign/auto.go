package autodesign

import (
	"errors"
	"fmt"

	beam "engineeringcalcs/internal/calc/beam"
)

var ErrNoSection = errors.New("no catalogue section passes")

type BeamAutoInput struct {
	SpanMM               float64 `json:"span_mm" yaml:"spanMM"`
	PointLoadKg          float64 `json:"point_load_kg" yaml:"pointLoadKg"`
	UDLKNM               float64 `json:"udl_kn_m" yaml:"udlKNM"`
	DeflectionLimitRatio float64 `json:"deflection_limit_ratio" yaml:"deflectionLimitRatio"`
}

type BeamAutoResult struct {
	Result  beam.Result   `json:"result" yaml:"result"`
	Checked []beam.Result `json:"checked" yaml:"checked"`
	Notes   string        `json:"notes" yaml:"notes"`
}

// Beam picks the lightest universal beam whose deflection stays inside the
// limit. Every section tried on the way is returned in Checked.
func Beam(in BeamAutoInput) (BeamAutoResult, error) {
	var out BeamAutoResult
	for _, sec := range beam.UniversalBeams() {
		res, err := beam.Calculate(beam.Input{
			Section:              sec.Name,
			SpanMM:               in.SpanMM,
			PointLoadKg:          in.PointLoadKg,
			UDLKNM:               in.UDLKNM,
			DeflectionLimitRatio: in.DeflectionLimitRatio,
		})
		if err != nil {
			return BeamAutoResult{}, err
		}
		out.Checked = append(out.Checked, res)
		if res.IsDeflectionSafe {
			out.Result = res
			out.Notes = fmt.Sprintf("Lightest section passing L/%g.", res.DeflectionLimitRatio)
			return out, nil
		}
	}
	return out, fmt.Errorf("%w: span %g mm", ErrNoSection, in.SpanMM)
}
