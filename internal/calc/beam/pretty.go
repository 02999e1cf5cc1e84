package beam

import "fmt"

const UnsafeWarning = "***** WARNING ----- UNSAFE DEFLECTION ----- WARNING *****"

type PrettyResult struct {
	BeamName            string `json:"beam_name" yaml:"beamName"`
	Material            string `json:"material" yaml:"material"`
	BeamLength          string `json:"beam_length" yaml:"beamLength"`
	PointLoad           string `json:"point_load" yaml:"pointLoad"`
	UDL                 string `json:"udl,omitempty" yaml:"udl,omitempty"`
	MaxStress           string `json:"max_stress" yaml:"maxStress"`
	MaxDeflection       string `json:"max_deflection" yaml:"maxDeflection"`
	SafeDeflectionLimit string `json:"safe_deflection_limit" yaml:"safeDeflectionLimit"`
	DeflectionSummary   string `json:"deflection_summary" yaml:"deflectionSummary"`
}

func Pretty(r Result) PrettyResult {
	p := PrettyResult{
		BeamName:            r.Section.Name,
		Material:            r.Material,
		BeamLength:          fmt.Sprintf("%g mm", r.SpanMM),
		PointLoad:           fmt.Sprintf("%g Kg", r.PointLoadN/kgToN),
		MaxStress:           fmt.Sprintf("%.1f MPa", r.MaxStressMPa),
		MaxDeflection:       fmt.Sprintf("%.1f mm", r.MaxDeflectionMM),
		SafeDeflectionLimit: fmt.Sprintf("%.1f mm", r.SafeDeflectionLimitMM),
		DeflectionSummary:   "OK",
	}
	if r.UDLKNM > 0 {
		p.UDL = fmt.Sprintf("%g kN/m", r.UDLKNM)
	}
	if !r.IsDeflectionSafe {
		p.DeflectionSummary = UnsafeWarning
	}
	return p
}
