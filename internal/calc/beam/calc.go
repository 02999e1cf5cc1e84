package beam

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New("invalid input")

const DefaultDeflectionRatio = 350.0

type Input struct {
	Section              string  `json:"section" yaml:"section"`   // catalogue name, empty for a rectangular section
	Material             string  `json:"material" yaml:"material"` // steel, C16 or C24
	E_MPa                float64 `json:"e_mpa" yaml:"eMPa"`
	WidthMM              float64 `json:"width_mm" yaml:"widthMM"`
	HeightMM             float64 `json:"height_mm" yaml:"heightMM"`
	SpanMM               float64 `json:"span_mm" yaml:"spanMM"`
	PointLoadKg          float64 `json:"point_load_kg" yaml:"pointLoadKg"`
	UDLKNM               float64 `json:"udl_kn_m" yaml:"udlKNM"`
	DeflectionLimitRatio float64 `json:"deflection_limit_ratio" yaml:"deflectionLimitRatio"`
}

type Result struct {
	Section               Section `json:"section" yaml:"section"`
	Material              string  `json:"material" yaml:"material"`
	E_MPa                 float64 `json:"e_mpa" yaml:"eMPa"`
	SpanMM                float64 `json:"span_mm" yaml:"spanMM"`
	PointLoadN            float64 `json:"point_load_n" yaml:"pointLoadN"`
	UDLKNM                float64 `json:"udl_kn_m" yaml:"udlKNM"`
	NeutralAxisMM         float64 `json:"neutral_axis_mm" yaml:"neutralAxisMM"`
	SupportForceN         float64 `json:"support_force_n" yaml:"supportForceN"`
	MaxMomentKNM          float64 `json:"max_moment_knm" yaml:"maxMomentKNM"`
	MaxStressMPa          float64 `json:"max_stress_mpa" yaml:"maxStressMPa"`
	PointDeflectionMM     float64 `json:"point_deflection_mm" yaml:"pointDeflectionMM"`
	UDLDeflectionMM       float64 `json:"udl_deflection_mm" yaml:"udlDeflectionMM"`
	MaxDeflectionMM       float64 `json:"max_deflection_mm" yaml:"maxDeflectionMM"`
	DeflectionLimitRatio  float64 `json:"deflection_limit_ratio" yaml:"deflectionLimitRatio"`
	SafeDeflectionLimitMM float64 `json:"safe_deflection_limit_mm" yaml:"safeDeflectionLimitMM"`
	IsDeflectionSafe      bool    `json:"is_deflection_safe" yaml:"isDeflectionSafe"`
	Notes                 string  `json:"notes" yaml:"notes"`
}

func (in Input) section(m Material) (Section, error) {
	if in.Section != "" {
		if m.Timber() {
			return Section{}, fmt.Errorf("%w: catalogue section %q is steel, material is %s", ErrInvalidInput, in.Section, m.Name)
		}
		return LookupSection(in.Section)
	}
	if !positive(in.WidthMM) || !positive(in.HeightMM) {
		return Section{}, fmt.Errorf("%w: rectangular section needs width and height", ErrInvalidInput)
	}
	return RectangularSection(in.WidthMM, in.HeightMM), nil
}

// positive and nonNegative are false for NaN, which slips through plain
// comparisons from sheet cells like "NaN".
func positive(v float64) bool    { return v > 0 && !math.IsInf(v, 1) }
func nonNegative(v float64) bool { return v >= 0 && !math.IsInf(v, 1) }

// PointLoadDeflection is F L^3 / (48 E I) for a central point load on a
// simply supported span. Units N, mm, MPa, mm4.
func PointLoadDeflection(f, l, e, i float64) float64 {
	return f * math.Pow(l, 3) / (48.0 * e * i)
}

// UDLDeflection is 5 w L^4 / (384 E I), w in N/mm.
func UDLDeflection(w, l, e, i float64) float64 {
	return 5.0 * w * math.Pow(l, 4) / (384.0 * e * i)
}

// Calculate checks a simply supported beam carrying a central point load, a
// uniformly distributed load, or both.
func Calculate(in Input) (Result, error) {
	if !positive(in.SpanMM) {
		return Result{}, fmt.Errorf("%w: span must be positive", ErrInvalidInput)
	}
	if !nonNegative(in.PointLoadKg) || !nonNegative(in.UDLKNM) || in.PointLoadKg+in.UDLKNM == 0 {
		return Result{}, fmt.Errorf("%w: no load", ErrInvalidInput)
	}
	if !(in.DeflectionLimitRatio > 0) {
		in.DeflectionLimitRatio = DefaultDeflectionRatio
	}
	mat, err := LookupMaterial(in.Material)
	if err != nil {
		return Result{}, err
	}
	if !(in.E_MPa > 0) {
		in.E_MPa = mat.E_MPa
	}
	sec, err := in.section(mat)
	if err != nil {
		return Result{}, err
	}

	F := in.PointLoadKg * kgToN
	w := in.UDLKNM // 1 kN/m = 1 N/mm
	L := in.SpanMM
	E := in.E_MPa
	I := sec.IxMM4()
	y := sec.NeutralAxisMM()

	M := F*L/4.0 + w*L*L/8.0 // N*mm
	pointDefl := PointLoadDeflection(F, L, E, I)
	udlDefl := UDLDeflection(w, L, E, I)
	defl := pointDefl + udlDefl
	limit := L / in.DeflectionLimitRatio

	notes := "Simply supported, central point load."
	switch {
	case F > 0 && w > 0:
		notes = "Simply supported, central point load plus UDL (superposed)."
	case w > 0:
		notes = "Simply supported, UDL."
	}

	return Result{
		Section:               sec,
		Material:              mat.Name,
		E_MPa:                 E,
		SpanMM:                L,
		PointLoadN:            F,
		UDLKNM:                in.UDLKNM,
		NeutralAxisMM:         y,
		SupportForceN:         F/2 + w*L/2,
		MaxMomentKNM:          M / 1e6,
		MaxStressMPa:          y * M / I,
		PointDeflectionMM:     pointDefl,
		UDLDeflectionMM:       udlDefl,
		MaxDeflectionMM:       defl,
		DeflectionLimitRatio:  in.DeflectionLimitRatio,
		SafeDeflectionLimitMM: limit,
		IsDeflectionSafe:      limit > defl,
		Notes:                 notes,
	}, nil
}
