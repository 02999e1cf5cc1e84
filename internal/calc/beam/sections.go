package beam

import (
	"fmt"
	"sort"
	"strings"
)

const (
	cm4ToMM4 = 10000.0
	kgToN    = 9.81
)

// Section is a beam cross-section. Units follow the steel tables.
type Section struct {
	Name        string  `json:"name" yaml:"name"`
	HeightMM    float64 `json:"height_mm" yaml:"heightMM"`
	WidthMM     float64 `json:"width_mm" yaml:"widthMM"`
	ThicknessMM float64 `json:"thickness_mm" yaml:"thicknessMM"`
	AreaCM2     float64 `json:"area_cm2" yaml:"areaCM2"`
	WeightKgM   float64 `json:"weight_kg_m" yaml:"weightKgM"`
	IxCM4       float64 `json:"ix_cm4" yaml:"ixCM4"`
	IyCM4       float64 `json:"iy_cm4" yaml:"iyCM4"`
	WxCM3       float64 `json:"wx_cm3" yaml:"wxCM3"`
	WyCM3       float64 `json:"wy_cm3" yaml:"wyCM3"`
}

func (s Section) IxMM4() float64 { return s.IxCM4 * cm4ToMM4 }

// NeutralAxisMM is the distance from the neutral axis to the extreme fibre
// for a symmetric section.
func (s Section) NeutralAxisMM() float64 { return s.HeightMM / 2 }

var universalBeams = []Section{
	{
		Name: "UB127x76x13", HeightMM: 127, WidthMM: 76, ThicknessMM: 4,
		AreaCM2: 16.5, WeightKgM: 13,
		IxCM4: 473, IyCM4: 55.7, WxCM3: 74.5, WyCM3: 14.7,
	},
	{
		Name: "UB152x89x16", HeightMM: 152.4, WidthMM: 88.7, ThicknessMM: 4.5,
		AreaCM2: 20.3, WeightKgM: 16,
		IxCM4: 834, IyCM4: 89.6, WxCM3: 109.5, WyCM3: 20.2,
	},
	{
		Name: "UB305x127x42", HeightMM: 307.2, WidthMM: 124.3, ThicknessMM: 8,
		AreaCM2: 53.4, WeightKgM: 41.9,
		IxCM4: 8196, IyCM4: 388.8, WxCM3: 533.6, WyCM3: 62.6,
	},
}

const DefaultSection = "UB127x76x13"

// UniversalBeams returns the catalogue sorted by weight, lightest first.
func UniversalBeams() []Section {
	out := append([]Section(nil), universalBeams...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].WeightKgM < out[j].WeightKgM })
	return out
}

func LookupSection(name string) (Section, error) {
	for _, s := range universalBeams {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Section{}, fmt.Errorf("%w: unknown section %q", ErrInvalidInput, name)
}

// RectangularSection builds a solid b x h section, as used for timber.
func RectangularSection(widthMM, heightMM float64) Section {
	i := widthMM * heightMM * heightMM * heightMM / 12.0
	w := widthMM * heightMM * heightMM / 6.0
	return Section{
		Name:     fmt.Sprintf("%gx%g", widthMM, heightMM),
		HeightMM: heightMM,
		WidthMM:  widthMM,
		AreaCM2:  widthMM * heightMM / 100.0,
		IxCM4:    i / cm4ToMM4,
		WxCM3:    w / 1000.0,
	}
}

type Material struct {
	Name  string  `json:"name" yaml:"name"`
	E_MPa float64 `json:"e_mpa" yaml:"eMPa"`
}

var materials = []Material{
	{Name: "steel", E_MPa: 200000},
	{Name: "C16", E_MPa: 8800},
	{Name: "C24", E_MPa: 11000},
}

func Materials() []Material { return append([]Material(nil), materials...) }

func LookupMaterial(name string) (Material, error) {
	if name == "" {
		return materials[0], nil
	}
	for _, m := range materials {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("%w: unknown material %q", ErrInvalidInput, name)
}

func (m Material) Timber() bool { return !strings.EqualFold(m.Name, "steel") }
