package hoop

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownDataset = errors.New("unknown dataset")

// Dataset is one set of measured angles together with the constants of the
// car they were taken on.
type Dataset struct {
	Name          string        `json:"name" yaml:"name"`
	Description   string        `json:"description" yaml:"description"`
	Configuration Configuration `json:"configuration" yaml:"configuration"`
	Heights       HeightTable   `json:"heights" yaml:"heights"`
	Spacing       Spacing       `json:"spacing" yaml:"spacing"`
}

func (d Dataset) Resolve() Configuration {
	return Resolve(d.Configuration, d.Heights)
}

func plane(frontToBack, nsToOs float64) Plane {
	return Plane{
		FrontToBack: Measurement{Angle: frontToBack},
		NsToOs:      Measurement{Angle: nsToOs},
	}
}

var datasets = map[string]Dataset{
	"gd427": {
		Name:        "gd427",
		Description: "GD427 roll hoop, angles measured on the drilled legs",
		Configuration: Configuration{
			Nearside: Side{
				Outer: plane(-89.91, -89.97),
				Inner: plane(-89.95, 89.39),
				Rear:  plane(89.36, 89.85),
			},
			Offside: Side{
				Outer: plane(89.51, 89.42),
				Inner: plane(89.69, -89.89),
				Rear:  plane(-89.52, 89.48),
			},
		},
		Heights: DefaultHeights(),
		Spacing: DefaultSpacing(),
	},
}

const DefaultDataset = "gd427"

// Datasets returns every registered dataset sorted by name.
func Datasets() []Dataset {
	out := make([]Dataset, 0, len(datasets))
	for _, d := range datasets {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func LookupDataset(name string) (Dataset, error) {
	d, ok := datasets[name]
	if !ok {
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	return d, nil
}
