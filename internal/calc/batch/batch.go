package batch

import (
	"fmt"

	beam "engineeringcalcs/internal/calc/beam"
	hoop "engineeringcalcs/internal/calc/hoop"
)

type BeamBatchInput struct {
	Items []beam.Input `json:"items" yaml:"items"`
}

type BeamBatchResult struct {
	Results []beam.Result `json:"results" yaml:"results"`
	Unsafe  int           `json:"unsafe" yaml:"unsafe"`
}

func CalculateBeam(in BeamBatchInput) (BeamBatchResult, error) {
	if len(in.Items) == 0 {
		return BeamBatchResult{}, fmt.Errorf("no items")
	}
	out := BeamBatchResult{Results: make([]beam.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := beam.Calculate(item)
		if err != nil {
			return BeamBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		if !res.IsDeflectionSafe {
			out.Unsafe++
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

type ResolvedDataset struct {
	Dataset  hoop.Dataset       `json:"dataset" yaml:"dataset"`
	Resolved hoop.Configuration `json:"resolved" yaml:"resolved"`
}

// ResolveDatasets resolves each dataset against its own height table.
func ResolveDatasets(datasets []hoop.Dataset) ([]ResolvedDataset, error) {
	if len(datasets) == 0 {
		return nil, fmt.Errorf("no datasets")
	}
	out := make([]ResolvedDataset, 0, len(datasets))
	for _, d := range datasets {
		if err := d.Heights.Validate(); err != nil {
			return nil, fmt.Errorf("dataset %s: %w", d.Name, err)
		}
		out = append(out, ResolvedDataset{Dataset: d, Resolved: d.Resolve()})
	}
	return out, nil
}
