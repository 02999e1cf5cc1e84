package batch

import (
	"errors"
	"strings"
	"testing"

	beam "engineeringcalcs/internal/calc/beam"
	hoop "engineeringcalcs/internal/calc/hoop"
)

func TestCalculateBeam(t *testing.T) {
	res, err := CalculateBeam(BeamBatchInput{Items: []beam.Input{
		{Section: "UB127x76x13", PointLoadKg: 1000, SpanMM: 2500},
		{Section: "UB127x76x13", PointLoadKg: 3000, SpanMM: 4000},
		{Material: "C16", WidthMM: 47, HeightMM: 150, UDLKNM: 0.5, SpanMM: 2400},
	}})
	if err != nil {
		t.Fatalf("CalculateBeam: %v", err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res.Results))
	}
	if res.Unsafe != 1 {
		t.Fatalf("expected 1 unsafe, got %d", res.Unsafe)
	}
	if res.Results[2].Material != "C16" {
		t.Fatalf("order not kept: %s", res.Results[2].Material)
	}
}

func TestCalculateBeamError(t *testing.T) {
	_, err := CalculateBeam(BeamBatchInput{Items: []beam.Input{
		{Section: "UB127x76x13", PointLoadKg: 1000, SpanMM: 2500},
		{Section: "UB127x76x13", PointLoadKg: 1000},
	}})
	if !errors.Is(err, beam.ErrInvalidInput) || !strings.Contains(err.Error(), "item 1") {
		t.Fatalf("expected item 1 invalid, got %v", err)
	}
	if _, err := CalculateBeam(BeamBatchInput{}); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestResolveDatasets(t *testing.T) {
	out, err := ResolveDatasets(hoop.Datasets())
	if err != nil {
		t.Fatalf("ResolveDatasets: %v", err)
	}
	if len(out) != len(hoop.Datasets()) {
		t.Fatalf("expected %d, got %d", len(hoop.Datasets()), len(out))
	}
	for _, r := range out {
		if !r.Resolved.Resolved() {
			t.Fatalf("%s not resolved", r.Dataset.Name)
		}
		if r.Dataset.Configuration.Resolved() {
			t.Fatalf("%s source mutated", r.Dataset.Name)
		}
	}

	d := hoop.Datasets()[0]
	d.Heights.Inner = -1
	if _, err := ResolveDatasets([]hoop.Dataset{d}); err == nil {
		t.Fatal("expected error for negative height")
	}
}
