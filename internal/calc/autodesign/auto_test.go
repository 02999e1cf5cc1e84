package autodesign

import (
	"errors"
	"testing"

	beam "engineeringcalcs/internal/calc/beam"
)

func TestBeamPicksLightest(t *testing.T) {
	res, err := Beam(BeamAutoInput{SpanMM: 2500, PointLoadKg: 1000})
	if err != nil {
		t.Fatalf("Beam: %v", err)
	}
	if res.Result.Section.Name != "UB127x76x13" {
		t.Fatalf("expected UB127x76x13, got %s", res.Result.Section.Name)
	}
	if len(res.Checked) != 1 {
		t.Fatalf("expected one section checked, got %d", len(res.Checked))
	}
}

func TestBeamSkipsFailing(t *testing.T) {
	// 41.5 mm on the UB127, 23.5 mm on the UB152, 2.4 mm on the UB305
	res, err := Beam(BeamAutoInput{SpanMM: 4000, PointLoadKg: 3000})
	if err != nil {
		t.Fatalf("Beam: %v", err)
	}
	if res.Result.Section.Name != "UB305x127x42" {
		t.Fatalf("expected UB305x127x42, got %s", res.Result.Section.Name)
	}
	if len(res.Checked) != 3 {
		t.Fatalf("expected 3 checked, got %d", len(res.Checked))
	}
	for _, r := range res.Checked[:2] {
		if r.IsDeflectionSafe {
			t.Fatalf("%s should fail", r.Section.Name)
		}
	}
}

func TestBeamNoSection(t *testing.T) {
	_, err := Beam(BeamAutoInput{SpanMM: 12000, PointLoadKg: 10000})
	if !errors.Is(err, ErrNoSection) {
		t.Fatalf("expected ErrNoSection, got %v", err)
	}
}

func TestBeamInvalid(t *testing.T) {
	_, err := Beam(BeamAutoInput{SpanMM: 0, PointLoadKg: 10})
	if !errors.Is(err, beam.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
