package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	beam "engineeringcalcs/internal/calc/beam"
	hoop "engineeringcalcs/internal/calc/hoop"
)

var meta = Meta{
	Project: "GD427",
	Author:  "workshop",
	Notes:   "Offsets measured at hole height.",
	Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
}

func TestHoop(t *testing.T) {
	d, _ := hoop.LookupDataset(hoop.DefaultDataset)
	var buf bytes.Buffer
	if err := Hoop(&buf, meta, d, d.Resolve()); err != nil {
		t.Fatalf("Hoop: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %q", buf.Bytes()[:8])
	}
}

func TestHoopUnresolved(t *testing.T) {
	d, _ := hoop.LookupDataset(hoop.DefaultDataset)
	var buf bytes.Buffer
	if err := Hoop(&buf, meta, d, d.Configuration); !errors.Is(err, hoop.ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("nothing should be written")
	}
}

func TestBeam(t *testing.T) {
	res, err := beam.Calculate(beam.Input{Section: "UB127x76x13", PointLoadKg: 1000, SpanMM: 2500})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	var buf bytes.Buffer
	if err := Beam(&buf, Meta{}, []beam.Result{res}); err != nil {
		t.Fatalf("Beam: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
	if err := Beam(&buf, Meta{}, nil); err == nil {
		t.Fatal("expected error for no results")
	}
}
