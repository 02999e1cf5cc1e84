package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	beam "engineeringcalcs/internal/calc/beam"
	hoop "engineeringcalcs/internal/calc/hoop"

	yaml "gopkg.in/yaml.v2"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case Text, "":
		return Text, nil
	case JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Encode writes v as json or yaml. Text output is type specific and lives in
// the Hoop and Beam writers.
func Encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("format %q not encodable", f)
}

// Hoop prints the offsets of a resolved configuration. In text mode each
// side becomes a small table.
func Hoop(w io.Writer, f Format, name string, cfg hoop.Configuration) error {
	if f != Text {
		return Encode(w, f, cfg)
	}
	if !cfg.Resolved() {
		return hoop.ErrUnresolved
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "dataset: %s\n", name)
	for _, side := range hoop.SideNames() {
		fmt.Fprintf(tw, "\n%s\n", side)
		fmt.Fprintf(tw, "leg\tfrontToBack\tnsToOs\tx\ty\n")
		s := cfg.Side(side)
		for _, leg := range hoop.LegNames() {
			p := s.Leg(leg)
			x, y := hoop.PlaneLabels(*p)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", leg,
				hoop.OffsetLabel(p.FrontToBack.Value()), hoop.OffsetLabel(p.NsToOs.Value()), x, y)
		}
	}
	return tw.Flush()
}

func Beam(w io.Writer, f Format, results ...beam.Result) error {
	if f != Text {
		if len(results) == 1 {
			return Encode(w, f, results[0])
		}
		return Encode(w, f, results)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "beam\tmaterial\tlength\tpoint load\tudl\tstress\tdeflection\tlimit\tsummary\n")
	for _, r := range results {
		p := beam.Pretty(r)
		udl := p.UDL
		if udl == "" {
			udl = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.BeamName, p.Material, p.BeamLength, p.PointLoad, udl,
			p.MaxStress, p.MaxDeflection, p.SafeDeflectionLimit, p.DeflectionSummary)
	}
	return tw.Flush()
}
