package main

import (
	autodesign "engineeringcalcs/internal/calc/autodesign"
	batch "engineeringcalcs/internal/calc/batch"
	beam "engineeringcalcs/internal/calc/beam"
	importer "engineeringcalcs/internal/calc/importer"
	report "engineeringcalcs/internal/calc/report"
	config "engineeringcalcs/internal/config"
	output "engineeringcalcs/internal/output"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func writeBeamReport(settings *config.Settings, name string, results []beam.Result) error {
	meta := report.Meta{Project: settings.Project, Author: settings.Author}
	path, err := writeOutput(settings.OutputDir, name, func(w io.Writer) error {
		return report.Beam(w, meta, results)
	})
	if err != nil {
		return err
	}
	zap.S().Infow("report written", "path", path)
	return nil
}

func newBeamCmd(settings *config.Settings) *cobra.Command {
	var (
		in         beam.Input
		format     string
		reportPath string
	)
	cmd := &cobra.Command{
		Use:   "beam",
		Short: "Check deflection of a simply supported steel or timber beam",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			mat, err := beam.LookupMaterial(in.Material)
			if err != nil {
				return err
			}
			if in.Section == "" && in.WidthMM == 0 && in.HeightMM == 0 && !mat.Timber() {
				in.Section = beam.DefaultSection
			}
			if in.DeflectionLimitRatio <= 0 {
				in.DeflectionLimitRatio = settings.DeflectionRatio
			}
			res, err := beam.Calculate(in)
			if err != nil {
				return err
			}
			zap.S().Debugw("beam calculated", "section", res.Section.Name, "deflection_mm", res.MaxDeflectionMM)
			if !res.IsDeflectionSafe {
				zap.S().Warnw("deflection over limit", "deflection_mm", res.MaxDeflectionMM, "limit_mm", res.SafeDeflectionLimitMM)
			}
			if err := output.Beam(cmd.OutOrStdout(), f, res); err != nil {
				return err
			}
			if reportPath != "" {
				return writeBeamReport(settings, reportPath, []beam.Result{res})
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&in.Section, "section", "", "universal beam designation, e.g. UB127x76x13")
	fl.StringVar(&in.Material, "material", "steel", "steel, C16 or C24")
	fl.Float64Var(&in.E_MPa, "e", 0, "modulus of elasticity in N/mm2, overrides the material")
	fl.Float64Var(&in.WidthMM, "width", 0, "rectangular section width in mm")
	fl.Float64Var(&in.HeightMM, "height", 0, "rectangular section height in mm")
	fl.Float64Var(&in.SpanMM, "span", 2500, "span in mm")
	fl.Float64Var(&in.PointLoadKg, "load-kg", 0, "central point load in kg")
	fl.Float64Var(&in.UDLKNM, "udl", 0, "uniformly distributed load in kN/m")
	fl.Float64Var(&in.DeflectionLimitRatio, "ratio", 0, "allowable deflection as span/ratio")
	fl.StringVarP(&format, "format", "f", "text", "text, json or yaml")
	fl.StringVar(&reportPath, "report", "", "write a PDF report to this file")

	cmd.AddCommand(newBeamBatchCmd(settings), newBeamAutodesignCmd(settings))
	return cmd
}

func newBeamBatchCmd(settings *config.Settings) *cobra.Command {
	var sheet, format, reportPath string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Check every beam listed in an xlsx sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			file, err := os.Open(sheet)
			if err != nil {
				return err
			}
			defer file.Close()
			rows, err := importer.ReadBeamSheet(file)
			if err != nil {
				return fmt.Errorf("%s: %w", sheet, err)
			}
			if len(rows.Skipped) > 0 {
				zap.S().Warnw("skipped unreadable rows", "rows", rows.Skipped)
			}
			for i := range rows.Inputs {
				if rows.Inputs[i].DeflectionLimitRatio <= 0 {
					rows.Inputs[i].DeflectionLimitRatio = settings.DeflectionRatio
				}
			}
			res, err := batch.CalculateBeam(batch.BeamBatchInput{Items: rows.Inputs})
			if err != nil {
				return err
			}
			if res.Unsafe > 0 {
				zap.S().Warnw("beams over deflection limit", "count", res.Unsafe)
			}
			if err := output.Beam(cmd.OutOrStdout(), f, res.Results...); err != nil {
				return err
			}
			if reportPath != "" {
				return writeBeamReport(settings, reportPath, res.Results)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "xlsx file, one beam per row")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "text, json or yaml")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a PDF report to this file")
	cmd.MarkFlagRequired("sheet")
	return cmd
}

func newBeamAutodesignCmd(settings *config.Settings) *cobra.Command {
	var (
		in     autodesign.BeamAutoInput
		format string
	)
	cmd := &cobra.Command{
		Use:   "autodesign",
		Short: "Pick the lightest universal beam that passes the deflection limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			if in.DeflectionLimitRatio <= 0 {
				in.DeflectionLimitRatio = settings.DeflectionRatio
			}
			res, err := autodesign.Beam(in)
			if err != nil {
				return err
			}
			zap.S().Infow("section selected", "section", res.Result.Section.Name, "checked", len(res.Checked))
			if f != output.Text {
				return output.Encode(cmd.OutOrStdout(), f, res)
			}
			return output.Beam(cmd.OutOrStdout(), f, res.Checked...)
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&in.SpanMM, "span", 2500, "span in mm")
	fl.Float64Var(&in.PointLoadKg, "load-kg", 0, "central point load in kg")
	fl.Float64Var(&in.UDLKNM, "udl", 0, "uniformly distributed load in kN/m")
	fl.Float64Var(&in.DeflectionLimitRatio, "ratio", 0, "allowable deflection as span/ratio")
	fl.StringVarP(&format, "format", "f", "text", "text, json or yaml")
	return cmd
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List catalogue sections and materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSections(cmd.OutOrStdout())
		},
	}
}

func printSections(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "section\th mm\tb mm\tkg/m\tIx cm4\tWx cm3")
	for _, s := range beam.UniversalBeams() {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\t%g\n", s.Name, s.HeightMM, s.WidthMM, s.WeightKgM, s.IxCM4, s.WxCM3)
	}
	fmt.Fprintln(tw, "\nmaterial\tE N/mm2")
	for _, m := range beam.Materials() {
		fmt.Fprintf(tw, "%s\t%g\n", m.Name, m.E_MPa)
	}
	return tw.Flush()
}
