package main

import (
	batch "engineeringcalcs/internal/calc/batch"
	hoop "engineeringcalcs/internal/calc/hoop"
	importer "engineeringcalcs/internal/calc/importer"
	report "engineeringcalcs/internal/calc/report"
	config "engineeringcalcs/internal/config"
	output "engineeringcalcs/internal/output"
	render "engineeringcalcs/internal/render"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type hoopOptions struct {
	dataset string
	sheet   string
	format  string
	strict  bool
	render  bool
	image   string
	report  string
}

func newHoopCmd(settings *config.Settings) *cobra.Command {
	var o hoopOptions
	cmd := &cobra.Command{
		Use:   "hoop",
		Short: "Convert measured roll hoop leg angles into body hole offsets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHoop(cmd.OutOrStdout(), settings, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.dataset, "dataset", hoop.DefaultDataset, "named measurement dataset")
	f.StringVar(&o.sheet, "sheet", "", "read angles from an xlsx sheet instead of a dataset")
	f.StringVarP(&o.format, "format", "f", "text", "text, json or yaml")
	f.BoolVar(&o.strict, "strict", true, "refuse angles of 0 or outside (-90, 90)")
	f.BoolVar(&o.render, "render", false, "draw each side to an image in the output dir")
	f.StringVar(&o.image, "image", "png", "image format for --render: png or webp")
	f.StringVar(&o.report, "report", "", "write a PDF report to this file")

	cmd.AddCommand(newHoopTemplateCmd(settings), newHoopDatasetsCmd())
	return cmd
}

func loadHoopDataset(o hoopOptions) (hoop.Dataset, error) {
	d, err := hoop.LookupDataset(o.dataset)
	if err != nil {
		return hoop.Dataset{}, err
	}
	if o.sheet == "" {
		return d, nil
	}
	f, err := os.Open(o.sheet)
	if err != nil {
		return hoop.Dataset{}, err
	}
	defer f.Close()
	cfg, err := importer.ReadHoopSheet(f)
	if err != nil {
		return hoop.Dataset{}, fmt.Errorf("%s: %w", o.sheet, err)
	}
	// angles from the sheet, heights and spacing from the named dataset
	d.Name = strings.TrimSuffix(filepath.Base(o.sheet), filepath.Ext(o.sheet))
	d.Description = "imported from " + o.sheet
	d.Configuration = cfg
	return d, nil
}

func runHoop(w io.Writer, settings *config.Settings, o hoopOptions) error {
	format, err := output.ParseFormat(o.format)
	if err != nil {
		return err
	}
	d, err := loadHoopDataset(o)
	if err != nil {
		return err
	}
	zap.S().Debugw("dataset loaded", "name", d.Name, "heights", d.Heights)

	if err := d.Heights.Validate(); err != nil {
		return err
	}
	if err := d.Configuration.Validate(); err != nil {
		if o.strict {
			return err
		}
		zap.S().Warnw("resolving out of range angles", "error", err)
	}

	resolved := d.Resolve()
	if err := output.Hoop(w, format, d.Name, resolved); err != nil {
		return err
	}

	if o.render {
		imgFormat, err := render.ParseFormat(o.image)
		if err != nil {
			return err
		}
		for _, name := range hoop.SideNames() {
			path, err := renderSide(settings.OutputDir, d, resolved, name, imgFormat)
			if errors.Is(err, hoop.ErrNotFinite) {
				zap.S().Warnw("side not rendered", "side", name, "error", err)
				continue
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", name, err)
			}
			zap.S().Infow("rendered", "side", name, "path", path)
		}
	}

	if o.report != "" {
		meta := report.Meta{Project: settings.Project, Author: settings.Author}
		path, err := writeOutput(settings.OutputDir, o.report, func(w io.Writer) error {
			return report.Hoop(w, meta, d, resolved)
		})
		if err != nil {
			return err
		}
		zap.S().Infow("report written", "path", path)
	}
	return nil
}

func renderSide(dir string, d hoop.Dataset, resolved hoop.Configuration, name hoop.SideName, format render.Format) (string, error) {
	opts := render.DefaultOptions()
	opts.Spacing = d.Spacing
	opts.Title = fmt.Sprintf("%s %s", d.Name, name)
	img, err := render.Side(*resolved.Side(name), opts)
	if err != nil {
		return "", err
	}
	return writeOutput(dir, fmt.Sprintf("hoop_%s_%s%s", d.Name, name, format.Ext()), func(w io.Writer) error {
		return render.Encode(w, img, format)
	})
}

func newHoopTemplateCmd(settings *config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "template FILE",
		Short: "Write an empty xlsx measurement sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := writeOutput(settings.OutputDir, args[0], func(w io.Writer) error {
				return importer.WriteHoopSheet(w, nil)
			})
			if err != nil {
				return err
			}
			zap.S().Infow("template written", "path", path)
			return nil
		},
	}
}

func newHoopDatasetsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the built in measurement datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == output.Text {
				for _, d := range hoop.Datasets() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.Name, d.Description)
				}
				return nil
			}
			resolved, err := batch.ResolveDatasets(hoop.Datasets())
			if err != nil {
				return err
			}
			return output.Encode(cmd.OutOrStdout(), f, resolved)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "text lists names, json or yaml dumps every dataset resolved")
	return cmd
}
