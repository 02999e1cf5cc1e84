package main

import (
	config "engineeringcalcs/internal/config"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	return cfg.Build()
}

// createOutput opens name for writing. Relative names are placed under dir.
func createOutput(dir, name string) (*os.File, error) {
	full := name
	if !filepath.IsAbs(name) {
		full = filepath.Join(dir, name)
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return nil, err
	}
	return os.Create(full)
}

// writeOutput creates name under dir, hands it to write and reports the
// first of the write and close errors.
func writeOutput(dir, name string, write func(io.Writer) error) (path string, err error) {
	f, err := createOutput(dir, name)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return f.Name(), write(f)
}

// ignorableSync reports whether a logger Sync error can be dropped. fsync on
// a terminal or pipe stderr fails with EINVAL or ENOTTY.
func ignorableSync(err error) bool {
	return err == nil || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}

func CommandList(root *cobra.Command, settings *config.Settings) {
	root.AddCommand(
		newHoopCmd(settings),
		newBeamCmd(settings),
		newSectionsCmd(),
	)
}

func newRootCmd(settings *config.Settings) *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "engcalc",
		Short:         "Roll hoop offset and beam deflection calculators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", settings.LogLevel, "debug, info, warn or error")
	root.PersistentFlags().StringVar(&settings.OutputDir, "output-dir", settings.OutputDir, "directory for rendered images and reports")
	CommandList(root, settings)
	return root
}

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root := newRootCmd(&settings)
	err = root.Execute()
	if serr := zap.S().Sync(); err == nil && !ignorableSync(serr) {
		err = serr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
