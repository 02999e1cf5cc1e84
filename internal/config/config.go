package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are the CLI defaults read from the environment. Flags given on
// the command line win over these.
type Settings struct {
	OutputDir       string
	LogLevel        string
	Project         string
	Author          string
	DeflectionRatio float64
}

const (
	envOutputDir       = "ENGCALC_OUTPUT_DIR"
	envLogLevel        = "ENGCALC_LOG_LEVEL"
	envProject         = "ENGCALC_PROJECT"
	envAuthor          = "ENGCALC_AUTHOR"
	envDeflectionRatio = "ENGCALC_DEFLECTION_RATIO"
)

func Defaults() Settings {
	return Settings{
		OutputDir:       ".",
		LogLevel:        "info",
		DeflectionRatio: 350,
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment and builds Settings from it. A missing file is not an
// error; a malformed one is.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Settings, error) {
	s := Defaults()
	if v := os.Getenv(envOutputDir); v != "" {
		s.OutputDir = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		s.LogLevel = v
	}
	s.Project = os.Getenv(envProject)
	s.Author = os.Getenv(envAuthor)
	if v := os.Getenv(envDeflectionRatio); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return Settings{}, fmt.Errorf("config: %s must be a positive number, got %q", envDeflectionRatio, v)
		}
		s.DeflectionRatio = r
	}
	return s, nil
}
