package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(envOutputDir, "")
	t.Setenv(envDeflectionRatio, "")
	s, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.OutputDir != "." || s.DeflectionRatio != 350 {
		t.Fatalf("unexpected defaults %+v", s)
	}
}

func TestLoadFile(t *testing.T) {
	// godotenv does not override variables that are already set, so clear
	// them through t.Setenv and unset before loading.
	for _, k := range []string{envOutputDir, envLogLevel, envProject, envAuthor, envDeflectionRatio} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	path := filepath.Join(t.TempDir(), "test.env")
	data := "ENGCALC_OUTPUT_DIR=out\nENGCALC_LOG_LEVEL=debug\nENGCALC_PROJECT=GD427\nENGCALC_AUTHOR=workshop\nENGCALC_DEFLECTION_RATIO=250\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Settings{OutputDir: "out", LogLevel: "debug", Project: "GD427", Author: "workshop", DeflectionRatio: 250}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("settings: %s", diff)
	}
}

func TestFromEnvBadRatio(t *testing.T) {
	t.Setenv(envDeflectionRatio, "-3")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error")
	}
}
