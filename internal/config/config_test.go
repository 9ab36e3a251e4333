package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func setup(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	t.Setenv("AWTACCESS_HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	setup(t)
	Load()

	if got := Get(KeyOutput); got != "table" {
		t.Errorf("output = %q, want table", got)
	}
	if got := Get(KeyLogLevel); got != "warn" {
		t.Errorf("log_level = %q, want warn", got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setup(t)
	t.Setenv("AWTACCESS_LOG_LEVEL", "debug")
	Load()

	if got := Get(KeyLogLevel); got != "debug" {
		t.Errorf("log_level = %q, want debug", got)
	}
}

func TestSet_PersistsAndValidates(t *testing.T) {
	dir := setup(t)
	Load()

	if err := Set(KeyOutput, "json"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyOutput); got != "json" {
		t.Errorf("output after reload = %q, want json", got)
	}

	if err := Set(KeyOutput, "xml"); err == nil {
		t.Error("Set accepted an invalid output")
	}
	if err := Set("color", "on"); err == nil {
		t.Error("Set accepted an unknown key")
	}
	if err := Set(KeyCatalog, "/tmp/catalog.yaml"); err != nil {
		t.Errorf("Set(catalog) error: %v", err)
	}
}

func TestDir_HomeOverride(t *testing.T) {
	dir := setup(t)
	if Dir() != dir {
		t.Errorf("Dir() = %q, want %q", Dir(), dir)
	}
	if FilePath() != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", FilePath())
	}
}
