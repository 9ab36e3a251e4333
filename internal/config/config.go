package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"github.com/toolkit-labs/awtaccess/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known keys.
const (
	KeyOutput    = "output"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyCatalog   = "catalog"
)

type keySpec struct {
	def     string
	allowed []string
}

var keys = map[string]keySpec{
	KeyOutput:    {def: "table", allowed: []string{"table", "yaml", "json"}},
	KeyLogLevel:  {def: "warn", allowed: []string{"debug", "info", "warn", "error"}},
	KeyLogFormat: {def: "text", allowed: []string{"text", "json"}},
	KeyCatalog:   {},
}

// Keys returns the known config keys, sorted.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Dir returns the config directory. The HOME env override
// (AWTACCESS_HOME) wins over ~/.awtaccess.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Environment variables such as AWTACCESS_LOG_LEVEL override the file.
func Load() {
	for k, spec := range keys {
		viper.SetDefault(k, spec.def)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Check reports whether value is acceptable for key.
func Check(key, value string) error {
	spec, ok := keys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if len(spec.allowed) > 0 && !slices.Contains(spec.allowed, value) {
		return fmt.Errorf("invalid value %q for %s (allowed: %s)", value, key, strings.Join(spec.allowed, ", "))
	}
	return nil
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := Check(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
