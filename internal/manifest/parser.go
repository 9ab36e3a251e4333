package manifest

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	defaultOnce   sync.Once
	defaultParsed *Catalog
	defaultErr    error
)

// DefaultBytes returns the raw embedded catalog manifest.
func DefaultBytes() []byte {
	return defaultCatalog
}

// Default returns the embedded catalog, parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultParsed, defaultErr = parse(defaultCatalog, "embedded catalog")
	})
	return defaultParsed, defaultErr
}

// Parse decodes a catalog manifest and checks its versions.
func Parse(data []byte) (*Catalog, error) {
	return parse(data, "catalog")
}

// ParseFile reads and parses a catalog manifest file.
func ParseFile(path string) (*Catalog, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data, path)
}

func parse(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", source, err)
	}
	if err := c.checkVersions(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", source, err)
	}
	return &c, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
