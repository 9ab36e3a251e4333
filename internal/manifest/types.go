package manifest

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Catalog is a parsed accessor catalog manifest.
type Catalog struct {
	SchemaVersion string      `yaml:"schema_version" json:"schema_version"`
	Version       string      `yaml:"version" json:"version"`
	Kinds         []KindEntry `yaml:"kinds" json:"kinds"`

	version *semver.Version
}

// KindEntry describes one capability kind.
type KindEntry struct {
	Name        string   `yaml:"name" json:"name"`
	Owner       string   `yaml:"owner" json:"owner"`
	Resolution  string   `yaml:"resolution" json:"resolution"`
	Since       string   `yaml:"since" json:"since"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Operations  []string `yaml:"operations" json:"operations"`

	since *semver.Version
}

// ShortName returns the entry name without its "Accessor" suffix.
func (e KindEntry) ShortName() string {
	return strings.TrimSuffix(e.Name, "Accessor")
}

// Lookup finds an entry by full or short name, ignoring case.
func (c *Catalog) Lookup(name string) (*KindEntry, bool) {
	name = strings.TrimSpace(name)
	for i := range c.Kinds {
		e := &c.Kinds[i]
		if strings.EqualFold(e.Name, name) || strings.EqualFold(e.ShortName(), name) {
			return e, true
		}
	}
	return nil, false
}
