package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedSchema is the range of schema versions this build reads.
const SupportedSchema = "^1"

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

// checkVersions parses every version in c, rejects an unsupported schema
// version and entries introduced after the catalog version.
func (c *Catalog) checkVersions() error {
	sv, err := parseSemver(c.SchemaVersion)
	if err != nil {
		return fmt.Errorf("parsing schema_version %q: %w", c.SchemaVersion, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(sv) {
		return fmt.Errorf("schema_version %s is not supported (want %s)", sv, SupportedSchema)
	}

	v, err := parseSemver(c.Version)
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", c.Version, err)
	}
	c.version = v

	for i := range c.Kinds {
		e := &c.Kinds[i]
		since, err := parseSemver(e.Since)
		if err != nil {
			return fmt.Errorf("kind %s: parsing since %q: %w", e.Name, e.Since, err)
		}
		if since.GreaterThan(v) {
			return fmt.Errorf("kind %s: since %s is newer than catalog version %s", e.Name, since, v)
		}
		e.since = since
	}
	return nil
}

// Since returns the entries introduced at or after version.
func (c *Catalog) Since(version string) ([]KindEntry, error) {
	v, err := parseSemver(version)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", version, err)
	}
	var out []KindEntry
	for _, e := range c.Kinds {
		since := e.since
		if since == nil {
			if since, err = parseSemver(e.Since); err != nil {
				return nil, fmt.Errorf("kind %s: parsing since %q: %w", e.Name, e.Since, err)
			}
		}
		if !since.LessThan(v) {
			out = append(out, e)
		}
	}
	return out, nil
}
