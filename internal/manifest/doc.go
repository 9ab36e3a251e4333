// Package manifest parses and validates the accessor catalog manifest.
// The manifest lists every capability kind with its owner, resolution mode,
// the catalog version it first appeared in and its operations. A copy is
// embedded in the binary; CheckParity compares a manifest with the kinds
// and interfaces compiled into the accessor package.
package manifest
