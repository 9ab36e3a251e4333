// Package cli defines the Cobra command tree for the awtaccess diagnostic
// binary. Each file registers one top-level command with the root command.
// Commands delegate to the accessor, toolkit and manifest packages and only
// handle flags and output formatting.
package cli
