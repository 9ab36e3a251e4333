package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toolkit-labs/awtaccess/internal/accessor"
	"github.com/toolkit-labs/awtaccess/internal/config"
	"github.com/toolkit-labs/awtaccess/internal/manifest"
	"go.yaml.in/yaml/v3"
)

var catalogSince string

func init() {
	catalogListCmd.Flags().StringVar(&catalogSince, "since", "", "Only list kinds introduced at or after this version")
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the accessor catalog",
	Long: `Inspect the catalog of capability kinds: each accessor interface, the owner
type that implements it, how that owner is located, and its operations.

The catalog embedded in the binary is used unless the "catalog" config key
names a file.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List capability kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}
		c, err := loadCatalog()
		if err != nil {
			return err
		}

		entries := c.Kinds
		if catalogSince != "" {
			if entries, err = c.Since(catalogSince); err != nil {
				return err
			}
		}

		switch format {
		case "json":
			return writeJSON(cmd.OutOrStdout(), entries)
		case "yaml":
			return writeYAML(cmd.OutOrStdout(), entries)
		}

		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No kinds introduced since %s.\n", catalogSince)
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "KIND\tOWNER\tRESOLUTION\tSINCE\tOPS")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", e.Name, e.Owner, e.Resolution, e.Since, len(e.Operations))
		}
		return w.Flush()
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <kind>",
	Short: "Show one capability kind",
	Long: `Show one capability kind. The kind is matched by interface name
("WindowAccessor") or short name ("window"), ignoring case.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		e, ok := c.Lookup(args[0])
		if !ok {
			return fmt.Errorf("kind %q is not in the catalog", args[0])
		}

		switch format {
		case "json":
			return writeJSON(cmd.OutOrStdout(), e)
		case "yaml":
			return writeYAML(cmd.OutOrStdout(), e)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Kind:         %s\n", e.Name)
		fmt.Fprintf(out, "Owner:        %s\n", e.Owner)
		fmt.Fprintf(out, "Resolution:   %s\n", e.Resolution)
		fmt.Fprintf(out, "Since:        %s\n", e.Since)
		if k, ok := accessor.ParseKind(e.Name); !ok {
			fmt.Fprintln(out, "Build:        unknown to this binary")
		} else if !ownerCompiled(k) {
			fmt.Fprintln(out, "Build:        owner not compiled into this binary")
		}
		if e.Description != "" {
			fmt.Fprintf(out, "Description:  %s\n", e.Description)
		}
		fmt.Fprintln(out, "Operations:")
		for _, op := range e.Operations {
			fmt.Fprintf(out, "  %s\n", op)
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file against the schema and this build",
	Long: `Validate a catalog manifest. The file is checked against the catalog JSON
schema, parsed, and compared with the accessor interfaces compiled into this
binary. Without an argument the configured or embedded catalog is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Get(config.KeyCatalog)
		if len(args) == 1 {
			path = args[0]
		}
		data, source, err := catalogBytes(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		result, err := manifest.Validate(data)
		if err != nil {
			return fmt.Errorf("validating %s: %w", source, err)
		}
		if !result.Valid {
			fmt.Fprintf(out, "%s: schema validation failed\n", source)
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  %s\n", issue)
			}
			return fmt.Errorf("%s: %d schema issue(s)", source, len(result.Issues))
		}

		c, err := manifest.Parse(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", source, err)
		}
		if problems := manifest.CheckParity(c); len(problems) > 0 {
			fmt.Fprintf(out, "%s: does not match this build\n", source)
			for _, p := range problems {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return fmt.Errorf("%s: %d parity issue(s)", source, len(problems))
		}

		fmt.Fprintf(out, "%s: valid (%d kinds, catalog %s)\n", source, len(c.Kinds), c.Version)
		return nil
	},
}

// catalogBytes reads path, or the embedded catalog when path is empty.
func catalogBytes(path string) ([]byte, string, error) {
	if path == "" {
		return manifest.DefaultBytes(), "embedded catalog", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, path, fmt.Errorf("catalog file %s not found", path)
		}
		return nil, path, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, path, nil
}

func loadCatalog() (*manifest.Catalog, error) {
	path := config.Get(config.KeyCatalog)
	if path == "" {
		return manifest.Default()
	}
	logger.Debug("loading catalog", "path", path)
	return manifest.ParseFile(path)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
