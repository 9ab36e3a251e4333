package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toolkit-labs/awtaccess/internal/branding"
	"github.com/toolkit-labs/awtaccess/internal/config"
	"github.com/toolkit-labs/awtaccess/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagLogLevel string
	flagOutput   string

	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` inspects the privileged accessor registry: the catalog of
capability kinds, the owners bound to them, and how each owner initializes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := config.Get(config.KeyLogLevel)
		if flagLogLevel != "" {
			level = flagLogLevel
		}
		if _, err := logging.ParseLevel(level); err != nil {
			return err
		}
		logger = logging.New(level, config.Get(config.KeyLogFormat), cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output format: table, yaml or json (default from config)")
}

// outputFormat resolves --output against the configured default.
func outputFormat() (string, error) {
	format := flagOutput
	if format == "" {
		format = config.Get(config.KeyOutput)
	}
	if err := config.Check(config.KeyOutput, format); err != nil {
		return "", fmt.Errorf("--output: %w", err)
	}
	return format, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
