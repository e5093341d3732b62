// Package cli provides the command-line interface for colorcraft.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/colorcraft/colorcraft/internal/config"
	"github.com/colorcraft/colorcraft/internal/version"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbose bool
	quiet   bool
	logger  hclog.Logger
	cfg     config.Config
}

// NewRootCmd builds the complete command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "colorcraft",
		Short: "Extract, analyse and extend colour palettes",
		Long: `colorcraft extracts dominant colour palettes from images, analyses them
for colour harmony and WCAG contrast, and suggests companion colours from
classic colour-wheel schemes.

It can also serve the same operations over HTTP.`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose && opts.quiet {
				return fmt.Errorf("--verbose and --quiet cannot be used together")
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(opts))
	rootCmd.AddCommand(newAnalyseCmd(opts))
	rootCmd.AddCommand(newSuggestCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))

	return rootCmd
}

// newLogger builds the process logger: Debug with --verbose, Error with
// --quiet, Info otherwise.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colorcraft",
		Output: w,
		Level:  level,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
