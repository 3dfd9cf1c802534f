// Package cli provides the Cobra command structure for msgparse.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/msgparse/internal/logging"
	"github.com/yaklabco/msgparse/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags shared by all commands.
type globalFlags struct {
	configPath string
	color      string
	noColor    bool
	verbose    bool
	quiet      bool
}

func (g *globalFlags) logLevel() string {
	switch {
	case g.verbose:
		return "debug"
	case g.quiet:
		return "error"
	default:
		return "info"
	}
}

// NewRootCommand creates the root msgparse command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "msgparse",
		Short: "Parse chat messages into rich-text element trees",
		Long: `msgparse turns chat message text into a tree of elements: links, email
addresses, hashtags, bot commands, emphasis, code and more.

Three grammars are available. "text" only recognizes plain-text entities,
"desktop" adds labeled links, and "markdown" adds the full formatting set.
Links with internationalized hostnames carry punycode warnings so that
look-alike domains can be flagged before a user opens them.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.verbose && flags.quiet {
				return usageErrorf("--verbose and --quiet cannot be used together")
			}
			if flags.color != "" && !config.ColorMode(flags.color).IsValid() {
				return usageErrorf("invalid color mode %q: must be auto, always or never", flags.color)
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), flags.logLevel())
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	// Global flags.
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "",
		"colorize output: auto, always, never (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "only log errors")

	// Add subcommands.
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newLinksCommand())
	rootCmd.AddCommand(newMentionsCommand())
	rootCmd.AddCommand(newEmojiCommand())
	rootCmd.AddCommand(newPunycodeCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter("auto", os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
