package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/msgparse/internal/logging"
	"github.com/yaklabco/msgparse/internal/ui/pretty"
	"github.com/yaklabco/msgparse/pkg/config"
	"github.com/yaklabco/msgparse/pkg/langdetect"
	"github.com/yaklabco/msgparse/pkg/render"
)

type parseFlags struct {
	mode       string
	format     string
	detectLang bool
	maxDepth   int
	compact    bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [text|-]",
		Short: "Parse a message into an element tree",
		Long: `Parse a message and print its element tree.

The message is taken from the arguments, joined by spaces. Without
arguments, or with "-", it is read from stdin.

Examples:
  msgparse parse "**hi** see https://delta.chat"
  echo "#news from @bot" | msgparse parse --mode text
  msgparse parse --format json < message.txt
  msgparse parse --detect-lang --format tree < snippet.md`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "", "parse mode: text, desktop, markdown (default from config)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "",
		"output format: tree, text, json, yaml (default from config)")
	cmd.Flags().BoolVar(&flags.detectLang, "detect-lang", false, "show language hints for code blocks")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0, "maximum nesting depth of spans")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "print JSON without indentation")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	if err := checkMode(flags.mode); err != nil {
		return err
	}
	if flags.format != "" {
		format, err := config.ParseOutputFormat(flags.format)
		if err != nil {
			return &UsageError{Err: err}
		}
		if format == config.FormatTable {
			return usageErrorf("format %q is not available for parse; use the links command", format)
		}
	}
	if flags.maxDepth < 0 {
		return usageErrorf("invalid --max-depth %d: must not be negative", flags.maxDepth)
	}

	cfg, err := loadConfig(cmd, &config.Config{
		Mode:   flags.mode,
		Output: config.OutputConfig{Format: config.OutputFormat(flags.format)},
		Parser: config.ParserConfig{
			MaxDepth:        flags.maxDepth,
			DetectLanguages: flags.detectLang,
		},
		Compact: flags.compact,
	})
	if err != nil {
		return err
	}

	mode, err := resolveMode(cfg)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	elements := newParser(cfg).Parse(text, mode)
	logging.FromContext(cmd.Context()).Debug("parsed message",
		logging.FieldMode, mode,
		logging.FieldBytes, len(text),
		logging.FieldElements, len(elements),
	)

	out := cmd.OutOrStdout()

	switch cfg.Output.Format {
	case config.FormatTree, config.FormatTable:
		opts := pretty.TreeOptions{}
		if cfg.Parser.DetectLanguages {
			opts.Hints = pretty.HintIndex(langdetect.Hints(elements))
		}
		if err := pretty.RenderTree(out, elements, stylesFor(cmd, cfg, out), opts); err != nil {
			return fmt.Errorf("render tree: %w", err)
		}
		return nil
	default:
		format, err := render.ParseFormat(string(cfg.Output.Format))
		if err != nil {
			return err
		}
		if err := render.Write(out, format, elements, render.Options{Compact: cfg.Compact}); err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		if format == render.FormatText {
			fmt.Fprintln(out)
		}
		return nil
	}
}
