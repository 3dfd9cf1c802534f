package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/msgparse/internal/ui/pretty"
	"github.com/yaklabco/msgparse/pkg/config"
	"github.com/yaklabco/msgparse/pkg/linkurl"
	"github.com/yaklabco/msgparse/pkg/parser"
)

type linksFlags struct {
	mode           string
	format         string
	failOnPunycode bool
}

func newLinksCommand() *cobra.Command {
	flags := &linksFlags{}

	cmd := &cobra.Command{
		Use:   "links [text|-]",
		Short: "List the link destinations of a message",
		Long: `List every link in a message with its hostname, scheme and punycode
warning. Labeled links report their destination, not their label.

Examples:
  msgparse links "visit https://münchen.de"
  msgparse links --format json < message.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinks(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "", "parse mode: text, desktop, markdown (default from config)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "table", "output format: table, json")
	cmd.Flags().BoolVar(&flags.failOnPunycode, "fail-on-punycode", false,
		"exit with code 1 when a link needs a punycode warning")

	return cmd
}

func runLinks(cmd *cobra.Command, args []string, flags *linksFlags) error {
	if err := checkMode(flags.mode); err != nil {
		return err
	}
	if flags.format != "table" && flags.format != "json" {
		return usageErrorf("invalid format %q: must be table or json", flags.format)
	}

	cfg, err := loadConfig(cmd, &config.Config{Mode: flags.mode})
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

	stats := parser.Summarize(text, newParser(cfg).Parse(text, mode))

	out := cmd.OutOrStdout()
	if flags.format == "json" {
		err = writeLinksJSON(out, stats.Links)
	} else {
		err = pretty.RenderLinks(out, stats.Links, stylesFor(cmd, cfg, out), pretty.TerminalWidth(out))
	}
	if err != nil {
		return err
	}

	if flags.failOnPunycode && len(stats.PunycodeWarnings) > 0 {
		return ErrPunycodeFound
	}
	return nil
}

func writeLinksJSON(w io.Writer, links []linkurl.Destination) error {
	if links == nil {
		links = []linkurl.Destination{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(links); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
