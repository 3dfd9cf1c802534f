package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/msgparse/pkg/config"
)

func newMentionsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "mentions [text|-]",
		Short: "Print the addresses mentioned in a message",
		Long: `Print the addresses of "@user@domain" mentions, sorted and without
duplicates. A mention must start the message or follow whitespace.

Examples:
  msgparse mentions "hi @alice@example.org and @bob@example.org"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &config.Config{})
			if err != nil {
				return err
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			addresses := newParser(cfg).ExtractMentionAddresses(text)

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.Marshal(addresses)
				if err != nil {
					return fmt.Errorf("encode JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			for _, address := range addresses {
				fmt.Fprintln(out, address)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print addresses as a JSON array")

	return cmd
}
