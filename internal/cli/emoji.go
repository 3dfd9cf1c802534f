package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/msgparse/pkg/emoji"
)

// emojiReport is the JSON form of the emoji command output.
type emojiReport struct {
	FirstEmoji string `json:"first_emoji,omitempty"`
	EmojiOnly  bool   `json:"emoji_only"`
	EmojiCount int    `json:"emoji_count"`
}

func newEmojiCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "emoji [text|-]",
		Short: "Inspect the emoji of a message",
		Long: `Print the emoji a message starts with and, for messages made of emoji
only, how many there are. Clients use this to show such messages enlarged.

Examples:
  msgparse emoji "🔥🔥🔥"
  msgparse emoji --json "👍 thanks"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var report emojiReport
			report.FirstEmoji, _ = emoji.GetFirstEmoji(text)
			report.EmojiCount, report.EmojiOnly = emoji.CountEmojisIfOnlyContainsEmoji(text)

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.Marshal(report)
				if err != nil {
					return fmt.Errorf("encode JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if report.FirstEmoji != "" {
				fmt.Fprintf(out, "first emoji: %s\n", report.FirstEmoji)
			} else {
				fmt.Fprintln(out, "first emoji: none")
			}
			if report.EmojiOnly {
				fmt.Fprintf(out, "emoji only: yes (%d)\n", report.EmojiCount)
			} else {
				fmt.Fprintln(out, "emoji only: no")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}
