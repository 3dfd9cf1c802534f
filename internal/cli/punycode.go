package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/msgparse/pkg/linkurl"
)

// requireHosts rejects calls without hostnames as usage errors.
func requireHosts(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usageErrorf("at least one hostname is required")
	}
	return nil
}

func newPunycodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "punycode",
		Short: "Convert and check internationalized hostnames",
		Long: `Convert hostnames between their Unicode and punycode ("xn--") forms,
or check whether a hostname would get a punycode warning in a link.

Examples:
  msgparse punycode encode münchen.de
  msgparse punycode decode xn--mnchen-3ya.de
  msgparse punycode check delta.chat xn--80ak6aa92e.com`,
	}

	cmd.AddCommand(newPunycodeConvertCommand("encode", "Convert hostnames to punycode", linkurl.PunycodeEncodeHost))
	cmd.AddCommand(newPunycodeConvertCommand("decode", "Convert punycode hostnames to Unicode", linkurl.PunycodeDecodeHost))
	cmd.AddCommand(newPunycodeCheckCommand())

	return cmd
}

func newPunycodeConvertCommand(name, short string, convert func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " HOST...",
		Short: short,
		Args:  requireHosts,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, host := range args {
				fmt.Fprintln(out, convert(host))
			}
			return nil
		},
	}
}

func newPunycodeCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check HOST...",
		Short: "Report hostnames that display differently from their ASCII form",
		Long: `Report hostnames whose Unicode and ASCII forms differ. Such hostnames can
imitate other domains and get a punycode warning when they appear in a link.
Exits with code 1 when any hostname is flagged.`,
		Args: requireHosts,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styles := stylesFor(cmd, nil, out)

			flagged := 0
			for _, host := range args {
				ascii := linkurl.PunycodeEncodeHost(host)
				unicode := linkurl.PunycodeDecodeHost(ascii)
				if ascii == unicode {
					fmt.Fprintf(out, "%s %s\n", host, styles.Success.Render("ok"))
					continue
				}
				flagged++
				fmt.Fprintf(out, "%s %s %s -> %s\n",
					host, styles.Warning.Render("punycode:"), unicode, ascii)
			}

			if flagged > 0 {
				return fmt.Errorf("%d of %d hostnames flagged: %w", flagged, len(args), ErrPunycodeFound)
			}
			return nil
		},
	}
}
