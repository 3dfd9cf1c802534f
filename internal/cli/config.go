package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/msgparse/internal/configloader"
	"github.com/yaklabco/msgparse/internal/logging"
	"github.com/yaklabco/msgparse/internal/ui/pretty"
	"github.com/yaklabco/msgparse/pkg/config"
	"github.com/yaklabco/msgparse/pkg/fsutil"
	"github.com/yaklabco/msgparse/pkg/parser"
)

// loadConfig resolves the configuration for a command. cliCfg holds the
// values of command flags; zero values leave lower layers untouched.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	if configPath != "" {
		logger.Debug("using explicit configuration", logging.FieldConfig, configPath)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldMode, cfg.Mode,
		logging.FieldFormat, cfg.Output.Format,
		logging.FieldMaxDepth, cfg.Parser.MaxDepth,
	)

	return cfg, nil
}

// newParser builds a parser from the parser section of cfg.
func newParser(cfg *config.Config) *parser.Parser {
	opts := parser.DefaultOptions()
	if cfg.Parser.MaxDepth > 0 {
		opts.MaxDepth = cfg.Parser.MaxDepth
	}
	return parser.New(opts)
}

// checkMode validates a --mode flag value before configuration is loaded.
func checkMode(mode string) error {
	if mode == "" {
		return nil
	}
	if _, err := parser.ParseMode(mode); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}

// resolveMode returns the parse mode of cfg.
func resolveMode(cfg *config.Config) (parser.Mode, error) {
	mode, err := parser.ParseMode(cfg.Mode)
	if err != nil {
		return "", fmt.Errorf("invalid mode: %w", err)
	}
	return mode, nil
}

// colorMode resolves the color setting from global flags and cfg.
func colorMode(cmd *cobra.Command, cfg *config.Config) string {
	if noColor, err := cmd.Flags().GetBool("no-color"); err == nil && noColor {
		return string(config.ColorNever)
	}
	if color, err := cmd.Flags().GetString("color"); err == nil && color != "" {
		return color
	}
	if cfg != nil && cfg.Output.Color != "" {
		return string(cfg.Output.Color)
	}
	return string(config.ColorAuto)
}

// stylesFor returns output styles for w.
func stylesFor(cmd *cobra.Command, cfg *config.Config, w io.Writer) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd, cfg), w))
}

// readInput returns the message given as arguments, or reads it from stdin
// when args is empty or "-". One trailing newline is dropped from stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && (len(args) != 1 || args[0] != "-") {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if in == os.Stdin && configloader.IsInteractive() {
		return "", usageErrorf("no input: pass the message as an argument or pipe it on stdin")
	}

	data, err := io.ReadAll(io.LimitReader(in, fsutil.DefaultMaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if int64(len(data)) > fsutil.DefaultMaxFileSize {
		return "", fmt.Errorf("read stdin: %w", fsutil.ErrTooLarge)
	}

	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
