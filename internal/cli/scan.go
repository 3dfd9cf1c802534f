package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/msgparse/internal/logging"
	"github.com/yaklabco/msgparse/pkg/config"
	"github.com/yaklabco/msgparse/pkg/reporter"
	"github.com/yaklabco/msgparse/pkg/runner"
)

// ErrScanFailed is returned when some files could not be scanned.
var ErrScanFailed = errors.New("some files could not be scanned")

type scanFlags struct {
	mode           string
	format         string
	jobs           int
	extensions     []string
	ignore         []string
	followSymlinks bool
	failOnPunycode bool
	compact        bool
	noSummary      bool
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan message files for links and punycode warnings",
		Long:  scanLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "", "parse mode: text, desktop, markdown (default from config)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json (default from config)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "file extensions to scan (default .txt, .md, .log)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().BoolVar(&flags.failOnPunycode, "fail-on-punycode", false,
		"exit with code 1 when a link needs a punycode warning")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "print JSON without indentation")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary line")

	return cmd
}

const scanLongDescription = `Scan message files, such as chat exports, and report per-file
statistics and punycode warnings.

By default, scans all .txt, .md and .log files in the current directory
and subdirectories. Hidden files and directories are skipped unless named
explicitly.

Examples:
  msgparse scan                          # Scan current directory
  msgparse scan exports/                 # Scan a directory
  msgparse scan --format json chat.txt   # Output as JSON
  msgparse scan --fail-on-punycode       # Exit 1 on look-alike hostnames
  msgparse scan -v                       # List hashtags, emails and links`

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	if err := checkMode(flags.mode); err != nil {
		return err
	}
	if _, err := reporter.ParseFormat(flags.format); err != nil {
		return &UsageError{Err: err}
	}
	if flags.jobs < 0 {
		return usageErrorf("invalid --jobs %d: must not be negative", flags.jobs)
	}

	cfg, err := loadConfig(cmd, &config.Config{
		Mode:   flags.mode,
		Output: config.OutputConfig{Format: config.OutputFormat(flags.format)},
		Scan: config.ScanConfig{
			Extensions:     flags.extensions,
			Jobs:           flags.jobs,
			Ignore:         flags.ignore,
			FollowSymlinks: flags.followSymlinks,
		},
		FailOnPunycode: flags.failOnPunycode,
		Compact:        flags.compact,
	})
	if err != nil {
		return err
	}

	if _, err := resolveMode(cfg); err != nil {
		return err
	}
	format, err := reporter.ParseFormat(string(cfg.Output.Format))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir

	logger.Debug("starting scan",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(newParser(cfg)).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("scan failed"), err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode(cmd, cfg),
		ShowSummary: !flags.noSummary,
		Verbose:     verbose,
		Compact:     cfg.Compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	warnings, err := rep.Report(ctx, result)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		for _, file := range result.Files {
			if file.Error != nil {
				logger.Debug("file failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
			}
		}
		return fmt.Errorf("%d of %d files: %w",
			result.Stats.FilesErrored, result.Stats.FilesDiscovered, ErrScanFailed)
	}

	if cfg.FailOnPunycode && warnings > 0 {
		return ErrPunycodeFound
	}

	return nil
}
