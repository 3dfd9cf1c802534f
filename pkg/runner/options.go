// Package runner scans message files concurrently and aggregates their
// parse statistics.
package runner

import (
	"github.com/yaklabco/msgparse/pkg/config"
	"github.com/yaklabco/msgparse/pkg/parser"
)

// Options controls a batch scan.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) considered
	// message files. Matching ignores case. Defaults to config.DefaultExtensions.
	Extensions []string

	// ExcludeGlobs are glob patterns, relative to WorkingDir, used to skip
	// files or directories. "**" matches any number of path segments.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.GOMAXPROCS).
	Jobs int

	// Mode selects the grammar each file is parsed with.
	Mode parser.Mode

	// MaxFileSize rejects larger files (0 means fsutil.DefaultMaxFileSize).
	MaxFileSize int64
}

// OptionsFromConfig builds scan options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	opts := Options{Paths: paths}
	if cfg == nil {
		return opts
	}

	opts.Extensions = cfg.Scan.Extensions
	opts.ExcludeGlobs = cfg.Scan.Ignore
	opts.FollowSymlinks = cfg.Scan.FollowSymlinks
	opts.Jobs = cfg.Scan.Jobs
	opts.Mode = parser.Mode(cfg.Mode)
	return opts
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
