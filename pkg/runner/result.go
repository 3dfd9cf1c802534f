package runner

import (
	"github.com/yaklabco/msgparse/pkg/ast"
	"github.com/yaklabco/msgparse/pkg/fsutil"
	"github.com/yaklabco/msgparse/pkg/parser"
)

// FileOutcome is the scan result for a single file.
type FileOutcome struct {
	// Path is the absolute path of the file.
	Path string

	// Info describes the file content that was parsed.
	// Nil when the file could not be read.
	Info *fsutil.FileInfo

	// Elements is the parsed element tree.
	Elements []*ast.Element

	// Stats summarizes Elements.
	Stats parser.Stats

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a scan.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully parsed.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesWithPunycode is the number of files with at least one
	// punycode warning.
	FilesWithPunycode int

	// Messages merges the statistics of all processed files.
	Messages parser.Stats
}

// Result is the overall scan result.
type Result struct {
	// Files contains the outcome for each discovered file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the scan.
	Stats Stats
}

// HasPunycode reports whether any link needed a punycode warning.
func (r *Result) HasPunycode() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesWithPunycode > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	if len(outcome.Stats.PunycodeWarnings) > 0 {
		r.Stats.FilesWithPunycode++
	}
	r.Stats.Messages.Merge(outcome.Stats)
}
