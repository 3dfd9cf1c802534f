package reporter

import (
	"bufio"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/msgparse/pkg/linkurl"
	"github.com/yaklabco/msgparse/pkg/runner"
)

// schemaVersion identifies the JSON report layout.
const schemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path             string                    `json:"path"`
	Size             int64                     `json:"size"`
	SHA256           string                    `json:"sha256,omitempty"`
	Elements         int                       `json:"elements"`
	ByKind           map[string]int            `json:"by_kind"`
	Depth            int                       `json:"depth"`
	Links            []linkurl.Destination     `json:"links"`
	Hashtags         []string                  `json:"hashtags"`
	Emails           []string                  `json:"emails"`
	BotCommands      []string                  `json:"bot_commands"`
	PunycodeWarnings []linkurl.PunycodeWarning `json:"punycode_warnings"`
	EmojiOnly        bool                      `json:"emoji_only"`
	Error            string                    `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesScanned      int            `json:"files_scanned"`
	FilesErrored      int            `json:"files_errored"`
	FilesWithPunycode int            `json:"files_with_punycode"`
	Elements          int            `json:"elements"`
	ByKind            map[string]int `json:"by_kind"`
	Links             int            `json:"links"`
	PunycodeWarnings  int            `json:"punycode_warnings"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.PunycodeWarnings, nil
}

// nonNil keeps empty lists as [] in the output.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: schemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{ByKind: make(map[string]int)},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:             displayPath(file.Path, r.opts.WorkingDir),
			ByKind:           file.Stats.ByKind,
			Elements:         file.Stats.Elements,
			Depth:            file.Stats.Depth,
			Links:            nonNil(file.Stats.Links),
			Hashtags:         nonNil(file.Stats.Hashtags),
			Emails:           nonNil(file.Stats.Emails),
			BotCommands:      nonNil(file.Stats.BotCommands),
			PunycodeWarnings: nonNil(file.Stats.PunycodeWarnings),
			EmojiOnly:        file.Stats.EmojiOnly,
		}
		if fileResult.ByKind == nil {
			fileResult.ByKind = make(map[string]int)
		}

		if file.Info != nil {
			fileResult.Size = file.Info.Size
			fileResult.SHA256 = hex.EncodeToString(file.Info.Hash[:])
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary.FilesScanned = stats.FilesProcessed
	output.Summary.FilesErrored = stats.FilesErrored
	output.Summary.FilesWithPunycode = stats.FilesWithPunycode
	output.Summary.Elements = stats.Messages.Elements
	output.Summary.Links = len(stats.Messages.Links)
	output.Summary.PunycodeWarnings = len(stats.Messages.PunycodeWarnings)
	for kind, count := range stats.Messages.ByKind {
		output.Summary.ByKind[kind] = count
	}

	return output
}
