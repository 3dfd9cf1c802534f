package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/msgparse/pkg/parser"
	"github.com/yaklabco/msgparse/pkg/reporter"
	"github.com/yaklabco/msgparse/pkg/runner"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "tree maps to text", input: "tree", want: reporter.FormatText},
		{name: "table maps to text", input: "table", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "yaml maps to json", input: "yaml", want: reporter.FormatJSON},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.False(t, reporter.Format("sarif").IsValid())
	assert.False(t, reporter.Format("").IsValid())
	assert.Equal(t, "json", reporter.FormatJSON.String())
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	rep, err := reporter.New(reporter.Options{Writer: &buf})
	require.NoError(t, err)
	assert.IsType(t, &reporter.TextReporter{}, rep)

	rep, err = reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON})
	require.NoError(t, err)
	assert.IsType(t, &reporter.JSONReporter{}, rep)

	_, err = reporter.New(reporter.Options{Writer: &buf, Format: "sarif"})
	require.Error(t, err)
}

// scan runs the runner over a temp dir holding files.
func scan(t *testing.T, files map[string]string) (*runner.Result, string) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	result, err := runner.New(nil).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Mode:       parser.ModeText,
	})
	require.NoError(t, err)
	return result, dir
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	result, dir := scan(t, map[string]string{
		"a.txt": "hello #news",
		"b.txt": "mail me@delta.chat or visit https://münchen.de",
	})

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: dir})

	warnings, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, warnings)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0.0", out.Version)
	require.Len(t, out.Files, 2)

	first := out.Files[0]
	assert.Equal(t, "a.txt", first.Path)
	assert.Equal(t, []string{"#news"}, first.Hashtags)
	assert.Empty(t, first.Links)
	assert.NotNil(t, first.Links)
	assert.Len(t, first.SHA256, 64)
	assert.Equal(t, int64(len("hello #news")), first.Size)

	second := out.Files[1]
	assert.Equal(t, "b.txt", second.Path)
	assert.Equal(t, []string{"me@delta.chat"}, second.Emails)
	require.Len(t, second.PunycodeWarnings, 1)
	assert.Equal(t, "münchen.de", second.PunycodeWarnings[0].OriginalHostname)
	assert.Equal(t, "xn--mnchen-3ya.de", second.PunycodeWarnings[0].ASCIIHostname)

	assert.Equal(t, 2, out.Summary.FilesScanned)
	assert.Equal(t, 1, out.Summary.FilesWithPunycode)
	assert.Equal(t, 1, out.Summary.Links)
	assert.Equal(t, 1, out.Summary.PunycodeWarnings)
	assert.Equal(t, 1, out.Summary.ByKind["Tag"])
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	result, _ := scan(t, map[string]string{"a.txt": "hi"})

	var indented, compact bytes.Buffer
	_, err := reporter.NewJSONReporter(reporter.Options{Writer: &indented}).Report(context.Background(), result)
	require.NoError(t, err)
	_, err = reporter.NewJSONReporter(reporter.Options{Writer: &compact, Compact: true}).Report(context.Background(), result)
	require.NoError(t, err)

	assert.Contains(t, indented.String(), "\n  ")
	assert.Equal(t, 1, strings.Count(compact.String(), "\n"))
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnings, err := reporter.NewJSONReporter(reporter.Options{Writer: &buf}).Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, warnings)
	assert.Contains(t, buf.String(), `"files": []`)
}

func TestJSONReporter_FileError(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "/tmp/broken.txt", Error: errors.New("read failed")}},
		Stats: runner.Stats{FilesDiscovered: 1, FilesErrored: 1},
	}

	var buf bytes.Buffer
	_, err := reporter.NewJSONReporter(reporter.Options{Writer: &buf}).Report(context.Background(), result)
	require.NoError(t, err)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Files, 1)
	assert.Equal(t, "read failed", out.Files[0].Error)
	assert.Equal(t, 1, out.Summary.FilesErrored)
	assert.NotNil(t, out.Files[0].ByKind)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	result, dir := scan(t, map[string]string{
		"a.txt": "hello #news",
		"b.txt": "visit https://münchen.de",
	})

	tests := []struct {
		name     string
		opts     reporter.Options
		contains []string
		excludes []string
	}{
		{
			name: "default",
			opts: reporter.Options{ShowSummary: true},
			contains: []string{
				"a.txt: 2 elements, 0 links, 1 hashtags, 0 emails",
				"punycode: münchen.de -> xn--mnchen-3ya.de",
				"2 files scanned, 1 link, 1 punycode warning in 1 file",
			},
			excludes: []string{"Summary", "hashtags: #news"},
		},
		{
			name:     "no summary",
			opts:     reporter.Options{},
			excludes: []string{"files scanned"},
		},
		{
			name: "verbose",
			opts: reporter.Options{ShowSummary: true, Verbose: true},
			contains: []string{
				"hashtags: #news",
				"links: https://münchen.de",
				"Summary",
				"Punycode hostnames:",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			opts := tt.opts
			opts.Writer = &buf
			opts.Color = "never"
			opts.WorkingDir = dir

			warnings, err := reporter.NewTextReporter(opts).Report(context.Background(), result)
			require.NoError(t, err)
			assert.Equal(t, 1, warnings)

			output := buf.String()
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, output, unwanted)
			}
		})
	}
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	warnings, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, warnings)
	assert.Equal(t, "No files to scan.\n", buf.String())
}

func TestTextReporter_FileError(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "broken.txt", Error: errors.New("permission denied")}},
		Stats: runner.Stats{FilesDiscovered: 1, FilesErrored: 1},
	}

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "broken.txt: error: permission denied")
	assert.Contains(t, buf.String(), "1 file failed")
}
