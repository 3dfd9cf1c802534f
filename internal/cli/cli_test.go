package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yaklabco/msgparse/internal/cli"
)

//nolint:gochecknoglobals // Shared read-only fixture.
var testInfo = cli.BuildInfo{
	Version: "1.2.3",
	Commit:  "abc123",
	Date:    "2024-01-01",
}

// execute runs the root command with args and stdin, returning stdout,
// stderr, and the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "msgparse" {
		t.Errorf("expected Use to be 'msgparse', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	expectedSubcommands := []string{
		"parse", "links", "mentions", "emoji", "punycode", "scan", "init", "version",
	}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	expected := map[string][]string{
		"parse": {"mode", "format", "detect-lang", "max-depth", "compact"},
		"links": {"mode", "format", "fail-on-punycode"},
		"scan":  {"mode", "format", "jobs", "ext", "ignore", "follow-symlinks", "fail-on-punycode", "no-summary"},
		"init":  {"force", "format", "output"},
	}

	for name, flags := range expected {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("%s command not found: %v", name, err)
		}
		for _, flagName := range flags {
			if subCmd.Flags().Lookup(flagName) == nil {
				t.Errorf("expected flag %q to exist on %s command", flagName, name)
			}
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, flagName := range []string{"config", "color", "no-color", "verbose", "quiet"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, want := range []string{"msgparse", "version=1.2.3", "commit=abc123", "built=2024-01-01"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("version output %q does not contain %q", stdout, want)
		}
	}
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "json from arguments",
			args: []string{"parse", "--format", "json", "--compact", "**hi** #tag"},
			want: `[{"t":"Bold","c":[{"t":"Text","c":"hi"}]},{"t":"Text","c":" "},{"t":"Tag","c":"#tag"}]` + "\n",
		},
		{
			name: "arguments are joined",
			args: []string{"parse", "--format", "text", "hello", "world"},
			want: "hello world\n",
		},
		{
			name:  "stdin without arguments",
			stdin: "**bold** text\n",
			args:  []string{"parse", "--format", "text"},
			want:  "bold text\n",
		},
		{
			name:  "stdin with dash",
			stdin: "_it_\r\n",
			args:  []string{"parse", "--format", "text", "-"},
			want:  "it\n",
		},
		{
			name: "text mode ignores markdown",
			args: []string{"parse", "--mode", "text", "--format", "json", "--compact", "**hi**"},
			want: `[{"t":"Text","c":"**hi**"}]` + "\n",
		},
		{
			name: "yaml",
			args: []string{"parse", "--format", "yaml", "hello"},
			want: "- t: Text\n  c: hello\n",
		},
		{
			name: "tree",
			args: []string{"parse", "--mode", "text", "--format", "tree", "see https://münchen.de"},
			want: "Text \"see \"\nLink https://münchen.de punycode: xn--mnchen-3ya.de\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("got output %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestParseCommand_DetectLanguage(t *testing.T) {
	t.Parallel()

	input := "```\npackage main\n\nfunc main() {}\n```"
	stdout, _, err := execute(t, input, "parse", "--format", "tree", "--detect-lang")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !strings.Contains(stdout, "CodeBlock (Go") {
		t.Errorf("expected a Go hint in %q", stdout)
	}
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown mode", args: []string{"parse", "--mode", "html", "x"}},
		{name: "unknown format", args: []string{"parse", "--format", "xml", "x"}},
		{name: "table format for parse", args: []string{"parse", "--format", "table", "x"}},
		{name: "negative depth", args: []string{"parse", "--max-depth", "-1", "x"}},
		{name: "unknown flag", args: []string{"parse", "--bogus", "x"}},
		{name: "verbose and quiet", args: []string{"--verbose", "--quiet", "parse", "x"}},
		{name: "invalid color", args: []string{"--color", "rainbow", "parse", "x"}},
		{name: "links format", args: []string{"links", "--format", "yaml", "x"}},
		{name: "punycode without hosts", args: []string{"punycode", "encode"}},
		{name: "scan format", args: []string{"scan", "--format", "sarif"}},
		{name: "scan negative jobs", args: []string{"scan", "--jobs", "-2"}},
		{name: "init arguments", args: []string{"init", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, "", tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := cli.ExitCode(err); code != cli.ExitUsage {
				t.Errorf("got exit code %d, want %d (error: %v)", code, cli.ExitUsage, err)
			}
		})
	}
}

func TestLinksCommand(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "", "links", "--format", "json", "a https://delta.chat b")
		if err != nil {
			t.Fatalf("links failed: %v", err)
		}
		for _, want := range []string{`"target": "https://delta.chat"`, `"hostname": "delta.chat"`, `"scheme": "https"`} {
			if !strings.Contains(stdout, want) {
				t.Errorf("output %q does not contain %q", stdout, want)
			}
		}
	})

	t.Run("json without links", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "", "links", "--format", "json", "nothing here")
		if err != nil {
			t.Fatalf("links failed: %v", err)
		}
		if stdout != "[]\n" {
			t.Errorf("got %q, want empty array", stdout)
		}
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "", "links", "https://münchen.de")
		if err != nil {
			t.Fatalf("links failed: %v", err)
		}
		if !strings.HasPrefix(stdout, "TARGET") || !strings.Contains(stdout, "xn--mnchen-3ya.de") {
			t.Errorf("unexpected table %q", stdout)
		}
	})

	t.Run("fail on punycode", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "", "links", "--fail-on-punycode", "https://münchen.de")
		if !errors.Is(err, cli.ErrPunycodeFound) {
			t.Fatalf("expected ErrPunycodeFound, got %v", err)
		}

		_, _, err = execute(t, "", "links", "--fail-on-punycode", "https://delta.chat")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMentionsCommand(t *testing.T) {
	t.Parallel()

	input := "Hi @bob@delta.chat and @alice@example.com! @bob@delta.chat"

	stdout, _, err := execute(t, "", "mentions", input)
	if err != nil {
		t.Fatalf("mentions failed: %v", err)
	}
	if want := "alice@example.com\nbob@delta.chat\n"; stdout != want {
		t.Errorf("got %q, want %q", stdout, want)
	}

	stdout, _, err = execute(t, "", "mentions", "--json", "no mentions")
	if err != nil {
		t.Fatalf("mentions failed: %v", err)
	}
	if stdout != "[]\n" {
		t.Errorf("got %q, want empty JSON array", stdout)
	}
}

func TestEmojiCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"emoji", "🔥🔥"}, want: "first emoji: 🔥\nemoji only: yes (2)\n"},
		{args: []string{"emoji", "👍 thanks"}, want: "first emoji: 👍\nemoji only: no\n"},
		{args: []string{"emoji", "hello"}, want: "first emoji: none\nemoji only: no\n"},
		{args: []string{"emoji", "--json", "hi"}, want: `{"emoji_only":false,"emoji_count":0}` + "\n"},
		{args: []string{"emoji", "--json", "🔥"}, want: `{"first_emoji":"🔥","emoji_only":true,"emoji_count":1}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("emoji failed: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("got %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestPunycodeCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args     []string
		want     string
		wantCode int
	}{
		{args: []string{"punycode", "encode", "münchen.de", "delta.chat"}, want: "xn--mnchen-3ya.de\ndelta.chat\n"},
		{args: []string{"punycode", "decode", "xn--mnchen-3ya.de"}, want: "münchen.de\n"},
		{args: []string{"punycode", "check", "delta.chat"}, want: "delta.chat ok\n"},
		{
			args:     []string{"punycode", "check", "delta.chat", "münchen.de"},
			want:     "delta.chat ok\nmünchen.de punycode: münchen.de -> xn--mnchen-3ya.de\n",
			wantCode: cli.ExitFindings,
		},
		{
			args:     []string{"punycode", "check", "xn--mnchen-3ya.de"},
			want:     "xn--mnchen-3ya.de punycode: münchen.de -> xn--mnchen-3ya.de\n",
			wantCode: cli.ExitFindings,
		},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, "", tt.args...)
			if code := cli.ExitCode(err); code != tt.wantCode {
				t.Fatalf("got exit code %d, want %d (error: %v)", code, tt.wantCode, err)
			}
			if stdout != tt.want {
				t.Errorf("got %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "punycode", err: cli.ErrPunycodeFound, want: cli.ExitFindings},
		{name: "wrapped punycode", err: fmt.Errorf("check: %w", cli.ErrPunycodeFound), want: cli.ExitFindings},
		{name: "usage", err: &cli.UsageError{Err: errors.New("bad flag")}, want: cli.ExitUsage},
		{name: "wrapped usage", err: fmt.Errorf("x: %w", &cli.UsageError{Err: errors.New("y")}), want: cli.ExitUsage},
		{name: "scan failure", err: cli.ErrScanFailed, want: cli.ExitError},
		{name: "other", err: errors.New("boom"), want: cli.ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}

	for _, want := range []string{"Usage:", "Commands:", "parse", "scan", "Flags:", "--config"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output does not contain %q", want)
		}
	}
}
