// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/sbtools/blockresolve/internal/config"
	"github.com/sbtools/blockresolve/internal/issue"
	"github.com/sbtools/blockresolve/internal/testutil"
	"github.com/sbtools/blockresolve/pkg/blockspec"
)

func TestHashCommand(t *testing.T) {
	out, _, err := runCLI(t, config.StaticProvider{}, "hash", "move", "%1", "steps")
	if err != nil {
		t.Fatalf("hash error = %v", err)
	}
	if want := blockspec.HashSpec("move %1 steps") + "\n"; out != want {
		t.Errorf("hash output = %q, want %q", out, want)
	}
}

func TestTokenizeCommand(t *testing.T) {
	out, _, err := runCLI(t, config.StaticProvider{}, "tokenize", "when @greenFlag clicked")
	if err != nil {
		t.Fatalf("tokenize error = %v", err)
	}
	for _, want := range []string{"label", "icon", "@greenFlag", "⚑", "hash"} {
		if !strings.Contains(out, want) {
			t.Errorf("tokenize output should contain %q:\n%s", want, out)
		}
	}
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "list length",
			args: []string{"resolve", "length of [list v]"},
			want: []string{"DATA_LENGTHOFLIST", "reporter", "list"},
		},
		{
			name: "string length",
			args: []string{"resolve", "length", "of", "[hello]"},
			want: []string{"OPERATORS_LENGTH", "operators"},
		},
		{
			name: "german green flag",
			args: []string{"resolve", "--lang", "de", "Wenn die grüne Flagge angeklickt"},
			want: []string{"EVENT_WHENFLAGCLICKED", "hat"},
		},
		{
			name: "stop other scripts becomes a stack block",
			args: []string{"resolve", "stop [other scripts in sprite v]"},
			want: []string{"CONTROL_STOP", "stack"},
		},
		{
			name: "overrides",
			args: []string{"resolve", "--override", "looks", "--override", "loop", "--override", "+", "move (10) steps"},
			want: []string{"MOTION_MOVESTEPS", "looks (override)", "loop", "diff"},
		},
		{
			name: "colour override",
			args: []string{"resolve", "--override", "#ff0000", "move (10) steps"},
			want: []string{"color", "#ff0000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, config.StaticProvider{}, tt.args...)
			if err != nil {
				t.Fatalf("resolve error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output should contain %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestResolveCommand_ConfiguredLanguage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = "de"

	out, _, err := runCLI(t, config.StaticProvider{Config: cfg}, "resolve", "Wenn die grüne Flagge angeklickt")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}
	if !strings.Contains(out, "EVENT_WHENFLAGCLICKED") {
		t.Errorf("output = %s", out)
	}
}

func TestResolveCommand_UserPack(t *testing.T) {
	path := testutil.MustWriteFile(t, t.TempDir(), "sv.toml", `
code = "sv"
name = "Svenska"

[commands]
MOTION_MOVESTEPS = "gå %1 steg"
`)
	cfg := config.DefaultConfig()
	cfg.LanguagePacks = []string{path}

	out, _, err := runCLI(t, config.StaticProvider{Config: cfg}, "resolve", "--lang", "sv", "gå (10) steg")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}
	if !strings.Contains(out, "MOTION_MOVESTEPS") {
		t.Errorf("output = %s", out)
	}

	out, _, err = runCLI(t, config.StaticProvider{Config: cfg}, "languages")
	if err != nil {
		t.Fatalf("languages error = %v", err)
	}
	if !strings.Contains(out, "Svenska") || !strings.Contains(out, path) {
		t.Errorf("languages should list the user pack:\n%s", out)
	}
}

func TestResolveCommand_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantIssue issue.Id
		wantCode  int
	}{
		{"unknown block", []string{"resolve", "fly", "to", "the", "moon"}, issue.BlockNotFoundId, exitNotFound},
		{"bad shape", []string{"resolve", "--shape", "circle", "move (10) steps"}, issue.InvalidShapeId, 0},
		{"bad child", []string{"resolve", "say [hello"}, issue.InvalidChildId, 0},
		{"unknown language", []string{"resolve", "--lang", "tlh", "move (10) steps"}, issue.LanguagePackNotFoundId, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stderr, err := runCLI(t, config.StaticProvider{}, tt.args...)
			if err == nil {
				t.Fatal("resolve should fail")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error should be *issue.ActionableError, got %T", err)
			}
			if ae.IssueID != tt.wantIssue {
				t.Errorf("IssueID = %v, want %v", ae.IssueID, tt.wantIssue)
			}
			if stderr == "" {
				t.Error("the linked issue should be rendered to stderr")
			}

			var exitErr *ExitError
			if tt.wantCode != 0 {
				if !errors.As(err, &exitErr) || exitErr.Code != tt.wantCode {
					t.Errorf("error = %v, want exit code %d", err, tt.wantCode)
				}
				if !strings.Contains(out, "(unknown)") || !strings.Contains(out, "obsolete") {
					t.Errorf("unknown blocks should print as obsolete:\n%s", out)
				}
			} else if errors.As(err, &exitErr) {
				t.Errorf("unexpected exit error %v", exitErr)
			}
		})
	}
}

func TestResolveCommand_VerboseChain(t *testing.T) {
	_, stderr, err := runCLI(t, config.StaticProvider{}, "-v", "resolve", "fly", "to", "the", "moon")
	if err == nil {
		t.Fatal("resolve should fail")
	}
	for _, want := range []string{"caused by:", "no definition for hash", "issue #"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("verbose stderr missing %q:\n%s", want, stderr)
		}
	}

	_, stderr, _ = runCLI(t, config.StaticProvider{}, "resolve", "fly", "to", "the", "moon")
	if strings.Contains(stderr, "caused by:") {
		t.Errorf("non-verbose stderr should not list the cause chain:\n%s", stderr)
	}
}

func TestCollisionsCommand(t *testing.T) {
	out, _, err := runCLI(t, config.StaticProvider{}, "collisions")
	if err != nil {
		t.Fatalf("collisions error = %v", err)
	}
	for _, want := range []string{"DATA_LENGTHOFLIST", "OPERATORS_LENGTH", "collision(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("collisions output should contain %q:\n%s", want, out)
		}
	}

	out, _, err = runCLI(t, config.StaticProvider{}, "collisions", "--uncovered")
	if err != nil {
		t.Fatalf("collisions --uncovered error = %v", err)
	}
	if strings.Contains(out, "OPERATORS_LENGTH") {
		t.Errorf("covered collisions should be hidden:\n%s", out)
	}
}

func TestLanguagesCommand(t *testing.T) {
	out, _, err := runCLI(t, config.StaticProvider{}, "languages")
	if err != nil {
		t.Fatalf("languages error = %v", err)
	}
	for _, want := range []string{"en", "English", "de", "zh-CN", "(embedded)"} {
		if !strings.Contains(out, want) {
			t.Errorf("languages output should contain %q:\n%s", want, out)
		}
	}
}

func TestConfigCommands(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = "fr"

	out, _, err := runCLI(t, config.StaticProvider{Config: cfg, Path: "/etc/blockresolve/config.cue"}, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"/etc/blockresolve/config.cue", "language", "fr", "(none configured)"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show should contain %q:\n%s", want, out)
		}
	}

	out, _, err = runCLI(t, config.StaticProvider{Config: cfg}, "config", "dump")
	if err != nil {
		t.Fatalf("config dump error = %v", err)
	}
	if out != config.GenerateCUE(cfg) {
		t.Errorf("config dump = %q", out)
	}

	dir := t.TempDir()
	defer config.OverrideConfigDir(dir)()

	out, _, err = runCLI(t, config.StaticProvider{}, "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, "Created default configuration") {
		t.Errorf("config init output = %q", out)
	}
	out, _, err = runCLI(t, config.StaticProvider{}, "config", "init")
	if err != nil {
		t.Fatalf("second config init error = %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("second config init output = %q", out)
	}
}
