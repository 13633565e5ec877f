package cli

import (
	"strings"
	"testing"
)

// =============================================================================
// cmdCompletion Argument Parsing Tests
// =============================================================================

func TestCmdCompletion_Shells(t *testing.T) {
	tests := []struct {
		shell    string
		wantCode int
		wantOut  string
	}{
		{"bash", 0, "complete -F _conreport_completions conreport"},
		{"zsh", 0, "#compdef conreport"},
		{"fish", 0, "complete -c conreport -f"},
		{"powershell", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			stdout, _ := captureOutput(t)
			if code := cmdCompletion([]string{tt.shell}); code != tt.wantCode {
				t.Errorf("cmdCompletion([%s]) = %d, want %d", tt.shell, code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.wantOut) {
				t.Errorf("output missing %q", tt.wantOut)
			}
		})
	}
}

func TestCmdCompletion_Arguments(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"no args", []string{}, 2},
		{"-h", []string{"-h"}, 0},
		{"--help", []string{"--help"}, 0},
		{"alias", []string{"bash", "--alias=cr"}, 0},
		{"alias without value", []string{"--alias", "bash"}, 2},
		{"unknown flag", []string{"--unknown", "bash"}, 2},
		{"multiple shells", []string{"bash", "zsh"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t)
			if code := cmdCompletion(tt.args); code != tt.wantCode {
				t.Errorf("cmdCompletion(%v) = %d, want %d", tt.args, code, tt.wantCode)
			}
		})
	}
}

// =============================================================================
// Script Content Tests
// =============================================================================

func TestBuiltinCommands_ContainsExpected(t *testing.T) {
	want := map[string]bool{"run": true, "watch": true, "summary": true, "styles": true, "completion": true, "version": true, "help": true}
	for _, c := range builtinCommands() {
		if !want[c.name] {
			t.Errorf("unexpected command %q", c.name)
		}
		if c.description == "" {
			t.Errorf("command %q has no description", c.name)
		}
		delete(want, c.name)
	}
	for name := range want {
		t.Errorf("builtinCommands() missing %q", name)
	}
}

func TestStyleNames(t *testing.T) {
	if got := strings.Join(styleNames(), " "); got != "auto css severity plain ansi" {
		t.Errorf("styleNames() = %q", got)
	}
}

func TestGenerateCompletion_ContainsRequiredElements(t *testing.T) {
	generators := map[string]func(string) string{
		"bash": generateBashCompletion,
		"zsh":  generateZshCompletion,
		"fish": generateFishCompletion,
	}

	for shell, generate := range generators {
		t.Run(shell, func(t *testing.T) {
			script := generate("conreport")
			for _, want := range []string{"run", "watch", "summary", "styles", "coverprofile", "expect-coverage", "severity"} {
				if !strings.Contains(script, want) {
					t.Errorf("%s completion missing %q", shell, want)
				}
			}
			if strings.Contains(script, "%!") {
				t.Errorf("%s completion has a formatting error:\n%s", shell, script)
			}
			if strings.Contains(script, "alias") {
				t.Errorf("%s completion mentions an alias without one", shell)
			}
		})
	}
}

func TestGenerateCompletion_WithAlias(t *testing.T) {
	tests := []struct {
		shell    string
		generate func(string) string
		want     []string
	}{
		{"bash", generateBashCompletion, []string{"complete -F _cr_completions cr", "--alias=cr"}},
		{"zsh", generateZshCompletion, []string{"#compdef cr", "compdef _cr cr"}},
		{"fish", generateFishCompletion, []string{"complete -c cr -f", "conreport completion fish --alias=cr | source"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			script := tt.generate("cr")
			for _, want := range tt.want {
				if !strings.Contains(script, want) {
					t.Errorf("%s completion missing %q:\n%s", tt.shell, want, script)
				}
			}
		})
	}
}
