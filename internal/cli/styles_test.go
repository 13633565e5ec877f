package cli

import (
	"strings"
	"testing"
)

func TestCmdStyles(t *testing.T) {
	stdout, _ := captureOutput(t)

	if code := cmdStyles(nil); code != 0 {
		t.Fatalf("cmdStyles() = %d, want 0", code)
	}

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header, separator and 4 styles:\n%s", len(lines), stdout.String())
	}
	var order []string
	for _, line := range lines[2:] {
		order = append(order, strings.Fields(line)[0])
	}
	if got := strings.Join(order, ","); got != "css,severity,plain,ansi" {
		t.Errorf("styles = %s, want detection order css,severity,plain,ansi", got)
	}
	if !strings.Contains(stdout.String(), "%c style directives") {
		t.Errorf("css row missing description:\n%s", stdout.String())
	}
}

func TestCmdStyles_UnexpectedArgument(t *testing.T) {
	captureOutput(t)
	if code := cmdStyles([]string{"css"}); code != 2 {
		t.Errorf("cmdStyles([css]) = %d, want 2", code)
	}
}
