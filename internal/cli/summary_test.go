package cli

import (
	"strings"
	"testing"
)

func TestCmdSummary_Help(t *testing.T) {
	tests := []struct {
		args []string
	}{
		{[]string{"-h"}},
		{[]string{"--help"}},
	}

	for _, tc := range tests {
		captureOutput(t)
		code := cmdSummary(tc.args)
		if code != 0 {
			t.Errorf("cmdSummary(%v) = %d, want 0", tc.args, code)
		}
	}
}

func TestCmdSummary_FileNotFound(t *testing.T) {
	captureOutput(t)
	code := cmdSummary([]string{"/nonexistent/path/test.json"})
	if code != 1 {
		t.Errorf("cmdSummary(nonexistent file) = %d, want 1", code)
	}
}

func TestCmdSummary_EmptyInput(t *testing.T) {
	_, stderr := captureOutput(t)
	testFile := writeFile(t, "empty.json", "")

	code := cmdSummary([]string{testFile})
	if code != 1 {
		t.Errorf("cmdSummary(empty file) = %d, want 1 (no test results)", code)
	}
	if !strings.Contains(stderr.String(), "no test results found") {
		t.Errorf("stderr = %q, want no results message", stderr.String())
	}
}

func TestCmdSummary_AllPassing(t *testing.T) {
	stdout, stderr := captureOutput(t)
	testFile := writeFile(t, "passing.json", passingStream)

	code := cmdSummary([]string{testFile})
	if code != 0 {
		t.Errorf("cmdSummary(all passing) = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "  Passed: 2\n") || !strings.Contains(stdout.String(), "  Total: 2\n") {
		t.Errorf("stdout = %q, want counts", stdout.String())
	}
	if !strings.Contains(stderr.String(), "All 2 tests passed.") {
		t.Errorf("stderr = %q, want final success", stderr.String())
	}
}

func TestCmdSummary_WithFailures(t *testing.T) {
	stdout, stderr := captureOutput(t)
	withStdin(t, failingStream)

	code := cmdSummary([]string{"-"})
	if code != 1 {
		t.Errorf("cmdSummary(with failures) = %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), "example.TestBar: expected 1, got 2") {
		t.Errorf("stdout = %q, want failed test reason", stdout.String())
	}
	if !strings.Contains(stderr.String(), "1 of 2 tests failed.") {
		t.Errorf("stderr = %q, want final failure", stderr.String())
	}
}

func TestCmdSummary_BuildFailure(t *testing.T) {
	stdout, stderr := captureOutput(t)
	withStdin(t, `{"Action":"output","Package":"example.com/broken","Output":"./broken.go:7:9: undefined: ratio\n"}
{"Action":"fail","Package":"example.com/broken"}
`)

	if code := cmdSummary([]string{"-"}); code != 1 {
		t.Errorf("cmdSummary(build failure) = %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), "    example.com/broken: undefined: ratio\n") {
		t.Errorf("stdout = %q, want the package named once", stdout.String())
	}
	if !strings.Contains(stderr.String(), "1 of 1 tests failed.") {
		t.Errorf("stderr = %q, want final failure", stderr.String())
	}
}

func TestCmdSummary_WithSkipped(t *testing.T) {
	stdout, _ := captureOutput(t)
	jsonContent := `{"Action":"run","Package":"example","Test":"TestFoo"}
{"Action":"pass","Package":"example","Test":"TestFoo","Elapsed":0.1}
{"Action":"run","Package":"example","Test":"TestBar"}
{"Action":"skip","Package":"example","Test":"TestBar","Elapsed":0.0}
`
	testFile := writeFile(t, "skipped.json", jsonContent)

	code := cmdSummary([]string{testFile})
	if code != 0 {
		t.Errorf("cmdSummary(with skipped) = %d, want 0 (skipped tests don't fail)", code)
	}
	if !strings.Contains(stdout.String(), "  Skipped: 1\n") {
		t.Errorf("stdout = %q, want skipped count", stdout.String())
	}
}

func TestCmdSummary_InvalidJSON(t *testing.T) {
	captureOutput(t)
	testFile := writeFile(t, "invalid.json", "not json at all")

	code := cmdSummary([]string{testFile})
	if code != 1 {
		t.Errorf("cmdSummary(invalid JSON) = %d, want 1 (no test results)", code)
	}
}

func TestCmdSummary_ExtraArgument(t *testing.T) {
	captureOutput(t)
	if code := cmdSummary([]string{"a.json", "b.json"}); code != 2 {
		t.Errorf("cmdSummary(two files) = %d, want 2", code)
	}
}
