package output

import (
	"bytes"
	"strings"
	"testing"
)

// newTestWriter creates a Writer with captured output for testing.
func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := &Writer{
		out:   stdout,
		err:   stderr,
		color: false, // Disable color for predictable test output
	}
	return w, stdout, stderr
}

func TestNew(t *testing.T) {
	w := New()
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.out == nil {
		t.Error("out writer is nil")
	}
	if w.err == nil {
		t.Error("err writer is nil")
	}
}

func TestWriter_Println(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Println("hello %s", "world")

	if got := stdout.String(); got != "hello world\n" {
		t.Errorf("Println() = %q, want %q", got, "hello world\n")
	}
}

func TestWriter_Debug(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Debug("style %s", "css")
	if stderr.Len() != 0 {
		t.Errorf("Debug() without verbose = %q, want empty", stderr.String())
	}

	w.SetVerbose(true)
	w.Debug("style %s", "css")
	if got := stderr.String(); got != "debug: style css\n" {
		t.Errorf("Debug() = %q, want %q", got, "debug: style css\n")
	}
}

func TestWriter_Warning(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Warning("unknown field %q", "x")

	if got := stderr.String(); got != "warning: unknown field \"x\"\n" {
		t.Errorf("Warning() = %q", got)
	}
}

func TestWriter_ErrorPrefix(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.ErrorPrefix("bad %s", "input")

	if got := stderr.String(); got != "conreport: bad input\n" {
		t.Errorf("ErrorPrefix() = %q", got)
	}
}

func TestWriter_Colored(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := NewWithWriters(stdout, stderr, true)

	w.FinalFailure("failed")

	if got := stderr.String(); got != "\x1b[31mfailed\x1b[0m\n" {
		t.Errorf("FinalFailure() = %q, want red text", got)
	}
}

func TestWriter_FinalSuccessQuiet(t *testing.T) {
	w, _, stderr := newTestWriter()
	w.SetQuiet(true)

	w.FinalSuccess("ok")

	if stderr.Len() != 0 {
		t.Errorf("FinalSuccess() in quiet mode = %q, want empty", stderr.String())
	}
}

func TestWriter_Table(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Table([]string{"Style", "Description"}, [][]string{
		{"ansi", "escape codes"},
		{"css", "style directive"},
	})

	want := strings.Join([]string{
		"Style  Description",
		"-----  ---------------",
		"ansi   escape codes",
		"css    style directive",
		"",
	}, "\n")
	if got := stdout.String(); got != want {
		t.Errorf("Table() =\n%s\nwant:\n%s", got, want)
	}
}

func TestWriter_HelpCommand(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.HelpCommand("run", "Replay a stream", 6)

	if got := stdout.String(); got != "  run     Replay a stream\n" {
		t.Errorf("HelpCommand() = %q", got)
	}
}

func TestWriter_Summary(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.SummaryHeader("Test Summary")
	w.SummaryPassed("Passed", "2")
	w.SummaryFailed("Failed", "1")
	w.SummaryItem("Total", "3")
	w.SummarySectionLabel("Failed Tests:")

	want := "\n=== Test Summary ===\n\n  Passed: 2\n  Failed: 1\n  Total: 3\n  Failed Tests:\n"
	if got := stdout.String(); got != want {
		t.Errorf("summary =\n%q\nwant\n%q", got, want)
	}
}
