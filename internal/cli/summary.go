package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/AndreyAkinshin/conreport/internal/errors"
	"github.com/AndreyAkinshin/conreport/internal/gotest"
)

// cmdSummary parses go test -json output and prints a summary.
func cmdSummary(args []string) int {
	if wantsHelp(args) {
		printSummaryUsage()
		return 0
	}
	if len(args) > 1 {
		out.ErrorPrefix("summary: unexpected argument: %s", args[1])
		return errors.ExitConfigError
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	}
	input, err := openInput(name)
	if err != nil {
		out.ErrorPrefix("summary: %v", err)
		return errors.GetExitCode(err)
	}
	defer func() { _ = input.Close() }()

	counts, err := summarize(input)
	if err != nil {
		out.ErrorPrefix("summary: %v", err)
		return errors.ExitRuntimeError
	}

	if !counts.Parsed() {
		out.ErrorPrefix("summary: no test results found in input")
		out.Hint("use 'go test -json ./...' to produce JSON output")
		return errors.ExitRuntimeError
	}

	printSummary(&counts)

	if counts.Failed > 0 {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// summarize replays r without any registered reporter.
func summarize(r io.Reader) (gotest.Counts, error) {
	return gotest.New().Run(context.Background(), r)
}

// printSummary prints a formatted test summary.
func printSummary(counts *gotest.Counts) {
	out.SummaryHeader("Test Summary")

	out.SummaryPassed("Passed", fmt.Sprintf("%d", counts.Passed))
	if counts.Failed > 0 {
		out.SummaryFailed("Failed", fmt.Sprintf("%d", counts.Failed))
	}
	if counts.Skipped > 0 {
		out.SummaryItem("Skipped", fmt.Sprintf("%d", counts.Skipped))
	}
	out.SummaryItem("Total", fmt.Sprintf("%d", counts.Total))

	if len(counts.FailedTests) > 0 {
		out.Println("")
		out.SummarySectionLabel("Failed Tests:")
		for _, ft := range counts.FailedTests {
			label := ft.Package
			if ft.Name != "" {
				label += "." + ft.Name
			}
			out.SummaryFailed("  "+label, ft.Reason)
		}
	}

	out.Println("")

	if counts.Failed == 0 {
		out.FinalSuccess("All %d tests passed.", counts.Total)
	} else {
		out.FinalFailure("%d of %d tests failed.", counts.Failed, counts.Total)
	}
}

func printSummaryUsage() {
	out.HelpTitle("conreport summary - parse and summarize go test -json output")
	out.HelpSection("Usage:")
	out.HelpUsage("go test -json ./... | conreport summary")
	out.HelpUsage("conreport summary <file>")
	out.HelpSection("Description:")
	out.Println("  Parses go test -json output and prints a summary of test results,")
	out.Println("  highlighting failed tests with their failure reasons.")
	out.HelpSection("Examples:")
	out.HelpExample("go test -json ./... | conreport summary", "Parse from stdin")
	out.HelpExample("conreport summary test-output.json", "Parse from file")
	out.Println("")
}
