package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/AndreyAkinshin/conreport/internal/errors"
	"github.com/AndreyAkinshin/conreport/internal/watch"
	"github.com/AndreyAkinshin/conreport/pkg/reporter"
)

// cmdWatch follows a console stream, from a file, standard input or a child
// process, until the reporter's completion line.
func cmdWatch(args []string, _ *GlobalOptions) int {
	if wantsHelp(args) {
		printWatchUsage()
		return 0
	}

	var input string
	var command []string
	for i, arg := range args {
		if arg == "--" {
			command = args[i+1:]
			if len(command) == 0 {
				out.ErrorPrefix("watch: command required after --")
				return errors.ExitConfigError
			}
			break
		}
		if strings.HasPrefix(arg, "-") && arg != "-" {
			out.ErrorPrefix("watch: unknown flag: %s", arg)
			return errors.ExitConfigError
		}
		if input != "" {
			out.ErrorPrefix("watch: unexpected argument: %s", arg)
			return errors.ExitConfigError
		}
		input = arg
	}
	if input != "" && command != nil {
		out.ErrorPrefix("watch: cannot watch both %s and a command", input)
		return errors.ExitConfigError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var result watch.Result
	var err error
	if command != nil {
		out.Debug("starting %s", strings.Join(command, " "))
		result, err = watch.Command(ctx, command[0], command[1:], out.Out(), out.Err())
	} else {
		r, openErr := openInput(input)
		if openErr != nil {
			out.ErrorPrefix("watch: %v", openErr)
			return errors.GetExitCode(openErr)
		}
		defer func() { _ = r.Close() }()
		result, err = watch.Watch(ctx, r, out.Out())
	}
	if err != nil {
		out.ErrorPrefix("watch: %v", err)
		return errors.ExitRuntimeError
	}

	return reportWatch(result)
}

// reportWatch prints the outcome of a watch and returns its exit code.
func reportWatch(result watch.Result) int {
	out.Debug("status: %s", result.Status())
	switch {
	case !result.Finished:
		out.FinalFailure("stream ended before %q", reporter.Sentinel)
		return errors.ExitRuntimeError
	case result.CoverageMismatch:
		out.FinalFailure("coverage mismatch: expected %d but saw %d", result.CoverageExpected, result.CoverageSeen)
		return errors.ExitRuntimeError
	case !result.Passed():
		out.FinalFailure("%d of %d specs failed.", result.Failures, result.Specs)
		return errors.ExitRuntimeError
	default:
		out.FinalSuccess("All %d specs passed in %s.", result.Specs, result.Duration)
		return errors.ExitSuccess
	}
}

func printWatchUsage() {
	out.HelpTitle("conreport watch - follow a console stream until the report finishes")

	out.HelpSection("Usage:")
	out.HelpUsage("conreport watch [<file>|-]")
	out.HelpUsage("conreport watch -- <command> [args...]")

	out.HelpSection("Description:")
	out.Println("  Echoes console lines until the line %q appears.", reporter.Sentinel)
	out.Println("  With a command, starts it, follows its standard output and stops it")
	out.Println("  once the report is finished.")
	out.Println("")
	out.Println("  Exits 1 when the report failed or the stream ended without finishing.")

	out.HelpSection("Examples:")
	out.HelpExample("go test -json ./... | conreport run | conreport watch", "Follow a report on standard input")
	out.HelpExample("conreport watch console.log", "Check a saved console log")
	out.HelpExample("conreport watch -- ./headless-host --spec-runner", "Run a host until its report finishes")
	out.Println("")
}
