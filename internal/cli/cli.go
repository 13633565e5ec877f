// Package cli provides command-line interface functionality for conreport.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/AndreyAkinshin/conreport/internal/errors"
	"github.com/AndreyAkinshin/conreport/internal/output"
)

// Version is set at build time.
var Version = "dev"

// Process-wide streams, replaced in tests.
var (
	out    = output.New()
	stdin  io.Reader = os.Stdin
	getenv           = os.Getenv
)

// Help widths shared by command usage pages.
const (
	widthCommand = 10
	widthFlag    = 24
)

// wantsHelp returns true if args contain -h or --help before any -- separator.
// Arguments after -- are passed through to commands, so help flags there are ignored.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		out.Println("conreport %s", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	if len(remaining) == 0 {
		printUsage()
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "run":
		return cmdRun(cmdArgs, opts)
	case "watch":
		return cmdWatch(cmdArgs, opts)
	case "summary":
		return cmdSummary(cmdArgs)
	case "styles":
		return cmdStyles(cmdArgs)
	case "completion":
		return cmdCompletion(cmdArgs)
	case "version":
		out.Println("conreport %s", Version)
		return 0
	default:
		out.ErrorPrefix("unknown command: %s", cmd)
		out.Hint("run 'conreport help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet   bool
	Verbose bool
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Flags can appear anywhere before --; everything after -- is passed through
// verbatim so watch can hand it to a child process.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-q", "--quiet":
			opts.Quiet = true
		case "-v", "--verbose":
			opts.Verbose = true
		case "--":
			remaining = append(remaining, args[i:]...)
			i = len(args)
		default:
			remaining = append(remaining, arg)
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	out.SetQuiet(opts.Quiet)
	out.SetVerbose(opts.Verbose)

	return opts, remaining, nil
}

// openInput opens the named file, or standard input for "" and "-".
func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("input file", name)
		}
		return nil, errors.Wrap(err, "failed to open input")
	}
	return f, nil
}

func printUsage() {
	out.HelpTitle("conreport - console reporter for go test event streams")

	out.HelpSection("Usage:")
	out.HelpUsage("conreport <command> [options] [args]")

	out.HelpSection("Commands:")
	for _, c := range builtinCommands() {
		if c.name != "help" {
			out.HelpCommand(c.name, c.description, widthCommand)
		}
	}

	printGlobalFlags()

	out.HelpSection("Environment:")
	out.HelpFlag("NO_COLOR=1", "Disable colors when the style is auto", widthFlag)

	out.HelpSection("Examples:")
	out.HelpExample("go test -json ./... | conreport run", "Report results with ANSI colors")
	out.HelpExample("go test -json ./... | conreport run | conreport watch", "Stop once the report is finished")
	out.HelpExample("conreport watch -- ./headless-host", "Run a host and stop it after the report")
	out.Println("")
}

func printGlobalFlags() {
	out.HelpSection("Global Flags:")
	out.HelpFlag("-q, --quiet", "Minimal output (errors only)", widthFlag)
	out.HelpFlag("-v, --verbose", "Maximum detail", widthFlag)
	out.HelpFlag("-h, --help", "Show this help", widthFlag)
	out.HelpFlag("--version", "Show version", widthFlag)
}
