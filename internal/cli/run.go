package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/conreport/internal/config"
	"github.com/AndreyAkinshin/conreport/internal/coverage"
	"github.com/AndreyAkinshin/conreport/internal/errors"
	"github.com/AndreyAkinshin/conreport/internal/gotest"
	"github.com/AndreyAkinshin/conreport/pkg/console"
	"github.com/AndreyAkinshin/conreport/pkg/reporter"
)

// runOptions holds flags of the run command.
type runOptions struct {
	style          string
	configPath     string
	capabilities   string
	capsSet        bool
	expectCoverage *int
	coverprofile   string
	input          string
}

// parseRunArgs parses run flags. Values may be given as --flag=value or
// --flag value.
func parseRunArgs(args []string) (*runOptions, error) {
	opts := &runOptions{}

	value := func(i *int, arg, name string) (string, error) {
		if v, ok := strings.CutPrefix(arg, name+"="); ok {
			return v, nil
		}
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, _, _ := strings.Cut(arg, "=")
		switch name {
		case "--style":
			v, err := value(&i, arg, name)
			if err != nil {
				return nil, err
			}
			opts.style = v
		case "--config":
			v, err := value(&i, arg, name)
			if err != nil {
				return nil, err
			}
			opts.configPath = v
		case "--capabilities":
			v, err := value(&i, arg, name)
			if err != nil {
				return nil, err
			}
			opts.capabilities = v
			opts.capsSet = true
		case "--expect-coverage":
			v, err := value(&i, arg, name)
			if err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("--expect-coverage must be a non-negative integer, got %q", v)
			}
			opts.expectCoverage = &n
		case "--coverprofile":
			v, err := value(&i, arg, name)
			if err != nil {
				return nil, err
			}
			opts.coverprofile = v
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				return nil, fmt.Errorf("unknown flag: %s", arg)
			}
			if opts.input != "" {
				return nil, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.input = arg
		}
	}
	return opts, nil
}

// cmdRun replays a go test -json stream through a ConsoleReporter writing to
// standard output.
func cmdRun(args []string, _ *GlobalOptions) int {
	if wantsHelp(args) {
		printRunUsage()
		return 0
	}

	opts, err := parseRunArgs(args)
	if err != nil {
		out.ErrorPrefix("run: %v", err)
		return errors.ExitConfigError
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	reporterOpts, err := reporterOptions(cfg, opts)
	if err != nil {
		out.ErrorPrefix("run: %v", err)
		return errors.ExitConfigError
	}

	profile := coverProfile(cfg, opts)
	expected := expectedCoverage(cfg, opts)
	if expected != nil {
		cov := reporter.Coverage{Expected: *expected}
		if profile != nil {
			cov.Covered = profile
		}
		reporterOpts = append(reporterOpts, reporter.WithCoverage(cov))
	}

	input, err := openInput(opts.input)
	if err != nil {
		out.ErrorPrefix("run: %v", err)
		return errors.GetExitCode(err)
	}
	defer func() { _ = input.Close() }()

	engine := gotest.New()
	rep, err := reporter.New(engine, console.NewStream(out.Out(), nil), reporterOpts...)
	if err != nil {
		out.ErrorPrefix("run: %v", err)
		return errors.GetExitCode(err)
	}
	out.Debug("style: %s", rep.Strategy())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	counts, err := engine.Run(ctx, input)
	if err != nil {
		out.ErrorPrefix("run: %v", err)
		return errors.ExitRuntimeError
	}

	if profile != nil && profile.Err() != nil {
		out.Warning("coverage profile: %v", profile.Err())
	}
	if profile != nil && expected != nil && profile.Len() != *expected {
		out.Debug("covered files: %s", strings.Join(profile.Keys(), ", "))
	}
	if !counts.Parsed() {
		out.Warning("no test results found in input")
		out.Hint("use 'go test -json ./...' to produce JSON output")
	}
	out.Debug("%d passed, %d failed, %d skipped", counts.Passed, counts.Failed, counts.Skipped)

	if rep.Status() != reporter.StatusSuccess {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// loadConfig loads the config file. Without an explicit path the default file
// is used when present.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = config.DefaultFileName
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	for _, w := range warnings {
		out.Warning("%s: %s", path, w)
	}
	if err != nil {
		if !explicit && errors.IsNotFound(err) {
			return config.Default(), nil
		}
		return nil, err
	}
	out.Debug("loaded %s", path)
	return cfg, nil
}

// reporterOptions resolves the rendering strategy. An explicit style wins;
// auto detects from the configured capabilities, the --capabilities flag and
// NO_COLOR.
func reporterOptions(cfg *config.Config, opts *runOptions) ([]reporter.Option, error) {
	name := cfg.Style
	if opts.style != "" {
		name = opts.style
	}
	strategy, explicit, err := console.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	if explicit {
		return []reporter.Option{reporter.WithStrategy(strategy)}, nil
	}

	var caps console.Capabilities
	if cfg.Capabilities != nil {
		caps = *cfg.Capabilities
	}
	if opts.capsSet {
		caps, err = console.ParseCapabilities(opts.capabilities)
		if err != nil {
			return nil, err
		}
	}
	if getenv("NO_COLOR") != "" {
		caps.NoColor = true
	}
	return []reporter.Option{reporter.WithCapabilities(caps)}, nil
}

func expectedCoverage(cfg *config.Config, opts *runOptions) *int {
	if opts.expectCoverage != nil {
		return opts.expectCoverage
	}
	if cfg.Coverage != nil {
		return cfg.Coverage.Expected
	}
	return nil
}

func coverProfile(cfg *config.Config, opts *runOptions) *coverage.Profile {
	path := opts.coverprofile
	if path == "" && cfg.Coverage != nil {
		path = cfg.Coverage.Profile
	}
	if path == "" {
		return nil
	}
	return coverage.NewProfile(path)
}

func printRunUsage() {
	titleCase := cases.Title(language.English)

	out.HelpTitle("conreport run - report a go test -json stream")

	out.HelpSection("Usage:")
	out.HelpUsage("go test -json ./... | conreport run [options]")
	out.HelpUsage("conreport run [options] <file>")

	out.HelpSection("Description:")
	out.Println("  Replays go test events through the console reporter. Packages are")
	out.Println("  reported as suites and tests as specs. Every report ends with the")
	out.Println("  line %q.", reporter.Sentinel)
	out.Println("")
	out.Println("  Exits 0 when the run succeeds and 1 when it fails.")

	out.HelpSection("Options:")
	out.HelpFlag("--style=<style>", "auto, ansi, plain, severity or css (default: auto)", widthFlag)
	out.HelpFlag("--capabilities=<list>", "Console capabilities used by auto detection", widthFlag)
	out.HelpFlag("--config=<path>", "Config file (default: "+config.DefaultFileName+")", widthFlag)
	out.HelpFlag("--expect-coverage=<n>", "Fail unless n items are covered", widthFlag)
	out.HelpFlag("--coverprofile=<path>", "Cover profile providing the covered items", widthFlag)
	out.HelpFlag("-h, --help", "Show this help", widthFlag)

	out.HelpSection("Examples:")
	out.HelpExample("go test -json ./... | conreport run", "Report with the detected style")
	for _, s := range []console.Strategy{console.Severity, console.CSS} {
		out.HelpExample("conreport run --style="+s.String()+" test.json", titleCase.String(s.String())+" style report of a saved stream")
	}
	out.HelpExample("conreport run --expect-coverage=12 --coverprofile=cover.out", "Also check coverage")
	out.Println("")
}
