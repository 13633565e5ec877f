package reporter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AndreyAkinshin/conreport/internal/errors"
	"github.com/AndreyAkinshin/conreport/pkg/console"
)

// Sentinel is the last line of every finished run. External drivers terminate
// the host process when they see it, so the text must never change.
const Sentinel = "ConsoleReporter finished"

// Status is the run state tracked by a ConsoleReporter.
type Status string

const (
	StatusStopped Status = "stopped"
	StatusRunning Status = "running"
	StatusFail    Status = "fail"
	StatusSuccess Status = "success"
)

// Construction errors.
var (
	ErrNoEngine  = errors.Environment("test framework isn't loaded")
	ErrNoConsole = errors.Environment("console isn't present")
)

// ConsoleReporter is a Listener that writes results to a console.
type ConsoleReporter struct {
	out      *console.Renderer
	coverage *Coverage
	now      func() time.Time

	status        Status
	startTime     time.Time
	executedSpecs int
	passedSpecs   int
}

// New creates a ConsoleReporter writing to c and registers it with engine.
// Without WithStrategy or WithCapabilities the ANSI strategy is used.
func New(engine Engine, c console.Console, opts ...Option) (*ConsoleReporter, error) {
	if engine == nil {
		return nil, ErrNoEngine
	}
	if c == nil {
		return nil, ErrNoConsole
	}

	cfg := options{strategy: console.ANSI, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &ConsoleReporter{
		out:      console.NewRenderer(c, cfg.strategy),
		coverage: cfg.coverage,
		now:      cfg.now,
		status:   StatusStopped,
	}
	engine.AddReporter(r)
	return r, nil
}

// Status returns the current run state.
func (r *ConsoleReporter) Status() Status {
	return r.status
}

// Strategy returns the rendering strategy chosen at construction.
func (r *ConsoleReporter) Strategy() console.Strategy {
	return r.out.Strategy()
}

// OnRunStart resets the counters and announces the run.
func (r *ConsoleReporter) OnRunStart() {
	r.status = StatusRunning
	r.startTime = r.now()
	r.executedSpecs = 0
	r.passedSpecs = 0
	r.log("Starting...")
}

// OnRunEnd prints the run summary and the sentinel.
func (r *ConsoleReporter) OnRunEnd() {
	if r.coverage != nil {
		if seen := r.coverage.seen(); seen != r.coverage.Expected {
			r.log(fmt.Sprintf("Not all specs were covered. Expected %d but saw %d", r.coverage.Expected, seen))
			r.status = StatusFail
			r.log("")
			r.log(Sentinel)
			return
		}
	}

	failed := r.executedSpecs - r.passedSpecs
	elapsed := r.now().Sub(r.startTime).Milliseconds()

	r.log("")
	r.log("Finished")
	r.log("-----------------")
	r.colored(Summary(r.executedSpecs, failed, elapsed), colorFor(failed))

	if failed > 0 {
		r.status = StatusFail
	} else {
		r.status = StatusSuccess
	}

	r.log("")
	r.log(Sentinel)
}

// OnSpecStart counts the spec as executed.
func (r *ConsoleReporter) OnSpecStart(Spec) {
	r.executedSpecs++
}

// OnSpecResult counts passing specs and prints failing ones.
func (r *ConsoleReporter) OnSpecResult(spec Spec) {
	if spec.Passed {
		r.passedSpecs++
		return
	}

	r.colored(describe(spec), console.Red)
	for _, f := range spec.Failures {
		r.colored(f.Trace(), console.Red)
	}
}

// OnSuiteResult prints the pass count of every non-root suite.
func (r *ConsoleReporter) OnSuiteResult(suite Suite) {
	if suite.IsRoot() {
		return
	}
	failed := suite.TotalCount - suite.PassedCount
	r.colored(fmt.Sprintf("%s: %d of %d passed.", suite.Description, suite.PassedCount, suite.TotalCount), colorFor(failed))
}

// Summary formats the run summary line, e.g. "3 specs, 1 failure in 0.25s.".
func Summary(specs, failures int, elapsedMillis int64) string {
	return plural(specs, "spec") + ", " + plural(failures, "failure") + " in " + seconds(elapsedMillis) + "s."
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// seconds renders milliseconds as the shortest decimal number of seconds.
func seconds(millis int64) string {
	return strconv.FormatFloat(float64(millis)/1000, 'f', -1, 64)
}

func describe(spec Spec) string {
	suite := ""
	if spec.Suite != nil {
		suite = spec.Suite.Description
	}
	return suite + " : " + spec.Description
}

func colorFor(failed int) console.Color {
	if failed > 0 {
		return console.Red
	}
	return console.Green
}

func (r *ConsoleReporter) log(text string) {
	r.out.Line(text, console.NoColor)
}

func (r *ConsoleReporter) colored(text string, c console.Color) {
	r.out.Line(text, c)
}

var _ Listener = (*ConsoleReporter)(nil)
