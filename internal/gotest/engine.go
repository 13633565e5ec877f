package gotest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gotest.tools/gotestsum/testjson"

	"github.com/AndreyAkinshin/conreport/pkg/reporter"
)

// RootDescription names the implicit root suite.
const RootDescription = "go test"

type testKey struct {
	pkg  string
	name string
}

// description names the spec. Package-level failures are named after the
// package.
func (k testKey) description() string {
	if k.name == "" {
		return k.pkg
	}
	return k.name
}

// Engine implements reporter.Engine over a go test -json stream.
type Engine struct {
	listeners []reporter.Listener

	root     *reporter.Suite
	suites   map[string]*reporter.Suite
	order    []string
	finished map[string]bool
	started  map[testKey]bool
	output   map[testKey][]string
	failed   map[string]bool
	counts   Counts
}

// New creates an engine with no registered reporters.
func New() *Engine {
	return &Engine{}
}

// AddReporter registers a listener. Listeners receive events in
// registration order.
func (e *Engine) AddReporter(l reporter.Listener) {
	e.listeners = append(e.listeners, l)
}

// Run replays the go test -json stream read from r. It always ends the run,
// even when scanning fails or ctx is canceled, so listeners print their final
// summary. Lines that are not JSON events are ignored.
func (e *Engine) Run(ctx context.Context, r io.Reader) (Counts, error) {
	e.reset()
	for _, l := range e.listeners {
		l.OnRunStart()
	}

	_, err := testjson.ScanTestOutput(testjson.ScanConfig{
		Stdout:                   r,
		Stderr:                   strings.NewReader(""),
		Handler:                  &eventHandler{ctx: ctx, engine: e},
		IgnoreNonJSONOutputLines: true,
	})

	e.finish()
	if err != nil {
		return e.counts, fmt.Errorf("scan go test output: %w", err)
	}
	return e.counts, nil
}

func (e *Engine) reset() {
	e.root = &reporter.Suite{Description: RootDescription}
	e.suites = make(map[string]*reporter.Suite)
	e.order = nil
	e.finished = make(map[string]bool)
	e.started = make(map[testKey]bool)
	e.output = make(map[testKey][]string)
	e.failed = make(map[string]bool)
	e.counts = Counts{}
}

func (e *Engine) handle(event testjson.TestEvent) {
	key := testKey{pkg: event.Package, name: event.Test}
	if event.Action == testjson.ActionOutput {
		if event.Output != "" {
			e.output[key] = append(e.output[key], event.Output)
		}
		return
	}

	if event.PackageEvent() {
		switch event.Action {
		case testjson.ActionFail:
			// Build failures and TestMain panics fail a package without
			// failing any of its tests.
			if !e.failed[key.pkg] {
				e.counts.Failed++
				e.finishSpec(key, false)
			}
			delete(e.output, key)
			e.finishSuite(key.pkg)
		case testjson.ActionPass, testjson.ActionSkip:
			delete(e.output, key)
			e.finishSuite(key.pkg)
		}
		return
	}

	switch event.Action {
	case testjson.ActionRun:
		e.startSpec(key)
	case testjson.ActionPass:
		e.counts.Passed++
		e.finishSpec(key, true)
	case testjson.ActionSkip:
		e.counts.Skipped++
		e.finishSpec(key, true)
	case testjson.ActionFail:
		e.counts.Failed++
		e.finishSpec(key, false)
	}
}

func (e *Engine) suite(pkg string) *reporter.Suite {
	s, ok := e.suites[pkg]
	if !ok {
		s = &reporter.Suite{Description: pkg, Parent: e.root}
		e.suites[pkg] = s
		e.order = append(e.order, pkg)
	}
	return s
}

func (e *Engine) startSpec(key testKey) {
	if e.started[key] {
		return
	}
	e.started[key] = true
	spec := reporter.Spec{Description: key.description(), Suite: e.suite(key.pkg)}
	for _, l := range e.listeners {
		l.OnSpecStart(spec)
	}
}

func (e *Engine) finishSpec(key testKey, passed bool) {
	// A result without a run event still counts as executed.
	e.startSpec(key)
	delete(e.started, key)

	suite := e.suite(key.pkg)
	suite.TotalCount++
	e.root.TotalCount++
	e.counts.Total++

	spec := reporter.Spec{Description: key.description(), Suite: suite, Passed: passed}
	if passed {
		suite.PassedCount++
		e.root.PassedCount++
	} else {
		e.failed[key.pkg] = true
		lines := e.output[key]
		reason := extractFailureReason(lines)
		e.counts.FailedTests = append(e.counts.FailedTests, FailedTest{
			Package: key.pkg,
			Name:    key.name,
			Reason:  reason,
		})
		if reason == "" {
			reason = spec.Description + " failed"
		}
		spec.Failures = []reporter.Failure{{Message: reason, Stack: extractTrace(lines)}}
	}
	delete(e.output, key)

	for _, l := range e.listeners {
		l.OnSpecResult(spec)
	}
}

// finishSuite reports a package suite. Packages without tests are skipped.
func (e *Engine) finishSuite(pkg string) {
	suite, ok := e.suites[pkg]
	if !ok || e.finished[pkg] {
		return
	}
	e.finished[pkg] = true
	for _, l := range e.listeners {
		l.OnSuiteResult(*suite)
	}
}

func (e *Engine) finish() {
	// Streams cut short never report their packages.
	for _, pkg := range e.order {
		e.finishSuite(pkg)
	}
	for _, l := range e.listeners {
		l.OnSuiteResult(*e.root)
	}
	for _, l := range e.listeners {
		l.OnRunEnd()
	}
}

// eventHandler adapts Engine to testjson.EventHandler.
type eventHandler struct {
	ctx    context.Context
	engine *Engine
}

func (h *eventHandler) Event(event testjson.TestEvent, _ *testjson.Execution) error {
	if err := h.ctx.Err(); err != nil {
		return err
	}
	h.engine.handle(event)
	return nil
}

func (h *eventHandler) Err(string) error {
	// stderr is empty; nothing to stop the scan for
	return nil
}
