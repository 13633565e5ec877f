// Package reporter translates test-framework lifecycle events into colored
// lines on a console.
//
// A ConsoleReporter registers itself with an Engine at construction and then
// observes the run: it counts specs, prints every failing spec with its
// traces, prints one summary per non-root suite, and ends each run with a
// summary followed by the completion sentinel that headless drivers watch for.
package reporter

// Listener receives lifecycle events from a test engine. Events arrive
// sequentially from the engine's run loop.
type Listener interface {
	OnRunStart()
	OnRunEnd()
	OnSuiteResult(suite Suite)
	OnSpecStart(spec Spec)
	OnSpecResult(spec Spec)
}

// Engine is a test framework's reporter registration mechanism.
type Engine interface {
	AddReporter(l Listener)
}

// Suite is a named grouping of specs. The root suite has no parent.
type Suite struct {
	Description string
	Parent      *Suite
	PassedCount int
	TotalCount  int
}

// IsRoot reports whether s is the implicit root suite.
func (s Suite) IsRoot() bool {
	return s.Parent == nil
}

// Spec is a single test case.
type Spec struct {
	Description string
	Suite       *Suite
	Passed      bool
	Failures    []Failure
}

// Failure is one failed expectation of a spec.
type Failure struct {
	Message string
	Stack   string
}

// Trace returns the stack trace when available, else the message.
func (f Failure) Trace() string {
	if f.Stack != "" {
		return f.Stack
	}
	return f.Message
}
