// Package gotest replays go test -json output as reporter lifecycle events.
//
// Packages become suites under an implicit root suite and every test,
// subtests included, becomes a spec. The engine never runs tests itself; it
// only observes a stream produced by an external go test process.
package gotest

// FailedTest holds information about a single failed test.
type FailedTest struct {
	Package string
	Name    string // Test name (e.g., "TestFoo/subtest")
	Reason  string // Failure reason/error message
}

// Counts holds test result counts collected during a replay.
type Counts struct {
	Passed      int
	Failed      int
	Skipped     int
	Total       int
	FailedTests []FailedTest
}

// Parsed reports whether any test result was seen.
func (c *Counts) Parsed() bool {
	return c.Total > 0
}
