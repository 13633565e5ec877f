// Package watch implements the driver side of the reporter's console
// contract: it follows a console stream until the completion sentinel appears.
package watch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/AndreyAkinshin/conreport/pkg/reporter"
)

var (
	ansiEscape      = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	summaryLine     = regexp.MustCompile(`^(\d+) specs?, (\d+) failures? in ([0-9.]+)s\.$`)
	coverageMissing = regexp.MustCompile(`^Not all specs were covered\. Expected (\d+) but saw (\d+)$`)
)

// maxLineSize bounds a single console line; stack traces can be long.
const maxLineSize = 1024 * 1024

// Result is what a watcher learned from a console stream.
type Result struct {
	Finished         bool // sentinel seen
	Summary          bool // summary line seen
	Specs            int
	Failures         int
	Duration         time.Duration
	CoverageMismatch bool
	CoverageExpected int
	CoverageSeen     int
}

// Passed reports whether the stream finished with a clean summary.
func (r Result) Passed() bool {
	return r.Finished && r.Summary && !r.CoverageMismatch && r.Failures == 0
}

// Status maps the result to the reporter's run state.
func (r Result) Status() reporter.Status {
	switch {
	case !r.Finished:
		return reporter.StatusRunning
	case r.Passed():
		return reporter.StatusSuccess
	default:
		return reporter.StatusFail
	}
}

// Watch copies lines from r to echo until the sentinel line is seen or r is
// exhausted. Escape sequences are stripped before matching. A nil echo
// discards the stream.
func Watch(ctx context.Context, r io.Reader, echo io.Writer) (Result, error) {
	if echo == nil {
		echo = io.Discard
	}

	var result Result
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		line := scanner.Text()
		if _, err := fmt.Fprintln(echo, line); err != nil {
			return result, fmt.Errorf("echo console line: %w", err)
		}
		if observe(&result, ansiEscape.ReplaceAllString(line, "")) {
			return result, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("read console stream: %w", err)
	}
	return result, nil
}

// observe updates result with one plain line and reports whether it was the
// sentinel.
func observe(result *Result, line string) bool {
	if line == reporter.Sentinel {
		result.Finished = true
		return true
	}
	if m := summaryLine.FindStringSubmatch(line); m != nil {
		result.Summary = true
		result.Specs, _ = strconv.Atoi(m[1])
		result.Failures, _ = strconv.Atoi(m[2])
		if secs, err := strconv.ParseFloat(m[3], 64); err == nil {
			result.Duration = time.Duration(math.Round(secs*1000)) * time.Millisecond
		}
		return false
	}
	if m := coverageMissing.FindStringSubmatch(line); m != nil {
		result.CoverageMismatch = true
		result.CoverageExpected, _ = strconv.Atoi(m[1])
		result.CoverageSeen, _ = strconv.Atoi(m[2])
	}
	return false
}
