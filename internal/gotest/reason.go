package gotest

import (
	"strings"
	"unicode/utf8"
)

const maxReasonLen = 100

// boilerplatePrefixes mark lines go test prints around every test.
var boilerplatePrefixes = []string{
	"=== RUN", "=== PAUSE", "=== CONT", "=== NAME",
	"--- FAIL", "--- PASS", "--- SKIP",
}

func isBoilerplate(trimmed string) bool {
	for _, p := range boilerplatePrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// extractFailureReason extracts the most relevant failure message from test output.
func extractFailureReason(outputLines []string) string {
	// Look for lines with file:line: pattern (typical Go test error format)
	for _, line := range outputLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isBoilerplate(trimmed) {
			continue
		}
		idx := strings.Index(trimmed, ".go:")
		if idx < 0 {
			continue
		}
		afterFile := trimmed[idx+4:]
		if colonIdx := strings.Index(afterFile, ": "); colonIdx != -1 {
			return truncate(strings.TrimSpace(afterFile[colonIdx+2:]))
		}
	}

	// Fallback: return the first non-empty, non-boilerplate line
	for _, line := range outputLines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !isBoilerplate(trimmed) {
			return truncate(trimmed)
		}
	}

	return ""
}

// extractTrace joins the test's own output, dropping go test boilerplate.
func extractTrace(outputLines []string) string {
	var kept []string
	for _, line := range outputLines {
		line = strings.TrimRight(line, " \t\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isBoilerplate(trimmed) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// truncate shortens s to at most maxReasonLen bytes without splitting a rune.
func truncate(s string) string {
	if len(s) <= maxReasonLen {
		return s
	}
	cut := maxReasonLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
