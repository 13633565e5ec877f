// Package mocks provides shared test doubles for conreport packages.
package mocks

import (
	"sync"

	"github.com/AndreyAkinshin/conreport/pkg/console"
)

// Console levels recorded by Console.
const (
	LevelLog   = "log"
	LevelInfo  = "info"
	LevelError = "error"
)

// Call is a single recorded console call.
type Call struct {
	Level string
	Args  []any
}

// Line renders the call's arguments the way a console stream would.
func (c Call) Line() string {
	return console.Format(c.Args...)
}

// Console implements console.Console by recording every call.
type Console struct {
	mu    sync.Mutex
	calls []Call
}

// NewConsole creates an empty recording console.
func NewConsole() *Console {
	return &Console{}
}

func (m *Console) Log(args ...any)   { m.record(LevelLog, args) }
func (m *Console) Info(args ...any)  { m.record(LevelInfo, args) }
func (m *Console) Error(args ...any) { m.record(LevelError, args) }

func (m *Console) record(level string, args []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Level: level, Args: append([]any(nil), args...)})
}

// Calls returns a copy of the recorded calls.
func (m *Console) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]Call, len(m.calls))
	copy(result, m.calls)
	return result
}

// Lines returns every recorded call rendered as a line.
func (m *Console) Lines() []string {
	calls := m.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.Line()
	}
	return lines
}

// Reset discards recorded calls.
func (m *Console) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

var _ console.Console = (*Console)(nil)
