package mocks

import (
	"sync"

	"github.com/AndreyAkinshin/conreport/pkg/reporter"
)

// Engine implements reporter.Engine and fans events out to registered
// listeners, in registration order.
type Engine struct {
	mu        sync.Mutex
	listeners []reporter.Listener
}

// NewEngine creates an engine with no listeners.
func NewEngine() *Engine {
	return &Engine{}
}

// AddReporter registers a listener.
func (m *Engine) AddReporter(l reporter.Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// Listeners returns the registered listeners.
func (m *Engine) Listeners() []reporter.Listener {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]reporter.Listener, len(m.listeners))
	copy(result, m.listeners)
	return result
}

// StartRun emits a run start event.
func (m *Engine) StartRun() {
	for _, l := range m.Listeners() {
		l.OnRunStart()
	}
}

// FinishRun emits a run end event.
func (m *Engine) FinishRun() {
	for _, l := range m.Listeners() {
		l.OnRunEnd()
	}
}

// RunSpec emits a spec start followed by its result.
func (m *Engine) RunSpec(spec reporter.Spec) {
	for _, l := range m.Listeners() {
		l.OnSpecStart(spec)
		l.OnSpecResult(spec)
	}
}

// FinishSuite emits a suite result event.
func (m *Engine) FinishSuite(suite reporter.Suite) {
	for _, l := range m.Listeners() {
		l.OnSuiteResult(suite)
	}
}

var _ reporter.Engine = (*Engine)(nil)
