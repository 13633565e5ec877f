package console

import (
	"github.com/fatih/color"
)

var ansiAttributes = map[Color]color.Attribute{
	Red:   color.FgRed,
	Green: color.FgGreen,
}

// Renderer writes optionally colored lines to a Console using one Strategy.
type Renderer struct {
	console  Console
	strategy Strategy
}

// NewRenderer creates a Renderer. The strategy is fixed for its lifetime.
func NewRenderer(c Console, s Strategy) *Renderer {
	return &Renderer{console: c, strategy: s}
}

// Strategy returns the strategy in use.
func (r *Renderer) Strategy() Strategy {
	return r.strategy
}

// Line writes text in the given color.
func (r *Renderer) Line(text string, c Color) {
	switch r.strategy {
	case Severity:
		r.severityLine(text, c)
	case CSS:
		r.cssLine(text, c)
	case Plain:
		r.console.Log(text)
	default:
		r.console.Log(Colorize(text, c))
	}
}

func (r *Renderer) severityLine(text string, c Color) {
	switch c {
	case NoColor:
		r.console.Log(text)
	case Green:
		r.console.Info(text)
	case Red:
		r.console.Error(text)
	}
}

func (r *Renderer) cssLine(text string, c Color) {
	if c == NoColor {
		r.console.Log(text)
		return
	}
	r.console.Log("%c"+text, "color: "+string(c))
}

// Colorize wraps text in the ANSI escape sequence for c followed by a reset.
// Unknown colors and NoColor return text unchanged.
func Colorize(text string, c Color) string {
	attr, ok := ansiAttributes[c]
	if !ok {
		return text
	}
	painter := color.New(attr)
	// The escape codes are part of the report itself, not a terminal nicety.
	painter.EnableColor()
	return painter.Sprint(text)
}
