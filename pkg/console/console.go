// Package console defines the console-like sink that reports are written to
// and the strategies used to convey color on it.
//
// A Console mirrors the three calls a browser console offers a test reporter:
// a plain log call and the info and error severities. Hosts choose how a
// colored line is rendered by handing a Capabilities descriptor to Detect, or
// by naming a Strategy directly.
package console

// Console is a console-like sink.
type Console interface {
	Log(args ...any)
	Info(args ...any)
	Error(args ...any)
}

// Color is the color a line should be rendered in.
type Color string

// Supported colors. NoColor leaves the line untouched.
const (
	NoColor Color = ""
	Red     Color = "red"
	Green   Color = "green"
)
