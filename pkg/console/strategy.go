package console

import (
	"fmt"
	"strings"
)

// Strategy selects how a colored line reaches the console.
type Strategy int

const (
	// ANSI wraps colored text in ANSI escape sequences and logs it.
	ANSI Strategy = iota
	// Severity conveys color through the call used: green lines go to Info,
	// red lines go to Error. Matches consoles that expose a clear capability.
	Severity
	// CSS logs colored text behind a %c directive with a "color: <name>" style
	// argument. Matches Chrome-style and Firebug-style consoles.
	CSS
	// Plain drops color entirely.
	Plain
)

// StrategyAuto is the name that asks for Detect to pick the strategy.
const StrategyAuto = "auto"

var strategyNames = map[Strategy]string{
	ANSI:     "ansi",
	Severity: "severity",
	CSS:      "css",
	Plain:    "plain",
}

// Strategies lists every concrete strategy in detection priority order.
func Strategies() []Strategy {
	return []Strategy{CSS, Severity, Plain, ANSI}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy converts a strategy name to a Strategy.
// The boolean result is false for "auto", meaning the caller should Detect.
func ParseStrategy(name string) (Strategy, bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" || normalized == StrategyAuto {
		return ANSI, false, nil
	}
	for s, n := range strategyNames {
		if n == normalized {
			return s, true, nil
		}
	}
	return ANSI, false, fmt.Errorf("unknown style %q (use auto, ansi, plain, severity, or css)", name)
}

// Capabilities describes what the host console supports.
type Capabilities struct {
	// Clear reports a console-clear capability (Internet Explorer style).
	Clear bool `yaml:"clear" json:"clear"`
	// Chrome reports the vendor flag of a Chrome-style host.
	Chrome bool `yaml:"chrome" json:"chrome"`
	// Firebug reports the Firebug console extension.
	Firebug bool `yaml:"firebug" json:"firebug"`
	// Exception reports the console.exception extension of Firefox.
	Exception bool `yaml:"exception" json:"exception"`
	// NoColor asks for uncolored output (NO_COLOR convention).
	NoColor bool `yaml:"-" json:"-"`
}

// Detect picks a strategy from host capabilities.
//
// Priority, highest first: CSS (Chrome flag, Firebug or exception extension),
// Severity (clear capability), Plain (NoColor), ANSI. A host matching both the
// CSS and Severity probes gets CSS.
func Detect(caps Capabilities) Strategy {
	switch {
	case caps.Chrome || caps.Firebug || caps.Exception:
		return CSS
	case caps.Clear:
		return Severity
	case caps.NoColor:
		return Plain
	default:
		return ANSI
	}
}

// ParseCapabilities parses a comma-separated capability list such as
// "clear,chrome".
func ParseCapabilities(list string) (Capabilities, error) {
	var caps Capabilities
	for _, part := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "":
		case "clear":
			caps.Clear = true
		case "chrome":
			caps.Chrome = true
		case "firebug":
			caps.Firebug = true
		case "exception":
			caps.Exception = true
		case "nocolor", "no-color":
			caps.NoColor = true
		default:
			return Capabilities{}, fmt.Errorf("unknown capability %q", strings.TrimSpace(part))
		}
	}
	return caps, nil
}
