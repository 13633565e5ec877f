package cli

import (
	"github.com/AndreyAkinshin/conreport/internal/errors"
	"github.com/AndreyAkinshin/conreport/pkg/console"
)

var styleInfo = map[console.Strategy]struct {
	lines    string
	detected string
}{
	console.ANSI:     {"red and green escape codes", "otherwise"},
	console.Severity: {"console levels (info/error)", "capabilities: clear"},
	console.CSS:      {"%c style directives", "capabilities: chrome, firebug or exception"},
	console.Plain:    {"uncolored text", "NO_COLOR is set"},
}

// cmdStyles lists the console styles and when auto detection picks them.
func cmdStyles(args []string) int {
	if wantsHelp(args) {
		printStylesUsage()
		return 0
	}
	if len(args) > 0 {
		out.ErrorPrefix("styles: unexpected argument: %s", args[0])
		return errors.ExitConfigError
	}

	var rows [][]string
	for _, s := range console.Strategies() {
		info := styleInfo[s]
		rows = append(rows, []string{s.String(), info.lines, info.detected})
	}
	out.Table([]string{"Style", "Lines", "Auto-detected when"}, rows)
	return errors.ExitSuccess
}

func printStylesUsage() {
	out.HelpTitle("conreport styles - list console styles")
	out.HelpSection("Usage:")
	out.HelpUsage("conreport styles")
	out.HelpSection("Description:")
	out.Println("  Lists the styles accepted by 'conreport run --style' in detection order.")
	out.Println("  With --style=auto the first style whose condition holds is used.")
	out.Println("")
}
