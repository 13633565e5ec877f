package cli

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/conreport/internal/errors"
	"github.com/AndreyAkinshin/conreport/pkg/console"
)

// commandInfo describes a top-level command for help and completion.
type commandInfo struct {
	name        string
	description string
}

// builtinCommands returns the top-level commands in help order.
func builtinCommands() []commandInfo {
	return []commandInfo{
		{"run", "Report a go test -json stream"},
		{"watch", "Follow a console stream until the report finishes"},
		{"summary", "Summarize a go test -json stream"},
		{"styles", "List console styles"},
		{"completion", "Generate shell completion"},
		{"version", "Show version information"},
		{"help", "Show help"},
	}
}

// runFlags returns the flags of the run command.
func runFlags() []string {
	return []string{
		"--style",
		"--capabilities",
		"--config",
		"--expect-coverage",
		"--coverprofile",
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []string {
	return []string{
		"--quiet",
		"--verbose",
		"--help",
		"--version",
	}
}

// styleNames returns the values accepted by --style.
func styleNames() []string {
	names := []string{console.StrategyAuto}
	for _, s := range console.Strategies() {
		names = append(names, s.String())
	}
	return names
}

// cmdCompletion generates shell completion scripts.
func cmdCompletion(args []string) int {
	shell := ""
	alias := ""

	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			printCompletionUsage()
			return 0
		case strings.HasPrefix(arg, "--alias="):
			alias = strings.TrimPrefix(arg, "--alias=")
		case arg == "--alias":
			out.ErrorPrefix("completion: --alias requires a value (--alias=<name>)")
			return errors.ExitConfigError
		case strings.HasPrefix(arg, "-"):
			out.ErrorPrefix("completion: unknown flag: %s", arg)
			printCompletionUsage()
			return errors.ExitConfigError
		default:
			if shell != "" {
				out.ErrorPrefix("completion: unexpected argument: %s", arg)
				return errors.ExitConfigError
			}
			shell = arg
		}
	}

	if shell == "" {
		out.ErrorPrefix("completion: shell required (bash, zsh, fish)")
		printCompletionUsage()
		return errors.ExitConfigError
	}

	cmdName := "conreport"
	if alias != "" {
		cmdName = alias
	}

	switch shell {
	case "bash":
		out.Print("%s", generateBashCompletion(cmdName))
	case "zsh":
		out.Print("%s", generateZshCompletion(cmdName))
	case "fish":
		out.Print("%s", generateFishCompletion(cmdName))
	default:
		out.ErrorPrefix("completion: unsupported shell %q (use bash, zsh, or fish)", shell)
		return errors.ExitConfigError
	}

	return errors.ExitSuccess
}

func printCompletionUsage() {
	out.HelpTitle("conreport completion - generate shell completion scripts")

	out.HelpSection("Usage:")
	out.HelpUsage("conreport completion <shell> [--alias=<name>]")

	out.HelpSection("Arguments:")
	out.HelpFlag("<shell>", "Shell type: bash, zsh, or fish", 14)

	out.HelpSection("Options:")
	out.HelpFlag("--alias=<name>", "Generate completion for command alias", 14)
	out.HelpFlag("-h, --help", "Show this help", 14)

	out.HelpSection("Examples:")
	out.HelpExample("conreport completion bash", "Generate bash completion")
	out.HelpExample("conreport completion zsh", "Generate zsh completion")
	out.HelpExample("conreport completion bash --alias=cr", "Generate bash completion for alias 'cr'")

	out.HelpSection("Installation:")
	out.Println("  Bash:  eval \"$(conreport completion bash)\"")
	out.Println("  Zsh:   eval \"$(conreport completion zsh)\"")
	out.Println("  Fish:  conreport completion fish | source")
	out.Println("")
}

func aliasNote(cmdName, shell string) string {
	if cmdName == "conreport" {
		return ""
	}
	return fmt.Sprintf("# Generated for the alias %q; define it first: alias %s=\"conreport\"\n# Load with: %s\n",
		cmdName, cmdName, loadHint(cmdName, shell))
}

func loadHint(cmdName, shell string) string {
	if shell == "fish" {
		return fmt.Sprintf("conreport completion fish --alias=%s | source", cmdName)
	}
	return fmt.Sprintf("eval \"$(conreport completion %s --alias=%s)\"", shell, cmdName)
}

func generateBashCompletion(cmdName string) string {
	var names []string
	for _, c := range builtinCommands() {
		names = append(names, c.name)
	}
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_") + "_completions"

	return fmt.Sprintf(`# conreport bash completion
# Add to ~/.bashrc: eval "$(conreport completion bash)"
%s
%s() {
    local cur prev words cword
    _init_completion || return

    local commands="%s"
    local flags="%s"
    local run_flags="%s"
    local styles="%s"

    case "${prev}" in
        %s)
            COMPREPLY=($(compgen -W "${commands} ${flags}" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
        --style)
            COMPREPLY=($(compgen -W "${styles}" -- "${cur}"))
            return
            ;;
        --config|--coverprofile)
            _filedir
            return
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        if [[ "${words[1]}" == "run" ]]; then
            COMPREPLY=($(compgen -W "${run_flags} ${flags}" -- "${cur}"))
        else
            COMPREPLY=($(compgen -W "${flags}" -- "${cur}"))
        fi
        return
    fi

    _filedir
}

complete -F %s %s
`, aliasNote(cmdName, "bash"), funcName, strings.Join(names, " "), strings.Join(globalFlags(), " "),
		strings.Join(runFlags(), " "), strings.Join(styleNames(), " "), cmdName, funcName, cmdName)
}

func generateZshCompletion(cmdName string) string {
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_")

	var commands strings.Builder
	for _, c := range builtinCommands() {
		fmt.Fprintf(&commands, "        '%s:%s'\n", c.name, c.description)
	}

	return fmt.Sprintf(`#compdef %s
# conreport zsh completion
# Add to ~/.zshrc: eval "$(conreport completion zsh)"
%s
%s() {
    local -a commands
    commands=(
%s    )

    local -a global_flags
    global_flags=(
        '(-q --quiet)'{-q,--quiet}'[Minimal output]'
        '(-v --verbose)'{-v,--verbose}'[Maximum detail]'
        '(-h --help)'{-h,--help}'[Show help]'
    )

    if (( CURRENT == 2 )); then
        _describe -t commands 'command' commands
        return
    fi

    case "${words[2]}" in
        run)
            _arguments -s $global_flags[@] \
                '--style=[Console style]:style:(%s)' \
                '--capabilities=[Console capabilities]:capabilities:' \
                '--config=[Config file]:file:_files' \
                '--expect-coverage=[Expected covered items]:count:' \
                '--coverprofile=[Cover profile]:file:_files' \
                '*:stream:_files'
            ;;
        watch|summary)
            _arguments -s $global_flags[@] '*:stream:_files'
            ;;
        completion)
            _values 'shell' bash zsh fish
            ;;
        *)
            _arguments -s $global_flags[@]
            ;;
    esac
}

compdef %s %s
`, cmdName, aliasNote(cmdName, "zsh"), funcName, commands.String(), strings.Join(styleNames(), " "), funcName, cmdName)
}

func generateFishCompletion(cmdName string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# conreport fish completion\n# Add to config: conreport completion fish | source\n%s\n", aliasNote(cmdName, "fish"))
	fmt.Fprintf(&sb, "complete -c %s -f\n\n", cmdName)

	for _, c := range builtinCommands() {
		fmt.Fprintf(&sb, "complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n", cmdName, c.name, c.description)
	}

	sb.WriteString("\n# Global flags\n")
	fmt.Fprintf(&sb, "complete -c %s -s q -l quiet -d 'Minimal output'\n", cmdName)
	fmt.Fprintf(&sb, "complete -c %s -s v -l verbose -d 'Maximum detail'\n", cmdName)
	fmt.Fprintf(&sb, "complete -c %s -s h -l help -d 'Show help'\n", cmdName)

	sb.WriteString("\n# run flags\n")
	runCond := "__fish_seen_subcommand_from run"
	fmt.Fprintf(&sb, "complete -c %s -n '%s' -l style -d 'Console style' -xa '%s'\n", cmdName, runCond, strings.Join(styleNames(), " "))
	fmt.Fprintf(&sb, "complete -c %s -n '%s' -l capabilities -d 'Console capabilities' -x\n", cmdName, runCond)
	fmt.Fprintf(&sb, "complete -c %s -n '%s' -l config -d 'Config file' -rF\n", cmdName, runCond)
	fmt.Fprintf(&sb, "complete -c %s -n '%s' -l expect-coverage -d 'Expected covered items' -x\n", cmdName, runCond)
	fmt.Fprintf(&sb, "complete -c %s -n '%s' -l coverprofile -d 'Cover profile' -rF\n", cmdName, runCond)

	sb.WriteString("\n# Stream files\n")
	fmt.Fprintf(&sb, "complete -c %s -n '__fish_seen_subcommand_from run watch summary' -F\n", cmdName)

	sb.WriteString("\n# completion shells\n")
	fmt.Fprintf(&sb, "complete -c %s -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'\n", cmdName)

	return sb.String()
}
