package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number")
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "n", Help: "Number of terms to generate", Values: []string{"10", "20", "50", "94"}, ValueName: "count"},
	{Long: "quiet", Short: "q", Help: "Print only the values line"},
	{Long: "verbose", Short: "v", Help: "Enable debug diagnostics"},
	{Long: "no-color", Help: "Disable colored diagnostics"},
	{Long: "tui", Help: "Launch the interactive terminal interface"},
	{Long: "progress", Help: "Show a spinner while generating"},
	{Long: "metrics", Help: "Dump Prometheus metrics after the run"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//
// Returns:
//   - error: An error if the shell is not supported or writing fails.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// flagNames returns the dash-prefixed spellings of f.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func generateBashCompletion(out io.Writer) error {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, flagNames(f)...)
		if len(f.Values) == 0 {
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n", strings.Join(flagNames(f), "|"))
		fmt.Fprintf(&cases, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
		cases.WriteString("            return 0\n            ;;\n")
	}

	_, err := fmt.Fprintf(out, `# Bash completion script for fibseq
# Add this to your ~/.bashrc or ~/.bash_completion

_fibseq_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    return 0
}

complete -F _fibseq_completions fibseq
`, strings.Join(opts, " "), cases.String())
	return err
}

func generateZshCompletion(out io.Writer) error {
	var args strings.Builder
	for _, f := range flagRegistry {
		argSpec := "[" + f.Help + "]"
		if len(f.Values) > 0 {
			argSpec += fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
		}
		names := flagNames(f)
		if len(names) == 1 {
			fmt.Fprintf(&args, "    '%s%s' \\\n", names[0], argSpec)
		} else {
			fmt.Fprintf(&args, "    '(%s)'{%s}'%s' \\\n", strings.Join(names, " "), strings.Join(names, ","), argSpec)
		}
	}

	_, err := fmt.Fprintf(out, `#compdef fibseq
# Zsh completion script for fibseq
# Place this file in a directory listed in $fpath as _fibseq

_fibseq() {
    _arguments \
%s    && return 0
}

_fibseq "$@"
`, args.String())
	return err
}

func generateFishCompletion(out io.Writer) error {
	var b strings.Builder
	b.WriteString("# Fish completion script for fibseq\n")
	b.WriteString("# Save as ~/.config/fish/completions/fibseq.fish\n\n")
	for _, f := range flagRegistry {
		b.WriteString("complete -c fibseq")
		if f.Long != "" {
			b.WriteString(" -l " + f.Long)
		}
		if f.Short != "" {
			b.WriteString(" -s " + f.Short)
		}
		if len(f.Values) > 0 {
			fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
		}
		fmt.Fprintf(&b, " -d '%s'\n", f.Help)
	}
	_, err := io.WriteString(out, b.String())
	return err
}
