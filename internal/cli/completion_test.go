package cli

import (
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _fibseq_completions fibseq", "--quiet", "-n)", `compgen -W "bash zsh fish"`}},
		{"zsh", []string{"#compdef fibseq", "'(--quiet -q)'{--quiet,-q}'[Print only the values line]'", ":shell:(bash zsh fish)"}},
		{"fish", []string{"complete -c fibseq -l tui", "complete -c fibseq -s n -x -a '10 20 50 94'"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var out strings.Builder
			if err := GenerateCompletion(&out, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("%s script should contain %q, got:\n%s", tt.shell, want, out.String())
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	var out strings.Builder
	err := GenerateCompletion(&out, "powershell")
	if err == nil {
		t.Fatal("expected an error for an unsupported shell")
	}
	if !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Error("nothing should be written for an unsupported shell")
	}
}

func TestFlagRegistryMatchesConfig(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			if seen[name] {
				t.Errorf("flag %s registered twice", name)
			}
			seen[name] = true
		}
	}
	for _, name := range []string{"-n", "--quiet", "--verbose", "--tui", "--progress", "--metrics", "--completion", "--no-color"} {
		if !seen[name] {
			t.Errorf("completion registry is missing %s", name)
		}
	}
}
