package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Submit", km.Submit},
		{"Clear", km.Clear},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Desc == "" {
				t.Errorf("expected %s binding to have help text", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	keys := DefaultKeyMap().Quit.Keys()
	hasEsc, hasCtrlC := false, false
	for _, k := range keys {
		switch k {
		case "esc":
			hasEsc = true
		case "ctrl+c":
			hasCtrlC = true
		case "q":
			t.Error("q must stay available to the text input")
		}
	}
	if !hasEsc || !hasCtrlC {
		t.Errorf("Quit keys = %v, want esc and ctrl+c", keys)
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()
	if got := len(km.ShortHelp()); got != 3 {
		t.Errorf("ShortHelp() has %d bindings, want 3", got)
	}
	if got := len(km.FullHelp()); got != 1 {
		t.Errorf("FullHelp() has %d columns, want 1", got)
	}
}
