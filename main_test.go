package main

import (
	"testing"

	"github.com/casterix/gridkit/grid"
)

func TestResolveFill(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("GRIDKIT_FILL", "#")
		if got := resolveFill("_"); got != '_' {
			t.Errorf("resolveFill: expected '_', got %q", got)
		}
	})

	t.Run("env when no flag", func(t *testing.T) {
		t.Setenv("GRIDKIT_FILL", "#")
		if got := resolveFill(""); got != '#' {
			t.Errorf("resolveFill: expected '#', got %q", got)
		}
	})

	t.Run("package default", func(t *testing.T) {
		t.Setenv("GRIDKIT_FILL", "")
		if got := resolveFill(""); got != grid.DefaultFill {
			t.Errorf("resolveFill: expected %q, got %q", grid.DefaultFill, got)
		}
	})
}

func TestNewCommand_Subcommands(t *testing.T) {
	cmd := newCommand()

	want := []string{"find", "move", "look", "make", "stats", "play"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands {
			if sub.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
