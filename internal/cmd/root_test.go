package cmd

import (
	"testing"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "wellscreen" {
		t.Errorf("Use = %q, want wellscreen", cmd.Use)
	}
	if !cmd.SilenceUsage {
		t.Error("SilenceUsage should be true")
	}

	want := map[string]bool{"run": false, "serve": false, "validate": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
