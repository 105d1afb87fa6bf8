package cmd

import (
	"testing"

	"github.com/juanibiapina/zombie/internal/zombie"
)

func TestRoot_RejectsArguments(t *testing.T) {
	if _, err := executeRoot(t, "unexpected"); err == nil {
		t.Error("expected error for positional arguments")
	}
}

func TestRoot_ExitCommandIsHidden(t *testing.T) {
	found := false
	for _, c := range RootCmd.Commands() {
		if c.Name() == zombie.ChildCommand {
			found = true
			if !c.Hidden {
				t.Error("exit command should be hidden")
			}
		}
	}
	if !found {
		t.Errorf("expected %q subcommand", zombie.ChildCommand)
	}
}

func TestRoot_LogFileFlagIsHidden(t *testing.T) {
	flag := RootCmd.PersistentFlags().Lookup("log-file")
	if flag == nil {
		t.Fatal("expected log-file flag")
	}
	if !flag.Hidden {
		t.Error("log-file flag should be hidden")
	}
}
