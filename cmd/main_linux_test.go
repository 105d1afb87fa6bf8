package cmd

import (
	"errors"
	"os"
	"os/exec"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/juanibiapina/zombie/internal/process"
	"github.com/juanibiapina/zombie/internal/zombie"
)

const (
	generatorEnv    = "ZOMBIE_CMD_GENERATOR"
	generatorWindow = 2 * time.Second
)

var subreaper bool

// TestMain lets the test binary stand in for the zombie binary. The root
// command re-executes os.Executable() with the exit subcommand, which lands
// here as os.Args[1] and goes through RootCmd exactly as in production.
func TestMain(m *testing.M) {
	if len(os.Args) > 1 && os.Args[1] == zombie.ChildCommand {
		RootCmd.SetArgs(os.Args[1:])
		Execute()
		// exit never returns
		os.Exit(2)
	}

	if os.Getenv(generatorEnv) != "" {
		os.Unsetenv(generatorEnv)

		window = generatorWindow
		RootCmd.SetArgs([]string{})
		Execute()
		os.Exit(0)
	}

	// Orphaned zombies are reparented to us so the tests can reap them
	subreaper = unix.Prctl(unix.PR_SET_CHILD_SUBREAPER, 1, 0, 0, 0) == nil

	os.Exit(m.Run())
}

func reapChild(t *testing.T, pid int) unix.WaitStatus {
	t.Helper()

	var status unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &status, 0, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			t.Fatalf("failed to reap %d: %v", pid, err)
		}
		return status
	}
}

func TestExitCommand_ExitsZeroSilently(t *testing.T) {
	out, err := exec.Command(os.Args[0], zombie.ChildCommand).CombinedOutput()
	if err != nil {
		t.Fatalf("exit command failed: %v (output %q)", err, out)
	}
	if len(out) != 0 {
		t.Errorf("exit command should print nothing, got %q", out)
	}
}

func TestRoot_LeavesOneDefunctExitChild(t *testing.T) {
	if !subreaper {
		t.Skip("cannot become a child subreaper")
	}

	start := time.Now()
	parent := exec.Command(os.Args[0], "-test.run=^$")
	parent.Env = append(os.Environ(), generatorEnv+"=1")
	if err := parent.Start(); err != nil {
		t.Fatalf("failed to start root command: %v", err)
	}
	ppid := parent.Process.Pid

	var zombies []process.Entry
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		var err error
		zombies, err = process.DefunctChildren(ppid)
		if err != nil {
			t.Fatalf("DefunctChildren failed: %v", err)
		}
		if len(zombies) > 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if len(zombies) != 1 {
		t.Fatalf("expected exactly 1 zombie under %d, got %d", ppid, len(zombies))
	}
	child := zombies[0]

	if err := parent.Wait(); err != nil {
		t.Fatalf("root command exited with error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < generatorWindow {
		t.Errorf("root command exited after %v, before the %v window", elapsed, generatorWindow)
	}

	// The child ran the real exit subcommand
	status := reapChild(t, child.PID)
	if !status.Exited() || status.ExitStatus() != 0 {
		t.Errorf("expected exit child to exit 0, got %v", status)
	}

	if process.IsProcessRunning(child.PID) {
		t.Errorf("zombie %d should be gone once reaped", child.PID)
	}
}
