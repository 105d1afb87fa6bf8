package zombie

import (
	"fmt"
	"os/exec"
)

// Spawner handles child process creation
type Spawner interface {
	Spawn(path string, args []string) (int, error)
}

// ExecSpawner implements Spawner using os/exec.
// The child is never waited on, so it stays defunct once it exits.
type ExecSpawner struct{}

// Spawn starts path with args and returns the child PID
func (ExecSpawner) Spawn(path string, args []string) (int, error) {
	if path == "" {
		return 0, fmt.Errorf("empty command")
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start child: %w", err)
	}

	return cmd.Process.Pid, nil
}
