package zombie

import (
	"fmt"
	"os"
	"time"
)

// DefaultWindow is how long the parent lingers without reaping its child
const DefaultWindow = 60 * time.Second

// ChildCommand is the hidden subcommand the child runs. It exits 0 at once.
const ChildCommand = "exit"

// Generator leaves one defunct child in the process table for Window
type Generator struct {
	Path   string
	Args   []string
	Window time.Duration

	spawner Spawner
	sleep   func(time.Duration)
}

// New creates a generator that re-executes the running binary as its child
func New() (*Generator, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	return NewWithSpawner(exe, []string{ChildCommand}, ExecSpawner{}), nil
}

// NewWithSpawner creates a generator with a custom spawner (for testing)
func NewWithSpawner(path string, args []string, spawner Spawner) *Generator {
	return &Generator{
		Path:    path,
		Args:    args,
		Window:  DefaultWindow,
		spawner: spawner,
		sleep:   time.Sleep,
	}
}

// Run starts exactly one child and sleeps for Window without collecting its
// exit status. The child is left defunct until this process ends.
func (g *Generator) Run() error {
	pid, err := g.spawner.Spawn(g.Path, g.Args)
	if err != nil {
		return err
	}

	log := Logger.With("pid", pid, "window", g.Window)
	log.Debug("child started")

	g.sleep(g.Window)

	log.Debug("window elapsed")
	return nil
}
