package zombie

import (
	"fmt"
	"sync"
)

// FakeSpawner implements Spawner for testing
type FakeSpawner struct {
	mu       sync.Mutex
	nextPID  int
	calls    [][]string
	spawnErr error
}

// NewFakeSpawner creates a new fake spawner
func NewFakeSpawner() *FakeSpawner {
	return &FakeSpawner{
		nextPID: 1000,
	}
}

// Spawn records the call and returns a fake PID
func (s *FakeSpawner) Spawn(path string, args []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, append([]string{path}, args...))

	if s.spawnErr != nil {
		return 0, s.spawnErr
	}

	if path == "" {
		return 0, fmt.Errorf("empty command")
	}

	pid := s.nextPID
	s.nextPID++
	return pid, nil
}

// SetSpawnError sets an error to return on the next Spawn calls
func (s *FakeSpawner) SetSpawnError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spawnErr = err
}

// SpawnCount returns number of times Spawn was called
func (s *FakeSpawner) SpawnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Calls returns the command line of every Spawn call
func (s *FakeSpawner) Calls() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string{}, s.calls...)
}
