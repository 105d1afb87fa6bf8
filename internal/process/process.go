package process

import (
	"errors"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"
)

// Entry is a single row of the process table
type Entry struct {
	PID    int    `json:"pid"`
	PPID   int    `json:"ppid"`
	Name   string `json:"name"`
	Zombie bool   `json:"zombie"`
}

// Stat returns the ps(1) style state letter for the entry
func (e Entry) Stat() string {
	if e.Zombie {
		return "Z"
	}
	return "-"
}

// IsProcessRunning checks if a process with the given PID is present in the process table.
// It uses kill(pid, 0) which sends no signal but checks if the process exists.
// A zombie still answers until it has been reaped.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}

// IsZombie reports whether the given PID is a defunct process
func IsZombie(pid int) (bool, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return false, err
	}
	return isZombie(proc)
}

// Defunct returns every zombie currently in the process table.
// Processes that disappear while scanning are skipped.
func Defunct() ([]Entry, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, proc := range procs {
		zombie, err := isZombie(proc)
		if err != nil || !zombie {
			continue
		}

		ppid, err := proc.Ppid()
		if err != nil {
			continue
		}

		// comm may be unreadable for some zombies, keep the row anyway
		name, _ := proc.Name()

		entries = append(entries, Entry{
			PID:    int(proc.Pid),
			PPID:   int(ppid),
			Name:   name,
			Zombie: true,
		})
	}

	return entries, nil
}

// DefunctChildren returns the zombies whose parent is ppid
func DefunctChildren(ppid int) ([]Entry, error) {
	all, err := Defunct()
	if err != nil {
		return nil, err
	}

	var children []Entry
	for _, e := range all {
		if e.PPID == ppid {
			children = append(children, e)
		}
	}
	return children, nil
}

func isZombie(proc *process.Process) (bool, error) {
	status, err := proc.Status()
	if err != nil {
		return false, err
	}
	for _, s := range status {
		if s == process.Zombie {
			return true, nil
		}
	}
	return false, nil
}
