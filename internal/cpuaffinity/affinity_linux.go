//go:build linux

// Package cpuaffinity pins search worker goroutines to distinct CPU cores on
// platforms where that is cheap and well-supported, best-effort on others.
// Grounded on cmd/hexhunter's priority_windows.go/priority_other.go split:
// a real implementation on the platform that supports it, a documented no-op
// everywhere else.
package cpuaffinity

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Pin attempts to restrict the calling OS thread to a single core, chosen by
// index modulo the number of available cores. Pin locks the calling goroutine
// to its OS thread first (runtime.LockOSThread), so the pin sticks for it.
func Pin(index int) error {
	n := NumAvailable()
	if n <= 0 {
		return nil
	}
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(index % n)
	return unix.SchedSetaffinity(0, &set)
}

// NumAvailable reports how many CPUs this process may currently use.
func NumAvailable() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}
	return set.Count()
}
