// Package system probes the host to size the pipeline's resource usage.
package system

import (
	"log"
	"runtime"
	"syscall"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Per-worker memory budget. A worker holds the source sheet, its mask and a
// set of frame canvases at once.
const workerMemoryBudget = 256 << 20

// InitResourceLimits raises the open-file limit for batch runs that touch
// many sheets at once (macOS/Linux).
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Printf("[!] Failed to read file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Printf("[!] Failed to raise file limit: %v", err)
	}
}

// Workers returns a worker count for CPU-bound image processing: one per
// logical core, capped so that concurrent sheets fit in available memory.
// Falls back to runtime.NumCPU when host probing fails.
func Workers() int {
	workers, err := cpu.Counts(true)
	if err != nil || workers < 1 {
		workers = runtime.NumCPU()
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		workers = clampToMemory(workers, vm.Available)
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}

// clampToMemory caps workers so that each gets a full memory budget, never
// dropping below one.
func clampToMemory(workers int, available uint64) int {
	memCap := int(available / workerMemoryBudget)
	if memCap < workers {
		workers = memCap
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
