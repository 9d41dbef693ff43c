package system

import (
	"syscall"
	"testing"
)

func TestInitResourceLimits(t *testing.T) {
	InitResourceLimits()

	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		t.Fatalf("Failed to read file limit: %v", err)
	}
	t.Logf("Open-file limit after init: cur=%d max=%d", rLimit.Cur, rLimit.Max)

	if rLimit.Cur != 2048 && rLimit.Cur != rLimit.Max {
		t.Errorf("Expected soft limit 2048 (or the hard cap), got %d", rLimit.Cur)
	}

	// Safe to call again once the limit is already set.
	InitResourceLimits()
}

func TestWorkers(t *testing.T) {
	workers := Workers()
	t.Logf("Sized worker pool: %d", workers)

	if workers < 1 {
		t.Errorf("Expected at least one worker, got %d", workers)
	}
}

func TestClampToMemory(t *testing.T) {
	tests := []struct {
		name      string
		workers   int
		available uint64
		want      int
	}{
		{"plenty of memory", 8, 64 * workerMemoryBudget, 8},
		{"capped by memory", 8, 3 * workerMemoryBudget, 3},
		{"exact fit", 4, 4 * workerMemoryBudget, 4},
		{"almost no memory", 8, workerMemoryBudget - 1, 1},
		{"no memory", 8, 0, 1},
	}

	for _, tt := range tests {
		if got := clampToMemory(tt.workers, tt.available); got != tt.want {
			t.Errorf("%s: clampToMemory(%d, %d) = %d, want %d",
				tt.name, tt.workers, tt.available, got, tt.want)
		}
	}
}
