package profiler

import "testing"

func TestStartAlwaysReturnsCloser(t *testing.T) {
	end := Start("test.scope")
	if end == nil {
		t.Fatal("Start returned nil")
	}
	end()
}

func TestRuntimeStats(t *testing.T) {
	if MemoryUsage() == 0 {
		t.Error("MemoryUsage = 0")
	}
	if MemoryAllocs() == 0 {
		t.Error("MemoryAllocs = 0")
	}
	if NumGoroutine() < 1 || NumCPU() < 1 {
		t.Errorf("goroutines=%d cpus=%d", NumGoroutine(), NumCPU())
	}
}
