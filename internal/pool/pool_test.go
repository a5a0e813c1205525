package pool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNewDefaultsToCPUCount(t *testing.T) {
	if got := New(0).Size(); got != runtime.NumCPU() {
		t.Errorf("Size = %d, want %d", got, runtime.NumCPU())
	}
	if got := New(-3).Size(); got != runtime.NumCPU() {
		t.Errorf("Size = %d, want %d", got, runtime.NumCPU())
	}
}

func TestForEachRunsAllTasks(t *testing.T) {
	p := New(4)
	var ran [100]int32
	p.ForEach(len(ran), func(i int) {
		atomic.AddInt32(&ran[i], 1)
	})
	for i, n := range ran {
		if n != 1 {
			t.Errorf("task %d ran %d times, want 1", i, n)
		}
	}
}

func TestForEachBoundsConcurrency(t *testing.T) {
	const size = 3
	p := New(size)

	var active, peak int32
	p.ForEach(50, func(int) {
		n := atomic.AddInt32(&active, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
				break
			}
		}
		atomic.AddInt32(&active, -1)
	})

	if peak > size {
		t.Errorf("peak concurrency %d exceeds pool size %d", peak, size)
	}
}

func TestForEachZeroTasks(t *testing.T) {
	New(2).ForEach(0, func(int) {
		t.Error("task ran for n=0")
	})
}
