// Package pool provides the bounded worker pool shared by the size and
// removal stages.
package pool

import (
	"runtime"
	"sync"
)

// Pool bounds fan-out work with a semaphore channel. One pool is created per
// process and shared by every concurrent stage; tasks submitted to it must
// not submit nested tasks to the same pool, or inner work starves once the
// pool saturates.
type Pool struct {
	sem chan struct{}
}

// New creates a pool with the given number of workers. Non-positive sizes
// fall back to the CPU count.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Size returns the worker count.
func (p *Pool) Size() int {
	return cap(p.sem)
}

// ForEach runs fn(i) for every i in [0, n) across the pool's workers and
// blocks until all complete.
func (p *Pool) ForEach(n int, fn func(i int)) {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		p.sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-p.sem }()
			fn(i)
		}(i)
	}
	wg.Wait()
}
