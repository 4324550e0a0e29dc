// Package workerpool provides a small bounded fan-out helper used for the
// data-parallel phases of the overlap-save convolver and for decoding the
// input files concurrently before discovery starts. It is not a
// general task-stealing scheduler — it caps concurrency to GOMAXPROCS and
// waits for every submitted job to finish, which is all the static,
// barrier-synchronized phases in this engine ever need.
package workerpool

import (
	"runtime"
	"sync"
)

// ParallelFor calls fn(i) for every i in [0, n), running up to GOMAXPROCS
// calls concurrently, and blocks until all of them have returned.
func ParallelFor(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(idx)
		}(i)
	}
	wg.Wait()
}

// Run executes jobs concurrently (bounded to GOMAXPROCS) and blocks until
// every job has returned.
func Run(jobs []func()) {
	ParallelFor(len(jobs), func(i int) { jobs[i]() })
}
