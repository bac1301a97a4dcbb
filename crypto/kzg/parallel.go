package kzg

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunkCount picks how many data-parallel chunks to split n independent
// units of work into: one per CPU (runtime.NumCPU) when n is at least 16
// units per CPU, and a single chunk otherwise, rather than spawning one
// goroutine per element.
func chunkCount(n int) int {
	const minChunk = 16
	workers := runtime.NumCPU()
	if n < minChunk*workers {
		workers = 1
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// parallelFor splits [0,n) into chunkCount(n) disjoint ranges and runs f
// over each range in its own goroutine, propagating the first error. Every
// caller writes only to indices inside its own [lo,hi) range, so there is
// no shared mutable state across chunks, matching this package's
// concurrency contract (§5): output is bit-identical whether the work runs
// on one goroutine or many, since each chunk's result depends only on its
// own inputs and its own slice of the output.
func parallelFor(n int, f func(lo, hi int) error) error {
	if n == 0 {
		return nil
	}
	workers := chunkCount(n)
	if workers <= 1 {
		return f(0, n)
	}

	chunkSize := (n + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunkSize
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			return f(lo, hi)
		})
	}
	return g.Wait()
}
