// Package parallel splits index ranges across workers for the embarrassingly
// parallel loops in the pipeline (per-variable interpolation, per-wire setup
// encryption, per-proof aggregation).
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Execute runs work on contiguous chunks of [0,n) concurrently and returns
// the first error encountered. work must not share mutable state across
// chunks; callers write to disjoint slice ranges only.
func Execute(n int, work func(start, end int) error) error {
	if n <= 0 {
		return nil
	}

	nbTasks := runtime.NumCPU()
	if nbTasks > n {
		nbTasks = n
	}
	if nbTasks <= 1 {
		return work(0, n)
	}

	var g errgroup.Group
	chunk := n / nbTasks
	extra := n % nbTasks

	start := 0
	for i := 0; i < nbTasks; i++ {
		end := start + chunk
		if i < extra {
			end++
		}
		s, e := start, end
		g.Go(func() error {
			return work(s, e)
		})
		start = end
	}

	return g.Wait()
}
