// Package parallel splits row ranges of a pixel buffer across worker
// goroutines. Every transform built on it operates on disjoint output
// rows, so no synchronization beyond the final wait is needed and
// results are deterministic.
package parallel

import (
	"runtime"
	"sync"
)

// minRowsPerTask keeps tiny images on a single goroutine where the
// spawn overhead would dominate.
const minRowsPerTask = 32

// Rows invokes fn over disjoint half-open row ranges [y0, y1) covering
// [0, height), distributing the ranges over up to GOMAXPROCS goroutines.
// fn must not touch rows outside its range.
func Rows(height int, fn func(y0, y1 int)) {
	RowsN(height, runtime.GOMAXPROCS(0), fn)
}

// RowsN is Rows with an explicit worker count.
func RowsN(height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if maxTasks := (height + minRowsPerTask - 1) / minRowsPerTask; workers > maxTasks {
		workers = maxTasks
	}
	if workers <= 1 {
		fn(0, height)
		return
	}

	chunk := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += chunk {
		y1 := y0 + chunk
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
