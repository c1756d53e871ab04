package parallel

import (
	"runtime"
	"sync/atomic"
)

var workers atomic.Int64

func init() {
	workers.Store(int64(runtime.GOMAXPROCS(0)))
}

// Workers returns the number of goroutines parallel primitives fan out
// to. Defaults to runtime.GOMAXPROCS(0).
func Workers() int {
	return int(workers.Load())
}

// SetWorkers overrides the fan-out width for all subsequent parallel
// primitive calls. Values less than 1 are ignored. Safe to call
// concurrently with in-flight primitive calls; it only affects chunking
// decisions made after it returns.
func SetWorkers(n int) {
	if n < 1 {
		return
	}
	workers.Store(int64(n))
}

// chunks splits [0, n) into at most Workers() contiguous, non-empty
// ranges, returning their [start, end) bounds.
func chunks(n int) [][2]int {
	if n == 0 {
		return nil
	}
	w := Workers()
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	size := (n + w - 1) / w

	bounds := make([][2]int, 0, w)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		bounds = append(bounds, [2]int{start, end})
	}

	return bounds
}
