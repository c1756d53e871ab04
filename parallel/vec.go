package parallel

import "golang.org/x/sync/errgroup"

// ParForEach invokes f(i) for every i in [0, n), split into at most
// Workers() chunks that each run on their own goroutine (a single chunk
// runs on the calling goroutine), and blocks until every invocation has
// returned. f must be safe to call concurrently.
func ParForEach(n int, f func(i int)) {
	bounds := chunks(n)
	if len(bounds) == 0 {
		return
	}
	if len(bounds) == 1 {
		start, end := bounds[0][0], bounds[0][1]
		for i := start; i < end; i++ {
			f(i)
		}
		return
	}

	var g errgroup.Group
	for _, b := range bounds {
		start, end := b[0], b[1]
		g.Go(func() error {
			for i := start; i < end; i++ {
				f(i)
			}
			return nil
		})
	}
	_ = g.Wait() // f never returns an error
}

// ParVec allocates a slice of length n where element i = f(i), computed
// in parallel.
func ParVec[T any](n int, f func(i int) T) []T {
	out := make([]T, n)
	ParForEach(n, func(i int) {
		out[i] = f(i)
	})

	return out
}

// ParVecWith allocates a slice of length n where every element is the
// result of an independent call to g (no index passed). Used to build
// per-node atomic state where each element needs its own zero value
// (e.g. a fresh atomic counter).
func ParVecWith[T any](n int, g func() T) []T {
	return ParVec(n, func(int) T { return g() })
}
