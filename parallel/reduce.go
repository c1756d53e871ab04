package parallel

import "golang.org/x/sync/errgroup"

// ParSum returns the sum of xs, computed by partitioning xs into at most
// Workers() chunks, summing each chunk on its own goroutine, then folding the partial
// sums sequentially.
func ParSum(xs []uint64) uint64 {
	bounds := chunks(len(xs))
	if len(bounds) == 0 {
		return 0
	}

	partials := make([]uint64, len(bounds))
	var g errgroup.Group
	for idx, b := range bounds {
		idx, start, end := idx, b[0], b[1]
		g.Go(func() error {
			var sum uint64
			for _, x := range xs[start:end] {
				sum += x
			}
			partials[idx] = sum
			return nil
		})
	}
	_ = g.Wait()

	var total uint64
	for _, p := range partials {
		total += p
	}

	return total
}

// ParPrefixSum computes the exclusive prefix sum of xs: result[i] is the
// sum of xs[:i], and the returned total is the sum of all of xs
// (equivalently result[i] + xs[i] for the last i, or 0 for an empty
// input). This is the work-efficient three-pass parallel scan: local
// per-chunk sums, a sequential fold of chunk offsets, then a parallel
// local scan seeded with each chunk's offset.
func ParPrefixSum(xs []uint64) (result []uint64, total uint64) {
	n := len(xs)
	result = make([]uint64, n)

	bounds := chunks(n)
	if len(bounds) == 0 {
		return result, 0
	}

	chunkSums := make([]uint64, len(bounds))
	var g errgroup.Group
	for idx, b := range bounds {
		idx, start, end := idx, b[0], b[1]
		g.Go(func() error {
			var sum uint64
			for _, x := range xs[start:end] {
				sum += x
			}
			chunkSums[idx] = sum
			return nil
		})
	}
	_ = g.Wait()

	offsets := make([]uint64, len(bounds))
	var running uint64
	for i, s := range chunkSums {
		offsets[i] = running
		running += s
	}
	total = running

	var g2 errgroup.Group
	for idx, b := range bounds {
		idx, start, end := idx, b[0], b[1]
		g2.Go(func() error {
			running := offsets[idx]
			for i := start; i < end; i++ {
				result[i] = running
				running += xs[i]
			}
			return nil
		})
	}
	_ = g2.Wait()

	return result, total
}
