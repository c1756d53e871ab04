// Package xatomic provides an atomic float64, which the Go standard
// library does not: sync/atomic has no native float64 primitive.
// PageRankDelta needs fetch-add on floating point deltas shared across
// goroutines, so this package implements it as a compare-and-swap loop
// over the IEEE-754 bit pattern.
package xatomic
