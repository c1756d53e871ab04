// Package parallel provides the fork-join primitives the frontier engine
// is built on: parallel vector construction, parallel reduction, and a
// parallel exclusive prefix sum. Each call splits its work into at most
// Workers() contiguous chunks and runs them on goroutines started for
// that call; no goroutines persist between calls.
//
// Every function here requires that the supplied callback be safe to
// invoke concurrently from multiple goroutines and that any values it
// produces be safe to hand across goroutines.
//
// The fan-out width is runtime.GOMAXPROCS(0) by default; SetWorkers
// overrides it, for example from cliconfig at process startup.
package parallel
