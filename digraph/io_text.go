package digraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ParseAdjacencyGraph reads the textual "AdjacencyGraph" format:
//
//	AdjacencyGraph
//	<node_count>
//	<rel_count>
//	<node_count offsets, whitespace/newline separated>
//	<rel_count targets, whitespace/newline separated>
//
// and builds a Graph, deriving the in-adjacency list the same way
// NewFromLists does. This is the core of the textual-to-binary
// converter; cmd/ligra's "parse" subcommand is a
// thin driver over ParseAdjacencyGraph + Dump.
func ParseAdjacencyGraph(r io.Reader, opts ...GraphOption) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrTruncated)
	}
	if scanner.Text() != "AdjacencyGraph" {
		return nil, fmt.Errorf("%w: got %q", ErrBadHeader, scanner.Text())
	}

	nodeCount, err := nextUint(scanner, "node_count")
	if err != nil {
		return nil, err
	}
	relCount, err := nextUint(scanner, "rel_count")
	if err != nil {
		return nil, err
	}

	offsets := make([]uint64, nodeCount)
	for i := range offsets {
		v, err := nextUint(scanner, "offset")
		if err != nil {
			return nil, err
		}
		offsets[i] = v
	}

	targets := make([]uint64, relCount)
	for i := range targets {
		v, err := nextUint(scanner, "target")
		if err != nil {
			return nil, err
		}
		targets[i] = v
	}

	return NewFromLists(offsets, targets, opts...), nil
}

func nextUint(scanner *bufio.Scanner, what string) (uint64, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("digraph: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: missing %s", ErrTruncated, what)
	}
	v, err := strconv.ParseUint(scanner.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrMalformedNumber, what, scanner.Text(), err)
	}

	return v, nil
}
