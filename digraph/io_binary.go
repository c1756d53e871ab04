package digraph

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Dump writes g to w in the binary on-disk graph format:
//
//	[node_count:u64] [rel_count:u64]
//	[out_nodes: node_count x {degree:u64, offset:u64}] [out_targets: rel_count x u64]
//	[in_nodes:  node_count x {degree:u64, offset:u64}] [in_targets:  rel_count x u64]
//
// All integers are little-endian. Dump never closes w.
func Dump(g *Graph, w io.Writer) error {
	bw := bufWriter{w: w}

	bw.u64(uint64(g.NodeCount()))
	bw.u64(uint64(g.RelCount()))
	bw.adjacency(g.out)
	bw.adjacency(g.inc)

	return bw.err
}

type bufWriter struct {
	w   io.Writer
	buf [8]byte
	err error
}

func (bw *bufWriter) u64(v uint64) {
	if bw.err != nil {
		return
	}
	binary.LittleEndian.PutUint64(bw.buf[:], v)
	_, bw.err = bw.w.Write(bw.buf[:])
}

func (bw *bufWriter) adjacency(a adjacencyList) {
	for _, n := range a.nodes {
		bw.u64(n.degree)
		bw.u64(n.offset)
	}
	for _, t := range a.targets {
		bw.u64(t)
	}
}

// Load reads the binary format written by Dump and rebuilds a Graph
// directly from the stored out/in adjacency lists — no inversion is
// necessary, since both directions are already present on disk.
//
// Load returns ErrTruncated if the reader ends before all declared data
// has been read, and ErrTrailingBytes if bytes remain after the last
// declared field.
func Load(r io.Reader, opts ...GraphOption) (*Graph, error) {
	br := bufReader{r: r}

	nodeCount := br.u64()
	relCount := br.u64()
	if br.err != nil {
		return nil, fmt.Errorf("digraph: reading header: %w", br.err)
	}

	out, err := br.adjacency(int(nodeCount), int(relCount))
	if err != nil {
		return nil, fmt.Errorf("digraph: reading out-adjacency: %w", err)
	}
	inc, err := br.adjacency(int(nodeCount), int(relCount))
	if err != nil {
		return nil, fmt.Errorf("digraph: reading in-adjacency: %w", err)
	}

	var extra [1]byte
	if n, _ := r.Read(extra[:]); n > 0 {
		return nil, ErrTrailingBytes
	}

	g := &Graph{out: out, inc: inc, thresholdDivisor: defaultThresholdDivisor}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

type bufReader struct {
	r   io.Reader
	buf [8]byte
	err error
}

func (br *bufReader) u64() uint64 {
	if br.err != nil {
		return 0
	}
	if _, err := io.ReadFull(br.r, br.buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			br.err = ErrTruncated
		} else {
			br.err = err
		}
		return 0
	}
	return binary.LittleEndian.Uint64(br.buf[:])
}

func (br *bufReader) adjacency(nodeCount, relCount int) (adjacencyList, error) {
	nodes := make([]node, nodeCount)
	for v := 0; v < nodeCount; v++ {
		degree := br.u64()
		offset := br.u64()
		if br.err != nil {
			return adjacencyList{}, br.err
		}
		nodes[v] = node{offset: offset, degree: degree}
	}

	targets := make([]uint64, relCount)
	for i := 0; i < relCount; i++ {
		targets[i] = br.u64()
		if br.err != nil {
			return adjacencyList{}, br.err
		}
	}

	return adjacencyList{nodes: nodes, targets: targets}, nil
}
