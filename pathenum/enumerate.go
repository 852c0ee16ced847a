package pathenum

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/norkamer/caps/dag"
)

// frame is one in-progress reverse path: nodes holds the path built so far
// in sink-to-source order (front element is the current traversal
// frontier), and visited guards against revisiting a node already on this
// particular path (a predecessor already on the current path is skipped,
// never yielded as an alternate route — spec.md §4.3).
type frame struct {
	nodes   []string
	visited map[string]bool
}

// Iterator pulls one path at a time from a reverse traversal of a DAG,
// starting at startNode and walking backward along incoming edges until a
// source is reached. It is a single explicit work-stack, not a goroutine
// or channel — the same pull style as bfs.walker.
type Iterator struct {
	reader  dag.Reader
	opts    Options
	stack   []frame
	seen    map[[32]byte]bool
	emitted int
}

// Enumerate starts a reverse path enumeration from the sink-side endpoint
// of a candidate transaction edge (startNode). It fails immediately with
// ErrEdgeNotFound if startNode is absent from reader.
func Enumerate(reader dag.Reader, startNode string, opts ...Option) (*Iterator, error) {
	if !reader.NodeExists(startNode) {
		return nil, fmt.Errorf("%w: %q", ErrEdgeNotFound, startNode)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	it := &Iterator{
		reader: reader,
		opts:   o,
		seen:   make(map[[32]byte]bool),
	}
	it.stack = append(it.stack, frame{
		nodes:   []string{startNode},
		visited: map[string]bool{startNode: true},
	})
	return it, nil
}

// Next returns the next distinct path, advancing the traversal. ok is false
// once the traversal is exhausted. err is non-nil only for
// ErrEnumerationExplosion (the cap on distinct paths was exceeded) or a
// reader failure.
func (it *Iterator) Next() (Path, bool, error) {
	for len(it.stack) > 0 {
		f := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		front := f.nodes[0]

		if it.reader.IsSource(front) {
			path := reversedPath(f.nodes)
			if it.seen[path.hash] {
				continue
			}
			it.seen[path.hash] = true
			it.emitted++
			if it.emitted > it.opts.MaxPaths {
				return Path{}, false, fmt.Errorf("%w: reached %d paths", ErrEnumerationExplosion, it.emitted)
			}
			return path, true, nil
		}

		edges, err := it.reader.IncomingEdges(front)
		if err != nil {
			return Path{}, false, fmt.Errorf("pathenum: %w", err)
		}
		for _, e := range edges {
			if f.visited[e.From] {
				continue
			}
			nextVisited := make(map[string]bool, len(f.visited)+1)
			for k := range f.visited {
				nextVisited[k] = true
			}
			nextVisited[e.From] = true

			nextNodes := make([]string, 0, len(f.nodes)+1)
			nextNodes = append(nextNodes, e.From)
			nextNodes = append(nextNodes, f.nodes...)

			it.stack = append(it.stack, frame{nodes: nextNodes, visited: nextVisited})
		}
	}
	return Path{}, false, nil
}

// All drains the iterator into a slice, propagating ErrEnumerationExplosion
// or any reader error encountered along the way.
func (it *Iterator) All() ([]Path, error) {
	var out []Path
	for {
		p, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, p)
	}
}

// reversedPath takes a sink-to-source node slice and returns the
// source-to-sink Path with its content hash computed.
func reversedPath(sinkToSource []string) Path {
	n := len(sinkToSource)
	nodes := make([]string, n)
	for i, id := range sinkToSource {
		nodes[n-1-i] = id
	}
	return Path{Nodes: nodes, hash: contentHash(nodes)}
}

// contentHash is a SHA-256 digest over the ordered node_id sequence,
// delimited to avoid ambiguity between e.g. ["ab","c"] and ["a","bc"].
func contentHash(nodes []string) [32]byte {
	var sb strings.Builder
	for _, id := range nodes {
		sb.WriteString(id)
		sb.WriteByte(0)
	}
	return sha256.Sum256([]byte(sb.String()))
}
