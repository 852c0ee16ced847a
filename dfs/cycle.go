// Package dfs implements the cycle detector the account topology's
// acyclicity invariant is checked with. DetectCycles walks every vertex
// with three-color marking and back-edge detection, reporting each
// distinct cycle found in a canonical, rotation-independent form via
// Booth's minimal-rotation algorithm so the same cycle is never reported
// twice regardless of which vertex the DFS happened to start it from.
//
// Only directed graphs are handled — the account topology (core.Graph via
// dag.DAG) is always directed and a self-loop is always a one-node cycle,
// so there is no undirected "trivial backtrack" or mixed-edge case to
// special-case.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (V=#vertices, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import (
	"fmt"
	"sort"

	"github.com/norkamer/caps/core"
)

// DetectCycles inspects graph g for all simple cycles. Returns
// (true, cycles, nil) if any cycles are found; (false, nil, nil) if g is
// acyclic (or nil); (false, nil, error) if a neighbor-fetch error occurs.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))
	seen := make(map[string]struct{}, len(verts))
	var cycles [][]string

	for _, v := range verts {
		if state[v] == White {
			if err := dfsVisit(g, v, state, &path, seen, &cycles); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})

	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// dfsVisit performs recursive DFS from vertex id, recording any back-edge
// (Gray→Gray) cycle it encounters.
func dfsVisit(
	g *core.Graph,
	id string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) error {
	state[id] = Gray
	*path = append(*path, id)

	edges, err := g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("Neighbors(%q): %w", id, err)
	}

	for _, e := range edges {
		nbr := e.To
		switch state[nbr] {
		case White:
			if err = dfsVisit(g, nbr, state, path, seen, cycles); err != nil {
				return err
			}
		case Gray:
			recordCycle(nbr, *path, seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

// recordCycle extracts and deduplicates the cycle that closes back to
// start: locates start in path, closes the segment from there to the
// current vertex, canonicalizes it, and records it if not already seen.
func recordCycle(start string, path []string, seen map[string]struct{}, cycles *[][]string) {
	idx := IndexOf(path, start)

	seq := append([]string(nil), path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonical(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical computes the lexicographically minimal rotation of cycle
// (trying both the forward sequence and its reversal), closing it back
// into a [v0, ..., v0] loop and returning its comma-joined signature
// alongside the closed, canonical slice.
func canonical(cycle []string) (string, []string) {
	n := len(cycle) - 1
	base := cycle[:n]

	rotF := MinimalRotation(base)
	rotB := MinimalRotation(Reverse(base))

	picker := rotF
	if Compare(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]string(nil), picker...), picker[0])
	sig := JoinSig(closed)

	return sig, closed
}
