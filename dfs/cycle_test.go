package dfs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/norkamer/caps/core"
	"github.com/norkamer/caps/dfs"
)

func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

func TestDetectCycles_NoCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	// A -> B -> C -> G
	//     |
	//     D -> E -> F
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("B", "D", 0)
	_, _ = g.AddEdge("C", "G", 0)
	_, _ = g.AddEdge("D", "E", 0)
	_, _ = g.AddEdge("E", "F", 0)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

func TestDetectCycles_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "A", 0)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "A"}}, cycles)
}

func TestDetectCycles_TwoNodeCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "A", 0)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, cycles)
}

func TestDetectCycles_ThreeNodeCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}

func TestDetectCycles_FourNodeCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	// V -> W -> X -> Y -> Z -> W
	_, _ = g.AddEdge("V", "W", 0)
	_, _ = g.AddEdge("W", "X", 0)
	_, _ = g.AddEdge("X", "Y", 0)
	_, _ = g.AddEdge("Y", "Z", 0)
	_, _ = g.AddEdge("Z", "W", 0)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"W", "X", "Y", "Z", "W"}}, cycles)
}

func TestDetectCycles_MultipleDisjointCycles(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	cycle1 := []string{"A", "B", "C", "D", "E", "A"}
	for i := 0; i < len(cycle1)-1; i++ {
		_, _ = g.AddEdge(cycle1[i], cycle1[i+1], 0)
	}
	cycle2 := []string{"F", "G", "H", "F"}
	for i := 0; i < len(cycle2)-1; i++ {
		_, _ = g.AddEdge(cycle2[i], cycle2[i+1], 0)
	}
	_, _ = g.AddEdge("E", "F", 0)
	_ = g.AddVertex("I")
	_ = g.AddVertex("J")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has, "expected at least one cycle")

	sigs := make([]string, len(cycles))
	for i, c := range cycles {
		sigs[i] = strings.Join(c, ",")
	}
	exp := []string{strings.Join(cycle1, ","), strings.Join(cycle2, ",")}
	assert.ElementsMatch(t, exp, sigs)
	assert.Len(t, cycles, 2)
}
