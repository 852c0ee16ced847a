package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norkamer/caps/bfs"
	"github.com/norkamer/caps/core"
)

func buildChain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("sink", "mid", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("mid", "left", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("mid", "right", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("left", "src", 0)
	require.NoError(t, err)
	return g
}

func TestBFS_VisitsEveryReachableVertex(t *testing.T) {
	g := buildChain(t)

	result, err := bfs.BFS(g, "sink")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Depth["sink"])
	assert.Equal(t, 1, result.Depth["mid"])
	assert.Equal(t, 2, result.Depth["left"])
	assert.Equal(t, 2, result.Depth["right"])
	assert.Equal(t, 3, result.Depth["src"])
	assert.Equal(t, "mid", result.Parent["left"])
}

func TestBFS_MaxDepthStopsExpansion(t *testing.T) {
	g := buildChain(t)

	result, err := bfs.BFS(g, "sink", bfs.WithMaxDepth(1))
	require.NoError(t, err)

	assert.Contains(t, result.Order, "mid")
	assert.NotContains(t, result.Order, "left")
	assert.NotContains(t, result.Order, "src")
}

func TestBFS_NegativeMaxDepthIsOptionViolation(t *testing.T) {
	g := buildChain(t)
	_, err := bfs.BFS(g, "sink", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_NilGraph(t *testing.T) {
	_, err := bfs.BFS(nil, "sink")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_StartVertexNotFound(t *testing.T) {
	g := buildChain(t)
	_, err := bfs.BFS(g, "ghost")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}
