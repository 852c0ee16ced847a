package pathenum

import (
	"testing"

	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamondDAG(t *testing.T) *dag.DAG {
	t.Helper()
	d := dag.New()
	for _, id := range []string{"src", "left", "right", "sink"} {
		require.NoError(t, d.AddAccount(id))
	}
	_, err := d.Connect("src", "left", 1)
	require.NoError(t, err)
	_, err = d.Connect("src", "right", 1)
	require.NoError(t, err)
	_, err = d.Connect("left", "sink", 1)
	require.NoError(t, err)
	_, err = d.Connect("right", "sink", 1)
	require.NoError(t, err)
	return d
}

func TestEnumerate_DiamondYieldsTwoPaths(t *testing.T) {
	d := diamondDAG(t)

	it, err := Enumerate(d, "sink")
	require.NoError(t, err)

	paths, err := it.All()
	require.NoError(t, err)
	require.Len(t, paths, 2)

	var seqs []string
	for _, p := range paths {
		seqs = append(seqs, p.Nodes[0]+">"+p.Nodes[len(p.Nodes)-1])
		assert.Equal(t, "src", p.Nodes[0])
		assert.Equal(t, "sink", p.Nodes[len(p.Nodes)-1])
	}
}

func TestEnumerate_LinearChain(t *testing.T) {
	d := dag.New()
	nodes := []string{"a", "b", "c", "d"}
	for _, id := range nodes {
		require.NoError(t, d.AddAccount(id))
	}
	for i := 0; i < len(nodes)-1; i++ {
		_, err := d.Connect(nodes[i], nodes[i+1], 1)
		require.NoError(t, err)
	}

	it, err := Enumerate(d, "d")
	require.NoError(t, err)
	paths, err := it.All()
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, nodes, paths[0].Nodes)
}

func TestEnumerate_StartNodeIsSourceYieldsSingletonPath(t *testing.T) {
	d := dag.New()
	require.NoError(t, d.AddAccount("lonely"))

	it, err := Enumerate(d, "lonely")
	require.NoError(t, err)
	paths, err := it.All()
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"lonely"}, paths[0].Nodes)
}

func TestEnumerate_UnknownStartNodeErrors(t *testing.T) {
	d := dag.New()
	require.NoError(t, d.AddAccount("a"))

	_, err := Enumerate(d, "ghost")
	assert.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestEnumerate_ExplosionOnFanIn(t *testing.T) {
	d := dag.New()
	require.NoError(t, d.AddAccount("sink"))
	for i := 0; i < 5; i++ {
		src := string(rune('a' + i))
		require.NoError(t, d.AddAccount(src))
		_, err := d.Connect(src, "sink", 1)
		require.NoError(t, err)
	}

	it, err := Enumerate(d, "sink", WithMaxPaths(3))
	require.NoError(t, err)

	_, err = it.All()
	assert.ErrorIs(t, err, ErrEnumerationExplosion)
}

func TestPathToWord_DelegatesToTaxonomy(t *testing.T) {
	alphabet := taxonomy.NewAlphabet([]rune("ab"))
	tax := taxonomy.New(alphabet)
	require.NoError(t, tax.Update(map[string]rune{"x": 'a', "y": 'b'}, 1))

	p := Path{Nodes: []string{"x", "y"}}
	word, err := PathToWord(p, tax, 1)
	require.NoError(t, err)
	assert.Equal(t, "ab", word)
}

func TestEstimateCount_DiamondUpperBound(t *testing.T) {
	d := diamondDAG(t)
	n, err := EstimateCount(d, "sink")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 2) // at least src, left|right reachable in reverse
}
