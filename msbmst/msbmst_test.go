package msbmst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorsp/msbmst"
	"github.com/katalvlaran/thorsp/wgraph"
)

// algorithms returns the three MSTAlgorithm implementations so shared
// scenarios can exercise all of them in one pass, per-case require'd
// with testify like the flow package's scenario-heavy algorithm tests.
func algorithms(root int32) []msbmst.MSTAlgorithm {
	return []msbmst.MSTAlgorithm{
		msbmst.Kruskal{},
		msbmst.Prim{Root: root},
		msbmst.FredmanTarjan{Root: root},
	}
}

func starGraph(t *testing.T) *wgraph.Graph {
	t.Helper()
	g, err := wgraph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 1))
	require.NoError(t, g.AddUndirectedEdge(0, 2, 2))
	require.NoError(t, g.AddUndirectedEdge(0, 3, 4))

	return g
}

func TestBuildMsbMST_EmitsTwoTimesNMinusOneArcs(t *testing.T) {
	g := starGraph(t)
	for _, algo := range algorithms(0) {
		mst, err := algo.BuildMsbMST(g)
		require.NoError(t, err)
		require.Equal(t, 2*(g.N()-1), mst.M(), "%T must emit 2*(n-1) directed arcs", algo)
	}
}

func TestBuildMsbMST_SingleVertexIsEmpty(t *testing.T) {
	g, err := wgraph.New(1)
	require.NoError(t, err)
	for _, algo := range algorithms(0) {
		mst, err := algo.BuildMsbMST(g)
		require.NoError(t, err)
		require.Equal(t, 0, mst.M())
	}
}

func TestBuildMsbMST_DisconnectedReturnsPartial(t *testing.T) {
	g, err := wgraph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 1))
	// vertices 2,3 are isolated from {0,1}.

	mst, err := msbmst.Kruskal{}.BuildMsbMST(g)
	require.NoError(t, err)
	require.Less(t, mst.M(), 2*(g.N()-1))
}

func TestKruskal_InvalidGraph(t *testing.T) {
	_, err := msbmst.Kruskal{}.BuildMsbMST(nil)
	require.ErrorIs(t, err, msbmst.ErrInvalidGraph)
}

func TestPrim_RootOutOfRange(t *testing.T) {
	g := starGraph(t)
	_, err := msbmst.Prim{Root: 99}.BuildMsbMST(g)
	require.ErrorIs(t, err, msbmst.ErrEmptyRoot)
}

func TestMSB_PowersOfTwo(t *testing.T) {
	cases := map[int32]int{1: 0, 2: 1, 3: 1, 4: 2, 7: 2, 8: 3}
	for w, want := range cases {
		require.Equal(t, want, msbmst.MSB(w), "msb(%d)", w)
	}
}
