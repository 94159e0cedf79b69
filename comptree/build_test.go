package comptree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorsp/comptree"
	"github.com/katalvlaran/thorsp/msbmst"
	"github.com/katalvlaran/thorsp/wgraph"
)

func buildMST(t *testing.T, g *wgraph.Graph) *wgraph.Graph {
	t.Helper()
	mst, err := (msbmst.Kruskal{}).BuildMsbMST(g)
	require.NoError(t, err)

	return mst
}

func TestBuildFromMST_SingleVertex(t *testing.T) {
	g, err := wgraph.New(1)
	require.NoError(t, err)
	tree, err := comptree.BuildFromMST(buildMST(t, g), 1)
	require.NoError(t, err)
	require.True(t, tree.Nodes[tree.Root].IsLeaf)
	require.Equal(t, []int32{0}, tree.DFSOrder)
}

func TestBuildFromMST_StarGraphProducesOneRoot(t *testing.T) {
	g, err := wgraph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 1))
	require.NoError(t, g.AddUndirectedEdge(0, 2, 2))
	require.NoError(t, g.AddUndirectedEdge(0, 3, 4))

	tree, err := comptree.BuildFromMST(buildMST(t, g), 4)
	require.NoError(t, err)
	require.False(t, tree.Nodes[tree.Root].IsLeaf)
	require.Len(t, tree.DFSOrder, 4)

	// Every leaf must appear exactly once across the DFS order.
	seen := make(map[int32]bool)
	for _, v := range tree.DFSOrder {
		require.False(t, seen[v], "vertex %d listed twice", v)
		seen[v] = true
	}
}

func TestBuildFromMST_ChainGraph(t *testing.T) {
	g, err := wgraph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 3))
	require.NoError(t, g.AddUndirectedEdge(1, 2, 5))
	require.NoError(t, g.AddUndirectedEdge(2, 3, 1))

	tree, err := comptree.BuildFromMST(buildMST(t, g), 4)
	require.NoError(t, err)

	root := tree.Nodes[tree.Root]
	require.Equal(t, tree.N-1, int(root.LastU), "root's LastU must be the final DFS position")
	require.Equal(t, tree.N, root.NumUnvisitedInitial)
}

func TestBuildFromMST_DisconnectedFails(t *testing.T) {
	g, err := wgraph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 1))
	// 2,3 isolated: the msb-MST returned by Kruskal is necessarily partial.

	_, err = comptree.BuildFromMST(buildMST(t, g), 4)
	require.ErrorIs(t, err, comptree.ErrDisconnectedMST)
}

func TestBuildFromMST_InvalidInput(t *testing.T) {
	_, err := comptree.BuildFromMST(nil, 4)
	require.ErrorIs(t, err, comptree.ErrInvalidInput)
}

func TestTree_ResetRestoresInitialCounts(t *testing.T) {
	g, err := wgraph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 1))
	require.NoError(t, g.AddUndirectedEdge(0, 2, 2))
	require.NoError(t, g.AddUndirectedEdge(0, 3, 4))
	tree, err := comptree.BuildFromMST(buildMST(t, g), 4)
	require.NoError(t, err)

	tree.Nodes[tree.Root].Visited = true
	tree.Nodes[tree.Root].NumUnvisited = 0
	tree.Nodes[tree.Root].Buckets = make([][]int32, 3)

	tree.Reset()
	require.False(t, tree.Nodes[tree.Root].Visited)
	require.Equal(t, tree.Nodes[tree.Root].NumUnvisitedInitial, tree.Nodes[tree.Root].NumUnvisited)
	require.Nil(t, tree.Nodes[tree.Root].Buckets)
}
