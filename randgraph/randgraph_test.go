package randgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorsp/randgraph"
	"github.com/katalvlaran/thorsp/refpath"
)

func TestNew_SingleVertex(t *testing.T) {
	g, err := randgraph.New(1, randgraph.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 1, g.N())
	require.Equal(t, 0, g.M())
}

func TestNew_IsConnected(t *testing.T) {
	g, err := randgraph.New(50, randgraph.WithSeed(42), randgraph.WithEdgeProbability(0))
	require.NoError(t, err)

	d, err := refpath.Dijkstra(g, 0)
	require.NoError(t, err)
	for v, dist := range d {
		require.NotEqual(t, int64(refpath.Inf), dist, "vertex %d must be reachable", v)
	}
}

func TestNew_DeterministicForSameSeed(t *testing.T) {
	a, err := randgraph.New(20, randgraph.WithSeed(7), randgraph.WithEdgeProbability(0.3))
	require.NoError(t, err)
	b, err := randgraph.New(20, randgraph.WithSeed(7), randgraph.WithEdgeProbability(0.3))
	require.NoError(t, err)

	require.Equal(t, a.Edges(), b.Edges())
}

func TestNew_RejectsTooFewVertices(t *testing.T) {
	_, err := randgraph.New(0)
	require.ErrorIs(t, err, randgraph.ErrTooFewVertices)
}

func TestWithMaxWeight_BoundsGeneratedWeights(t *testing.T) {
	g, err := randgraph.New(30, randgraph.WithSeed(3), randgraph.WithMaxWeight(5), randgraph.WithEdgeProbability(0.5))
	require.NoError(t, err)

	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, int32(1))
		require.LessOrEqual(t, e.Weight, int32(5))
	}
}

func TestWithMaxWeight_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { randgraph.WithMaxWeight(0) })
}

func TestWithEdgeProbability_PanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { randgraph.WithEdgeProbability(1.5) })
}
