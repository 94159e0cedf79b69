// Package randgraph generates random connected weighted wgraph.Graphs.
// thorup's test suite uses it to fuzz thorup.Engine against
// refpath.Dijkstra across a range of sizes and seeds; cmd/thorsp-bench
// uses it to generate the graph for its repeated-query timing loop.
//
// Generation is deterministic for a fixed seed and option set: a random
// spanning tree is grown first (guaranteeing connectivity), then extra
// edges are added independently with the configured probability, exactly
// mirroring the teacher's builder package's "grow a guaranteed-connected
// skeleton, then layer in randomness" shape.
package randgraph

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/thorsp/wgraph"
)

// Sentinel errors for option and parameter validation.
var (
	// ErrTooFewVertices is returned when n < 1.
	ErrTooFewVertices = errors.New("randgraph: n must be at least 1")
)

const (
	defaultMaxWeight       int32   = 100
	defaultEdgeProbability float64 = 0.1
)

type config struct {
	rng       *rand.Rand
	maxWeight int32
	edgeProb  float64
}

// Option customizes New's output. Like the teacher's BuilderOption,
// option constructors validate and panic on meaningless literal
// arguments — the algorithm itself (New) never panics.
type Option func(*config)

// WithSeed fixes the random source for a reproducible graph.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxWeight bounds generated edge weights to [1, max]. Panics if max
// is not positive.
func WithMaxWeight(max int32) Option {
	if max <= 0 {
		panic("randgraph: WithMaxWeight requires max > 0")
	}

	return func(c *config) {
		c.maxWeight = max
	}
}

// WithEdgeProbability sets the independent-inclusion probability for
// extra edges beyond the spanning tree. Panics if p is outside [0,1].
func WithEdgeProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("randgraph: WithEdgeProbability requires p in [0,1]")
	}

	return func(c *config) {
		c.edgeProb = p
	}
}

// New builds a random connected undirected wgraph.Graph over n vertices:
// a random spanning tree (random parent per new vertex, guaranteeing
// connectivity) followed by extra edges sampled independently at
// edgeProb. Weights are uniform in [1, maxWeight].
func New(n int, opts ...Option) (*wgraph.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}

	cfg := &config{maxWeight: defaultMaxWeight, edgeProb: defaultEdgeProbability}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}

	g, err := wgraph.New(n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return g, nil
	}

	order := cfg.rng.Perm(n)
	for i := 1; i < n; i++ {
		child := order[i]
		parent := order[cfg.rng.Intn(i)]
		if err := g.AddUndirectedEdge(int32(parent), int32(child), randWeight(cfg)); err != nil {
			return nil, err
		}
	}

	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if g.HasEdge(int32(u), int32(v)) {
				continue
			}
			if cfg.rng.Float64() >= cfg.edgeProb {
				continue
			}
			if err := g.AddUndirectedEdge(int32(u), int32(v), randWeight(cfg)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func randWeight(cfg *config) int32 {
	return int32(cfg.rng.Intn(int(cfg.maxWeight))) + 1
}
