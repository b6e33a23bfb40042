package dualgraph

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ar0ne/PolyWorld/geom"
	"github.com/ar0ne/PolyWorld/tessellation"
)

// Graph owns the finished Region, Corner and Edge lists. It is built once
// by Build and exposed read-only afterwards: callers may mutate Region
// classifier fields but must not touch the lists or adjacency structure.
type Graph struct {
	regions []*Region
	corners []*Corner
	edges   []*Edge
	bounds  geom.Rect
}

// Regions returns the Regions in site order. The slice is a copy; the
// entities are shared.
func (g *Graph) Regions() []*Region {
	out := make([]*Region, len(g.regions))
	copy(out, g.regions)
	return out
}

// Corners returns the Corners in creation order, synthesized border corners
// last. The slice is a copy; the entities are shared.
func (g *Graph) Corners() []*Corner {
	out := make([]*Corner, len(g.corners))
	copy(out, g.corners)
	return out
}

// Edges returns the Edges in dual-record order. The slice is a copy; the
// entities are shared.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Bounds returns the bounding rectangle the graph was built within.
func (g *Graph) Bounds() geom.Rect {
	return g.bounds
}

// Build turns one tessellation into the linked dual graph.
//
// Pipeline: Lloyd relaxation (WithLloydRelaxation, default none) → graph
// build (regions, canonicalized corners, edges, six adjacency relations,
// border-corner synthesis) → corner smoothing (interior corners move to the
// mean of their touching regions' centers; border corners are pinned).
//
// Errors: ErrNilTessellation, ErrNegativeRelaxation, ErrNilSource, or a
// wrapped tessellation-source failure from a relaxation pass. There is no
// partial result: Build returns either a complete graph or an error.
func Build(t tessellation.Tessellation, opts ...Option) (*Graph, error) {
	if t == nil {
		return nil, ErrNilTessellation
	}
	cfg := newBuildConfig(opts...)
	if cfg.relaxations < 0 {
		return nil, ErrNegativeRelaxation
	}
	if cfg.source == nil {
		return nil, ErrNilSource
	}

	t, err := relaxSites(t, cfg.relaxations, cfg.source, cfg.logger)
	if err != nil {
		return nil, fmt.Errorf("dualgraph: Build: %w", err)
	}

	b := newBuilder(t.Bounds())
	b.build(t)

	g := b.graph
	g.smoothCorners()

	cfg.logger.Debug("dual graph built",
		zap.Int("regions", len(g.regions)),
		zap.Int("corners", len(g.corners)),
		zap.Int("edges", len(g.edges)),
	)
	return g, nil
}
