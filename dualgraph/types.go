// Package dualgraph entity types and sentinel errors.
//
// Region, Corner and Edge form a cyclic pointer structure owned by one
// Graph. Adjacency slices are unexported and deduplicated on insertion; the
// read accessors return the live slices, which callers must treat as
// read-only (see doc.go for the single-writer convention).
package dualgraph

import (
	"errors"

	"github.com/ar0ne/PolyWorld/geom"
)

// Sentinel errors for graph construction.
var (
	// ErrNilTessellation indicates Build was called with a nil tessellation.
	ErrNilTessellation = errors.New("dualgraph: nil tessellation")

	// ErrNegativeRelaxation indicates a negative Lloyd relaxation count.
	ErrNegativeRelaxation = errors.New("dualgraph: negative relaxation count")

	// ErrNilSource indicates WithSource was given a nil tessellation source.
	ErrNilSource = errors.New("dualgraph: nil tessellation source")
)

// Region is one Voronoi cell and its generating site.
//
// Center is the site coordinate; Lloyd relaxation settles it before the
// graph is built and it never moves afterwards. Elevation, Moisture and the
// three water flags are storage for downstream classifiers — the builder
// allocates them zeroed and never writes them.
type Region struct {
	Center geom.Point

	Elevation float64
	Moisture  float64
	Ocean     bool
	Water     bool
	Coast     bool

	neighbors []*Region
	borders   []*Edge
	corners   []*Corner
}

// Neighbors returns the Regions sharing an Edge with r. Read-only.
func (r *Region) Neighbors() []*Region { return r.neighbors }

// Borders returns the Edges bounding r. Read-only.
func (r *Region) Borders() []*Edge { return r.borders }

// Corners returns the Corners of r's polygon. Read-only.
func (r *Region) Corners() []*Corner { return r.corners }

// addNeighbor links n as a neighbor of r unless nil or already present.
func (r *Region) addNeighbor(n *Region) {
	if n == nil {
		return
	}
	for _, have := range r.neighbors {
		if have == n {
			return
		}
	}
	r.neighbors = append(r.neighbors, n)
}

// addBorder links e as a bounding edge of r unless nil or already present.
func (r *Region) addBorder(e *Edge) {
	if e == nil {
		return
	}
	for _, have := range r.borders {
		if have == e {
			return
		}
	}
	r.borders = append(r.borders, e)
}

// addCorner links c to r's polygon unless nil or already present.
func (r *Region) addCorner(c *Corner) {
	if c == nil {
		return
	}
	for _, have := range r.corners {
		if have == c {
			return
		}
	}
	r.corners = append(r.corners, c)
}

// Corner is one vertex of the planar graph, canonicalized so geometrically
// identical Voronoi vertices from different dual edges share one object.
//
// Location is mutated exactly once after the build, by corner smoothing;
// corners with Border set are pinned and never relocated.
type Corner struct {
	Location geom.Point
	Border   bool

	adjacent  []*Corner
	touches   []*Region
	protrudes []*Edge
}

// Adjacent returns the Corners connected to c by an Edge. Read-only.
func (c *Corner) Adjacent() []*Corner { return c.adjacent }

// Touches returns the Regions whose polygons meet at c. Read-only.
func (c *Corner) Touches() []*Region { return c.touches }

// Protrudes returns the Edges incident to c. Read-only.
func (c *Corner) Protrudes() []*Edge { return c.protrudes }

// EdgeTo returns the Edge connecting c and other by scanning c's incident
// edges, or nil when no such Edge exists. Used by downstream slope and
// river-flow passes.
// Complexity: O(deg(c)).
func (c *Corner) EdgeTo(other *Corner) *Edge {
	if other == nil {
		return nil
	}
	for _, e := range c.protrudes {
		if e.Corner0 == other || e.Corner1 == other {
			return e
		}
	}
	return nil
}

// addAdjacent links a as adjacent to c unless nil or already present.
func (c *Corner) addAdjacent(a *Corner) {
	if a == nil {
		return
	}
	for _, have := range c.adjacent {
		if have == a {
			return
		}
	}
	c.adjacent = append(c.adjacent, a)
}

// addTouches links r as touching c unless nil or already present.
func (c *Corner) addTouches(r *Region) {
	if r == nil {
		return
	}
	for _, have := range c.touches {
		if have == r {
			return
		}
	}
	c.touches = append(c.touches, r)
}

// addProtrudes links e as incident to c unless nil or already present.
func (c *Corner) addProtrudes(e *Edge) {
	if e == nil {
		return
	}
	for _, have := range c.protrudes {
		if have == e {
			return
		}
	}
	c.protrudes = append(c.protrudes, e)
}

// Edge is one segment of the planar graph, dual to one Delaunay connection.
// Any of the four references may be nil: corners when the Voronoi edge was
// unbounded, regions when a Delaunay endpoint matched no site. An Edge is
// immutable after creation.
type Edge struct {
	Corner0 *Corner
	Corner1 *Corner
	Region0 *Region
	Region1 *Region
}
