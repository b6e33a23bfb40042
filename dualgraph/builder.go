package dualgraph

import (
	"math"

	"github.com/ar0ne/PolyWorld/geom"
	"github.com/ar0ne/PolyWorld/tessellation"
)

// borderTolerance is the distance (in world units) within which a corner
// counts as lying on a bounding-rectangle side. Fixed regardless of world
// scale.
const borderTolerance = 1.0

// builder accumulates one Graph during a single build pass.
type builder struct {
	graph *Graph

	// regionIndex resolves Delaunay endpoints back to their Regions by
	// exact site coordinate.
	regionIndex map[geom.Point]*Region

	// cornerIndex canonicalizes Voronoi vertices: every point discretizing
	// to the same key resolves to the same Corner object.
	cornerIndex map[int]*Corner
}

func newBuilder(bounds geom.Rect) *builder {
	return &builder{
		graph:       &Graph{bounds: bounds},
		regionIndex: make(map[geom.Point]*Region),
		cornerIndex: make(map[int]*Corner),
	}
}

// build runs the five construction steps over one tessellation snapshot:
// regions, corners+edges, adjacency linking, border synthesis.
func (b *builder) build(t tessellation.Tessellation) {
	for _, site := range t.SiteCoords() {
		r := &Region{Center: site}
		b.graph.regions = append(b.graph.regions, r)
		b.regionIndex[site] = r
	}

	// Touch every cell polygon once before reading dual edges; some sources
	// materialize a site's polygon lazily on first access.
	for _, r := range b.graph.regions {
		t.CellPolygon(r.Center)
	}

	for _, rec := range t.DualEdges() {
		c0 := b.makeCorner(rec.Voronoi.A)
		c1 := b.makeCorner(rec.Voronoi.B)
		r0 := b.regionIndex[rec.Delaunay.A]
		r1 := b.regionIndex[rec.Delaunay.B]

		e := &Edge{Corner0: c0, Corner1: c1, Region0: r0, Region1: r1}
		b.graph.edges = append(b.graph.edges, e)
		link(e)
	}

	b.synthesizeBorderCorners(t)
}

// link wires the six adjacency relations of one Edge. Every insertion is
// deduplicated by the add helpers, and nil references are skipped there, so
// a malformed edge degrades to fewer links rather than a failure.
func link(e *Edge) {
	// Regions point to edges. Corners point to edges.
	if e.Region0 != nil {
		e.Region0.addBorder(e)
	}
	if e.Region1 != nil {
		e.Region1.addBorder(e)
	}
	if e.Corner0 != nil {
		e.Corner0.addProtrudes(e)
	}
	if e.Corner1 != nil {
		e.Corner1.addProtrudes(e)
	}

	// Regions point to regions.
	if e.Region0 != nil && e.Region1 != nil {
		e.Region0.addNeighbor(e.Region1)
		e.Region1.addNeighbor(e.Region0)
	}

	// Corners point to corners.
	if e.Corner0 != nil && e.Corner1 != nil {
		e.Corner0.addAdjacent(e.Corner1)
		e.Corner1.addAdjacent(e.Corner0)
	}

	// Regions point to corners.
	if e.Region0 != nil {
		e.Region0.addCorner(e.Corner0)
		e.Region0.addCorner(e.Corner1)
	}
	if e.Region1 != nil {
		e.Region1.addCorner(e.Corner0)
		e.Region1.addCorner(e.Corner1)
	}

	// Corners point to regions.
	if e.Corner0 != nil {
		e.Corner0.addTouches(e.Region0)
		e.Corner0.addTouches(e.Region1)
	}
	if e.Corner1 != nil {
		e.Corner1.addTouches(e.Region0)
		e.Corner1.addTouches(e.Region1)
	}
}

// makeCorner resolves p to its canonical Corner, creating it on first
// encounter. Returns nil for a non-finite point (an unbounded Voronoi edge).
//
// The key truncates p to its unit cell: floor(x) + floor(y)*width*2 for the
// non-negative coordinates the bounding rectangle admits. Two distinct
// vertices inside the same unit cell collapse to one Corner. That precision
// loss is accepted, not fixed: changing the key scheme would re-identify
// corners in every previously generated world.
func (b *builder) makeCorner(p geom.Point) *Corner {
	if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return nil
	}
	key := int(float64(int(p.X)) + float64(int(p.Y))*b.graph.bounds.Width()*2)
	if c, ok := b.cornerIndex[key]; ok {
		return c
	}
	c := &Corner{Location: p, Border: liesOnBounds(b.graph.bounds, p)}
	b.graph.corners = append(b.graph.corners, c)
	b.cornerIndex[key] = c
	return c
}

// liesOnBounds reports whether p is within borderTolerance of any side of r.
func liesOnBounds(r geom.Rect, p geom.Point) bool {
	return closeEnough(p.X, r.MinX, borderTolerance) ||
		closeEnough(p.Y, r.MinY, borderTolerance) ||
		closeEnough(p.X, r.MaxX, borderTolerance) ||
		closeEnough(p.Y, r.MaxY, borderTolerance)
}

func closeEnough(a, b, diff float64) bool {
	return math.Abs(a-b) <= diff
}

// synthesizeBorderCorners closes the cells sitting in the four corners of
// the bounding rectangle. The raw tessellation yields no vertex at a
// rectangle corner, so a region whose linked corners reach two adjacent
// sides gets one new border Corner at that rectangle corner.
//
// A region with no linked corners at all (no dual edge touches it — a
// single-site world has none) is probed through its cell polygon instead,
// so the lone cell spanning the whole rectangle still earns its four
// corners.
func (b *builder) synthesizeBorderCorners(t tessellation.Tessellation) {
	bounds := b.graph.bounds
	for _, r := range b.graph.regions {
		locs := make([]geom.Point, 0, len(r.corners))
		for _, c := range r.corners {
			locs = append(locs, c.Location)
		}
		if len(locs) == 0 {
			locs = t.CellPolygon(r.Center)
		}

		var onLeft, onTop, onRight, onBottom bool
		for _, p := range locs {
			onLeft = onLeft || closeEnough(p.X, bounds.MinX, borderTolerance)
			onTop = onTop || closeEnough(p.Y, bounds.MinY, borderTolerance)
			onRight = onRight || closeEnough(p.X, bounds.MaxX, borderTolerance)
			onBottom = onBottom || closeEnough(p.Y, bounds.MaxY, borderTolerance)
		}

		if onLeft && onTop {
			b.addBorderCorner(r, geom.Point{X: bounds.MinX, Y: bounds.MinY})
		}
		if onLeft && onBottom {
			b.addBorderCorner(r, geom.Point{X: bounds.MinX, Y: bounds.MaxY})
		}
		if onRight && onTop {
			b.addBorderCorner(r, geom.Point{X: bounds.MaxX, Y: bounds.MinY})
		}
		if onRight && onBottom {
			b.addBorderCorner(r, geom.Point{X: bounds.MaxX, Y: bounds.MaxY})
		}
	}
}

// addBorderCorner appends one synthesized border Corner at p and attaches it
// to r's polygon.
func (b *builder) addBorderCorner(r *Region, p geom.Point) {
	c := &Corner{Location: p, Border: true}
	b.graph.corners = append(b.graph.corners, c)
	r.addCorner(c)
}
