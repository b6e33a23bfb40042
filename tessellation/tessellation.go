// Package tessellation produces the Voronoi/Delaunay input that the
// dualgraph package consumes.
//
// What:
//
//   - Tessellation is the read interface over one computed diagram: the site
//     coordinates, each site's cell polygon, the dual-edge records and the
//     bounding rectangle.
//   - DualEdge pairs one Voronoi boundary segment with the Delaunay segment
//     connecting the two sites that generated it.
//   - Compute is the default Source, backed by the Fortune-sweep
//     implementation of github.com/zzwx/voronoi.
//
// Why an interface: Lloyd relaxation re-tessellates the same bounds several
// times and tests substitute hand-built fixtures, so the dual graph builder
// never depends on the sweep library directly.
//
// Errors:
//
//	ErrNoSites       - the site set is empty.
//	ErrInvalidBounds - the bounding rectangle has non-positive extent.
package tessellation

import (
	"errors"

	"github.com/zzwx/voronoi"

	"github.com/ar0ne/PolyWorld/geom"
)

// Sentinel errors for tessellation computation.
var (
	// ErrNoSites indicates Compute was called with an empty site set.
	ErrNoSites = errors.New("tessellation: site set is empty")

	// ErrInvalidBounds indicates a bounding rectangle with non-positive width or height.
	ErrInvalidBounds = errors.New("tessellation: bounding rectangle has non-positive extent")
)

// DualEdge is one record of the Voronoi/Delaunay duality: Voronoi is the
// boundary segment between two cells, Delaunay the segment connecting the
// two sites that generated it.
type DualEdge struct {
	Voronoi  geom.Segment
	Delaunay geom.Segment
}

// Tessellation is one immutable diagram snapshot.
//
// CellPolygon returns the ordered vertices of one site's Voronoi cell,
// closed against the bounding rectangle; it returns nil for an unknown site.
// DualEdges returns only edges whose two generating sites are both known —
// the segments that merely close cells against the bounding box are not part
// of the dual and are visible only through the cell polygons.
type Tessellation interface {
	// SiteCoords returns the site coordinates in diagram order.
	SiteCoords() []geom.Point
	// CellPolygon returns the ordered cell polygon of the given site.
	CellPolygon(site geom.Point) []geom.Point
	// DualEdges returns all Voronoi/Delaunay dual-edge records.
	DualEdges() []DualEdge
	// Bounds returns the bounding rectangle the diagram was clipped to.
	Bounds() geom.Rect
}

// Source computes a tessellation for a site set within bounds. The Lloyd
// relaxation driver re-invokes a Source once per pass.
type Source func(sites []geom.Point, bounds geom.Rect) (Tessellation, error)

// diagram adapts a computed voronoi.Diagram to the Tessellation interface.
type diagram struct {
	bounds geom.Rect
	sites  []geom.Point
	cells  map[geom.Point]*voronoi.Cell
	edges  []DualEdge
}

// Compute runs the Fortune sweep over sites within bounds and returns the
// resulting Tessellation. Duplicate sites collapse to one cell, so the
// diagram may hold fewer sites than were passed in.
// Complexity: O(n log n) for n sites.
func Compute(sites []geom.Point, bounds geom.Rect) (Tessellation, error) {
	if len(sites) == 0 {
		return nil, ErrNoSites
	}
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return nil, ErrInvalidBounds
	}

	in := make([]voronoi.Vertex, len(sites))
	for i, p := range sites {
		in[i] = voronoi.Vertex{X: p.X, Y: p.Y}
	}
	bbox := voronoi.NewBBox(bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)

	// closeCells=true so every cell polygon is closed against the bounding
	// box; Lloyd centroids need the full ring, not just the dual segments.
	d := voronoi.ComputeDiagram(in, bbox, true)

	t := &diagram{
		bounds: bounds,
		sites:  make([]geom.Point, 0, len(d.Cells)),
		cells:  make(map[geom.Point]*voronoi.Cell, len(d.Cells)),
	}
	for _, c := range d.Cells {
		site := geom.Point{X: c.Site.X, Y: c.Site.Y}
		t.sites = append(t.sites, site)
		t.cells[site] = c
	}
	for _, e := range d.Edges {
		if e.LeftCell == nil || e.RightCell == nil {
			continue // border-closing segment, not a dual edge
		}
		t.edges = append(t.edges, DualEdge{
			Voronoi: geom.Segment{
				A: geom.Point{X: e.Va.X, Y: e.Va.Y},
				B: geom.Point{X: e.Vb.X, Y: e.Vb.Y},
			},
			Delaunay: geom.Segment{
				A: geom.Point{X: e.LeftCell.Site.X, Y: e.LeftCell.Site.Y},
				B: geom.Point{X: e.RightCell.Site.X, Y: e.RightCell.Site.Y},
			},
		})
	}
	return t, nil
}

// SiteCoords returns a copy of the site coordinates in diagram order.
func (t *diagram) SiteCoords() []geom.Point {
	out := make([]geom.Point, len(t.sites))
	copy(out, t.sites)
	return out
}

// CellPolygon returns the ordered vertices of site's cell, or nil if site is
// not part of this diagram.
func (t *diagram) CellPolygon(site geom.Point) []geom.Point {
	c, ok := t.cells[site]
	if !ok {
		return nil
	}
	poly := make([]geom.Point, 0, len(c.HalfEdges))
	for _, he := range c.HalfEdges {
		v := he.StartPoint()
		poly = append(poly, geom.Point{X: v.X, Y: v.Y})
	}
	return poly
}

// DualEdges returns a copy of the dual-edge records of this diagram.
func (t *diagram) DualEdges() []DualEdge {
	out := make([]DualEdge, len(t.edges))
	copy(out, t.edges)
	return out
}

// Bounds returns the clipping rectangle.
func (t *diagram) Bounds() geom.Rect {
	return t.bounds
}
