package tessellation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ar0ne/PolyWorld/geom"
	"github.com/ar0ne/PolyWorld/tessellation"
)

// TestComputeErrors verifies the input validation sentinels.
func TestComputeErrors(t *testing.T) {
	cases := []struct {
		name   string
		sites  []geom.Point
		bounds geom.Rect
		err    error
	}{
		{"NoSites", nil, geom.NewRect(0, 0, 10, 10), tessellation.ErrNoSites},
		{"ZeroWidth", []geom.Point{{X: 1, Y: 1}}, geom.NewRect(5, 0, 5, 10), tessellation.ErrInvalidBounds},
		{"NegativeHeight", []geom.Point{{X: 1, Y: 1}}, geom.NewRect(0, 10, 10, 0), tessellation.ErrInvalidBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tessellation.Compute(tc.sites, tc.bounds)
			if !errors.Is(err, tc.err) {
				t.Errorf("Compute() error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestComputeTwoSites checks the smallest non-trivial diagram: two sites
// split the box with a single dual edge, and each closed cell polygon is the
// four-vertex half of the box.
func TestComputeTwoSites(t *testing.T) {
	sites := []geom.Point{{X: 4, Y: 5}, {X: 6, Y: 5}}
	bounds := geom.NewRect(0, 0, 10, 10)

	tess, err := tessellation.Compute(sites, bounds)
	require.NoError(t, err)
	require.Equal(t, bounds, tess.Bounds())

	coords := tess.SiteCoords()
	require.Len(t, coords, 2)
	require.ElementsMatch(t, sites, coords)

	dual := tess.DualEdges()
	require.Len(t, dual, 1, "two sites share exactly one dual edge")
	require.ElementsMatch(t,
		[]geom.Point{{X: 4, Y: 5}, {X: 6, Y: 5}},
		[]geom.Point{dual[0].Delaunay.A, dual[0].Delaunay.B},
		"the Delaunay segment connects the two sites")

	// The bisector x=5 clipped to the box.
	for _, v := range []geom.Point{dual[0].Voronoi.A, dual[0].Voronoi.B} {
		require.InDelta(t, 5.0, v.X, 1e-9)
		require.True(t, bounds.Contains(v), "voronoi vertex %v outside bounds", v)
	}

	for _, site := range coords {
		poly := tess.CellPolygon(site)
		require.Len(t, poly, 4, "closed half-box cell for site %v", site)
		require.InDelta(t, 50.0, geom.PolygonArea(poly), 1e-9)
	}
}

// TestDualEdgesReturnsCopy verifies the accessor hands out a snapshot:
// mutating the returned slice must not leak into later calls.
func TestDualEdgesReturnsCopy(t *testing.T) {
	tess, err := tessellation.Compute([]geom.Point{{X: 4, Y: 5}, {X: 6, Y: 5}}, geom.NewRect(0, 0, 10, 10))
	require.NoError(t, err)

	first := tess.DualEdges()
	require.Len(t, first, 1)
	want := first[0]

	first[0] = tessellation.DualEdge{}

	second := tess.DualEdges()
	require.Len(t, second, 1)
	require.Equal(t, want, second[0])
}

// TestCellPolygonUnknownSite verifies nil for a coordinate that is not a site.
func TestCellPolygonUnknownSite(t *testing.T) {
	tess, err := tessellation.Compute([]geom.Point{{X: 4, Y: 5}, {X: 6, Y: 5}}, geom.NewRect(0, 0, 10, 10))
	require.NoError(t, err)
	require.Nil(t, tess.CellPolygon(geom.Point{X: 9, Y: 9}))
}

// TestComputeDuplicateSites verifies duplicates collapse to one cell.
func TestComputeDuplicateSites(t *testing.T) {
	sites := []geom.Point{{X: 4, Y: 5}, {X: 4, Y: 5}, {X: 6, Y: 5}}
	tess, err := tessellation.Compute(sites, geom.NewRect(0, 0, 10, 10))
	require.NoError(t, err)
	require.Len(t, tess.SiteCoords(), 2)
}

// TestDualEdgesCoverAllPairs checks that every dual edge references two known
// sites and that cell polygons tile the full bounding box area.
func TestDualEdgesCoverAllPairs(t *testing.T) {
	sites := []geom.Point{
		{X: 20, Y: 20}, {X: 80, Y: 20}, {X: 50, Y: 80}, {X: 30, Y: 60},
	}
	bounds := geom.NewRect(0, 0, 100, 100)
	tess, err := tessellation.Compute(sites, bounds)
	require.NoError(t, err)

	known := make(map[geom.Point]bool, len(sites))
	for _, s := range tess.SiteCoords() {
		known[s] = true
	}
	for _, de := range tess.DualEdges() {
		require.True(t, known[de.Delaunay.A], "unknown delaunay endpoint %v", de.Delaunay.A)
		require.True(t, known[de.Delaunay.B], "unknown delaunay endpoint %v", de.Delaunay.B)
	}

	var total float64
	for _, s := range tess.SiteCoords() {
		total += geom.PolygonArea(tess.CellPolygon(s))
	}
	require.InDelta(t, bounds.Width()*bounds.Height(), total, 1e-6,
		"closed cells tile the bounding box")
}
