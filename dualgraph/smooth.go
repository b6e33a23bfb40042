package dualgraph

import "github.com/ar0ne/PolyWorld/geom"

// smoothCorners relocates every interior corner to the mean of its touching
// regions' centers. Averaging nearby centers evens out edge lengths at the
// cost of exact Voronoi duality; border corners stay pinned so the outline
// of the map is preserved.
//
// Two passes: all new locations are computed from the original region
// centers first, then assigned, so no corner's move feeds into another's.
func (g *Graph) smoothCorners() {
	moved := make([]geom.Point, len(g.corners))
	for i, c := range g.corners {
		if c.Border || len(c.touches) == 0 {
			moved[i] = c.Location
			continue
		}
		var x, y float64
		for _, r := range c.touches {
			x += r.Center.X
			y += r.Center.Y
		}
		n := float64(len(c.touches))
		moved[i] = geom.Point{X: x / n, Y: y / n}
	}
	for i, c := range g.corners {
		c.Location = moved[i]
	}
}
