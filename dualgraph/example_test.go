package dualgraph_test

import (
	"fmt"

	"github.com/ar0ne/PolyWorld/dualgraph"
	"github.com/ar0ne/PolyWorld/geom"
	"github.com/ar0ne/PolyWorld/tessellation"
)

// ExampleBuild constructs the dual graph for four sites in the quadrant
// centers of a 100×100 world and reports its shape.
func ExampleBuild() {
	sites := []geom.Point{
		{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 10, Y: 90}, {X: 90, Y: 90},
	}
	tess, err := tessellation.Compute(sites, geom.NewRect(0, 0, 100, 100))
	if err != nil {
		fmt.Println("tessellation:", err)
		return
	}

	g, err := dualgraph.Build(tess)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println("regions:", len(g.Regions()))
	var borderCorners int
	for _, c := range g.Corners() {
		if c.Border {
			borderCorners++
		}
	}
	fmt.Println("all box corners present:", borderCorners >= 4)

	// Output:
	// regions: 4
	// all box corners present: true
}

// ExampleBuild_lloydRelaxation relaxes a skewed site set before building, so
// downstream consumers get more uniform cells.
func ExampleBuild_lloydRelaxation() {
	sites := []geom.Point{
		{X: 5, Y: 5}, {X: 8, Y: 6}, {X: 12, Y: 7}, {X: 90, Y: 90},
	}
	tess, err := tessellation.Compute(sites, geom.NewRect(0, 0, 100, 100))
	if err != nil {
		fmt.Println("tessellation:", err)
		return
	}

	g, err := dualgraph.Build(tess, dualgraph.WithLloydRelaxation(2))
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	fmt.Println("regions:", len(g.Regions()))

	// Output:
	// regions: 4
}
