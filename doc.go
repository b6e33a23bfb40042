// Package polyworld builds polygonal world maps out of Voronoi tessellations.
//
// 🗺 What is PolyWorld?
//
//	A small, deterministic library that turns a set of seed points into the
//	linked planar graph used by procedural terrain generators:
//		• geom/         — 2D point, segment and rectangle value types
//		• tessellation/ — Voronoi/Delaunay source (Fortune sweep backend)
//		• dualgraph/    — the Region/Corner/Edge dual graph, Lloyd relaxation
//		                  and corner smoothing
//		• biome/        — Whittaker-style classification of finished Regions
//
// The heart of the library is dualgraph.Build: it optionally relaxes the
// sites (Lloyd), fuses the Voronoi diagram and its Delaunay dual into one
// bidirectionally linked graph with six adjacency relations, synthesizes the
// missing bounding-box corners, and smooths interior corners toward the
// centroids of their touching cells.
//
// Quick start:
//
//	tess, err := tessellation.Compute(sites, geom.NewRect(0, 0, 512, 512))
//	if err != nil { ... }
//	g, err := dualgraph.Build(tess, dualgraph.WithLloydRelaxation(2))
//	if err != nil { ... }
//	for _, r := range g.Regions() {
//		r.Elevation = myElevationModel(r)
//	}
//
// The finished graph is handed out read-only; semantic fields on Region
// (elevation, moisture, water flags) are storage the library allocates for
// downstream classifiers such as biome.Classify.
package polyworld
