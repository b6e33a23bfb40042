// Package dualgraph fuses a Voronoi diagram and its Delaunay dual into one
// bidirectionally linked planar graph of Regions, Corners and Edges — the
// mesh procedural terrain generators hang biomes, rivers and elevation on.
//
// What:
//
//   - Region: one Voronoi cell / site, with neighbor, border-edge and corner
//     sets plus the numeric fields downstream classifiers write.
//   - Corner: one canonicalized Voronoi vertex (a Delaunay circumcenter),
//     with adjacent-corner, touching-region and incident-edge sets.
//   - Edge: one dual record joining up to two Corners and up to two Regions.
//   - Build: optional Lloyd relaxation of the sites, then one build pass
//     that creates every entity and links six adjacency relations, then one
//     smoothing pass that centers interior corners between their cells.
//
// Why:
//
//   - Map generators need both directions of every relation (cell→vertex and
//     vertex→cell, cell→cell and vertex→vertex) without re-deriving them.
//   - Floating-point Voronoi vertices arrive once per incident edge; corners
//     canonicalize them to a single identity so adjacency is by object.
//   - The raw diagram never yields the four bounding-rectangle corners;
//     border synthesis closes the cells that sit in the rectangle corners.
//
// Complexity:
//
//   - Build: O(S + E·d) for S sites and E dual edges, where d is the small
//     per-entity adjacency degree scanned on deduplicated insertion.
//   - Lloyd relaxation: N × (tessellation cost + O(S)).
//   - Corner smoothing: O(C·d) for C corners.
//
// Errors:
//
//	ErrNilTessellation    - Build received a nil tessellation.
//	ErrNegativeRelaxation - WithLloydRelaxation was given a negative count.
//	ErrNilSource          - WithSource was given a nil source.
//
// Tessellation-source failures during relaxation propagate wrapped; there is
// no partial graph. Malformed dual edges (a Delaunay endpoint matching no
// site, or a non-finite Voronoi endpoint) degrade to nil references on the
// Edge and are never an error.
package dualgraph
