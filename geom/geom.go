// Package geom defines the small set of 2D value types shared by the
// tessellation and dualgraph packages: Point, Segment and Rect, plus the
// polygon helpers (centroid, shoelace area) that Lloyd relaxation and the
// corner smoother are built on.
//
// All types are plain comparable values. Point equality is exact float64
// equality, which makes Point usable as a map key; the dualgraph package
// relies on this to resolve Delaunay endpoints back to their sites.
package geom

// Point is a 2D coordinate. The zero value is the origin.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Rect is an axis-aligned rectangle given by its min/max coordinates.
// A Rect is valid when MinX < MaxX and MinY < MaxY.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect returns the rectangle spanning (minX,minY)-(maxX,maxY).
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Width returns the horizontal extent of r.
// Complexity: O(1).
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
// Complexity: O(1).
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether p lies inside r, boundary included.
// Complexity: O(1).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Centroid returns the arithmetic mean of pts.
//
// Precondition: pts is non-empty. The tessellation source guarantees every
// site owns a non-empty cell polygon, so callers do not re-validate here.
// Complexity: O(n).
func Centroid(pts []Point) Point {
	var x, y float64
	for _, p := range pts {
		x += p.X
		y += p.Y
	}
	n := float64(len(pts))
	return Point{X: x / n, Y: y / n}
}

// PolygonArea returns the absolute area of the simple polygon pts via the
// shoelace formula. Vertex order (CW or CCW) does not affect the result.
// Returns 0 for fewer than three vertices.
// Complexity: O(n).
func PolygonArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
