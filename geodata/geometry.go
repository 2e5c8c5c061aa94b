// Package geodata owns the authoritative registry of named map geometry and
// the resolution of user region options against it.
//
// Host code registers map records (eagerly or through lazy providers); the
// model layer calls Resolve on every option update to reconcile the user's
// sparse region list with the registry's known-region set. Geometry parsing
// is out of scope: the registry accepts already-built polygon rings.
package geodata

import "math"

// Point is a coordinate in map space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Union returns the smallest rect covering both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Center returns the midpoint of the rect, used as the default label anchor.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Polygon is one closed ring with optional interior holes. Rings are not
// required to repeat the first point.
type Polygon struct {
	Exterior  []Point   `json:"exterior"`
	Interiors [][]Point `json:"interiors,omitempty"`
}

// BoundingRect computes the bounding rect of the exterior ring. An empty
// polygon yields a zero rect.
func (p Polygon) BoundingRect() Rect {
	if len(p.Exterior) == 0 {
		return Rect{}
	}
	minX, minY := p.Exterior[0].X, p.Exterior[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Exterior[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Region is one named sub-area of a map: polygon geometry plus derived
// bounding information. Geometry is shared by reference after registration
// and must be treated as read-only.
type Region struct {
	Name     string    `json:"name"`
	Polygons []Polygon `json:"polygons"`
}

// BoundingRect returns the union bounding rect over all polygons.
func (r Region) BoundingRect() Rect {
	if len(r.Polygons) == 0 {
		return Rect{}
	}
	rect := r.Polygons[0].BoundingRect()
	for _, poly := range r.Polygons[1:] {
		rect = rect.Union(poly.BoundingRect())
	}
	return rect
}

// Center returns the center of the region's bounding rect.
func (r Region) Center() Point {
	return r.BoundingRect().Center()
}
