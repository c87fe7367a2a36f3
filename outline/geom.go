package outline

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D coordinate in image space. Simplification works on Points
// so fractional input is allowed.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (point Point) vec() r2.Vec {
	return r2.Vec{X: point.X, Y: point.Y}
}

// Point2D is a pixel coordinate produced by boundary extraction
type Point2D struct {
	X int
	Y int
}

// Point returns pixel coordinate as geometric point
func (point Point2D) Point() Point {
	return Point{
		X: float64(point.X),
		Y: float64(point.Y),
	}
}

// SizedPoint is a pixel coordinate with a rendering size hint.
// Field order matters: it is the order of keys in emitted JSON.
type SizedPoint struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
}

// Point returns coordinates of sized point as geometric point
func (point SizedPoint) Point() Point {
	return Point{
		X: float64(point.X),
		Y: float64(point.Y),
	}
}

// Point2D drops size attribute
func (point SizedPoint) Point2D() Point2D {
	return Point2D{
		X: point.X,
		Y: point.Y,
	}
}

func euclideanDistance(p1, p2 Point) float64 {
	return r2.Norm(r2.Sub(p1.vec(), p2.vec()))
}

// PointToSegmentDistance returns Euclidean distance from pt to the closed segment [start, end].
// Zero-length segment degrades to distance between pt and start.
func PointToSegmentDistance(pt, start, end Point) float64 {
	segment := r2.Sub(end.vec(), start.vec())
	lengthSquared := r2.Dot(segment, segment)
	if lengthSquared == 0 {
		return euclideanDistance(pt, start)
	}
	t := r2.Dot(r2.Sub(pt.vec(), start.vec()), segment) / lengthSquared
	if t < 0 {
		return euclideanDistance(pt, start)
	}
	if t > 1 {
		return euclideanDistance(pt, end)
	}
	projected := r2.Add(start.vec(), r2.Scale(t, segment))
	return r2.Norm(r2.Sub(pt.vec(), projected))
}

// ring converts implicitly closed sequence of pixels into explicitly closed orb.Ring
func ring(points []Point2D) orb.Ring {
	r := make(orb.Ring, 0, len(points)+1)
	for _, pt := range points {
		r = append(r, orb.Point{float64(pt.X), float64(pt.Y)})
	}
	if len(r) > 0 {
		r = append(r, r[0])
	}
	return r
}

// PolygonArea returns unsigned area of the polygon described by implicitly closed sequence of points.
// Sequences shorter than 3 points have zero area.
func PolygonArea(points []Point2D) float64 {
	if len(points) < 3 {
		return 0
	}
	return math.Abs(planar.Area(ring(points)))
}

// PolygonPerimeter returns length of the implicitly closed polyline (including segment from last point back to first)
func PolygonPerimeter(points []Point2D) float64 {
	if len(points) < 2 {
		return 0
	}
	return planar.Length(ring(points))
}

// Rectangle is an axis-aligned bounding box
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// BoundingBox returns tight bounding box of given pixels. Empty input gives zero Rectangle
func BoundingBox(points []Point2D) Rectangle {
	if len(points) == 0 {
		return Rectangle{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range points[1:] {
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}
	return Rectangle{
		X:      float64(minX),
		Y:      float64(minY),
		Width:  float64(maxX - minX),
		Height: float64(maxY - minY),
	}
}
