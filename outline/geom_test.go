package outline

import (
	"math"
	"testing"
)

const (
	eps = 0.00001
)

func TestEuclideanDistance(t *testing.T) {
	p1 := Point{X: 341, Y: 264}
	p2 := Point{X: 421, Y: 427}
	correnctAnswer := 181.57367
	answer := euclideanDistance(p1, p2)
	if math.Abs(answer-correnctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correnctAnswer)
	}
}

func TestPointToSegmentDistance(t *testing.T) {
	cases := []struct {
		name       string
		pt         Point
		start, end Point
		expected   float64
	}{
		{"perpendicular", NewPoint(0, 1), NewPoint(0, 0), NewPoint(2, 0), 1.0},
		{"beyond start", NewPoint(-1, 0), NewPoint(0, 0), NewPoint(2, 0), 1.0},
		{"beyond end", NewPoint(5, 4), NewPoint(0, 0), NewPoint(2, 0), 5.0},
		{"degenerate segment", NewPoint(0, 0), NewPoint(0, 0), NewPoint(0, 0), 0.0},
		{"degenerate segment away", NewPoint(3, 4), NewPoint(0, 0), NewPoint(0, 0), 5.0},
		{"on segment", NewPoint(1, 1), NewPoint(0, 0), NewPoint(2, 2), 0.0},
		{"diagonal", NewPoint(0, 2), NewPoint(0, 0), NewPoint(2, 2), math.Sqrt2},
	}
	for _, c := range cases {
		answer := PointToSegmentDistance(c.pt, c.start, c.end)
		if math.Abs(answer-c.expected) > eps {
			t.Errorf("%s: wrong answer: %v, correct answer: %v", c.name, answer, c.expected)
		}
	}
}

func TestPolygonArea(t *testing.T) {
	square := []Point2D{{0, 0}, {4, 0}, {4, 3}, {0, 3}}
	if area := PolygonArea(square); math.Abs(area-12) > eps {
		t.Errorf("Wrong area: %v, correct answer: 12", area)
	}
	// Opposite winding must give the same unsigned area
	reversed := []Point2D{{0, 3}, {4, 3}, {4, 0}, {0, 0}}
	if area := PolygonArea(reversed); math.Abs(area-12) > eps {
		t.Errorf("Wrong area for reversed polygon: %v, correct answer: 12", area)
	}
	if area := PolygonArea([]Point2D{{0, 0}, {5, 5}}); area != 0 {
		t.Errorf("Segment should have zero area, got %v", area)
	}
}

func TestPolygonPerimeter(t *testing.T) {
	square := []Point2D{{0, 0}, {4, 0}, {4, 3}, {0, 3}}
	if perimeter := PolygonPerimeter(square); math.Abs(perimeter-14) > eps {
		t.Errorf("Wrong perimeter: %v, correct answer: 14", perimeter)
	}
	if perimeter := PolygonPerimeter([]Point2D{{1, 1}}); perimeter != 0 {
		t.Errorf("Single point should have zero perimeter, got %v", perimeter)
	}
}

func TestBoundingBox(t *testing.T) {
	bbox := BoundingBox([]Point2D{{3, 7}, {10, 2}, {5, 5}})
	expected := Rectangle{X: 3, Y: 2, Width: 7, Height: 5}
	if bbox != expected {
		t.Errorf("Expected bbox %v, got %v", expected, bbox)
	}
	if bbox := BoundingBox([]Point2D{{4, 4}}); bbox != (Rectangle{X: 4, Y: 4}) {
		t.Errorf("Expected zero-size bbox at the single point, got %v", bbox)
	}
	if bbox := BoundingBox(nil); bbox != (Rectangle{}) {
		t.Errorf("Expected zero bbox for empty input, got %v", bbox)
	}
}
