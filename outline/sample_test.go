package outline

import (
	"testing"

	"github.com/pkg/errors"
)

// sequenceSource replays fixed values
type sequenceSource struct {
	values []int
	pos    int
}

func (s *sequenceSource) IntN(n int) int {
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}

func makeLine(n int) []Point2D {
	points := make([]Point2D, n)
	for i := range points {
		points[i] = Point2D{X: i, Y: 2 * i}
	}
	return points
}

func TestSubsampleLength(t *testing.T) {
	cases := []struct {
		n, step, expected int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{56, 5, 12},
		{10, 1, 10},
		{3, 10, 1},
	}
	for _, c := range cases {
		sampled, err := Subsample(makeLine(c.n), c.step, GlobalSizeSource())
		if err != nil {
			t.Fatal(err)
		}
		if len(sampled) != c.expected {
			t.Errorf("n=%d step=%d: expected %d points, got %d", c.n, c.step, c.expected, len(sampled))
		}
	}
}

func TestSubsampleOrderAndSizes(t *testing.T) {
	points := makeLine(12)
	src := &sequenceSource{values: []int{0, 1, 2, 5}}
	sampled, err := Subsample(points, 3, src)
	if err != nil {
		t.Fatal(err)
	}
	expected := []SizedPoint{
		{X: 0, Y: 0, Size: 3},
		{X: 3, Y: 6, Size: 4},
		{X: 6, Y: 12, Size: 5},
		{X: 9, Y: 18, Size: 5},
	}
	if len(sampled) != len(expected) {
		t.Fatalf("Expected %d points, got %d", len(expected), len(sampled))
	}
	for i := range expected {
		if sampled[i] != expected[i] {
			t.Errorf("Point #%d: expected %v, got %v", i, expected[i], sampled[i])
		}
	}
}

func TestSubsampleSizeRange(t *testing.T) {
	sampled, err := Subsample(makeLine(1000), 1, GlobalSizeSource())
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[int]bool)
	for _, pt := range sampled {
		if pt.Size < MinSize || pt.Size > MaxSize {
			t.Fatalf("Size out of range: %d", pt.Size)
		}
		seen[pt.Size] = true
	}
	if len(seen) != MaxSize-MinSize+1 {
		t.Errorf("Expected every size to show up in 1000 draws, got %v", seen)
	}
}

func TestSeededSizeSourceReproducible(t *testing.T) {
	points := makeLine(50)
	a, err := Subsample(points, 2, NewSeededSizeSource(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Subsample(points, 2, NewSeededSizeSource(7))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Point #%d differs between equally seeded runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSubsampleInvalidStep(t *testing.T) {
	for _, step := range []int{0, -3} {
		sampled, err := Subsample(makeLine(10), step, GlobalSizeSource())
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("step=%d: expected ErrInvalidConfig, got %v", step, err)
		}
		if sampled != nil {
			t.Errorf("step=%d: expected no points, got %v", step, sampled)
		}
	}
}

func TestSubsampleNilSizes(t *testing.T) {
	sampled, err := Subsample(makeLine(10), 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(sampled) != 5 {
		t.Fatalf("Expected 5 points, got %d", len(sampled))
	}
	for _, pt := range sampled {
		if pt.Size < MinSize || pt.Size > MaxSize {
			t.Errorf("Size out of range: %v", pt)
		}
	}
}
