package outline

// SimplifyRDP simplifies polyline with Ramer-Douglas-Peucker algorithm.
// First and last points are anchors of the top-level segment and always survive.
// Interior point is kept only when it deviates from its anchor segment by more than epsilon;
// when several points share the maximum deviation the one with lowest index is picked.
// Input with less than 3 points is returned as is. Returned slice never shares memory with input.
func SimplifyRDP(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		result := make([]Point, len(points))
		copy(result, points)
		return result
	}
	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	found := 2 + rdpMark(points, 0, len(points)-1, epsilon, keep)

	result := make([]Point, 0, found)
	for i, pt := range points {
		if keep[i] {
			result = append(result, pt)
		}
	}
	return result
}

// rdpMark marks points to keep strictly between start and end and returns number of marked points.
// The farthest point closes the left half and opens the right one, so it is marked once.
func rdpMark(points []Point, start, end int, epsilon float64, keep []bool) int {
	if end-start < 2 {
		return 0
	}
	dmax := 0.0
	index := -1
	for i := start + 1; i < end; i++ {
		d := PointToSegmentDistance(points[i], points[start], points[end])
		if index == -1 || d > dmax {
			index = i
			dmax = d
		}
	}
	if dmax <= epsilon {
		return 0
	}
	keep[index] = true
	return 1 + rdpMark(points, start, index, epsilon, keep) + rdpMark(points, index, end, epsilon, keep)
}

// EnsureEndpoints returns simplified sequence which starts with first and ends with last.
// Missing endpoints are inserted; input is not modified.
func EnsureEndpoints(simplified []Point, first, last Point) []Point {
	result := make([]Point, 0, len(simplified)+2)
	if len(simplified) == 0 || simplified[0] != first {
		result = append(result, first)
	}
	result = append(result, simplified...)
	if result[len(result)-1] != last {
		result = append(result, last)
	}
	return result
}
