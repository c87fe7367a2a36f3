package outline

// 8-neighbourhood, clockwise on screen (y axis points down): E, SE, S, SW, W, NW, N, NE
var (
	ndx = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	ndy = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

const dirWest = 4

// FindBoundaries returns outer boundary of every 8-connected foreground region of the mask.
// Regions are reported in raster order of their top-left pixel. Each boundary lists every boundary
// pixel (no chain approximation) clockwise on screen, starting at the region's top-left pixel;
// the closing segment back to the first pixel is implicit.
// Mask without foreground or without background has no boundary at all.
func FindBoundaries(m *Mask) [][]Point2D {
	total := m.width * m.height
	count := m.Count()
	if count == 0 || count == total {
		return nil
	}
	labels := make([]int, total)
	boundaries := make([][]Point2D, 0)
	label := 0
	stack := make([]int, 0, 64)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			idx := y*m.width + x
			if !m.data[idx] || labels[idx] != 0 {
				continue
			}
			label++
			stack = labelComponent(m, labels, idx, label, stack[:0])
			boundaries = append(boundaries, traceBoundary(m.width, m.height, labels, label, x, y))
		}
	}
	return boundaries
}

// labelComponent flood-fills 8-connected region containing seed with given label
func labelComponent(m *Mask, labels []int, seed, label int, stack []int) []int {
	labels[seed] = label
	stack = append(stack, seed)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cx, cy := idx%m.width, idx/m.width
		for i := 0; i < 8; i++ {
			nx, ny := cx+ndx[i], cy+ndy[i]
			if nx < 0 || ny < 0 || nx >= m.width || ny >= m.height {
				continue
			}
			nidx := ny*m.width + nx
			if m.data[nidx] && labels[nidx] == 0 {
				labels[nidx] = label
				stack = append(stack, nidx)
			}
		}
	}
	return stack
}

// traceBoundary runs Moore-neighbour tracing over pixels with given label.
// (sx, sy) must be the top-left pixel of the region, so its west neighbour is background.
// Tracing stops once the start pixel is about to be left the same way it was left the first time,
// which handles regions touching themselves through one-pixel bridges.
func traceBoundary(w, h int, labels []int, label, sx, sy int) []Point2D {
	isLabel := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return labels[y*w+x] == label
	}

	// next scans clockwise around (cx, cy) starting right after backtrack direction.
	// Returns next boundary pixel and the direction from it to the new backtrack pixel.
	next := func(cx, cy, backDir int) (int, int, int, bool) {
		for k := 1; k <= 8; k++ {
			i := (backDir + k) % 8
			tx, ty := cx+ndx[i], cy+ndy[i]
			if !isLabel(tx, ty) {
				continue
			}
			// Previously examined neighbour is the new backtrack, express it relative to (tx, ty)
			j := (backDir + k - 1) % 8
			bx, by := cx+ndx[j], cy+ndy[j]
			return tx, ty, dirIndex(bx-tx, by-ty), true
		}
		return 0, 0, 0, false
	}

	points := []Point2D{{X: sx, Y: sy}}
	firstX, firstY, backDir, ok := next(sx, sy, dirWest)
	if !ok {
		// Isolated pixel
		return points
	}
	cx, cy := firstX, firstY
	maxSteps := 4*w*h + 8
	for steps := 0; steps < maxSteps; steps++ {
		if cx == sx && cy == sy {
			nx, ny, nb, _ := next(cx, cy, backDir)
			if nx == firstX && ny == firstY {
				break
			}
			points = append(points, Point2D{X: cx, Y: cy})
			cx, cy, backDir = nx, ny, nb
			continue
		}
		points = append(points, Point2D{X: cx, Y: cy})
		cx, cy, backDir, _ = next(cx, cy, backDir)
	}
	return points
}

func dirIndex(dx, dy int) int {
	for i := 0; i < 8; i++ {
		if ndx[i] == dx && ndy[i] == dy {
			return i
		}
	}
	panic("should be impossible")
}

// LargestBoundary picks boundary enclosing the largest area. On equal areas the first one wins.
// Returns -1 and nil when there is nothing to pick from.
func LargestBoundary(boundaries [][]Point2D) (int, []Point2D) {
	bestIdx := -1
	bestArea := -1.0
	for i, boundary := range boundaries {
		area := PolygonArea(boundary)
		if area > bestArea {
			bestArea = area
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return -1, nil
	}
	return bestIdx, boundaries[bestIdx]
}

// normalizeBoundary copies raw boundary into flat sequence of pixel coordinates.
// Degenerate (single point) boundaries are kept as one-element sequences; only empty input is rejected.
func normalizeBoundary(raw []Point2D) ([]Point2D, error) {
	if len(raw) == 0 {
		return nil, ErrMalformedBoundary
	}
	points := make([]Point2D, len(raw))
	copy(points, raw)
	return points, nil
}
