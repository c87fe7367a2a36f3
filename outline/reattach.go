package outline

import (
	"math"

	"github.com/pkg/errors"
)

// NearestSize returns size of the reference point closest to pt.
// On equal distances the first reference point in order wins.
func NearestSize(pt Point, reference []SizedPoint) (int, error) {
	if len(reference) == 0 {
		return 0, ErrEmptyReferenceSet
	}
	minIdx := 0
	minDistance := math.MaxFloat64
	for i, ref := range reference {
		dist := euclideanDistance(pt, ref.Point())
		if dist < minDistance {
			minDistance = dist
			minIdx = i
		}
	}
	return reference[minIdx].Size, nil
}

// ReattachSizes promotes every point to SizedPoint taking size from the nearest reference point.
// Coordinates are rounded to the closest pixel.
func ReattachSizes(points []Point, reference []SizedPoint) ([]SizedPoint, error) {
	result := make([]SizedPoint, len(points))
	for i, pt := range points {
		size, err := NearestSize(pt, reference)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't reattach size for point #%d", i)
		}
		result[i] = SizedPoint{
			X:    int(math.Round(pt.X)),
			Y:    int(math.Round(pt.Y)),
			Size: size,
		}
	}
	return result, nil
}
