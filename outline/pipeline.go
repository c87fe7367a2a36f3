package outline

import (
	"fmt"
	"image"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Result holds every sequence produced by a single pipeline run
type Result struct {
	// Run identifier
	ID uuid.UUID
	// Full boundary of the selected region
	Boundary []Point2D
	// Every Step-th boundary point with random size
	Sampled []SizedPoint
	// RDP-simplified sampled points with sizes of their nearest sampled neighbours
	Simplified []SizedPoint
	// Settings used
	Step    int
	Epsilon float64
	// Number of boundaries found in the mask (only the largest one is used)
	BoundariesFound int
	// Bounding box of the selected boundary
	Bounds Rectangle
	// Polygon metrics of the boundary and of the simplified outline
	BoundaryArea      float64
	BoundaryPerimeter float64
	SimplifiedArea    float64
}

// Summary returns human readable status of the run
func (res *Result) Summary() string {
	return fmt.Sprintf("Run %s: %d boundary points, sampled %d points (step=%d), simplified to %d points (EPS=%v)",
		res.ID, len(res.Boundary), len(res.Sampled), res.Step, len(res.Simplified), res.Epsilon)
}

// Pipeline turns binary mask into sampled and simplified outline points
type Pipeline struct {
	cfg   Config
	sizes SizeSource
}

// NewPipelineDefault creates pipeline with DefaultConfig and the process-wide random source
func NewPipelineDefault() *Pipeline {
	return &Pipeline{
		cfg:   DefaultConfig(),
		sizes: GlobalSizeSource(),
	}
}

// NewPipeline creates pipeline with given settings. Nil sizes falls back to GlobalSizeSource
func NewPipeline(cfg Config, sizes SizeSource) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sizes == nil {
		sizes = GlobalSizeSource()
	}
	return &Pipeline{
		cfg:   cfg,
		sizes: sizes,
	}, nil
}

// Preprocess binarizes image and closes small gaps in the outline
func (p *Pipeline) Preprocess(img image.Image) *Mask {
	mask := Binarize(img, p.cfg.Threshold, p.cfg.Invert)
	if p.cfg.CloseIterations > 0 {
		mask = Close(mask, p.cfg.CloseKernel, p.cfg.CloseIterations)
	}
	return mask
}

// RunImage loads image from path, preprocesses it and runs the pipeline on the resulting mask.
// Source image and mask are returned as well for visualization.
func (p *Pipeline) RunImage(path string) (*Result, *Mask, image.Image, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "load stage")
	}
	mask := p.Preprocess(img)
	res, err := p.Run(mask)
	if err != nil {
		return nil, mask, img, err
	}
	return res, mask, img, nil
}

// Run extracts the largest boundary from mask, subsamples it, simplifies it and reattaches sizes.
// Zero-value Pipeline is rejected with ErrInvalidConfig.
func (p *Pipeline) Run(mask *Mask) (*Result, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config stage")
	}
	logger := Logger()
	runID := uuid.New()

	boundaries := FindBoundaries(mask)
	if len(boundaries) == 0 {
		return nil, errors.Wrap(ErrNoBoundaryFound, "boundary stage")
	}
	idx, largest := LargestBoundary(boundaries)
	boundary, err := normalizeBoundary(largest)
	if err != nil {
		return nil, errors.Wrapf(err, "normalize stage (boundary #%d)", idx)
	}
	logger.Debug("boundary selected", "run", runID, "found", len(boundaries), "index", idx, "points", len(boundary))

	sampled, err := Subsample(boundary, p.cfg.Step, p.sizes)
	if err != nil {
		return nil, errors.Wrap(err, "sample stage")
	}
	logger.Debug("boundary sampled", "run", runID, "step", p.cfg.Step, "points", len(sampled))

	coords := make([]Point, len(sampled))
	for i, pt := range sampled {
		coords[i] = pt.Point()
	}
	simplifiedCoords := EnsureEndpoints(SimplifyRDP(coords, p.cfg.Epsilon), coords[0], coords[len(coords)-1])
	simplified, err := ReattachSizes(simplifiedCoords, sampled)
	if err != nil {
		return nil, errors.Wrap(err, "reattach stage")
	}
	logger.Debug("boundary simplified", "run", runID, "eps", p.cfg.Epsilon, "points", len(simplified))

	simplifiedPixels := make([]Point2D, len(simplified))
	for i, pt := range simplified {
		simplifiedPixels[i] = pt.Point2D()
	}
	res := &Result{
		ID:                runID,
		Boundary:          boundary,
		Sampled:           sampled,
		Simplified:        simplified,
		Step:              p.cfg.Step,
		Epsilon:           p.cfg.Epsilon,
		BoundariesFound:   len(boundaries),
		Bounds:            BoundingBox(boundary),
		BoundaryArea:      PolygonArea(boundary),
		BoundaryPerimeter: PolygonPerimeter(boundary),
		SimplifiedArea:    PolygonArea(simplifiedPixels),
	}
	logger.Info("pipeline done", "run", runID, "boundary", len(boundary), "sampled", len(sampled), "simplified", len(simplified), "eps", p.cfg.Epsilon)
	return res, nil
}
