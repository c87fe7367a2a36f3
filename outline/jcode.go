package outline

import (
	"image"
	"io"
	"os"
	"time"

	"github.com/JoshPattman/jcode"
	"github.com/pkg/errors"
)

// PlotConfig maps pixel outline onto plotter coordinates
type PlotConfig struct {
	// Height of the drawing in plotter units. Image height is scaled to it
	Height float64
	// Y position of the bottom of the drawing
	YStart float64
	// Toolhead speed in units/s
	Speed float64
	// Delay after moving to the first point, before pen goes down
	StartDelay time.Duration
	// Delay after the last point, before pen goes up
	EndDelay time.Duration
}

// DefaultPlotConfig returns default plotter settings
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{
		Height:     8.0,
		YStart:     8.0,
		Speed:      5.0,
		StartDelay: time.Second,
		EndDelay:   time.Second,
	}
}

// ToJCode converts closed outline into a single pen stroke.
// Drawing is centered horizontally around x=0 and flipped so image top is plotter top.
// The stroke returns to the first point to close the outline.
func ToJCode(points []SizedPoint, bounds image.Rectangle, cfg PlotConfig) []jcode.Instruction {
	code := []jcode.Instruction{jcode.Speed{Speed: cfg.Speed}}
	if len(points) == 0 || bounds.Dy() == 0 {
		return code
	}
	scaleFactor := cfg.Height / float64(bounds.Dy())
	xOffset := -scaleFactor * float64(bounds.Dx()) / 2
	toWaypoint := func(pt SizedPoint) jcode.Waypoint {
		return jcode.Waypoint{
			XPos: float64(pt.X-bounds.Min.X)*scaleFactor + xOffset,
			YPos: float64(bounds.Max.Y-pt.Y)*scaleFactor + cfg.YStart,
		}
	}
	code = append(code,
		toWaypoint(points[0]),
		jcode.Delay{Duration: cfg.StartDelay},
		jcode.Pen{Mode: jcode.PenDown},
	)
	for _, pt := range points[1:] {
		code = append(code, toWaypoint(pt))
	}
	if len(points) > 1 {
		code = append(code, toWaypoint(points[0]))
	}
	code = append(code,
		jcode.Delay{Duration: cfg.EndDelay},
		jcode.Pen{Mode: jcode.PenUp},
	)
	return code
}

// WriteJCode encodes instructions to w
func WriteJCode(w io.Writer, code []jcode.Instruction) error {
	enc := jcode.NewEncoder(w)
	return enc.Write(code...)
}

// SaveJCode writes plotter stroke of the simplified outline to path
func SaveJCode(path string, res *Result, bounds image.Rectangle, cfg PlotConfig) error {
	outFile, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "Can't create output file")
	}
	if err := WriteJCode(outFile, ToJCode(res.Simplified, bounds, cfg)); err != nil {
		outFile.Close()
		return errors.Wrapf(err, "Can't write JCode to %s", path)
	}
	if err := outFile.Close(); err != nil {
		return errors.Wrapf(err, "Can't close %s", path)
	}
	return nil
}
