package outline

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
)

// RenderComparison draws four panels side by side:
// source image, binary mask, full boundary over the source and sampled vs simplified points over the source.
// Caller owns returned context and must Close it.
func RenderComparison(src image.Image, mask *Mask, res *Result) (*gg.Context, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dc := gg.NewContext(4*w, h)
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(4*w), float64(h))
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, errors.Wrap(err, "Can't fill background")
	}

	srcBuf := gg.ImageBufFromImage(src)
	dc.DrawImage(srcBuf, 0, 0)
	dc.DrawImage(gg.ImageBufFromImage(mask.Gray()), float64(w), 0)
	dc.DrawImage(srcBuf, float64(2*w), 0)
	dc.DrawImage(srcBuf, float64(3*w), 0)

	// Panel 3: full boundary
	dc.SetRGB(1, 0, 0)
	dc.SetLineWidth(1)
	if err := strokeClosed(dc, res.Boundary, float64(2*w)); err != nil {
		dc.Close()
		return nil, errors.Wrap(err, "Can't draw boundary")
	}

	// Panel 4: faint boundary, sampled points, simplified outline
	offset := float64(3 * w)
	dc.SetRGBA(1, 0, 0, 0.5)
	dc.SetLineWidth(0.5)
	if err := strokeClosed(dc, res.Boundary, offset); err != nil {
		dc.Close()
		return nil, errors.Wrap(err, "Can't draw faint boundary")
	}
	dc.SetRGB(0, 0, 1)
	for _, pt := range res.Sampled {
		dc.DrawCircle(float64(pt.X)+offset, float64(pt.Y), float64(pt.Size)/2)
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, errors.Wrap(err, "Can't draw sampled point")
		}
	}
	simplified := make([]Point2D, len(res.Simplified))
	for i, pt := range res.Simplified {
		simplified[i] = pt.Point2D()
	}
	dc.SetRGB(0, 0.6, 0)
	dc.SetLineWidth(1.5)
	if err := strokeClosed(dc, simplified, offset); err != nil {
		dc.Close()
		return nil, errors.Wrap(err, "Can't draw simplified outline")
	}
	return dc, nil
}

// SaveComparison renders comparison panels into PNG file
func SaveComparison(path string, src image.Image, mask *Mask, res *Result) error {
	dc, err := RenderComparison(src, mask, res)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return errors.Wrapf(err, "Can't save comparison to %s", path)
	}
	return nil
}

func strokeClosed(dc *gg.Context, points []Point2D, xOffset float64) error {
	if len(points) < 2 {
		return nil
	}
	dc.MoveTo(float64(points[0].X)+xOffset, float64(points[0].Y))
	for _, pt := range points[1:] {
		dc.LineTo(float64(pt.X)+xOffset, float64(pt.Y))
	}
	dc.ClosePath()
	return dc.Stroke()
}
