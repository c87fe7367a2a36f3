package outline

import (
	"image"
	"image/color"
)

// Binarize applies a binary threshold to the luminance of img.
// Pixel becomes foreground when its gray value is greater than threshold.
// With invert the gray value is inverted first, so dark strokes on light paper become foreground.
func Binarize(img image.Image, threshold uint8, invert bool) *Mask {
	bounds := img.Bounds()
	mask := NewMask(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			grayVal := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if invert {
				grayVal = 255 - grayVal
			}
			if grayVal > threshold {
				mask.Set(x-bounds.Min.X, y-bounds.Min.Y, true)
			}
		}
	}
	return mask
}

// Dilate grows foreground with a square kernel of given size.
// Pixels outside the mask never contribute foreground.
func Dilate(m *Mask, kernel int) *Mask {
	return morph(m, kernel, true)
}

// Erode shrinks foreground with a square kernel of given size.
// Pixels outside the mask never erode foreground.
func Erode(m *Mask, kernel int) *Mask {
	return morph(m, kernel, false)
}

// Close performs morphological closing: iterations dilations followed by iterations erosions.
// It bridges small gaps in drawn outlines.
func Close(m *Mask, kernel, iterations int) *Mask {
	out := m.Clone()
	for i := 0; i < iterations; i++ {
		out = Dilate(out, kernel)
	}
	for i := 0; i < iterations; i++ {
		out = Erode(out, kernel)
	}
	return out
}

// morph is the common part of dilation (any neighbour set) and erosion (all neighbours set).
// Anchor is the kernel center, shifted to the top-left for even sizes.
func morph(m *Mask, kernel int, dilate bool) *Mask {
	out := NewMask(m.width, m.height)
	if kernel < 1 {
		copy(out.data, m.data)
		return out
	}
	lo := -(kernel / 2)
	hi := lo + kernel - 1
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			value := !dilate
			for dy := lo; dy <= hi && value != dilate; dy++ {
				ny := y + dy
				if ny < 0 || ny >= m.height {
					continue
				}
				for dx := lo; dx <= hi; dx++ {
					nx := x + dx
					if nx < 0 || nx >= m.width {
						continue
					}
					if m.data[ny*m.width+nx] == dilate {
						value = dilate
						break
					}
				}
			}
			out.data[y*m.width+x] = value
		}
	}
	return out
}
