package outline

import (
	"image"
	"image/color"
)

// Mask is a binary image. true marks foreground pixel
type Mask struct {
	width  int
	height int
	data   []bool
}

// NewMask creates a new mask with every pixel set to background
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]bool, width*height),
	}
}

// Width returns the mask width
func (m *Mask) Width() int { return m.width }

// Height returns the mask height
func (m *Mask) Height() int { return m.height }

// Bounds returns the mask dimensions as an image.Rectangle
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At reports whether pixel (x, y) is foreground.
// Coordinates outside the mask are background.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.data[y*m.width+x]
}

// Set sets pixel (x, y). Coordinates outside the mask are ignored
func (m *Mask) Set(x, y int, value bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Count returns number of foreground pixels
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Gray renders mask as grayscale image: foreground is white, background is black
func (m *Mask) Gray() *image.Gray {
	img := image.NewGray(m.Bounds())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.data[y*m.width+x] {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
