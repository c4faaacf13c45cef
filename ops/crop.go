package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// Crop extracts the rectangle at (offsetX, offsetY) with the given size.
// Offsets are clamped to the buffer and the size is clamped to what
// remains, so a crop never reads out of bounds. Cropping an empty buffer
// returns a clone, and a crop that clamps to nothing returns an empty
// buffer.
func Crop[C color.Color[C]](b *pixel.Buffer[C], offsetX, offsetY, width, height int) *pixel.Buffer[C] {
	if b.Width() == 0 || b.Height() == 0 {
		return b.Clone()
	}

	offsetX = clampInt(offsetX, 0, b.Width())
	offsetY = clampInt(offsetY, 0, b.Height())
	width = clampInt(width, 0, b.Width()-offsetX)
	height = clampInt(height, 0, b.Height()-offsetY)

	if width == 0 || height == 0 {
		return pixel.New[C](0, 0)
	}

	data := make([]C, 0, width*height)
	src := b.Data()
	for y := offsetY; y < offsetY+height; y++ {
		start := offsetX + y*b.Width()
		data = append(data, src[start:start+width]...)
	}

	return pixel.FromData(width, height, data)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
