package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// Rotate90 rotates the buffer 90 degrees clockwise, swapping dimensions.
func Rotate90[C color.Color[C]](b *pixel.Buffer[C]) *pixel.Buffer[C] {
	width := b.Width()
	height := b.Height()
	data := make([]C, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			x2 := height - y - 1
			y2 := x
			data[x2+y2*height] = b.At(x, y)
		}
	}
	return pixel.FromData(height, width, data)
}

// Rotate180 rotates the buffer 180 degrees.
func Rotate180[C color.Color[C]](b *pixel.Buffer[C]) *pixel.Buffer[C] {
	width := b.Width()
	height := b.Height()
	return pixel.Generate(width, height, func(x, y int) C {
		return b.At(width-x-1, height-y-1)
	})
}

// Rotate270 rotates the buffer 270 degrees clockwise, swapping dimensions.
func Rotate270[C color.Color[C]](b *pixel.Buffer[C]) *pixel.Buffer[C] {
	width := b.Width()
	height := b.Height()
	data := make([]C, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			x2 := y
			y2 := width - x - 1
			data[x2+y2*height] = b.At(x, y)
		}
	}
	return pixel.FromData(height, width, data)
}
