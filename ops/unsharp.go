package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// Unsharp sharpens the buffer by amplifying its difference from a
// Gaussian-blurred copy. All four channels are adjusted and the result
// is left unclamped.
func Unsharp(b *pixel.Buffer[color.RGB], radius int, factor, sigma float32) *pixel.Buffer[color.RGB] {
	blurred := GaussianBlur(b, radius, sigma)

	return b.MapColorsXY(func(x, y int, c color.RGB) color.RGB {
		blur := blurred.At(x, y)
		var data [4]float32
		for i := 0; i < 4; i++ {
			data[i] = c.Data[i] + (c.Data[i]-blur.Data[i])*factor
		}
		return color.RGB{Data: data}
	})
}
