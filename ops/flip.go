package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// FlipHorizontal mirrors the buffer along the vertical axis.
func FlipHorizontal[C color.Color[C]](b *pixel.Buffer[C]) *pixel.Buffer[C] {
	width := b.Width()
	return pixel.Generate(width, b.Height(), func(x, y int) C {
		return b.At(width-x-1, y)
	})
}

// FlipVertical mirrors the buffer along the horizontal axis.
func FlipVertical[C color.Color[C]](b *pixel.Buffer[C]) *pixel.Buffer[C] {
	height := b.Height()
	return pixel.Generate(b.Width(), height, func(x, y int) C {
		return b.At(x, height-y-1)
	})
}
