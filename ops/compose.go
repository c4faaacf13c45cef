package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// Compose combines any number of buffers into one whose dimensions are
// the maximum over all inputs. For each output pixel the combiner
// receives one color per buffer, with def standing in for pixels outside
// a buffer. The colors slice is reused between calls and must not be
// retained.
func Compose[C color.Color[C], R color.Color[R]](buffers []*pixel.Buffer[C], def C, fn func(x, y int, colors []C) R) *pixel.Buffer[R] {
	width, height := composedSize(buffers)

	colors := make([]C, len(buffers))
	return pixel.Generate(width, height, func(x, y int) R {
		for i, b := range buffers {
			if c, ok := b.AtOptional(x, y); ok {
				colors[i] = c
			} else {
				colors[i] = def
			}
		}
		return fn(x, y, colors)
	})
}

// TryCompose is Compose with a fallible combiner. The first error stops
// the composition and is returned.
func TryCompose[C color.Color[C], R color.Color[R]](buffers []*pixel.Buffer[C], def C, fn func(x, y int, colors []C) (R, error)) (*pixel.Buffer[R], error) {
	width, height := composedSize(buffers)

	colors := make([]C, len(buffers))
	return pixel.TryGenerate(width, height, func(x, y int) (R, error) {
		for i, b := range buffers {
			if c, ok := b.AtOptional(x, y); ok {
				colors[i] = c
			} else {
				colors[i] = def
			}
		}
		return fn(x, y, colors)
	})
}

func composedSize[C color.Color[C]](buffers []*pixel.Buffer[C]) (int, int) {
	var width, height int
	for _, b := range buffers {
		if b.Width() > width {
			width = b.Width()
		}
		if b.Height() > height {
			height = b.Height()
		}
	}
	return width, height
}
