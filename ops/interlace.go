package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// Interlace shifts even rows left and odd rows right by offset pixels,
// clamping at the borders.
func Interlace[C color.Color[C]](b *pixel.Buffer[C], offset int) *pixel.Buffer[C] {
	return pixel.Generate(b.Width(), b.Height(), func(x, y int) C {
		if y%2 == 0 {
			return b.AtClamped(x-offset, y)
		}
		return b.AtClamped(x+offset, y)
	})
}
