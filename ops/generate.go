package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/internal/parallel"
	"github.com/gopict/pict/pixel"
)

// generateRGB fills a new buffer by evaluating fn per pixel, splitting
// the rows across workers. fn must not touch shared mutable state.
func generateRGB(width, height int, fn func(x, y int) color.RGB) *pixel.Buffer[color.RGB] {
	data := make([]color.RGB, width*height)
	parallel.Rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := data[y*width : (y+1)*width]
			for x := 0; x < width; x++ {
				row[x] = fn(x, y)
			}
		}
	})
	return pixel.FromData(width, height, data)
}
