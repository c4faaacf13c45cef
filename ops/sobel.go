package ops

import (
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// SobelEdges computes the Sobel gradient magnitude of the buffer's
// luminance. With normalize the magnitudes are stretched to the full
// [0, 1] range. The result is an opaque grayscale buffer.
func SobelEdges(b *pixel.Buffer[color.RGB], normalize bool) *pixel.Buffer[color.RGB] {
	ix := pixel.ApplyKernel(b, pixel.SobelX())
	iy := pixel.ApplyKernel(b, pixel.SobelY())

	width := b.Width()
	height := b.Height()

	values := make([]float32, width*height)
	minV := float32(math.Inf(1))
	maxV := float32(math.Inf(-1))

	dx := ix.Data()
	dy := iy.Data()
	for i := range values {
		gx := dx[i].ToGray().Red()
		gy := dy[i].ToGray().Red()
		v := float32(math.Sqrt(float64(gx*gx + gy*gy)))
		values[i] = v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	if normalize && maxV > minV {
		scale := 1.0 / (maxV - minV)
		for i, v := range values {
			values[i] = (v - minV) * scale
		}
	}

	data := make([]color.RGB, len(values))
	for i, v := range values {
		data[i] = color.NewRGB(v, v, v)
	}
	return pixel.FromData(width, height, data)
}
