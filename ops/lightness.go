package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// OptimizeLightness applies a gamma correction derived from the buffer's
// average lightness, pulling it toward the midpoint. Factor scales how
// strongly the average shifts the gamma.
func OptimizeLightness(b *pixel.Buffer[color.RGB], factor float32) *pixel.Buffer[color.RGB] {
	var sum float64
	for _, c := range b.Data() {
		sum += float64(c.ToHSL().Lightness())
	}
	avg := sum / float64(len(b.Data()))

	gamma := 1.0 - (float32(avg)-0.5)*factor

	return b.MapColors(func(c color.RGB) color.RGB {
		return c.WithGamma(gamma)
	})
}
