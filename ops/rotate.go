package ops

import (
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// Rotate rotates the buffer clockwise by degrees around its center,
// keeping the output dimensions. Pixels sampled from outside the source
// take the background color. An angle that is a multiple of 360 within
// Epsilon returns a clone.
func Rotate(b *pixel.Buffer[color.RGB], degrees float32, background color.RGB, filter FilterMode) *pixel.Buffer[color.RGB] {
	for degrees < 0.0 {
		degrees += 360.0
	}
	for degrees >= 360.0 {
		degrees -= 360.0
	}
	if degrees < color.Epsilon || 360.0-degrees < color.Epsilon {
		return b.Clone()
	}

	radians := float64(degrees) / -180.0 * math.Pi
	sin := float32(math.Sin(radians))
	cos := float32(math.Cos(radians))

	width := b.Width()
	height := b.Height()
	centerX := float32(width+1) / 2.0
	centerY := float32(height+1) / 2.0

	sample := func(x, y float32) (color.RGB, bool) {
		c, ok := b.AtOptional(roundToInt(x), roundToInt(y))
		return c, ok
	}
	switch filter {
	case FilterBilinear:
		sample = rotateSampler(b, SampleBilinear)
	case FilterBicubic, FilterAuto:
		sample = rotateSampler(b, SampleBicubic)
	case FilterLanczos3:
		sample = rotateSampler(b, SampleLanczos3)
	}

	return generateRGB(width, height, func(xi, yi int) color.RGB {
		a := float32(xi+1) - centerX
		b2 := float32(yi+1) - centerY

		xx := a*cos - b2*sin + centerX - 1.0
		yy := a*sin + b2*cos + centerY - 1.0

		if c, ok := sample(xx, yy); ok {
			return c
		}
		return background
	})
}

// rotateSampler gates a fractional sampler on the rounded position being
// inside the image, so the border blends into the background instead of
// smearing edge pixels.
func rotateSampler(b *pixel.Buffer[color.RGB],
	sample func(*pixel.Buffer[color.RGB], float32, float32) color.RGB) func(x, y float32) (color.RGB, bool) {
	return func(x, y float32) (color.RGB, bool) {
		if !b.Contains(roundToInt(x), roundToInt(y)) {
			return color.RGB{}, false
		}
		return sample(b, x, y), true
	}
}

func roundToInt(v float32) int {
	return int(math.Round(float64(v)))
}
