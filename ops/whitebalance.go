package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// rgbHistograms bins each RGB channel into 256 buckets holding
// population fractions.
func rgbHistograms(b *pixel.Buffer[color.RGB]) [3][256]float32 {
	var hist [3][256]float32

	weight := 1.0 / float32(len(b.Data()))
	for _, c := range b.Data() {
		for channel := 0; channel < 3; channel++ {
			v := c.Data[channel] * 255.0
			if v < 0.0 {
				v = 0.0
			} else if v > 255.0 {
				v = 255.0
			}
			hist[channel][uint8(v)] += weight
		}
	}

	return hist
}

// levelChannel stretches a channel value between its black and white
// points. A degenerate range falls back to a huge factor instead of
// dividing by zero.
func levelChannel(value, blackPoint, whitePoint float32) float32 {
	diff := whitePoint - blackPoint
	factor := 1.0 / epsilon32
	if abs32(diff) >= epsilon32 {
		factor = 1.0 / diff
	}
	return (value - blackPoint) * factor
}

// epsilon32 is the float32 machine epsilon.
const epsilon32 float32 = 1.1920929e-07

// WhiteBalance levels each RGB channel independently so its populated
// range spans [0, 1], removing color casts. Threshold is the per-mille
// population fraction ignored at each end of every channel.
func WhiteBalance(b *pixel.Buffer[color.RGB], threshold float32) *pixel.Buffer[color.RGB] {
	threshold /= 1000.0

	hist := rgbHistograms(b)

	var minV, maxV [3]float32
	for i := 0; i < 3; i++ {
		minV[i] = histogramMin(&hist[i], threshold)
		maxV[i] = histogramMax(&hist[i], threshold)
	}

	return b.MapColors(func(c color.RGB) color.RGB {
		return c.
			WithRed(levelChannel(c.Red(), minV[0], maxV[0])).
			WithGreen(levelChannel(c.Green(), minV[1], maxV[1])).
			WithBlue(levelChannel(c.Blue(), minV[2], maxV[2]))
	})
}
