package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// intensityHistogram bins the average intensity of every pixel into 256
// buckets holding population fractions.
func intensityHistogram(b *pixel.Buffer[color.RGB]) [256]float32 {
	var hist [256]float32

	weight := 1.0 / float32(len(b.Data()))
	for _, c := range b.Data() {
		v := c.ToGrayWithIntensity(color.IntensityAverage).Red() * 255.0
		if v < 0.0 {
			v = 0.0
		} else if v > 255.0 {
			v = 255.0
		}
		hist[uint8(v)] += weight
	}

	return hist
}

// histogramMin returns the lowest intensity whose cumulative population
// exceeds the threshold fraction.
func histogramMin(hist *[256]float32, threshold float32) float32 {
	var agg float32
	for i, v := range hist {
		agg += v
		if agg > threshold {
			return float32(i) / 255.0
		}
	}
	return 1.0
}

// histogramMax is histogramMin from the bright end.
func histogramMax(hist *[256]float32, threshold float32) float32 {
	var agg float32
	for i := 255; i >= 0; i-- {
		agg += hist[i]
		if agg > threshold {
			return float32(i) / 255.0
		}
	}
	return 1.0
}

// StretchContrast levels the buffer so the darkest and brightest
// populated intensities span the full range. Threshold is the per-mille
// population fraction ignored at each end. A buffer that already spans
// the range is cloned.
func StretchContrast(b *pixel.Buffer[color.RGB], threshold float32) *pixel.Buffer[color.RGB] {
	threshold /= 1000.0

	hist := intensityHistogram(b)

	minValue := histogramMin(&hist, threshold)
	maxValue := histogramMax(&hist, threshold)

	if minValue > 0.0 || maxValue < 1.0 {
		return b.MapColors(func(c color.RGB) color.RGB {
			return c.WithLevel(minValue, maxValue, 1.0)
		})
	}
	return b.Clone()
}
