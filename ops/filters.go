// Package ops implements the image operations: geometric transforms,
// convolution filters, compositing, and whole-buffer color adjustments.
// Every operation takes linear RGB buffers and returns a new buffer;
// functions prefixed Add mutate in place.
package ops

import (
	"fmt"
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// FilterMode selects the resampling filter used by Resize and Rotate.
type FilterMode uint8

const (
	// FilterAuto picks bicubic for upscaling and a sharpened dual
	// Gaussian for downscaling.
	FilterAuto FilterMode = iota
	FilterNearest
	FilterBilinear
	FilterBicubic
	FilterLanczos3
)

// ParseFilterMode converts a lowercase name into a FilterMode.
func ParseFilterMode(s string) (FilterMode, error) {
	switch s {
	case "nearest":
		return FilterNearest, nil
	case "bilinear":
		return FilterBilinear, nil
	case "bicubic":
		return FilterBicubic, nil
	case "lanczos3", "lanczos":
		return FilterLanczos3, nil
	case "auto", "default":
		return FilterAuto, nil
	default:
		return 0, fmt.Errorf("ops: unknown filter mode %q", s)
	}
}

func linearInterpolate(v1, v2, t float32) float32 {
	return v1 + (v2-v1)*t
}

// baseAndOffset splits a fractional source position into the base pixel
// and the interpolation factor.
func baseAndOffset(pos float32) (int, float32) {
	base := float32(math.Floor(float64(pos)))
	return int(base), pos - base
}

// SampleBilinear samples the buffer at a fractional position with a
// bilinear filter over the clamped 2x2 neighborhood.
func SampleBilinear(b *pixel.Buffer[color.RGB], fx, fy float32) color.RGB {
	x, tx := baseAndOffset(fx)
	y, ty := baseAndOffset(fy)

	c1 := b.AtClamped(x, y)
	c2 := b.AtClamped(x+1, y)
	c3 := b.AtClamped(x, y+1)
	c4 := b.AtClamped(x+1, y+1)

	var data [4]float32
	for i := 0; i < 4; i++ {
		data[i] = linearInterpolate(
			linearInterpolate(c1.Data[i], c2.Data[i], tx),
			linearInterpolate(c3.Data[i], c4.Data[i], tx),
			ty,
		)
	}

	return color.NewRGBWithAlpha(data[0], data[1], data[2], data[3])
}

func cubicHermite(v1, v2, v3, v4, t float32) float32 {
	o1 := -v1/2.0 + (3.0*v2)/2.0 - (3.0*v3)/2.0 + v4/2.0
	o2 := v1 - (5.0*v2)/2.0 + 2.0*v3 - v4/2.0
	o3 := -v1/2.0 + v3/2.0
	o4 := v2

	return o1*t*t*t + o2*t*t + o3*t + o4
}

// SampleBicubic samples the buffer at a fractional position with a cubic
// Hermite filter over the clamped 4x4 neighborhood.
func SampleBicubic(b *pixel.Buffer[color.RGB], fx, fy float32) color.RGB {
	x, tx := baseAndOffset(fx)
	y, ty := baseAndOffset(fy)

	var rows [4][4]float32
	for row := 0; row < 4; row++ {
		c1 := b.AtClamped(x-1, y-1+row)
		c2 := b.AtClamped(x, y-1+row)
		c3 := b.AtClamped(x+1, y-1+row)
		c4 := b.AtClamped(x+2, y-1+row)
		for i := 0; i < 4; i++ {
			rows[row][i] = cubicHermite(c1.Data[i], c2.Data[i], c3.Data[i], c4.Data[i], tx)
		}
	}

	var data [4]float32
	for i := 0; i < 4; i++ {
		data[i] = cubicHermite(rows[0][i], rows[1][i], rows[2][i], rows[3][i], ty)
	}

	return color.NewRGBWithAlpha(data[0], data[1], data[2], data[3])
}

func sinc(v float32) float32 {
	if v == 0.0 {
		return 1.0
	}
	v *= math.Pi
	return float32(math.Sin(float64(v))) / v
}

// lanczos3Weight is the windowed sinc with radius 3 used by the 7x7
// Lanczos sampler.
func lanczos3Weight(v float32) float32 {
	if v < 0 {
		v = -v
	}
	if v < 3.0 {
		return sinc(v) * sinc(v/3.0)
	}
	return 0.0
}

// lanczosWeightDyn rescales the radius-3 window to an arbitrary radius.
func lanczosWeightDyn(v float32, size int) float32 {
	s := float32(size)
	if v < 0 {
		v = -v
	}
	v = v / s * 3.0
	if v < 3.0 {
		return sinc(v) * sinc(v/3.0) * (3.0 / s)
	}
	return 0.0
}

// SampleLanczos3 samples the buffer at a fractional position with a
// Lanczos-3 filter over the clamped 7x7 neighborhood, accumulating rows
// first, then the column.
func SampleLanczos3(b *pixel.Buffer[color.RGB], fx, fy float32) color.RGB {
	x, tx := baseAndOffset(fx)
	y, ty := baseAndOffset(fy)

	window := b.Window7(x, y)

	const size = 3.0

	var rowScale [7]float32
	for i := range rowScale {
		rowScale[i] = lanczos3Weight(float32(i) - size - tx)
	}

	var rows [7][4]float32
	for wy := 0; wy < 7; wy++ {
		for wx := 0; wx < 7; wx++ {
			scale := rowScale[wx]
			for i := 0; i < 4; i++ {
				rows[wy][i] += window[wy][wx].Data[i] * scale
			}
		}
	}

	var data [4]float32
	for wy := 0; wy < 7; wy++ {
		scale := lanczos3Weight(float32(wy) - size - ty)
		for i := 0; i < 4; i++ {
			data[i] += rows[wy][i] * scale
		}
	}

	return color.RGB{Data: data}
}

// SampleLanczos samples with a Lanczos filter of arbitrary radius.
func SampleLanczos(b *pixel.Buffer[color.RGB], fx, fy float32, size int) color.RGB {
	x, tx := baseAndOffset(fx)
	y, ty := baseAndOffset(fy)

	rowSize := size*2 + 1
	window := b.Window(x, y, rowSize, rowSize)

	rowScale := make([]float32, rowSize)
	for i := range rowScale {
		rowScale[i] = lanczosWeightDyn(float32(i-size)-tx, size)
	}

	rows := make([][4]float32, rowSize)
	for wy := 0; wy < rowSize; wy++ {
		for wx := 0; wx < rowSize; wx++ {
			scale := rowScale[wx]
			c := window[wx+wy*rowSize]
			for i := 0; i < 4; i++ {
				rows[wy][i] += c.Data[i] * scale
			}
		}
	}

	var data [4]float32
	for wy := 0; wy < rowSize; wy++ {
		scale := lanczosWeightDyn(float32(wy-size)-ty, size)
		for i := 0; i < 4; i++ {
			data[i] += rows[wy][i] * scale
		}
	}

	return color.RGB{Data: data}
}
