package ops

import (
	"fmt"
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// EqualizeMode selects the channels Equalize flattens.
type EqualizeMode uint8

const (
	EqualizeRGB EqualizeMode = iota
	EqualizeSRGB
	EqualizeSaturation
	EqualizeLightness
	EqualizeSaturationLightness
)

// ParseEqualizeMode converts a lowercase name into an EqualizeMode.
func ParseEqualizeMode(s string) (EqualizeMode, error) {
	switch s {
	case "rgb":
		return EqualizeRGB, nil
	case "srgb":
		return EqualizeSRGB, nil
	case "saturation":
		return EqualizeSaturation, nil
	case "lightness":
		return EqualizeLightness, nil
	case "saturation_lightness":
		return EqualizeSaturationLightness, nil
	default:
		return 0, fmt.Errorf("ops: unknown equalize mode %q", s)
	}
}

// channelHistogram builds a normalized cumulative histogram for n
// consecutive channels starting at offset: per channel, 256 bins of
// counts turned into a cumulative distribution and stretched to span
// [0, 1].
func channelHistogram[C color.Color[C]](b *pixel.Buffer[C], offset, n int) [][256]float32 {
	hist := make([][256]float32, n)

	for i := range hist {
		for _, c := range b.Data() {
			v := c.Channels()[offset+i] * 255.0
			idx := math.Round(float64(v))
			if idx < 0.0 {
				idx = 0.0
			} else if idx > 255.0 {
				idx = 255.0
			}
			hist[i][int(idx)] += 1.0
		}
	}

	pixels := float32(b.Width() * b.Height())

	for i := range hist {
		var sum float32
		for j := range hist[i] {
			sum += hist[i][j]
			hist[i][j] = sum / pixels
		}

		minV := float32(math.MaxFloat32)
		maxV := float32(0.0)
		for _, v := range hist[i] {
			if v > maxV {
				maxV = v
			}
			if v < minV {
				minV = v
			}
		}
		for j := range hist[i] {
			hist[i][j] = (hist[i][j] - minV) / (maxV - minV)
		}
	}

	return hist
}

func pickValue(hist *[256]float32, v float32) float32 {
	idx := int(math.Round(float64(v * 255.0)))
	if idx < 0 {
		idx = 0
	} else if idx > 255 {
		idx = 255
	}
	return hist[idx]
}

// Equalize flattens the distribution of the selected channels so each
// value range carries a similar share of pixels.
func Equalize(b *pixel.Buffer[color.RGB], mode EqualizeMode) *pixel.Buffer[color.RGB] {
	switch mode {
	case EqualizeSRGB:
		return equalizeSRGB(b)
	case EqualizeSaturation:
		return equalizeHSL(b, true, false)
	case EqualizeLightness:
		return equalizeHSL(b, false, true)
	case EqualizeSaturationLightness:
		return equalizeHSL(b, true, true)
	default:
		return equalizeRGB(b)
	}
}

func equalizeRGB(b *pixel.Buffer[color.RGB]) *pixel.Buffer[color.RGB] {
	hist := channelHistogram(b, 0, 3)

	return b.MapColors(func(c color.RGB) color.RGB {
		return color.NewRGBWithAlpha(
			pickValue(&hist[0], c.Red()),
			pickValue(&hist[1], c.Green()),
			pickValue(&hist[2], c.Blue()),
			c.Alpha(),
		)
	})
}

func equalizeSRGB(b *pixel.Buffer[color.RGB]) *pixel.Buffer[color.RGB] {
	srgb := pixel.ToSRGB(b)
	hist := channelHistogram(srgb, 0, 3)

	return pixel.Map(srgb, func(c color.SRGB) color.RGB {
		return color.SRGB{Data: [4]float32{
			pickValue(&hist[0], c.Data[0]),
			pickValue(&hist[1], c.Data[1]),
			pickValue(&hist[2], c.Data[2]),
			c.Alpha(),
		}}.ToRGB()
	})
}

func equalizeHSL(b *pixel.Buffer[color.RGB], saturation, lightness bool) *pixel.Buffer[color.RGB] {
	hsl := pixel.ToHSL(b)

	offset := 1
	n := 2
	switch {
	case saturation && !lightness:
		n = 1
	case lightness && !saturation:
		offset, n = 2, 1
	}
	hist := channelHistogram(hsl, offset, n)

	return pixel.Map(hsl, func(c color.HSL) color.RGB {
		s := c.Saturation()
		l := c.Lightness()
		switch {
		case saturation && lightness:
			s = pickValue(&hist[0], s)
			l = pickValue(&hist[1], l)
		case saturation:
			s = pickValue(&hist[0], s)
		default:
			l = pickValue(&hist[0], l)
		}
		return color.HSL{Data: [4]float32{c.Hue(), s, l, c.Alpha()}}.ToRGB()
	})
}
