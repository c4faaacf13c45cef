package ops

import (
	"fmt"
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// SaturationMode selects the color space whose saturation channel
// OptimizeSaturation adjusts.
type SaturationMode uint8

const (
	SaturationHSL SaturationMode = iota
	SaturationHSV
	SaturationLCh
)

// ParseSaturationMode converts a lowercase name into a SaturationMode.
func ParseSaturationMode(s string) (SaturationMode, error) {
	switch s {
	case "hsl", "default":
		return SaturationHSL, nil
	case "hsv":
		return SaturationHSV, nil
	case "lch":
		return SaturationLCh, nil
	default:
		return 0, fmt.Errorf("ops: unknown saturation mode %q", s)
	}
}

// OptimizeSaturation adjusts saturation toward a balanced level derived
// from the buffer's average saturation, shifted by offset.
func OptimizeSaturation(b *pixel.Buffer[color.RGB], offset float32, mode SaturationMode) *pixel.Buffer[color.RGB] {
	avg := averageSaturation(b, mode)

	gamma := offset + (1.0-avg)/1.5

	return b.MapColors(func(c color.RGB) color.RGB {
		switch mode {
		case SaturationHSV:
			return saturateHSV(c, gamma)
		case SaturationLCh:
			return saturateLCh(c, gamma)
		default:
			return saturateHSL(c, gamma)
		}
	})
}

// saturationGammaPow limits the saturation shift for very dark and very
// bright colors.
func saturationGammaPow(gamma, brightness float32) float32 {
	factor := 1.0 - abs32(brightness-0.5)*2.0

	if gamma < 0.0 {
		diff := 1.0 - gamma
		gamma = 1.0 - diff*factor
	} else {
		diff := gamma - 1.0
		gamma = 1.0 + diff*factor
	}

	return 1.0 / gamma
}

func averageSaturation(b *pixel.Buffer[color.RGB], mode SaturationMode) float32 {
	var sum float32
	for _, c := range b.Data() {
		switch mode {
		case SaturationHSV:
			sum += c.ToHSV().Saturation()
		case SaturationLCh:
			sum += c.ToLCh(color.D65O2).C()
		default:
			sum += c.ToHSL().Saturation()
		}
	}
	return sum / float32(len(b.Data()))
}

func saturateHSL(c color.RGB, gamma float32) color.RGB {
	hsl := c.ToHSL()
	pow := saturationGammaPow(gamma, hsl.Lightness())

	return color.HSL{Data: [4]float32{
		hsl.Hue(),
		powClamped(hsl.Saturation(), pow),
		hsl.Lightness(),
		c.Alpha(),
	}}.ToRGB()
}

func saturateHSV(c color.RGB, gamma float32) color.RGB {
	hsv := c.ToHSV()
	pow := saturationGammaPow(gamma, hsv.Value())

	return color.HSV{Data: [4]float32{
		hsv.Hue(),
		powClamped(hsv.Saturation(), pow),
		hsv.Value(),
		c.Alpha(),
	}}.ToRGB()
}

func saturateLCh(c color.RGB, gamma float32) color.RGB {
	lch := c.ToLCh(color.D65O2)
	pow := saturationGammaPow(gamma, lch.L())

	return color.LCh{
		Data: [4]float32{lch.L(), powClamped(lch.C(), pow), lch.H(), c.Alpha()},
		Ref:  color.D65O2,
	}.ToRGB()
}

func powClamped(v, pow float32) float32 {
	if v < 0.0 {
		v = 0.0
	} else if v > 1.0 {
		v = 1.0
	}
	return float32(math.Pow(float64(v), float64(pow)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
