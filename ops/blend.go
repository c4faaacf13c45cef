package ops

import (
	"fmt"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// BlendOp selects how Blend combines the two buffers.
type BlendOp uint8

const (
	BlendNormal BlendOp = iota
	BlendAddition
	BlendSubtract
	BlendDarken
	BlendLighten
	BlendHSLDarken
	BlendHSLLighten
	BlendLChDarken
	BlendLChLighten
	BlendLChHue
	BlendLChSaturation
	BlendLChColor
)

// ParseBlendOp converts a lowercase name into a BlendOp.
func ParseBlendOp(s string) (BlendOp, error) {
	switch s {
	case "normal":
		return BlendNormal, nil
	case "addition":
		return BlendAddition, nil
	case "subtract":
		return BlendSubtract, nil
	case "darken":
		return BlendDarken, nil
	case "lighten":
		return BlendLighten, nil
	case "hsl_darken":
		return BlendHSLDarken, nil
	case "hsl_lighten":
		return BlendHSLLighten, nil
	case "lch_darken":
		return BlendLChDarken, nil
	case "lch_lighten":
		return BlendLChLighten, nil
	case "lch_hue":
		return BlendLChHue, nil
	case "lch_saturation":
		return BlendLChSaturation, nil
	case "lch_color":
		return BlendLChColor, nil
	default:
		return 0, fmt.Errorf("ops: unknown blend op %q", s)
	}
}

func applyIntensity(v1, v2, intensity float32) float32 {
	return v1*(1.0-intensity) + v2*intensity
}

// blendChannels blends the RGB channels through fn, scaled by intensity
// and the top color's alpha. The result takes the top color's alpha.
func blendChannels(c1, c2 color.RGB, intensity float32, fn func(v1, v2 float32) float32) color.RGB {
	intensity *= c2.Alpha()

	blend := func(v1, v2 float32) float32 {
		return applyIntensity(v1, fn(v1, v2), intensity)
	}

	return color.NewRGBWithAlpha(
		blend(c1.Data[0], c2.Data[0]),
		blend(c1.Data[1], c2.Data[1]),
		blend(c1.Data[2], c2.Data[2]),
		c2.Alpha(),
	)
}

// Blend combines two buffers pixel by pixel with the given operation.
// The output dimensions are the maximum over both inputs; where only one
// buffer covers a pixel its color passes through, and where neither does
// the result is fully transparent.
func Blend(b1, b2 *pixel.Buffer[color.RGB], op BlendOp, intensity float32) *pixel.Buffer[color.RGB] {
	fn := blendFunc(op)

	width := maxInt(b1.Width(), b2.Width())
	height := maxInt(b1.Height(), b2.Height())

	return generateRGB(width, height, func(x, y int) color.RGB {
		c1, ok1 := b1.AtOptional(x, y)
		c2, ok2 := b2.AtOptional(x, y)
		switch {
		case ok1 && ok2:
			return fn(c1, c2, intensity)
		case ok1:
			return c1
		case ok2:
			return c2
		default:
			return color.None
		}
	})
}

func blendFunc(op BlendOp) func(c1, c2 color.RGB, intensity float32) color.RGB {
	switch op {
	case BlendAddition:
		return blendAddition
	case BlendSubtract:
		return blendSubtract
	case BlendDarken:
		return blendDarken
	case BlendLighten:
		return blendLighten
	case BlendHSLDarken:
		return blendHSLDarken
	case BlendHSLLighten:
		return blendHSLLighten
	case BlendLChDarken:
		return blendLChDarken
	case BlendLChLighten:
		return blendLChLighten
	case BlendLChHue:
		return blendLChHue
	case BlendLChSaturation:
		return blendLChSaturation
	case BlendLChColor:
		return blendLChColor
	default:
		return blendNormal
	}
}

func blendNormal(c1, c2 color.RGB, intensity float32) color.RGB {
	return c1.AlphaBlend(c2.WithAlpha(c2.Alpha() * intensity))
}

func blendAddition(c1, c2 color.RGB, intensity float32) color.RGB {
	return blendChannels(c1, c2, intensity, func(v1, v2 float32) float32 { return v1 + v2 })
}

func blendSubtract(c1, c2 color.RGB, intensity float32) color.RGB {
	return blendChannels(c1, c2, intensity, func(v1, v2 float32) float32 { return v1 - v2 })
}

func blendDarken(c1, c2 color.RGB, intensity float32) color.RGB {
	return blendChannels(c1, c2, intensity, min32)
}

func blendLighten(c1, c2 color.RGB, intensity float32) color.RGB {
	return blendChannels(c1, c2, intensity, func(v1, v2 float32) float32 {
		if v1 > v2 {
			return v1
		}
		return v2
	})
}

func blendHSLDarken(c1, c2 color.RGB, intensity float32) color.RGB {
	h1 := c1.ToHSL()
	h2 := c2.ToHSL()

	l := applyIntensity(h1.Lightness(), min32(h1.Lightness(), h2.Lightness()), intensity)

	return h1.WithLightness(l).ToRGB()
}

func blendHSLLighten(c1, c2 color.RGB, intensity float32) color.RGB {
	h1 := c1.ToHSL()
	h2 := c2.ToHSL()

	l2 := h1.Lightness()
	if h2.Lightness() > l2 {
		l2 = h2.Lightness()
	}
	l := applyIntensity(h1.Lightness(), l2, intensity)

	return h1.WithLightness(l).ToRGB()
}

func blendLChDarken(c1, c2 color.RGB, intensity float32) color.RGB {
	l1 := c1.ToLCh(color.D65O2)
	l2 := c2.ToLCh(color.D65O2)

	l := applyIntensity(l1.L(), min32(l1.L(), l2.L()), intensity)

	return l1.WithL(l).ToRGB()
}

func blendLChLighten(c1, c2 color.RGB, intensity float32) color.RGB {
	l1 := c1.ToLCh(color.D65O2)
	l2 := c2.ToLCh(color.D65O2)

	lv := l1.L()
	if l2.L() > lv {
		lv = l2.L()
	}
	l := applyIntensity(l1.L(), lv, intensity)

	return l1.WithL(l).ToRGB()
}

func blendLChHue(c1, c2 color.RGB, intensity float32) color.RGB {
	l1 := c1.ToLCh(color.D65O2)
	l2 := c2.ToLCh(color.D65O2)

	return l1.WithH(applyIntensity(l1.H(), l2.H(), intensity)).ToRGB()
}

func blendLChSaturation(c1, c2 color.RGB, intensity float32) color.RGB {
	l1 := c1.ToLCh(color.D65O2)
	l2 := c2.ToLCh(color.D65O2)

	return l1.WithC(applyIntensity(l1.C(), l2.C(), intensity)).ToRGB()
}

func blendLChColor(c1, c2 color.RGB, intensity float32) color.RGB {
	l1 := c1.ToLCh(color.D65O2)
	l2 := c2.ToLCh(color.D65O2)

	return l1.
		WithC(applyIntensity(l1.C(), l2.C(), intensity)).
		WithH(applyIntensity(l1.H(), l2.H(), intensity)).
		ToRGB()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
