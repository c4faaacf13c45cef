package ops

import (
	"fmt"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// DrawingMode selects how Drawing colors the sketched output.
type DrawingMode uint8

const (
	DrawingGray DrawingMode = iota
	DrawingColored
	DrawingReducedColors
)

// ParseDrawingMode converts a lowercase name into a DrawingMode.
func ParseDrawingMode(s string) (DrawingMode, error) {
	switch s {
	case "gray":
		return DrawingGray, nil
	case "colored", "default":
		return DrawingColored, nil
	case "reduced_colors":
		return DrawingReducedColors, nil
	default:
		return 0, fmt.Errorf("ops: unknown drawing mode %q", s)
	}
}

// Drawing turns the buffer into a pencil-sketch rendition. The radius
// controls the stroke width; the mode keeps the sketch gray or merges
// the original colors back in.
func Drawing(b *pixel.Buffer[color.RGB], radius int, mode DrawingMode) *pixel.Buffer[color.RGB] {
	lightened := b.MapColors(func(c color.RGB) color.RGB {
		return c.MapChannels(func(v float32) float32 {
			return v*0.8 + 0.2
		})
	})

	b1 := GaussianBlur(lightened, 1, 0.0)
	b1 = Unsharp(b1, 4, 4.0, 5.0)
	b1.Mod(func(c color.RGB) color.RGB { return c.WithContrast(1.05) })

	b2 := GaussianBlur(lightened, radius, 0.0)
	b2.Mod(func(c color.RGB) color.RGB { return c.Invert() })

	sketch := Compose([]*pixel.Buffer[color.RGB]{b1, b2}, color.None,
		func(_, _ int, colors []color.RGB) color.RGB {
			return sketchPixel(colors[0], colors[1])
		})

	sketch = Unsharp(sketch, 2, 1.0, 0.0)
	sketch = Despeckle(sketch, 0.15, 1)

	switch mode {
	case DrawingColored:
		return mergeColor(sketch, b)
	case DrawingReducedColors:
		return mergeColorReduced(sketch, b)
	default:
		return sketch
	}
}

// sketchPixel derives the stroke intensity from a sharpened and an
// inverted blurred rendition of the same pixel. Only channel pairs that
// can actually carry an edge contribute.
func sketchPixel(c1, c2 color.RGB) color.RGB {
	var v1, v2 [4]float32
	n := 0

	g1 := c1.ToGrayWithIntensity(color.IntensityAverage).Red()
	g2 := c2.ToGrayWithIntensity(color.IntensityAverage).Red()

	if g1 > 0.05 || g2 < 0.95 {
		v1[n], v2[n] = g1, g2
		n++
	}

	for i := 0; i < 3; i++ {
		if c1.Data[i] > 0.8 || c2.Data[i] < 0.2 {
			v1[n], v2[n] = c1.Data[i], c2.Data[i]
			n++
		}
	}

	diff := float32(1.0)
	for i := 0; i < n; i++ {
		ratio := abs32(v1[i] / min32(1.0-v2[i]+0.01, 1.0))
		if ratio < diff {
			diff = ratio
		}
	}

	if diff > 0.8 {
		diff = 1.0
	} else {
		diff = (diff - 0.5) * 1.2
		if diff < 0.0 {
			diff = 0.0
		}
	}

	return color.NewRGB(diff, diff, diff)
}

// mergeColor keeps the original hue and saturation, darkened by the
// sketch lightness.
func mergeColor(sketch, orig *pixel.Buffer[color.RGB]) *pixel.Buffer[color.RGB] {
	return Compose([]*pixel.Buffer[color.RGB]{sketch, orig}, color.None,
		func(_, _ int, colors []color.RGB) color.RGB {
			d := colors[0].ToHSL()
			o := colors[1].ToHSL()

			return o.WithLightness(min32(o.Lightness(), d.Lightness())).ToRGB()
		})
}

// mergeColorReduced merges a posterized rendition of the original back
// into the sketch, taking saturation, hue, and value from increasingly
// blurred copies.
func mergeColorReduced(sketch, orig *pixel.Buffer[color.RGB]) *pixel.Buffer[color.RGB] {
	reduced := orig.MapColors(func(c color.RGB) color.RGB {
		h := c.ToHSV()
		h = h.WithSaturation((h.Saturation() * 6.0) / 12.0)
		h = h.WithValue(min32((h.Value()*6.5+0.2)/4.5, 1.0))
		return h.ToRGB()
	})

	out := Compose([]*pixel.Buffer[color.RGB]{sketch, GaussianBlur(reduced, 2, 0.0)}, color.None,
		func(_, _ int, colors []color.RGB) color.RGB {
			return colors[0].ToHSV().
				WithSaturation(colors[1].ToHSV().Saturation()).
				ToRGB()
		})

	out = Compose([]*pixel.Buffer[color.RGB]{out, GaussianBlur(orig, 3, 0.0)}, color.None,
		func(_, _ int, colors []color.RGB) color.RGB {
			return colors[0].ToHSV().
				WithHue(colors[1].ToHSV().Hue()).
				ToRGB()
		})

	out = Compose([]*pixel.Buffer[color.RGB]{out, GaussianBlur(orig, 4, 0.0)}, color.None,
		func(_, _ int, colors []color.RGB) color.RGB {
			c := colors[0].ToHSV()
			return c.WithValue(c.Value() * colors[1].ToHSV().Value()).ToRGB()
		})

	return Unsharp(out, 3, 1.5, 0.0).MapColors(func(c color.RGB) color.RGB {
		return c.WithSaturation(1.3).WithGamma(1.1).WithVibrance(0.3)
	})
}
