package ops

import (
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// ApplyPalette maps every pixel to the nearest palette entry, measured
// by euclidean distance in Lab. Ties keep the first palette entry.
func ApplyPalette(b *pixel.Buffer[color.RGB], palette []color.RGB) *pixel.Buffer[color.RGB] {
	lab := paletteToLab(palette)
	return b.MapColors(func(c color.RGB) color.RGB {
		return nearestPaletteColor(c, palette, lab)
	})
}

// ApplyPaletteInPlace is ApplyPalette mutating the buffer.
func ApplyPaletteInPlace(b *pixel.Buffer[color.RGB], palette []color.RGB) {
	lab := paletteToLab(palette)
	b.Mod(func(c color.RGB) color.RGB {
		return nearestPaletteColor(c, palette, lab)
	})
}

func paletteToLab(palette []color.RGB) []color.Lab {
	lab := make([]color.Lab, len(palette))
	for i, c := range palette {
		lab[i] = c.ToLab(color.D65O2)
	}
	return lab
}

func nearestPaletteColor(c color.RGB, palette []color.RGB, lab []color.Lab) color.RGB {
	if len(palette) == 0 {
		return c
	}

	cl := c.ToLab(color.D65O2)

	best := 0
	bestDist := float32(math.Inf(1))
	for i, p := range lab {
		dl := cl.L() - p.L()
		da := cl.A() - p.A()
		db := cl.B() - p.B()
		dist := float32(math.Sqrt(float64(dl*dl + da*da + db*db)))
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	return palette[best]
}
