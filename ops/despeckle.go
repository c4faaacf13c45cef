package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// Despeckle removes isolated dark pixels. A pixel whose average
// intensity is below threshold is replaced by the mean of its brighter
// 3x3 neighbors, provided at most amount neighbors are also below the
// threshold. Alpha is kept from the original pixel.
func Despeckle(b *pixel.Buffer[color.RGB], threshold float32, amount int) *pixel.Buffer[color.RGB] {
	return b.MapColorsXY(func(x, y int, c color.RGB) color.RGB {
		if c.ToGrayWithIntensity(color.IntensityAverage).Red() >= threshold {
			return c
		}

		window := b.Window3(x, y)

		below := 0
		var sum [3]float32
		for wy := 0; wy < 3; wy++ {
			for wx := 0; wx < 3; wx++ {
				n := window[wy][wx]
				if n.ToGrayWithIntensity(color.IntensityAverage).Red() < threshold {
					below++
					continue
				}
				sum[0] += n.Data[0]
				sum[1] += n.Data[1]
				sum[2] += n.Data[2]
			}
		}

		if below > amount {
			return c
		}

		scale := 1.0 / float32(9-below)
		return color.NewRGBWithAlpha(sum[0]*scale, sum[1]*scale, sum[2]*scale, c.Alpha())
	})
}
