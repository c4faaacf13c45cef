package ops

import (
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// snnPairs holds the symmetric offset pairs sampled per radius step.
var snnPairs = [4][4]int{
	{-1, -1, 1, 1},
	{0, -1, 0, 1},
	{1, -1, -1, 1},
	{-1, 0, 1, 0},
}

func rgbDistance(c1, c2 color.RGB) float32 {
	dr := c1.Red() - c2.Red()
	dg := c1.Green() - c2.Green()
	db := c1.Blue() - c2.Blue()
	return float32(math.Sqrt(float64(dr*dr + dg*dg + db*db)))
}

// SymmetricNearestNeighbor smooths the buffer while keeping edges: for
// every symmetric pair of neighbors the one closer in color to the
// center pixel is averaged into the result. withCenter includes the
// center pixel itself in the average.
func SymmetricNearestNeighbor(b *pixel.Buffer[color.RGB], radius int, withCenter bool) *pixel.Buffer[color.RGB] {
	return generateRGB(b.Width(), b.Height(), func(x, y int) color.RGB {
		center := b.At(x, y)

		var sum [4]float32
		count := 0
		if withCenter {
			for i := 0; i < 4; i++ {
				sum[i] += center.Data[i]
			}
			count++
		}

		for r := 1; r <= radius; r++ {
			for _, p := range snnPairs {
				c1 := b.AtClamped(x+p[0]*r, y+p[1]*r)
				c2 := b.AtClamped(x+p[2]*r, y+p[3]*r)

				pick := c2
				if rgbDistance(c1, center) < rgbDistance(c2, center) {
					pick = c1
				}

				for i := 0; i < 4; i++ {
					sum[i] += pick.Data[i]
				}
				count++
			}
		}

		scale := 1.0 / float32(count)
		return color.NewRGBWithAlpha(sum[0]*scale, sum[1]*scale, sum[2]*scale, sum[3]*scale)
	})
}
