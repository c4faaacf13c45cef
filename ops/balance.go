package ops

import (
	"fmt"
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// BalanceMode selects the color space whose channels BalanceChannels
// levels.
type BalanceMode uint8

const (
	BalanceRGB BalanceMode = iota
	BalanceSRGB
	BalanceHSV
	BalanceHSL
	BalanceLCh
)

// ParseBalanceMode converts a lowercase name into a BalanceMode.
func ParseBalanceMode(s string) (BalanceMode, error) {
	switch s {
	case "rgb":
		return BalanceRGB, nil
	case "srgb":
		return BalanceSRGB, nil
	case "hsv":
		return BalanceHSV, nil
	case "hsl":
		return BalanceHSL, nil
	case "lch":
		return BalanceLCh, nil
	default:
		return 0, fmt.Errorf("ops: unknown balance mode %q", s)
	}
}

// balanceSpace describes which channels of which space a mode levels.
type balanceSpace struct {
	start, channels int
	to              func(color.RGB) [4]float32
	from            func([4]float32) color.RGB
}

func balanceSpaceFor(mode BalanceMode) balanceSpace {
	switch mode {
	case BalanceSRGB:
		return balanceSpace{
			start: 0, channels: 3,
			to:   func(c color.RGB) [4]float32 { return c.ToSRGB().Data },
			from: func(d [4]float32) color.RGB { return color.SRGB{Data: d}.ToRGB() },
		}
	case BalanceHSV:
		return balanceSpace{
			start: 1, channels: 2,
			to:   func(c color.RGB) [4]float32 { return c.ToHSV().Data },
			from: func(d [4]float32) color.RGB { return color.HSV{Data: d}.ToRGB() },
		}
	case BalanceHSL:
		return balanceSpace{
			start: 1, channels: 2,
			to:   func(c color.RGB) [4]float32 { return c.ToHSL().Data },
			from: func(d [4]float32) color.RGB { return color.HSL{Data: d}.ToRGB() },
		}
	case BalanceLCh:
		return balanceSpace{
			start: 0, channels: 2,
			to:   func(c color.RGB) [4]float32 { return c.ToLCh(color.D65O2).Data },
			from: func(d [4]float32) color.RGB {
				return color.LCh{Data: d, Ref: color.D65O2}.ToRGB()
			},
		}
	default:
		return balanceSpace{
			start: 0, channels: 3,
			to:   func(c color.RGB) [4]float32 { return c.Data },
			from: func(d [4]float32) color.RGB { return color.RGB{Data: d} },
		}
	}
}

// balanceLevelChannel levels a channel between its black and white
// points, with the correction faded out for channels whose populated
// range is already narrow.
func balanceLevelChannel(value, blackPoint, whitePoint float32) float32 {
	diff := whitePoint - blackPoint

	scale := float32(math.Tanh(float64(abs32(diff) * 10.0)))

	if scale <= epsilon32 {
		return value
	}
	factor := 1.0 / diff
	return (value - blackPoint*scale) * factor * scale
}

// BalanceChannels levels each selected channel independently so its
// populated range spans [0, 1]. Threshold is the per-mille population
// fraction ignored at each end of every channel.
func BalanceChannels(b *pixel.Buffer[color.RGB], mode BalanceMode, threshold float32) *pixel.Buffer[color.RGB] {
	threshold /= 1000.0

	space := balanceSpaceFor(mode)

	hist := make([][256]float32, space.channels)
	weight := 1.0 / float32(len(b.Data()))
	for _, c := range b.Data() {
		d := space.to(c)
		for i := 0; i < space.channels; i++ {
			v := d[space.start+i] * 255.0
			if v < 0.0 {
				v = 0.0
			} else if v > 255.0 {
				v = 255.0
			}
			hist[i][uint8(v)] += weight
		}
	}

	minV := make([]float32, space.channels)
	maxV := make([]float32, space.channels)
	for i := 0; i < space.channels; i++ {
		minV[i] = histogramMin(&hist[i], threshold)
		maxV[i] = histogramMax(&hist[i], threshold)
	}

	return b.MapColors(func(c color.RGB) color.RGB {
		d := space.to(c)
		for i := 0; i < space.channels; i++ {
			d[space.start+i] = balanceLevelChannel(d[space.start+i], minV[i], maxV[i])
		}
		return space.from(d)
	})
}
