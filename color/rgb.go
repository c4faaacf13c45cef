package color

import (
	"fmt"
	"math"
)

// Intensity selects a metric reducing a color to a single brightness value.
type Intensity uint8

const (
	// IntensityRec709Luma weights channels with Rec.709-like luma
	// coefficients. This is the default metric.
	IntensityRec709Luma Intensity = iota
	// IntensityRec601Luma weights channels with Rec.601 luma coefficients.
	IntensityRec601Luma
	// IntensityAverage uses the unweighted channel mean.
	IntensityAverage
	// IntensityBrightness uses the maximum channel.
	IntensityBrightness
	// IntensityLightness uses (min+max)/2.
	IntensityLightness
	// IntensitySaturation uses HSL saturation.
	IntensitySaturation
	// IntensityRed, IntensityGreen, IntensityBlue use a single channel.
	IntensityRed
	IntensityGreen
	IntensityBlue
)

// ParseIntensity converts a lowercase name into an Intensity.
func ParseIntensity(s string) (Intensity, error) {
	switch s {
	case "rec709luma", "default":
		return IntensityRec709Luma, nil
	case "rec601luma":
		return IntensityRec601Luma, nil
	case "average":
		return IntensityAverage, nil
	case "brightness":
		return IntensityBrightness, nil
	case "lightness":
		return IntensityLightness, nil
	case "saturation":
		return IntensitySaturation, nil
	case "red":
		return IntensityRed, nil
	case "green":
		return IntensityGreen, nil
	case "blue":
		return IntensityBlue, nil
	default:
		return 0, fmt.Errorf("color: unknown intensity %q", s)
	}
}

// RGB is a linear (not gamma-encoded) RGB color with alpha. Channel values
// are proportional to physical light intensity. RGB is the pivot type all
// other color spaces convert through.
type RGB struct {
	Data [4]float32
}

// NewRGB creates an opaque linear RGB color. Channels are clamped to [0,1].
func NewRGB(r, g, b float32) RGB {
	return RGB{Data: [4]float32{clamp(r), clamp(g), clamp(b), 1.0}}
}

// NewRGBWithAlpha creates a linear RGB color with alpha. All channels are
// clamped to [0,1].
func NewRGBWithAlpha(r, g, b, alpha float32) RGB {
	return RGB{Data: [4]float32{clamp(r), clamp(g), clamp(b), clamp(alpha)}}
}

// Common colors.
var (
	None    = RGB{Data: [4]float32{0, 0, 0, 0}}
	Black   = RGB{Data: [4]float32{0, 0, 0, 1}}
	White   = RGB{Data: [4]float32{1, 1, 1, 1}}
	Red     = RGB{Data: [4]float32{1, 0, 0, 1}}
	Green   = RGB{Data: [4]float32{0, 1, 0, 1}}
	Blue    = RGB{Data: [4]float32{0, 0, 1, 1}}
	Cyan    = RGB{Data: [4]float32{0, 1, 1, 1}}
	Magenta = RGB{Data: [4]float32{1, 0, 1, 1}}
	Yellow  = RGB{Data: [4]float32{1, 1, 0, 1}}
)

// Red returns the red channel.
func (c RGB) Red() float32 { return c.Data[0] }

// Green returns the green channel.
func (c RGB) Green() float32 { return c.Data[1] }

// Blue returns the blue channel.
func (c RGB) Blue() float32 { return c.Data[2] }

// WithRed returns a copy with the red channel replaced, unclamped.
func (c RGB) WithRed(r float32) RGB {
	return RGB{Data: [4]float32{r, c.Data[1], c.Data[2], c.Data[3]}}
}

// WithGreen returns a copy with the green channel replaced, unclamped.
func (c RGB) WithGreen(g float32) RGB {
	return RGB{Data: [4]float32{c.Data[0], g, c.Data[2], c.Data[3]}}
}

// WithBlue returns a copy with the blue channel replaced, unclamped.
func (c RGB) WithBlue(b float32) RGB {
	return RGB{Data: [4]float32{c.Data[0], c.Data[1], b, c.Data[3]}}
}

// Max returns the largest chromatic channel.
func (c RGB) Max() float32 {
	v := c.Data[0]
	if c.Data[1] > v {
		v = c.Data[1]
	}
	if c.Data[2] > v {
		v = c.Data[2]
	}
	return v
}

// Min returns the smallest chromatic channel.
func (c RGB) Min() float32 {
	v := c.Data[0]
	if c.Data[1] < v {
		v = c.Data[1]
	}
	if c.Data[2] < v {
		v = c.Data[2]
	}
	return v
}

// IsGrayscale reports whether all chromatic channels match within Epsilon.
func (c RGB) IsGrayscale() bool {
	return abs(c.Data[0]-c.Data[1]) < Epsilon && abs(c.Data[1]-c.Data[2]) < Epsilon
}

// ToGray converts to grayscale using the default Rec.709 luma metric.
func (c RGB) ToGray() RGB {
	return c.ToGrayWithIntensity(IntensityRec709Luma)
}

// ToGrayWithIntensity converts to grayscale using the given metric.
// Alpha is preserved.
func (c RGB) ToGrayWithIntensity(intensity Intensity) RGB {
	var v float32
	switch intensity {
	case IntensityRec601Luma:
		v = c.Data[0]*0.298839 + c.Data[1]*0.586811 + c.Data[2]*0.114350
	case IntensityRec709Luma:
		v = c.Data[0]*0.212656 + c.Data[1]*0.715158 + c.Data[2]*0.072186
	case IntensityAverage:
		v = (c.Data[0] + c.Data[1] + c.Data[2]) / 3.0
	case IntensityBrightness:
		v = c.Max()
	case IntensityLightness:
		v = (c.Min() + c.Max()) / 2.0
	case IntensitySaturation:
		v = c.ToHSL().Saturation()
	case IntensityRed:
		v = c.Data[0]
	case IntensityGreen:
		v = c.Data[1]
	case IntensityBlue:
		v = c.Data[2]
	}
	return RGB{Data: [4]float32{v, v, v, c.Data[3]}}
}

// Invert returns the channel-wise complement, unclamped.
func (c RGB) Invert() RGB {
	return RGB{Data: mapChannels(c.Data, func(v float32) float32 { return 1.0 - v })}
}

// Difference returns the per-channel absolute difference to another color.
func (c RGB) Difference(other RGB) RGB {
	return NewRGB(
		abs(c.Data[0]-other.Data[0]),
		abs(c.Data[1]-other.Data[1]),
		abs(c.Data[2]-other.Data[2]),
	)
}

// WithGamma applies a gamma curve v^(1/gamma) to each chromatic channel.
func (c RGB) WithGamma(gamma float32) RGB {
	return c.MapChannels(func(v float32) float32 {
		return pow(v, 1.0/gamma)
	})
}

// WithLevel remaps channels so blackPoint maps to 0 and whitePoint to 1,
// then applies gamma.
func (c RGB) WithLevel(blackPoint, whitePoint, gamma float32) RGB {
	return c.MapChannels(func(v float32) float32 {
		diff := whitePoint - blackPoint
		factor := 1.0 / diff
		if abs(diff) < math.SmallestNonzeroFloat32 {
			factor = 1.0 / Epsilon
		}
		return pow((v-blackPoint)*factor, 1.0/gamma)
	})
}

// WithBrightness adds factor to each chromatic channel, clamped.
func (c RGB) WithBrightness(factor float32) RGB {
	return c.MapChannels(func(v float32) float32 { return v + factor })
}

// WithContrast scales the distance of each channel from mid-gray, clamped.
func (c RGB) WithContrast(factor float32) RGB {
	return c.MapChannels(func(v float32) float32 {
		return (v-0.5)*factor + 0.5
	})
}

// WithBrightnessContrast applies brightness and contrast in one pass.
func (c RGB) WithBrightnessContrast(brightness, contrast float32) RGB {
	return c.MapChannels(func(v float32) float32 {
		return (v+brightness-0.5)*contrast + 0.5
	})
}

// WithSaturation scales HSL saturation by factor.
func (c RGB) WithSaturation(factor float32) RGB {
	hsl := c.ToHSL()
	return HSL{Data: [4]float32{hsl.Hue(), clamp(hsl.Saturation() * factor), hsl.Lightness(), c.Alpha()}}.ToRGB()
}

// StretchSaturation scales HSL saturation around the midpoint 0.5.
func (c RGB) StretchSaturation(factor float32) RGB {
	hsl := c.ToHSL()
	s := (hsl.Saturation()-0.5)*factor + 0.5
	return HSL{Data: [4]float32{hsl.Hue(), clamp(s), hsl.Lightness(), c.Alpha()}}.ToRGB()
}

// WithLightness scales HSL lightness by factor.
func (c RGB) WithLightness(factor float32) RGB {
	hsl := c.ToHSL()
	return HSL{Data: [4]float32{hsl.Hue(), hsl.Saturation(), clamp(hsl.Lightness() * factor), c.Alpha()}}.ToRGB()
}

// WithHueRotate shifts the hue by the given amount in degrees.
func (c RGB) WithHueRotate(degrees float32) RGB {
	hsl := c.ToHSL()
	hue := hsl.Hue() + degrees/360.0
	if hue >= 1.0 {
		hue -= 1.0
	} else if hue < 0.0 {
		hue += 1.0
	}
	return HSL{Data: [4]float32{hue, hsl.Saturation(), hsl.Lightness(), c.Alpha()}}.ToRGB()
}

// Modulate scales hue, saturation and lightness at once.
func (c RGB) Modulate(hue, saturation, lightness float32) RGB {
	hsl := c.ToHSL()
	return HSL{Data: [4]float32{
		clamp(hsl.Hue() * hue),
		clamp(hsl.Saturation() * saturation),
		clamp(hsl.Lightness() * lightness),
		c.Alpha(),
	}}.ToRGB()
}

// WithVibrance increases saturation using a sine ramp based on the current
// saturation, saturating reds less than other hues.
func (c RGB) WithVibrance(factor float32) RGB {
	hsl := c.ToHSL()
	s := hsl.Saturation()

	scale := factor
	scale *= min32(sin(hsl.Hue()*math.Pi)*1.5, 1.0)

	s += sin(s*math.Pi) * scale

	return NewHSL(hsl.Hue(), clamp(s), hsl.Lightness()).ToRGB()
}

// WithSepia applies the classic sepia tone matrix.
func (c RGB) WithSepia() RGB {
	r := c.Red()*0.393 + c.Green()*0.769 + c.Blue()*0.189
	g := c.Red()*0.349 + c.Green()*0.686 + c.Blue()*0.168
	b := c.Red()*0.272 + c.Green()*0.534 + c.Blue()*0.131
	return NewRGBWithAlpha(r, g, b, c.Alpha())
}

// AlphaBlend composites other over c using other's alpha, returning the
// combined color with alpha min(a1+a2, 1).
func (c RGB) AlphaBlend(other RGB) RGB {
	a := other.Alpha()
	return NewRGBWithAlpha(
		other.Data[0]*a+(1.0-a)*c.Data[0],
		other.Data[1]*a+(1.0-a)*c.Data[1],
		other.Data[2]*a+(1.0-a)*c.Data[2],
		min32(c.Alpha()+a, 1.0),
	)
}

// MapChannelsUnclamped applies fn to the chromatic channels without
// clamping the results. Alpha is preserved.
func (c RGB) MapChannelsUnclamped(fn func(float32) float32) RGB {
	return RGB{Data: mapChannels(c.Data, fn)}
}

// ToRGB returns the color itself; RGB is the pivot.
func (c RGB) ToRGB() RGB { return c }

// Alpha returns the alpha channel.
func (c RGB) Alpha() float32 { return c.Data[3] }

// WithAlpha returns a copy with the alpha channel replaced, unclamped.
func (c RGB) WithAlpha(alpha float32) RGB {
	return RGB{Data: [4]float32{c.Data[0], c.Data[1], c.Data[2], alpha}}
}

// MapChannels applies fn to the chromatic channels, clamping the results.
func (c RGB) MapChannels(fn func(float32) float32) RGB {
	return RGB{Data: mapChannels(c.Data, func(v float32) float32 { return clamp(fn(v)) })}
}

// TryMapChannels applies a fallible fn to the chromatic channels, clamping
// each result, short-circuiting on the first error.
func (c RGB) TryMapChannels(fn func(float32) (float32, error)) (RGB, error) {
	data, err := tryMapChannels(c.Data, func(v float32) (float32, error) {
		r, err := fn(v)
		return clamp(r), err
	})
	return RGB{Data: data}, err
}

// Channels returns the raw channel values, alpha last.
func (c RGB) Channels() [4]float32 { return c.Data }

// TypeName returns "rgb".
func (c RGB) TypeName() string { return "rgb" }

// Equal reports channel-wise equality within Epsilon.
func (c RGB) Equal(other RGB) bool { return equalChannels(c.Data, other.Data) }

// HasTransparency reports whether alpha differs from opaque within Epsilon.
func (c RGB) HasTransparency() bool { return hasTransparency(c.Data[3]) }

func (c RGB) String() string { return formatColor(c.TypeName(), c.Data) }

func pow(v, e float32) float32 {
	return float32(math.Pow(float64(v), float64(e)))
}

func sin(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
