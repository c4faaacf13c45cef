package color

// SRGB is a gamma-encoded sRGB color with alpha. This is the encoding most
// 8-bit image formats store; convert to RGB before doing arithmetic on
// light intensities.
type SRGB struct {
	Data [4]float32
}

// NewSRGB creates an opaque sRGB color. Channels are clamped to [0,1].
func NewSRGB(r, g, b float32) SRGB {
	return SRGB{Data: [4]float32{clamp(r), clamp(g), clamp(b), 1.0}}
}

// NewSRGBWithAlpha creates an sRGB color with alpha. All channels are
// clamped to [0,1].
func NewSRGBWithAlpha(r, g, b, alpha float32) SRGB {
	return SRGB{Data: [4]float32{clamp(r), clamp(g), clamp(b), clamp(alpha)}}
}

// GammaToLinear decodes a single sRGB-encoded channel into linear light.
func GammaToLinear(value float32) float32 {
	if value <= 0.04045 {
		return value / 12.92
	}
	return pow((value+0.055)/1.055, 2.4)
}

// LinearToGamma encodes a single linear channel with the sRGB curve.
func LinearToGamma(value float32) float32 {
	if value <= 0.0031308 {
		return value * 12.92
	}
	return 1.055*pow(value, 1.0/2.4) - 0.055
}

// Red returns the red channel.
func (c SRGB) Red() float32 { return c.Data[0] }

// Green returns the green channel.
func (c SRGB) Green() float32 { return c.Data[1] }

// Blue returns the blue channel.
func (c SRGB) Blue() float32 { return c.Data[2] }

// ToRGB decodes each chromatic channel into linear light.
func (c SRGB) ToRGB() RGB {
	return RGB{Data: [4]float32{
		GammaToLinear(c.Data[0]),
		GammaToLinear(c.Data[1]),
		GammaToLinear(c.Data[2]),
		c.Data[3],
	}}
}

// ToSRGB encodes each chromatic channel of a linear color with the
// sRGB curve.
func (c RGB) ToSRGB() SRGB {
	return SRGB{Data: [4]float32{
		LinearToGamma(c.Data[0]),
		LinearToGamma(c.Data[1]),
		LinearToGamma(c.Data[2]),
		c.Data[3],
	}}
}

// Alpha returns the alpha channel.
func (c SRGB) Alpha() float32 { return c.Data[3] }

// WithAlpha returns a copy with the alpha channel replaced, unclamped.
func (c SRGB) WithAlpha(alpha float32) SRGB {
	return SRGB{Data: [4]float32{c.Data[0], c.Data[1], c.Data[2], alpha}}
}

// MapChannels applies fn to the chromatic channels, clamping the results.
func (c SRGB) MapChannels(fn func(float32) float32) SRGB {
	return SRGB{Data: mapChannels(c.Data, func(v float32) float32 { return clamp(fn(v)) })}
}

// TryMapChannels applies a fallible fn to the chromatic channels, clamping
// each result, short-circuiting on the first error.
func (c SRGB) TryMapChannels(fn func(float32) (float32, error)) (SRGB, error) {
	data, err := tryMapChannels(c.Data, func(v float32) (float32, error) {
		r, err := fn(v)
		return clamp(r), err
	})
	return SRGB{Data: data}, err
}

// Channels returns the raw channel values, alpha last.
func (c SRGB) Channels() [4]float32 { return c.Data }

// TypeName returns "srgb".
func (c SRGB) TypeName() string { return "srgb" }

// Equal reports channel-wise equality within Epsilon.
func (c SRGB) Equal(other SRGB) bool { return equalChannels(c.Data, other.Data) }

func (c SRGB) String() string { return formatColor(c.TypeName(), c.Data) }
