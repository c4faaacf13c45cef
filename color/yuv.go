package color

// Matrices for the YUV conversion, applied to gamma-encoded sRGB values.
var (
	rgbToYUV = [3][3]float32{
		{0.299, 0.587, 0.114},
		{-0.14714119, -0.28886917, 0.43601036},
		{0.6149754, -0.5149651, -0.10001026},
	}

	yuvToRGB = [3][3]float32{
		{1.0, 0.0, 1.139883},
		{1.0, -0.39464232, -0.58062184},
		{1.0, 2.0320618, 0.0},
	}
)

// YUV is a luma/chroma color with alpha. Y lies in [0,1]; U and V are
// signed chroma offsets. The conversion runs through gamma-encoded sRGB.
type YUV struct {
	Data [4]float32
}

// NewYUV creates an opaque YUV color.
func NewYUV(y, u, v float32) YUV {
	return YUV{Data: [4]float32{y, u, v, 1.0}}
}

// NewYUVWithAlpha creates a YUV color with alpha.
func NewYUVWithAlpha(y, u, v, alpha float32) YUV {
	return YUV{Data: [4]float32{y, u, v, alpha}}
}

// Y returns the luma component.
func (c YUV) Y() float32 { return c.Data[0] }

// U returns the first chroma component.
func (c YUV) U() float32 { return c.Data[1] }

// V returns the second chroma component.
func (c YUV) V() float32 { return c.Data[2] }

// WithY returns a copy with the luma replaced.
func (c YUV) WithY(y float32) YUV {
	return YUV{Data: [4]float32{y, c.Data[1], c.Data[2], c.Data[3]}}
}

// WithU returns a copy with the first chroma component replaced.
func (c YUV) WithU(u float32) YUV {
	return YUV{Data: [4]float32{c.Data[0], u, c.Data[2], c.Data[3]}}
}

// WithV returns a copy with the second chroma component replaced.
func (c YUV) WithV(v float32) YUV {
	return YUV{Data: [4]float32{c.Data[0], c.Data[1], v, c.Data[3]}}
}

// ToRGB converts to sRGB via the inverse matrix, then decodes to linear.
func (c YUV) ToRGB() RGB {
	return SRGB{Data: applyMatrix(c.Data, &yuvToRGB)}.ToRGB()
}

// ToYUV is the forward conversion, applied to the sRGB encoding.
func (c RGB) ToYUV() YUV {
	return YUV{Data: applyMatrix(c.ToSRGB().Data, &rgbToYUV)}
}

// Alpha returns the alpha channel.
func (c YUV) Alpha() float32 { return c.Data[3] }

// WithAlpha returns a copy with the alpha channel replaced.
func (c YUV) WithAlpha(alpha float32) YUV {
	return YUV{Data: [4]float32{c.Data[0], c.Data[1], c.Data[2], alpha}}
}

// MapChannels applies fn to the Y, U and V components.
func (c YUV) MapChannels(fn func(float32) float32) YUV {
	return YUV{Data: mapChannels(c.Data, fn)}
}

// TryMapChannels applies a fallible fn to the Y, U and V components,
// short-circuiting on the first error.
func (c YUV) TryMapChannels(fn func(float32) (float32, error)) (YUV, error) {
	data, err := tryMapChannels(c.Data, fn)
	return YUV{Data: data}, err
}

// Channels returns the raw component values, alpha last.
func (c YUV) Channels() [4]float32 { return c.Data }

// TypeName returns "yuv".
func (c YUV) TypeName() string { return "yuv" }

// Equal reports component-wise equality within Epsilon.
func (c YUV) Equal(other YUV) bool { return equalChannels(c.Data, other.Data) }

func (c YUV) String() string { return formatColor(c.TypeName(), c.Data) }
