package color

// Matrices for the CIE XYZ conversion, applied to linear RGB values.
var (
	rgbToXYZ = [3][3]float32{
		{0.412453, 0.357580, 0.180423},
		{0.212671, 0.715160, 0.072169},
		{0.019334, 0.119193, 0.950227},
	}

	xyzToRGB = [3][3]float32{
		{3.240479, -1.537150, -0.498535},
		{-0.969256, 1.875991, 0.041556},
		{0.055648, -0.204043, 1.057311},
	}
)

// XYZ is a CIE XYZ color with alpha, Rec.709 primaries with D65 white point.
type XYZ struct {
	Data [4]float32
}

// NewXYZ creates an opaque XYZ color.
func NewXYZ(x, y, z float32) XYZ {
	return XYZ{Data: [4]float32{x, y, z, 1.0}}
}

// NewXYZWithAlpha creates an XYZ color with alpha.
func NewXYZWithAlpha(x, y, z, alpha float32) XYZ {
	return XYZ{Data: [4]float32{x, y, z, alpha}}
}

// X returns the X component.
func (c XYZ) X() float32 { return c.Data[0] }

// Y returns the Y component.
func (c XYZ) Y() float32 { return c.Data[1] }

// Z returns the Z component.
func (c XYZ) Z() float32 { return c.Data[2] }

// WithX returns a copy with the X component replaced.
func (c XYZ) WithX(x float32) XYZ {
	return XYZ{Data: [4]float32{x, c.Data[1], c.Data[2], c.Data[3]}}
}

// WithY returns a copy with the Y component replaced.
func (c XYZ) WithY(y float32) XYZ {
	return XYZ{Data: [4]float32{c.Data[0], y, c.Data[2], c.Data[3]}}
}

// WithZ returns a copy with the Z component replaced.
func (c XYZ) WithZ(z float32) XYZ {
	return XYZ{Data: [4]float32{c.Data[0], c.Data[1], z, c.Data[3]}}
}

// ToRGB converts back to linear RGB. Out-of-gamut results are not clamped.
func (c XYZ) ToRGB() RGB {
	return RGB{Data: applyMatrix(c.Data, &xyzToRGB)}
}

// ToXYZ is the forward conversion from linear RGB.
func (c RGB) ToXYZ() XYZ {
	return XYZ{Data: applyMatrix(c.Data, &rgbToXYZ)}
}

// Alpha returns the alpha channel.
func (c XYZ) Alpha() float32 { return c.Data[3] }

// WithAlpha returns a copy with the alpha channel replaced.
func (c XYZ) WithAlpha(alpha float32) XYZ {
	return XYZ{Data: [4]float32{c.Data[0], c.Data[1], c.Data[2], alpha}}
}

// MapChannels applies fn to the X, Y and Z components.
func (c XYZ) MapChannels(fn func(float32) float32) XYZ {
	return XYZ{Data: mapChannels(c.Data, fn)}
}

// TryMapChannels applies a fallible fn to the X, Y and Z components,
// short-circuiting on the first error.
func (c XYZ) TryMapChannels(fn func(float32) (float32, error)) (XYZ, error) {
	data, err := tryMapChannels(c.Data, fn)
	return XYZ{Data: data}, err
}

// Channels returns the raw component values, alpha last.
func (c XYZ) Channels() [4]float32 { return c.Data }

// TypeName returns "xyz".
func (c XYZ) TypeName() string { return "xyz" }

// Equal reports component-wise equality within Epsilon.
func (c XYZ) Equal(other XYZ) bool { return equalChannels(c.Data, other.Data) }

func (c XYZ) String() string { return formatColor(c.TypeName(), c.Data) }
