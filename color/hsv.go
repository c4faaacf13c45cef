package color

// HSV is a hue/saturation/value color with alpha. All components,
// including hue, are stored in [0,1]; hue wraps.
type HSV struct {
	Data [4]float32
}

// NewHSV creates an opaque HSV color.
func NewHSV(h, s, v float32) HSV {
	return HSV{Data: [4]float32{h, s, v, 1.0}}
}

// NewHSVWithAlpha creates an HSV color with alpha.
func NewHSVWithAlpha(h, s, v, alpha float32) HSV {
	return HSV{Data: [4]float32{h, s, v, alpha}}
}

// Hue returns the hue component.
func (c HSV) Hue() float32 { return c.Data[0] }

// Saturation returns the saturation component.
func (c HSV) Saturation() float32 { return c.Data[1] }

// Value returns the value component.
func (c HSV) Value() float32 { return c.Data[2] }

// WithHue returns a copy with the hue replaced.
func (c HSV) WithHue(hue float32) HSV {
	return HSV{Data: [4]float32{hue, c.Data[1], c.Data[2], c.Data[3]}}
}

// WithSaturation returns a copy with the saturation replaced.
func (c HSV) WithSaturation(saturation float32) HSV {
	return HSV{Data: [4]float32{c.Data[0], saturation, c.Data[2], c.Data[3]}}
}

// WithValue returns a copy with the value replaced.
func (c HSV) WithValue(value float32) HSV {
	return HSV{Data: [4]float32{c.Data[0], c.Data[1], value, c.Data[3]}}
}

// ToRGB converts back to linear RGB using sector interpolation.
func (c HSV) ToRGB() RGB {
	hue := c.Hue() * 360.0
	saturation := c.Saturation()
	value := c.Value()

	if saturation <= 0.0 {
		return RGB{Data: [4]float32{value, value, value, c.Alpha()}}
	}

	hh := hue
	if hh >= 360.0 {
		hh = 0.0
	}
	hh /= 60.0

	i := uint32(hh)
	ff := hh - float32(i)

	p := value * (1.0 - saturation)
	q := value * (1.0 - saturation*ff)
	t := value * (1.0 - saturation*(1.0-ff))

	var red, green, blue float32
	switch i {
	case 0:
		red, green, blue = value, t, p
	case 1:
		red, green, blue = q, value, p
	case 2:
		red, green, blue = p, value, t
	case 3:
		red, green, blue = p, q, value
	case 4:
		red, green, blue = t, p, value
	default:
		red, green, blue = value, p, q
	}

	return RGB{Data: [4]float32{red, green, blue, c.Alpha()}}
}

// ToHSV is the forward conversion from linear RGB.
func (c RGB) ToHSV() HSV {
	maxCh := c.Max()
	minCh := c.Min()

	red := c.Red()
	green := c.Green()
	blue := c.Blue()

	var hue, saturation float32
	value := maxCh

	delta := maxCh - minCh

	if delta >= Epsilon || maxCh >= Epsilon {
		saturation = delta / maxCh

		switch {
		case red >= maxCh:
			hue = (green - blue) / delta
		case green >= maxCh:
			hue = 2.0 + (blue-red)/delta
		default:
			hue = 4.0 + (red-green)/delta
		}

		hue *= 60.0

		if hue < 0.0 {
			hue += 360.0
		}
	}

	return HSV{Data: [4]float32{hue / 360.0, saturation, value, c.Alpha()}}
}

// Alpha returns the alpha channel.
func (c HSV) Alpha() float32 { return c.Data[3] }

// WithAlpha returns a copy with the alpha channel replaced.
func (c HSV) WithAlpha(alpha float32) HSV {
	return HSV{Data: [4]float32{c.Data[0], c.Data[1], c.Data[2], alpha}}
}

// MapChannels applies fn to hue, saturation and value.
func (c HSV) MapChannels(fn func(float32) float32) HSV {
	return HSV{Data: mapChannels(c.Data, fn)}
}

// TryMapChannels applies a fallible fn to hue, saturation and value,
// short-circuiting on the first error.
func (c HSV) TryMapChannels(fn func(float32) (float32, error)) (HSV, error) {
	data, err := tryMapChannels(c.Data, fn)
	return HSV{Data: data}, err
}

// Channels returns the raw component values, alpha last.
func (c HSV) Channels() [4]float32 { return c.Data }

// TypeName returns "hsv".
func (c HSV) TypeName() string { return "hsv" }

// Equal reports component-wise equality within Epsilon.
func (c HSV) Equal(other HSV) bool { return equalChannels(c.Data, other.Data) }

func (c HSV) String() string { return formatColor(c.TypeName(), c.Data) }
