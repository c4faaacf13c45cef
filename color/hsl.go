package color

// HSL is a hue/saturation/lightness color with alpha. All components,
// including hue, are stored in [0,1]; hue wraps.
type HSL struct {
	Data [4]float32
}

// NewHSL creates an opaque HSL color.
func NewHSL(h, s, l float32) HSL {
	return HSL{Data: [4]float32{h, s, l, 1.0}}
}

// NewHSLWithAlpha creates an HSL color with alpha.
func NewHSLWithAlpha(h, s, l, alpha float32) HSL {
	return HSL{Data: [4]float32{h, s, l, alpha}}
}

// Hue returns the hue component.
func (c HSL) Hue() float32 { return c.Data[0] }

// Saturation returns the saturation component.
func (c HSL) Saturation() float32 { return c.Data[1] }

// Lightness returns the lightness component.
func (c HSL) Lightness() float32 { return c.Data[2] }

// WithHue returns a copy with the hue replaced.
func (c HSL) WithHue(hue float32) HSL {
	return HSL{Data: [4]float32{hue, c.Data[1], c.Data[2], c.Data[3]}}
}

// WithSaturation returns a copy with the saturation replaced.
func (c HSL) WithSaturation(saturation float32) HSL {
	return HSL{Data: [4]float32{c.Data[0], saturation, c.Data[2], c.Data[3]}}
}

// WithLightness returns a copy with the lightness replaced.
func (c HSL) WithLightness(lightness float32) HSL {
	return HSL{Data: [4]float32{c.Data[0], c.Data[1], lightness, c.Data[3]}}
}

func hueToChannel(p, q, t float32) float32 {
	if t < 0.0 {
		t += 1.0
	}
	if t > 1.0 {
		t -= 1.0
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6.0*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}

// ToRGB converts back to linear RGB.
func (c HSL) ToRGB() RGB {
	hue := c.Hue()
	saturation := c.Saturation()
	lightness := c.Lightness()

	if saturation == 0.0 {
		// achromatic
		return NewRGBWithAlpha(lightness, lightness, lightness, c.Alpha())
	}

	var q float32
	if lightness < 0.5 {
		q = lightness * (1.0 + saturation)
	} else {
		q = lightness + saturation - lightness*saturation
	}
	p := 2.0*lightness - q

	return NewRGBWithAlpha(
		hueToChannel(p, q, hue+1.0/3.0),
		hueToChannel(p, q, hue),
		hueToChannel(p, q, hue-1.0/3.0),
		c.Alpha(),
	)
}

// ToHSL on RGB is the forward conversion used by every other type.
func (c RGB) ToHSL() HSL {
	maxCh := c.Max()
	minCh := c.Min()

	red := c.Red()
	green := c.Green()
	blue := c.Blue()

	var hue, saturation float32
	lightness := (maxCh + minCh) / 2.0

	delta := maxCh - minCh

	if delta >= Epsilon {
		if lightness > 0.5 {
			saturation = delta / (2.0 - maxCh - minCh)
		} else {
			saturation = delta / (maxCh + minCh)
		}

		switch {
		case abs(maxCh-red) < Epsilon:
			hue = (green - blue) / delta
			if green < blue {
				hue += 6.0
			}
		case abs(maxCh-green) < Epsilon:
			hue = (blue-red)/delta + 2.0
		default:
			hue = (red-green)/delta + 4.0
		}

		hue /= 6.0
	}

	return HSL{Data: [4]float32{hue, saturation, lightness, c.Alpha()}}
}

// Alpha returns the alpha channel.
func (c HSL) Alpha() float32 { return c.Data[3] }

// WithAlpha returns a copy with the alpha channel replaced.
func (c HSL) WithAlpha(alpha float32) HSL {
	return HSL{Data: [4]float32{c.Data[0], c.Data[1], c.Data[2], alpha}}
}

// MapChannels applies fn to hue, saturation and lightness.
func (c HSL) MapChannels(fn func(float32) float32) HSL {
	return HSL{Data: mapChannels(c.Data, fn)}
}

// TryMapChannels applies a fallible fn to hue, saturation and lightness,
// short-circuiting on the first error.
func (c HSL) TryMapChannels(fn func(float32) (float32, error)) (HSL, error) {
	data, err := tryMapChannels(c.Data, fn)
	return HSL{Data: data}, err
}

// Channels returns the raw component values, alpha last.
func (c HSL) Channels() [4]float32 { return c.Data }

// TypeName returns "hsl".
func (c HSL) TypeName() string { return "hsl" }

// Equal reports component-wise equality within Epsilon.
func (c HSL) Equal(other HSL) bool { return equalChannels(c.Data, other.Data) }

func (c HSL) String() string { return formatColor(c.TypeName(), c.Data) }
