package color

import "math"

// WhitePoint selects the reference white for Lab and LCh conversions,
// combining a CIE standard illuminant with an observer angle. The zero
// value is D65 with the 2 degree observer.
type WhitePoint struct {
	id uint8
}

// Supported white points.
var (
	D65O2  = WhitePoint{id: 0}
	D65O10 = WhitePoint{id: 1}
	D50O2  = WhitePoint{id: 2}
	D50O10 = WhitePoint{id: 3}
	EO2    = WhitePoint{id: 4}
	EO10   = WhitePoint{id: 5}
)

var whitePointRefs = [6][3]float32{
	{0.95047, 1.0, 1.08883},
	{0.9480967, 1.0, 1.0730513},
	{0.964212, 1.0, 0.8251883},
	{0.9672063, 1.0, 0.81428015},
	{1.0, 1.0, 1.0},
	{1.0, 1.0, 1.0},
}

var whitePointNames = [6]string{
	"D65,O2", "D65,O10", "D50,O2", "D50,O10", "E,O2", "E,O10",
}

func (w WhitePoint) refs() [3]float32 { return whitePointRefs[w.id] }

func (w WhitePoint) String() string { return whitePointNames[w.id] }

// Lab is a CIE L*a*b* color with alpha, rescaled so L lies in [0,1]
// (divided by 100) and a, b roughly in [-1,1] (divided by 128).
type Lab struct {
	Data [4]float32
	Ref  WhitePoint
}

// NewLab creates an opaque Lab color relative to the given white point.
func NewLab(ref WhitePoint, l, a, b float32) Lab {
	return Lab{Data: [4]float32{l, a, b, 1.0}, Ref: ref}
}

// NewLabWithAlpha creates a Lab color with alpha.
func NewLabWithAlpha(ref WhitePoint, l, a, b, alpha float32) Lab {
	return Lab{Data: [4]float32{l, a, b, alpha}, Ref: ref}
}

// L returns the lightness component.
func (c Lab) L() float32 { return c.Data[0] }

// A returns the green-red component.
func (c Lab) A() float32 { return c.Data[1] }

// B returns the blue-yellow component.
func (c Lab) B() float32 { return c.Data[2] }

// WithL returns a copy with the lightness replaced.
func (c Lab) WithL(l float32) Lab {
	return Lab{Data: [4]float32{l, c.Data[1], c.Data[2], c.Data[3]}, Ref: c.Ref}
}

// WithA returns a copy with the green-red component replaced.
func (c Lab) WithA(a float32) Lab {
	return Lab{Data: [4]float32{c.Data[0], a, c.Data[2], c.Data[3]}, Ref: c.Ref}
}

// WithB returns a copy with the blue-yellow component replaced.
func (c Lab) WithB(b float32) Lab {
	return Lab{Data: [4]float32{c.Data[0], c.Data[1], b, c.Data[3]}, Ref: c.Ref}
}

func labForward(v float32) float32 {
	if v < 0.008856 {
		return (903.3*v + 16.0) / 116.0
	}
	return pow(v, 1.0/3.0)
}

func labInverse(v float32) float32 {
	if v > 0.20689303 {
		return v * v * v
	}
	return (v - 16.0/116.0) / 7.787
}

// ToXYZ converts back to CIE XYZ relative to the white point.
func (c Lab) ToXYZ() XYZ {
	l := c.L() * 100.0
	a := c.A() * 128.0
	b := c.B() * 128.0

	ry := (l + 16.0) / 116.0
	rx := a/500.0 + ry
	rz := ry - b/200.0

	refs := c.Ref.refs()

	return NewXYZWithAlpha(
		labInverse(rx)*refs[0],
		labInverse(ry)*refs[1],
		labInverse(rz)*refs[2],
		c.Alpha(),
	)
}

// ToRGB converts back to linear RGB via XYZ.
func (c Lab) ToRGB() RGB { return c.ToXYZ().ToRGB() }

// ToLCh converts to cylindrical LCh with the same white point.
func (c Lab) ToLCh() LCh {
	a := c.A()
	b := c.B()

	chroma := float32(math.Sqrt(float64(a*a + b*b)))
	hue := float32(math.Atan2(float64(b), float64(a)))

	return LCh{Data: [4]float32{c.L(), chroma, hue, c.Alpha()}, Ref: c.Ref}
}

// ToLab converts linear RGB into Lab relative to the given white point.
func (c RGB) ToLab(ref WhitePoint) Lab {
	xyz := c.ToXYZ()
	refs := ref.refs()

	rx := xyz.X() / refs[0]
	ry := xyz.Y() / refs[1]
	rz := xyz.Z() / refs[2]

	l := 116.0*labForward(ry) - 16.0
	a := 500.0 * (labForward(rx) - labForward(ry))
	b := 200.0 * (labForward(ry) - labForward(rz))

	return NewLabWithAlpha(ref, l/100.0, a/128.0, b/128.0, xyz.Alpha())
}

// ToLCh converts linear RGB into LCh relative to the given white point.
func (c RGB) ToLCh(ref WhitePoint) LCh {
	return c.ToLab(ref).ToLCh()
}

// Alpha returns the alpha channel.
func (c Lab) Alpha() float32 { return c.Data[3] }

// WithAlpha returns a copy with the alpha channel replaced.
func (c Lab) WithAlpha(alpha float32) Lab {
	return Lab{Data: [4]float32{c.Data[0], c.Data[1], c.Data[2], alpha}, Ref: c.Ref}
}

// MapChannels applies fn to the L, a and b components.
func (c Lab) MapChannels(fn func(float32) float32) Lab {
	return Lab{Data: mapChannels(c.Data, fn), Ref: c.Ref}
}

// TryMapChannels applies a fallible fn to the L, a and b components,
// short-circuiting on the first error.
func (c Lab) TryMapChannels(fn func(float32) (float32, error)) (Lab, error) {
	data, err := tryMapChannels(c.Data, fn)
	return Lab{Data: data, Ref: c.Ref}, err
}

// Channels returns the raw component values, alpha last.
func (c Lab) Channels() [4]float32 { return c.Data }

// TypeName returns "lab<D65,O2>" and similar, naming the white point.
func (c Lab) TypeName() string { return "lab<" + c.Ref.String() + ">" }

// Equal reports component-wise equality within Epsilon. Colors relative
// to different white points are never equal.
func (c Lab) Equal(other Lab) bool {
	return c.Ref == other.Ref && equalChannels(c.Data, other.Data)
}

func (c Lab) String() string { return formatColor(c.TypeName(), c.Data) }

// LCh is the cylindrical form of Lab: lightness, chroma and a hue angle
// in radians.
type LCh struct {
	Data [4]float32
	Ref  WhitePoint
}

// NewLCh creates an opaque LCh color relative to the given white point.
func NewLCh(ref WhitePoint, l, c, h float32) LCh {
	return LCh{Data: [4]float32{l, c, h, 1.0}, Ref: ref}
}

// NewLChWithAlpha creates an LCh color with alpha.
func NewLChWithAlpha(ref WhitePoint, l, c, h, alpha float32) LCh {
	return LCh{Data: [4]float32{l, c, h, alpha}, Ref: ref}
}

// L returns the lightness component.
func (c LCh) L() float32 { return c.Data[0] }

// C returns the chroma component.
func (c LCh) C() float32 { return c.Data[1] }

// H returns the hue angle in radians.
func (c LCh) H() float32 { return c.Data[2] }

// WithL returns a copy with the lightness replaced.
func (c LCh) WithL(l float32) LCh {
	return LCh{Data: [4]float32{l, c.Data[1], c.Data[2], c.Data[3]}, Ref: c.Ref}
}

// WithC returns a copy with the chroma replaced.
func (c LCh) WithC(chroma float32) LCh {
	return LCh{Data: [4]float32{c.Data[0], chroma, c.Data[2], c.Data[3]}, Ref: c.Ref}
}

// WithH returns a copy with the hue angle replaced.
func (c LCh) WithH(h float32) LCh {
	return LCh{Data: [4]float32{c.Data[0], c.Data[1], h, c.Data[3]}, Ref: c.Ref}
}

// ToLab converts back to rectangular Lab with the same white point.
func (c LCh) ToLab() Lab {
	chroma := c.C()
	h := float64(c.H())

	a := chroma * float32(math.Cos(h))
	b := chroma * float32(math.Sin(h))

	return Lab{Data: [4]float32{c.L(), a, b, c.Alpha()}, Ref: c.Ref}
}

// ToRGB converts back to linear RGB via Lab and XYZ.
func (c LCh) ToRGB() RGB { return c.ToLab().ToRGB() }

// Alpha returns the alpha channel.
func (c LCh) Alpha() float32 { return c.Data[3] }

// WithAlpha returns a copy with the alpha channel replaced.
func (c LCh) WithAlpha(alpha float32) LCh {
	return LCh{Data: [4]float32{c.Data[0], c.Data[1], c.Data[2], alpha}, Ref: c.Ref}
}

// MapChannels applies fn to the L, C and h components.
func (c LCh) MapChannels(fn func(float32) float32) LCh {
	return LCh{Data: mapChannels(c.Data, fn), Ref: c.Ref}
}

// TryMapChannels applies a fallible fn to the L, C and h components,
// short-circuiting on the first error.
func (c LCh) TryMapChannels(fn func(float32) (float32, error)) (LCh, error) {
	data, err := tryMapChannels(c.Data, fn)
	return LCh{Data: data, Ref: c.Ref}, err
}

// Channels returns the raw component values, alpha last.
func (c LCh) Channels() [4]float32 { return c.Data }

// TypeName returns "lch<D65,O2>" and similar, naming the white point.
func (c LCh) TypeName() string { return "lch<" + c.Ref.String() + ">" }

// Equal reports component-wise equality within Epsilon. Colors relative
// to different white points are never equal.
func (c LCh) Equal(other LCh) bool {
	return c.Ref == other.Ref && equalChannels(c.Data, other.Data)
}

func (c LCh) String() string { return formatColor(c.TypeName(), c.Data) }
