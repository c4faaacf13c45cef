package color

// Conversions between arbitrary color types route through linear RGB,
// the pivot of the family. Converting a color into its own type is a
// round trip through RGB, not the identity.

// ToRGB converts any color into linear RGB.
func ToRGB[C Color[C]](c C) RGB { return c.ToRGB() }

// ToSRGB converts any color into gamma-encoded sRGB.
func ToSRGB[C Color[C]](c C) SRGB { return c.ToRGB().ToSRGB() }

// ToHSL converts any color into HSL.
func ToHSL[C Color[C]](c C) HSL { return c.ToRGB().ToHSL() }

// ToHSV converts any color into HSV.
func ToHSV[C Color[C]](c C) HSV { return c.ToRGB().ToHSV() }

// ToYUV converts any color into YUV.
func ToYUV[C Color[C]](c C) YUV { return c.ToRGB().ToYUV() }

// ToXYZ converts any color into CIE XYZ.
func ToXYZ[C Color[C]](c C) XYZ { return c.ToRGB().ToXYZ() }

// ToLab converts any color into Lab relative to the given white point.
func ToLab[C Color[C]](c C, ref WhitePoint) Lab { return c.ToRGB().ToLab(ref) }

// ToLCh converts any color into LCh relative to the given white point.
func ToLCh[C Color[C]](c C, ref WhitePoint) LCh { return c.ToRGB().ToLCh(ref) }
