// Package color provides the color-space family used by pict.
//
// Every color type stores three chromatic channels plus alpha as float32
// values, nominally in [0,1]. Linear RGB is the canonical pivot: each type
// defines a lossless-as-possible conversion to and from it, and all other
// pairwise conversions are routed through the pivot unless a direct
// analytic shortcut exists (gamma curve for sRGB, max/min/chroma formulas
// for HSL/HSV, fixed 3x3 matrices for YUV/XYZ, CIE pivot functions for
// Lab/LCh).
//
// The set of color types is closed on purpose: external implementations of
// the Color interface would risk inconsistent pivot conversions.
package color

import (
	"math"
	"strconv"
	"strings"
)

// Epsilon is the per-channel tolerance used by Equal on every color type.
//
// The precision is based on 2^15 because channel values should survive
// round trips through 16-bit-per-channel images without spurious
// inequality from float rounding.
const Epsilon = 1.0 / 32768.0

// Color is the capability interface implemented by every color type in
// this package. The type parameter is the implementing type itself, so
// WithAlpha and MapChannels return the concrete type.
type Color[C any] interface {
	// ToRGB converts to the linear RGB pivot.
	ToRGB() RGB

	// Alpha returns the alpha channel.
	Alpha() float32

	// WithAlpha returns a copy with the alpha channel replaced.
	WithAlpha(alpha float32) C

	// MapChannels applies fn to the three chromatic channels,
	// preserving alpha.
	MapChannels(fn func(float32) float32) C

	// TryMapChannels is MapChannels with a fallible fn; it returns the
	// first error unchanged.
	TryMapChannels(fn func(float32) (float32, error)) (C, error)

	// Channels returns the raw channel values, alpha last.
	Channels() [4]float32

	// TypeName returns the stable lowercase tag for this color type,
	// e.g. "rgb".
	TypeName() string
}

func clamp(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// equalChannels reports whether two channel sets match within Epsilon.
func equalChannels(a, b [4]float32) bool {
	for i := range a {
		if abs(a[i]-b[i]) > Epsilon {
			return false
		}
	}
	return true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// hasTransparency reports whether alpha differs from fully opaque by more
// than Epsilon.
func hasTransparency(alpha float32) bool {
	return abs(1.0-alpha) > Epsilon
}

// formatColor renders a color as a CSS-like string: the type tag, the
// chromatic channels rounded to 4 decimal digits, and - only when the
// color is transparent - an "a" suffix on the tag plus the alpha value.
func formatColor(typeName string, data [4]float32) string {
	withAlpha := hasTransparency(data[3])

	var b strings.Builder
	b.Grow(28)

	b.WriteString(typeName)
	if withAlpha {
		b.WriteByte('a')
	}
	b.WriteByte('(')

	for i, v := range data[:3] {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatChannel(v))
	}
	if withAlpha {
		b.WriteString(", ")
		b.WriteString(formatChannel(data[3]))
	}

	b.WriteByte(')')
	return b.String()
}

func formatChannel(v float32) string {
	v = float32(math.Round(float64(v)*10000) / 10000)

	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// applyMatrix multiplies the chromatic channels by a 3x3 matrix. Alpha
// passes through unchanged.
func applyMatrix(data [4]float32, m *[3][3]float32) [4]float32 {
	return [4]float32{
		data[0]*m[0][0] + data[1]*m[0][1] + data[2]*m[0][2],
		data[0]*m[1][0] + data[1]*m[1][1] + data[2]*m[1][2],
		data[0]*m[2][0] + data[1]*m[2][1] + data[2]*m[2][2],
		data[3],
	}
}

// mapChannels applies fn to the chromatic channels of data, keeping alpha.
func mapChannels(data [4]float32, fn func(float32) float32) [4]float32 {
	return [4]float32{fn(data[0]), fn(data[1]), fn(data[2]), data[3]}
}

// tryMapChannels is mapChannels with a fallible fn.
func tryMapChannels(data [4]float32, fn func(float32) (float32, error)) ([4]float32, error) {
	var out [4]float32
	var err error
	for i := 0; i < 3; i++ {
		if out[i], err = fn(data[i]); err != nil {
			return out, err
		}
	}
	out[3] = data[3]
	return out, nil
}
