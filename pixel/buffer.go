// Package pixel provides the dense row-major pixel buffer that all image
// operations consume and produce, together with the convolution kernels
// applied over it.
//
// Buffers are generic over the color type they hold. Construction and
// direct pixel access treat violations as programmer errors and panic;
// untrusted coordinates should go through AtClamped or AtOptional.
package pixel

import (
	"fmt"
	"math"

	"github.com/gopict/pict/color"
)

// maxDim bounds width, height and total area so index arithmetic stays
// well inside the int32 range.
const maxDim = math.MaxInt32

// Buffer is an owned width x height row-major array of colors.
type Buffer[C color.Color[C]] struct {
	width  int
	height int
	data   []C
}

func validateSize(width, height int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pixel: negative buffer size %dx%d", width, height))
	}
	if (width == 0) != (height == 0) {
		panic(fmt.Sprintf("pixel: invalid empty buffer size %dx%d", width, height))
	}
	if width >= maxDim || height >= maxDim || (height > 0 && width >= maxDim/height) {
		panic(fmt.Sprintf("pixel: buffer size exceeds limits: %dx%d", width, height))
	}
}

// ValidSize reports whether width and height satisfy the buffer size
// invariant. Decoders use it to reject untrusted dimensions without
// triggering the panic in the constructors.
func ValidSize(width, height int) bool {
	if width < 0 || height < 0 {
		return false
	}
	if (width == 0) != (height == 0) {
		return false
	}
	return width < maxDim && height < maxDim && (height == 0 || width < maxDim/height)
}

// New creates a buffer filled with the zero value of C.
func New[C color.Color[C]](width, height int) *Buffer[C] {
	validateSize(width, height)
	return &Buffer[C]{
		width:  width,
		height: height,
		data:   make([]C, width*height),
	}
}

// NewWithColor creates a buffer filled with the given color.
func NewWithColor[C color.Color[C]](width, height int, fill C) *Buffer[C] {
	b := New[C](width, height)
	for i := range b.data {
		b.data[i] = fill
	}
	return b
}

// FromData creates a buffer taking ownership of data. It panics if the
// length does not match width*height.
func FromData[C color.Color[C]](width, height int, data []C) *Buffer[C] {
	validateSize(width, height)
	if len(data) != width*height {
		panic(fmt.Sprintf("pixel: data has wrong length: %dx%d=%d, got %d",
			width, height, width*height, len(data)))
	}
	return &Buffer[C]{width: width, height: height, data: data}
}

// Generate creates a buffer by evaluating fn for every coordinate in
// row-major order.
func Generate[C color.Color[C]](width, height int, fn func(x, y int) C) *Buffer[C] {
	b := New[C](width, height)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.data[i] = fn(x, y)
			i++
		}
	}
	return b
}

// TryGenerate is the fallible variant of Generate. It stops at the first
// error and returns it.
func TryGenerate[C color.Color[C]](width, height int, fn func(x, y int) (C, error)) (*Buffer[C], error) {
	b := New[C](width, height)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, err := fn(x, y)
			if err != nil {
				return nil, err
			}
			b.data[i] = c
			i++
		}
	}
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer[C]) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer[C]) Height() int { return b.height }

// Data returns the underlying row-major pixel slice.
func (b *Buffer[C]) Data() []C { return b.data }

// Clone returns a deep copy of the buffer.
func (b *Buffer[C]) Clone() *Buffer[C] {
	data := make([]C, len(b.data))
	copy(data, b.data)
	return &Buffer[C]{width: b.width, height: b.height, data: data}
}

// Contains reports whether the coordinates lie inside the buffer.
func (b *Buffer[C]) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel at (x, y). It panics when the coordinates are out
// of range.
func (b *Buffer[C]) At(x, y int) C {
	if !b.Contains(x, y) {
		panic(fmt.Sprintf("pixel: coordinates %d,%d out of range for %dx%d buffer",
			x, y, b.width, b.height))
	}
	return b.data[x+y*b.width]
}

// Put replaces the pixel at (x, y). It panics when the coordinates are
// out of range.
func (b *Buffer[C]) Put(x, y int, c C) {
	if !b.Contains(x, y) {
		panic(fmt.Sprintf("pixel: coordinates %d,%d out of range for %dx%d buffer",
			x, y, b.width, b.height))
	}
	b.data[x+y*b.width] = c
}

// AtClamped returns the pixel at (x, y) with out-of-range coordinates
// clamped to the nearest edge.
func (b *Buffer[C]) AtClamped(x, y int) C {
	if x < 0 {
		x = 0
	} else if x >= b.width {
		x = b.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= b.height {
		y = b.height - 1
	}
	return b.data[x+y*b.width]
}

// AtOptional returns the pixel at (x, y) and true, or the zero color and
// false when the coordinates are out of range.
func (b *Buffer[C]) AtOptional(x, y int) (C, bool) {
	if !b.Contains(x, y) {
		var zero C
		return zero, false
	}
	return b.data[x+y*b.width], true
}

// Mod replaces every pixel with fn of itself, in place.
func (b *Buffer[C]) Mod(fn func(C) C) {
	for i, c := range b.data {
		b.data[i] = fn(c)
	}
}

// TryMod is the fallible variant of Mod. It stops at the first error,
// leaving earlier pixels modified.
func (b *Buffer[C]) TryMod(fn func(C) (C, error)) error {
	for i, c := range b.data {
		nc, err := fn(c)
		if err != nil {
			return err
		}
		b.data[i] = nc
	}
	return nil
}

// ModXY is Mod with the pixel coordinates passed to fn.
func (b *Buffer[C]) ModXY(fn func(x, y int, c C) C) {
	for i, c := range b.data {
		b.data[i] = fn(i%b.width, i/b.width, c)
	}
}

// TryModXY is the fallible variant of ModXY.
func (b *Buffer[C]) TryModXY(fn func(x, y int, c C) (C, error)) error {
	for i, c := range b.data {
		nc, err := fn(i%b.width, i/b.width, c)
		if err != nil {
			return err
		}
		b.data[i] = nc
	}
	return nil
}

// MapColors returns a new buffer with fn applied to every pixel.
func (b *Buffer[C]) MapColors(fn func(C) C) *Buffer[C] {
	data := make([]C, len(b.data))
	for i, c := range b.data {
		data[i] = fn(c)
	}
	return &Buffer[C]{width: b.width, height: b.height, data: data}
}

// TryMapColors is the fallible variant of MapColors.
func (b *Buffer[C]) TryMapColors(fn func(C) (C, error)) (*Buffer[C], error) {
	data := make([]C, len(b.data))
	for i, c := range b.data {
		nc, err := fn(c)
		if err != nil {
			return nil, err
		}
		data[i] = nc
	}
	return &Buffer[C]{width: b.width, height: b.height, data: data}, nil
}

// MapColorsXY is MapColors with the pixel coordinates passed to fn.
func (b *Buffer[C]) MapColorsXY(fn func(x, y int, c C) C) *Buffer[C] {
	data := make([]C, len(b.data))
	for i, c := range b.data {
		data[i] = fn(i%b.width, i/b.width, c)
	}
	return &Buffer[C]{width: b.width, height: b.height, data: data}
}

// TryMapColorsXY is the fallible variant of MapColorsXY.
func (b *Buffer[C]) TryMapColorsXY(fn func(x, y int, c C) (C, error)) (*Buffer[C], error) {
	data := make([]C, len(b.data))
	for i, c := range b.data {
		nc, err := fn(i%b.width, i/b.width, c)
		if err != nil {
			return nil, err
		}
		data[i] = nc
	}
	return &Buffer[C]{width: b.width, height: b.height, data: data}, nil
}

// HasTransparency reports whether any pixel has an alpha below opaque.
func (b *Buffer[C]) HasTransparency() bool {
	for _, c := range b.data {
		if 1.0-c.Alpha() > color.Epsilon || c.Alpha()-1.0 > color.Epsilon {
			return true
		}
	}
	return false
}

// Window3 returns the clamped 3x3 neighborhood centered on (x, y). Fully
// interior windows are copied row-contiguously.
func (b *Buffer[C]) Window3(x, y int) [3][3]C {
	var w [3][3]C
	if x >= 1 && y >= 1 && x+1 < b.width && y+1 < b.height {
		for row := 0; row < 3; row++ {
			base := x - 1 + (y-1+row)*b.width
			copy(w[row][:], b.data[base:base+3])
		}
		return w
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			w[row][col] = b.AtClamped(x+col-1, y+row-1)
		}
	}
	return w
}

// Window5 returns the clamped 5x5 neighborhood centered on (x, y).
func (b *Buffer[C]) Window5(x, y int) [5][5]C {
	var w [5][5]C
	if x >= 2 && y >= 2 && x+2 < b.width && y+2 < b.height {
		for row := 0; row < 5; row++ {
			base := x - 2 + (y-2+row)*b.width
			copy(w[row][:], b.data[base:base+5])
		}
		return w
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			w[row][col] = b.AtClamped(x+col-2, y+row-2)
		}
	}
	return w
}

// Window7 returns the clamped 7x7 neighborhood centered on (x, y).
func (b *Buffer[C]) Window7(x, y int) [7][7]C {
	var w [7][7]C
	if x >= 3 && y >= 3 && x+3 < b.width && y+3 < b.height {
		for row := 0; row < 7; row++ {
			base := x - 3 + (y-3+row)*b.width
			copy(w[row][:], b.data[base:base+7])
		}
		return w
	}
	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			w[row][col] = b.AtClamped(x+col-3, y+row-3)
		}
	}
	return w
}

// Window returns the clamped width x height neighborhood centered on
// (x, y), row-major. Used by dynamically sized kernels.
func (b *Buffer[C]) Window(x, y, width, height int) []C {
	out := make([]C, 0, width*height)
	offX := width / 2
	offY := height / 2
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			out = append(out, b.AtClamped(x+col-offX, y+row-offY))
		}
	}
	return out
}

// Map converts a buffer into a buffer of a different color type by
// applying fn to every pixel.
func Map[C color.Color[C], D color.Color[D]](b *Buffer[C], fn func(C) D) *Buffer[D] {
	data := make([]D, len(b.Data()))
	for i, c := range b.Data() {
		data[i] = fn(c)
	}
	return FromData(b.Width(), b.Height(), data)
}

// MapXY is Map with the pixel coordinates passed to fn.
func MapXY[C color.Color[C], D color.Color[D]](b *Buffer[C], fn func(x, y int, c C) D) *Buffer[D] {
	width := b.Width()
	data := make([]D, len(b.Data()))
	for i, c := range b.Data() {
		data[i] = fn(i%width, i/width, c)
	}
	return FromData(width, b.Height(), data)
}

// TryMap is the fallible variant of Map.
func TryMap[C color.Color[C], D color.Color[D]](b *Buffer[C], fn func(C) (D, error)) (*Buffer[D], error) {
	data := make([]D, len(b.Data()))
	for i, c := range b.Data() {
		d, err := fn(c)
		if err != nil {
			return nil, err
		}
		data[i] = d
	}
	return FromData(b.Width(), b.Height(), data), nil
}

// ToRGB converts every pixel into linear RGB.
func ToRGB[C color.Color[C]](b *Buffer[C]) *Buffer[color.RGB] {
	return Map(b, func(c C) color.RGB { return c.ToRGB() })
}

// ToSRGB converts every pixel into gamma-encoded sRGB.
func ToSRGB[C color.Color[C]](b *Buffer[C]) *Buffer[color.SRGB] {
	return Map(b, color.ToSRGB[C])
}

// ToHSL converts every pixel into HSL.
func ToHSL[C color.Color[C]](b *Buffer[C]) *Buffer[color.HSL] {
	return Map(b, color.ToHSL[C])
}

// ToHSV converts every pixel into HSV.
func ToHSV[C color.Color[C]](b *Buffer[C]) *Buffer[color.HSV] {
	return Map(b, color.ToHSV[C])
}

// ToYUV converts every pixel into YUV.
func ToYUV[C color.Color[C]](b *Buffer[C]) *Buffer[color.YUV] {
	return Map(b, color.ToYUV[C])
}

// ToXYZ converts every pixel into CIE XYZ.
func ToXYZ[C color.Color[C]](b *Buffer[C]) *Buffer[color.XYZ] {
	return Map(b, color.ToXYZ[C])
}

// ToLab converts every pixel into Lab relative to the given white point.
func ToLab[C color.Color[C]](b *Buffer[C], ref color.WhitePoint) *Buffer[color.Lab] {
	return Map(b, func(c C) color.Lab { return color.ToLab(c, ref) })
}

// IsGrayscale reports whether every pixel of an RGB buffer is gray.
func IsGrayscale(b *Buffer[color.RGB]) bool {
	for _, c := range b.Data() {
		if !c.IsGrayscale() {
			return false
		}
	}
	return true
}
