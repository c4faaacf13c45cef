package pict

import (
	"io"

	"github.com/gopict/pict/codec"
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/ops"
	"github.com/gopict/pict/pixel"
)

// Image ties a linear RGB pixel buffer to the operations and codecs.
// All operations are functional: they return a new Image and leave the
// receiver untouched. The zero value is not usable; construct images
// with New, FromBuffer, Open or Decode.
type Image struct {
	buffer *pixel.Buffer[color.RGB]

	// background fills pixels sampled from outside the source during
	// geometric transforms. Defaults to fully transparent.
	background color.RGB
}

// New creates a fully transparent image.
func New(width, height int) *Image {
	return FromBuffer(pixel.New[color.RGB](width, height))
}

// NewWithColor creates an image filled with a color.
func NewWithColor(width, height int, c color.RGB) *Image {
	return FromBuffer(pixel.NewWithColor(width, height, c))
}

// FromBuffer wraps an existing buffer. The image takes ownership.
func FromBuffer(b *pixel.Buffer[color.RGB]) *Image {
	return &Image{buffer: b, background: color.None}
}

// FromData creates an image taking ownership of row-major pixel data.
func FromData(width, height int, data []color.RGB) *Image {
	return FromBuffer(pixel.FromData(width, height, data))
}

// Open decodes the image stored at path.
func Open(path string) (*Image, error) {
	decoded, err := codec.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	Logger().Debug("decoded image",
		"path", path,
		"format", decoded.Format.String(),
		"width", decoded.Buffer.Width(),
		"height", decoded.Buffer.Height())

	return FromBuffer(decoded.Buffer), nil
}

// Decode decodes an image from r, detecting the format from its byte
// signature.
func Decode(r io.Reader) (*Image, error) {
	decoded, err := codec.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromBuffer(decoded.Buffer), nil
}

// DecodeBytes decodes an image from an in-memory encoding.
func DecodeBytes(data []byte) (*Image, error) {
	decoded, err := codec.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	return FromBuffer(decoded.Buffer), nil
}

// Save encodes the image to path, deriving the format from the file
// extension.
func (img *Image) Save(path string) error {
	return codec.EncodeFile(path, img.buffer)
}

// Encode writes the image to w in the given format with default options.
func (img *Image) Encode(w io.Writer, format codec.Format) error {
	return codec.Encode(w, img.buffer, format)
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.buffer.Width() }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.buffer.Height() }

// Buffer exposes the underlying pixel buffer.
func (img *Image) Buffer() *pixel.Buffer[color.RGB] { return img.buffer }

// Data exposes the raw row-major pixel data.
func (img *Image) Data() []color.RGB { return img.buffer.Data() }

// At returns the pixel at (x, y). It panics when the coordinates are out
// of bounds.
func (img *Image) At(x, y int) color.RGB { return img.buffer.At(x, y) }

// Put overwrites the pixel at (x, y). It panics when the coordinates are
// out of bounds.
func (img *Image) Put(x, y int, c color.RGB) { img.buffer.Put(x, y, c) }

// HasTransparency reports whether any pixel is not fully opaque.
func (img *Image) HasTransparency() bool { return img.buffer.HasTransparency() }

// IsGrayscale reports whether every pixel is chromatically gray.
func (img *Image) IsGrayscale() bool { return pixel.IsGrayscale(img.buffer) }

// Background returns the fill color used by geometric transforms.
func (img *Image) Background() color.RGB { return img.background }

// WithBackground returns a copy of the image handle using c as the fill
// color for geometric transforms. The pixel data is shared.
func (img *Image) WithBackground(c color.RGB) *Image {
	return &Image{buffer: img.buffer, background: c}
}

// derive wraps an operation result, carrying the background over.
func (img *Image) derive(b *pixel.Buffer[color.RGB]) *Image {
	return &Image{buffer: b, background: img.background}
}

// MapColors applies fn to every pixel, returning a new image.
func (img *Image) MapColors(fn func(color.RGB) color.RGB) *Image {
	return img.derive(img.buffer.MapColors(fn))
}

// Mod applies fn to every pixel in place.
func (img *Image) Mod(fn func(color.RGB) color.RGB) {
	img.buffer.Mod(fn)
}

// Resize resamples the image to width x height.
func (img *Image) Resize(width, height int, filter ops.FilterMode) *Image {
	return img.derive(ops.Resize(img.buffer, width, height, filter))
}

// Rotate rotates the image clockwise by degrees around its center,
// filling uncovered pixels with the background color.
func (img *Image) Rotate(degrees float32, filter ops.FilterMode) *Image {
	return img.derive(ops.Rotate(img.buffer, degrees, img.background, filter))
}

// Rotate90 rotates the image 90 degrees clockwise.
func (img *Image) Rotate90() *Image { return img.derive(ops.Rotate90(img.buffer)) }

// Rotate180 rotates the image 180 degrees.
func (img *Image) Rotate180() *Image { return img.derive(ops.Rotate180(img.buffer)) }

// Rotate270 rotates the image 270 degrees clockwise.
func (img *Image) Rotate270() *Image { return img.derive(ops.Rotate270(img.buffer)) }

// FlipHorizontal mirrors the image along the vertical axis.
func (img *Image) FlipHorizontal() *Image { return img.derive(ops.FlipHorizontal(img.buffer)) }

// FlipVertical mirrors the image along the horizontal axis.
func (img *Image) FlipVertical() *Image { return img.derive(ops.FlipVertical(img.buffer)) }

// Crop extracts a clamped rectangle.
func (img *Image) Crop(offsetX, offsetY, width, height int) *Image {
	return img.derive(ops.Crop(img.buffer, offsetX, offsetY, width, height))
}

// GaussianBlur blurs with the given radius. Sigma zero selects the
// default for the kernel size.
func (img *Image) GaussianBlur(radius int, sigma float32) *Image {
	return img.derive(ops.GaussianBlur(img.buffer, radius, sigma))
}

// Unsharp sharpens by amplifying the difference from a blurred copy.
func (img *Image) Unsharp(radius int, factor, sigma float32) *Image {
	return img.derive(ops.Unsharp(img.buffer, radius, factor, sigma))
}

// DetectEdges highlights edges with the selected operator.
func (img *Image) DetectEdges(mode ops.EdgeDetectionMode) *Image {
	return img.derive(ops.DetectEdges(img.buffer, mode))
}

// SobelEdges computes the Sobel gradient magnitude of the luminance.
func (img *Image) SobelEdges(normalize bool) *Image {
	return img.derive(ops.SobelEdges(img.buffer, normalize))
}

// Blend combines the image with other using the given blend operation.
func (img *Image) Blend(other *Image, op ops.BlendOp, intensity float32) *Image {
	return img.derive(ops.Blend(img.buffer, other.buffer, op, intensity))
}

// ApplyPalette maps every pixel to the nearest palette entry.
func (img *Image) ApplyPalette(palette []color.RGB) *Image {
	return img.derive(ops.ApplyPalette(img.buffer, palette))
}

// Despeckle removes isolated dark pixels.
func (img *Image) Despeckle(threshold float32, amount int) *Image {
	return img.derive(ops.Despeckle(img.buffer, threshold, amount))
}

// Drawing turns the image into a pencil-sketch rendition.
func (img *Image) Drawing(radius int, mode ops.DrawingMode) *Image {
	return img.derive(ops.Drawing(img.buffer, radius, mode))
}

// Interlace shifts even and odd rows in opposite directions.
func (img *Image) Interlace(offset int) *Image {
	return img.derive(ops.Interlace(img.buffer, offset))
}

// SymmetricNearestNeighbor smooths the image while keeping edges.
func (img *Image) SymmetricNearestNeighbor(radius int, withCenter bool) *Image {
	return img.derive(ops.SymmetricNearestNeighbor(img.buffer, radius, withCenter))
}

// GaussianNoise mixes standard normal noise into the image.
func (img *Image) GaussianNoise(alpha float32) *Image {
	return img.derive(ops.GaussianNoise(img.buffer, alpha))
}

// RandomNoise mixes uniform noise into the image.
func (img *Image) RandomNoise(alpha float32) *Image {
	return img.derive(ops.RandomNoise(img.buffer, alpha))
}

// RGBNoise saturates one random channel per affected pixel.
func (img *Image) RGBNoise(threshold float32) *Image {
	return img.derive(ops.RGBNoise(img.buffer, threshold))
}

// SaltPepperNoise replaces pixels with black or white.
func (img *Image) SaltPepperNoise(threshold float32) *Image {
	return img.derive(ops.SaltPepperNoise(img.buffer, threshold))
}

// Equalize flattens the distribution of the selected channels.
func (img *Image) Equalize(mode ops.EqualizeMode) *Image {
	return img.derive(ops.Equalize(img.buffer, mode))
}

// StretchContrast levels the image to its populated intensity range.
func (img *Image) StretchContrast(threshold float32) *Image {
	return img.derive(ops.StretchContrast(img.buffer, threshold))
}

// WhiteBalance levels each RGB channel independently.
func (img *Image) WhiteBalance(threshold float32) *Image {
	return img.derive(ops.WhiteBalance(img.buffer, threshold))
}

// BalanceChannels levels the channels of the selected color space.
func (img *Image) BalanceChannels(mode ops.BalanceMode, threshold float32) *Image {
	return img.derive(ops.BalanceChannels(img.buffer, mode, threshold))
}

// OptimizeSaturation adjusts saturation toward a balanced level.
func (img *Image) OptimizeSaturation(offset float32, mode ops.SaturationMode) *Image {
	return img.derive(ops.OptimizeSaturation(img.buffer, offset, mode))
}

// OptimizeLightness pulls the average lightness toward the midpoint.
func (img *Image) OptimizeLightness(factor float32) *Image {
	return img.derive(ops.OptimizeLightness(img.buffer, factor))
}

// ChangeColorTemperature reinterprets the image under a different light
// temperature.
func (img *Image) ChangeColorTemperature(origTemp, newTemp, tintCorrection float32) *Image {
	return img.derive(ops.ChangeColorTemperature(img.buffer, origTemp, newTemp, tintCorrection))
}

// OptimizeColorTemperature estimates and corrects a color cast.
func (img *Image) OptimizeColorTemperature(factor, tintCorrection float32) *Image {
	return img.derive(ops.OptimizeColorTemperature(img.buffer, factor, tintCorrection))
}

// JPEGQuality simulates lossy JPEG storage at the given quality.
func (img *Image) JPEGQuality(quality int, preserveAlpha bool) (*Image, error) {
	b, err := ops.JPEGQuality(img.buffer, quality, preserveAlpha)
	if err != nil {
		return nil, err
	}
	return img.derive(b), nil
}
