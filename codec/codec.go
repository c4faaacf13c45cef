// Package codec converts between encoded image bytes and linear RGB
// pixel buffers.
//
// Container parsing is delegated to the standard library and
// golang.org/x/image decoders; this package owns the channel packing at
// the byte boundary, the dimension checks, and the error taxonomy. An
// additional raw format stores buffers losslessly as zstd-compressed
// float32 data for intermediate snapshots.
package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// Format identifies an image container format.
type Format uint8

const (
	// FormatAuto selects the format from a file extension when saving
	// and from the byte signature when loading.
	FormatAuto Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatTIFF
	// FormatWebP is decode-only.
	FormatWebP
	FormatRaw
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatWebP:
		return "webp"
	case FormatRaw:
		return "raw"
	default:
		return "auto"
	}
}

// ParseFormat converts a lowercase name into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	case "bmp":
		return FormatBMP, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	case "webp":
		return FormatWebP, nil
	case "raw":
		return FormatRaw, nil
	case "auto":
		return FormatAuto, nil
	default:
		return 0, fmt.Errorf("codec: unknown format %q", s)
	}
}

// FormatForPath derives the format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return 0, fmt.Errorf("codec: missing file extension: %q: %w", path, ErrUnknownFormat)
	}
	f, err := ParseFormat(ext)
	if err != nil || f == FormatAuto {
		return 0, fmt.Errorf("codec: bad file extension: %q: %w", path, ErrUnknownFormat)
	}
	return f, nil
}

// DecodedImage is the result of decoding: the pixel data in linear RGB
// plus the detected container format.
type DecodedImage struct {
	Buffer *pixel.Buffer[color.RGB]
	Format Format
}

// Decode reads an image from r, detecting the format from its byte
// signature.
func Decode(r io.Reader) (*DecodedImage, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(len(rawMagic))
	if err == nil && bytes.Equal(magic, []byte(rawMagic)) {
		buffer, err := DecodeRaw(br)
		if err != nil {
			return nil, err
		}
		return &DecodedImage{Buffer: buffer, Format: FormatRaw}, nil
	}

	img, name, err := image.Decode(br)
	if err != nil {
		if err == image.ErrFormat {
			return nil, ErrUnknownFormat
		}
		return nil, &DecodingError{Format: name, Err: err}
	}

	buffer, err := bufferFromImage(img)
	if err != nil {
		return nil, err
	}

	format, _ := ParseFormat(name)
	return &DecodedImage{Buffer: buffer, Format: format}, nil
}

// DecodeBytes decodes an image from an in-memory encoding.
func DecodeBytes(data []byte) (*DecodedImage, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile decodes the image stored at path.
func DecodeFile(path string) (*DecodedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// PNGColorType selects the sample layout PNG encoding uses.
type PNGColorType uint8

const (
	PNGRGBA8 PNGColorType = iota
	PNGRGBA16
	PNGGray8
	PNGGray16
)

// PNGOptions configures EncodePNG. The zero value encodes 8-bit RGBA
// with the default compression level.
type PNGOptions struct {
	ColorType   PNGColorType
	Compression png.CompressionLevel
}

// JPEGOptions configures EncodeJPEG.
type JPEGOptions struct {
	// Quality in [1, 100]. Zero selects the default of 85.
	Quality int
}

// DefaultJPEGQuality is used when JPEGOptions leaves Quality unset.
const DefaultJPEGQuality = 85

func (o JPEGOptions) quality() int {
	if o.Quality == 0 {
		return DefaultJPEGQuality
	}
	return o.Quality
}

// Encode writes the buffer to w in the given format with default
// options. FormatAuto and FormatWebP are rejected: WebP is decode-only.
func Encode(w io.Writer, b *pixel.Buffer[color.RGB], format Format) error {
	switch format {
	case FormatPNG:
		return EncodePNG(w, b, PNGOptions{})
	case FormatJPEG:
		return EncodeJPEG(w, b, JPEGOptions{})
	case FormatGIF:
		return EncodeGIF(w, b)
	case FormatBMP:
		return EncodeBMP(w, b)
	case FormatTIFF:
		return EncodeTIFF(w, b)
	case FormatRaw:
		return EncodeRaw(w, b)
	default:
		return fmt.Errorf("codec: cannot encode format %s: %w", format, ErrUnknownFormat)
	}
}

// EncodeFile writes the buffer to path, deriving the format from the
// file extension.
func EncodeFile(path string, b *pixel.Buffer[color.RGB]) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: create %s: %w", path, err)
	}

	if err := Encode(f, b, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// checkEncodeSize rejects empty buffers and dimensions above the
// format's own ceiling.
func checkEncodeSize(b *pixel.Buffer[color.RGB], format string, maxDim int) error {
	w, h := b.Width(), b.Height()
	if w == 0 || h == 0 || w > maxDim || h > maxDim {
		return &UnsupportedDimensionsError{Format: format, Width: w, Height: h}
	}
	return nil
}

// EncodePNG writes the buffer as PNG.
func EncodePNG(w io.Writer, b *pixel.Buffer[color.RGB], opts PNGOptions) error {
	if err := checkEncodeSize(b, "png", 1<<31-1); err != nil {
		return err
	}

	var img image.Image
	switch opts.ColorType {
	case PNGRGBA16:
		img = imageFromBuffer64(b)
	case PNGGray8:
		img = grayFromBuffer(b)
	case PNGGray16:
		img = gray16FromBuffer(b)
	default:
		img = imageFromBuffer(b)
	}

	enc := png.Encoder{CompressionLevel: opts.Compression}
	if err := enc.Encode(w, img); err != nil {
		return &EncodingError{Format: "png", Err: err}
	}
	return nil
}

// EncodeJPEG writes the buffer as JPEG. Alpha is discarded.
func EncodeJPEG(w io.Writer, b *pixel.Buffer[color.RGB], opts JPEGOptions) error {
	if err := checkEncodeSize(b, "jpeg", 65535); err != nil {
		return err
	}

	if err := jpeg.Encode(w, imageFromBuffer(b), &jpeg.Options{Quality: opts.quality()}); err != nil {
		return &EncodingError{Format: "jpeg", Err: err}
	}
	return nil
}

// EncodeGIF writes the buffer as GIF, quantizing to 256 colors.
func EncodeGIF(w io.Writer, b *pixel.Buffer[color.RGB]) error {
	if err := checkEncodeSize(b, "gif", 65535); err != nil {
		return err
	}

	if err := gif.Encode(w, imageFromBuffer(b), nil); err != nil {
		return &EncodingError{Format: "gif", Err: err}
	}
	return nil
}

// EncodeBMP writes the buffer as BMP. Alpha is discarded.
func EncodeBMP(w io.Writer, b *pixel.Buffer[color.RGB]) error {
	if err := checkEncodeSize(b, "bmp", 1<<31-1); err != nil {
		return err
	}

	if err := bmp.Encode(w, imageFromBuffer(b)); err != nil {
		return &EncodingError{Format: "bmp", Err: err}
	}
	return nil
}

// EncodeTIFF writes the buffer as an uncompressed TIFF.
func EncodeTIFF(w io.Writer, b *pixel.Buffer[color.RGB]) error {
	if err := checkEncodeSize(b, "tiff", 1<<31-1); err != nil {
		return err
	}

	if err := tiff.Encode(w, imageFromBuffer(b), nil); err != nil {
		return &EncodingError{Format: "tiff", Err: err}
	}
	return nil
}

// DecodeWebP decodes a WebP image. There is no matching encoder.
func DecodeWebP(r io.Reader) (*pixel.Buffer[color.RGB], error) {
	img, err := webp.Decode(r)
	if err != nil {
		return nil, &DecodingError{Format: "webp", Err: err}
	}
	return bufferFromImage(img)
}
