package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// rawMagic starts every raw snapshot; the trailing digit versions the
// layout.
const rawMagic = "pictraw1"

// EncodeRaw writes the buffer losslessly: the magic, big-endian uint32
// dimensions, and the float32 channel data big-endian inside a zstd
// stream. Raw snapshots preserve out-of-range channel values that byte
// formats would clamp.
func EncodeRaw(w io.Writer, b *pixel.Buffer[color.RGB]) error {
	if b.Width() == 0 || b.Height() == 0 {
		return &UnsupportedDimensionsError{Format: "raw", Width: b.Width(), Height: b.Height()}
	}

	var header [16]byte
	copy(header[:8], rawMagic)
	binary.BigEndian.PutUint32(header[8:12], uint32(b.Width()))
	binary.BigEndian.PutUint32(header[12:16], uint32(b.Height()))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("codec: writing raw header: %w", err)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return &EncodingError{Format: "raw", Err: err}
	}

	row := make([]byte, b.Width()*16)
	data := b.Data()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c := data[x+y*b.Width()]
			for ch := 0; ch < 4; ch++ {
				bits := math.Float32bits(c.Data[ch])
				binary.BigEndian.PutUint32(row[x*16+ch*4:], bits)
			}
		}
		if _, err := zw.Write(row); err != nil {
			zw.Close()
			return &EncodingError{Format: "raw", Err: err}
		}
	}

	if err := zw.Close(); err != nil {
		return &EncodingError{Format: "raw", Err: err}
	}
	return nil
}

// DecodeRaw reads a raw snapshot written by EncodeRaw.
func DecodeRaw(r io.Reader) (*pixel.Buffer[color.RGB], error) {
	var header [16]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("codec: reading raw header: %w", err)
	}
	if string(header[:8]) != rawMagic {
		return nil, ErrUnknownFormat
	}

	width := int(binary.BigEndian.Uint32(header[8:12]))
	height := int(binary.BigEndian.Uint32(header[12:16]))
	if width == 0 || height == 0 || !pixel.ValidSize(width, height) {
		return nil, &InvalidDimensionsError{Width: width, Height: height}
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, &DecodingError{Format: "raw", Err: err}
	}
	defer zr.Close()

	data := make([]color.RGB, width*height)
	row := make([]byte, width*16)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(zr, row); err != nil {
			return nil, &DecodingError{Format: "raw", Err: err}
		}
		for x := 0; x < width; x++ {
			var c color.RGB
			for ch := 0; ch < 4; ch++ {
				bits := binary.BigEndian.Uint32(row[x*16+ch*4:])
				c.Data[ch] = math.Float32frombits(bits)
			}
			data[x+y*width] = c
		}
	}

	return pixel.FromData(width, height, data), nil
}
