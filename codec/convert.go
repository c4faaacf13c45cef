package codec

import (
	"image"
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// channelByte packs a channel value: round(clamp(v,0,1) * 255).
func channelByte(v float32) uint8 {
	if v < 0.0 {
		v = 0.0
	} else if v > 1.0 {
		v = 1.0
	}
	return uint8(math.Round(float64(v) * 255.0))
}

// channelUint16 packs a channel value: round(clamp(v,0,1) * 65535).
func channelUint16(v float32) uint16 {
	if v < 0.0 {
		v = 0.0
	} else if v > 1.0 {
		v = 1.0
	}
	return uint16(math.Round(float64(v) * 65535.0))
}

// bufferFromImage converts a decoded image into a linear RGB buffer.
// Stored channel values are treated as sRGB encoded; alpha passes
// through linearly.
func bufferFromImage(img image.Image) (*pixel.Buffer[color.RGB], error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if !pixel.ValidSize(width, height) {
		return nil, &InvalidDimensionsError{Width: width, Height: height}
	}

	data := make([]color.RGB, width*height)

	if nrgba, ok := img.(*image.NRGBA); ok {
		i := 0
		for y := 0; y < height; y++ {
			row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
			for x := 0; x < width; x++ {
				data[i] = color.SRGB{Data: [4]float32{
					float32(row[x*4]) / 255.0,
					float32(row[x*4+1]) / 255.0,
					float32(row[x*4+2]) / 255.0,
					float32(row[x*4+3]) / 255.0,
				}}.ToRGB()
				i++
			}
		}
		return pixel.FromData(width, height, data), nil
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			var sr, sg, sb, sa float32
			if a > 0 {
				// RGBA returns alpha-premultiplied channels.
				sr = float32(r) / float32(a)
				sg = float32(g) / float32(a)
				sb = float32(b) / float32(a)
				sa = float32(a) / 65535.0
			}
			data[i] = color.SRGB{Data: [4]float32{sr, sg, sb, sa}}.ToRGB()
			i++
		}
	}
	return pixel.FromData(width, height, data), nil
}

// imageFromBuffer converts a linear RGB buffer into a non-premultiplied
// 8-bit image with sRGB-encoded channels.
func imageFromBuffer(b *pixel.Buffer[color.RGB]) *image.NRGBA {
	width := b.Width()
	height := b.Height()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for i, c := range b.Data() {
		s := c.ToSRGB()
		img.Pix[i*4] = channelByte(s.Data[0])
		img.Pix[i*4+1] = channelByte(s.Data[1])
		img.Pix[i*4+2] = channelByte(s.Data[2])
		img.Pix[i*4+3] = channelByte(s.Data[3])
	}

	return img
}

// imageFromBuffer64 is imageFromBuffer with 16 bits per channel,
// serialized big-endian as the image package requires.
func imageFromBuffer64(b *pixel.Buffer[color.RGB]) *image.NRGBA64 {
	width := b.Width()
	height := b.Height()
	img := image.NewNRGBA64(image.Rect(0, 0, width, height))

	for i, c := range b.Data() {
		s := c.ToSRGB()
		for ch := 0; ch < 4; ch++ {
			v := channelUint16(s.Data[ch])
			img.Pix[i*8+ch*2] = uint8(v >> 8)
			img.Pix[i*8+ch*2+1] = uint8(v)
		}
	}

	return img
}

// grayFromBuffer converts a buffer to an 8-bit grayscale image using the
// Rec.709-like luma weights.
func grayFromBuffer(b *pixel.Buffer[color.RGB]) *image.Gray {
	width := b.Width()
	height := b.Height()
	img := image.NewGray(image.Rect(0, 0, width, height))

	for i, c := range b.Data() {
		v := color.LinearToGamma(c.ToGray().Red())
		img.Pix[i] = channelByte(v)
	}

	return img
}

// gray16FromBuffer is grayFromBuffer with 16-bit big-endian samples.
func gray16FromBuffer(b *pixel.Buffer[color.RGB]) *image.Gray16 {
	width := b.Width()
	height := b.Height()
	img := image.NewGray16(image.Rect(0, 0, width, height))

	for i, c := range b.Data() {
		v := channelUint16(color.LinearToGamma(c.ToGray().Red()))
		img.Pix[i*2] = uint8(v >> 8)
		img.Pix[i*2+1] = uint8(v)
	}

	return img
}
