package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

func TestRawRoundTripIsLossless(t *testing.T) {
	in := pixel.Generate(9, 5, func(x, y int) color.RGB {
		return color.NewRGBWithAlpha(float32(x)/8, float32(y)/4, 0.25, 0.75)
	})

	var buf bytes.Buffer
	if err := EncodeRaw(&buf, in); err != nil {
		t.Fatalf("EncodeRaw: %v", err)
	}

	got, err := DecodeRaw(&buf)
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	if got.Width() != 9 || got.Height() != 5 {
		t.Fatalf("dimensions = %dx%d, want 9x5", got.Width(), got.Height())
	}
	for i, c := range got.Data() {
		if c.Data != in.Data()[i].Data {
			t.Fatalf("pixel %d = %v, want %v", i, c, in.Data()[i])
		}
	}
}

func TestRawKeepsOutOfRangeValues(t *testing.T) {
	in := pixel.NewWithColor(2, 2, color.RGB{Data: [4]float32{-0.5, 1.5, 42.0, 1.0}})

	var buf bytes.Buffer
	if err := EncodeRaw(&buf, in); err != nil {
		t.Fatalf("EncodeRaw: %v", err)
	}

	got, err := DecodeRaw(&buf)
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	want := [4]float32{-0.5, 1.5, 42.0, 1.0}
	if got.At(0, 0).Data != want {
		t.Fatalf("pixel = %v, want %v", got.At(0, 0), want)
	}
}

func TestDecodeDetectsRaw(t *testing.T) {
	in := pixel.NewWithColor(3, 3, color.NewRGB(0.1, 0.2, 0.3))

	var buf bytes.Buffer
	if err := Encode(&buf, in, FormatRaw); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Format != FormatRaw {
		t.Errorf("format = %v, want %v", got.Format, FormatRaw)
	}
	if c := got.Buffer.At(1, 1); c.Data != in.At(1, 1).Data {
		t.Errorf("pixel = %v, want %v", c, in.At(1, 1))
	}
}

func TestDecodeRawBadMagic(t *testing.T) {
	_, err := DecodeRaw(bytes.NewReader([]byte("pictr@w1plus some trailing bytes")))

	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestRawRejectsEmptyBuffer(t *testing.T) {
	var buf bytes.Buffer

	err := EncodeRaw(&buf, pixel.New[color.RGB](0, 0))

	var dimErr *UnsupportedDimensionsError
	if !errors.As(err, &dimErr) {
		t.Fatalf("err = %v, want UnsupportedDimensionsError", err)
	}
}

func TestDecodeRawRejectsHugeDimensions(t *testing.T) {
	data := []byte(rawMagic)
	data = append(data, 0xff, 0xff, 0xff, 0xff) // width
	data = append(data, 0xff, 0xff, 0xff, 0xff) // height

	_, err := DecodeRaw(bytes.NewReader(data))

	var dimErr *InvalidDimensionsError
	if !errors.As(err, &dimErr) {
		t.Fatalf("err = %v, want InvalidDimensionsError", err)
	}
}
