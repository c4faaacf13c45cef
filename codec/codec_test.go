package codec

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

func testBuffer() *pixel.Buffer[color.RGB] {
	return pixel.Generate(16, 8, func(x, y int) color.RGB {
		return color.NewRGB(float32(x)/15, float32(y)/7, 0.5)
	})
}

// expectSimilar checks the buffers match within the tolerance an 8-bit
// sRGB round trip introduces.
func expectSimilar(t *testing.T, got, want *pixel.Buffer[color.RGB], tolerance float32) {
	t.Helper()

	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("dimensions = %dx%d, want %dx%d",
			got.Width(), got.Height(), want.Width(), want.Height())
	}
	for i, c := range got.Data() {
		w := want.Data()[i]
		for ch := 0; ch < 4; ch++ {
			diff := c.Data[ch] - w.Data[ch]
			if diff < -tolerance || diff > tolerance {
				t.Fatalf("pixel %d channel %d = %v, want %v within %v",
					i, ch, c.Data[ch], w.Data[ch], tolerance)
			}
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"png", FormatPNG, true},
		{"jpeg", FormatJPEG, true},
		{"jpg", FormatJPEG, true},
		{"gif", FormatGIF, true},
		{"bmp", FormatBMP, true},
		{"tiff", FormatTIFF, true},
		{"tif", FormatTIFF, true},
		{"webp", FormatWebP, true},
		{"raw", FormatRaw, true},
		{"auto", FormatAuto, true},
		{"svg", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseFormat(%q) err = %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"image.png", FormatPNG, true},
		{"a/b/photo.JPG", FormatJPEG, true},
		{"scan.tif", FormatTIFF, true},
		{"snapshot.raw", FormatRaw, true},
		{"noext", 0, false},
		{"image.svg", 0, false},
	}

	for _, tc := range tests {
		got, err := FormatForPath(tc.path)
		if tc.ok != (err == nil) {
			t.Fatalf("FormatForPath(%q) err = %v", tc.path, err)
		}
		if !tc.ok && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("FormatForPath(%q) err = %v, want ErrUnknownFormat", tc.path, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestPNGRoundTrip(t *testing.T) {
	in := testBuffer()

	var buf bytes.Buffer
	if err := EncodePNG(&buf, in, PNGOptions{}); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	got, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if got.Format != FormatPNG {
		t.Errorf("format = %v, want %v", got.Format, FormatPNG)
	}
	expectSimilar(t, got.Buffer, in, 0.01)
}

func TestPNGGrayRoundTrip(t *testing.T) {
	in := pixel.Generate(8, 8, func(x, y int) color.RGB {
		v := float32(x*8+y) / 63
		return color.NewRGB(v, v, v)
	})

	var buf bytes.Buffer
	if err := EncodePNG(&buf, in, PNGOptions{ColorType: PNGGray16}); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	got, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if !pixel.IsGrayscale(got.Buffer) {
		t.Error("decoded buffer is not grayscale")
	}
	expectSimilar(t, got.Buffer, in, 0.01)
}

func TestJPEGRoundTrip(t *testing.T) {
	in := testBuffer()

	var buf bytes.Buffer
	if err := EncodeJPEG(&buf, in, JPEGOptions{Quality: 95}); err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}

	got, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if got.Format != FormatJPEG {
		t.Errorf("format = %v, want %v", got.Format, FormatJPEG)
	}
	expectSimilar(t, got.Buffer, in, 0.1)
}

func TestEncodeRoundTripFormats(t *testing.T) {
	in := testBuffer()

	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		var buf bytes.Buffer
		if err := Encode(&buf, in, format); err != nil {
			t.Fatalf("Encode %v: %v", format, err)
		}
		got, err := DecodeBytes(buf.Bytes())
		if err != nil {
			t.Fatalf("DecodeBytes %v: %v", format, err)
		}
		if got.Format != format {
			t.Errorf("format = %v, want %v", got.Format, format)
		}
		expectSimilar(t, got.Buffer, in, 0.01)
	}
}

func TestEncodeRejectsAutoAndWebP(t *testing.T) {
	in := testBuffer()

	for _, format := range []Format{FormatAuto, FormatWebP} {
		var buf bytes.Buffer
		if err := Encode(&buf, in, format); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("Encode %v err = %v, want ErrUnknownFormat", format, err)
		}
	}
}

func TestEncodeEmptyBufferFails(t *testing.T) {
	var buf bytes.Buffer

	err := EncodePNG(&buf, pixel.New[color.RGB](0, 0), PNGOptions{})

	var dimErr *UnsupportedDimensionsError
	if !errors.As(err, &dimErr) {
		t.Fatalf("err = %v, want UnsupportedDimensionsError", err)
	}
}

func TestDecodeGarbageFails(t *testing.T) {
	_, err := DecodeBytes([]byte("this is not an image at all, not even close"))

	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestEncodeDecodeFile(t *testing.T) {
	in := testBuffer()
	path := filepath.Join(t.TempDir(), "roundtrip.png")

	if err := EncodeFile(path, in); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}

	got, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if got.Format != FormatPNG {
		t.Errorf("format = %v, want %v", got.Format, FormatPNG)
	}
	expectSimilar(t, got.Buffer, in, 0.01)
}

func TestEncodeFileBadExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.svg")

	err := EncodeFile(path, testBuffer())

	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("file was created despite the error")
	}
}
