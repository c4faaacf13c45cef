package ops

import (
	"errors"
	"testing"

	"github.com/gopict/pict/codec"
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

func TestJPEGQualityRoundTrip(t *testing.T) {
	want := color.NewRGB(0.5, 0.5, 0.5)

	got, err := JPEGQuality(solid(8, 8, want), 90, false)
	if err != nil {
		t.Fatalf("JPEGQuality: %v", err)
	}

	if got.Width() != 8 || got.Height() != 8 {
		t.Fatalf("dimensions = %dx%d, want 8x8", got.Width(), got.Height())
	}
	for i, c := range got.Data() {
		for ch := 0; ch < 3; ch++ {
			if diff := c.Data[ch] - 0.5; diff < -0.05 || diff > 0.05 {
				t.Fatalf("pixel %d channel %d = %v, want about 0.5", i, ch, c.Data[ch])
			}
		}
		if c.Alpha() != 1 {
			t.Fatalf("pixel %d alpha = %v, want 1", i, c.Alpha())
		}
	}
}

func TestJPEGQualityPreservesAlpha(t *testing.T) {
	in := pixel.NewWithColor(4, 4, color.NewRGBWithAlpha(0.5, 0.5, 0.5, 0.25))

	got, err := JPEGQuality(in, 90, true)
	if err != nil {
		t.Fatalf("JPEGQuality: %v", err)
	}

	for i, c := range got.Data() {
		if c.Alpha() != 0.25 {
			t.Fatalf("pixel %d alpha = %v, want 0.25", i, c.Alpha())
		}
	}
}

func TestJPEGQualityEmptyBufferFails(t *testing.T) {
	_, err := JPEGQuality(pixel.New[color.RGB](0, 0), 90, false)

	var dimErr *codec.UnsupportedDimensionsError
	if !errors.As(err, &dimErr) {
		t.Fatalf("err = %v, want UnsupportedDimensionsError", err)
	}
}
