package ops

import (
	"testing"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

func TestParseDrawingMode(t *testing.T) {
	tests := []struct {
		in   string
		want DrawingMode
		ok   bool
	}{
		{"gray", DrawingGray, true},
		{"colored", DrawingColored, true},
		{"default", DrawingColored, true},
		{"reduced_colors", DrawingReducedColors, true},
		{"sepia", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseDrawingMode(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseDrawingMode(%q) err = %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseDrawingMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDrawingKeepsDimensions(t *testing.T) {
	in := pixel.Generate(12, 9, func(x, y int) color.RGB {
		return color.NewRGB(float32(x)/11, float32(y)/8, 0.5)
	})

	for _, mode := range []DrawingMode{DrawingGray, DrawingColored, DrawingReducedColors} {
		got := Drawing(in, 2, mode)
		if got.Width() != 12 || got.Height() != 9 {
			t.Errorf("mode %v: dimensions = %dx%d, want 12x9",
				mode, got.Width(), got.Height())
		}
	}
}

func TestDrawingGrayIsGrayscale(t *testing.T) {
	in := pixel.Generate(10, 10, func(x, y int) color.RGB {
		return color.NewRGB(float32(x)/9, float32(y)/9, float32(x+y)/18)
	})

	got := Drawing(in, 2, DrawingGray)

	if !pixel.IsGrayscale(got) {
		t.Error("gray drawing produced color")
	}
}
