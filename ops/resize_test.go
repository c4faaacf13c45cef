package ops

import (
	"testing"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

func TestParseFilterMode(t *testing.T) {
	tests := []struct {
		in   string
		want FilterMode
		ok   bool
	}{
		{"nearest", FilterNearest, true},
		{"bilinear", FilterBilinear, true},
		{"bicubic", FilterBicubic, true},
		{"lanczos3", FilterLanczos3, true},
		{"auto", FilterAuto, true},
		{"default", FilterAuto, true},
		{"box", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseFilterMode(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseFilterMode(%q) err = %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseFilterMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestResizeIdentityClones(t *testing.T) {
	in := sample3x2()

	got := Resize(in, 3, 2, FilterLanczos3)

	expectPixels(t, got, 3, 2, in.Data())

	got.Put(0, 0, color.Blue)
	if !in.At(0, 0).Equal(color.White) {
		t.Error("resize result shares data with the input")
	}
}

func TestResizeSolidColor(t *testing.T) {
	in := solid(8, 6, color.NewRGB(0.25, 0.5, 0.75))

	filters := []struct {
		name   string
		filter FilterMode
	}{
		{"nearest", FilterNearest},
		{"bilinear", FilterBilinear},
		{"bicubic", FilterBicubic},
		{"auto", FilterAuto},
	}
	sizes := [][2]int{{16, 12}, {4, 3}, {17, 5}, {1, 1}}

	for _, f := range filters {
		t.Run(f.name, func(t *testing.T) {
			for _, size := range sizes {
				got := Resize(in, size[0], size[1], f.filter)
				if got.Width() != size[0] || got.Height() != size[1] {
					t.Fatalf("dimensions = %dx%d, want %dx%d",
						got.Width(), got.Height(), size[0], size[1])
				}
				expectSolid(t, got, color.NewRGB(0.25, 0.5, 0.75))
			}
		})
	}
}

// Lanczos weights are not renormalized, so a solid color only survives a
// resample up to the ringing of the window. Allow a coarse tolerance here.
func TestResizeLanczos3SolidColor(t *testing.T) {
	want := color.NewRGB(0.25, 0.5, 0.75)
	in := solid(8, 6, want)

	for _, size := range [][2]int{{16, 12}, {4, 3}, {17, 5}} {
		got := Resize(in, size[0], size[1], FilterLanczos3)
		if got.Width() != size[0] || got.Height() != size[1] {
			t.Fatalf("dimensions = %dx%d, want %dx%d",
				got.Width(), got.Height(), size[0], size[1])
		}
		for i, c := range got.Data() {
			for ch := 0; ch < 3; ch++ {
				diff := c.Data[ch] - want.Data[ch]
				if diff < -0.02 || diff > 0.02 {
					t.Fatalf("%dx%d pixel %d channel %d = %v, want about %v",
						size[0], size[1], i, ch, c.Data[ch], want.Data[ch])
				}
			}
		}
	}
}

func TestResizeNearestDoubling(t *testing.T) {
	in := pixel.FromData(2, 1, []color.RGB{color.Red, color.Blue})

	got := Resize(in, 4, 2, FilterNearest)

	expectPixels(t, got, 4, 2, []color.RGB{
		color.Red, color.Red, color.Blue, color.Blue,
		color.Red, color.Red, color.Blue, color.Blue,
	})
}

func TestResizeGrayscaleStaysGray(t *testing.T) {
	in := pixel.Generate(10, 10, func(x, y int) color.RGB {
		v := float32(x+y) / 18.0
		return color.NewRGB(v, v, v)
	})

	got := Resize(in, 5, 5, FilterAuto)

	if !pixel.IsGrayscale(got) {
		t.Error("downscaled gradient is not grayscale")
	}
}
